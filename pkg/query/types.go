// Copyright (c) 2025, The cn-food-mcp Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
)

const (
	// SearchLimit caps the number of search matches returned.
	SearchLimit = 20

	// MinFilterLimit and MaxFilterLimit bound the filter result limit.
	MinFilterLimit = 1
	MaxFilterLimit = 50
	// DefaultFilterLimit applies when a filter request carries no limit.
	DefaultFilterLimit = 20

	// MinCompareIDs and MaxCompareIDs bound the comparison input size.
	MinCompareIDs = 2
	MaxCompareIDs = 5

	// UnitBasis is the reference quantity in grams for every amount.
	UnitBasis = 100
)

// SortOrder is the direction of a filter ranking.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder parses a sort direction. Empty input yields SortDesc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SortDesc):
		return SortDesc, nil
	case string(SortAsc):
		return SortAsc, nil
	default:
		return SortDesc, fmt.Errorf("invalid sort order: %s", s)
	}
}

// GetSortOrders returns the supported sort directions.
func GetSortOrders() []string {
	return []string{string(SortAsc), string(SortDesc)}
}

// NutrientList is the result of ListNutrients.
type NutrientList struct {
	Per100g   bool                  `json:"per_100g" yaml:"per_100g"`
	Nutrients []nutrient.Descriptor `json:"nutrients" yaml:"nutrients"`
}

// Summary is the compact form of a record returned by Search.
type Summary struct {
	ID            int        `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	EnergyKcal    food.Value `json:"energy_kcal" yaml:"energy_kcal"`
	ProteinG      food.Value `json:"protein_g" yaml:"protein_g"`
	FatG          food.Value `json:"fat_g" yaml:"fat_g"`
	CarbohydrateG food.Value `json:"carbohydrate_g" yaml:"carbohydrate_g"`
}

func summaryOf(r *food.Record) Summary {
	return Summary{
		ID:            r.ID,
		Name:          r.Name,
		EnergyKcal:    r.Energy,
		ProteinG:      r.Protein,
		FatG:          r.Fat,
		CarbohydrateG: r.Carbohydrate,
	}
}

// SearchResult is the result of Search.
type SearchResult struct {
	Count int       `json:"count" yaml:"count"`
	Foods []Summary `json:"foods" yaml:"foods"`
}

// Detail is a full record annotated with the unit basis.
type Detail struct {
	food.Record `yaml:",inline"`
	Unit        int `json:"unit" yaml:"unit"`
}

// Comparison is the result of Compare.
type Comparison struct {
	Unit  int           `json:"unit" yaml:"unit"`
	Foods []food.Record `json:"foods" yaml:"foods"`
}

// FilterRequest holds the parameters of Filter. Nil bounds are not applied.
type FilterRequest struct {
	Nutrient nutrient.Field
	Min      *float64
	Max      *float64
	Limit    int
	Sort     SortOrder
}

// FilterItem is one ranked record. It encodes as {id, name, <nutrient>: value}.
type FilterItem struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Nutrient nutrient.Field `json:"-"`
	Value    float64        `json:"value"`
}

// MarshalJSON keys the value by the nutrient identifier.
func (i FilterItem) MarshalJSON() ([]byte, error) {
	name, err := json.Marshal(i.Name)
	if err != nil {
		return nil, err
	}
	key, err := json.Marshal(string(i.Nutrient))
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(i.Value)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 32+len(name)+len(key)+len(value))
	buf = append(buf, `{"id":`...)
	buf = strconv.AppendInt(buf, int64(i.ID), 10)
	buf = append(buf, `,"name":`...)
	buf = append(buf, name...)
	buf = append(buf, ',')
	buf = append(buf, key...)
	buf = append(buf, ':')
	buf = append(buf, value...)
	buf = append(buf, '}')
	return buf, nil
}

// MarshalYAML keeps the id, name, nutrient key order.
func (i FilterItem) MarshalYAML() (any, error) {
	value := &yaml.Node{}
	if err := value.Encode(i.Value); err != nil {
		return nil, err
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "id"},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i.ID)},
			{Kind: yaml.ScalarNode, Value: "name"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: i.Name},
			{Kind: yaml.ScalarNode, Value: string(i.Nutrient)},
			value,
		},
	}, nil
}

// FilterResult is the result of Filter.
type FilterResult struct {
	Nutrient nutrient.Field `json:"nutrient" yaml:"nutrient"`
	Count    int            `json:"count" yaml:"count"`
	Foods    []FilterItem   `json:"foods" yaml:"foods"`
}
