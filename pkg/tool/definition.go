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
package tool

import (
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
	"github.com/cnfood/cn-food-mcp/pkg/query"
)

// ParamType is the JSON Schema type of a parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeArray   ParamType = "array"
)

// Param declares one operation parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Enum        []string
	Default     any
	MinLength   *int
	Minimum     *float64
	Maximum     *float64
	// ExclusiveMinimum applies to the parameter, or to its items for arrays.
	ExclusiveMinimum *float64
	Items            ParamType
	MinItems         *int
	MaxItems         *int
}

// Definition declares an operation exposed by the façade.
type Definition struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"-"`
}

// InputSchema renders the parameters as a JSON Schema object.
func (d Definition) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Params))
	required := make([]string, 0)

	for _, p := range d.Params {
		properties[p.Name] = p.schema()
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (p Param) schema() map[string]any {
	s := map[string]any{"type": string(p.Type)}
	if p.Description != "" {
		s["description"] = p.Description
	}
	if len(p.Enum) > 0 {
		s["enum"] = p.Enum
	}
	if p.Default != nil {
		s["default"] = p.Default
	}
	if p.MinLength != nil {
		s["minLength"] = *p.MinLength
	}
	if p.Minimum != nil {
		s["minimum"] = *p.Minimum
	}
	if p.Maximum != nil {
		s["maximum"] = *p.Maximum
	}

	if p.Type == TypeArray {
		items := map[string]any{"type": string(p.Items)}
		if p.ExclusiveMinimum != nil {
			items["exclusiveMinimum"] = *p.ExclusiveMinimum
		}
		s["items"] = items
		if p.MinItems != nil {
			s["minItems"] = *p.MinItems
		}
		if p.MaxItems != nil {
			s["maxItems"] = *p.MaxItems
		}
	} else if p.ExclusiveMinimum != nil {
		s["exclusiveMinimum"] = *p.ExclusiveMinimum
	}
	return s
}

// Descriptor is the wire form of a definition.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Describe renders d together with its input schema.
func (d Definition) Describe() Descriptor {
	return Descriptor{Name: d.Name, Description: d.Description, InputSchema: d.InputSchema()}
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// Definitions returns the operation declarations in a fixed order.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        query.OpListNutrients,
			Description: "列出所有可查询的营养素字段名、中英文名称和单位 (list every nutrient field with Chinese and English names and units)",
		},
		{
			Name:        query.OpSearch,
			Description: "按名称搜索中国食物，返回匹配的食物列表（含ID、名称、主要营养素摘要） (search foods by name)",
			Params: []Param{
				{
					Name:        "query",
					Type:        TypeString,
					Description: "食物名称关键词，如「鸡蛋」「牛肉」「米饭」",
					Required:    true,
					MinLength:   intPtr(1),
				},
			},
		},
		{
			Name:        query.OpGet,
			Description: "获取某个食物的完整营养成分（每100g），需提供食物ID（通过 search_food 获取） (full nutrient profile per 100 g)",
			Params: []Param{
				{
					Name:             "food_id",
					Type:             TypeInteger,
					Description:      "食物ID",
					Required:         true,
					ExclusiveMinimum: floatPtr(0),
				},
			},
		},
		{
			Name:        query.OpCompare,
			Description: "对比多个食物的营养成分（每100g），提供2-5个食物ID (compare 2 to 5 foods)",
			Params: []Param{
				{
					Name:             "food_ids",
					Type:             TypeArray,
					Items:            TypeInteger,
					Description:      "食物ID数组",
					Required:         true,
					ExclusiveMinimum: floatPtr(0),
					MinItems:         intPtr(query.MinCompareIDs),
					MaxItems:         intPtr(query.MaxCompareIDs),
				},
			},
		},
		{
			Name:        query.OpFilter,
			Description: "按营养素范围筛选食物，如查找高蛋白、低脂肪的食物 (filter and rank foods by one nutrient)",
			Params: []Param{
				{
					Name:        "nutrient",
					Type:        TypeString,
					Description: "营养素字段名",
					Required:    true,
					Enum:        nutrient.SupportedFields(),
				},
				{
					Name:        "min",
					Type:        TypeNumber,
					Description: "最小值（含）",
				},
				{
					Name:        "max",
					Type:        TypeNumber,
					Description: "最大值（含）",
				},
				{
					Name:        "limit",
					Type:        TypeInteger,
					Description: "返回数量上限，默认20",
					Default:     query.DefaultFilterLimit,
					Minimum:     floatPtr(query.MinFilterLimit),
					Maximum:     floatPtr(query.MaxFilterLimit),
				},
				{
					Name:        "sort",
					Type:        TypeString,
					Description: "排序方向，默认降序",
					Default:     string(query.SortDesc),
					Enum:        query.GetSortOrders(),
				},
			},
		},
	}
}
