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
package nutrient

import (
	"fmt"
	"strings"
)

// Field identifies one of the 25 measured quantities of a food record.
type Field string

// Field constants in canonical order.
const (
	Energy            Field = "energy"
	Protein           Field = "protein"
	Carbohydrate      Field = "carbohydrate"
	Fat               Field = "fat"
	Water             Field = "water"
	Fiber             Field = "fiber"
	Ash               Field = "ash"
	VitaminA          Field = "vitamin_a"
	Carotene          Field = "carotene"
	RetinolEquivalent Field = "retinol_equivalent"
	VitaminB1         Field = "vitamin_b1"
	VitaminB2         Field = "vitamin_b2"
	Niacin            Field = "niacin"
	VitaminC          Field = "vitamin_c"
	VitaminE          Field = "vitamin_e"
	Potassium         Field = "potassium"
	Sodium            Field = "sodium"
	Calcium           Field = "calcium"
	Magnesium         Field = "magnesium"
	Iron              Field = "iron"
	Manganese         Field = "manganese"
	Zinc              Field = "zinc"
	Copper            Field = "copper"
	Phosphorus        Field = "phosphorus"
	Selenium          Field = "selenium"
)

// Count is the number of nutrient fields.
const Count = 25

var canonical = [Count]Field{
	Energy, Protein, Carbohydrate, Fat, Water, Fiber, Ash,
	VitaminA, Carotene, RetinolEquivalent,
	VitaminB1, VitaminB2, Niacin, VitaminC, VitaminE,
	Potassium, Sodium, Calcium, Magnesium,
	Iron, Manganese, Zinc, Copper, Phosphorus, Selenium,
}

var index = func() map[Field]int {
	m := make(map[Field]int, Count)
	for i, f := range canonical {
		m[f] = i
	}
	return m
}()

// ParseField parses a field identifier. Identifiers are matched exactly
// after trimming surrounding whitespace.
func ParseField(s string) (Field, error) {
	f := Field(strings.TrimSpace(s))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid nutrient field: %q", s)
	}
	return f, nil
}

// IsValid reports whether f is one of the known fields.
func (f Field) IsValid() bool {
	_, ok := index[f]
	return ok
}

// Index returns the canonical position of f, or -1 when f is unknown.
func (f Field) Index() int {
	if i, ok := index[f]; ok {
		return i
	}
	return -1
}

func (f Field) String() string {
	return string(f)
}

// Fields returns all fields in canonical order.
func Fields() []Field {
	out := make([]Field, Count)
	copy(out, canonical[:])
	return out
}

// SupportedFields returns the string identifiers of all fields in canonical order.
func SupportedFields() []string {
	out := make([]string, Count)
	for i, f := range canonical {
		out[i] = string(f)
	}
	return out
}
