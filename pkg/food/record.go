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
package food

import "github.com/cnfood/cn-food-mcp/pkg/nutrient"

// Record is one food item with its nutrient amounts per 100 g.
type Record struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	Energy            Value `json:"energy" yaml:"energy"`
	Protein           Value `json:"protein" yaml:"protein"`
	Carbohydrate      Value `json:"carbohydrate" yaml:"carbohydrate"`
	Fat               Value `json:"fat" yaml:"fat"`
	Water             Value `json:"water" yaml:"water"`
	Fiber             Value `json:"fiber" yaml:"fiber"`
	Ash               Value `json:"ash" yaml:"ash"`
	VitaminA          Value `json:"vitamin_a" yaml:"vitamin_a"`
	Carotene          Value `json:"carotene" yaml:"carotene"`
	RetinolEquivalent Value `json:"retinol_equivalent" yaml:"retinol_equivalent"`
	VitaminB1         Value `json:"vitamin_b1" yaml:"vitamin_b1"`
	VitaminB2         Value `json:"vitamin_b2" yaml:"vitamin_b2"`
	Niacin            Value `json:"niacin" yaml:"niacin"`
	VitaminC          Value `json:"vitamin_c" yaml:"vitamin_c"`
	VitaminE          Value `json:"vitamin_e" yaml:"vitamin_e"`
	Potassium         Value `json:"potassium" yaml:"potassium"`
	Sodium            Value `json:"sodium" yaml:"sodium"`
	Calcium           Value `json:"calcium" yaml:"calcium"`
	Magnesium         Value `json:"magnesium" yaml:"magnesium"`
	Iron              Value `json:"iron" yaml:"iron"`
	Manganese         Value `json:"manganese" yaml:"manganese"`
	Zinc              Value `json:"zinc" yaml:"zinc"`
	Copper            Value `json:"copper" yaml:"copper"`
	Phosphorus        Value `json:"phosphorus" yaml:"phosphorus"`
	Selenium          Value `json:"selenium" yaml:"selenium"`
}

// Value returns the amount stored for f. Unknown fields are not-available.
func (r *Record) Value(f nutrient.Field) Value {
	if p := r.slot(f); p != nil {
		return *p
	}
	return Value{}
}

// Set stores v for f and reports whether f is a known field.
func (r *Record) Set(f nutrient.Field, v Value) bool {
	p := r.slot(f)
	if p == nil {
		return false
	}
	*p = v
	return true
}

func (r *Record) slot(f nutrient.Field) *Value {
	switch f {
	case nutrient.Energy:
		return &r.Energy
	case nutrient.Protein:
		return &r.Protein
	case nutrient.Carbohydrate:
		return &r.Carbohydrate
	case nutrient.Fat:
		return &r.Fat
	case nutrient.Water:
		return &r.Water
	case nutrient.Fiber:
		return &r.Fiber
	case nutrient.Ash:
		return &r.Ash
	case nutrient.VitaminA:
		return &r.VitaminA
	case nutrient.Carotene:
		return &r.Carotene
	case nutrient.RetinolEquivalent:
		return &r.RetinolEquivalent
	case nutrient.VitaminB1:
		return &r.VitaminB1
	case nutrient.VitaminB2:
		return &r.VitaminB2
	case nutrient.Niacin:
		return &r.Niacin
	case nutrient.VitaminC:
		return &r.VitaminC
	case nutrient.VitaminE:
		return &r.VitaminE
	case nutrient.Potassium:
		return &r.Potassium
	case nutrient.Sodium:
		return &r.Sodium
	case nutrient.Calcium:
		return &r.Calcium
	case nutrient.Magnesium:
		return &r.Magnesium
	case nutrient.Iron:
		return &r.Iron
	case nutrient.Manganese:
		return &r.Manganese
	case nutrient.Zinc:
		return &r.Zinc
	case nutrient.Copper:
		return &r.Copper
	case nutrient.Phosphorus:
		return &r.Phosphorus
	case nutrient.Selenium:
		return &r.Selenium
	default:
		return nil
	}
}
