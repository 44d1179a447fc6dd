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

// Unit is a measurement unit for a nutrient amount per 100 g of food.
type Unit string

const (
	UnitGram      Unit = "g"
	UnitMilligram Unit = "mg"
	UnitMicrogram Unit = "μg"
	UnitKcal      Unit = "kcal"
)

// Descriptor is the display metadata for a nutrient field.
type Descriptor struct {
	Field  Field  `json:"field" yaml:"field"`
	NameCN string `json:"name_cn" yaml:"name_cn"`
	NameEN string `json:"name_en" yaml:"name_en"`
	Unit   Unit   `json:"unit" yaml:"unit"`
}

// Catalog maps every nutrient field to its descriptor.
// It is read-only after construction.
type Catalog struct {
	descriptors [Count]Descriptor
}

var defaultCatalog = newCatalog()

// Default returns the process-wide catalog.
func Default() *Catalog {
	return defaultCatalog
}

func newCatalog() *Catalog {
	c := &Catalog{}
	for _, d := range []Descriptor{
		{Energy, "能量", "Energy", UnitKcal},
		{Protein, "蛋白质", "Protein", UnitGram},
		{Carbohydrate, "糖类", "Carbohydrate", UnitGram},
		{Fat, "脂肪", "Fat", UnitGram},
		{Water, "水分", "Water", UnitGram},
		{Fiber, "纤维", "Fiber", UnitGram},
		{Ash, "灰份", "Ash", UnitGram},
		{VitaminA, "维生素A", "Vitamin A", UnitMicrogram},
		{Carotene, "胡萝卜素", "Carotene", UnitMicrogram},
		{RetinolEquivalent, "视黄醇当量", "Retinol Equivalent", UnitMicrogram},
		{VitaminB1, "维生素B1", "Vitamin B1", UnitMilligram},
		{VitaminB2, "维生素B2", "Vitamin B2", UnitMilligram},
		{Niacin, "烟酸", "Niacin", UnitMilligram},
		{VitaminC, "维生素C", "Vitamin C", UnitMilligram},
		{VitaminE, "维生素E", "Vitamin E", UnitMilligram},
		{Potassium, "钾", "Potassium", UnitMilligram},
		{Sodium, "钠", "Sodium", UnitMilligram},
		{Calcium, "钙", "Calcium", UnitMilligram},
		{Magnesium, "镁", "Magnesium", UnitMilligram},
		{Iron, "铁", "Iron", UnitMilligram},
		{Manganese, "锰", "Manganese", UnitMilligram},
		{Zinc, "锌", "Zinc", UnitMilligram},
		{Copper, "铜", "Copper", UnitMilligram},
		{Phosphorus, "磷", "Phosphorus", UnitMilligram},
		{Selenium, "硒", "Selenium", UnitMicrogram},
	} {
		c.descriptors[d.Field.Index()] = d
	}
	return c
}

// Lookup returns the descriptor for f.
func (c *Catalog) Lookup(f Field) (Descriptor, bool) {
	i := f.Index()
	if i < 0 {
		return Descriptor{}, false
	}
	return c.descriptors[i], true
}

// Descriptors returns a copy of all descriptors in canonical order.
func (c *Catalog) Descriptors() []Descriptor {
	out := make([]Descriptor, Count)
	copy(out, c.descriptors[:])
	return out
}

// Len returns the number of catalogued fields.
func (c *Catalog) Len() int {
	return len(c.descriptors)
}
