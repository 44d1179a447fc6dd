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
// Package nutrient defines the closed set of nutrient fields carried by every
// food record and the static catalog describing them.
//
// Field is a fixed enumeration; strings reaching the package boundary are
// checked with ParseField. The catalog is built once and never mutated, so a
// single *Catalog can be shared by concurrent readers.
//
//	cat := nutrient.Default()
//	d, ok := cat.Lookup(nutrient.Protein)
//	fmt.Println(d.NameCN, d.Unit) // 蛋白质 g
package nutrient
