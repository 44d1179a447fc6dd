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
// Package food holds the food composition data model and the dataset loader.
//
// A Record carries an id, a name and one Value per nutrient field. Value is
// an explicit optional number: a measured amount per 100 g, or not-available.
// The not-available state is never represented by a number, and it encodes
// as null in JSON and YAML.
//
// A Dataset is built once from an ordered record collection and is immutable
// afterwards. Ids are dense from 1 in load order and indexed for O(1) lookup.
//
//	ds, err := food.Open(ctx, os.Getenv("CNFOOD_DATA")) // empty path loads the embedded sample
//	if err != nil {
//	    return err
//	}
//	egg, ok := ds.ByID(7)
package food
