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
// Package convert turns the published nutrition table (CSV) into the JSON
// record array read by pkg/food.
//
// The first CSV record is a header and is discarded; it may span several
// physical lines when quoted. Column 0 holds the food name, optionally
// followed by a classification code (",A01004") which is removed. Columns
// 1 through 25 map positionally to nutrient.Fields(). Cells are read like a
// leading decimal number ("12.3", "0.5mg"); anything else, including "Tr"
// and "-", becomes not-available. Ids are assigned 1, 2, ... in row order.
package convert
