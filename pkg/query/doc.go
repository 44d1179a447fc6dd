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
// Package query implements the read-only query engine over a food dataset.
//
// The Engine answers five operations:
//
//   - ListNutrients: the nutrient catalog, flagged as per-100 g amounts
//   - Search: case-insensitive substring match on names, first 20 in id order
//   - Get: one full record by id
//   - Compare: 2 to 5 full records by id, unresolved ids dropped
//   - Filter: records within inclusive bounds on one nutrient, stably ranked
//
// An Engine is built from an explicit Dataset and Catalog and never mutates
// them, so one Engine may serve concurrent callers without locking.
//
// Failures are *errors.StructuredError values. ErrCodeInvalidRequest marks
// input that should have been rejected before reaching the engine;
// ErrCodeNotFound and ErrCodeInsufficientData are domain outcomes that
// transports report as successful payloads.
package query
