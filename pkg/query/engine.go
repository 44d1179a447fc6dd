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
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
)

// Operation names.
const (
	OpListNutrients = "list_nutrients"
	OpSearch        = "search_food"
	OpGet           = "get_nutrition"
	OpCompare       = "compare_foods"
	OpFilter        = "filter_by_nutrient"
)

// Engine answers queries over an immutable dataset.
type Engine struct {
	dataset *food.Dataset
	catalog *nutrient.Catalog
	// names holds the lowercased record names, indexed like dataset.
	names []string
}

// NewEngine returns an Engine over ds. A nil catalog selects nutrient.Default().
func NewEngine(ds *food.Dataset, catalog *nutrient.Catalog) *Engine {
	if catalog == nil {
		catalog = nutrient.Default()
	}

	lower := cases.Lower(language.Und)
	names := make([]string, ds.Len())
	for i, rec := range ds.All() {
		names[i] = lower.String(rec.Name)
	}

	return &Engine{
		dataset: ds,
		catalog: catalog,
		names:   names,
	}
}

// Dataset returns the dataset the engine reads.
func (e *Engine) Dataset() *food.Dataset {
	return e.dataset
}

// ListNutrients returns the nutrient catalog in canonical order.
func (e *Engine) ListNutrients() *NutrientList {
	start := time.Now()
	out := &NutrientList{
		Per100g:   true,
		Nutrients: e.catalog.Descriptors(),
	}
	observe(OpListNutrients, start, len(out.Nutrients), nil)
	return out
}

// Search returns records whose name contains query, ignoring case, in
// dataset order and capped at SearchLimit.
func (e *Engine) Search(query string) (result *SearchResult, err error) {
	start := time.Now()
	defer func() { observe(OpSearch, start, resultCount(result), err) }()

	if query == "" {
		return nil, cnerrors.New(cnerrors.ErrCodeInvalidRequest, "query must not be empty")
	}

	// A Caser carries state, so each call gets its own.
	q := cases.Lower(language.Und).String(query)

	foods := make([]Summary, 0)
	for i, name := range e.names {
		if !strings.Contains(name, q) {
			continue
		}
		foods = append(foods, summaryOf(e.dataset.At(i)))
		if len(foods) == SearchLimit {
			break
		}
	}

	slog.Debug("search completed", "query", query, "matches", len(foods))
	return &SearchResult{Count: len(foods), Foods: foods}, nil
}

func resultCount(r *SearchResult) int {
	if r == nil {
		return 0
	}
	return r.Count
}

// Get returns the full record with the given id.
func (e *Engine) Get(id int) (detail *Detail, err error) {
	start := time.Now()
	defer func() { observe(OpGet, start, boolCount(detail != nil), err) }()

	if id <= 0 {
		return nil, cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
			"food_id must be a positive integer", map[string]any{"food_id": id})
	}

	rec, ok := e.dataset.ByID(id)
	if !ok {
		return nil, notFound(id)
	}
	return &Detail{Record: *rec, Unit: UnitBasis}, nil
}

func notFound(id int) error {
	return cnerrors.NewWithContext(cnerrors.ErrCodeNotFound,
		fmt.Sprintf("未找到 ID 为 %d 的食物", id), map[string]any{"food_id": id})
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compare returns the records for ids in input order. Unknown ids are
// dropped and duplicates are kept; fewer than MinCompareIDs resolved
// records is an ErrCodeInsufficientData error.
func (e *Engine) Compare(ids []int) (result *Comparison, err error) {
	start := time.Now()
	defer func() {
		n := 0
		if result != nil {
			n = len(result.Foods)
		}
		observe(OpCompare, start, n, err)
	}()

	if len(ids) < MinCompareIDs || len(ids) > MaxCompareIDs {
		return nil, cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("food_ids must contain %d to %d ids", MinCompareIDs, MaxCompareIDs),
			map[string]any{"count": len(ids)})
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
				"food_ids must be positive integers", map[string]any{"food_id": id})
		}
	}

	foods := make([]food.Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := e.dataset.ByID(id); ok {
			foods = append(foods, *rec)
		}
	}

	if len(foods) < MinCompareIDs {
		return nil, cnerrors.NewWithContext(cnerrors.ErrCodeInsufficientData,
			"至少需要找到2个有效食物进行对比", map[string]any{"resolved": len(foods)})
	}
	return &Comparison{Unit: UnitBasis, Foods: foods}, nil
}

// Filter returns records whose nutrient value lies within the inclusive
// bounds, ranked by that value and truncated to the limit. Records without
// a value are always excluded. Ties keep dataset order.
func (e *Engine) Filter(req FilterRequest) (result *FilterResult, err error) {
	start := time.Now()
	defer func() {
		n := 0
		if result != nil {
			n = result.Count
		}
		observe(OpFilter, start, n, err)
	}()

	if err := normalizeFilter(&req); err != nil {
		return nil, err
	}

	items := make([]FilterItem, 0)
	for _, rec := range e.dataset.All() {
		v, ok := rec.Value(req.Nutrient).Get()
		if !ok {
			continue
		}
		if req.Min != nil && v < *req.Min {
			continue
		}
		if req.Max != nil && v > *req.Max {
			continue
		}
		items = append(items, FilterItem{ID: rec.ID, Name: rec.Name, Nutrient: req.Nutrient, Value: v})
	}

	if req.Sort == SortAsc {
		slices.SortStableFunc(items, func(a, b FilterItem) int { return cmp.Compare(a.Value, b.Value) })
	} else {
		slices.SortStableFunc(items, func(a, b FilterItem) int { return cmp.Compare(b.Value, a.Value) })
	}

	if len(items) > req.Limit {
		items = items[:req.Limit]
	}

	slog.Debug("filter completed",
		"nutrient", req.Nutrient,
		"sort", req.Sort,
		"limit", req.Limit,
		"matches", len(items),
	)
	return &FilterResult{Nutrient: req.Nutrient, Count: len(items), Foods: items}, nil
}

// normalizeFilter applies defaults and rejects invalid parameters.
func normalizeFilter(req *FilterRequest) error {
	if !req.Nutrient.IsValid() {
		return cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown nutrient field: %q", req.Nutrient),
			map[string]any{"nutrient": string(req.Nutrient)})
	}

	if req.Limit == 0 {
		req.Limit = DefaultFilterLimit
	}
	if req.Limit < MinFilterLimit || req.Limit > MaxFilterLimit {
		return cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("limit must be between %d and %d", MinFilterLimit, MaxFilterLimit),
			map[string]any{"limit": req.Limit})
	}

	sort, err := ParseSortOrder(string(req.Sort))
	if err != nil {
		return cnerrors.Wrap(cnerrors.ErrCodeInvalidRequest, "invalid sort", err)
	}
	req.Sort = sort

	if err := checkBound("min", req.Min); err != nil {
		return err
	}
	return checkBound("max", req.Max)
}

func checkBound(name string, bound *float64) error {
	if bound != nil && (math.IsNaN(*bound) || math.IsInf(*bound, 0)) {
		return cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
			name+" must be a finite number", map[string]any{name: fmt.Sprint(*bound)})
	}
	return nil
}
