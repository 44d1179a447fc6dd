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
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
)

type fixture struct {
	name    string
	protein food.Value
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	rows := []fixture{
		{"小麦粉", food.Some(11.2)},
		{"Apple Pie", food.Some(0.4)},
		{"ÄPFEL", food.None()},
		{"豆腐", food.Some(6.6)},
		{"食盐", food.Some(0)},
		{"白砂糖", food.Some(0)},
		{"鸡蛋", food.Some(13.1)},
		{"鸭蛋", food.Some(12.6)},
		{"鸡蛋黄", food.Some(15.2)},
		{"水", food.Some(0)},
	}

	records := make([]food.Record, len(rows))
	for i, r := range rows {
		records[i] = food.Record{Name: r.name, Protein: r.protein}
	}
	records[6].Fat = food.Some(8.8)
	records[6].Energy = food.Some(139)
	records[6].Carbohydrate = food.Some(2.4)

	ds, err := food.NewDataset(records)
	require.NoError(t, err)
	return NewEngine(ds, nil)
}

func ids[T any](items []T, id func(T) int) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}

func summaryIDs(s []Summary) []int { return ids(s, func(x Summary) int { return x.ID }) }
func recordIDs(r []food.Record) []int { return ids(r, func(x food.Record) int { return x.ID }) }
func filterIDs(f []FilterItem) []int { return ids(f, func(x FilterItem) int { return x.ID }) }
func ptr(v float64) *float64 { return &v }

func requireCode(t *testing.T, err error, code cnerrors.ErrorCode) *cnerrors.StructuredError {
	t.Helper()
	require.Error(t, err)
	se, ok := cnerrors.As(err)
	require.True(t, ok, "expected structured error, got %T", err)
	require.Equal(t, code, se.Code)
	return se
}

func TestListNutrients(t *testing.T) {
	e := newTestEngine(t)

	got := e.ListNutrients()
	assert.True(t, got.Per100g)
	require.Len(t, got.Nutrients, nutrient.Count)
	assert.Equal(t, nutrient.Energy, got.Nutrients[0].Field)

	first, err := json.Marshal(e.ListNutrients())
	require.NoError(t, err)
	second, err := json.Marshal(e.ListNutrients())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, string(first), `"per_100g":true`)
}

func TestSearch(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"chinese substring", "鸡蛋", []int{7, 9}},
		{"single char", "蛋", []int{7, 8, 9}},
		{"lower latin", "apple", []int{2}},
		{"upper latin", "APPLE", []int{2}},
		{"mixed case", "aPpLe pIe", []int{2}},
		{"non-ascii upper", "ÄPFEL", []int{3}},
		{"non-ascii lower", "äpf", []int{3}},
		{"no match", "牛肉", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Search(tt.query)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), got.Count)
			assert.Equal(t, tt.want, summaryIDs(got.Foods))
		})
	}
}

func TestSearchSummaryFields(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Search("鸡蛋")
	require.NoError(t, err)
	require.NotEmpty(t, got.Foods)

	out, err := json.Marshal(got.Foods[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"鸡蛋","energy_kcal":139,"protein_g":13.1,"fat_g":8.8,"carbohydrate_g":2.4}`, string(out))
}

func TestSearchEmptyResultEncodesAsList(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Search("zzz")
	require.NoError(t, err)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"foods":[]}`, string(out))
}

func TestSearchLimit(t *testing.T) {
	records := make([]food.Record, 30)
	for i := range records {
		records[i] = food.Record{Name: fmt.Sprintf("米饭%d", i)}
	}
	ds, err := food.NewDataset(records)
	require.NoError(t, err)

	got, err := NewEngine(ds, nil).Search("米饭")
	require.NoError(t, err)
	require.Equal(t, SearchLimit, got.Count)
	for i, s := range got.Foods {
		assert.Equal(t, i+1, s.ID, "results keep ascending id order")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	_, err := newTestEngine(t).Search("")
	requireCode(t, err, cnerrors.ErrCodeInvalidRequest)
}

func TestGet(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "鸡蛋", got.Name)
	assert.Equal(t, food.Some(13.1), got.Protein)
	assert.Equal(t, UnitBasis, got.Unit)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	for _, f := range nutrient.SupportedFields() {
		assert.Contains(t, fields, f)
	}
	assert.Nil(t, fields["selenium"], "absent values encode as null")
	assert.EqualValues(t, 100, fields["unit"])
	assert.Len(t, fields, nutrient.Count+3)
}

func TestGetNotFound(t *testing.T) {
	_, err := newTestEngine(t).Get(999999)
	se := requireCode(t, err, cnerrors.ErrCodeNotFound)
	assert.Equal(t, 999999, se.Context["food_id"])
	assert.Contains(t, se.Message, "999999")
}

func TestGetInvalidID(t *testing.T) {
	e := newTestEngine(t)
	for _, id := range []int{0, -3} {
		_, err := e.Get(id)
		requireCode(t, err, cnerrors.ErrCodeInvalidRequest)
	}
}

func TestDetailYAMLInlinesRecord(t *testing.T) {
	got, err := newTestEngine(t).Get(7)
	require.NoError(t, err)

	out, err := yaml.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(out), "protein: 13.1\n")
	assert.Contains(t, string(out), "unit: 100\n")
	assert.Contains(t, string(out), "selenium: null\n")
}

func TestCompare(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		ids  []int
		want []int
	}{
		{"two ids", []int{7, 8}, []int{7, 8}},
		{"input order", []int{9, 1, 4}, []int{9, 1, 4}},
		{"duplicates kept", []int{7, 7}, []int{7, 7}},
		{"unknown dropped", []int{999, 7, 1000, 1}, []int{7, 1}},
		{"five ids", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Compare(tt.ids)
			require.NoError(t, err)
			assert.Equal(t, UnitBasis, got.Unit)
			assert.Equal(t, tt.want, recordIDs(got.Foods))
		})
	}
}

func TestCompareInsufficient(t *testing.T) {
	e := newTestEngine(t)

	for _, in := range [][]int{{7, 999}, {998, 999}} {
		_, err := e.Compare(in)
		requireCode(t, err, cnerrors.ErrCodeInsufficientData)
	}
}

func TestCompareInvalidInput(t *testing.T) {
	e := newTestEngine(t)

	for _, in := range [][]int{nil, {7}, {1, 2, 3, 4, 5, 6}, {7, 0}, {-1, 7}} {
		_, err := e.Compare(in)
		requireCode(t, err, cnerrors.ErrCodeInvalidRequest)
	}
}

func TestFilterDescending(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Filter(FilterRequest{Nutrient: nutrient.Protein, Sort: SortDesc, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, nutrient.Protein, got.Nutrient)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, []int{9, 7, 8, 1, 4}, filterIDs(got.Foods))

	for i := 1; i < len(got.Foods); i++ {
		assert.GreaterOrEqual(t, got.Foods[i-1].Value, got.Foods[i].Value)
	}
}

func TestFilterDefaults(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Filter(FilterRequest{Nutrient: nutrient.Protein})
	require.NoError(t, err)
	// Record 3 has no protein value.
	assert.Equal(t, []int{9, 7, 8, 1, 4, 2, 5, 6, 10}, filterIDs(got.Foods))
}

func TestFilterAscendingStableTies(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Filter(FilterRequest{Nutrient: nutrient.Protein, Sort: SortAsc, Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 10, 2}, filterIDs(got.Foods))
}

func TestFilterBounds(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		min  *float64
		max  *float64
		want []int
	}{
		{"exact value", ptr(13.1), ptr(13.1), []int{7}},
		{"range", ptr(13), ptr(14), []int{7}},
		{"min only", ptr(12.6), nil, []int{9, 7, 8}},
		{"max only", nil, ptr(0), []int{5, 6, 10}},
		{"min above all", ptr(1000), nil, []int{}},
		{"inverted range", ptr(14), ptr(13), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Filter(FilterRequest{Nutrient: nutrient.Protein, Min: tt.min, Max: tt.max})
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), got.Count)
			assert.Equal(t, tt.want, filterIDs(got.Foods))
		})
	}
}

func TestFilterExcludesNotAvailable(t *testing.T) {
	e := newTestEngine(t)

	got, err := e.Filter(FilterRequest{Nutrient: nutrient.Fat, Min: ptr(-1000)})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, filterIDs(got.Foods))

	got, err = e.Filter(FilterRequest{Nutrient: nutrient.Selenium})
	require.NoError(t, err)
	assert.Zero(t, got.Count)
}

func TestFilterInvalid(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		req  FilterRequest
	}{
		{"unknown nutrient", FilterRequest{Nutrient: "sugar"}},
		{"empty nutrient", FilterRequest{}},
		{"limit too large", FilterRequest{Nutrient: nutrient.Protein, Limit: 51}},
		{"negative limit", FilterRequest{Nutrient: nutrient.Protein, Limit: -1}},
		{"bad sort", FilterRequest{Nutrient: nutrient.Protein, Sort: "up"}},
		{"nan min", FilterRequest{Nutrient: nutrient.Protein, Min: ptr(math.NaN())}},
		{"inf max", FilterRequest{Nutrient: nutrient.Protein, Max: ptr(math.Inf(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Filter(tt.req)
			requireCode(t, err, cnerrors.ErrCodeInvalidRequest)
		})
	}
}

func TestFilterItemEncoding(t *testing.T) {
	got, err := newTestEngine(t).Filter(FilterRequest{Nutrient: nutrient.Protein, Min: ptr(13), Max: ptr(14)})
	require.NoError(t, err)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, `{"nutrient":"protein","count":1,"foods":[{"id":7,"name":"鸡蛋","protein":13.1}]}`, string(out))

	y, err := yaml.Marshal(got.Foods[0])
	require.NoError(t, err)
	assert.Equal(t, "id: 7\nname: 鸡蛋\nprotein: 13.1\n", string(y))
}

func TestParseSortOrder(t *testing.T) {
	for in, want := range map[string]SortOrder{"": SortDesc, "desc": SortDesc, "ASC": SortAsc} {
		got, err := ParseSortOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseSortOrder("random")
	assert.Error(t, err)
	assert.Equal(t, []string{"asc", "desc"}, GetSortOrders())
}

func TestEngineConcurrentReads(t *testing.T) {
	e := newTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := e.Search(strings.Repeat("蛋", 1+i%2)); err != nil {
				t.Error(err)
			}
			if _, err := e.Filter(FilterRequest{Nutrient: nutrient.Protein, Limit: 1 + i}); err != nil {
				t.Error(err)
			}
			if _, err := e.Compare([]int{7, 7}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}
