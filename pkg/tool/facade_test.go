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
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
	"github.com/cnfood/cn-food-mcp/pkg/query"
)

func newTestFacade(t *testing.T) *Facade {
	t.Helper()
	ds, err := food.LoadEmbedded()
	require.NoError(t, err)
	return New(query.NewEngine(ds, nil))
}

func requireRejected(t *testing.T, err error, code cnerrors.ErrorCode) *cnerrors.StructuredError {
	t.Helper()
	require.Error(t, err)
	se, ok := cnerrors.As(err)
	require.True(t, ok, "expected structured error, got %T", err)
	require.Equal(t, code, se.Code, se.Message)
	return se
}

func TestDefinitions(t *testing.T) {
	f := newTestFacade(t)

	names := make([]string, 0)
	for _, d := range f.Definitions() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
	}
	assert.Equal(t, []string{
		"list_nutrients", "search_food", "get_nutrition", "compare_foods", "filter_by_nutrient",
	}, names)

	d, ok := f.Lookup("filter_by_nutrient")
	require.True(t, ok)
	schema := d.InputSchema()
	assert.Equal(t, []string{"nutrient"}, schema["required"])

	props := schema["properties"].(map[string]any)
	assert.Len(t, props["nutrient"].(map[string]any)["enum"], nutrient.Count)
	assert.Equal(t, 20, props["limit"].(map[string]any)["default"])
	assert.Equal(t, "desc", props["sort"].(map[string]any)["default"])

	_, ok = f.Lookup("nope")
	assert.False(t, ok)
}

func TestDefinitionsCopy(t *testing.T) {
	f := newTestFacade(t)
	defs := f.Definitions()
	defs[0].Name = "mutated"
	assert.Equal(t, "list_nutrients", f.Definitions()[0].Name)
}

func TestInputSchemaJSON(t *testing.T) {
	d, ok := newTestFacade(t).Lookup("compare_foods")
	require.True(t, ok)

	b, err := json.Marshal(d.Describe())
	require.NoError(t, err)

	var got struct {
		Name        string `json:"name"`
		InputSchema struct {
			Type       string   `json:"type"`
			Required   []string `json:"required"`
			Properties map[string]struct {
				Type     string `json:"type"`
				MinItems int    `json:"minItems"`
				MaxItems int    `json:"maxItems"`
				Items    struct {
					Type             string  `json:"type"`
					ExclusiveMinimum float64 `json:"exclusiveMinimum"`
				} `json:"items"`
			} `json:"properties"`
		} `json:"inputSchema"`
	}
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "compare_foods", got.Name)
	assert.Equal(t, "object", got.InputSchema.Type)
	assert.Equal(t, []string{"food_ids"}, got.InputSchema.Required)
	ids := got.InputSchema.Properties["food_ids"]
	assert.Equal(t, "array", ids.Type)
	assert.Equal(t, 2, ids.MinItems)
	assert.Equal(t, 5, ids.MaxItems)
	assert.Equal(t, "integer", ids.Items.Type)
	assert.Zero(t, ids.Items.ExclusiveMinimum)
}

func TestInvokeSuccess(t *testing.T) {
	f := newTestFacade(t)
	ctx := context.Background()

	t.Run("list nutrients", func(t *testing.T) {
		res, err := f.Invoke(ctx, "list_nutrients", nil)
		require.NoError(t, err)
		assert.False(t, res.IsError)
		list := res.Payload.(*query.NutrientList)
		assert.True(t, list.Per100g)
		assert.Len(t, list.Nutrients, nutrient.Count)
	})

	t.Run("search", func(t *testing.T) {
		res, err := f.Invoke(ctx, "search_food", map[string]any{"query": "鸡"})
		require.NoError(t, err)
		got := res.Payload.(*query.SearchResult)
		require.Equal(t, 2, got.Count)
		assert.Equal(t, 7, got.Foods[0].ID)
		assert.Equal(t, 12, got.Foods[1].ID)
	})

	t.Run("get accepts whole float ids", func(t *testing.T) {
		res, err := f.Invoke(ctx, "get_nutrition", map[string]any{"food_id": float64(7)})
		require.NoError(t, err)
		detail := res.Payload.(*query.Detail)
		assert.Equal(t, "鸡蛋", detail.Name)
		assert.Equal(t, query.UnitBasis, detail.Unit)
	})

	t.Run("compare keeps order", func(t *testing.T) {
		res, err := f.Invoke(ctx, "compare_foods", map[string]any{"food_ids": []int{8, 7}})
		require.NoError(t, err)
		cmp := res.Payload.(*query.Comparison)
		require.Len(t, cmp.Foods, 2)
		assert.Equal(t, 8, cmp.Foods[0].ID)
		assert.Equal(t, 7, cmp.Foods[1].ID)
	})

	t.Run("filter defaults", func(t *testing.T) {
		res, err := f.Invoke(ctx, "filter_by_nutrient", map[string]any{"nutrient": "protein", "limit": 3})
		require.NoError(t, err)
		out := res.Payload.(*query.FilterResult)
		assert.Equal(t, nutrient.Protein, out.Nutrient)
		require.Equal(t, 3, out.Count)
		assert.Equal(t, []int{15, 24, 16}, []int{out.Foods[0].ID, out.Foods[1].ID, out.Foods[2].ID})
	})

	t.Run("filter ascending with bounds", func(t *testing.T) {
		res, err := f.Invoke(ctx, "filter_by_nutrient", map[string]any{
			"nutrient": "vitamin_c", "min": 30, "max": 40, "sort": "asc",
		})
		require.NoError(t, err)
		out := res.Payload.(*query.FilterResult)
		require.Equal(t, 3, out.Count)
		assert.Equal(t, []int{17, 22, 6}, []int{out.Foods[0].ID, out.Foods[1].ID, out.Foods[2].ID})
	})
}

func TestInvokeDomainOutcomes(t *testing.T) {
	f := newTestFacade(t)
	ctx := context.Background()

	t.Run("food not found", func(t *testing.T) {
		res, err := f.Invoke(ctx, "get_nutrition", map[string]any{"food_id": 999999})
		require.NoError(t, err)
		require.True(t, res.IsError)

		p := res.Payload.(*ErrorPayload)
		assert.Equal(t, cnerrors.ErrCodeNotFound, p.Code)
		require.NotNil(t, p.FoodID)
		assert.Equal(t, 999999, *p.FoodID)
		assert.Contains(t, p.Error, "999999")
	})

	t.Run("compare with one resolvable food", func(t *testing.T) {
		res, err := f.Invoke(ctx, "compare_foods", map[string]any{"food_ids": []int{7, 999999}})
		require.NoError(t, err)
		require.True(t, res.IsError)

		p := res.Payload.(*ErrorPayload)
		assert.Equal(t, cnerrors.ErrCodeInsufficientData, p.Code)
		assert.Nil(t, p.FoodID)
	})
}

func TestInvokeRejected(t *testing.T) {
	f := newTestFacade(t)

	tests := []struct {
		name  string
		tool  string
		args  map[string]any
		code  cnerrors.ErrorCode
		field string
	}{
		{"unknown tool", "delete_food", nil, cnerrors.ErrCodeNotFound, ""},
		{"search missing query", "search_food", nil, cnerrors.ErrCodeInvalidRequest, "query"},
		{"search empty query", "search_food", map[string]any{"query": ""}, cnerrors.ErrCodeInvalidRequest, "query"},
		{"search wrong type", "search_food", map[string]any{"query": 5}, cnerrors.ErrCodeInvalidRequest, ""},
		{"get missing id", "get_nutrition", nil, cnerrors.ErrCodeInvalidRequest, "food_id"},
		{"get negative id", "get_nutrition", map[string]any{"food_id": -3}, cnerrors.ErrCodeInvalidRequest, "food_id"},
		{"get fractional id", "get_nutrition", map[string]any{"food_id": 7.5}, cnerrors.ErrCodeInvalidRequest, ""},
		{"compare one id", "compare_foods", map[string]any{"food_ids": []int{7}}, cnerrors.ErrCodeInvalidRequest, "food_ids"},
		{"compare six ids", "compare_foods", map[string]any{"food_ids": []int{1, 2, 3, 4, 5, 6}}, cnerrors.ErrCodeInvalidRequest, "food_ids"},
		{"compare non positive id", "compare_foods", map[string]any{"food_ids": []int{7, 0}}, cnerrors.ErrCodeInvalidRequest, "food_ids[1]"},
		{"filter unknown nutrient", "filter_by_nutrient", map[string]any{"nutrient": "sugar"}, cnerrors.ErrCodeInvalidRequest, "nutrient"},
		{"filter limit zero", "filter_by_nutrient", map[string]any{"nutrient": "fat", "limit": 0}, cnerrors.ErrCodeInvalidRequest, "limit"},
		{"filter limit too large", "filter_by_nutrient", map[string]any{"nutrient": "fat", "limit": 51}, cnerrors.ErrCodeInvalidRequest, "limit"},
		{"filter bad sort", "filter_by_nutrient", map[string]any{"nutrient": "fat", "sort": "up"}, cnerrors.ErrCodeInvalidRequest, "sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.Invoke(context.Background(), tt.tool, tt.args)
			assert.Nil(t, res)
			se := requireRejected(t, err, tt.code)
			if tt.field != "" {
				fields, ok := se.Context["fields"].(map[string]any)
				require.True(t, ok, "expected field details, got %v", se.Context)
				assert.Contains(t, fields, tt.field)
			}
		})
	}
}

func TestInvokeUnknownArgumentsIgnored(t *testing.T) {
	res, err := newTestFacade(t).Invoke(context.Background(), "search_food",
		map[string]any{"query": "蛋", "page": 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Payload.(*query.SearchResult).Count)
}

func TestInvokeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFacade(t).Invoke(ctx, "list_nutrients", nil)
	requireRejected(t, err, cnerrors.ErrCodeTimeout)
}

func TestInvokeRawEmptyBody(t *testing.T) {
	res, err := newTestFacade(t).InvokeRaw(context.Background(), "list_nutrients", nil)
	require.NoError(t, err)
	assert.Equal(t, "list_nutrients", res.Tool)

	_, err = newTestFacade(t).InvokeRaw(context.Background(), "search_food", []byte("[1,2]"))
	requireRejected(t, err, cnerrors.ErrCodeInvalidRequest)
}

func TestResultText(t *testing.T) {
	f := newTestFacade(t)

	res, err := f.Invoke(context.Background(), "get_nutrition", map[string]any{"food_id": 7})
	require.NoError(t, err)
	text, err := res.Text()
	require.NoError(t, err)

	assert.Contains(t, text, `"name": "鸡蛋"`)
	assert.Contains(t, text, `"vitamin_c": null`)
	assert.Contains(t, text, `"unit": 100`)
	assert.False(t, strings.HasSuffix(text, "\n"))

	res, err = f.Invoke(context.Background(), "get_nutrition", map[string]any{"food_id": 42})
	require.NoError(t, err)
	text, err = res.Text()
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "NOT_FOUND", payload["code"])
	assert.Equal(t, float64(42), payload["food_id"])
	assert.Equal(t, "未找到 ID 为 42 的食物", payload["error"])
}

func TestFilterRequestDefaults(t *testing.T) {
	req := FilterInput{Nutrient: "fat"}.Request()
	assert.Equal(t, query.DefaultFilterLimit, req.Limit)
	assert.Equal(t, query.SortDesc, req.Sort)
	assert.Nil(t, req.Min)
	assert.Nil(t, req.Max)

	limit := 5
	req = FilterInput{Nutrient: "fat", Limit: &limit, Sort: "asc"}.Request()
	assert.Equal(t, 5, req.Limit)
	assert.Equal(t, query.SortAsc, req.Sort)
}
