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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/nutrient"
	"github.com/cnfood/cn-food-mcp/pkg/query"
)

// SearchInput holds the arguments of search_food.
type SearchInput struct {
	Query string `json:"query" validate:"required,min=1"`
}

// GetInput holds the arguments of get_nutrition.
type GetInput struct {
	FoodID int `json:"food_id" validate:"required,gt=0"`
}

// CompareInput holds the arguments of compare_foods.
type CompareInput struct {
	FoodIDs []int `json:"food_ids" validate:"required,min=2,max=5,dive,gt=0"`
}

// FilterInput holds the arguments of filter_by_nutrient.
type FilterInput struct {
	Nutrient string   `json:"nutrient" validate:"required,nutrient"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Limit    *int     `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
	Sort     string   `json:"sort,omitempty" validate:"omitempty,oneof=asc desc"`
}

// Request converts validated input into an engine request with defaults applied.
func (in FilterInput) Request() query.FilterRequest {
	req := query.FilterRequest{
		Nutrient: nutrient.Field(in.Nutrient),
		Min:      in.Min,
		Max:      in.Max,
		Limit:    query.DefaultFilterLimit,
		Sort:     query.SortDesc,
	}
	if in.Limit != nil {
		req.Limit = *in.Limit
	}
	if in.Sort != "" {
		req.Sort = query.SortOrder(in.Sort)
	}
	return req
}

// validate is shared by all inputs. It is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON parameter names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("nutrient", func(fl validator.FieldLevel) bool {
		return nutrient.Field(fl.Field().String()).IsValid()
	})
	return v
}

func decodeRaw(raw []byte, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return cnerrors.Wrap(cnerrors.ErrCodeInvalidRequest, "invalid arguments", err)
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return cnerrors.Wrap(cnerrors.ErrCodeInvalidRequest, "invalid arguments", err)
	}

	fields := make(map[string]any, len(verrs))
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := describeFieldError(fe)
		fields[fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]] = msg
		msgs = append(msgs, msg)
	}
	return cnerrors.NewWithContext(cnerrors.ErrCodeInvalidRequest,
		"invalid arguments: "+strings.Join(msgs, "; "), map[string]any{"fields": fields})
}

func describeFieldError(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", name, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "nutrient":
		return fmt.Sprintf("%s must be one of the %d nutrient fields, got %q", name, nutrient.Count, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}
