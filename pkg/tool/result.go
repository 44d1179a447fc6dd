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
	"fmt"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
)

// ErrorPayload is the body of a domain outcome such as an unknown food id.
type ErrorPayload struct {
	Error  string             `json:"error" yaml:"error"`
	Code   cnerrors.ErrorCode `json:"code" yaml:"code"`
	FoodID *int               `json:"food_id,omitempty" yaml:"food_id,omitempty"`
}

func newErrorPayload(se *cnerrors.StructuredError) *ErrorPayload {
	p := &ErrorPayload{Error: se.Message, Code: se.Code}
	if id, ok := se.Context["food_id"].(int); ok {
		p.FoodID = &id
	}
	return p
}

// Result is the successful outcome of an invocation.
type Result struct {
	// Tool is the invoked operation name.
	Tool string
	// Payload is the engine result or an *ErrorPayload.
	Payload any
	// IsError marks a domain outcome carried as a payload.
	IsError bool
}

// Text returns the payload as indented JSON.
func (r *Result) Text() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Payload); err != nil {
		return "", fmt.Errorf("failed to encode %s result: %w", r.Tool, err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
