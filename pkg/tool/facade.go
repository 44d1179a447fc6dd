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
	"log/slog"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/query"
)

// unknownToolLabel bounds metric cardinality for rejected names.
const unknownToolLabel = "unknown"

type handlerFunc func(ctx context.Context, raw []byte) (any, error)

// Facade validates requests and dispatches them to the query engine.
// It is safe for concurrent use.
type Facade struct {
	engine      *query.Engine
	definitions []Definition
	handlers    map[string]handlerFunc
}

// New returns a Facade over engine.
func New(engine *query.Engine) *Facade {
	f := &Facade{
		engine:      engine,
		definitions: Definitions(),
	}
	f.handlers = map[string]handlerFunc{
		query.OpListNutrients: f.listNutrients,
		query.OpSearch:        f.search,
		query.OpGet:           f.get,
		query.OpCompare:       f.compare,
		query.OpFilter:        f.filter,
	}
	return f
}

// Definitions returns the declared operations.
func (f *Facade) Definitions() []Definition {
	out := make([]Definition, len(f.definitions))
	copy(out, f.definitions)
	return out
}

// Lookup returns the definition named name.
func (f *Facade) Lookup(name string) (Definition, bool) {
	for _, d := range f.definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Invoke runs the named operation with untyped arguments.
func (f *Facade) Invoke(ctx context.Context, name string, args map[string]any) (*Result, error) {
	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		toolInvocationsTotal.WithLabelValues(f.metricLabel(name), outcomeRejected).Inc()
		return nil, cnerrors.Wrap(cnerrors.ErrCodeInvalidRequest, "arguments are not valid JSON", err)
	}
	return f.InvokeRaw(ctx, name, raw)
}

// InvokeRaw runs the named operation with JSON-encoded arguments.
// An empty body is treated as an empty object.
func (f *Facade) InvokeRaw(ctx context.Context, name string, raw []byte) (*Result, error) {
	label := f.metricLabel(name)

	h, ok := f.handlers[name]
	if !ok {
		toolInvocationsTotal.WithLabelValues(label, outcomeRejected).Inc()
		return nil, cnerrors.NewWithContext(cnerrors.ErrCodeNotFound, "unknown tool: "+name,
			map[string]any{"tool": name})
	}
	if err := ctx.Err(); err != nil {
		toolInvocationsTotal.WithLabelValues(label, outcomeRejected).Inc()
		return nil, cnerrors.Wrap(cnerrors.ErrCodeTimeout, "request canceled", err)
	}

	payload, err := h(ctx, raw)
	if err == nil {
		toolInvocationsTotal.WithLabelValues(label, outcomeOK).Inc()
		return &Result{Tool: name, Payload: payload}, nil
	}

	se, structured := cnerrors.As(err)
	if structured && (se.Code == cnerrors.ErrCodeNotFound || se.Code == cnerrors.ErrCodeInsufficientData) {
		toolInvocationsTotal.WithLabelValues(label, outcomeDomain).Inc()
		slog.Debug("tool returned domain error", "tool", name, "code", se.Code, "message", se.Message)
		return &Result{Tool: name, Payload: newErrorPayload(se), IsError: true}, nil
	}

	toolInvocationsTotal.WithLabelValues(label, outcomeRejected).Inc()
	slog.Debug("tool request rejected", "tool", name, "error", err)
	return nil, err
}

func (f *Facade) metricLabel(name string) string {
	if _, ok := f.handlers[name]; ok {
		return name
	}
	return unknownToolLabel
}

func (f *Facade) listNutrients(_ context.Context, _ []byte) (any, error) {
	return f.engine.ListNutrients(), nil
}

func (f *Facade) search(_ context.Context, raw []byte) (any, error) {
	var in SearchInput
	if err := decodeRaw(raw, &in); err != nil {
		return nil, err
	}
	return f.engine.Search(in.Query)
}

func (f *Facade) get(_ context.Context, raw []byte) (any, error) {
	var in GetInput
	if err := decodeRaw(raw, &in); err != nil {
		return nil, err
	}
	return f.engine.Get(in.FoodID)
}

func (f *Facade) compare(_ context.Context, raw []byte) (any, error) {
	var in CompareInput
	if err := decodeRaw(raw, &in); err != nil {
		return nil, err
	}
	return f.engine.Compare(in.FoodIDs)
}

func (f *Facade) filter(_ context.Context, raw []byte) (any, error) {
	var in FilterInput
	if err := decodeRaw(raw, &in); err != nil {
		return nil, err
	}
	return f.engine.Filter(in.Request())
}
