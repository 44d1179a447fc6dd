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
// Package tool is the operation façade in front of the query engine.
//
// It declares each operation (name, description, parameter schema), decodes
// and validates untyped arguments, dispatches to the engine, and wraps the
// outcome in a Result whose text form is the response returned to agents.
//
// Failures come in two tiers:
//
//   - Rejections: unknown operation or schema-violating arguments. Invoke
//     returns an error and the engine is not called.
//   - Domain outcomes: an unknown food id or too few resolvable ids for a
//     comparison. Invoke succeeds and the Result carries an ErrorPayload.
//
// The same Facade backs the MCP stdio server (pkg/mcp) and the HTTP routes
// registered by (*Facade).Routes.
package tool
