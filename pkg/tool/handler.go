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
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cnfood/cn-food-mcp/pkg/defaults"
	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/serializer"
	"github.com/cnfood/cn-food-mcp/pkg/server"
)

const (
	// RouteList lists tool descriptors.
	RouteList = "/v1/tools"

	// RouteInvoke invokes the tool named in the path.
	RouteInvoke = "/v1/tools/{name}"
)

// Routes returns the HTTP handlers keyed by ServeMux pattern.
//
//	GET  /v1/tools         tool descriptors with input schemas
//	POST /v1/tools/{name}  invoke with a JSON object body
func (f *Facade) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteList:   f.handleList,
		RouteInvoke: f.handleInvoke,
	}
}

func (f *Facade) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.MethodNotAllowed(w, r, http.MethodGet)
		return
	}

	out := make([]Descriptor, len(f.definitions))
	for i, d := range f.definitions {
		out[i] = d.Describe()
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.ToolCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, out)
}

// handleInvoke answers domain outcomes (unknown food, too few foods) with
// 200 and an error payload; malformed requests get an ErrorResponse.
func (f *Facade) handleInvoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.MethodNotAllowed(w, r, http.MethodPost)
		return
	}

	name := r.PathValue("name")

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, cnerrors.ErrCodeInvalidRequest,
				"request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, cnerrors.ErrCodeInvalidRequest,
			"failed to read request body", false, map[string]any{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ToolHandlerTimeout)
	defer cancel()

	res, err := f.InvokeRaw(ctx, name, raw)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "tool invocation failed", map[string]any{"tool": name})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, res.Payload)
}
