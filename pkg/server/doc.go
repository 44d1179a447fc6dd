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
// Package server provides the HTTP plumbing shared by the cnfood daemon.
//
// A Server wraps net/http with a fixed middleware chain applied to every
// registered handler:
//
//   - Prometheus RED metrics keyed by route pattern
//   - API version negotiation via the Accept header
//     (application/vnd.cnfood.v1+json) echoed as X-API-Version
//   - request id propagation (X-Request-Id, UUID)
//   - panic recovery
//   - token bucket rate limiting (golang.org/x/time/rate)
//   - request logging through log/slog
//
// System endpoints /health, /ready and /metrics bypass the chain.
//
// Handlers are supplied by the caller:
//
//	s := server.New(
//	    server.WithName("cnfoodd"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Errors are returned in a single envelope:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "...",
//	  "details": {...},
//	  "requestId": "...",
//	  "timestamp": "...",
//	  "retryable": false
//	}
//
// Configuration defaults come from pkg/defaults and may be overridden with
// the PORT and SHUTDOWN_TIMEOUT_SECONDS environment variables.
package server
