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
// Package api assembles the cnfoodd HTTP API.
//
// Serve configures structured logging, loads the dataset, builds the query
// engine and tool façade, and hands the routes to pkg/server, which owns
// the middleware chain, system endpoints and graceful shutdown.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/tools         - Tool descriptors with JSON Schema input
//   - POST /v1/tools/{name}  - Invoke a tool with a JSON object body
//
// System endpoints:
//   - GET /health  - Liveness
//   - GET /ready   - Readiness
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -s -X POST http://localhost:8080/v1/tools/search_food \
//	  -H "Content-Type: application/json" \
//	  -d '{"query":"鸡蛋"}'
//
// # Configuration
//
// Environment variables, optionally loaded from .env:
//   - CNFOOD_DATA: Dataset path or http(s) URL (default: embedded sample)
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown window (default: 30)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/cnfood/cn-food-mcp/pkg/api.version=1.0.0'"
package api
