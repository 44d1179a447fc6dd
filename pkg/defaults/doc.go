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

// Package defaults provides centralized configuration constants for cn-food-mcp.
//
// This package defines timeout values and size limits used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Categories
//
//   - Handler timeouts: For HTTP tool invocations
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For downloading a remote dataset
//   - Dataset limits: For the one-time startup load
//   - Environment: Variable names and optional .env loading
//
// # Usage
//
//	import "github.com/cnfood/cn-food-mcp/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ToolHandlerTimeout)
//	defer cancel()
package defaults
