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
// Package mcp exposes the tool façade as a Model Context Protocol server
// over stdio, built on github.com/mark3labs/mcp-go.
//
// Every tool definition is registered with its JSON Schema. Successful
// invocations, including domain outcomes such as an unknown food id, are
// returned as a single text content item holding indented JSON. Requests
// the façade rejects (unknown tool, schema violation) surface as JSON-RPC
// errors.
//
// Stdout carries the protocol stream only; logs go to stderr.
package mcp
