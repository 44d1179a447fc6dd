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
// Package cli implements the cnfood command line.
//
// # Commands
//
// mcp - Serve the Model Context Protocol over stdio:
//
//	cnfood mcp
//
// Registers the five nutrition tools and answers JSON-RPC on stdin/stdout.
// Logs are written to stderr.
//
// serve - Run the HTTP API (same as cnfoodd):
//
//	cnfood serve --port 8080
//
// nutrients, search, get, compare, filter - Query the dataset directly:
//
//	cnfood search 鸡蛋
//	cnfood get --format yaml 7
//	cnfood compare 7 8 12
//	cnfood filter --nutrient protein --min 10 --limit 5 --sort desc
//
// Arguments are validated exactly as the tool interfaces validate them.
// Domain outcomes such as an unknown id are printed as an error payload.
//
// convert - Convert the published CSV table into the dataset JSON:
//
//	cnfood convert --input data2026.csv --output foods.json
//
// # Global Flags
//
//	--data         Dataset path or URL (env CNFOOD_DATA, default: embedded sample)
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// The query commands also accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//
// A .env file in the working directory is loaded before flags are parsed.
package cli
