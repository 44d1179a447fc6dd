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
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cnfood/cn-food-mcp/pkg/mcp"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the nutrition tools over the Model Context Protocol (stdio)",
		Description: `Starts an MCP server named cn-food-mcp that reads JSON-RPC requests from
stdin and writes responses to stdout. Logs go to stderr.

Example client configuration:

  {"command": "cnfood", "args": ["mcp"]}`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := newFacade(ctx, cmd)
			if err != nil {
				return err
			}

			s, err := mcp.NewServer(f, version)
			if err != nil {
				return err
			}
			return s.Serve(ctx, os.Stdin, os.Stdout)
		},
	}
}
