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

	"github.com/urfave/cli/v3"

	"github.com/cnfood/cn-food-mcp/pkg/api"
	"github.com/cnfood/cn-food-mcp/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen host (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "Listen port",
				Sources: cli.EnvVars(server.EnvPort),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx, cmd.String(flagData),
				server.WithAddress(cmd.String("address"), cmd.Int("port")))
		},
	}
}
