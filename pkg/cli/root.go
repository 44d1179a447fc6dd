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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/cnfood/cn-food-mcp/pkg/defaults"
	"github.com/cnfood/cn-food-mcp/pkg/logging"
)

const (
	name           = "cnfood"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := defaults.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", defaults.EnvFile, err)
	}

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Usage:   "Query the China Food Composition dataset",
		Description: `cnfood answers nutrition questions about Chinese foods from an in-memory
dataset of per-100g nutrient values.

Run "cnfood mcp" to expose the tools to an MCP client, "cnfood serve" for the
HTTP API, or use the query commands directly.`,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			dataFlag(),
			logLevelFlag(),
		},
		Before: initLogger,
		Commands: []*cli.Command{
			mcpCmd(),
			serveCmd(),
			nutrientsCmd(),
			searchCmd(),
			getCmd(),
			compareCmd(),
			filterCmd(),
			convertCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String(flagLogLevel)
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}
