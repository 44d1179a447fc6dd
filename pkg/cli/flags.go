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
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cnfood/cn-food-mcp/pkg/defaults"
	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/logging"
	"github.com/cnfood/cn-food-mcp/pkg/query"
	"github.com/cnfood/cn-food-mcp/pkg/serializer"
	"github.com/cnfood/cn-food-mcp/pkg/tool"
)

const (
	flagData     = "data"
	flagLogLevel = "log-level"
	flagOutput   = "output"
	flagFormat   = "format"
)

// Flags carry parse state, so every command tree gets fresh instances.

func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagData,
		Usage:   "Dataset path or http(s) URL (json or yaml); the embedded sample when empty",
		Sources: cli.EnvVars(defaults.EnvDataPath),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagLogLevel,
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String(flagFormat))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %s",
			cmd.String(flagFormat), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeResult serializes v to --output, or to the root writer when unset.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var w *serializer.Writer
	if path := strings.TrimSpace(cmd.String(flagOutput)); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, rootWriter(cmd))
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	return w.Serialize(ctx, v)
}

func rootWriter(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return cmd.Writer
}

// newFacade loads the dataset selected by --data.
func newFacade(ctx context.Context, cmd *cli.Command) (*tool.Facade, error) {
	ds, err := food.Open(ctx, cmd.String(flagData))
	if err != nil {
		return nil, err
	}
	return tool.New(query.NewEngine(ds, nil)), nil
}
