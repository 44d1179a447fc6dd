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
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cnfood/cn-food-mcp/pkg/defaults"
	"github.com/cnfood/cn-food-mcp/pkg/food"
	"github.com/cnfood/cn-food-mcp/pkg/logging"
	"github.com/cnfood/cn-food-mcp/pkg/query"
	"github.com/cnfood/cn-food-mcp/pkg/server"
	"github.com/cnfood/cn-food-mcp/pkg/tool"
)

const (
	name           = "cnfoodd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	if err := defaults.LoadEnvFile(); err != nil {
		return fmt.Errorf("failed to load %s: %w", defaults.EnvFile, err)
	}

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := Run(context.Background(), os.Getenv(defaults.EnvDataPath)); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// Run loads the dataset at dataPath, the embedded sample when empty, and
// serves until ctx is canceled or the process is signaled. Options are
// applied after the defaults.
func Run(ctx context.Context, dataPath string, opts ...server.Option) error {
	routes, err := Routes(ctx, dataPath)
	if err != nil {
		return err
	}

	s := server.New(append([]server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes),
	}, opts...)...)
	return s.Run(ctx)
}

// Routes builds the application handlers over the dataset at dataPath.
func Routes(ctx context.Context, dataPath string) (map[string]http.HandlerFunc, error) {
	ds, err := food.Open(ctx, dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return tool.New(query.NewEngine(ds, nil)).Routes(), nil
}
