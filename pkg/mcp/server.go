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
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/cnfood/cn-food-mcp/pkg/logging"
	"github.com/cnfood/cn-food-mcp/pkg/tool"
)

// ServerName is the implementation name announced during initialization.
const ServerName = "cn-food-mcp"

// Server adapts a tool.Facade to MCP.
type Server struct {
	facade *tool.Facade
	mcp    *mcpserver.MCPServer
}

// NewServer registers every façade definition as an MCP tool.
func NewServer(facade *tool.Facade, version string) (*Server, error) {
	s := &Server{
		facade: facade,
		mcp: mcpserver.NewMCPServer(ServerName, version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}

	for _, d := range facade.Definitions() {
		schema, err := json.Marshal(d.InputSchema())
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema of %s: %w", d.Name, err)
		}
		s.mcp.AddTool(mcpgo.NewToolWithRawSchema(d.Name, d.Description, schema), s.handler(d.Name))
	}

	return s, nil
}

func (s *Server) handler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		res, err := s.facade.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			slog.Debug("tool call rejected", "tool", name, "error", err)
			return nil, err
		}

		text, err := res.Text()
		if err != nil {
			return nil, err
		}
		return mcpgo.NewToolResultText(text), nil
	}
}

// HandleMessage processes one JSON-RPC message and returns the response,
// or nil for notifications.
func (s *Server) HandleMessage(ctx context.Context, msg json.RawMessage) mcpgo.JSONRPCMessage {
	return s.mcp.HandleMessage(ctx, msg)
}

// Serve runs the stdio loop until in reaches EOF or ctx is canceled.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(logging.NewLogLogger(slog.LevelError, false))

	slog.Info("mcp server listening on stdio", "name", ServerName)

	err := stdio.Listen(ctx, in, out)
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		slog.Info("mcp server stopped")
		return nil
	}
	return fmt.Errorf("mcp stdio server: %w", err)
}
