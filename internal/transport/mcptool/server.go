// Package mcptool exposes the simulator as a set of MCP tools served over
// stdio. Each tool maps to one service operation; structured results are
// returned as JSON text content, and domain errors become tool errors
// carrying the operation's exact message.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mockdesk/mockdesk/internal/logger"
	"github.com/mockdesk/mockdesk/internal/metrics"
	"github.com/mockdesk/mockdesk/internal/usecase/hubspot"
	"github.com/mockdesk/mockdesk/internal/usecase/search"
	"github.com/mockdesk/mockdesk/internal/usecase/zendesk"
	"github.com/mockdesk/mockdesk/internal/version"
)

// Server registers the simulator's tools on an MCP server and serves them
// over stdio.
type Server struct {
	mcp     *server.MCPServer
	log     *zap.Logger
	zendesk *zendesk.Service
	hubspot *hubspot.Service
	search  *search.Service
}

// New wires the service layer into a named MCP tool server.
func New(log *zap.Logger, zd *zendesk.Service, hs *hubspot.Service, se *search.Service) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"mockdesk",
			version.Version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithPromptCapabilities(false),
		),
		log:     log,
		zendesk: zd,
		hubspot: hs,
		search:  se,
	}
	s.registerZendeskTools()
	s.registerHubSpotTools()
	return s
}

// Serve runs the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	s.log.Info("serving MCP tools on stdio")
	return server.ServeStdio(s.mcp)
}

type toolHandler func(ctx context.Context, args map[string]any) (any, error)

// register adds one tool whose handler returns a JSON-marshalable result.
// The wrapper owns logging, metrics and the error-to-result translation so
// individual handlers stay argument parsing plus one service call.
func (s *Server) register(api, operation string, tool mcp.Tool, h toolHandler) {
	s.mcp.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.ContextWithLogger(ctx, s.log.With(zap.String("tool", tool.Name)))

		start := time.Now()
		result, err := h(ctx, req.GetArguments())
		metrics.ObserveOperation(api, operation, err, time.Since(start))

		if err != nil {
			logger.FromContext(ctx).Debug("tool call failed", zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}

		body, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s result: %w", tool.Name, err)
		}
		return mcp.NewToolResultText(string(body)), nil
	})
}

// okResult is the body returned by delete-style tools that have nothing else
// to say.
type okResult struct {
	Deleted bool `json:"deleted"`
}
