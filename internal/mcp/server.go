// ABOUTME: MCP server setup for the drink tracker.
// ABOUTME: Wraps the MCP server around a loaded Tracker.
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harperreed/drinks/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	logger    *log.Logger
}

// NewServer creates a new MCP server with the given tracker.
func NewServer(t *tracker.Tracker, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "drinks",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   t,
		logger:    logger.WithPrefix("mcp"),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
