// Package mcp exposes the tip calculator to AI agents over the Model
// Context Protocol.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"tip-time/internal/money"
)

type Server struct {
	server   *mcp.Server
	fallback *money.Formatter
}

// NewServer builds an MCP server. Calls without a locale argument use
// fallback, or money.Default when fallback is nil.
func NewServer(version string, fallback *money.Formatter) *Server {
	s := &Server{fallback: fallback}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "tiptime",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
