package mcp

import (
	"github.com/ka2n/ppa/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for ppa
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server whose tools query PanelApp through f
func NewServer(f api.Fetcher) *Server {
	s := server.NewMCPServer("ppa", api.Version)

	registerTools(s, f)

	return &Server{
		server: s,
	}
}

// Run serves MCP over stdin/stdout until the client disconnects
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, f api.Fetcher) {
	tools := InitTools(f)
	s.AddTools(tools...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
