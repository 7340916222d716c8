package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/apidoc/internal/config"
	"github.com/ziadkadry99/apidoc/internal/doctree"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the documentation tree to agents.
type Server struct {
	cfg *config.Config
	log logrus.FieldLogger
	mcp *server.MCPServer
}

// NewServer creates a new MCP server for the configured source.
func NewServer(cfg *config.Config, log logrus.FieldLogger) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
	}

	s.mcp = server.NewMCPServer(
		"apidoc",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPackagesTool, s.handleListPackages)
	s.mcp.AddTool(describePackageTool, s.handleDescribePackage)
	s.mcp.AddTool(renderSectionTool, s.handleRenderSection)
}

// loadTree reads the source on every call so edits are picked up without a
// restart.
func (s *Server) loadTree() (*doctree.Tree, error) {
	tree, err := doctree.Load(s.cfg.Source)
	if err != nil {
		return nil, err
	}
	return doctree.Filter(tree, s.cfg.Include, s.cfg.Exclude), nil
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
