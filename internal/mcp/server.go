package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	browsedto "refdeck/internal/modules/browse/dto"
	catalogdto "refdeck/internal/modules/catalog/dto"
	searchdto "refdeck/internal/modules/search/dto"
)

// Version is set via ldflags at build time.
var Version = "dev"

type Searcher interface {
	Search(ctx context.Context, category, topic, tag, term string, limit int) ([]searchdto.CardOutput, error)
	Topics(ctx context.Context, categorySlug string) ([]searchdto.TopicOptionOutput, error)
}

type Catalog interface {
	Preview(ctx context.Context, slug string) (catalogdto.PreviewOutput, error)
	Tags(ctx context.Context) ([]string, error)
}

type Router interface {
	Route(ctx context.Context, fragment string) (browsedto.RouteOutput, error)
}

// Server exposes the read-only study card queries as MCP tools.
type Server struct {
	search  Searcher
	catalog Catalog
	router  Router
	logger  *zap.Logger
	mcp     *server.MCPServer
}

func NewServer(search Searcher, catalog Catalog, router Router, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		search:  search,
		catalog: catalog,
		router:  router,
		logger:  logger,
	}
	s.mcp = server.NewMCPServer(
		"refdeck",
		Version,
		server.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchCardsTool, s.handleSearchCards)
	s.mcp.AddTool(listTopicsTool, s.handleListTopics)
	s.mcp.AddTool(previewTopicTool, s.handlePreviewTopic)
	s.mcp.AddTool(resolveRouteTool, s.handleResolveRoute)
	s.mcp.AddTool(listTagsTool, s.handleListTags)
}

// Serve runs the server on stdio. Stdout carries protocol messages only, so
// the logger must write elsewhere.
func (s *Server) Serve() error {
	s.logger.Info("mcp server starting", zap.String("version", Version))
	return server.ServeStdio(s.mcp)
}
