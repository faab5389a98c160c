package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

const defaultLimit = 20

func (s *Server) handleSearchCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	cards, err := s.search.Search(ctx,
		request.GetString("category", ""),
		request.GetString("topic", ""),
		request.GetString("tag", ""),
		request.GetString("term", ""),
		limit,
	)
	if err != nil {
		return s.failure("search_cards", err), nil
	}
	if len(cards) == 0 {
		return mcp.NewToolResultText("No cards match."), nil
	}
	return jsonResult(cards)
}

func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topics, err := s.search.Topics(ctx, request.GetString("category", ""))
	if err != nil {
		return s.failure("list_topics", err), nil
	}
	return jsonResult(topics)
}

func (s *Server) handlePreviewTopic(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slug"), nil
	}
	preview, err := s.catalog.Preview(ctx, slug)
	if err != nil {
		return s.failure("preview_topic", err), nil
	}
	return jsonResult(preview)
}

func (s *Server) handleResolveRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fragment, err := request.RequireString("fragment")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: fragment"), nil
	}
	route, err := s.router.Route(ctx, fragment)
	if err != nil {
		return s.failure("resolve_route", err), nil
	}
	return jsonResult(route)
}

func (s *Server) handleListTags(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags, err := s.catalog.Tags(ctx)
	if err != nil {
		return s.failure("list_tags", err), nil
	}
	return jsonResult(tags)
}

func (s *Server) failure(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn("tool failed", zap.String("tool", tool), zap.Error(err))
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(raw)), nil
}
