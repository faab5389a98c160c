package mcp

import "github.com/mark3labs/mcp-go/mcp"

var searchCardsTool = mcp.NewTool("search_cards",
	mcp.WithDescription("Search study cards. Every given facet must match; the term is matched case-insensitively against card text and its topic context."),
	mcp.WithString("term",
		mcp.Description("Free-text term"),
	),
	mcp.WithString("category",
		mcp.Description("Category slug, or all"),
	),
	mcp.WithString("topic",
		mcp.Description("Topic slug, or all"),
	),
	mcp.WithString("tag",
		mcp.Description("Exact tag, or all"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of cards to return (default 20)"),
	),
)

var listTopicsTool = mcp.NewTool("list_topics",
	mcp.WithDescription("List the topics offered for a category, in title order."),
	mcp.WithString("category",
		mcp.Description("Category slug; omit or pass all for every topic"),
	),
)

var previewTopicTool = mcp.NewTool("preview_topic",
	mcp.WithDescription("Preview a topic: summary, first chapters and card count."),
	mcp.WithString("slug",
		mcp.Required(),
		mcp.Description("Topic slug"),
	),
)

var resolveRouteTool = mcp.NewTool("resolve_route",
	mcp.WithDescription("Resolve a navigation fragment such as #topic/theft to the view it shows."),
	mcp.WithString("fragment",
		mcp.Required(),
		mcp.Description("Navigation fragment, with or without the leading #"),
	),
)

var listTagsTool = mcp.NewTool("list_tags",
	mcp.WithDescription("List every tag used by the study cards, sorted."),
)
