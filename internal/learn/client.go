// Package learn talks to the Microsoft Learn MCP endpoint over streamable HTTP.
package learn

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultURL is the public Microsoft Learn MCP endpoint.
const DefaultURL = "https://learn.microsoft.com/api/mcp"

// searchToolName is the documentation search tool exposed by the endpoint.
const searchToolName = "microsoft_docs_search"

// Client wraps one MCP session against the Learn endpoint. Connect once,
// search as many times as needed, then Close.
type Client struct {
	session *mcp.ClientSession
}

// Connect establishes the MCP session. The timeout applies to every HTTP
// request made over the session's lifetime, not just the handshake.
func Connect(ctx context.Context, url string, timeout time.Duration) (*Client, error) {
	if url == "" {
		url = DefaultURL
	}
	transport := mcp.NewStreamableClientTransport(url, &mcp.StreamableClientTransportOptions{
		HTTPClient: &http.Client{Timeout: timeout},
	})
	client := mcp.NewClient(&mcp.Implementation{Name: "pathwing", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, transport)
	if err != nil {
		return nil, fmt.Errorf("connect to learn endpoint %s: %w", url, err)
	}
	return &Client{session: session}, nil
}

// Search runs one documentation query and returns the concatenated text
// content of the result.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	result, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      searchToolName,
		Arguments: map[string]any{"question": query},
	})
	if err != nil {
		return "", fmt.Errorf("learn search %q: %w", query, err)
	}
	if result.IsError {
		return "", fmt.Errorf("learn search %q: tool reported an error", query)
	}
	return FlattenContent(result.Content), nil
}

// Close tears down the MCP session.
func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	return c.session.Close()
}

// FlattenContent joins the text parts of a tool result. Non-text content
// is ignored; the Learn endpoint only returns text.
func FlattenContent(content []mcp.Content) string {
	var parts []string
	for _, item := range content {
		if tc, ok := item.(*mcp.TextContent); ok && strings.TrimSpace(tc.Text) != "" {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
