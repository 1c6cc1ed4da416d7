package learn

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// ToolName is how the search tool is announced to the model. The research
// prompt references it by this name.
const ToolName = "microsoft_learn_search"

// Searcher is the narrow surface the tool needs from the Learn client.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// SearchTool exposes Learn documentation search as an Eino tool so the
// research stage can call it through tool-calling.
type SearchTool struct {
	searcher Searcher
}

// NewSearchTool wraps a Learn searcher for use in a tools node.
func NewSearchTool(s Searcher) *SearchTool {
	return &SearchTool{searcher: s}
}

// Info returns the tool schema advertised to the model.
func (t *SearchTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: ToolName,
		Desc: "Search Microsoft Learn for official courses, modules, certifications, labs, and documentation. Returns matching documentation excerpts with titles and URLs.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {
				Type:     schema.String,
				Desc:     "Search query, e.g. 'Azure fundamentals certification path'",
				Required: true,
			},
		}),
	}, nil
}

type searchArgs struct {
	Query string `json:"query"`
}

// InvokableRun executes one search. Errors from the endpoint are returned
// as tool output text rather than failing the run, so the model can adjust.
func (t *SearchTool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...tool.Option) (string, error) {
	var args searchArgs
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", fmt.Errorf("invalid search arguments: %w", err)
	}
	if args.Query == "" {
		return "Error: query must not be empty.", nil
	}
	result, err := t.searcher.Search(ctx, args.Query)
	if err != nil {
		return fmt.Sprintf("Error: search failed: %v. Try a different query or answer from what you already found.", err), nil
	}
	if result == "" {
		return "No results found. Try a broader query.", nil
	}
	return result, nil
}
