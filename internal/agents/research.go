package agents

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/pathwing/pathwing/internal/utils"
	"github.com/pathwing/pathwing/types"
)

// DefaultResearchIterations bounds the search loop. The Learn endpoint is
// slow enough that more rounds rarely improve the resource list.
const DefaultResearchIterations = 4

// ResearchAgent finds learning resources by letting the model call the
// Microsoft Learn search tool in a bounded tool-calling loop.
type ResearchAgent struct {
	model     model.BaseChatModel
	tools     []tool.BaseTool
	prompt    string
	maxIters  int
	maxTokens int
	verbose   bool
	logOut    io.Writer
}

// NewResearchAgent creates the research stage with the given search tools.
func NewResearchAgent(m model.BaseChatModel, tools []tool.BaseTool, systemPrompt string, maxTokens int) *ResearchAgent {
	return &ResearchAgent{
		model:     m,
		tools:     tools,
		prompt:    systemPrompt,
		maxIters:  DefaultResearchIterations,
		maxTokens: maxTokens,
		logOut:    io.Discard,
	}
}

// SetVerbose enables per-iteration logging of tool calls to w.
func (a *ResearchAgent) SetVerbose(w io.Writer) {
	a.verbose = true
	if w != nil {
		a.logOut = w
	}
}

// SetMaxIterations overrides the tool-loop bound.
func (a *ResearchAgent) SetMaxIterations(n int) {
	if n > 0 && n <= 10 {
		a.maxIters = n
	}
}

// Run searches Learn for resources matching the profile. It returns the
// parsed resources and the raw listing text. Tool failures surface to the
// model as tool output so the loop can recover; only model errors abort.
func (a *ResearchAgent) Run(ctx context.Context, profile types.Profile) ([]types.Resource, string, error) {
	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{Tools: a.tools})
	if err != nil {
		return nil, "", fmt.Errorf("create tools node: %w", err)
	}

	toolInfos := make([]*schema.ToolInfo, 0, len(a.tools))
	for _, t := range a.tools {
		info, err := t.Info(ctx)
		if err != nil {
			continue
		}
		toolInfos = append(toolInfos, info)
	}

	messages := []*schema.Message{
		schema.SystemMessage(a.prompt),
		schema.UserMessage(fmt.Sprintf(
			"Find Microsoft Learn resources for this user profile:\n\n%s\n\nSearch before answering.",
			profile.Raw,
		)),
	}

	var final string
	for iter := 0; iter < a.maxIters; iter++ {
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		default:
		}

		resp, err := a.model.Generate(ctx, messages,
			model.WithTools(toolInfos), model.WithMaxTokens(a.maxTokens))
		if err != nil {
			return nil, "", fmt.Errorf("research generate (iter %d): %w", iter+1, err)
		}
		messages = append(messages, resp)

		if len(resp.ToolCalls) == 0 {
			final = resp.Content
			break
		}

		if a.verbose {
			for _, tc := range resp.ToolCalls {
				fmt.Fprintf(a.logOut, "  [research] %s(%s)\n", tc.Function.Name, utils.Truncate(tc.Function.Arguments, 60))
			}
		}

		toolResults, err := toolsNode.Invoke(ctx, resp)
		if err != nil {
			toolResults = []*schema.Message{
				schema.ToolMessage(fmt.Sprintf("Error executing tools: %v", err), "error"),
			}
		}
		messages = append(messages, toolResults...)
	}

	// The loop can exhaust its budget mid-conversation; salvage whatever
	// listing the last assistant turn carried.
	if final == "" {
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role == schema.Assistant && messages[i].Content != "" {
				final = messages[i].Content
				break
			}
		}
	}

	return ParseResources(final), final, nil
}

// ParseResources extracts resource blocks from the research output.
// Blocks are separated by --- lines; a block without a title is dropped,
// and the result is capped so a rambling model cannot flood the roadmap.
func ParseResources(text string) []types.Resource {
	var resources []types.Resource
	for _, block := range strings.Split(text, "---") {
		r := parseResourceBlock(block)
		if r.Title == "" {
			continue
		}
		resources = append(resources, r)
		if len(resources) == types.MaxResources {
			break
		}
	}
	return resources
}

func parseResourceBlock(block string) types.Resource {
	var r types.Resource
	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "RESOURCE":
			r.Title = value
		case "TYPE":
			r.Type = types.ParseResourceType(value)
		case "LEVEL":
			r.Level = types.ParseLevel(value)
		case "DURATION":
			r.Duration = value
		case "DOCS":
			r.Link = value
		}
	}
	return r
}
