package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/pathwing/pathwing/types"
)

// AdvisorAgent composes the final phased roadmap from the profile and the
// researched resources. Single model call, no tools.
type AdvisorAgent struct {
	model     model.BaseChatModel
	prompt    string
	maxTokens int
}

// NewAdvisorAgent creates the roadmap composition stage.
func NewAdvisorAgent(m model.BaseChatModel, systemPrompt string, maxTokens int) *AdvisorAgent {
	return &AdvisorAgent{model: m, prompt: systemPrompt, maxTokens: maxTokens}
}

// Compose generates the roadmap text. An empty resource list is allowed;
// the prompt instructs the model to plan from the career goal alone.
func (a *AdvisorAgent) Compose(ctx context.Context, profile types.Profile, resources []types.Resource) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(a.prompt),
		schema.UserMessage(fmt.Sprintf(
			"USER PROFILE:\n%s\n\nAVAILABLE RESOURCES:\n%s\n\nCreate the learning roadmap.",
			profile.Raw, FormatResources(resources),
		)),
	}

	resp, err := a.model.Generate(ctx, messages, model.WithMaxTokens(a.maxTokens))
	if err != nil {
		return "", fmt.Errorf("compose roadmap: %w", err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("compose roadmap: model returned empty output")
	}
	return resp.Content, nil
}

// FormatResources renders the resource list for the advisor prompt, in the
// same block format the research stage emits.
func FormatResources(resources []types.Resource) string {
	if len(resources) == 0 {
		return "(none found; plan from the career goal alone)"
	}
	var b strings.Builder
	for i, r := range resources {
		if i > 0 {
			b.WriteString("---\n")
		}
		fmt.Fprintf(&b, "RESOURCE: %s\n", r.Title)
		if r.Type != "" {
			fmt.Fprintf(&b, "TYPE: %s\n", r.Type)
		}
		if r.Level != "" {
			fmt.Fprintf(&b, "LEVEL: %s\n", r.Level)
		}
		if r.Duration != "" {
			fmt.Fprintf(&b, "DURATION: %s\n", r.Duration)
		}
		if r.Link != "" {
			fmt.Fprintf(&b, "DOCS: %s\n", r.Link)
		}
	}
	return b.String()
}
