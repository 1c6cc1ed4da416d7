package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/pathwing/pathwing/internal/learn"
	"github.com/pathwing/pathwing/types"
)

type stubSearcher struct {
	result  string
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, q string) (string, error) {
	s.queries = append(s.queries, q)
	return s.result, nil
}

const resourceListing = `RESOURCE: Azure Fundamentals
TYPE: course
LEVEL: beginner
DURATION: 10 hours
DOCS: https://learn.microsoft.com/training/paths/azure-fundamentals/
---
RESOURCE: AZ-204 Developing Solutions for Azure
TYPE: certification
LEVEL: intermediate
DURATION: 40 hours
DOCS: https://learn.microsoft.com/credentials/certifications/azure-developer/
---
RESOURCE: Deploy a website to Azure App Service
TYPE: lab
LEVEL: beginner
DURATION: 1 hour
DOCS: https://learn.microsoft.com/training/modules/host-a-web-app/`

func TestResearchAgentRun(t *testing.T) {
	searcher := &stubSearcher{result: "Azure Fundamentals learning path ..."}
	fm := &fakeChatModel{replies: []*schema.Message{
		assistantToolCall(learn.ToolName, `{"query":"azure developer learning path"}`),
		assistantReply(resourceListing),
	}}
	agent := NewResearchAgent(fm, []tool.BaseTool{learn.NewSearchTool(searcher)}, "research prompt", 1024)

	profile := types.Profile{Goal: "cloud developer", Raw: "- Goal: cloud developer"}
	resources, raw, err := agent.Run(context.Background(), profile)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(searcher.queries) != 1 || searcher.queries[0] != "azure developer learning path" {
		t.Errorf("searcher queries = %v", searcher.queries)
	}
	if len(resources) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(resources))
	}
	if resources[1].Type != types.ResourceCertification {
		t.Errorf("resource[1].Type = %q", resources[1].Type)
	}
	if !strings.Contains(raw, "Azure Fundamentals") {
		t.Errorf("raw listing missing content: %q", raw)
	}

	// Tool result must have been fed back before the final turn.
	lastCall := fm.calls[len(fm.calls)-1]
	foundToolMsg := false
	for _, m := range lastCall {
		if m.Role == schema.Tool {
			foundToolMsg = true
		}
	}
	if !foundToolMsg {
		t.Error("tool result never reached the model")
	}
}

func TestResearchAgentMaxIterations(t *testing.T) {
	// Model keeps calling tools; the loop must stop at the bound and
	// salvage nothing rather than hang.
	searcher := &stubSearcher{result: "docs"}
	fm := &fakeChatModel{replies: []*schema.Message{
		assistantToolCall(learn.ToolName, `{"query":"a"}`),
		assistantToolCall(learn.ToolName, `{"query":"b"}`),
	}}
	agent := NewResearchAgent(fm, []tool.BaseTool{learn.NewSearchTool(searcher)}, "p", 1024)
	agent.SetMaxIterations(2)

	resources, raw, err := agent.Run(context.Background(), types.Profile{Raw: "goal"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(resources) != 0 || raw != "" {
		t.Errorf("expected empty result at iteration bound, got %d resources", len(resources))
	}
	if len(searcher.queries) != 2 {
		t.Errorf("expected 2 searches, got %d", len(searcher.queries))
	}
}

func TestParseResources(t *testing.T) {
	t.Run("drops blocks without titles", func(t *testing.T) {
		got := ParseResources("some preamble\n---\nRESOURCE: Real One\nTYPE: module\n")
		if len(got) != 1 || got[0].Title != "Real One" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("caps at the resource limit", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 10; i++ {
			b.WriteString("RESOURCE: item\n---\n")
		}
		if got := ParseResources(b.String()); len(got) != types.MaxResources {
			t.Fatalf("expected %d resources, got %d", types.MaxResources, len(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ParseResources(""); len(got) != 0 {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("url survives the colon split", func(t *testing.T) {
		got := ParseResources("RESOURCE: X\nDOCS: https://learn.microsoft.com/x\n")
		if got[0].Link != "https://learn.microsoft.com/x" {
			t.Fatalf("Link = %q", got[0].Link)
		}
	})
}
