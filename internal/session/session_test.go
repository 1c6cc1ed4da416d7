package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/pathwing/pathwing/internal/agents"
	"github.com/pathwing/pathwing/internal/learn"
	"github.com/pathwing/pathwing/types"
)

type scriptedModel struct {
	replies []*schema.Message
}

func (m *scriptedModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if len(m.replies) == 0 {
		return nil, fmt.Errorf("scripted model exhausted")
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}

func (m *scriptedModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("streaming not supported")
}

func reply(content string) *schema.Message {
	return &schema.Message{Role: schema.Assistant, Content: content}
}

func toolCall(name, args string) *schema.Message {
	return &schema.Message{
		Role:      schema.Assistant,
		ToolCalls: []schema.ToolCall{{ID: "c1", Function: schema.FunctionCall{Name: name, Arguments: args}}},
	}
}

type scriptedInput struct {
	answers []string
}

func (s *scriptedInput) read() (string, error) {
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

type okSearcher struct{}

func (okSearcher) Search(_ context.Context, _ string) (string, error) {
	return "Azure Fundamentals path, AZ-204 cert, App Service lab", nil
}

const profileDone = `PROFILE_COMPLETE
- Goal: web developer
- Level: beginner
- Skills: HTML, CSS
- Time: 8 hours
- Timeline: 6 months`

const listing = `RESOURCE: Build web apps with ASP.NET Core
TYPE: course
LEVEL: beginner
DURATION: 12 hours
DOCS: https://learn.microsoft.com/training/paths/aspnet-core/`

func TestRunnerFullSession(t *testing.T) {
	profileModel := &scriptedModel{replies: []*schema.Message{
		reply("What's your current experience level?"),
		reply(profileDone),
	}}
	researchModel := &scriptedModel{replies: []*schema.Message{
		toolCall(learn.ToolName, `{"query":"web developer path"}`),
		reply(listing),
	}}
	advisorModel := &scriptedModel{replies: []*schema.Message{
		reply("**YOUR CAREER PATH: Web Developer**\n\n**PHASE 1: FOUNDATION (Months 1-2)**\n- Build web apps with ASP.NET Core"),
	}}

	input := &scriptedInput{answers: []string{"I want to be a web developer", "beginner, HTML and CSS, 8 hours, 6 months"}}
	var out strings.Builder

	r := &Runner{
		Profile:  agents.NewProfileAgent(profileModel, "p", 256),
		Research: agents.NewResearchAgent(researchModel, []tool.BaseTool{learn.NewSearchTool(okSearcher{})}, "r", 1024),
		Advisor:  agents.NewAdvisorAgent(advisorModel, "a", 2048),
		Input:    input.read,
		Out:      &out,
	}

	rec, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Stage() != types.StageDone {
		t.Errorf("stage = %s, want %s", r.Stage(), types.StageDone)
	}
	if rec.Profile.Goal != "web developer" {
		t.Errorf("Goal = %q", rec.Profile.Goal)
	}
	if len(rec.Resources) != 1 {
		t.Fatalf("resources = %+v", rec.Resources)
	}
	if !strings.Contains(rec.Roadmap, "PHASE 1") {
		t.Errorf("roadmap = %q", rec.Roadmap)
	}
	if !strings.Contains(out.String(), "PHASE 1") {
		t.Error("roadmap was not printed to the transcript")
	}
	if rec.FinishedAt.Before(rec.StartedAt) {
		t.Error("timestamps out of order")
	}
}

func TestRunnerSeedGoalSkipsFirstPrompt(t *testing.T) {
	profileModel := &scriptedModel{replies: []*schema.Message{reply(profileDone)}}
	advisorModel := &scriptedModel{replies: []*schema.Message{reply("**YOUR CAREER PATH: Web Developer**")}}
	var out strings.Builder

	r := &Runner{
		Profile:  agents.NewProfileAgent(profileModel, "p", 256),
		Research: nil, // Learn unreachable
		Advisor:  agents.NewAdvisorAgent(advisorModel, "a", 2048),
		Input:    nil,
		Out:      &out,
		SeedGoal: "web developer",
	}

	rec, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rec.Resources) != 0 {
		t.Errorf("expected no resources without research, got %+v", rec.Resources)
	}
	if !strings.Contains(out.String(), "unreachable") {
		t.Error("missing warning about the unreachable Learn endpoint")
	}
}

func TestRunnerEmptyAnswerReprompts(t *testing.T) {
	profileModel := &scriptedModel{replies: []*schema.Message{reply(profileDone)}}
	advisorModel := &scriptedModel{replies: []*schema.Message{reply("roadmap")}}
	input := &scriptedInput{answers: []string{"", "   ", "I want to be a data engineer"}}
	var out strings.Builder

	r := &Runner{
		Profile: agents.NewProfileAgent(profileModel, "p", 256),
		Advisor: agents.NewAdvisorAgent(advisorModel, "a", 2048),
		Input:   input.read,
		Out:     &out,
	}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out.String(), "Please type an answer."); got != 2 {
		t.Errorf("expected 2 re-prompts, got %d", got)
	}
}

func TestRunnerExchangeBudgetFallback(t *testing.T) {
	// Model never emits the completion marker; after the budget the last
	// reply is parsed as the profile.
	profileModel := &scriptedModel{replies: []*schema.Message{
		reply("Question 1?"),
		reply("- Goal: devops engineer\n- Level: intermediate\n- Skills: Linux\n- Time: 5 hours\n- Timeline: 1 year"),
	}}
	advisorModel := &scriptedModel{replies: []*schema.Message{reply("roadmap")}}
	input := &scriptedInput{answers: []string{"hi", "devops"}}
	var out strings.Builder

	r := &Runner{
		Profile:      agents.NewProfileAgent(profileModel, "p", 256),
		Advisor:      agents.NewAdvisorAgent(advisorModel, "a", 2048),
		Input:        input.read,
		Out:          &out,
		MaxExchanges: 2,
	}

	rec, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rec.Profile.Goal != "devops engineer" {
		t.Errorf("fallback parse failed: %+v", rec.Profile)
	}
	if !strings.Contains(out.String(), "Moving on") {
		t.Error("missing fallback notice")
	}
}

func TestRunnerBudgetSpendsNoExtraAnswer(t *testing.T) {
	// Input holds exactly the answers the budget can use. The final
	// exchange must not ask for another one; with only one exchange the
	// last reply is the fallback profile and no read happens after it.
	profileModel := &scriptedModel{replies: []*schema.Message{
		reply("- Goal: cloud architect\n- Level: advanced\n- Skills: Terraform\n- Time: 6 hours\n- Timeline: 3 months"),
	}}
	advisorModel := &scriptedModel{replies: []*schema.Message{reply("roadmap")}}
	input := &scriptedInput{answers: []string{"cloud architect please"}}
	var out strings.Builder

	r := &Runner{
		Profile:      agents.NewProfileAgent(profileModel, "p", 256),
		Advisor:      agents.NewAdvisorAgent(advisorModel, "a", 2048),
		Input:        input.read,
		Out:          &out,
		MaxExchanges: 1,
	}

	rec, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rec.Profile.Goal != "cloud architect" {
		t.Errorf("fallback parse failed: %+v", rec.Profile)
	}
	if len(input.answers) != 0 {
		t.Errorf("unread answers left: %v", input.answers)
	}
}

func TestRunnerAdvisorFailureAborts(t *testing.T) {
	profileModel := &scriptedModel{replies: []*schema.Message{reply(profileDone)}}
	advisorModel := &scriptedModel{} // exhausted immediately
	var out strings.Builder

	r := &Runner{
		Profile:  agents.NewProfileAgent(profileModel, "p", 256),
		Advisor:  agents.NewAdvisorAgent(advisorModel, "a", 2048),
		Out:      &out,
		SeedGoal: "any",
	}

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("expected error when roadmap composition fails")
	}
}
