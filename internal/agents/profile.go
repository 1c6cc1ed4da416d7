// Package agents implements the three pipeline stages: profile collection,
// resource research against Microsoft Learn, and roadmap composition.
package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/pathwing/pathwing/types"
)

// ProfileCompleteMarker is the literal the model emits when all five
// profile fields have been collected.
const ProfileCompleteMarker = "PROFILE_COMPLETE"

// ProfileAgent runs the conversational Q&A that builds the career profile.
// It holds no conversation state; the caller owns the message history.
type ProfileAgent struct {
	model     model.BaseChatModel
	prompt    string
	maxTokens int
}

// NewProfileAgent creates the profile collection stage.
func NewProfileAgent(m model.BaseChatModel, systemPrompt string, maxTokens int) *ProfileAgent {
	return &ProfileAgent{model: m, prompt: systemPrompt, maxTokens: maxTokens}
}

// Step sends the accumulated user/assistant history to the model and
// returns the next assistant turn. The history must not include the
// system message; the agent prepends its own.
func (a *ProfileAgent) Step(ctx context.Context, history []*schema.Message) (*schema.Message, error) {
	messages := make([]*schema.Message, 0, len(history)+1)
	messages = append(messages, schema.SystemMessage(a.prompt))
	messages = append(messages, history...)

	resp, err := a.model.Generate(ctx, messages, model.WithMaxTokens(a.maxTokens))
	if err != nil {
		return nil, fmt.Errorf("profile step: %w", err)
	}
	return resp, nil
}

// IsProfileComplete reports whether the assistant turn carries the
// completion marker.
func IsProfileComplete(reply string) bool {
	return strings.Contains(reply, ProfileCompleteMarker)
}

// ParseProfile extracts the structured profile from a PROFILE_COMPLETE
// reply. Fields the model omitted stay zero; Raw always carries the text
// so downstream prompts lose nothing to parsing gaps.
func ParseProfile(reply string) types.Profile {
	p := types.Profile{Raw: strings.TrimSpace(reply)}
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "goal":
			p.Goal = value
		case "level":
			p.Level = types.ParseLevel(value)
		case "skills":
			p.Skills = splitSkills(value)
		case "time":
			p.HoursPerWeek = types.ParseHours(value)
		case "timeline":
			p.Timeline = value
		}
	}
	return p
}

func splitSkills(s string) []string {
	// "Python, SQL and Git" style lists join the last item with "and".
	s = strings.ReplaceAll(s, " and ", ",")
	var skills []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}
