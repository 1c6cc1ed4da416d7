// Package session drives one advisory run through its three stages and
// owns the terminal transcript.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/pathwing/pathwing/internal/agents"
	"github.com/pathwing/pathwing/internal/ui"
	"github.com/pathwing/pathwing/internal/utils"
	"github.com/pathwing/pathwing/types"
)

// DefaultMaxExchanges bounds the profile Q&A. After this many assistant
// turns without a completion marker the last reply is parsed as-is.
const DefaultMaxExchanges = 5

// Runner wires the three stage agents to the user's terminal. Nothing in a
// run persists unless the caller saves the returned record.
type Runner struct {
	Profile  *agents.ProfileAgent
	Research *agents.ResearchAgent // nil when the Learn endpoint is unreachable
	Advisor  *agents.AdvisorAgent

	// Input reads one user answer. Nil means no interactive input is
	// available; the Q&A then runs on SeedGoal alone.
	Input func() (string, error)
	Out   io.Writer

	MaxExchanges int
	SeedGoal     string // optional first answer, from --goal

	stage types.Stage
}

// Stage reports the pipeline position, mainly for status output and tests.
func (r *Runner) Stage() types.Stage {
	if r.stage == "" {
		return types.StageCollectingProfile
	}
	return r.stage
}

// Run executes the full pipeline and returns the session record. The
// record is complete even when research found nothing; a failed roadmap
// call is the only unrecoverable stage.
func (r *Runner) Run(ctx context.Context) (*types.SessionRecord, error) {
	if r.MaxExchanges <= 0 {
		r.MaxExchanges = DefaultMaxExchanges
	}
	rec := &types.SessionRecord{StartedAt: time.Now()}

	r.stage = types.StageCollectingProfile
	profile, err := r.collectProfile(ctx)
	if err != nil {
		return nil, err
	}
	rec.Profile = profile

	r.stage = types.StageFindingResources
	if r.Research == nil {
		fmt.Fprintln(r.Out, ui.StylePrefixWarn.Render("Microsoft Learn is unreachable; composing the roadmap without researched resources."))
	} else {
		fmt.Fprintln(r.Out, ui.StylePrefixThinking.Render("Searching Microsoft Learn for resources..."))
		resources, _, err := r.Research.Run(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("resource research failed: %w", err)
		}
		rec.Resources = resources
		fmt.Fprintln(r.Out, ui.StylePrefixDone.Render(fmt.Sprintf("Found %d resources.", len(resources))))
	}

	r.stage = types.StageComposingRoadmap
	fmt.Fprintln(r.Out, ui.StylePrefixThinking.Render("Composing your roadmap..."))
	roadmap, err := r.Advisor.Compose(ctx, profile, rec.Resources)
	if err != nil {
		return nil, fmt.Errorf("roadmap composition failed: %w", err)
	}
	rec.Roadmap = roadmap
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, ui.StyleRoadmapBox.Render(roadmap))

	r.stage = types.StageDone
	rec.FinishedAt = time.Now()
	return rec, nil
}

// collectProfile runs the bounded Q&A loop. Each iteration sends one user
// answer and reads one assistant turn.
func (r *Runner) collectProfile(ctx context.Context) (types.Profile, error) {
	var history []*schema.Message
	var lastReply string

	answer, err := r.firstAnswer()
	if err != nil {
		return types.Profile{}, err
	}

	for exchange := 0; exchange < r.MaxExchanges; exchange++ {
		select {
		case <-ctx.Done():
			return types.Profile{}, ctx.Err()
		default:
		}

		history = append(history, schema.UserMessage(answer))
		reply, err := r.Profile.Step(ctx, history)
		if err != nil {
			return types.Profile{}, err
		}
		history = append(history, reply)
		lastReply = reply.Content

		if agents.IsProfileComplete(reply.Content) {
			fmt.Fprintln(r.Out, ui.StylePrefixDone.Render("Got it, your profile is complete."))
			return agents.ParseProfile(reply.Content), nil
		}

		fmt.Fprintf(r.Out, "\n%s %s\n", ui.StylePrefixAdvisor.Render("Advisor:"), reply.Content)

		// The budget is spent once the last reply is in; asking for another
		// answer here would discard it unread.
		if exchange == r.MaxExchanges-1 {
			break
		}
		answer, err = r.readAnswer()
		if err != nil {
			return types.Profile{}, err
		}
	}

	// Exchange budget spent. Work with whatever the model said last rather
	// than aborting the session.
	fmt.Fprintln(r.Out, "Moving on with the details collected so far.")
	return agents.ParseProfile(lastReply), nil
}

func (r *Runner) firstAnswer() (string, error) {
	if r.SeedGoal != "" {
		return fmt.Sprintf("I want to become a %s.", r.SeedGoal), nil
	}
	fmt.Fprintf(r.Out, "%s Tell me about the tech career you're aiming for.\n", ui.StylePrefixAdvisor.Render("Advisor:"))
	return r.readAnswer()
}

// readAnswer reads one non-empty answer, re-prompting on blank input
// without consuming a Q&A exchange.
func (r *Runner) readAnswer() (string, error) {
	if r.Input == nil {
		return "", fmt.Errorf("no interactive input available; pass --goal to run non-interactively")
	}
	for {
		line, err := r.Input()
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if answer := utils.CollapseSpace(line); answer != "" {
			return answer, nil
		}
		fmt.Fprintln(r.Out, "Please type an answer.")
	}
}
