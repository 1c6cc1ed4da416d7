/*
Copyright © 2025 PathWing contributors
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pathwing/pathwing/internal/agents"
	"github.com/pathwing/pathwing/internal/learn"
	"github.com/pathwing/pathwing/internal/llm"
	"github.com/pathwing/pathwing/internal/logger"
	"github.com/pathwing/pathwing/internal/session"
	"github.com/pathwing/pathwing/internal/ui"
	"github.com/pathwing/pathwing/prompts"
	"github.com/pathwing/pathwing/types"
)

var (
	adviseSavePath string
	adviseGoal     string
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Run the interactive career path advisory session",
	Long: `Advise interviews you about your career goal, experience, skills, and
available time, searches Microsoft Learn for matching resources, and prints
a phased learning roadmap. Nothing is stored unless --save is given.`,
	RunE: runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
	adviseCmd.Flags().StringVarP(&adviseSavePath, "save", "s", "", "write the session record to this YAML file")
	adviseCmd.Flags().StringVarP(&adviseGoal, "goal", "g", "", "career goal to seed the interview with")
}

func runAdvise(cmd *cobra.Command, args []string) error {
	defer logger.HandlePanic()

	config := GetConfig()
	logger.SetVersion(version)
	logger.SetCommand("advise")
	logger.SetBasePath(config.Project.RootDir)

	if err := EnsureOracleConfig(config); err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if !interactive && adviseGoal == "" {
		return types.ErrNotTerminal
	}

	ctx := cmd.Context()

	chatModel, err := llm.NewChatModel(ctx, llm.Config{
		Endpoint:    config.Azure.Endpoint,
		APIKey:      config.Azure.APIKey,
		Deployment:  config.Azure.Deployment,
		APIVersion:  config.Azure.APIVersion,
		Temperature: float32(config.LLM.Temperature),
		Timeout:     time.Duration(config.LLM.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create chat model: %w", err)
	}

	templatesDir := TemplatesPath(config)
	profilePrompt, err := prompts.GetPrompt(prompts.KeyProfile, templatesDir)
	if err != nil {
		return err
	}
	researchPrompt, err := prompts.GetPrompt(prompts.KeyResearch, templatesDir)
	if err != nil {
		return err
	}
	advisorPrompt, err := prompts.GetPrompt(prompts.KeyAdvisor, templatesDir)
	if err != nil {
		return err
	}

	// Learn being down degrades the session, it does not abort it.
	var researchAgent *agents.ResearchAgent
	spin := ui.NewSpinner("Connecting to Microsoft Learn...")
	spin.Start()
	learnClient, err := learn.Connect(ctx, config.Learn.URL, time.Duration(config.Learn.TimeoutSeconds)*time.Second)
	spin.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.StylePrefixWarn.Render("!"), "Microsoft Learn unavailable:", err)
	} else {
		defer func() { _ = learnClient.Close() }()
		researchAgent = agents.NewResearchAgent(chatModel,
			[]tool.BaseTool{learn.NewSearchTool(learnClient)},
			researchPrompt, config.LLM.ResearchMaxTokens)
		if config.Verbose {
			researchAgent.SetVerbose(os.Stderr)
		}
	}

	var input func() (string, error)
	if interactive {
		reader := bufio.NewReader(os.Stdin)
		input = func() (string, error) {
			fmt.Print(ui.StylePrefixUser.Render("You: "))
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", err
			}
			logger.SetLastAnswer(line)
			return line, nil
		}
	}

	runner := &session.Runner{
		Profile:  agents.NewProfileAgent(chatModel, profilePrompt, config.LLM.ProfileMaxTokens),
		Research: researchAgent,
		Advisor:  agents.NewAdvisorAgent(chatModel, advisorPrompt, config.LLM.AdvisorMaxTokens),
		Input:    input,
		Out:      os.Stdout,
		SeedGoal: adviseGoal,
	}
	logger.SetStage(string(runner.Stage()))

	rec, err := runner.Run(ctx)
	logger.SetStage(string(runner.Stage()))
	if err != nil {
		return err
	}

	if adviseSavePath != "" {
		if err := session.SaveRecord(afero.NewOsFs(), adviseSavePath, rec); err != nil {
			return err
		}
		fmt.Println(ui.StyleSuccess.Render("Session saved to " + adviseSavePath))
	}
	return nil
}
