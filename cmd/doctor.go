package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathwing/pathwing/internal/learn"
	"github.com/pathwing/pathwing/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and connectivity",
	Long: `Doctor reports which settings are present and whether the Microsoft
Learn endpoint answers. It never calls the Azure OpenAI deployment, so it is
safe to run without spending tokens.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	config := GetConfig()

	fmt.Println(ui.StyleTitle.Render("PathWing " + version))
	fmt.Println()

	ok := ui.StyleSuccess.Render("ok")
	missing := ui.StyleError.Render("missing")

	checks := []struct {
		name string
		set  bool
		hint string
	}{
		{"azure.endpoint", config.Azure.Endpoint != "", "AZURE_OPENAI_ENDPOINT"},
		{"azure.apiKey", config.Azure.APIKey != "", "AZURE_OPENAI_API_KEY"},
		{"azure.deployment", config.Azure.Deployment != "", "AZURE_OPENAI_DEPLOYMENT_NAME"},
		{"azure.apiVersion", config.Azure.APIVersion != "", "AZURE_OPENAI_API_VERSION"},
	}
	allSet := true
	for _, c := range checks {
		status := ok
		if !c.set {
			status = missing + ui.StyleSubtle.Render(" (set "+c.hint+")")
			allSet = false
		}
		fmt.Printf("  %-22s %s\n", c.name, status)
	}

	fmt.Printf("  %-22s %s\n", "learn.url", ui.StyleSubtle.Render(config.Learn.URL))

	spin := ui.NewSpinner("Checking Microsoft Learn...")
	spin.Start()
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(config.Learn.TimeoutSeconds)*time.Second)
	defer cancel()
	client, err := learn.Connect(ctx, config.Learn.URL, time.Duration(config.Learn.TimeoutSeconds)*time.Second)
	spin.Stop()
	if err != nil {
		fmt.Printf("  %-22s %s\n", "learn endpoint", ui.StyleError.Render("unreachable"))
		if config.Verbose {
			fmt.Println(ui.StyleSubtle.Render("    " + err.Error()))
		}
	} else {
		_ = client.Close()
		fmt.Printf("  %-22s %s\n", "learn endpoint", ok)
	}

	fmt.Println()
	if allSet {
		fmt.Println(ui.StyleSuccess.Render("Ready.") + " Run 'pathwing advise' to start a session.")
	} else {
		fmt.Println(ui.StyleWarning.Render("Azure OpenAI settings incomplete; 'pathwing advise' will refuse to start."))
	}
	return nil
}
