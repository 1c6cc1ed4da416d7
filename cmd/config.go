package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pathwing/pathwing/internal/learn"
	"github.com/pathwing/pathwing/internal/llm"
	"github.com/pathwing/pathwing/types"
)

const (
	configName = ".pathwing"
	envPrefix  = "PATHWING"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., PATHWING_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The Azure settings follow the conventional variable names so an
	// environment prepared for other Azure OpenAI tools works unchanged.
	_ = viper.BindEnv("azure.endpoint", "PATHWING_AZURE_ENDPOINT", "AZURE_OPENAI_ENDPOINT")
	_ = viper.BindEnv("azure.apiKey", "PATHWING_AZURE_APIKEY", "AZURE_OPENAI_API_KEY")
	_ = viper.BindEnv("azure.deployment", "PATHWING_AZURE_DEPLOYMENT", "AZURE_OPENAI_DEPLOYMENT_NAME")
	_ = viper.BindEnv("azure.apiVersion", "PATHWING_AZURE_APIVERSION", "AZURE_OPENAI_API_VERSION")

	cfgFileFlag := viper.GetString("config")

	// We need project.rootDir before the full unmarshal to locate the
	// config file itself, so assume the default directory when unset.
	potentialProjectConfigDir := viper.GetString("project.rootDir")
	if potentialProjectConfigDir == "" {
		potentialProjectConfigDir = ".pathwing"
	}

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if _, err := os.Stat(potentialProjectConfigDir); !os.IsNotExist(err) {
			// Project-specific config directory exists. Prioritize it.
			viper.AddConfigPath(potentialProjectConfigDir) // ./.pathwing/.pathwing.yaml
			viper.SetConfigName(configName)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home) // $HOME/.pathwing.yaml
			viper.AddConfigPath(".")  // ./.pathwing.yaml
			viper.SetConfigName(configName)
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("project.rootDir", ".pathwing")
	viper.SetDefault("project.templatesDir", "templates")

	viper.SetDefault("azure.apiVersion", llm.DefaultAPIVersion)

	viper.SetDefault("learn.url", learn.DefaultURL)
	viper.SetDefault("learn.timeoutSeconds", 30)

	// Temperature 0 keeps roadmaps reproducible for identical answers.
	viper.SetDefault("llm.temperature", 0.0)
	viper.SetDefault("llm.profileMaxTokens", 256)
	viper.SetDefault("llm.researchMaxTokens", 1024)
	viper.SetDefault("llm.advisorMaxTokens", 2048)
	viper.SetDefault("llm.requestTimeoutSeconds", 120)

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// A config file can exist but miss these nested keys; fall back to the
	// defaults rather than running with empty paths.
	if GlobalAppConfig.Project.RootDir == "" {
		GlobalAppConfig.Project.RootDir = viper.GetString("project.rootDir")
	}
	if GlobalAppConfig.Project.TemplatesDir == "" {
		GlobalAppConfig.Project.TemplatesDir = viper.GetString("project.templatesDir")
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// EnsureOracleConfig checks the settings that have no defaults and are
// required before any model call. It returns a fatal ConfigError naming
// the first missing key.
func EnsureOracleConfig(config *types.AppConfig) error {
	if config.Azure.Endpoint == "" {
		return types.NewConfigError("azure.endpoint", "set AZURE_OPENAI_ENDPOINT or azure.endpoint in the config file")
	}
	if config.Azure.APIKey == "" {
		return types.NewConfigError("azure.apiKey", "set AZURE_OPENAI_API_KEY or azure.apiKey in the config file")
	}
	if config.Azure.Deployment == "" {
		return types.NewConfigError("azure.deployment", "set AZURE_OPENAI_DEPLOYMENT_NAME or azure.deployment in the config file")
	}
	return nil
}

// TemplatesPath returns the prompt override directory inside the project root.
func TemplatesPath(config *types.AppConfig) string {
	return filepath.Join(config.Project.RootDir, config.Project.TemplatesDir)
}
