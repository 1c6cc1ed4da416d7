package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Project ProjectConfig `mapstructure:"project" validate:"required"`
	Azure   AzureConfig   `mapstructure:"azure"`
	Learn   LearnConfig   `mapstructure:"learn" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir      string `mapstructure:"rootDir" validate:"required"`
	TemplatesDir string `mapstructure:"templatesDir" validate:"required"`
}

// AzureConfig holds the Azure OpenAI connection settings. The first three
// values have no defaults and are enforced at command time so that doctor
// can still run against a partial configuration.
type AzureConfig struct {
	Endpoint   string `mapstructure:"endpoint" validate:"omitempty,url"`
	APIKey     string `mapstructure:"apiKey"`
	Deployment string `mapstructure:"deployment"`
	APIVersion string `mapstructure:"apiVersion" validate:"required"`
}

// LearnConfig holds settings for the Microsoft Learn MCP endpoint.
type LearnConfig struct {
	URL            string `mapstructure:"url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" validate:"required,min=5,max=600"`
}

// LLMConfig holds model-call tuning shared by the three stages.
type LLMConfig struct {
	// Temperature is fixed at 0 by default; the roadmap contract promises
	// deterministic output for identical inputs.
	Temperature float64 `mapstructure:"temperature" validate:"min=0,max=2"`
	// Per-stage output caps: the profile stage needs short turns, research
	// a medium listing, the advisor the largest block.
	ProfileMaxTokens  int `mapstructure:"profileMaxTokens" validate:"required,min=1"`
	ResearchMaxTokens int `mapstructure:"researchMaxTokens" validate:"required,min=1"`
	AdvisorMaxTokens  int `mapstructure:"advisorMaxTokens" validate:"required,min=1"`
	// RequestTimeoutSeconds controls the HTTP client timeout for model calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"required,min=5,max=600"`
}
