// Package llm constructs the Azure OpenAI chat model using CloudWeGo Eino.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config holds the connection settings for the Azure OpenAI deployment.
type Config struct {
	Endpoint    string // Azure resource endpoint, e.g. https://myres.openai.azure.com
	APIKey      string
	Deployment  string // deployment name, used as the model identifier
	APIVersion  string
	Temperature float32
	Timeout     time.Duration
}

// NewChatModel creates an Eino BaseChatModel bound to the configured Azure
// deployment. The returned model is shared by all pipeline stages; per-stage
// differences (tools, token caps) are passed as call options.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("azure API key is required")
	}
	if cfg.Deployment == "" {
		return nil, fmt.Errorf("azure deployment name is required")
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	temp := cfg.Temperature

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		ByAzure:     true,
		BaseURL:     cfg.Endpoint,
		APIKey:      cfg.APIKey,
		APIVersion:  apiVersion,
		Model:       cfg.Deployment,
		Temperature: &temp,
		Timeout:     cfg.Timeout,
	})
}
