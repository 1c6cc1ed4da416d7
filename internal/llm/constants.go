package llm

// DefaultAPIVersion is used when azure.apiVersion is not configured.
const DefaultAPIVersion = "2025-01-01-preview"
