package model

// Scope carries per-request identity through the chat pipeline.
type Scope struct {
	SessionID string
	ClientIP  string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
