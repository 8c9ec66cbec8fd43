package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the caller of a use case.
type Scope struct {
	UserID string // Backend user id or "anonymous"
	Email  string // Account email, used as the backend's user key
	Role   string // "relative" or "elderly"
}
