package userform_client

const (
	// Default API location
	DefaultBaseURL = "http://localhost:3001"

	// API Endpoints
	HealthEndpoint = "/health"
	UsersEndpoint  = "/users"
)
