package userform_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mcdev12/userform/go/clients"
	"github.com/mcdev12/userform/go/internal/models"
)

// CreateUserRequest is the body sent to POST /users
type CreateUserRequest struct {
	Username string `json:"username"`
	Info     string `json:"info"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
}

type UserFormClient struct {
	*clients.BaseClient
}

func NewUserFormClient(baseURL string) *UserFormClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &UserFormClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader("Accept", "application/json")
	client.SetHeader("Content-Type", "application/json")

	return client
}

func (c *UserFormClient) Health(ctx context.Context) (*HealthResponse, error) {
	body, err := c.Get(ctx, HealthEndpoint)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &health, nil
}

func (c *UserFormClient) ListUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.Get(ctx, UsersEndpoint)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (c *UserFormClient) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	body, err := c.Post(ctx, UsersEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode created user: %w", err)
	}
	return &user, nil
}
