package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/mcdev12/userform/go/internal/httpjson"
	"github.com/mcdev12/userform/go/internal/models"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Service exposes the users app over JSON HTTP
type Service struct {
	app UsersApp
}

// NewService creates a new users HTTP service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the users endpoints on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/users", s.HandleUsers)
}

// HandleUsers dispatches /users by method
func (s *Service) HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.ListUsers(w, r)
	case http.MethodPost:
		s.CreateUser(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		httpjson.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// ListUsers handles GET /users
func (s *Service) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.app.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("GET /users failed")
		httpjson.WriteError(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users
func (s *Service) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateUserRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		// An unreadable body is treated as an empty request and fails validation.
		log.Debug().Err(err).Msg("could not decode create user body")
		req = CreateUserRequest{}
	}

	user, err := s.app.CreateUser(r.Context(), req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpjson.WriteError(w, http.StatusBadRequest, verr.Message)
			return
		}
		log.Error().Err(err).Msg("POST /users failed")
		httpjson.WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	httpjson.WriteJSON(w, http.StatusCreated, user)
}
