package formclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mcdev12/userform/go/clients"
	"github.com/mcdev12/userform/go/clients/userform_client"
	"github.com/mcdev12/userform/go/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	loadFailedMessage   = "Failed to load users"
	createFailedMessage = "Failed to create user"
)

var (
	// ErrNotMounted is returned by operations that must wait for Mount
	ErrNotMounted = errors.New("view is not mounted")
	// ErrSubmitPending is returned when a submit is already in flight
	ErrSubmitPending = errors.New("a submission is already pending")
)

// UsersClient defines what the view needs from the API
type UsersClient interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req userform_client.CreateUserRequest) (*models.User, error)
}

// Form holds the values of the create form
type Form struct {
	Username string
	Info     string
	Email    string
	Contact  string
}

// State is a point-in-time copy of everything the page renders
type State struct {
	Users      []models.User
	Form       Form
	Loading    bool
	Submitting bool
	Error      string
}

// View keeps the create form and user list in sync with the API.
type View struct {
	client UsersClient

	mu      sync.Mutex
	mounted bool
	state   State
}

func NewView(client UsersClient) *View {
	return &View{
		client: client,
		state: State{
			Users:   []models.User{},
			Loading: true,
		},
	}
}

// Mount marks the view ready to render and fetch.
func (v *View) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = true
}

// Snapshot returns a copy of the state. ok is false until Mount is called,
// in which case nothing should be rendered.
func (v *View) Snapshot() (state State, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted {
		return State{}, false
	}

	state = v.state
	state.Users = append(make([]models.User, 0, len(v.state.Users)), v.state.Users...)
	return state, true
}

// Load fetches the user list. Fetch failures end up in State.Error.
func (v *View) Load(ctx context.Context) error {
	v.mu.Lock()
	if !v.mounted {
		v.mu.Unlock()
		return ErrNotMounted
	}
	v.state.Loading = true
	v.state.Error = ""
	v.mu.Unlock()

	users, err := v.client.ListUsers(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Loading = false
	if err != nil {
		log.Warn().Err(err).Msg("failed to load users")
		v.state.Error = loadErrorMessage(err)
		v.state.Users = []models.User{}
		return nil
	}
	if users == nil {
		users = []models.User{}
	}
	v.state.Users = users
	return nil
}

// SetField updates one form input by its name.
func (v *View) SetField(name, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch name {
	case "username":
		v.state.Form.Username = value
	case "info":
		v.state.Form.Info = value
	case "email":
		v.state.Form.Email = value
	case "contact":
		v.state.Form.Contact = value
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// Submit posts the current form. On success the created user is prepended
// and the form cleared; on failure only the error changes.
func (v *View) Submit(ctx context.Context) error {
	v.mu.Lock()
	if !v.mounted {
		v.mu.Unlock()
		return ErrNotMounted
	}
	if v.state.Submitting {
		v.mu.Unlock()
		return ErrSubmitPending
	}
	v.state.Submitting = true
	v.state.Error = ""
	form := v.state.Form
	v.mu.Unlock()

	created, err := v.client.CreateUser(ctx, userform_client.CreateUserRequest{
		Username: form.Username,
		Info:     form.Info,
		Email:    form.Email,
		Contact:  form.Contact,
	})

	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Submitting = false
	if err != nil {
		log.Warn().Err(err).Msg("failed to create user")
		v.state.Error = createErrorMessage(err)
		return nil
	}

	v.state.Users = append([]models.User{*created}, v.state.Users...)
	v.state.Form = Form{}
	return nil
}

func loadErrorMessage(err error) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s (status %d)", loadFailedMessage, apiErr.StatusCode)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return loadFailedMessage
}

func createErrorMessage(err error) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return createFailedMessage
}
