package users

// CreateUserRequest represents the data needed to create a new user.
// Info is optional and stored as an empty string when absent.
type CreateUserRequest struct {
	Username string `json:"username"`
	Info     string `json:"info"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}
