package models

// User represents a saved user contact record
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Info     string `json:"info"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}
