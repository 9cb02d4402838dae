package db

import (
	"database/sql"
)

type User struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Info     sql.NullString `json:"info"`
	Email    string         `json:"email"`
	Contact  string         `json:"contact"`
}
