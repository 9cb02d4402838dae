package db

import (
	"context"

	"github.com/mcdev12/userform/go/internal/sqlutil"
)

const createUser = `INSERT INTO users (username, info, email, contact) VALUES (?, ?, ?, ?)`

type CreateUserParams struct {
	Username string `json:"username"`
	Info     string `json:"info"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

// CreateUser inserts a row and returns the id the store assigned to it.
// Postgres has no LastInsertId, so the id comes back through RETURNING.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	query := q.dialect.Rebind(createUser)
	args := []interface{}{arg.Username, arg.Info, arg.Email, arg.Contact}

	if q.dialect == sqlutil.Postgres {
		var id int64
		err := q.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id)
		return id, err
	}

	result, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getUser = `SELECT id, username, info, email, contact FROM users WHERE id = ?`

func (q *Queries) GetUser(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRowContext(ctx, q.dialect.Rebind(getUser), id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Info,
		&i.Email,
		&i.Contact,
	)
	return i, err
}

const listUsers = `SELECT id, username, info, email, contact FROM users ORDER BY id DESC`

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []User{}
	for rows.Next() {
		var i User
		if err := rows.Scan(
			&i.ID,
			&i.Username,
			&i.Info,
			&i.Email,
			&i.Contact,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const ping = `SELECT 1`

func (q *Queries) Ping(ctx context.Context) error {
	var one int
	return q.db.QueryRowContext(ctx, ping).Scan(&one)
}
