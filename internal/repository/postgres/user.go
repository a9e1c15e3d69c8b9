package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = "id, name, email, password_hash, status, role, created_at, updated_at"

func userMapping() Mapping[model.User] {
	return Mapping[model.User]{
		Table:   "users",
		Columns: []string{"id", "name", "email", "password_hash", "status", "role", "created_at", "updated_at"},
		Args: func(u model.User) []any {
			return []any{u.ID, u.Name, u.Email, u.PasswordHash, u.Status, u.Role, u.CreatedAt, u.UpdatedAt}
		},
		Scan: scanUser,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Status, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UserRepository persists users through the generic store plus email lookup.
type UserRepository struct {
	*Store[model.User]
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		Store: NewStore(db, userMapping()),
		db:    db,
	}
}

// GetByEmail returns the user with the exact email, or model.ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
