package postgres

import (
	"context"
	"snapkitty-api/internal/domain/entity"
	"snapkitty-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"time"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// create user
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	query := `INSERT INTO users (id, username, password, "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Password, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

// find user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, username, password,
		"createdAt", "updatedAt"
		FROM users WHERE username = $1`
	err := r.db.GetContext(ctx, &user, query, username)
	return &user, err
}

// find user by id
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, username, password,
		"createdAt", "updatedAt"
		FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	return &user, err
}
