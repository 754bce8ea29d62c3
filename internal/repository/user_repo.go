package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type sqlUserRepository struct {
	db      *sql.DB
	dialect Dialect
	log     *logrus.Logger
}

func NewSQLUserRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) domain.UserRepository {
	return &sqlUserRepository{
		db:      db,
		dialect: dialect,
		log:     logger,
	}
}

func (r *sqlUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := r.dialect.Rebind(`
        SELECT id, username, password_hash
        FROM users
        WHERE username = ?`)
	user := &domain.User{}

	r.log.Debugf("Repository: Attempting to find user by username: %s", username)

	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: User with username %s not found", username)
			return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get user by username %s: %v", username, err)
		return nil, fmt.Errorf("could not get user by username: %w", err)
	}

	return user, nil
}

func (r *sqlUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := r.dialect.Rebind(`
        INSERT INTO users (username, password_hash)
        VALUES (?, ?)
        RETURNING id`)

	err := r.db.QueryRowContext(ctx, query, user.Username, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warnf("Repository: Attempted to create user with duplicate username: %s", user.Username)
			return nil, fmt.Errorf("user with username '%s': %w", user.Username, domain.ErrConflict)
		}
		r.log.Errorf("Repository: Failed to create user '%s': %v", user.Username, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	r.log.Infof("Repository: User created successfully with ID: %d, Username: %s", user.ID, user.Username)
	return user, nil
}

func (r *sqlUserRepository) UpdateUserPassword(ctx context.Context, username, passwordHash string) error {
	query := r.dialect.Rebind(`UPDATE users SET password_hash = ? WHERE username = ?`)
	result, err := r.db.ExecContext(ctx, query, passwordHash, username)
	if err != nil {
		r.log.Errorf("Repository: Failed to update password for %s: %v", username, err)
		return fmt.Errorf("could not update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm password update: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("password update for %s: %w", username, domain.ErrNotAffected)
	}

	r.log.Infof("Repository: Password updated for user %s", username)
	return nil
}
