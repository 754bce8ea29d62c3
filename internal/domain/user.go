package domain

import "context"

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	UpdateUserPassword(ctx context.Context, username, passwordHash string) error
}
