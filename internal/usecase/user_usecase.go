package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error
}

type userUseCase struct {
	userRepo   domain.UserRepository
	log        *logrus.Logger
	bcryptCost int
}

// NewUserUseCase returns a use case that stores bcrypt hashes, never plaintext.
func NewUserUseCase(repo domain.UserRepository, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		userRepo:   repo,
		log:        logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (uc *userUseCase) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	uc.log.Infof("Use Case: Attempting signup for username: %s", username)

	if username == "" || password == "" {
		uc.log.Warn("Use Case: Signup failed - empty username or password")
		return nil, fmt.Errorf("username and password are required: %w", domain.ErrInvalidInput)
	}

	hash, err := uc.hash(password)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", username, err)
		return nil, err
	}

	user, err := uc.userRepo.CreateUser(ctx, &domain.User{Username: username, PasswordHash: hash})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user %s: %v", username, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User signed up. ID: %d, Username: %s", user.ID, user.Username)
	return user, nil
}

func (uc *userUseCase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Login successful for user %s (ID: %d)", username, user.ID)
	return user, nil
}

func (uc *userUseCase) ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if _, err := uc.authenticate(ctx, username, oldPassword); err != nil {
		return err
	}

	if newPassword == "" {
		uc.log.Warnf("Use Case: Password reset for %s rejected - empty new password", username)
		return fmt.Errorf("new password is required: %w", domain.ErrInvalidInput)
	}

	hash, err := uc.hash(newPassword)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash new password for %s: %v", username, err)
		return err
	}

	if err := uc.userRepo.UpdateUserPassword(ctx, username, hash); err != nil {
		uc.log.Errorf("Use Case: Repository failed to reset password for %s: %v", username, err)
		return err
	}

	uc.log.Infof("Use Case: Password reset for user %s", username)
	return nil
}

// authenticate looks the user up and compares the password against the stored
// bcrypt hash.
func (uc *userUseCase) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - user not found: %s", username)
			return nil, fmt.Errorf("%s: %w", username, domain.ErrUserNotRegistered)
		}
		uc.log.Errorf("Use Case: Error retrieving user %s during auth: %v", username, err)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), prehash(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for user %s (ID: %d)", username, user.ID)
			return nil, fmt.Errorf("%s: %w", username, domain.ErrIncorrectPassword)
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user %s: %v", username, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	return user, nil
}

func (uc *userUseCase) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), uc.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("internal error processing password: %w", err)
	}
	return string(hashed), nil
}

// prehash maps any password to 44 bytes so bcrypt's 72 byte input limit never
// applies.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
