// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountOutput is the normalized result of both registration and login.
// It never carries the password hash.
type AccountOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register provisions a new account. Fails with ErrInvalidInput on
	// missing fields and ErrEmailTaken when the normalized email exists.
	Register(ctx context.Context, input *RegisterInput) (*AccountOutput, error)

	// Login verifies credentials. Unknown email and wrong password both
	// fail with the identical ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AccountOutput, error)

	// EnsureSeeded provisions the configured demo account when the store is
	// empty. Called once by the process bootstrap, before requests are served.
	EnsureSeeded(ctx context.Context) error
}
