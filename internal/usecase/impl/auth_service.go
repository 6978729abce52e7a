// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"credence/config"
	deliverycontext "credence/internal/delivery/context"
	"credence/internal/domain/entity"
	domainerrors "credence/internal/domain/errors"
	"credence/internal/domain/repository"
	"credence/internal/domain/service"
	"credence/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	seed     *config.SeedConfig
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var seed *config.SeedConfig
	if params.Config != nil && params.Config.Auth != nil {
		seed = params.Config.Auth.Seed
	}

	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		seed:     seed,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lowercases the address so case differences cannot create
// duplicate accounts or failed lookups.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register orchestrates the account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "missing registration input")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "name, email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Pre-insert lookup keeps the common duplicate case cheap; the unique
	// index on email still closes the race between two concurrent registrations.
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(input.Name),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration lost insert race, email taken", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return toAccountOutput(newUser), nil
}

// Login orchestrates the credential verification process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "missing login input")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "email and password are required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password: never reveal whether the email is registered.
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return toAccountOutput(user), nil
}

// EnsureSeeded provisions the configured demo account when the store is empty.
// It is idempotent and safe to call on every process start. When two
// instances share one store, the first writer wins and the loser's
// duplicate-email failure is swallowed.
func (srv *authService) EnsureSeeded(ctx context.Context) error {
	if srv.seed == nil || srv.seed.Email == "" {
		return nil
	}

	count, err := srv.userRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users for seeding")
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := srv.hasher.Hash(srv.seed.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed password")
	}

	seedUser := &entity.User{
		Email:        normalizeEmail(srv.seed.Email),
		PasswordHash: hashedPassword,
		Name:         srv.seed.Name,
	}

	if err := srv.userRepo.Create(ctx, seedUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.logger.Info("Seed account already provisioned by another instance", slog.String("email", seedUser.Email))

			return nil
		}

		return errors.Wrap(err, "failed to create seed user")
	}

	srv.logger.Info("Seeded demo user", slog.String("email", seedUser.Email))

	return nil
}

func toAccountOutput(user *entity.User) *usecase.AccountOutput {
	return &usecase.AccountOutput{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
