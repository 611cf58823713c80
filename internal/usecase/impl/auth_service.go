// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "asana/internal/delivery/context"
	"asana/internal/domain/entity"
	domainerrors "asana/internal/domain/errors"
	"asana/internal/domain/repository"
	"asana/internal/domain/service"
	"asana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and mints its first session token.
// The validation chain is: confirm-password check, duplicate pre-check,
// hash, single atomic insert, token issue. The store's unique email index
// backs the pre-check under concurrent signups.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		srv.log(ctx).Warn("Signup rejected: password confirmation mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "signup rejected")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Signup rejected: user already exists", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check for existing user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check for existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent signup may win the race between the pre-check and the
		// insert; the unique index reports it and it surfaces as a conflict.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup lost duplicate race", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup rejected")
		}
		srv.log(ctx).Error("Failed to create user during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	token, err := srv.tokenService.Issue(newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during signup", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login verifies credentials and mints a fresh session token.
// Failure paths have no side effects.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login rejected: unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login rejected")
		}
		srv.log(ctx).Error("Failed to load user during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected: password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// GetProfile loads the account behind an authenticated request.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}
