package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/AxonC/auctor/domain"
	internalauth "github.com/AxonC/auctor/internal/auth"
	"github.com/AxonC/auctor/repository"
)

// UseCase is the gate every authenticated operation passes through. It
// orchestrates credential verification, token issuance and token-based
// authorization on top of the user repository.
type UseCase struct {
	users  repository.UserRepository
	tokens *internalauth.TokenIssuer
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens *internalauth.TokenIssuer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Authenticate checks a username/password pair. An unknown username and a
// wrong password are indistinguishable to the caller: both return
// domain.ErrBadCredentials.
func (uc *UseCase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	if !internalauth.VerifyPassword(password, user.Password) {
		return nil, domain.ErrBadCredentials
	}
	return user, nil
}

// Login authenticates the pair and issues an access token bound to the
// username for the configured lifespan.
func (uc *UseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	token, err := uc.tokens.Issue(user.Username, 0)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "could not issue token", err)
	}
	uc.logger.Debug("access token issued", zap.String("username", user.Username))
	return token, nil
}

// Register hashes the password and creates the user. A duplicate username
// surfaces as domain.ErrUsernameTaken.
func (uc *UseCase) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	hashed, err := internalauth.HashPassword(password)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "could not hash password", err)
	}

	user := &domain.User{
		Username: username,
		Name:     name,
		Password: hashed,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authorize verifies a bearer token and re-fetches the bound user. Every
// verification failure, including a subject that no longer exists, surfaces
// as an UNAUTHORIZED domain error.
func (uc *UseCase) Authorize(ctx context.Context, token string) (*domain.User, error) {
	username, err := uc.tokens.Verify(token)
	if err != nil {
		uc.logger.Warn("token rejected", zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "could not validate credentials", err)
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			// The subject vanished between issuance and use.
			return nil, domain.WrapError(domain.ErrCodeUnauthorized, "unknown user", err)
		}
		return nil, err
	}
	return user, nil
}
