package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AxonC/auctor/domain"
	internalauth "github.com/AxonC/auctor/internal/auth"
)

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func hashedUser(t *testing.T, username, password, name string) *domain.User {
	t.Helper()
	hash, err := internalauth.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{Username: username, Name: name, Password: hash}
}

func newGate(users *userRepoMock) *UseCase {
	return New(users, internalauth.NewTokenIssuer("test-secret", time.Minute), nil)
}

func TestAuthenticate_Success(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "alice").
		Return(hashedUser(t, "alice", "secret", "Alice"), nil).Once()

	gate := newGate(users)

	user, err := gate.Authenticate(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	users.AssertExpectations(t)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "alice").
		Return(hashedUser(t, "alice", "secret", "Alice"), nil).Once()

	gate := newGate(users)

	_, err := gate.Authenticate(context.Background(), "alice", "nope")
	require.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, domain.ErrUserNotFound).Once()

	gate := newGate(users)

	// An unknown username must be indistinguishable from a wrong password.
	_, err := gate.Authenticate(context.Background(), "ghost", "secret")
	require.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "alice").
		Return(hashedUser(t, "alice", "secret", "Alice"), nil).Times(2)

	issuer := internalauth.NewTokenIssuer("test-secret", time.Minute)
	gate := New(users, issuer, nil)

	token, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := gate.Authorize(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
}

func TestRegister_HashesPassword(t *testing.T) {
	users := new(userRepoMock)
	users.On("Create", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
		return user.Username == "bob" &&
			user.Name == "Bob" &&
			user.Password != "secret" &&
			internalauth.VerifyPassword("secret", user.Password)
	})).Return(nil).Once()

	gate := newGate(users)

	user, err := gate.Register(context.Background(), "bob", "secret", "Bob")
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := new(userRepoMock)
	users.On("Create", mock.Anything, mock.Anything).
		Return(domain.ErrUsernameTaken).Once()

	gate := newGate(users)

	_, err := gate.Register(context.Background(), "bob", "secret", "Bob")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAuthorize_InvalidToken(t *testing.T) {
	gate := newGate(new(userRepoMock))

	_, err := gate.Authorize(context.Background(), "not-a-token")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestAuthorize_ExpiredToken(t *testing.T) {
	issuer := internalauth.NewTokenIssuer("test-secret", time.Minute)
	gate := New(new(userRepoMock), issuer, nil)

	token, err := issuer.Issue("alice", -time.Minute)
	require.NoError(t, err)

	_, err = gate.Authorize(context.Background(), token)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	require.ErrorIs(t, err, internalauth.ErrTokenExpired)
}

func TestAuthorize_UnknownSubject(t *testing.T) {
	users := new(userRepoMock)
	users.On("GetByUsername", mock.Anything, "deleted").
		Return(nil, domain.ErrUserNotFound).Once()

	issuer := internalauth.NewTokenIssuer("test-secret", time.Minute)
	gate := New(users, issuer, nil)

	token, err := issuer.Issue("deleted", time.Minute)
	require.NoError(t, err)

	_, err = gate.Authorize(context.Background(), token)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}
