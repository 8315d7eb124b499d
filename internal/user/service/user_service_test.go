package service

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_shop/internal/auth"
	"github.com/fjod/go_shop/internal/user/domain"
	"github.com/fjod/go_shop/internal/user/repository"
)

type mockRepository struct {
	byEmail map[string]*domain.User
	err     error
}

func newMockRepository() *mockRepository {
	return &mockRepository{byEmail: map[string]*domain.User{}}
}

func (m *mockRepository) CreateUser(_ context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockRepository) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newSut(repo repository.UserRepository) *UserServiceImpl {
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewUserService(repo, tokens, slog.New(slog.DiscardHandler))
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newMockRepository()
	sut := newSut(repo)

	user, err := sut.Register(context.Background(), "a@b.com", "hunter22", "Alice")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "hunter22")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	sut := newSut(repo)

	first, err := sut.Register(context.Background(), "a@b.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, err = sut.Register(context.Background(), "a@b.com", "other-pass", "Impostor")
	require.ErrorIs(t, err, ErrEmailTaken)

	// First registration unaffected.
	stored, err := repo.GetUserByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockRepository()
	sut := newSut(repo)

	_, err := sut.Register(context.Background(), "a@b.com", "hunter22", "Alice")
	require.NoError(t, err)

	token, err := sut.Login(context.Background(), "a@b.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockRepository()
	sut := newSut(repo)

	_, err := sut.Register(context.Background(), "a@b.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, err = sut.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail_SameError(t *testing.T) {
	sut := newSut(newMockRepository())

	_, err := sut.Login(context.Background(), "nobody@b.com", "whatever")

	// Must not leak whether the email exists.
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepoError_IsNotCredentialsError(t *testing.T) {
	repo := newMockRepository()
	repo.err = fmt.Errorf("database unreachable")
	sut := newSut(repo)

	_, err := sut.Login(context.Background(), "a@b.com", "hunter22")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
