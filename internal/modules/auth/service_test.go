package auth

import (
	"context"
	"testing"

	"interiorstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@interiorstudio.kr",
		PasswordHash: string(hash),
		Name:         "관리자",
		Role:         domain.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenIssuer)

	user := adminUser(t, "secret123")
	users.On("GetByEmail", mock.Anything, "admin@interiorstudio.kr").Return(user, nil)
	tokens.On("GenerateToken", int64(1), "admin").Return("signed.jwt", nil)

	svc := NewService(users, tokens)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Admin@InteriorStudio.kr ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", result.Token)
	assert.Equal(t, int64(1), result.User.ID)

	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenIssuer)

	users.On("GetByEmail", mock.Anything, "admin@interiorstudio.kr").Return(adminUser(t, "secret123"), nil)

	svc := NewService(users, tokens)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@interiorstudio.kr",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenIssuer)

	users.On("GetByEmail", mock.Anything, "nobody@interiorstudio.kr").Return(nil, nil)

	svc := NewService(users, tokens)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@interiorstudio.kr",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	users := new(mockUserRepo)
	user := adminUser(t, "oldpass123")

	users.On("GetByID", mock.Anything, int64(1)).Return(user, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass456")) == nil
	})).Return(nil)

	svc := NewService(users, new(mockTokenIssuer))

	err := svc.ChangePassword(context.Background(), 1, ChangePasswordRequest{
		CurrentPassword: "oldpass123",
		NewPassword:     "newpass456",
	})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(1)).Return(adminUser(t, "oldpass123"), nil)

	svc := NewService(users, new(mockTokenIssuer))

	err := svc.ChangePassword(context.Background(), 1, ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "newpass456",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
