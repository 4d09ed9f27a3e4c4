package service

import (
	"context"
	"strconv"
	"testing"

	"devconnect/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestGravatarURL(t *testing.T) {
	t.Parallel()

	// md5("user@example.com")
	want := "https://www.gravatar.com/avatar/b58996c504c5638798eb6b511e6f49af?s=200&r=pg&d=mm"
	assert.Equal(t, want, GravatarURL("user@example.com"))

	// Whitespace and case do not change the avatar.
	assert.Equal(t, want, GravatarURL("  User@Example.COM  "))
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var created *models.User
		repo.createFn = func(_ context.Context, u *models.User) error {
			u.ID = 1
			created = u
			return nil
		}
		svc := NewAuthService(repo, testSecret)

		user, token, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Jane",
			Email:    "jane@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, token)
		assert.Equal(t, "Jane", user.Name)
		assert.Contains(t, user.Avatar, "gravatar.com/avatar/")

		// Password is stored hashed, never verbatim.
		assert.NotEqual(t, "hunter22", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter22")))
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testSecret)
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Jane",
			Email:    "jane@example.com",
			Password: "12345",
		})
		assertValidationError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testSecret)
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Jane",
			Email:    "not-an-email",
			Password: "hunter22",
		})
		assertValidationError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 9, Email: email}, nil
		}
		svc := NewAuthService(repo, testSecret)
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Jane",
			Email:    "taken@example.com",
			Password: "hunter22",
		})
		assertErrorCode(t, err, models.CodeDuplicateEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Name: "Jane", Email: email, Password: string(hashed)}, nil
		}
		svc := NewAuthService(repo, testSecret)

		user, token, err := svc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(noopUserRepo(), testSecret)
		_, _, err := svc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		assertErrorCode(t, err, models.CodeUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 3, Email: email, Password: string(hashed)}, nil
		}
		svc := NewAuthService(repo, testSecret)
		_, _, err := svc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assertErrorCode(t, err, models.CodeUnauthorized)
	})
}

func TestAuthService_IssueToken_Claims(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(noopUserRepo(), testSecret)
	tokenString, err := svc.IssueToken(&models.User{ID: 42, Name: "Jane"})
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(42), claims["sub"])
	assert.Equal(t, "Jane", claims["name"])
	assert.Equal(t, TokenIssuer, claims["iss"])
	assert.Equal(t, TokenAudience, claims["aud"])
	assert.NotEmpty(t, claims["jti"])
}

func TestAuthService_UpdateUser(t *testing.T) {
	t.Parallel()

	t.Run("email change refreshes avatar and token", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{
				ID:     id,
				Name:   "Jane",
				Email:  "old@example.com",
				Avatar: GravatarURL("old@example.com"),
			}, nil
		}
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewAuthService(repo, testSecret)

		user, token, err := svc.UpdateUser(context.Background(), UpdateUserInput{
			UserID: 1,
			Email:  "new@example.com",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, GravatarURL("new@example.com"), user.Avatar)
		require.NotNil(t, saved)
		assert.Equal(t, "Jane", saved.Name, "name unchanged when not provided")
	})

	t.Run("email taken by another user", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "old@example.com"}, nil
		}
		repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			return &models.User{ID: 99, Email: email}, nil
		}
		svc := NewAuthService(repo, testSecret)

		_, _, err := svc.UpdateUser(context.Background(), UpdateUserInput{
			UserID: 1,
			Email:  "taken@example.com",
		})
		assertErrorCode(t, err, models.CodeDuplicateEmail)
	})

	t.Run("password change is rehashed", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "jane@example.com", Password: "old-hash"}, nil
		}
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewAuthService(repo, testSecret)

		_, _, err := svc.UpdateUser(context.Background(), UpdateUserInput{
			UserID:   1,
			Password: "new-password",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("new-password")))
	})
}
