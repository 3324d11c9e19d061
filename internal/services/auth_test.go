package services

import (
	"context"
	"testing"
	"time"

	"qa-forum-backend/internal/apperrors"
	"qa-forum-backend/internal/models"
	"qa-forum-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthService() (*AuthService, *repository.MemoryUserRepository) {
	users := repository.NewMemoryUserRepository()
	return NewAuthService(users, testSecret, bcrypt.MinCost), users
}

func strptr(s string) *string { return &s }

func validRegistration() RegisterInput {
	return RegisterInput{
		Fname:    "Joy",
		Lname:    "Bhattacharya",
		Email:    "joy@example.com",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := newAuthService()
		user, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)
		assert.Equal(t, models.DefaultCreditScore, user.CreditScore)
		assert.False(t, user.ID.IsZero())
		assert.NotEqual(t, "secret123", user.Password, "plaintext must never be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	})

	t.Run("MissingNames", func(t *testing.T) {
		svc, _ := newAuthService()
		in := validRegistration()
		in.Fname = "  "
		_, err := svc.Register(ctx, in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

		in = validRegistration()
		in.Lname = ""
		_, err = svc.Register(ctx, in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, users := newAuthService()
		_, err := svc.Register(ctx, validRegistration())
		require.NoError(t, err)

		in := validRegistration()
		in.Fname = "Other"
		_, err = svc.Register(ctx, in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))

		all, _ := users.FindByEmail(ctx, "joy@example.com")
		require.NotNil(t, all)
		assert.Equal(t, "Joy", all.Fname, "conflicting registration must not create a record")
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		svc, _ := newAuthService()
		in := validRegistration()
		in.Email = "not-an-email"
		_, err := svc.Register(ctx, in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("DuplicatePhone", func(t *testing.T) {
		svc, _ := newAuthService()
		in := validRegistration()
		in.Phone = strptr("9876543210")
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)

		in2 := validRegistration()
		in2.Email = "other@example.com"
		in2.Phone = strptr("9876543210")
		_, err = svc.Register(ctx, in2)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("BlankPhone", func(t *testing.T) {
		svc, _ := newAuthService()
		in := validRegistration()
		in.Phone = strptr("  ")
		_, err := svc.Register(ctx, in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		svc, _ := newAuthService()
		in := validRegistration()
		in.Phone = strptr("12345")
		_, err := svc.Register(ctx, in)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("PasswordLength", func(t *testing.T) {
		svc, _ := newAuthService()
		for _, pw := range []string{"short7!", "averyveryverylongpassword"} {
			in := validRegistration()
			in.Password = pw
			_, err := svc.Register(ctx, in)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), pw)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()
	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		result, err := svc.Login(ctx, "joy@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.NotEmpty(t, result.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, "joy@example.com", "wrongpass1")
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	})

	t.Run("TokenExpiryIs24h", func(t *testing.T) {
		result, err := svc.Login(ctx, "joy@example.com", "secret123")
		require.NoError(t, err)

		claims := &Claims{}
		_, err = jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, result.UserID, claims.UserID)
		assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()
	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	result, err := svc.Login(ctx, "joy@example.com", "secret123")
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		userID, err := svc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, userID)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := Claims{
			UserID: result.UserID,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(expired)
		assert.True(t, apperrors.IsKind(err, apperrors.KindSession))
	})

	t.Run("BadSignature", func(t *testing.T) {
		claims := Claims{
			UserID: result.UserID,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(forged)
		assert.True(t, apperrors.IsKind(err, apperrors.KindSession))
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.True(t, apperrors.IsKind(err, apperrors.KindSession))
	})
}
