package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qa-forum-backend/internal/apperrors"
	"qa-forum-backend/internal/models"
	"qa-forum-backend/internal/repository"
	"qa-forum-backend/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is how long an issued token stays valid.
const sessionTTL = 24 * time.Hour

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users      repository.UserRepository
	jwtSecret  []byte
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, jwtSecret string, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret), bcryptCost: bcryptCost}
}

// RegisterInput carries the registration payload. Phone is optional:
// absent is allowed, present-but-blank is not.
type RegisterInput struct {
	Fname    string
	Lname    string
	Email    string
	Phone    *string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if !validation.IsValid(input.Fname) {
		return nil, apperrors.Validation("Unable to register! Please provide the user's fname.")
	}
	if !validation.IsValid(input.Lname) {
		return nil, apperrors.Validation("Unable to register! Please provide the user's lname.")
	}
	if !validation.IsValid(input.Email) {
		return nil, apperrors.Validation("Unable to register! Please provide the user's email id.")
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if existing != nil {
		return nil, apperrors.Conflict(fmt.Sprintf("%s is already registered by someone. Please try another email id.", input.Email))
	}
	if !validation.IsValidEmail(input.Email) {
		return nil, apperrors.Validation(fmt.Sprintf("%s is an invalid email. Please check and try again.", input.Email))
	}

	if !validation.ValidString(input.Phone) {
		return nil, apperrors.Validation("Phone number cannot be empty.")
	}
	var phone string
	if input.Phone != nil {
		phone = *input.Phone
		taken, err := s.users.FindByPhone(ctx, phone)
		if err != nil {
			return nil, apperrors.Internal(err.Error())
		}
		if taken != nil {
			return nil, apperrors.Conflict(fmt.Sprintf("%s is already registered by someone. Please try another phone number.", phone))
		}
		if !validation.IsValidPhone(phone) {
			return nil, apperrors.Validation(fmt.Sprintf("%s is an invalid phone. Please check and try again.", phone))
		}
	}

	if !validation.IsValid(input.Password) {
		return nil, apperrors.Validation("Unable to register! Please provide the user's password.")
	}
	if len(input.Password) < 8 || len(input.Password) > 15 {
		return nil, apperrors.Validation("Password must be of 8-15 characters.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}

	user := &models.User{
		Fname:       input.Fname,
		Lname:       input.Lname,
		Email:       input.Email,
		Phone:       phone,
		Password:    string(hash),
		CreditScore: models.DefaultCreditScore,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return user, nil
}

// LoginResult is the login response payload.
type LoginResult struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if !validation.IsValid(email) {
		return nil, apperrors.Validation("Login credentials missing! Please provide email to login.")
	}
	if !validation.IsValid(password) {
		return nil, apperrors.Validation("Login credentials missing! Please provide password to login.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Login failed! Email id is incorrect.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Login failed! Password is incorrect.")
	}

	token, err := s.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return &LoginResult{UserID: user.ID.Hex(), Token: token}, nil
}

func (s *AuthService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies the signature and expiry of a session token
// and yields the embedded user id. Expired and malformed tokens are
// distinct session failures; both map to 403.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return "", apperrors.Session("Session expired, please login again.")
	}
	if err != nil || !token.Valid {
		return "", apperrors.Session("Invalid authentication token in request.")
	}
	return claims.UserID, nil
}
