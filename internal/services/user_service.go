package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"itemBack/internal/models"
	"itemBack/internal/repositories"
	"itemBack/utils"
)

// UserService handles sign-up and token issuance. Everything downstream of
// it only ever sees a verified identity from the request context.
type UserService struct {
	UserRepo *repositories.UserRepository
	Tokens   *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, models.NewAPIError(http.StatusBadRequest, models.CodeInvalidParam, "Username and password are required.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.InternalError("Failed to hash password.")
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Username: username,
		Password: string(hashedPassword),
	})
	if errors.Is(err, models.ErrDuplicateUsername) {
		return models.User{}, models.NewAPIError(http.StatusBadRequest, models.CodeUserAlreadyExists, "User already exists.")
	}
	if err != nil {
		return models.User{}, models.InternalError("Failed to create user.")
	}

	user.Password = ""
	return user, nil
}

// SignIn answers unknown user and wrong password with the same response so
// callers cannot probe for usernames.
func (s *UserService) SignIn(ctx context.Context, username, password string) (models.TokenResponse, error) {
	if username == "" || password == "" {
		return models.TokenResponse{}, models.NewAPIError(http.StatusBadRequest, models.CodeInvalidParam, "Username and password are required.")
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.TokenResponse{}, models.NewAPIError(http.StatusUnauthorized, models.CodeInvalidCredentials, "Invalid credentials.")
	}
	if err != nil {
		return models.TokenResponse{}, models.InternalError("Failed to fetch user.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.TokenResponse{}, models.NewAPIError(http.StatusUnauthorized, models.CodeInvalidCredentials, "Invalid credentials.")
	}

	token, err := s.Tokens.NewJWT(user.ID, user.Username)
	if err != nil {
		return models.TokenResponse{}, models.NewAPIError(http.StatusInternalServerError, models.CodeAuthFailed, "Failed to generate token.")
	}

	return models.TokenResponse{
		Token:     token,
		ExpiresIn: fmt.Sprintf("%dh", int(s.Tokens.TTL().Hours())),
	}, nil
}

// ValidateToken verifies a posted token and returns the identity it carries.
func (s *UserService) ValidateToken(token string) (models.User, error) {
	if token == "" {
		return models.User{}, models.NewAPIError(http.StatusBadRequest, models.CodeInvalidParam, "Token is required.")
	}

	userID, username, err := s.Tokens.Parse(token)
	if err != nil {
		return models.User{}, models.NewAPIError(http.StatusUnauthorized, models.CodeInvalidToken, "Invalid token.")
	}

	return models.User{ID: userID, Username: username}, nil
}
