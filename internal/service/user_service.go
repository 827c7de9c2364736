// Package service contains the application's domain logic. Services validate
// input, enforce authorization and status lifecycles, and return typed
// AppError values; the HTTP layer only translates those into responses.
package service

import (
	"context"
	"strings"

	"collabhub/internal/cache"
	"collabhub/internal/models"
	"collabhub/internal/repository"
	"collabhub/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	UserType    models.UserType
	Bio         string
	Website     string
	SocialMedia string
}

type UpdateProfileInput struct {
	UserID      uint
	Name        string
	Bio         string
	Website     string
	SocialMedia string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new brand or influencer account. The account side is
// fixed here and never changes afterwards.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var violations []string
	if err := validation.ValidateName(in.Name); err != nil {
		violations = append(violations, err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		violations = append(violations, err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		violations = append(violations, err.Error())
	}
	if !in.UserType.Valid() {
		violations = append(violations, "user_type must be either brand or influencer")
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:        validation.Sanitize(in.Name),
		Email:       email,
		Password:    string(hashed),
		UserType:    in.UserType,
		Bio:         validation.Sanitize(in.Bio),
		Website:     validation.Sanitize(in.Website),
		SocialMedia: validation.Sanitize(in.SocialMedia),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns the account. The error is the
// same whether the email is unknown or the password wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

// GetProfile returns a user's public profile, cache-aside.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user *models.User
	err := cache.Aside(ctx, cache.UserKey(userID), &user, cache.UserTTL, func() error {
		var fetchErr error
		user, fetchErr = s.userRepo.GetByID(ctx, userID)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates the caller's own profile fields. Empty fields are
// left unchanged; user_type and email are immutable.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = validation.Sanitize(in.Name)
	}
	if in.Bio != "" {
		user.Bio = validation.Sanitize(in.Bio)
	}
	if in.Website != "" {
		user.Website = validation.Sanitize(in.Website)
	}
	if in.SocialMedia != "" {
		user.SocialMedia = validation.Sanitize(in.SocialMedia)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, user.ID)
	return user, nil
}
