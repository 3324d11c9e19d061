package services

import (
	"context"
	"fmt"

	"qa-forum-backend/internal/apperrors"
	"qa-forum-backend/internal/models"
	"qa-forum-backend/internal/repository"
	"qa-forum-backend/internal/validation"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns a user's own profile. The acting identity from the
// verified session must match the requested user id.
func (s *UserService) GetProfile(ctx context.Context, actingUserID, userID string) (*models.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid userId in params.")
	}
	if userID != actingUserID {
		return nil, apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", userID))
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if user == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("User doesn't exist by %s.", userID))
	}
	return user, nil
}

// ProfileInput carries a partial profile update. Each field is
// tri-state: nil leaves it alone, blank is rejected, non-blank replaces.
type ProfileInput struct {
	Fname *string
	Lname *string
	Email *string
	Phone *string
}

func (in ProfileInput) empty() bool {
	return in.Fname == nil && in.Lname == nil && in.Email == nil && in.Phone == nil
}

func (s *UserService) UpdateProfile(ctx context.Context, actingUserID, userID string, input ProfileInput) (*models.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid userId in params.")
	}
	if userID != actingUserID {
		return nil, apperrors.Unauthorized(fmt.Sprintf("Unauthorized access! %s is not a logged in user.", userID))
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if user == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("User doesn't exist by %s.", userID))
	}

	if input.empty() {
		return nil, apperrors.Validation("Invalid request body! Please provide some user's information to update.")
	}
	if !validation.ValidString(input.Fname) {
		return nil, apperrors.Validation("Invalid request parameters, cannot update first name to empty string.")
	}
	if !validation.ValidString(input.Lname) {
		return nil, apperrors.Validation("Invalid request parameters, cannot update last name to empty string.")
	}
	if !validation.ValidString(input.Email) {
		return nil, apperrors.Validation("Invalid request parameters, cannot update email id to empty string.")
	}
	if input.Email != nil {
		if !validation.IsValidEmail(*input.Email) {
			return nil, apperrors.Validation(fmt.Sprintf("%s is an invalid email id. Please enter a valid email id to update.", *input.Email))
		}
		taken, err := s.users.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, apperrors.Internal(err.Error())
		}
		if taken != nil {
			return nil, apperrors.Conflict(fmt.Sprintf("%s is already registered. Please try another email id.", *input.Email))
		}
	}
	if !validation.ValidString(input.Phone) {
		return nil, apperrors.Validation("Invalid request parameters, cannot update phone number to empty string.")
	}
	if input.Phone != nil {
		if !validation.IsValidPhone(*input.Phone) {
			return nil, apperrors.Validation(fmt.Sprintf("%s is not a valid phone number. Please enter a valid number to update.", *input.Phone))
		}
		taken, err := s.users.FindByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, apperrors.Internal(err.Error())
		}
		if taken != nil {
			return nil, apperrors.Conflict(fmt.Sprintf("%s is already registered. Please try another number.", *input.Phone))
		}
	}

	updated, err := s.users.UpdateProfile(ctx, id, repository.ProfileUpdate{
		Fname: input.Fname,
		Lname: input.Lname,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	if updated == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("User doesn't exist by %s.", userID))
	}
	return updated, nil
}
