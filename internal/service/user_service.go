package service

import (
	"errors"
	"regexp"

	"github.com/aebalz/mindwell-backend/internal/apperr"
	"github.com/aebalz/mindwell-backend/internal/auth"
	"github.com/aebalz/mindwell-backend/internal/model"
	"github.com/aebalz/mindwell-backend/internal/repository"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UpdateProfileParams carries the fields of a profile update request.
type UpdateProfileParams struct {
	ID              uint
	CurrentPassword string
	FirstName       string
	LastName        string
	Email           string
	NewPassword     string
}

// UserServiceInterface defines the interface for account operations.
type UserServiceInterface interface {
	Register(firstName, lastName, email, password string) (*model.User, error)
	Login(email, password string) (*model.User, error)
	UpdateProfile(params UpdateProfileParams) (*model.User, error)
	DeleteAccount(id uint) error
}

// UserService implements UserServiceInterface.
type UserService struct {
	UserRepo repository.UserRepositoryInterface
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{UserRepo: userRepo}
}

// Register creates a new account. The email must be unused (exact match) and
// the password must satisfy the strength policy; only its bcrypt hash is
// stored.
func (s *UserService) Register(firstName, lastName, email, password string) (*model.User, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, apperr.Validation("All fields are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("Invalid email format")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if _, err := s.UserRepo.GetUserByEmail(email); err == nil {
		return nil, apperr.Conflict("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("Registration failed. Please try again.", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("Registration failed. Please try again.", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	if _, err := s.UserRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("Registration failed. Please try again.", err)
	}
	return user, nil
}

// Login verifies email and password. Unknown emails and wrong passwords are
// indistinguishable from the caller's point of view.
func (s *UserService) Login(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email and password are required")
	}

	user, err := s.UserRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("Invalid email or password")
		}
		return nil, apperr.Internal("Login failed. Please try again.", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.Auth("Invalid email or password")
	}
	return user, nil
}

// UpdateProfile changes name, email and optionally the password after
// verifying the current password against the stored hash.
func (s *UserService) UpdateProfile(params UpdateProfileParams) (*model.User, error) {
	if params.ID == 0 || params.CurrentPassword == "" || params.FirstName == "" ||
		params.LastName == "" || params.Email == "" {
		return nil, apperr.Validation("All fields are required")
	}

	user, err := s.UserRepo.GetUserByID(params.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("An error occurred while updating profile", err)
	}

	if !auth.CheckPassword(user.PasswordHash, params.CurrentPassword) {
		return nil, apperr.Auth("Current password is incorrect")
	}

	if user.Email != params.Email {
		if _, err := s.UserRepo.GetUserByEmail(params.Email); err == nil {
			return nil, apperr.Conflict("Email already in use")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Internal("An error occurred while updating profile", err)
		}
	}

	user.FirstName = params.FirstName
	user.LastName = params.LastName
	user.Email = params.Email

	if params.NewPassword != "" {
		if err := auth.ValidatePassword(params.NewPassword); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		hash, err := auth.HashPassword(params.NewPassword)
		if err != nil {
			return nil, apperr.Internal("An error occurred while updating profile", err)
		}
		user.PasswordHash = hash
	}

	if _, err := s.UserRepo.UpdateUser(user); err != nil {
		return nil, apperr.Internal("An error occurred while updating profile", err)
	}
	return user, nil
}

// DeleteAccount removes the user and, through the repository transaction, all
// owned check-ins, journal entries, metrics and feedback.
func (s *UserService) DeleteAccount(id uint) error {
	if err := s.UserRepo.DeleteUser(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal("Failed to delete account", err)
	}
	return nil
}
