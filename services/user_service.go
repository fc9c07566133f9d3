package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"hotel-booking/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type CreateUserInput struct {
	Email    string
	Password string
}

// UpdateUserInput carries a partial update; a provided password is rehashed.
type UpdateUserInput struct {
	Email    *string
	Password *string
	IsActive *bool
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return validationErrorf("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return validationErrorf("email", "invalid email address")
	}
	return nil
}

// Create stores a new customer account with a bcrypt-hashed password and its
// companion profile, both in one transaction.
func (s *UserService) Create(input CreateUserInput) (models.User, error) {
	return s.create(input, false)
}

// CreateSuperuser creates an account with the staff and superuser flags set.
func (s *UserService) CreateSuperuser(input CreateUserInput) (models.User, error) {
	return s.create(input, true)
}

func (s *UserService) create(input CreateUserInput, superuser bool) (models.User, error) {
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}
	if input.Password == "" {
		return models.User{}, validationErrorf("password", "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		Email:       email,
		Password:    string(hash),
		IsStaff:     superuser,
		IsSuperuser: superuser,
		IsActive:    true,
		DateJoined:  now,
		LastLogin:   now,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return models.User{}, &DuplicateError{
				Field:   "email",
				Message: fmt.Sprintf("email %q already exists", email),
			}
		}
		return models.User{}, err
	}
	return user, nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (s *UserService) CheckPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, notFoundErr("user", id)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetByEmail is used by startup seeding to keep it idempotent.
func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, input UpdateUserInput) (models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return models.User{}, err
	}

	updates := map[string]interface{}{}
	if input.Email != nil {
		if email := normalizeEmail(*input.Email); email != user.Email {
			if err := validateEmail(email); err != nil {
				return models.User{}, err
			}
			user.Email = email
			updates["email"] = email
		}
	}
	if input.Password != nil {
		if *input.Password == "" {
			return models.User{}, validationErrorf("password", "password is required")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hash)
		updates["password"] = string(hash)
	}
	if input.IsActive != nil && *input.IsActive != user.IsActive {
		user.IsActive = *input.IsActive
		updates["is_active"] = *input.IsActive
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return models.User{}, &DuplicateError{
				Field:   "email",
				Message: fmt.Sprintf("email %q already exists", user.Email),
			}
		}
		return models.User{}, err
	}
	return user, nil
}

// Delete removes the user; the database cascades over the profile and any
// bookings owned by the account.
func (s *UserService) Delete(id uint) error {
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErr("user", id)
	}
	return nil
}
