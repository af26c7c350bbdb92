package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsUppercase(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsLowercase(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsNumber(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", notBlankFL)
		_ = v.RegisterValidation("userrole", userRoleFL)
		_ = v.RegisterValidation("rating", ratingFL)
	}
}

func containsUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func containsLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func containsNumber(s string) bool {
	return strings.IndexFunc(s, unicode.IsNumber) >= 0
}

// notBlankFL rejects strings made only of whitespace.
func notBlankFL(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func userRoleFL(fl validator.FieldLevel) bool {
	return entity.UserRole(fl.Field().String()).IsValid()
}

func ratingFL(fl validator.FieldLevel) bool {
	return entity.IsValidRating(int(fl.Field().Int()))
}
