package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// Account input limits.
const (
	MinPasswordLength = 8
	// MaxPasswordLength is in bytes; bcrypt ignores anything longer.
	MaxPasswordLength = 72
	MaxNameLength     = 100
	MaxEmailLength    = 254
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	PasswordConfirm string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs domain.ValidationError
	validateEmail(&errs, i.Email)
	validateName(&errs, i.Name)
	validatePassword(&errs, i.Password, i.PasswordConfirm)
	return errs.OrNil()
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs domain.ValidationError
	if i.Email == "" {
		errs.Add("email", "required")
	}
	if i.Password == "" {
		errs.Add("password", "required")
	}
	return errs.OrNil()
}

// UpdateAccountInput holds the editable account fields.
type UpdateAccountInput struct {
	Name  string
	Email string
}

// Validate validates the account update input.
func (i UpdateAccountInput) Validate() error {
	var errs domain.ValidationError
	validateEmail(&errs, i.Email)
	validateName(&errs, i.Name)
	return errs.OrNil()
}

// ForgotPasswordInput starts a password reset.
type ForgotPasswordInput struct {
	Email string
}

// Validate validates the forgot password input.
func (i ForgotPasswordInput) Validate() error {
	var errs domain.ValidationError
	validateEmail(&errs, i.Email)
	return errs.OrNil()
}

// ResetPasswordInput completes a password reset.
type ResetPasswordInput struct {
	Token           string
	Password        string
	PasswordConfirm string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	var errs domain.ValidationError
	if i.Token == "" {
		errs.Add("token", "required")
	} else if len(i.Token) > 128 {
		errs.Add("token", "too long")
	}
	validatePassword(&errs, i.Password, i.PasswordConfirm)
	return errs.OrNil()
}

func validateEmail(errs *domain.ValidationError, email string) {
	switch {
	case email == "":
		errs.Add("email", "required")
	case len(email) > MaxEmailLength:
		errs.Add("email", "too long")
	default:
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs.Add("email", "invalid format")
		}
	}
}

func validateName(errs *domain.ValidationError, name string) {
	if name == "" {
		errs.Add("name", "required")
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		errs.Add("name", "max 100 characters")
	}
}

func validatePassword(errs *domain.ValidationError, password, confirm string) {
	switch {
	case password == "":
		errs.Add("password", "required")
	case len(password) < MinPasswordLength:
		errs.Add("password", "min 8 characters")
	case len(password) > MaxPasswordLength:
		errs.Add("password", "max 72 bytes")
	}
	if confirm != password {
		errs.Add("password_confirm", "passwords do not match")
	}
}
