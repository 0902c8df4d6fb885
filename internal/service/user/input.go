package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/questclock-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name     *string
	Timezone *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Timezone == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if utf8.RuneCountInString(name) > MaxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) trimmedName() *string {
	if i.Name == nil {
		return nil
	}
	name := strings.TrimSpace(*i.Name)
	return &name
}
