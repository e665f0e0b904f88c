package validators

import (
	"context"
	"regexp"

	"github.com/voddeck/voddeck/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email address: presence and format.
	FieldEmail = "email"

	// FieldUsername targets the display name: presence.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password: presence and minimum length.
	FieldPassword = "password"

	// FieldLoginCredentials enforces only the presence of email and password.
	// Format and length rules are skipped so accounts created under earlier
	// policies can still log in.
	FieldLoginCredentials = "login credentials"
)

// minPasswordLength is the minimum accepted password length at signup.
const minPasswordLength = 6

// emailPattern accepts anything of the shape local@domain.tld with no
// whitespace or extra @ signs. Deliberately loose: the address is only a
// login identifier here, not a deliverability guarantee.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CredentialsValidator validates user credentials for the signup and login
// flows. It is stateless and safe for concurrent use.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks a [models.User] against the credential rules.
//
// With no field names, the full signup rule set applies: all fields present,
// email well-formed, password long enough. With field names, only the rules
// scoped to those fields apply.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	// Full signup rule set. Presence of every field is checked before any
	// format or length rule so a request missing one field always reports
	// the same error regardless of what else is wrong.
	if len(fields) == 0 {
		if user.Email == "" || user.Password == "" || user.Username == "" {
			return ErrFieldsRequired
		}
		if !emailPattern.MatchString(user.Email) {
			return ErrInvalidEmailFormat
		}
		if len(user.Password) < minPasswordLength {
			return ErrPasswordTooShort
		}
		return nil
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if user.Email == "" {
				return ErrFieldsRequired
			}
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmailFormat
			}
		case FieldUsername:
			if user.Username == "" {
				return ErrFieldsRequired
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrFieldsRequired
			}
			if len(user.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldLoginCredentials:
			if user.Email == "" || user.Password == "" {
				return ErrFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
