package console

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Mode is the form currently shown.
type Mode int

const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
	ModeInvite
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModeInvite:
		return "invite"
	default:
		return "none"
	}
}

// EmailErrorMessage is shown next to an invalid invite email.
const EmailErrorMessage = "Please enter a valid email address"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Form holds the draft values of the open form.
type Form struct {
	Title       string `json:"league_title"       validate:"required"`
	Description string `json:"league_description" validate:"required"`
	Members     string `json:"members"            validate:"required"`
	Email       string `json:"email"              validate:"required,invite_email"`
}

// formRules lists the fields each mode requires.
var formRules = map[Mode][]string{
	ModeCreate: {"Title", "Description"},
	ModeEdit:   {"Title", "Description", "Members"},
	ModeInvite: {"Email"},
}

// fieldNames maps struct fields to the names shown to the user.
var fieldNames = map[string]string{
	"Title":       "league_title",
	"Description": "league_description",
	"Members":     "members",
	"Email":       "email",
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("invite_email", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	return v
}

// validateForm checks form against the rules of mode.
func validateForm(v *validator.Validate, mode Mode, form Form) error {
	fields, ok := formRules[mode]
	if !ok {
		return ErrNoActiveForm
	}

	err := v.StructPartial(form, fields...)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	verr := &ValidationError{Mode: mode}
	for _, fe := range validationErrs {
		if fe.Tag() == "invite_email" {
			verr.InvalidEmail = true
		}
		verr.Fields = append(verr.Fields, fieldNames[fe.StructField()])
	}
	return verr
}
