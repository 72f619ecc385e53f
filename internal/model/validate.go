package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContactInput is the payload accepted by the create and update endpoints.
// Favorite is a pointer so that an absent field can be told apart from an
// explicit false.
type ContactInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite *bool  `json:"favorite"`
}

// digitsOnly matches phone numbers consisting of at least one digit.
var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// dottedDomain requires the domain part of an address to carry at least one
// dot-delimited label, which the plain format check does not enforce.
var dottedDomain = regexp.MustCompile(`@[^@\s]+\.[^@\s]+$`)

// contactRules is the validation schema for contact payloads. The entries are
// kept in a slice because the first violating field decides which message is
// reported; a new field only needs a new entry here.
var contactRules = []struct {
	field string
	check func(in ContactInput) error
}{
	{"name", func(in ContactInput) error {
		return validation.Validate(in.Name,
			validation.Required.Error("Set name for contact"))
	}},
	{"email", func(in ContactInput) error {
		// is.EmailFormat checks syntax only; is.Email would resolve the
		// domain over DNS, and the schema must stay free of network I/O.
		return validation.Validate(in.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("email must be a valid email address"),
			validation.Match(dottedDomain).Error("email must be a valid email address"))
	}},
	{"phone", func(in ContactInput) error {
		return validation.Validate(in.Phone,
			validation.Required.Error("phone is required"),
			validation.Match(digitsOnly).Error("phone must consist of digits only"))
	}},
}

// Validate checks the payload against the contact schema and returns the
// first violation, or nil if the payload is acceptable.
func (in ContactInput) Validate() error {
	for _, rule := range contactRules {
		if err := rule.check(in); err != nil {
			return err
		}
	}
	return nil
}

// IsFavorite resolves the optional favorite flag to its stored value. An
// absent flag defaults to false.
func (in ContactInput) IsFavorite() bool {
	return in.Favorite != nil && *in.Favorite
}
