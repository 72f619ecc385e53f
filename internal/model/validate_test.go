package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateAcceptsFullPayload checks that a payload with all fields set
// passes the schema.
func TestValidateAcceptsFullPayload(t *testing.T) {
	favorite := true
	input := ContactInput{
		Name:     "Erika Mustermann",
		Email:    "erika@example.com",
		Phone:    "498154711",
		Favorite: &favorite,
	}
	assert.NoError(t, input.Validate())
}

// TestValidateAcceptsMissingFavorite checks that the favorite flag is
// optional and defaults to false.
func TestValidateAcceptsMissingFavorite(t *testing.T) {
	input := ContactInput{
		Name:  "Erika Mustermann",
		Email: "erika@example.com",
		Phone: "498154711",
	}
	assert.NoError(t, input.Validate())
	assert.False(t, input.IsFavorite())
}

// TestValidateAcceptsUnresolvableDomain checks that the email rule is purely
// syntactic. A well-formed address must pass even if its domain does not
// exist, and validation must not depend on name resolution.
func TestValidateAcceptsUnresolvableDomain(t *testing.T) {
	for _, email := range []string{"a@b.com", "ab@cd.com", "erika@no-such-domain-4711.example"} {
		input := ContactInput{Name: "A", Email: email, Phone: "123"}
		assert.NoError(t, input.Validate(), email)
	}
}

// TestValidateReportsFirstViolation checks that a payload violating several
// rules at once is reported with the message of the first field in the
// schema order.
func TestValidateReportsFirstViolation(t *testing.T) {
	err := ContactInput{}.Validate()
	assert.EqualError(t, err, "Set name for contact")
}

// TestValidateRules runs one payload per rule through the schema and checks
// the reported message.
func TestValidateRules(t *testing.T) {
	testCases := []struct {
		description string
		input       ContactInput
		message     string
	}{
		{
			description: "missing name",
			input:       ContactInput{Email: "erika@example.com", Phone: "123"},
			message:     "Set name for contact",
		},
		{
			description: "missing email",
			input:       ContactInput{Name: "Erika", Phone: "123"},
			message:     "email is required",
		},
		{
			description: "malformed email",
			input:       ContactInput{Name: "Erika", Email: "not-an-email", Phone: "123"},
			message:     "email must be a valid email address",
		},
		{
			description: "email without domain dot",
			input:       ContactInput{Name: "Erika", Email: "erika@localhost", Phone: "123"},
			message:     "email must be a valid email address",
		},
		{
			description: "missing phone",
			input:       ContactInput{Name: "Erika", Email: "erika@example.com"},
			message:     "phone is required",
		},
		{
			description: "phone with letters",
			input:       ContactInput{Name: "Erika", Email: "erika@example.com", Phone: "12a3"},
			message:     "phone must consist of digits only",
		},
		{
			description: "phone with spaces",
			input:       ContactInput{Name: "Erika", Email: "erika@example.com", Phone: "123 456"},
			message:     "phone must consist of digits only",
		},
		{
			description: "phone with plus prefix",
			input:       ContactInput{Name: "Erika", Email: "erika@example.com", Phone: "+420123"},
			message:     "phone must consist of digits only",
		},
	}
	for _, tc := range testCases {
		err := tc.input.Validate()
		assert.EqualError(t, err, tc.message, tc.description)
	}
}

// TestIsFavorite checks the resolution of the optional favorite flag.
func TestIsFavorite(t *testing.T) {
	favorite := true
	notFavorite := false
	assert.False(t, ContactInput{}.IsFavorite())
	assert.False(t, ContactInput{Favorite: &notFavorite}.IsFavorite())
	assert.True(t, ContactInput{Favorite: &favorite}.IsFavorite())
}
