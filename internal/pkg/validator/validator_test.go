package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("maria.gonzalez@example.com"))
	assert.True(t, IsValidEmail("a+b@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, parsed.Year())

	_, ok = IsValidDate("15/06/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidNationalID(t *testing.T) {
	assert.True(t, IsValidNationalID("1234567"))
	assert.False(t, IsValidNationalID("12345"), "too short")
	assert.False(t, IsValidNationalID("123456789012345678901"), "too long")
	assert.False(t, IsValidNationalID("12345a7"), "non-numeric")
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Invalid email address"},
	}

	assert.Equal(t, "name: Name is required; email: Invalid email address", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "Name is required", m["name"])
	assert.Equal(t, "Invalid email address", m["email"])
}
