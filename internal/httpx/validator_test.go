package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_ISBN(t *testing.T) {
	type payload struct {
		ISBN string `validate:"required,isbn"`
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{name: "13 digits", isbn: "9780123456786", valid: true},
		{name: "10 digits", isbn: "0123456789", valid: true},
		{name: "10 digits with X check digit", isbn: "012345678X", valid: true},
		{name: "hyphenated", isbn: "978-0-12-345678-6", valid: true},
		{name: "too short", isbn: "12345", valid: false},
		{name: "letters", isbn: "not-an-isbn", valid: false},
		{name: "empty", isbn: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(payload{ISBN: tt.isbn})
			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidateStruct_LoanStatus(t *testing.T) {
	type payload struct {
		Status string `validate:"required,loan_status"`
	}

	for _, s := range []string{"m", "o", "a", "r"} {
		assert.Empty(t, ValidateStruct(payload{Status: s}), "status %q should pass", s)
	}
	assert.NotEmpty(t, ValidateStruct(payload{Status: "z"}))
	assert.NotEmpty(t, ValidateStruct(payload{Status: "aa"}))
}

func TestValidateStruct_FieldNames(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Username string `validate:"required,min=3"`
	}

	details := ValidateStruct(payload{Email: "bad", Username: "x"})
	assert.Len(t, details, 2)
	assert.Equal(t, "email", details[0].Field)
	assert.Contains(t, details[0].Message, "valid email")
	assert.Equal(t, "username", details[1].Field)
	assert.Contains(t, details[1].Message, "at least 3")
}
