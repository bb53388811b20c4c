package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/atluixx/lynkt/internal/errors"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		shouldErr bool
		errMsg    string
	}{
		{name: "valid password", password: "Str0ng!Pass"},
		{name: "empty is left to Required", password: ""},
		{name: "too short", password: "Sh0rt!", shouldErr: true, errMsg: "password must be at least 8 characters"},
		{name: "missing uppercase", password: "str0ng!pass", shouldErr: true, errMsg: "uppercase letter"},
		{name: "missing lowercase", password: "STR0NG!PASS", shouldErr: true, errMsg: "lowercase letter"},
		{name: "missing number", password: "Strong!Pass", shouldErr: true, errMsg: "one number"},
		{name: "missing special", password: "Str0ngPass1", shouldErr: true, errMsg: "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StrongPassword.Validate(tt.password)
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("non string value", func(t *testing.T) {
		assert.Error(t, StrongPassword.Validate(42))
	})

	t.Run("pointer values", func(t *testing.T) {
		weak, strong := "weak", "Str0ng!Pass"
		var missing *string

		assert.Error(t, StrongPassword.Validate(&weak))
		assert.NoError(t, StrongPassword.Validate(&strong))
		assert.NoError(t, StrongPassword.Validate(missing))
	})
}

func TestEmail(t *testing.T) {
	assert.NoError(t, validation.Validate("alice@x.com", Email))
	assert.NoError(t, validation.Validate("first.last+tag@example.co.uk", Email))
	assert.Error(t, validation.Validate("alice@", Email))
	assert.Error(t, validation.Validate("not-an-email", Email))
}

func TestSlug(t *testing.T) {
	assert.NoError(t, validation.Validate("alice", Slug))
	assert.NoError(t, validation.Validate("alice_smith-2", Slug))
	assert.Error(t, validation.Validate("Alice", Slug))
	assert.Error(t, validation.Validate("alice smith", Slug))
	assert.Error(t, validation.Validate("alice/links", Slug))
}

func TestHTTPURL(t *testing.T) {
	assert.NoError(t, validation.Validate("https://github.com/alice", HTTPURL))
	assert.NoError(t, validation.Validate("http://example.com", HTTPURL))
	assert.Error(t, validation.Validate("javascript:alert(1)", HTTPURL))
	assert.Error(t, validation.Validate("ftp://example.com", HTTPURL))
	assert.Error(t, validation.Validate("https://", HTTPURL))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NoWhitespace))
	assert.Error(t, validation.Validate(" value", NoWhitespace))
}

func TestWrapValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil))

	err := WrapValidationError(validation.NewError("code", "name: too short"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "name: too short")
}
