package validator

import (
	"strings"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordPayload struct {
	Password string `validate:"required,password_strength"`
}

func TestRequestValidator_PasswordStrength(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid", password: "Valid123", valid: true},
		{name: "too short", password: "short1A", valid: false},
		{name: "no uppercase", password: "alllowercase1", valid: false},
		{name: "no lowercase", password: "ALLUPPER1", valid: false},
		{name: "no digit", password: "NoDigitsHere", valid: false},
		{name: "empty", password: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&passwordPayload{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, 400, appErr.HTTPCode())
			}
		})
	}
}

type postPayload struct {
	Title   string `validate:"required,min=1,max=150"`
	Content string `validate:"required,min=1"`
}

// The title limit must match the stored column width so an oversized title
// is rejected here instead of failing inside the store.
func TestRequestValidator_TitleLength(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	tests := []struct {
		name  string
		title string
		valid bool
	}{
		{name: "single char", title: "T", valid: true},
		{name: "at limit", title: strings.Repeat("a", 150), valid: true},
		{name: "just over limit", title: strings.Repeat("a", 151), valid: false},
		{name: "well over limit", title: strings.Repeat("a", 180), valid: false},
		{name: "empty", title: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&postPayload{Title: tt.title, Content: "body"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

type registerPayload struct {
	Username string `validate:"required,min=4,max=80"`
	Email    string `validate:"required,email,max=120"`
	Password string `validate:"required,password_strength"`
}

func TestRequestValidator_RegisterRules(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	valid := registerPayload{Username: "alice", Email: "alice@example.com", Password: "Valid123"}
	assert.NoError(t, v.Validate(&valid))

	shortName := valid
	shortName.Username = "abc"
	assert.Error(t, v.Validate(&shortName))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, v.Validate(&badEmail))
}
