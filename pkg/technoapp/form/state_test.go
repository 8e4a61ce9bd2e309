package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupState() *State {
	return NewState(
		Field{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
		Field{Name: "password", Label: "Password", Kind: KindPassword, Required: true},
		Field{Name: "confirm", Label: "Confirm password", Kind: KindConfirmation, Required: true, Matches: "password"},
	)
}

func TestStateGatesOnEveryField(t *testing.T) {
	s := signupState()
	assert.False(t, s.Valid())
	assert.Equal(t, "email", s.FirstInvalid())

	require.NoError(t, s.Set("email", "user@example.com"))
	require.NoError(t, s.Set("password", "abc12345"))
	assert.Equal(t, "confirm", s.FirstInvalid())

	require.NoError(t, s.Set("confirm", "xyz"))
	assert.False(t, s.Valid())
	assert.Equal(t, "Passwords do not match", s.Check("confirm").Reason)

	require.NoError(t, s.Set("confirm", "abc12345"))
	assert.True(t, s.Valid())
	for name, r := range s.Results() {
		assert.True(t, r.Valid, name)
	}
}

func TestInlineIgnoresBlankRequiredFields(t *testing.T) {
	s := signupState()
	assert.True(t, s.Inline("email").Valid)
	assert.False(t, s.Check("email").Valid)
	assert.Equal(t, "Email is required", s.Check("email").Reason)
}

func TestSetUnknownField(t *testing.T) {
	s := signupState()
	assert.Error(t, s.Set("phone", "123"))
	assert.False(t, s.Check("phone").Valid)
	assert.True(t, s.Inline("phone").Valid)
}

func TestDisplayMasksPasswords(t *testing.T) {
	s := signupState()
	require.NoError(t, s.Set("email", "a@b.co"))
	require.NoError(t, s.Set("password", "secret99"))

	assert.Equal(t, "a@b.co", s.Display("email"))
	assert.Equal(t, "••••••••", s.Display("password"))
	assert.Equal(t, "secret99", s.Value("password"))
	assert.Equal(t, "", s.Display("nope"))
}

func TestStatesAreDistinct(t *testing.T) {
	assert.NotEqual(t, signupState().ID, signupState().ID)
}
