package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@mail.example.org", true},
		{"", true},
		{"   ", true},
		{"not-an-email", false},
		{"user@localhost", false},
		{"user@", false},
		{"@example.com", false},
		{"a b@example.com", false},
	}
	for _, c := range cases {
		got := ValidateEmail(c.in)
		assert.Equal(t, c.valid, got.Valid, "%q", c.in)
		if c.valid {
			assert.Empty(t, got.Reason, "%q", c.in)
		} else {
			assert.Equal(t, "Enter a valid email address", got.Reason, "%q", c.in)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("short").Valid)
	assert.Contains(t, ValidatePassword("short").Reason, "8")
	assert.True(t, ValidatePassword("longenough1").Valid)
	assert.True(t, ValidatePassword("exactly8").Valid)
	assert.True(t, ValidatePassword("").Valid)
	assert.True(t, ValidatePassword("   ").Valid)
	assert.True(t, ValidatePassword("contraseña").Valid)
}

func TestValidateConfirmation(t *testing.T) {
	assert.True(t, ValidateConfirmation("abc12345", "abc12345").Valid)
	assert.False(t, ValidateConfirmation("abc12345", "xyz").Valid)
	assert.True(t, ValidateConfirmation("abc12345", "").Valid)
	assert.True(t, ValidateConfirmation("abc12345", "  ").Valid)
}

func TestValidateRequired(t *testing.T) {
	assert.True(t, ValidateRequired("Name", "Jorge").Valid)

	got := ValidateRequired("Name", "  ")
	assert.False(t, got.Valid)
	assert.Equal(t, "Name is required", got.Reason)
}

func TestValidateChoice(t *testing.T) {
	opts := []string{"Female", "Male", "Other"}
	assert.True(t, ValidateChoice("", opts).Valid)
	assert.True(t, ValidateChoice("Other", opts).Valid)
	assert.False(t, ValidateChoice("Robot", opts).Valid)
}

func TestValidateDate(t *testing.T) {
	assert.True(t, ValidateDate("").Valid)
	assert.True(t, ValidateDate("14/04/1998").Valid)
	assert.False(t, ValidateDate("1998-04-14").Valid)
	assert.False(t, ValidateDate("31/02/2000").Valid)
	assert.False(t, ValidateDate(FormatDate(time.Now().AddDate(1, 0, 0))).Valid)
}

func TestValidateDateAcceptsToday(t *testing.T) {
	assert.True(t, ValidateDate(FormatDate(time.Now())).Valid)
}

func TestAll(t *testing.T) {
	assert.True(t, All().Valid)
	got := All(ValidatePassword("longenough"), ValidateConfirmation("a", "b"), ValidateEmail("x"))
	assert.False(t, got.Valid)
	assert.Equal(t, "Passwords do not match", got.Reason)
}
