// Package form holds the pure validation rules used to gate screen
// submissions, and the per-screen FormState they run against.
package form

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/messages"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 8

// DateLayout is the on-screen birthdate format (dd/mm/yyyy).
const DateLayout = "02/01/2006"

var validate = validator.New()

// Result is the outcome of one validator.
// Reason is empty when Valid is true.
type Result struct {
	Valid  bool
	Reason string
}

var passed = Result{Valid: true}

func fail(id string, data map[string]any) Result {
	return Result{Reason: messages.T(id, data)}
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ValidateEmail accepts a blank value, so the field does not flash an error
// before the user types, or a local@domain address whose domain has a dot.
func ValidateEmail(value string) Result {
	if blank(value) {
		return passed
	}
	value = strings.TrimSpace(value)
	if err := validate.Var(value, "email"); err != nil {
		return fail(messages.EmailInvalid, nil)
	}
	domain := value[strings.LastIndex(value, "@")+1:]
	if !strings.Contains(strings.Trim(domain, "."), ".") {
		return fail(messages.EmailInvalid, nil)
	}
	return passed
}

// ValidatePassword accepts a blank value or one of at least
// MinPasswordLength characters.
func ValidatePassword(value string) Result {
	if blank(value) {
		return passed
	}
	if err := validate.Var(value, fmt.Sprintf("min=%d", MinPasswordLength)); err != nil {
		return fail(messages.PasswordTooShort, map[string]any{"Min": MinPasswordLength})
	}
	return passed
}

// ValidateConfirmation accepts a blank confirmation or one equal to password.
func ValidateConfirmation(password, confirmation string) Result {
	if blank(confirmation) || confirmation == password {
		return passed
	}
	return fail(messages.ConfirmationMismatch, nil)
}

// ValidateRequired rejects blank values. field names the field in the reason.
func ValidateRequired(field, value string) Result {
	if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return fail(messages.FieldRequired, map[string]any{"Field": field})
	}
	return passed
}

// ValidateChoice accepts a blank value or one of options.
func ValidateChoice(value string, options []string) Result {
	if value == "" || slices.Contains(options, value) {
		return passed
	}
	return fail(messages.ChoiceInvalid, map[string]any{"Options": strings.Join(options, ", ")})
}

// ValidateDate accepts a blank value or a DateLayout date that is not in
// the future.
func ValidateDate(value string) Result {
	if blank(value) {
		return passed
	}
	t, err := ParseDate(value)
	if err != nil || t.After(time.Now()) {
		return fail(messages.DateInvalid, map[string]any{"Layout": "dd/mm/yyyy"})
	}
	return passed
}

// All returns the conjunction of results: valid only if each is, with the
// first failing reason.
func All(results ...Result) Result {
	for _, r := range results {
		if !r.Valid {
			return r
		}
	}
	return passed
}
