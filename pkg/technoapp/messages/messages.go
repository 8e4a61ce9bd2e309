// Package messages is the catalog of user-facing strings: button labels,
// field labels and validation reasons. Strings live in an embedded TOML
// file loaded through go-i18n.
package messages

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message identifiers.
const (
	EmailInvalid         = "EmailInvalid"
	PasswordTooShort     = "PasswordTooShort"
	ConfirmationMismatch = "ConfirmationMismatch"
	FieldRequired        = "FieldRequired"
	ChoiceInvalid        = "ChoiceInvalid"
	DateInvalid          = "DateInvalid"

	ButtonContinue      = "ButtonContinue"
	ButtonBack          = "ButtonBack"
	ButtonSignIn        = "ButtonSignIn"
	ButtonCreateAccount = "ButtonCreateAccount"
	ButtonFinish        = "ButtonFinish"

	SearchPlaceholder = "SearchPlaceholder"
	SearchSuggestion  = "SearchSuggestion"
	FeaturedHeading   = "FeaturedHeading"
	OffersHeading     = "OffersHeading"
	NewsHeading       = "NewsHeading"
	CreditsHeading    = "CreditsHeading"
	FinishMessage     = "FinishMessage"

	FieldEmail        = "FieldEmail"
	FieldPassword     = "FieldPassword"
	FieldConfirmation = "FieldConfirmation"
	FieldName         = "FieldName"
	FieldSurname      = "FieldSurname"
	FieldBirthdate    = "FieldBirthdate"
	FieldGender       = "FieldGender"
)

//go:embed active.en.toml
var englishTOML []byte

// Catalog resolves message identifiers to text.
type Catalog struct {
	localizer *i18n.Localizer
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.ParseMessageFileBytes(englishTOML, "active.en.toml"); err != nil {
		return nil, fmt.Errorf("messages: parse catalog: %w", err)
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
	}, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog. The catalog is embedded, so a parse
// failure is a build mistake and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Text returns the message for id, filled from data.
// Unknown identifiers come back verbatim so a missing entry is visible
// on screen instead of blank.
func (c *Catalog) Text(id string, data map[string]any) string {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return text
}

// T is Default().Text.
func T(id string, data map[string]any) string {
	return Default().Text(id, data)
}
