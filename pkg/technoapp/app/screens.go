package app

import (
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/catalog"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/messages"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/router"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
)

// Content selects what a screen draws in its body slots.
type Content int

const (
	ContentNone     Content = iota
	ContentLogo             // App logo above the sign-in form
	ContentForm             // Only the form fields
	ContentFeatured         // Featured list followed by the offers grid
	ContentSearch           // Search box with results
	ContentOffers           // Offers grid
	ContentCredits          // Credits list and version
	ContentNews             // News cards
	ContentSummary          // Completion message
)

// Action is a button bound to a navigation.
type Action struct {
	Label   string
	Target  screen.Route
	Options []router.Option
	Gated   bool // Disabled until the screen's form is valid
}

// ScreenConfig describes how one route is presented. Each slot is
// explicit; a nil action or ContentNone means the screen does not use it.
type ScreenConfig struct {
	Route      screen.Route
	Title      string // Header text; empty uses the descriptor title
	Background uint32 // 0xRRGGBB
	Primary    *Action
	Secondary  *Action
	ShowBack   bool
	Top        Content // Drawn right below the title
	Body       Content
	Fields     []form.Field
	ShowTabs   bool
}

// Field names shared by the form screens.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldConfirmation = "confirmation"
	FieldName         = "name"
	FieldSurname      = "surname"
	FieldBirthdate    = "birthdate"
	FieldGender       = "gender"
)

const (
	appTitle  = "TECHNO APP"
	lightBlue = 0xBBDEFB
	paleBlue  = 0xE3F2FD
)

// DefaultScreens returns the TECHNO APP screen table.
func DefaultScreens(cat *catalog.Catalog) map[screen.Route]ScreenConfig {
	t := func(id string) string { return messages.T(id, nil) }

	emailField := form.Field{Name: FieldEmail, Label: t(messages.FieldEmail), Kind: form.KindEmail, Required: true}
	passwordField := form.Field{Name: FieldPassword, Label: t(messages.FieldPassword), Kind: form.KindPassword, Required: true}

	return map[screen.Route]ScreenConfig{
		screen.RouteLogin: {
			Route:      screen.RouteLogin,
			Title:      appTitle,
			Background: lightBlue,
			Top:        ContentLogo,
			Body:       ContentForm,
			Fields:     []form.Field{emailField, passwordField},
			Primary:    &Action{Label: t(messages.ButtonSignIn), Target: screen.RouteOffers, Gated: true},
			Secondary:  &Action{Label: t(messages.ButtonCreateAccount), Target: screen.RouteCreateAccount},
		},
		screen.RouteCreateAccount: {
			Route:      screen.RouteCreateAccount,
			Background: lightBlue,
			Body:       ContentForm,
			Fields: []form.Field{
				emailField,
				passwordField,
				{Name: FieldConfirmation, Label: t(messages.FieldConfirmation), Kind: form.KindConfirmation, Required: true, Matches: FieldPassword},
			},
			Primary:  &Action{Label: t(messages.ButtonContinue), Target: screen.RoutePersonalData, Gated: true},
			ShowBack: true,
		},
		screen.RoutePersonalData: {
			Route:      screen.RoutePersonalData,
			Background: lightBlue,
			Body:       ContentForm,
			Fields: []form.Field{
				{Name: FieldName, Label: t(messages.FieldName), Kind: form.KindText, Required: true},
				{Name: FieldSurname, Label: t(messages.FieldSurname), Kind: form.KindText, Required: true},
				{Name: FieldBirthdate, Label: t(messages.FieldBirthdate), Kind: form.KindDate, Required: true},
				{Name: FieldGender, Label: t(messages.FieldGender), Kind: form.KindChoice, Required: true, Options: cat.Genders},
			},
			Primary:  &Action{Label: t(messages.ButtonContinue), Target: screen.RouteFinish, Gated: true},
			ShowBack: true,
		},
		screen.RouteFinish: {
			Route:      screen.RouteFinish,
			Background: paleBlue,
			Body:       ContentSummary,
			Primary: &Action{
				Label:   t(messages.ButtonFinish),
				Target:  screen.RouteLogin,
				Options: []router.Option{router.PopUpTo(screen.RouteLogin, true)},
			},
		},
		screen.RouteOffers: {
			Route:      screen.RouteOffers,
			Title:      appTitle,
			Background: lightBlue,
			Body:       ContentFeatured,
			ShowTabs:   true,
		},
		screen.RouteMenu: {
			Route:      screen.RouteMenu,
			Title:      appTitle,
			Background: lightBlue,
			Top:        ContentSearch,
			Body:       ContentOffers,
			ShowTabs:   true,
		},
		screen.RouteCredits: {
			Route:      screen.RouteCredits,
			Background: paleBlue,
			Body:       ContentCredits,
			ShowTabs:   true,
		},
		screen.RouteNews: {
			Route:      screen.RouteNews,
			Background: paleBlue,
			Top:        ContentSearch,
			Body:       ContentNews,
			ShowTabs:   true,
		},
	}
}
