package app

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/config"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/router"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, opts Options) *Controller {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func fill(t *testing.T, c *Controller, values map[string]string) {
	t.Helper()
	for k, v := range values {
		require.NoError(t, c.Input(k, v))
	}
}

func TestEveryRouteHasAScreen(t *testing.T) {
	c := newController(t, Options{})
	screens := DefaultScreens(c.Catalog())
	for _, r := range screen.Routes() {
		sc, ok := screens[r]
		require.True(t, ok, r)
		assert.Equal(t, r, sc.Route)
	}
}

func TestNewRejectsMissingScreenConfig(t *testing.T) {
	_, err := New(Options{Screens: map[screen.Route]ScreenConfig{}})
	assert.Error(t, err)
}

func TestRegistrationFlow(t *testing.T) {
	c := newController(t, Options{})
	assert.Equal(t, screen.RouteLogin, c.Route())
	assert.Equal(t, "TECHNO APP", c.Title())

	require.NoError(t, c.Secondary())
	assert.Equal(t, screen.RouteCreateAccount, c.Route())
	assert.Equal(t, "Create Account", c.Title())

	err := c.Primary()
	assert.ErrorIs(t, err, ErrGateClosed)
	assert.Equal(t, screen.RouteCreateAccount, c.Route())

	fill(t, c, map[string]string{
		FieldEmail:        "user@example.com",
		FieldPassword:     "abc12345",
		FieldConfirmation: "xyz",
	})
	assert.False(t, c.CanSubmit())
	err = c.Primary()
	require.ErrorIs(t, err, ErrGateClosed)
	assert.Contains(t, err.Error(), FieldConfirmation)
	assert.Equal(t, 2, c.Focus(), "focus jumps to the failing field")

	require.NoError(t, c.Input(FieldConfirmation, "abc12345"))
	assert.True(t, c.CanSubmit())
	require.NoError(t, c.Primary())
	assert.Equal(t, screen.RoutePersonalData, c.Route())

	fill(t, c, map[string]string{
		FieldName:      "Jorge",
		FieldSurname:   "Erazo",
		FieldBirthdate: "14/04/1998",
	})
	require.ErrorIs(t, c.Primary(), ErrGateClosed)

	c.FocusNext(3)
	c.CycleChoice(1)
	assert.Equal(t, "Female", c.Form().Value(FieldGender))
	require.NoError(t, c.Primary())
	assert.Equal(t, screen.RouteFinish, c.Route())
	assert.Nil(t, c.Form())

	require.NoError(t, c.Primary())
	assert.Equal(t, []screen.Route{screen.RouteLogin}, c.Router().BackStack())
}

func TestFormIsDiscardedOnLeave(t *testing.T) {
	c := newController(t, Options{})
	require.NoError(t, c.Secondary())
	require.NoError(t, c.Input(FieldEmail, "user@example.com"))
	id := c.Form().ID

	require.NoError(t, c.Back())
	require.NoError(t, c.Secondary())
	assert.NotEqual(t, id, c.Form().ID)
	assert.Empty(t, c.Form().Value(FieldEmail))
}

func TestTypingAndMasking(t *testing.T) {
	c := newController(t, Options{})
	c.TypeText("a@b.co")
	c.FocusNext(1)
	c.TypeText("pässword")
	c.Backspace()

	assert.Equal(t, "a@b.co", c.Form().Value(FieldEmail))
	assert.Equal(t, "pässwor", c.Form().Value(FieldPassword))
	assert.Equal(t, "•••••••", c.Form().Display(FieldPassword))

	c.FocusNext(-1)
	f, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, FieldEmail, f.Name)
}

func TestScreenChangeLogsFormID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newController(t, Options{Logger: logger})

	require.NoError(t, c.Secondary())
	require.NotNil(t, c.Form())
	assert.Contains(t, buf.String(), `"form":"`+c.Form().ID.String()+`"`)
}

func TestSignInRequiresValidCredentials(t *testing.T) {
	c := newController(t, Options{})
	fill(t, c, map[string]string{FieldEmail: "not-an-email", FieldPassword: "longenough1"})
	require.ErrorIs(t, c.Primary(), ErrGateClosed)

	require.NoError(t, c.Input(FieldEmail, "user@example.com"))
	require.NoError(t, c.Primary())
	assert.Equal(t, screen.RouteOffers, c.Route())
}

func TestTabsRestoreSearch(t *testing.T) {
	c := newController(t, Options{})

	require.NoError(t, c.SelectTab(screen.RouteMenu))
	c.TypeText("ju")
	assert.Equal(t, []string{"Juan Pérez", "Juliana López"}, c.Results())

	require.NoError(t, c.SelectTab(screen.RouteCredits))
	assert.Empty(t, c.SearchQuery())
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteCredits}, c.Router().BackStack())

	require.NoError(t, c.SelectTab(screen.RouteMenu))
	assert.Equal(t, "ju", c.SearchQuery())
	assert.Len(t, c.Results(), 2)

	require.NoError(t, c.SelectTab(screen.RouteMenu))
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteMenu}, c.Router().BackStack())

	assert.ErrorIs(t, c.SelectTab(screen.RouteFinish), ErrNotATab)
}

func TestCycleTab(t *testing.T) {
	c := newController(t, Options{})
	require.NoError(t, c.CycleTab(1))
	assert.Equal(t, screen.RouteOffers, c.Route())
	require.NoError(t, c.CycleTab(-2))
	assert.Equal(t, screen.RouteNews, c.Route())

	require.NoError(t, c.Router().Navigate(screen.RouteFinish))
	require.NoError(t, c.CycleTab(1))
	assert.Equal(t, screen.RouteLogin, c.Route())
}

func TestSearchSuggestions(t *testing.T) {
	c := newController(t, Options{Start: screen.RouteNews})
	c.Search("jorje")
	assert.Empty(t, c.Results())
	assert.Equal(t, []string{"Jorge Erazo"}, c.Suggestions(1))

	c.Backspace()
	c.Search("jor")
	assert.Nil(t, c.Suggestions(1))
}

func TestScrollIsKeptPerRoute(t *testing.T) {
	c := newController(t, Options{})
	require.NoError(t, c.SelectTab(screen.RouteOffers))
	c.Scroll(3)
	c.Scroll(-10)
	c.Scroll(2)
	assert.Equal(t, 2, c.ScrollOffset())

	require.NoError(t, c.SelectTab(screen.RouteNews))
	assert.Zero(t, c.ScrollOffset())
	require.NoError(t, c.SelectTab(screen.RouteOffers))
	assert.Equal(t, 2, c.ScrollOffset())
}

func TestScrollStopsOnLastBodyRow(t *testing.T) {
	c := newController(t, Options{})
	require.NoError(t, c.SelectTab(screen.RouteOffers))
	c.SetBodyRows(4)
	c.Scroll(10)
	assert.Equal(t, 3, c.ScrollOffset())
	c.Scroll(-1)
	assert.Equal(t, 2, c.ScrollOffset())

	c.SetBodyRows(2)
	assert.Equal(t, 1, c.ScrollOffset())

	require.NoError(t, c.SelectTab(screen.RouteNews))
	require.NoError(t, c.SelectTab(screen.RouteOffers))
	assert.Equal(t, 1, c.ScrollOffset())
}

func TestRootBackPolicies(t *testing.T) {
	ignore := newController(t, Options{})
	assert.NoError(t, ignore.Back())
	assert.False(t, ignore.Quit())

	exit := newController(t, Options{RootBack: config.RootBackExit})
	require.NoError(t, exit.SelectTab(screen.RouteNews))
	assert.NoError(t, exit.Back())
	assert.ErrorIs(t, exit.Back(), ErrQuit)
	assert.True(t, exit.Quit())
}

func TestDispatchedBackHonoursPolicy(t *testing.T) {
	c := newController(t, Options{RootBack: config.RootBackExit})
	require.NoError(t, c.SelectTab(screen.RouteOffers))

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Dispatcher().Post(router.Back()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, c.Pump())
	assert.Equal(t, screen.RouteLogin, c.Route())
	assert.True(t, c.Quit())
}

func TestMissingActions(t *testing.T) {
	c := newController(t, Options{Start: screen.RouteCredits})
	assert.ErrorIs(t, c.Primary(), ErrNoAction)
	assert.ErrorIs(t, c.Secondary(), ErrNoAction)
	assert.False(t, c.CanSubmit())
	assert.Error(t, c.Input(FieldEmail, "x"))
}
