package router

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, start screen.Route) *Router {
	t.Helper()
	r, err := New(screen.Default(), start)
	require.NoError(t, err)
	return r
}

func TestNewSeedsStart(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	assert.Equal(t, screen.RouteLogin, r.CurrentRoute())
	assert.Equal(t, []screen.Route{screen.RouteLogin}, r.BackStack())
	assert.Equal(t, screen.RouteLogin, r.Start())
}

func TestNewRejectsUnregisteredStart(t *testing.T) {
	reg := screen.MustRegistry(screen.Descriptor{Route: screen.RouteLogin, Title: "Login"})
	_, err := New(reg, screen.RouteMenu)
	assert.True(t, screen.IsUnknownRoute(err))
}

func TestNavigatePushesOnePerCall(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	rng := rand.New(rand.NewSource(7))
	routes := screen.Routes()

	for i := 0; i < 200; i++ {
		next := routes[rng.Intn(len(routes))]
		depth := r.Depth()
		require.NoError(t, r.Navigate(next))
		assert.Equal(t, next, r.CurrentRoute())
		assert.Equal(t, depth+1, r.Depth())
	}
}

func TestNavigateUnknownRouteLeavesStateAlone(t *testing.T) {
	reg := screen.MustRegistry(
		screen.Descriptor{Route: screen.RouteLogin, Title: "Login"},
		screen.Descriptor{Route: screen.RouteMenu, Title: "Menu"},
	)
	r, err := New(reg, screen.RouteLogin)
	require.NoError(t, err)
	require.NoError(t, r.Navigate(screen.RouteMenu))

	err = r.Navigate(screen.RouteNews)
	var unknown *screen.UnknownRouteError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, screen.RouteNews, unknown.Route)

	err = r.Navigate(screen.RouteMenu, PopUpTo(screen.RouteCredits, true))
	assert.True(t, screen.IsUnknownRoute(err))

	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteMenu}, r.BackStack())
}

func TestGoBackUnwindsToStart(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	path := []screen.Route{screen.RouteOffers, screen.RouteMenu, screen.RouteMenu, screen.RouteCredits}
	for _, p := range path {
		require.NoError(t, r.Navigate(p))
	}

	for range path {
		require.NoError(t, r.GoBack())
	}
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, screen.RouteLogin, r.CurrentRoute())

	assert.ErrorIs(t, r.GoBack(), ErrNoBackEntry)
	assert.Equal(t, []screen.Route{screen.RouteLogin}, r.BackStack())
}

func TestSingleTopOnCurrentIsNoop(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	require.NoError(t, r.Navigate(screen.RouteOffers))
	r.SetState("scrolled")

	calls := 0
	r.Subscribe(func(Change) { calls++ })

	require.NoError(t, r.Navigate(screen.RouteOffers, SingleTop()))
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteOffers}, r.BackStack())
	assert.Equal(t, "scrolled", r.State())
	assert.Zero(t, calls)

	require.NoError(t, r.Navigate(screen.RouteMenu, SingleTop()))
	assert.Equal(t, 3, r.Depth())
	assert.Equal(t, 1, calls)
}

func TestPopUpToStartInclusiveLeavesOnlyTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	routes := screen.Routes()

	for trial := 0; trial < 50; trial++ {
		r := newRouter(t, screen.RouteLogin)
		for i := rng.Intn(10); i > 0; i-- {
			require.NoError(t, r.Navigate(routes[rng.Intn(len(routes))]))
		}

		target := routes[rng.Intn(len(routes))]
		require.NoError(t, r.Navigate(target, PopUpTo(screen.RouteLogin, true)))
		assert.Equal(t, []screen.Route{target}, r.BackStack())
	}
}

func TestPopUpToPicksTopmostTarget(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	for _, p := range []screen.Route{screen.RouteMenu, screen.RouteOffers, screen.RouteMenu, screen.RouteNews} {
		require.NoError(t, r.Navigate(p))
	}

	require.NoError(t, r.Navigate(screen.RouteCredits, PopUpTo(screen.RouteMenu, false)))
	assert.Equal(t,
		[]screen.Route{screen.RouteLogin, screen.RouteMenu, screen.RouteOffers, screen.RouteMenu, screen.RouteCredits},
		r.BackStack())
}

func TestPopUpToMissingTargetOnlyPushes(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	require.NoError(t, r.Navigate(screen.RouteMenu))
	require.NoError(t, r.Navigate(screen.RouteNews, PopUpTo(screen.RouteFinish, true)))
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteMenu, screen.RouteNews}, r.BackStack())
}

func TestRegistrationFlowResets(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	require.NoError(t, r.Navigate(screen.RouteCreateAccount))
	require.NoError(t, r.Navigate(screen.RoutePersonalData))
	require.NoError(t, r.Navigate(screen.RouteLogin, PopUpTo(screen.RouteLogin, true)))

	assert.Equal(t, []screen.Route{screen.RouteLogin}, r.BackStack())
	assert.Equal(t, screen.RouteLogin, r.CurrentRoute())
}

func TestTabOptionsSaveAndRestore(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	tab := TabOptions(r.Start())

	require.NoError(t, r.Navigate(screen.RouteMenu, tab...))
	r.SetState(42)
	require.NoError(t, r.Navigate(screen.RouteOffers, tab...))
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteOffers}, r.BackStack())

	saved, ok := r.SavedState(screen.RouteMenu)
	require.True(t, ok)
	assert.Equal(t, 42, saved)

	require.NoError(t, r.Navigate(screen.RouteMenu, tab...))
	assert.Equal(t, 42, r.State())

	_, ok = r.SavedState(screen.RouteMenu)
	assert.False(t, ok, "restoring consumes the cache entry")

	require.NoError(t, r.Navigate(screen.RouteLogin, tab...))
	assert.Equal(t, []screen.Route{screen.RouteLogin}, r.BackStack())

	require.NoError(t, r.Navigate(screen.RouteLogin, tab...))
	assert.Equal(t, []screen.Route{screen.RouteLogin}, r.BackStack())
}

func TestSaveStateDropsStaleEntries(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	tab := TabOptions(r.Start())

	require.NoError(t, r.Navigate(screen.RouteMenu, tab...))
	r.SetState("old")
	require.NoError(t, r.Navigate(screen.RouteNews, tab...))

	require.NoError(t, r.Navigate(screen.RouteMenu))
	require.NoError(t, r.Navigate(screen.RouteOffers, tab...))

	_, ok := r.SavedState(screen.RouteMenu)
	assert.False(t, ok)
}

func TestSaveStateKeepsTopmostDuplicate(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	tab := TabOptions(r.Start())

	require.NoError(t, r.Navigate(screen.RouteMenu))
	r.SetState("old")
	require.NoError(t, r.Navigate(screen.RouteNews))
	require.NoError(t, r.Navigate(screen.RouteMenu))
	r.SetState("new")

	require.NoError(t, r.Navigate(screen.RouteOffers, tab...))
	require.NoError(t, r.Navigate(screen.RouteMenu, tab...))
	assert.Equal(t, "new", r.State())
}

func TestWithoutRestoreStateStartsFresh(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	require.NoError(t, r.Navigate(screen.RouteMenu))
	r.SetState("x")
	require.NoError(t, r.Navigate(screen.RouteNews, PopUpTo(screen.RouteLogin, false), SaveState()))
	require.NoError(t, r.Navigate(screen.RouteMenu))
	assert.Nil(t, r.State())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)

	var seen []Change
	unsubscribe := r.Subscribe(func(c Change) { seen = append(seen, c) })

	require.NoError(t, r.Navigate(screen.RouteNews))
	require.NoError(t, r.GoBack())
	require.ErrorIs(t, r.GoBack(), ErrNoBackEntry)

	require.Len(t, seen, 2)
	assert.Equal(t, Change{From: screen.RouteLogin, To: screen.RouteNews, Stack: []screen.Route{screen.RouteLogin, screen.RouteNews}}, seen[0])
	assert.Equal(t, Change{From: screen.RouteNews, To: screen.RouteLogin, Stack: []screen.Route{screen.RouteLogin}}, seen[1])

	unsubscribe()
	require.NoError(t, r.Navigate(screen.RouteMenu))
	assert.Len(t, seen, 2)
}

func TestObserverCannotNavigate(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)

	var inner error
	r.Subscribe(func(Change) { inner = r.Navigate(screen.RouteMenu) })

	require.NoError(t, r.Navigate(screen.RouteNews))
	assert.ErrorIs(t, inner, ErrReentrant)
	assert.Equal(t, screen.RouteNews, r.CurrentRoute())

	require.NoError(t, r.Navigate(screen.RouteOffers))
}

func TestObserverChangeIsACopy(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	r.Subscribe(func(c Change) { c.Stack[0] = screen.RouteFinish })

	require.NoError(t, r.Navigate(screen.RouteNews))
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteNews}, r.BackStack())
}

func TestWithLoggerTracesTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := newRouter(t, screen.RouteLogin).WithLogger(logger)
	require.NoError(t, r.Navigate(screen.RouteMenu))
	require.NoError(t, r.GoBack())

	assert.Contains(t, buf.String(), `"to":"menu"`)
	assert.Contains(t, buf.String(), `"msg":"back"`)
}

func TestBackStackIsACopy(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	stack := r.BackStack()
	stack[0] = screen.RouteNews
	assert.Equal(t, screen.RouteLogin, r.CurrentRoute())
}
