package screen

import (
	"testing"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/icons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCoversEveryRoute(t *testing.T) {
	reg := Default()
	for _, r := range Routes() {
		d, err := reg.Describe(r)
		require.NoError(t, err, r)
		assert.Equal(t, r, d.Route)
		assert.NotEmpty(t, d.Title, r)
		assert.True(t, d.Icon.Known(), r)
	}
	assert.Equal(t, len(Routes()), reg.Len())
}

func TestAllKeepsDeclarationOrder(t *testing.T) {
	var got []Route
	for _, d := range Default().All() {
		got = append(got, d.Route)
	}
	assert.Equal(t, Routes(), got)
}

func TestTabs(t *testing.T) {
	var got []Route
	for _, d := range Default().Tabs() {
		got = append(got, d.Route)
	}
	assert.Equal(t, []Route{RouteLogin, RouteOffers, RouteMenu, RouteCredits, RouteNews}, got)
}

func TestDescribeUnknown(t *testing.T) {
	reg := MustRegistry(Descriptor{Route: RouteLogin, Title: "Login"})

	_, err := reg.Describe(RouteNews)
	require.Error(t, err)
	assert.True(t, IsUnknownRoute(err))
	assert.False(t, reg.Has(RouteNews))
	assert.True(t, reg.Has(RouteLogin))
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	_, err := NewRegistry(
		Descriptor{Route: RouteLogin, Title: "a"},
		Descriptor{Route: RouteLogin, Title: "b"},
	)
	assert.Error(t, err)

	_, err = NewRegistry(Descriptor{Route: Route(99), Title: "ghost"})
	assert.True(t, IsUnknownRoute(err))

	_, err = NewRegistry(Descriptor{Route: RouteMenu, Icon: icons.Ref("nope")})
	assert.Error(t, err)
}

func TestAllReturnsACopy(t *testing.T) {
	reg := Default()
	all := reg.All()
	all[0].Title = "changed"

	d, err := reg.Describe(all[0].Route)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", d.Title)
}

func TestParseRoute(t *testing.T) {
	for _, r := range Routes() {
		got, err := ParseRoute(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRoute(" Create-Account ")
	require.NoError(t, err)
	assert.Equal(t, RouteCreateAccount, got)

	_, err = ParseRoute("checkout")
	assert.True(t, IsUnknownRoute(err))
	assert.Contains(t, err.Error(), "checkout")
}

func TestRouteTextEncoding(t *testing.T) {
	text, err := RouteMenu.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "menu", string(text))

	var r Route
	require.NoError(t, r.UnmarshalText([]byte("personal_data")))
	assert.Equal(t, RoutePersonalData, r)

	_, err = Route(42).MarshalText()
	assert.True(t, IsUnknownRoute(err))
	assert.Error(t, r.UnmarshalText([]byte("nowhere")))
}
