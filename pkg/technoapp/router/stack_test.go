package router

import (
	"testing"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackOf(routes ...screen.Route) *Stack {
	s := NewStack()
	for _, r := range routes {
		s.Push(StackEntry{Route: r, State: r.String()})
	}
	return s
}

func TestStackPushPopPeek(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(StackEntry{Route: screen.RouteLogin})
	s.Push(StackEntry{Route: screen.RouteMenu, State: 3})

	require.NotNil(t, s.Peek())
	assert.Equal(t, screen.RouteMenu, s.Peek().Route)
	assert.Equal(t, 2, s.Len())

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, 3, top.State)
	assert.Equal(t, 1, s.Len())
}

func TestStackLastIndex(t *testing.T) {
	s := stackOf(screen.RouteLogin, screen.RouteMenu, screen.RouteLogin, screen.RouteNews)
	assert.Equal(t, 2, s.LastIndex(screen.RouteLogin))
	assert.Equal(t, 3, s.LastIndex(screen.RouteNews))
	assert.Equal(t, -1, s.LastIndex(screen.RouteFinish))
}

func TestStackTruncate(t *testing.T) {
	s := stackOf(screen.RouteLogin, screen.RouteMenu, screen.RouteCredits)

	removed := s.Truncate(1)
	assert.Equal(t, []screen.Route{screen.RouteLogin}, s.Routes())
	require.Len(t, removed, 2)
	assert.Equal(t, screen.RouteCredits, removed[0].Route)
	assert.Equal(t, screen.RouteMenu, removed[1].Route)

	assert.Nil(t, s.Truncate(5))
	assert.Len(t, s.Truncate(-1), 1)
	assert.True(t, s.IsEmpty())
}

func TestStackClear(t *testing.T) {
	s := stackOf(screen.RouteLogin, screen.RouteMenu)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Routes())
}
