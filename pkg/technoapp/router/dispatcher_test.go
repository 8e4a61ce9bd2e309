package router

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainAppliesInOrder(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	d := NewDispatcher(r, 8)

	require.NoError(t, d.Post(To(screen.RouteCreateAccount)))
	require.NoError(t, d.Post(To(screen.RoutePersonalData)))
	require.NoError(t, d.Post(Back()))
	assert.Equal(t, 3, d.Pending())

	assert.Equal(t, 3, d.Drain())
	assert.Equal(t, []screen.Route{screen.RouteLogin, screen.RouteCreateAccount}, r.BackStack())
	assert.Equal(t, uint64(3), d.Processed())
	assert.Zero(t, d.Drain())
}

func TestRapidBackPostsNeverCorruptTheStack(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	require.NoError(t, r.Navigate(screen.RouteOffers))
	require.NoError(t, r.Navigate(screen.RouteMenu))

	var errs []error
	d := NewDispatcher(r, 0).OnError(func(err error) { errs = append(errs, err) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Post(Back()))
		}()
	}
	wg.Wait()
	d.Drain()

	assert.Equal(t, []screen.Route{screen.RouteLogin}, r.BackStack())
	assert.Len(t, errs, 8)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrNoBackEntry)
	}
	assert.Equal(t, uint64(8), d.Failed())
}

func TestRunStopsOnClose(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	d := NewDispatcher(r, 4)

	changed := make(chan screen.Route, 4)
	r.Subscribe(func(c Change) { changed <- c.To })

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()

	require.NoError(t, d.Post(To(screen.RouteNews)))
	select {
	case got := <-changed:
		assert.Equal(t, screen.RouteNews, got)
	case <-time.After(time.Second):
		t.Fatal("event was not applied")
	}

	d.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}

	assert.ErrorIs(t, d.Post(Back()), ErrDispatcherClosed)
	d.Close()
}

func TestRunStopsOnContext(t *testing.T) {
	r := newRouter(t, screen.RouteLogin)
	d := NewDispatcher(r, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
}
