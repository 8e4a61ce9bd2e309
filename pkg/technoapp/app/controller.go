// Package app ties the router, the screen table, forms and the catalog
// together. Renderers (the SDL shell, the terminal UI) draw from a
// Controller and feed it user input; they never touch the router's stack.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/catalog"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/config"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/router"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
)

// ScreenState is the ephemeral state kept on a route's stack entry.
type ScreenState struct {
	Search string
	Scroll int
}

// Options configures a Controller. Zero fields take the defaults.
type Options struct {
	Registry *screen.Registry
	Catalog  *catalog.Catalog
	Screens  map[screen.Route]ScreenConfig
	Start    screen.Route
	RootBack config.RootBack
	Logger   *slog.Logger
}

// Controller is the state a renderer draws. It must be used from a single
// goroutine; other goroutines go through Dispatcher.
type Controller struct {
	registry   *screen.Registry
	catalog    *catalog.Catalog
	screens    map[screen.Route]ScreenConfig
	router     *router.Router
	dispatcher *router.Dispatcher
	rootBack   config.RootBack
	logger     *slog.Logger

	form    *form.State
	focus   int
	search  string
	scroll  int
	rows    int
	results []string
	quit    bool
}

// New builds a Controller positioned on opts.Start.
func New(opts Options) (*Controller, error) {
	if opts.Registry == nil {
		opts.Registry = screen.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Screens == nil {
		opts.Screens = DefaultScreens(opts.Catalog)
	}
	if opts.RootBack == "" {
		opts.RootBack = config.RootBackIgnore
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	for _, d := range opts.Registry.All() {
		if _, ok := opts.Screens[d.Route]; !ok {
			return nil, fmt.Errorf("app: no screen config for %s", d.Route)
		}
	}

	r, err := router.New(opts.Registry, opts.Start)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	r.WithLogger(opts.Logger)

	c := &Controller{
		registry: opts.Registry,
		catalog:  opts.Catalog,
		screens:  opts.Screens,
		router:   r,
		rootBack: opts.RootBack,
		logger:   opts.Logger,
	}
	c.dispatcher = router.NewDispatcher(r, router.DefaultQueueSize).OnError(c.eventFailed)

	r.Subscribe(c.entered)
	c.enter()

	return c, nil
}

// Router exposes the router for read access.
func (c *Controller) Router() *router.Router {
	return c.router
}

// Dispatcher accepts navigation from other goroutines.
func (c *Controller) Dispatcher() *router.Dispatcher {
	return c.dispatcher
}

// Catalog returns the content catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Pump applies queued events. Call it once per frame.
func (c *Controller) Pump() int {
	return c.dispatcher.Drain()
}

// Quit reports whether the host should exit.
func (c *Controller) Quit() bool {
	return c.quit
}

// Route returns the visible route.
func (c *Controller) Route() screen.Route {
	return c.router.CurrentRoute()
}

// Screen returns the visible screen's configuration.
func (c *Controller) Screen() ScreenConfig {
	return c.screens[c.Route()]
}

// Title returns the header text for the visible screen.
func (c *Controller) Title() string {
	sc := c.Screen()
	if sc.Title != "" {
		return sc.Title
	}
	d, err := c.registry.Describe(sc.Route)
	if err != nil {
		return ""
	}
	return d.Title
}

// Tabs returns the bottom navigation entries.
func (c *Controller) Tabs() []screen.Descriptor {
	return c.registry.Tabs()
}

// Form returns the visible screen's form. It is nil on screens without fields.
func (c *Controller) Form() *form.State {
	return c.form
}

// Focus returns the index of the focused field.
func (c *Controller) Focus() int {
	return c.focus
}

// CanSubmit reports whether the primary action is enabled.
func (c *Controller) CanSubmit() bool {
	p := c.Screen().Primary
	if p == nil {
		return false
	}
	return !p.Gated || c.form == nil || c.form.Valid()
}

// Primary triggers the screen's primary action.
func (c *Controller) Primary() error {
	return c.trigger(c.Screen().Primary)
}

// Secondary triggers the screen's secondary action.
func (c *Controller) Secondary() error {
	return c.trigger(c.Screen().Secondary)
}

func (c *Controller) trigger(a *Action) error {
	if a == nil {
		return ErrNoAction
	}
	if a.Gated && c.form != nil {
		if name := c.form.FirstInvalid(); name != "" {
			c.focusField(name)
			return fmt.Errorf("%w: %s: %s", ErrGateClosed, name, c.form.Check(name).Reason)
		}
	}
	return c.router.Navigate(a.Target, a.Options...)
}

// Back pops the back stack. On the start screen it returns ErrQuit when
// the exit policy is configured and nil otherwise.
func (c *Controller) Back() error {
	err := c.router.GoBack()
	if errors.Is(err, router.ErrNoBackEntry) {
		return c.rootBackPressed()
	}
	return err
}

// SelectTab navigates to a bottom navigation entry.
func (c *Controller) SelectTab(route screen.Route) error {
	if !slices.ContainsFunc(c.registry.Tabs(), func(d screen.Descriptor) bool { return d.Route == route }) {
		return fmt.Errorf("%w: %s", ErrNotATab, route)
	}
	return c.router.Navigate(route, router.TabOptions(c.router.Start())...)
}

// CycleTab moves to the tab step positions away from the visible one.
func (c *Controller) CycleTab(step int) error {
	tabs := c.registry.Tabs()
	if len(tabs) == 0 {
		return ErrNotATab
	}
	i := slices.IndexFunc(tabs, func(d screen.Descriptor) bool { return d.Route == c.Route() })
	if i < 0 {
		i = 0
		step = 0
	}
	n := len(tabs)
	return c.SelectTab(tabs[((i+step)%n+n)%n].Route)
}

// Input replaces the value of a field on the visible form.
func (c *Controller) Input(field, value string) error {
	if c.form == nil {
		return fmt.Errorf("app: %s has no form", c.Route())
	}
	return c.form.Set(field, value)
}

// FocusNext moves focus by step fields, wrapping.
func (c *Controller) FocusNext(step int) {
	if c.form == nil || len(c.form.Fields()) == 0 {
		return
	}
	n := len(c.form.Fields())
	c.focus = ((c.focus+step)%n + n) % n
}

// Focused returns the focused field.
func (c *Controller) Focused() (form.Field, bool) {
	if c.form == nil || len(c.form.Fields()) == 0 {
		return form.Field{}, false
	}
	return c.form.Fields()[c.focus], true
}

// TypeText appends text to the focused field, or to the search box on
// screens without a form. Choice fields ignore typing.
func (c *Controller) TypeText(text string) {
	f, ok := c.Focused()
	if !ok {
		if c.hasSearch() {
			c.Search(c.search + text)
		}
		return
	}
	if f.Kind == form.KindChoice {
		return
	}
	_ = c.form.Set(f.Name, c.form.Value(f.Name)+text)
}

// Backspace removes the last character of the focused field or search box.
func (c *Controller) Backspace() {
	trim := func(s string) string {
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1])
	}

	f, ok := c.Focused()
	if !ok {
		if c.hasSearch() {
			c.Search(trim(c.search))
		}
		return
	}
	_ = c.form.Set(f.Name, trim(c.form.Value(f.Name)))
}

// CycleChoice steps the focused choice field through its options.
func (c *Controller) CycleChoice(step int) {
	f, ok := c.Focused()
	if !ok || f.Kind != form.KindChoice {
		return
	}
	_ = c.form.Set(f.Name, form.Cycle(f.Options, c.form.Value(f.Name), step))
}

// Search updates the search box and returns the matches. The query is
// saved on the route's stack entry so it survives tab switches.
func (c *Controller) Search(query string) []string {
	c.search = query
	c.results = c.catalog.Search(query)
	c.saveState()
	return c.results
}

// SearchQuery returns the current search text.
func (c *Controller) SearchQuery() string {
	return c.search
}

// Results returns the matches for the current search text.
func (c *Controller) Results() []string {
	return c.results
}

// Suggestions offers near matches when a non-blank search finds nothing.
func (c *Controller) Suggestions(n int) []string {
	if len(c.results) > 0 {
		return nil
	}
	return c.catalog.Suggest(c.search, n)
}

// Scroll moves the body scroll offset, never below zero. Once a renderer
// has reported the body size with SetBodyRows the offset also stops on the
// last body row.
func (c *Controller) Scroll(delta int) {
	c.scroll = c.clampScroll(c.scroll + delta)
	c.saveState()
}

// SetBodyRows records how many rows the renderer drew for the body and
// pulls the scroll offset back onto the last one.
func (c *Controller) SetBodyRows(n int) {
	c.rows = n
	if offset := c.clampScroll(c.scroll); offset != c.scroll {
		c.scroll = offset
		c.saveState()
	}
}

func (c *Controller) clampScroll(offset int) int {
	if c.rows > 0 {
		offset = min(offset, c.rows-1)
	}
	return max(0, offset)
}

// ScrollOffset returns the body scroll offset.
func (c *Controller) ScrollOffset() int {
	return c.scroll
}

func (c *Controller) hasSearch() bool {
	sc := c.Screen()
	return sc.Top == ContentSearch || sc.Body == ContentSearch
}

func (c *Controller) saveState() {
	c.router.SetState(ScreenState{Search: c.search, Scroll: c.scroll})
}

func (c *Controller) focusField(name string) {
	for i, f := range c.form.Fields() {
		if f.Name == name {
			c.focus = i
			return
		}
	}
}

func (c *Controller) entered(change router.Change) {
	c.enter()
	attrs := []any{"from", change.From, "to", change.To, "stack", change.Stack}
	if c.form != nil {
		attrs = append(attrs, "form", c.form.ID)
	}
	c.logger.Debug("Screen changed", attrs...)
}

// enter rebuilds per-screen state for the visible route: a fresh form
// and whatever search text the stack entry carries.
func (c *Controller) enter() {
	sc := c.Screen()

	c.form = nil
	c.focus = 0
	if len(sc.Fields) > 0 {
		c.form = form.NewState(sc.Fields...)
	}

	state, _ := c.router.State().(ScreenState)
	c.search = state.Search
	c.scroll = state.Scroll
	c.rows = 0
	c.results = c.catalog.Search(c.search)
}

func (c *Controller) rootBackPressed() error {
	if c.rootBack == config.RootBackExit {
		c.quit = true
		return ErrQuit
	}
	return nil
}

func (c *Controller) eventFailed(err error) {
	if errors.Is(err, router.ErrNoBackEntry) {
		_ = c.rootBackPressed()
		return
	}
	c.logger.Error("Navigation event failed", "error", err)
}
