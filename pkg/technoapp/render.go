package technoapp

import (
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/icons"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/internal"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/messages"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	headerHeight int32 = 84
	rowHeight    int32 = 44
	fieldHeight  int32 = 56
	buttonHeight int32 = 56
	logoSize           = 96
)

var contentPadding = internal.Padding{Top: 20, Right: 40, Bottom: 20, Left: 40}

func (s *shell) render() {
	c := s.controller
	sc := c.Screen()
	renderer := s.window.Renderer

	s.window.Clear(internal.HexToColor(sc.Background))

	width := s.window.GetWidth()
	height := s.window.GetHeight()
	bottom := height - contentPadding.Bottom
	if sc.ShowTabs {
		bottom -= constants.DefaultTabBarHeight
	}

	s.renderHeader(sc, width)

	x := contentPadding.Left
	w := width - contentPadding.Horizontal()
	y := headerHeight + contentPadding.Top

	// Body scroll is a row offset; the header and tab bar stay put.
	clip := sdl.Rect{X: 0, Y: headerHeight, W: width, H: bottom - headerHeight}
	renderer.SetClipRect(&clip)

	y = s.renderContent(sc.Top, x, y, w)
	if sc.Body != app.ContentForm {
		top := y - int32(c.ScrollOffset())*rowHeight
		y = s.renderContent(sc.Body, x, top, w)
		c.SetBodyRows(int((y - top + rowHeight - 1) / rowHeight))
	} else {
		y = s.renderContent(sc.Body, x, y, w)
	}
	s.renderActions(sc, x, y+constants.DefaultTitleSpacing, w)

	renderer.SetClipRect(nil)

	if sc.ShowTabs {
		s.renderTabBar(width, height)
	}
}

func (s *shell) renderHeader(sc app.ScreenConfig, width int32) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	renderer := s.window.Renderer

	fillRect(renderer, theme.AccentColor, sdl.Rect{X: 0, Y: 0, W: width, H: headerHeight})

	titleY := (headerHeight - int32(fonts.LargeFont.Height())) / 2
	internal.RenderText(renderer, fonts.LargeFont, s.controller.Title(), theme.ButtonLabelColor, width/2, titleY, constants.TextAlignCenter)

	if sc.ShowBack {
		backY := (headerHeight - int32(fonts.SmallFont.Height())) / 2
		internal.RenderText(renderer, fonts.SmallFont, "< "+messages.T(messages.ButtonBack, nil), theme.ButtonLabelColor, contentPadding.Left, backY, constants.TextAlignLeft)
	}
}

// renderContent draws one content slot at y and returns the y below it.
func (s *shell) renderContent(content app.Content, x, y, w int32) int32 {
	c := s.controller
	cat := c.Catalog()
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	renderer := s.window.Renderer

	heading := func(id string) {
		y += internal.RenderText(renderer, fonts.MediumFont, messages.T(id, nil), theme.TextColor, x, y, constants.TextAlignLeft)
		y += constants.DefaultTitleSpacing / 2
	}
	row := func(text string, color sdl.Color) {
		internal.RenderText(renderer, fonts.MediumFont, text, color, x, y, constants.TextAlignLeft)
		y += rowHeight
	}

	switch content {
	case app.ContentLogo:
		size := int32(logoSize)
		s.renderIcon(icons.AccountBox, logoSize, theme.AccentColor, x+(w-size)/2, y)
		y += size + constants.DefaultTitleSpacing

	case app.ContentForm:
		y = s.renderForm(x, y, w)

	case app.ContentSearch:
		y = s.renderSearch(x, y, w)

	case app.ContentFeatured:
		heading(messages.FeaturedHeading)
		for _, item := range cat.Featured {
			row(item, theme.TextColor)
		}
		y += constants.DefaultTitleSpacing
		y = s.renderContent(app.ContentOffers, x, y, w)

	case app.ContentOffers:
		heading(messages.OffersHeading)
		for _, offer := range cat.Offers {
			fillRect(renderer, theme.SurfaceColor, sdl.Rect{X: x, Y: y, W: w, H: rowHeight - 6})
			internal.RenderText(renderer, fonts.MediumFont, offer.Label, theme.AccentColor, x+12, y+4, constants.TextAlignLeft)
			y += rowHeight
		}

	case app.ContentCredits:
		heading(messages.CreditsHeading)
		for _, credit := range cat.Credits {
			row(credit.Name, theme.TextColor)
			internal.RenderText(renderer, fonts.SmallFont, credit.Role+"  "+credit.Email, theme.HintColor, x+12, y-12, constants.TextAlignLeft)
			y += rowHeight / 2
		}
		row(cat.Version, theme.HintColor)

	case app.ContentNews:
		heading(messages.NewsHeading)
		for _, item := range cat.News {
			y += internal.RenderText(renderer, fonts.MediumFont, item.Title, theme.AccentColor, x, y, constants.TextAlignLeft)
			y += internal.RenderMultilineText(renderer, fonts.SmallFont, item.Body, theme.TextColor, x, y, w, constants.TextAlignLeft)
			y += constants.DefaultTitleSpacing
		}

	case app.ContentSummary:
		size := int32(logoSize)
		s.renderIcon(icons.Done, logoSize, theme.AccentColor, x+(w-size)/2, y)
		y += size + constants.DefaultTitleSpacing
		y += internal.RenderMultilineText(renderer, fonts.MediumFont, messages.T(messages.FinishMessage, nil), theme.TextColor, x+w/2, y, w, constants.TextAlignCenter)
	}

	return y
}

func (s *shell) renderForm(x, y, w int32) int32 {
	c := s.controller
	f := c.Form()
	if f == nil {
		return y
	}

	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	renderer := s.window.Renderer

	for i, field := range f.Fields() {
		box := sdl.Rect{X: x, Y: y, W: w, H: fieldHeight}
		fillRect(renderer, theme.SurfaceColor, box)

		border := theme.HintColor
		if i == c.Focus() {
			border = theme.AccentColor
		}
		drawRect(renderer, border, box)

		textY := y + (fieldHeight-int32(fonts.MediumFont.Height()))/2
		if value := f.Display(field.Name); value != "" {
			text := value
			if field.Kind == form.KindChoice {
				text = "< " + value + " >"
			}
			internal.RenderText(renderer, fonts.MediumFont, text, theme.TextColor, x+12, textY, constants.TextAlignLeft)
		} else {
			internal.RenderText(renderer, fonts.MediumFont, field.Label, theme.HintColor, x+12, textY, constants.TextAlignLeft)
		}
		y += fieldHeight + 4

		if r := f.Inline(field.Name); !r.Valid {
			y += internal.RenderText(renderer, fonts.SmallFont, r.Reason, theme.ErrorColor, x, y, constants.TextAlignLeft)
		}
		y += constants.DefaultTitleSpacing / 2
	}
	return y
}

func (s *shell) renderSearch(x, y, w int32) int32 {
	c := s.controller
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	renderer := s.window.Renderer

	box := sdl.Rect{X: x, Y: y, W: w, H: fieldHeight}
	fillRect(renderer, theme.SurfaceColor, box)
	drawRect(renderer, theme.AccentColor, box)

	iconSize := int32(constants.DefaultIconSize)
	s.renderIcon(icons.Search, constants.DefaultIconSize, theme.HintColor, x+12, y+(fieldHeight-iconSize)/2)

	textX := x + 24 + iconSize
	textY := y + (fieldHeight-int32(fonts.MediumFont.Height()))/2
	if q := c.SearchQuery(); q != "" {
		internal.RenderText(renderer, fonts.MediumFont, q, theme.TextColor, textX, textY, constants.TextAlignLeft)
	} else {
		internal.RenderText(renderer, fonts.MediumFont, messages.T(messages.SearchPlaceholder, nil), theme.HintColor, textX, textY, constants.TextAlignLeft)
	}
	y += fieldHeight + 8

	for _, name := range c.Results() {
		internal.RenderText(renderer, fonts.MediumFont, name, theme.TextColor, x+12, y, constants.TextAlignLeft)
		y += rowHeight
	}
	for _, name := range c.Suggestions(1) {
		text := messages.T(messages.SearchSuggestion, map[string]any{"Name": name})
		y += internal.RenderText(renderer, fonts.SmallFont, text, theme.HintColor, x+12, y, constants.TextAlignLeft)
	}

	return y + constants.DefaultTitleSpacing
}

func (s *shell) renderActions(sc app.ScreenConfig, x, y, w int32) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	renderer := s.window.Renderer

	if sc.Primary != nil {
		color := theme.AccentColor
		if !s.controller.CanSubmit() {
			color = theme.HintColor
		}
		button := sdl.Rect{X: x, Y: y, W: w, H: buttonHeight}
		fillRect(renderer, color, button)
		labelY := y + (buttonHeight-int32(fonts.MediumFont.Height()))/2
		internal.RenderText(renderer, fonts.MediumFont, sc.Primary.Label, theme.ButtonLabelColor, x+w/2, labelY, constants.TextAlignCenter)
		y += buttonHeight + 8
	}

	if s.gateReason != "" {
		y += internal.RenderText(renderer, fonts.SmallFont, s.gateReason, theme.ErrorColor, x+w/2, y, constants.TextAlignCenter)
	}

	if sc.Secondary != nil {
		internal.RenderText(renderer, fonts.MediumFont, sc.Secondary.Label, theme.AccentColor, x+w/2, y+8, constants.TextAlignCenter)
	}
}

func (s *shell) renderTabBar(width, height int32) {
	c := s.controller
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	renderer := s.window.Renderer

	barHeight := constants.DefaultTabBarHeight
	top := height - barHeight
	fillRect(renderer, theme.SurfaceColor, sdl.Rect{X: 0, Y: top, W: width, H: barHeight})

	tabs := c.Tabs()
	if len(tabs) == 0 {
		return
	}

	slot := width / int32(len(tabs))
	iconSize := int32(constants.DefaultIconSize)
	for i, tab := range tabs {
		color := theme.HintColor
		if tab.Route == c.Route() {
			color = theme.AccentColor
		}
		center := slot*int32(i) + slot/2
		s.renderIcon(tab.Icon, constants.DefaultIconSize, color, center-iconSize/2, top+6)
		internal.RenderText(renderer, fonts.SmallFont, tab.Title, color, center, top+10+iconSize, constants.TextAlignCenter)
	}
}

func (s *shell) renderIcon(ref icons.Ref, size int, tint sdl.Color, x, y int32) {
	texture, err := internal.IconTexture(s.window, ref, size)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to draw icon", "icon", ref, "error", err)
		return
	}
	texture.SetColorMod(tint.R, tint.G, tint.B)
	s.window.Renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: int32(size), H: int32(size)})
}

func fillRect(renderer *sdl.Renderer, color sdl.Color, rect sdl.Rect) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

func drawRect(renderer *sdl.Renderer, color sdl.Color, rect sdl.Rect) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.DrawRect(&rect)
}
