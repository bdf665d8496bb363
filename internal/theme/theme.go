// Package theme holds the editor palette and the per-type accent colors.
package theme

import (
	"enginegui/internal/draw"
	"enginegui/internal/gui"
)

// Indigo dark palette.
var (
	BgDark    = draw.RGBA(10, 10, 15, 255)
	BgPanel   = draw.RGBA(18, 18, 24, 245)
	BgElement = draw.RGBA(28, 28, 38, 255)
	BgHover   = draw.RGBA(38, 38, 52, 255)
	BgActive  = draw.RGBA(48, 48, 65, 255)

	Accent       = draw.RGBA(108, 99, 255, 255)
	AccentLight  = draw.RGBA(167, 139, 250, 255)
	AccentHover  = draw.RGBA(130, 120, 255, 255)
	AccentActive = draw.RGBA(90, 80, 220, 255)

	TextPrimary   = draw.RGBA(255, 255, 255, 255)
	TextSecondary = draw.RGBA(200, 200, 208, 255)
	TextMuted     = draw.RGBA(119, 119, 119, 255)

	Border      = draw.RGBA(50, 50, 65, 255)
	BorderHover = draw.RGBA(108, 99, 255, 100)
	Separator   = draw.RGBA(40, 40, 55, 255)

	Selection = draw.RGBA(108, 99, 255, 60)
)

// Style returns the GUI style in the editor palette.
func Style() gui.Style {
	st := gui.DefaultStyle()
	st.Text = TextSecondary
	st.TextDisabled = TextMuted
	st.FieldBg = BgElement
	st.FieldBorder = Border
	st.FieldFocused = Accent
	st.Selection = Selection.WithAlpha(90)
	st.Caret = TextPrimary
	st.ButtonBg = BgElement
	st.ButtonHovered = BgHover
	st.ButtonActive = AccentActive
	st.ScrollThumb = BgActive
	st.ScrollThumbHovered = AccentHover.WithAlpha(160)
	st.ScrollThumbActive = Accent
	return st
}
