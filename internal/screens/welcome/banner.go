package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗███████╗████████╗██████╗ ██╗ ██████╗██╗  ██╗
 ██║     ██╔════╝██╔════╝╚══██╔══╝██╔══██╗██║██╔════╝██║ ██╔╝
 ██║     █████╗  █████╗     ██║   ██████╔╝██║██║     █████╔╝
 ██║     ██╔══╝  ██╔══╝     ██║   ██╔═══╝ ██║██║     ██╔═██╗
 ███████╗███████╗███████╗   ██║   ██║     ██║╚██████╗██║  ██╗
 ╚══════╝╚══════╝╚══════╝   ╚═╝   ╚═╝     ╚═╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "L E E T P I C K"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 62

// RenderBanner returns the LEETPICK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
