package ui

import (
	"github.com/charmbracelet/bubbles/help"
)

func newHelp(styles Styles) help.Model {
	h := help.New()
	h.ShowAll = false
	applyHelpStyles(&h, styles)
	return h
}

func applyHelpStyles(h *help.Model, styles Styles) {
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpDesc
	h.Styles.Ellipsis = styles.HelpDesc
}

// renderHelp renders the one-line key hint footer.
func (m Model) renderHelp() string {
	h := m.help
	h.Width = m.width
	return h.View(m.keys)
}
