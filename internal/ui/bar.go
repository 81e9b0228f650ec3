package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/amenu/internal/picker"
)

const (
	promptText     = "> "
	chipGap        = " "
	minInputWidth  = 5
	inputTrailroom = 1
)

// renderBar draws the prompt, the query box and the candidate chips on a
// single line no wider than width. A zero width means unknown, and every
// chip is drawn.
func (m Model) renderBar(rm picker.RenderModel) string {
	styles := m.styles

	left := styles.Prompt.Render(promptText) + m.input.View()
	if len(rm.Items) == 0 {
		return padBar(styles, left, m.width)
	}

	budget := 0
	if m.width > 0 {
		budget = m.width - lipgloss.Width(left) - lipgloss.Width(chipGap)
	}
	chips := layoutChips(styles, rm.Items, budget)
	line := left + styles.Bar.Render(chipGap) + chips
	return padBar(styles, line, m.width)
}

func padBar(styles Styles, line string, width int) string {
	if width <= 0 {
		return line
	}
	if gap := width - lipgloss.Width(line); gap > 0 {
		line += styles.Bar.Render(strings.Repeat(" ", gap))
	}
	return line
}

// layoutChips renders as many chips as fit in budget cells. The highlighted
// chip is always drawn; chips left out are counted in a trailing "+N".
func layoutChips(styles Styles, items []picker.Item, budget int) string {
	selected, next := highlightIndexes(items)

	rendered := make([]string, len(items))
	for i, item := range items {
		style := styles.Chip
		switch i {
		case selected:
			style = styles.Selected
		case next:
			style = styles.NextChip
		}
		rendered[i] = style.Render(item.Name)
	}

	if budget <= 0 {
		return strings.Join(rendered, styles.Bar.Render(chipGap))
	}

	start := 0
	if selected > 0 && !fits(rendered[:selected+1], budget-overflowWidth(len(items))) {
		start = selected
	}

	var (
		b     strings.Builder
		used  int
		shown int
	)
	for i := start; i < len(rendered); i++ {
		w := lipgloss.Width(rendered[i])
		if shown > 0 {
			w += lipgloss.Width(chipGap)
		}
		hidden := len(rendered) - i - 1 + start
		reserve := 0
		if hidden > 0 {
			reserve = overflowWidth(hidden)
		}
		if shown > 0 && used+w+reserve > budget {
			break
		}
		if shown > 0 {
			b.WriteString(styles.Bar.Render(chipGap))
		}
		b.WriteString(rendered[i])
		used += w
		shown++
	}

	if hidden := len(rendered) - shown; hidden > 0 {
		b.WriteString(styles.Overflow.Render(fmt.Sprintf("%s+%d", chipGap, hidden)))
	}
	return b.String()
}

func highlightIndexes(items []picker.Item) (selected, next int) {
	selected, next = -1, -1
	for i, item := range items {
		if item.Highlighted {
			selected = i
			break
		}
	}
	if selected >= 0 && len(items) > 1 {
		next = (selected + 1) % len(items)
	}
	return selected, next
}

func fits(chips []string, budget int) bool {
	total := 0
	for i, c := range chips {
		if i > 0 {
			total += lipgloss.Width(chipGap)
		}
		total += lipgloss.Width(c)
	}
	return total <= budget
}

func overflowWidth(hidden int) int {
	return lipgloss.Width(fmt.Sprintf("%s+%d", chipGap, hidden))
}
