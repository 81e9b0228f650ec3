package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/amenu/internal/picker"
)

// Run starts the Bubble Tea program and blocks until the picker terminates.
// A cancelled context ends the picker as a cancel.
func Run(ctx context.Context, opts Options, extra ...tea.ProgramOption) (picker.Termination, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	model := New(opts)
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	progOpts = append(progOpts, extra...)

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			model.ctrl.Dispatch(picker.CancelEvent{})
			term, _ := model.ctrl.Termination()
			return term, nil
		}
		return picker.Termination{}, fmt.Errorf("run ui: %w", err)
	}

	if m, ok := final.(Model); ok {
		if term, done := m.Termination(); done {
			return term, nil
		}
	}
	// Program ended without a commit or cancel (e.g. the input closed).
	model.ctrl.Dispatch(picker.CancelEvent{})
	term, _ := model.ctrl.Termination()
	return term, nil
}
