package tui

import (
	"errors"

	"transhist/internal/history"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 运行后的必要信息。
type Result struct {
	Selected *history.Item
	Items    []history.Item
}

// Run 封装 Bubble Tea 入口，返回最终的 UI 结果。
func Run(opts Options) (Result, error) {
	programOptions := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !opts.Inline {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	program := tea.NewProgram(New(opts), programOptions...)
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	res := Result{Items: tuiModel.Items()}
	if item, ok := tuiModel.Selected(); ok {
		res.Selected = &item
	}
	return res, nil
}
