package tui

import (
	"strings"

	"transhist/internal/history"
	"transhist/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

const rowTextLines = 2

var (
	rowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E6472")).
			Padding(0, 1)
	activeRowStyle  = rowStyle.BorderForeground(lipgloss.Color("#7D56F4"))
	originalStyle   = lipgloss.NewStyle().Bold(true)
	translatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A4AE"))
)

// renderRow 渲染一条记录：原文、译文各最多两行，末行为相对时间。
func (m *Model) renderRow(item history.Item, active bool, width int) string {
	inner := maxInt(width-4, 10)
	lines := make([]string, 0, rowTextLines*2+1)
	for _, line := range render.ClampLines(item.OriginalText, inner, rowTextLines) {
		lines = append(lines, originalStyle.Render(line))
	}
	for _, line := range render.ClampLines(item.TranslatedText, inner, rowTextLines) {
		lines = append(lines, translatedStyle.Render(line))
	}
	lines = append(lines, faintStyle.Render(m.lang.Ago(item.CreatedAt, m.now())))

	style := rowStyle
	if active {
		style = activeRowStyle
	}
	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// refreshRows 重建视口内容并记录每行的起始位置，用于光标跟随滚动。
func (m *Model) refreshRows() {
	m.rowOffsets = m.rowOffsets[:0]
	m.rowHeights = m.rowHeights[:0]
	if len(m.visible) == 0 {
		m.viewport.SetContent("")
		return
	}
	rows := make([]string, 0, len(m.visible))
	offset := 0
	for pos, idx := range m.visible {
		row := m.renderRow(m.items[idx], pos == m.cursor, m.width)
		h := lipgloss.Height(row)
		m.rowOffsets = append(m.rowOffsets, offset)
		m.rowHeights = append(m.rowHeights, h)
		offset += h
		rows = append(rows, row)
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < 0 || m.cursor >= len(m.rowOffsets) {
		return
	}
	top := m.rowOffsets[m.cursor]
	bottom := top + m.rowHeights[m.cursor]
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor += delta
	m.clampCursor()
	m.refreshRows()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// pageSize 估算一屏能容纳的行数，至少为 1。
func (m *Model) pageSize() int {
	if len(m.rowHeights) == 0 || m.viewport.Height <= 0 {
		return 1
	}
	return maxInt(1, m.viewport.Height/m.rowHeights[0])
}
