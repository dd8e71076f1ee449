package tui

import (
	"sort"
	"strings"

	"transhist/internal/history"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// filterIndexes 返回匹配 query 的记录下标，保持原列表顺序；空 query 返回全部。
func filterIndexes(items []history.Item, query string) []int {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	out := make([]int, 0, len(items))
	if trimmed == "" {
		for i := range items {
			out = append(out, i)
		}
		return out
	}
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = strings.ToLower(it.OriginalText + " " + it.TranslatedText)
	}
	for _, res := range fuzzy.Find(trimmed, keys) {
		out = append(out, res.Index)
	}
	sort.Ints(out)
	return out
}

// applyFilter 重新计算可见行；光标优先跟随原来那条记录，找不到时保持原位置。
func (m *Model) applyFilter() {
	prevID := ""
	if item, ok := m.currentItem(); ok {
		prevID = item.ID
	}
	m.visible = filterIndexes(m.items, m.filter.Value())
	for pos, idx := range m.visible {
		if prevID != "" && m.items[idx].ID == prevID {
			m.cursor = pos
			break
		}
	}
	m.clampCursor()
	m.refreshRows()
}

func (m *Model) startFiltering() tea.Cmd {
	m.filtering = true
	return m.filter.Focus()
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case msg.String() == "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return nil
	case key.Matches(msg, m.keys.Select):
		m.filtering = false
		m.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return cmd
}
