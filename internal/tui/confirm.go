package tui

import (
	"errors"
	"strings"

	"transhist/internal/history"
	"transhist/internal/i18n"
	"transhist/internal/tui/render"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errNoAPI = errors.New("history api not configured")

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2).
	BorderForeground(lipgloss.Color("#E5484D"))

// openDeleteDialog 为光标所在记录打开确认框；同一时刻至多一个。
func (m *Model) openDeleteDialog() {
	if m.loading || m.deleteID != "" {
		return
	}
	item, ok := m.currentItem()
	if !ok {
		return
	}
	m.deleteID = item.ID
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		return m.confirmDelete()
	case key.Matches(msg, m.keys.Cancel):
		// 请求发出后不再允许取消，结果返回时统一关闭。
		if !m.deleting {
			m.deleteID = ""
		}
	}
	return nil
}

func (m *Model) confirmDelete() tea.Cmd {
	if m.deleteID == "" || m.deleting || m.loading {
		return nil
	}
	m.deleting = true
	id := m.deleteID
	api := m.api
	timeout := m.timeout
	return func() tea.Msg {
		if api == nil {
			return historyDeletedMsg{id: id, err: errNoAPI}
		}
		ctx, cancel := requestContext(timeout)
		defer cancel()
		return historyDeletedMsg{id: id, err: api.Delete(ctx, id)}
	}
}

// handleDeleted 成功时按 id 移除本地记录，失败时列表保持不变；两种情况都会关闭确认框。
func (m *Model) handleDeleted(msg historyDeletedMsg) tea.Cmd {
	m.deleting = false
	m.deleteID = ""
	if msg.err != nil {
		m.log.WithError(msg.err).WithField("id", msg.id).Error("delete history item failed")
		return m.showToast(toastDestructive, m.lang.T(i18n.KeyErrorTitle), m.lang.T(i18n.KeyDeleteFailed))
	}
	m.items = history.Remove(m.items, msg.id)
	m.applyFilter()
	m.log.WithField("id", msg.id).Info("deleted history item")
	return m.showToast(toastDefault, m.lang.T(i18n.KeySuccessTitle), m.lang.T(i18n.KeyDeleted))
}

func (m *Model) dialogView(width int) string {
	if m.deleteID == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	contentWidth := maxInt(20, minInt(width-6, 72))

	titleStyle := lipgloss.NewStyle().Bold(true)
	hintStyle := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	lines := []string{titleStyle.Render(m.lang.T(i18n.KeyDialogTitle)), ""}
	lines = append(lines, render.WrapText(m.lang.T(i18n.KeyDialogBody), contentWidth)...)
	if item, ok := m.itemByID(m.deleteID); ok {
		lines = append(lines, "")
		for _, line := range render.ClampLines(item.OriginalText, contentWidth-2, 1) {
			lines = append(lines, faint.Render("  "+line))
		}
	}
	lines = append(lines, "")
	if m.deleting {
		lines = append(lines, hintStyle.Render(m.spin.View()+" "+m.lang.T(i18n.KeyDialogDeleting)))
	} else {
		lines = append(lines, hintStyle.Render(m.lang.T(i18n.KeyDialogConfirm)+" • "+m.lang.T(i18n.KeyDialogCancel)))
	}
	return dialogStyle.Render(lipgloss.NewStyle().Width(contentWidth).Render(strings.Join(lines, "\n")))
}
