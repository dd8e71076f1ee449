package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultToastTTL = 3 * time.Second

type toastVariant int

const (
	toastDefault toastVariant = iota
	toastDestructive
)

type toast struct {
	variant toastVariant
	title   string
	body    string
	seq     int
}

var (
	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E6472")).
			Padding(0, 1)
	destructiveToastStyle = toastStyle.
				BorderForeground(lipgloss.Color("#E5484D")).
				Foreground(lipgloss.Color("#E5484D"))
)

// showToast 替换当前通知，并在 TTL 后发出过期消息；
// 只有序号仍匹配时才清除，避免旧计时器擦掉新通知。
func (m *Model) showToast(variant toastVariant, title, body string) tea.Cmd {
	m.toastSeq++
	seq := m.toastSeq
	m.toast = &toast{variant: variant, title: title, body: body, seq: seq}
	ttl := m.toastTTL
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) expireToast(seq int) {
	if m.toast != nil && m.toast.seq == seq {
		m.toast = nil
	}
}

func (m *Model) toastView(width int) string {
	if m.toast == nil {
		return ""
	}
	style := toastStyle
	if m.toast.variant == toastDestructive {
		style = destructiveToastStyle
	}
	text := lipgloss.NewStyle().Bold(true).Render(m.toast.title)
	if m.toast.body != "" {
		text += "  " + m.toast.body
	}
	if width > 4 {
		style = style.MaxWidth(width)
	}
	return style.Render(text)
}
