package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"transhist/internal/i18n"
	"transhist/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// headerView 渲染标题行：标题 + 可见/总条数。
func (m *Model) headerView() string {
	title := titleStyle.Render(m.lang.T(i18n.KeyTitle))
	if m.loading || len(m.items) == 0 {
		return title
	}
	count := fmt.Sprintf("%d", len(m.items))
	if len(m.visible) != len(m.items) {
		count = fmt.Sprintf("%d/%d", len(m.visible), len(m.items))
	}
	return title + " " + faintStyle.Render("("+count+")")
}

// loadingView 渲染 spinner + 文案 + 已等待时长。
func (m *Model) loadingView() string {
	elapsed := m.now().Sub(m.loadStarted)
	if elapsed < 0 {
		elapsed = 0
	}
	line := fmt.Sprintf("%s %s %s", m.spin.View(), m.lang.T(i18n.KeyLoading),
		faintStyle.Render("("+fmtElapsedCompact(uint64(elapsed.Seconds()))+")"))
	return centerBlock(line, m.width, emptyStateHeight)
}

func (m *Model) hintsView() string {
	return faintStyle.Render(render.TruncateToWidth(m.lang.T(i18n.KeyHints), maxInt(m.width, 20)))
}

// fmtElapsedCompact 将秒数格式化为友好字符串。
func fmtElapsedCompact(elapsedSecs uint64) string {
	switch {
	case elapsedSecs < 60:
		return fmt.Sprintf("%ds", elapsedSecs)
	case elapsedSecs < 3600:
		minutes := elapsedSecs / 60
		seconds := elapsedSecs % 60
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		hours := elapsedSecs / 3600
		minutes := (elapsedSecs % 3600) / 60
		seconds := elapsedSecs % 60
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
	}
}

const emptyStateHeight = 5

// centerBlock 将单行文本放在固定高度区域的中央。
func centerBlock(text string, width, height int) string {
	if width <= 0 {
		width = 80
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(text, "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// requestContext 为单次请求构造超时上下文；timeout<=0 表示不设超时。
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
