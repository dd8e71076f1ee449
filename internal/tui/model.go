package tui

import (
	"context"
	"time"

	"transhist/internal/history"
	"transhist/internal/i18n"
	"transhist/internal/logger"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryAPI 抽象后端读写能力，避免 TUI 与 HTTP 实现耦合。
type HistoryAPI interface {
	List(ctx context.Context) ([]history.Item, error)
	Delete(ctx context.Context, id string) error
}

type Options struct {
	API      HistoryAPI
	Language string
	// Timeout 为单次请求的超时，<=0 不设超时。
	Timeout time.Duration
	// ReloadAPI 重新读取凭证并返回新的 API（ctrl+r）；nil 时快捷键无效。
	ReloadAPI func() (HistoryAPI, error)
	// Clipboard 写入系统剪贴板，默认使用 atotto/clipboard。
	Clipboard func(string) error
	Clock     func() time.Time
	ToastTTL  time.Duration
	// Inline 为 true 时不使用 alt screen，便于复制输出。
	Inline bool
}

type Model struct {
	api       HistoryAPI
	reloadAPI func() (HistoryAPI, error)
	lang      i18n.Language
	keys      KeyMap
	log       *logger.LogEntry
	timeout   time.Duration
	copyText  func(string) error
	clock     func() time.Time

	items   []history.Item
	visible []int
	cursor  int

	loading     bool
	loadGen     int
	loadStarted time.Time

	deleteID string
	deleting bool

	toast    *toast
	toastSeq int
	toastTTL time.Duration

	filter    textinput.Model
	filtering bool

	selected *history.Item

	spin       spinner.Model
	viewport   viewport.Model
	rowOffsets []int
	rowHeights []int
	width      int
	height     int
}

const chromeHeight = 6

func New(opts Options) *Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	lang := i18n.Normalize(opts.Language)
	fi := textinput.New()
	fi.Prompt = lang.T(i18n.KeyFilterPrompt)
	fi.CharLimit = 200

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	m := &Model{
		api:       opts.API,
		reloadAPI: opts.ReloadAPI,
		lang:      lang,
		keys:      DefaultKeyMap(),
		log:       logger.Named("tui"),
		timeout:   opts.Timeout,
		copyText:  copyText,
		clock:     clock,
		toastTTL:  opts.ToastTTL,
		filter:    fi,
		spin:      spin,
		viewport:  viewport.New(80, 24-chromeHeight),
		width:     80,
		height:    24,
		loading:   true,
	}
	return m
}

// Init 挂载时立即拉取列表。
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startFetch())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.finish(cmds...)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		return m.finish(cmds...)
	case historyLoadedMsg:
		cmds = append(cmds, m.handleLoaded(msg))
		return m.finish(cmds...)
	case historyDeletedMsg:
		cmds = append(cmds, m.handleDeleted(msg))
		return m.finish(cmds...)
	case CredentialsChangedMsg:
		if msg.API != nil {
			m.api = msg.API
		}
		m.log.Info("credentials changed; refetching history")
		cmds = append(cmds, m.startFetch())
		return m.finish(cmds...)
	case credentialsFailedMsg:
		m.log.WithError(msg.err).Error("reload credentials failed")
		cmds = append(cmds, m.showToast(toastDestructive, m.lang.T(i18n.KeyErrorTitle), m.lang.T(i18n.KeyLoadFailed)))
		return m.finish(cmds...)
	case ItemSelectedMsg:
		cmds = append(cmds, m.handleSelected(msg.Item))
		return m.finish(cmds...)
	case clipboardResultMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("copy translation to clipboard failed")
			return m.finish(cmds...)
		}
		cmds = append(cmds, m.showToast(toastDefault, m.lang.T(i18n.KeySuccessTitle), m.lang.T(i18n.KeyCopied)))
		return m.finish(cmds...)
	case toastExpiredMsg:
		m.expireToast(msg.seq)
		return m.finish(cmds...)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		return m.finish(cmds...)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
		return m.finish(cmds...)
	}
	return m.finish(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.deleteID != "" {
		return m.handleDialogKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	if m.loading {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.startFetch()
	case key.Matches(msg, m.keys.Reload):
		return m.reloadCredentials()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.visible))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.visible))
	case key.Matches(msg, m.keys.Delete):
		m.openDeleteDialog()
	case key.Matches(msg, m.keys.Filter):
		if len(m.items) > 0 {
			return m.startFiltering()
		}
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.currentItem(); ok {
			return func() tea.Msg { return ItemSelectedMsg{Item: item} }
		}
	}
	return nil
}

func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	return m, tea.Batch(cmds...)
}

// startFetch 发起一次列表请求并关闭尚未确认的删除框。
// 不会中止仍在途的旧请求，旧结果到达时按 gen 丢弃。
func (m *Model) startFetch() tea.Cmd {
	m.loadGen++
	gen := m.loadGen
	m.loading = true
	if !m.deleting {
		m.deleteID = ""
	}
	m.loadStarted = m.now()
	api := m.api
	timeout := m.timeout
	return func() tea.Msg {
		if api == nil {
			return historyLoadedMsg{gen: gen, err: errNoAPI}
		}
		ctx, cancel := requestContext(timeout)
		defer cancel()
		items, err := api.List(ctx)
		return historyLoadedMsg{gen: gen, items: items, err: err}
	}
}

// handleLoaded 成功时整体替换本地列表；失败时保留原列表并提示。
func (m *Model) handleLoaded(msg historyLoadedMsg) tea.Cmd {
	if msg.gen != m.loadGen {
		m.log.WithField("gen", msg.gen).Debug("dropping superseded history result")
		return nil
	}
	m.loading = false
	if msg.err != nil {
		m.log.WithError(msg.err).Error("fetch history failed")
		return m.showToast(toastDestructive, m.lang.T(i18n.KeyErrorTitle), m.lang.T(i18n.KeyLoadFailed))
	}
	m.items = append([]history.Item(nil), msg.items...)
	m.log.WithField("count", len(m.items)).Info("history loaded")
	if _, ok := m.itemByID(m.deleteID); !ok && !m.deleting {
		m.deleteID = ""
	}
	m.applyFilter()
	return nil
}

func (m *Model) reloadCredentials() tea.Cmd {
	if m.reloadAPI == nil {
		return nil
	}
	reload := m.reloadAPI
	return func() tea.Msg {
		api, err := reload()
		if err != nil {
			return credentialsFailedMsg{err: err}
		}
		return CredentialsChangedMsg{API: api}
	}
}

// handleSelected 记录选中项并把译文复制到剪贴板；复制失败不影响选中。
func (m *Model) handleSelected(item history.Item) tea.Cmd {
	selected := item
	m.selected = &selected
	copyText := m.copyText
	text := item.TranslatedText
	return func() tea.Msg {
		return clipboardResultMsg{err: copyText(text)}
	}
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.viewport.Width = m.width
	m.viewport.Height = maxInt(3, m.height-chromeHeight)
	m.filter.Width = maxInt(10, m.width-4)
	m.refreshRows()
}

func (m *Model) View() string {
	sections := []string{m.headerView()}

	switch {
	case m.loading:
		sections = append(sections, m.loadingView())
	case len(m.items) == 0:
		sections = append(sections, centerBlock(faintStyle.Render(m.lang.T(i18n.KeyEmpty)), m.width, emptyStateHeight))
	case len(m.visible) == 0:
		sections = append(sections, centerBlock(faintStyle.Render(m.lang.T(i18n.KeyNoMatches)), m.width, emptyStateHeight))
	default:
		sections = append(sections, m.viewport.View())
	}

	if m.filtering || m.filter.Value() != "" {
		sections = append(sections, m.filter.View())
	}
	if dialog := m.dialogView(m.width); dialog != "" {
		sections = append(sections, dialog)
	}
	if t := m.toastView(m.width); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, m.hintsView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Items 返回当前本地列表的副本。
func (m *Model) Items() []history.Item {
	return append([]history.Item(nil), m.items...)
}

// Selected 返回最近一次选中的记录。
func (m *Model) Selected() (history.Item, bool) {
	if m.selected == nil {
		return history.Item{}, false
	}
	return *m.selected, true
}

func (m *Model) currentItem() (history.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return history.Item{}, false
	}
	idx := m.visible[m.cursor]
	if idx < 0 || idx >= len(m.items) {
		return history.Item{}, false
	}
	return m.items[idx], true
}

func (m *Model) itemByID(id string) (history.Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return history.Item{}, false
}

func (m *Model) now() time.Time {
	if m.clock != nil {
		return m.clock()
	}
	return time.Now()
}
