package tui

import "transhist/internal/history"

// historyLoadedMsg 携带一次列表请求的结果；gen 用于丢弃被后续请求取代的旧结果。
type historyLoadedMsg struct {
	gen   int
	items []history.Item
	err   error
}

type historyDeletedMsg struct {
	id  string
	err error
}

type toastExpiredMsg struct {
	seq int
}

type clipboardResultMsg struct {
	err error
}

// CredentialsChangedMsg 通知视图凭证已变化：替换 API 并重新拉取列表。
type CredentialsChangedMsg struct {
	API HistoryAPI
}

// credentialsFailedMsg 表示重新加载凭证失败。
type credentialsFailedMsg struct {
	err error
}

// ItemSelectedMsg 在用户选中某条记录时发出。
type ItemSelectedMsg struct {
	Item history.Item
}
