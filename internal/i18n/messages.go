package i18n

import "fmt"

// Key 标识一条界面文案。
type Key string

const (
	KeyLoading        Key = "loading"
	KeyEmpty          Key = "empty"
	KeyTitle          Key = "title"
	KeyErrorTitle     Key = "error_title"
	KeySuccessTitle   Key = "success_title"
	KeyLoadFailed     Key = "load_failed"
	KeyDeleteFailed   Key = "delete_failed"
	KeyDeleted        Key = "deleted"
	KeyCopied         Key = "copied"
	KeyDialogTitle    Key = "dialog_title"
	KeyDialogBody     Key = "dialog_body"
	KeyDialogConfirm  Key = "dialog_confirm"
	KeyDialogCancel   Key = "dialog_cancel"
	KeyDialogDeleting Key = "dialog_deleting"
	KeyFilterPrompt   Key = "filter_prompt"
	KeyNoMatches      Key = "no_matches"
	KeyHints          Key = "hints"
	KeyUnknownTime    Key = "unknown_time"

	// 命令行输出，带 fmt 占位符的通过 Tf 渲染。
	KeyExported        Key = "exported"
	KeyEnterToken      Key = "enter_token"
	KeyTokenSaved      Key = "token_saved"
	KeyLoggedOut       Key = "logged_out"
	KeyNotLoggedIn     Key = "not_logged_in"
	KeyTokenConfigured Key = "token_configured"
	KeyTokenOwner      Key = "token_owner"
	KeyTokenExpires    Key = "token_expires"
	KeyTokenExpired    Key = "token_expired"
)

var catalog = map[Language]map[Key]string{
	LanguageEnglish: {
		KeyLoading:         "Loading translation history…",
		KeyEmpty:           "No translation history yet",
		KeyTitle:           "Translation History",
		KeyErrorTitle:      "Error",
		KeySuccessTitle:    "Success",
		KeyLoadFailed:      "Failed to load translation history",
		KeyDeleteFailed:    "Failed to delete history item",
		KeyDeleted:         "Translation history item deleted",
		KeyCopied:          "Translation copied to clipboard",
		KeyDialogTitle:     "Delete Translation History",
		KeyDialogBody:      "Are you sure you want to delete this translation history item? This action cannot be undone.",
		KeyDialogConfirm:   "[y] Delete",
		KeyDialogCancel:    "[n] Cancel",
		KeyDialogDeleting:  "Deleting...",
		KeyFilterPrompt:    "/ ",
		KeyNoMatches:       "No matching translations",
		KeyHints:           "↑/↓ move • enter select • d delete • / filter • r refresh • q quit",
		KeyUnknownTime:     "unknown time",
		KeyExported:        "Exported %d items to %s",
		KeyEnterToken:      "Enter token: ",
		KeyTokenSaved:      "Token saved.",
		KeyLoggedOut:       "Logged out and cleared stored token.",
		KeyNotLoggedIn:     "not logged in",
		KeyTokenConfigured: "token configured",
		KeyTokenOwner:      " for %s",
		KeyTokenExpires:    " (expires %s)",
		KeyTokenExpired:    " (expired %s)",
	},
	LanguageChinese: {
		KeyLoading:         "正在加载翻译历史…",
		KeyEmpty:           "暂无翻译历史",
		KeyTitle:           "翻译历史",
		KeyErrorTitle:      "错误",
		KeySuccessTitle:    "成功",
		KeyLoadFailed:      "加载翻译历史失败",
		KeyDeleteFailed:    "删除历史记录失败",
		KeyDeleted:         "已删除该条翻译历史",
		KeyCopied:          "译文已复制到剪贴板",
		KeyDialogTitle:     "删除翻译历史",
		KeyDialogBody:      "确定要删除这条翻译历史吗？此操作无法撤销。",
		KeyDialogConfirm:   "[y] 删除",
		KeyDialogCancel:    "[n] 取消",
		KeyDialogDeleting:  "正在删除...",
		KeyFilterPrompt:    "/ ",
		KeyNoMatches:       "没有匹配的翻译",
		KeyHints:           "↑/↓ 移动 • enter 选择 • d 删除 • / 过滤 • r 刷新 • q 退出",
		KeyUnknownTime:     "时间未知",
		KeyExported:        "已导出 %d 条记录到 %s",
		KeyEnterToken:      "请输入 token：",
		KeyTokenSaved:      "Token 已保存。",
		KeyLoggedOut:       "已退出登录并清除保存的 token。",
		KeyNotLoggedIn:     "未登录",
		KeyTokenConfigured: "已配置 token",
		KeyTokenOwner:      "（用户 %s）",
		KeyTokenExpires:    "（%s过期）",
		KeyTokenExpired:    "（已于%s过期）",
	},
}

// T 返回指定语言的文案；缺失时回退英文，再缺失返回 key 本身。
func (l Language) T(key Key) string {
	if msg, ok := catalog[l.supported()][key]; ok {
		return msg
	}
	if msg, ok := catalog[LanguageEnglish][key]; ok {
		return msg
	}
	return string(key)
}

// Tf 按 fmt 规则填充文案中的占位符。
func (l Language) Tf(key Key, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}
