package i18n

import "strings"

// Language 描述界面使用的语言。
// 使用简短的语言代码（如 zh、en），便于在配置中传递。
type Language string

const (
	LanguageChinese Language = "zh"
	LanguageEnglish Language = "en"

	// DefaultLanguage 未配置时的默认语言。
	DefaultLanguage = LanguageEnglish
)

// Normalize 将用户输入的语言值转换为统一的语言代码。
// 空字符串回退到默认语言，未知值原样保留。
func Normalize(value string) Language {
	lang := strings.ToLower(strings.TrimSpace(value))
	switch lang {
	case "":
		return DefaultLanguage
	case "zh", "zh-cn", "zh_cn", "zh-hans", "cn", "chinese", "中文":
		return LanguageChinese
	case "en", "en-us", "en_us", "en-gb", "english":
		return LanguageEnglish
	default:
		return Language(lang)
	}
}

// supported 返回有完整文案的语言，其余一律按英文渲染。
func (l Language) supported() Language {
	if Normalize(string(l)) == LanguageChinese {
		return LanguageChinese
	}
	return LanguageEnglish
}
