package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis 标记被截断的行尾。
const Ellipsis = "…"

// WrapText 按显示宽度做词级别换行，CJK 等宽字符按 2 列计算。
func WrapText(text string, width int) []string {
	return wrapText(text, width)
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, width)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

func wrapLine(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	out := []string{}
	current := ""
	for _, word := range strings.Fields(line) {
		if current == "" {
			if runewidth.StringWidth(word) > width {
				out = append(out, breakLongWord(word, width)...)
				continue
			}
			current = word
			continue
		}
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width {
			current += " " + word
			continue
		}
		out = append(out, current)
		if runewidth.StringWidth(word) > width {
			out = append(out, breakLongWord(word, width)...)
			current = ""
			continue
		}
		current = word
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		return []string{line}
	}
	return out
}

func breakLongWord(word string, width int) []string {
	if width <= 0 {
		return []string{word}
	}
	out := []string{}
	current := []rune{}
	w := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
			w = 0
		}
		current = append(current, r)
		w += rw
	}
	if len(current) > 0 {
		out = append(out, string(current))
	}
	return out
}

// ClampLines 换行后最多保留 maxLines 行，超出时最后一行以省略号结尾。
func ClampLines(text string, width, maxLines int) []string {
	lines := wrapText(strings.TrimSpace(text), width)
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	out := append([]string{}, lines[:maxLines]...)
	last := out[maxLines-1]
	if width > 0 {
		last = TruncateToWidth(last, width-runewidth.StringWidth(Ellipsis))
	}
	out[maxLines-1] = last + Ellipsis
	return out
}

// TruncateToWidth 截断到不超过 width 列。
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := 0
	out := make([]rune, 0, len(text))
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}
