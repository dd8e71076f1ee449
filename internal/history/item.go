package history

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Item 是一条已保存的翻译记录，结构由后端接口决定。
// 客户端只读取与请求删除，不创建也不修改。
type Item struct {
	ID             string    `json:"_id"`
	UserID         string    `json:"userId"`
	OriginalText   string    `json:"originalText"`
	TranslatedText string    `json:"translatedText"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UnmarshalJSON 同时接受 `_id` 与 `id` 作为主键，`_id` 优先。
// createdAt 宽松解析，无法识别时记为零值，不影响其余字段。
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		plain
		AltID     string          `json:"id"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*it = Item(aux.plain)
	if it.ID == "" {
		it.ID = aux.AltID
	}
	it.CreatedAt = parseCreatedAt(aux.CreatedAt)
	return nil
}

// createdAtLayouts 是字符串形式 createdAt 可接受的格式，无时区的按本地时间解释。
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseCreatedAt 接受时间字符串或毫秒时间戳。
func parseCreatedAt(raw json.RawMessage) time.Time {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return time.Time{}
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}
		}
		s = strings.TrimSpace(s)
		for _, layout := range createdAtLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t
			}
		}
		return time.Time{}
	}
	ms, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms))
}

// Remove 返回去掉 id 对应记录后的新切片，其余记录及顺序保持不变。
func Remove(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			continue
		}
		out = append(out, it)
	}
	return out
}
