package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Archive 将翻译历史导出为 JSONL 文件（每行一条 Item）。
type Archive struct {
	Path string
}

func (a *Archive) ensureDir() error {
	if a == nil || strings.TrimSpace(a.Path) == "" {
		return errors.New("archive path is empty")
	}
	return os.MkdirAll(filepath.Dir(a.Path), 0o755)
}

// Write 覆盖写入全部记录。
func (a *Archive) Write(items []Item) error {
	if a == nil {
		return errors.New("archive is nil")
	}
	if err := a.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(a.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := WriteJSONL(f, items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load 读取归档；文件不存在时返回空结果。
func (a *Archive) Load() ([]Item, error) {
	if a == nil {
		return nil, errors.New("archive is nil")
	}
	if strings.TrimSpace(a.Path) == "" {
		return nil, errors.New("archive path is empty")
	}
	f, err := os.Open(a.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ReadJSONL(f)
}

func WriteJSONL(w io.Writer, items []Item) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadJSONL 跳过空行、无法解析的行以及缺少 id 的记录。
func ReadJSONL(r io.Reader) ([]Item, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var out []Item
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var it Item
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			continue
		}
		if strings.TrimSpace(it.ID) == "" {
			continue
		}
		out = append(out, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
