package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(fs afero.Fs, path string, maxLines int) ([]string, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	file, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Record is one parsed JSON log line.
type Record struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   map[string]any
}

// Parse decodes a slog JSON line. ok is false for anything else.
func Parse(line string) (Record, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Record{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Record{}, false
	}

	rec := Record{Attrs: map[string]any{}}
	for key, value := range raw {
		switch key {
		case "time":
			if s, ok := value.(string); ok {
				rec.Time, _ = time.Parse(time.RFC3339Nano, s)
			}
		case "level":
			rec.Level, _ = value.(string)
		case "msg":
			rec.Message, _ = value.(string)
		default:
			rec.Attrs[key] = value
		}
	}
	return rec, true
}

// FormatLine renders a JSON log line as
// "2006-01-02 15:04:05 LEVEL message key=value ...", attributes sorted by key.
// Lines that are not JSON records are returned unchanged.
func FormatLine(line string) string {
	rec, ok := Parse(line)
	if !ok {
		return line
	}

	var b strings.Builder
	if !rec.Time.IsZero() {
		b.WriteString(rec.Time.Local().Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	if rec.Level != "" {
		fmt.Fprintf(&b, "%-5s ", rec.Level)
	}
	b.WriteString(rec.Message)

	keys := make([]string, 0, len(rec.Attrs))
	for key := range rec.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%v", key, rec.Attrs[key])
	}
	return b.String()
}

// FormatLines applies FormatLine to each line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatLine(line)
	}
	return out
}
