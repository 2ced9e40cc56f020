package logtail

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/logs/test.log"

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := afero.WriteFile(fs, logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(fs, logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(afero.NewMemMapFs(), "/nope.log", 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestFormatLine(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.Local)
	jsonLine := fmt.Sprintf(`{"time":%q,"level":"INFO","msg":"search resolved","query":"alien","page":2}`,
		ts.Format(time.RFC3339Nano))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json record",
			input:    jsonLine,
			expected: "2026-03-04 05:06:07 INFO  search resolved page=2 query=alien",
		},
		{
			name:     "no time",
			input:    `{"level":"WARN","msg":"failed to save watchlist","error":"disk full"}`,
			expected: "WARN  failed to save watchlist error=disk full",
		},
		{
			name:     "plain text",
			input:    "not json at all",
			expected: "not json at all",
		},
		{
			name:     "broken json",
			input:    `{"msg":`,
			expected: `{"msg":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLine(tt.input); got != tt.expected {
				t.Errorf("FormatLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatLines(t *testing.T) {
	got := FormatLines([]string{"a", `{"msg":"b"}`})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("FormatLines() = %v", got)
	}
}
