package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestRename_Plain(t *testing.T) {
	var buf bytes.Buffer
	Rename(&buf, "a.txt", "a{x}.txt", false)

	if got := buf.String(); got != "a.txt -> a{x}.txt\n" {
		t.Errorf("Rename output = %q", got)
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		null  bool
		want  string
	}{
		{"newline terminated", []string{"a", "b"}, false, "a\nb\n"},
		{"single", []string{"a"}, false, "a\n"},
		{"null separated no trailer", []string{"a", "b"}, true, "a\x00b"},
		{"empty writes nothing", nil, false, ""},
		{"empty null writes nothing", nil, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Paths(&buf, tc.paths, tc.null)
			if got := buf.String(); got != tc.want {
				t.Errorf("Paths(%v, null=%v) = %q, want %q", tc.paths, tc.null, got, tc.want)
			}
		})
	}
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	Tree(&buf, "photos", []string{
		"photos/2024/beach{holiday}.jpg",
		"photos/2024/city{holiday}.jpg",
		"photos/top{holiday}.jpg",
	})
	out := buf.String()

	if !strings.HasPrefix(out, "photos\n") {
		t.Errorf("tree should start with the root line, got %q", out)
	}
	for _, want := range []string{"2024/", "beach{holiday}.jpg", "└── top{holiday}.jpg"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
	// Files under 2024 are indented beneath it
	if !strings.Contains(out, "│   ├── beach{holiday}.jpg") {
		t.Errorf("nested file not indented under its directory:\n%s", out)
	}
}

func TestTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	Tree(&buf, "photos", nil)
	if buf.Len() != 0 {
		t.Errorf("empty tree should write nothing, got %q", buf.String())
	}
}
