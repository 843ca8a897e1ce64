package find

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		"zeta{draft}.txt",
		"alpha{draft}{v2}.txt",
		"plain.txt",
		"other{final}.txt",
		".hidden{draft}.txt",
		filepath.Join("sub", "nested{draft}.md"),
	}
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	return root
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	root := layout(t)

	t.Run("matches are sorted", func(t *testing.T) {
		var buf bytes.Buffer
		result, err := Run(ctx, &buf, "draft", root, Options{})
		require.NoError(t, err)

		want := []string{
			filepath.Join(root, "alpha{draft}{v2}.txt"),
			filepath.Join(root, "zeta{draft}.txt"),
		}
		assert.Equal(t, want, result.Paths)
		assert.Equal(t, strings.Join(want, "\n")+"\n", buf.String())
	})

	t.Run("exact tag only", func(t *testing.T) {
		result, err := Run(ctx, io.Discard, "dra", root, Options{})
		require.NoError(t, err)
		assert.Empty(t, result.Paths)

		result, err = Run(ctx, io.Discard, "Draft", root, Options{})
		require.NoError(t, err)
		assert.Empty(t, result.Paths, "matching must be case-sensitive")
	})

	t.Run("stem text never matches", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "draft-notes.txt"), []byte("x"), 0644))

		result, err := Run(ctx, io.Discard, "draft", dir, Options{})
		require.NoError(t, err)
		assert.Empty(t, result.Paths)
	})

	t.Run("recursive finds nested", func(t *testing.T) {
		result, err := Run(ctx, io.Discard, "draft", root, Options{Recursive: true})
		require.NoError(t, err)
		assert.Contains(t, result.Paths, filepath.Join(root, "sub", "nested{draft}.md"))
	})

	t.Run("hidden included on request", func(t *testing.T) {
		result, err := Run(ctx, io.Discard, "draft", root, Options{Hidden: true})
		require.NoError(t, err)
		assert.Contains(t, result.Paths, filepath.Join(root, ".hidden{draft}.txt"))
	})

	t.Run("null output", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Run(ctx, &buf, "draft", root, Options{Null: true})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "\x00")
		assert.False(t, strings.HasSuffix(out, "\x00"), "no trailing NUL")
		assert.NotContains(t, out, "\n")
	})

	t.Run("tree output", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := Run(ctx, &buf, "draft", root, Options{Recursive: true, Tree: true})
		require.NoError(t, err)

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, root+"\n"))
		assert.Contains(t, out, "nested{draft}.md")
		assert.Contains(t, out, "── ")
	})

	t.Run("no matches writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		result, err := Run(ctx, &buf, "absent", root, Options{})
		require.NoError(t, err)
		assert.Empty(t, result.Paths)
		assert.NotNil(t, result.Paths, "JSON output should show [] not null")
		assert.Zero(t, buf.Len())
	})

	t.Run("missing root errors", func(t *testing.T) {
		_, err := Run(ctx, io.Discard, "draft", filepath.Join(root, "nope"), Options{})
		assert.Error(t, err)
	})
}
