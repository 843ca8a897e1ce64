package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_RenamesFile(t *testing.T) {
	env := newTestEnv(t)
	env.write("report.txt")

	out := env.run("add", "draft", "report.txt")

	env.equals(out, "")
	assert.True(t, env.exists("report{draft}.txt"))
	assert.False(t, env.exists("report.txt"))
}

func TestAdd_MultipleTagsAndFiles(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt")
	env.write("b.txt")

	env.run("add", "x,y", "a.txt", "b.txt")

	assert.True(t, env.exists("a{x}{y}.txt"))
	assert.True(t, env.exists("b{x}{y}.txt"))
}

func TestAdd_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.write("report.txt")

	env.run("add", "draft", "report.txt")
	env.run("add", "draft", "report{draft}.txt")

	assert.True(t, env.exists("report{draft}.txt"))
}

func TestAdd_PreservesExistingOrder(t *testing.T) {
	env := newTestEnv(t)
	env.write("doc{zeta}.txt")

	env.run("add", "alpha", "doc{zeta}.txt")

	assert.True(t, env.exists("doc{zeta}{alpha}.txt"))
}

func TestAdd_InvalidTagTouchesNothing(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt")

	out, err := env.runErr("add", "dr aft", "a.txt")

	require.Error(t, err)
	env.contains(out, "invalid tag")
	assert.True(t, env.exists("a.txt"), "file must be untouched after validation failure")
}

func TestAdd_MissingFileContinuesBatch(t *testing.T) {
	env := newTestEnv(t)
	env.write("b.txt")

	out, err := env.runErr("add", "x", "missing.txt", "b.txt")

	require.Error(t, err, "exit code must be non-zero when a file fails")
	env.contains(out, "missing.txt")
	env.contains(out, "1 of 2 files failed")
	assert.True(t, env.exists("b{x}.txt"), "later files still processed after a failure")
}

func TestAdd_NeverOverwrites(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt")
	env.write("a{x}.txt")

	out, err := env.runErr("add", "x", "a.txt")

	require.Error(t, err)
	env.contains(out, "already exists")
	assert.True(t, env.exists("a.txt"), "source must survive a refused rename")
	assert.True(t, env.exists("a{x}.txt"))
}

func TestAdd_DryRun(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt")

	out := env.run("add", "-d", "x", "a.txt")

	env.contains(out, "a.txt -> a{x}.txt")
	assert.True(t, env.exists("a.txt"), "dry run must not rename")
	assert.False(t, env.exists("a{x}.txt"))
}

func TestAdd_DryRunMissingFileSucceeds(t *testing.T) {
	env := newTestEnv(t)

	// Planning is pure: a dry run reports the plan even for files that
	// don't exist, and exits zero.
	out := env.run("add", "-d", "x", "missing.txt")

	env.contains(out, "missing.txt -> missing{x}.txt")
}

func TestAdd_Verbose(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt")

	out := env.run("add", "-v", "x", "a.txt")

	env.contains(out, "a.txt -> a{x}.txt")
	assert.True(t, env.exists("a{x}.txt"))
}

func TestAdd_VerboseNoChange(t *testing.T) {
	env := newTestEnv(t)
	env.write("a{x}.txt")

	out := env.run("add", "-v", "x", "a{x}.txt")

	env.contains(out, "a{x}.txt (no change)")
}

func TestAdd_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.write("a.txt")

	out := env.run("add", "-o", "json", "x", "a.txt")

	env.contains(out, `"path":"a.txt"`)
	env.contains(out, `"new_path":"a{x}.txt"`)
	env.contains(out, `"renamed":true`)
}

func TestAdd_JSONFailureExitCode(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("add", "-o", "json", "x", "missing.txt")

	require.Error(t, err)
	env.contains(out, `"renamed":false`)
	env.contains(out, `"error"`)
}
