package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_OrdersTags(t *testing.T) {
	env := newTestEnv(t)
	env.write("c{b}{a}.txt")

	env.run("sort", "c{b}{a}.txt")

	assert.True(t, env.exists("c{a}{b}.txt"))
	assert.False(t, env.exists("c{b}{a}.txt"))
}

func TestSort_AlreadySorted(t *testing.T) {
	env := newTestEnv(t)
	env.write("c{a}{b}.txt")

	out := env.run("sort", "-v", "c{a}{b}.txt")

	env.contains(out, "c{a}{b}.txt (no change)")
	assert.True(t, env.exists("c{a}{b}.txt"))
}

func TestSort_UntaggedFile(t *testing.T) {
	env := newTestEnv(t)
	env.write("plain.txt")

	env.run("sort", "plain.txt")

	assert.True(t, env.exists("plain.txt"))
}

func TestSort_MultipleFiles(t *testing.T) {
	env := newTestEnv(t)
	env.write("a{z}{y}.txt")
	env.write("b{2}{1}.md")

	env.run("sort", "a{z}{y}.txt", "b{2}{1}.md")

	assert.True(t, env.exists("a{y}{z}.txt"))
	assert.True(t, env.exists("b{1}{2}.md"))
}

func TestSort_DryRun(t *testing.T) {
	env := newTestEnv(t)
	env.write("c{b}{a}.txt")

	out := env.run("sort", "-d", "c{b}{a}.txt")

	env.contains(out, "c{b}{a}.txt -> c{a}{b}.txt")
	assert.True(t, env.exists("c{b}{a}.txt"), "dry run must not rename")
}

func TestSort_CollisionRefused(t *testing.T) {
	env := newTestEnv(t)
	env.write("c{b}{a}.txt")
	env.write("c{a}{b}.txt")

	out, err := env.runErr("sort", "c{b}{a}.txt")

	require.Error(t, err)
	env.contains(out, "already exists")
	assert.True(t, env.exists("c{b}{a}.txt"))
	assert.True(t, env.exists("c{a}{b}.txt"))
}
