package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
<style> .item { padding: 2 } </style>
<box id="root" style="flow: vertical">
  <box id="a" class="item" tags="active">hi</box>
  <box id="b" class="item" style="size: 10 10"></box>
</box>
`

func writePage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", writePage(t))
	require.NoError(t, err)
	assert.Contains(t, out, "box#root")
	assert.Contains(t, out, "box#a.item:active")
	assert.Contains(t, out, `"hi"`)
}

func TestQuery(t *testing.T) {
	path := writePage(t)
	out, err := run(t, "query", path, ".item")
	require.NoError(t, err)
	assert.Contains(t, out, "box#a.item:active")
	assert.Contains(t, out, "box#b.item")
	//
	out, err = run(t, "--scale", "2", "query", path, ":active")
	require.NoError(t, err)
	assert.Contains(t, out, "box#a")
	assert.NotContains(t, out, "box#b")
	//
	_, err = run(t, "query", path, "#")
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	out, err := run(t, "dot", "--groups", "Paint", writePage(t))
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
	assert.Contains(t, out, ">Paint<")
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "none.html"))
	assert.Error(t, err)
}
