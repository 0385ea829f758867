package visual

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML_ContainsAllNodes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Assets/model.bin", 2048)
	writeFile(t, root, "Source/main.c", 64)

	tree, err := Scan(root)
	require.NoError(t, err)

	doc, err := RenderHTML(tree)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "Interactive Directory Structure")
	assert.Contains(t, doc, `"name":"Assets"`)
	assert.Contains(t, doc, `"name":"Source"`)
	assert.Contains(t, doc, "const treeData = ")
	assert.Contains(t, doc, `id="zoom-in"`)

	// Legend reflects the scanned size range.
	assert.Contains(t, doc, "Small ("+FormatSize(tree.MinSize)+")")
	assert.Contains(t, doc, "Large ("+FormatSize(tree.MaxSize)+")")
}

func TestWriteHTML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/file.bin", 10)

	tree, err := Scan(root)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "tree.html")
	require.NoError(t, WriteHTML(tree, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</html>")
}
