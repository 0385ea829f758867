// Package visual renders an interactive SVG map of a directory tree,
// with nodes colored by their recursive size.
package visual

import (
	"crypto/sha1" //nolint:gosec // node IDs, not security
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

// DirNode is one directory in the scanned tree. The JSON field names are
// what the embedded rendering script expects.
type DirNode struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Path          string   `json:"path"`
	Size          int64    `json:"size"`
	FormattedSize string   `json:"formatted_size"`
	Children      []string `json:"children"`
	Color         string   `json:"color"`
	Parent        string   `json:"parent,omitempty"`
}

// Tree is the fully scanned directory tree keyed by node ID.
type Tree struct {
	RootID  string
	Nodes   map[string]*DirNode
	MinSize int64
	MaxSize int64
}

// Scan walks the directory tree rooted at root and computes the recursive
// file-size sum of every directory. Unreadable directories contribute zero
// and do not abort the scan.
func Scan(root string) (*Tree, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	tree := &Tree{Nodes: make(map[string]*DirNode), MinSize: math.MaxInt64}
	tree.RootID, _ = tree.scanDir(abs, "")

	if tree.MinSize == math.MaxInt64 {
		tree.MinSize = 0
	}
	for _, node := range tree.Nodes {
		node.Color = tree.colorFor(node.Size)
	}
	return tree, nil
}

// scanDir builds the node for dir and recurses into subdirectories,
// returning the node ID and the directory's recursive size.
func (t *Tree) scanDir(dir, parentID string) (string, int64) {
	id := nodeID(dir)
	node := &DirNode{
		ID:       id,
		Name:     filepath.Base(dir),
		Path:     dir,
		Parent:   parentID,
		Children: []string{},
	}
	t.Nodes[id] = node

	var size int64
	entries, err := os.ReadDir(dir)
	if err != nil {
		entries = nil // unreadable; keep the node with zero size
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		if fi, err := entry.Info(); err == nil && fi.Mode().IsRegular() {
			size += fi.Size()
		}
	}
	sort.Strings(subdirs)

	for _, name := range subdirs {
		childID, childSize := t.scanDir(filepath.Join(dir, name), id)
		node.Children = append(node.Children, childID)
		size += childSize
	}

	node.Size = size
	node.FormattedSize = FormatSize(size)
	if size > 0 && size < t.MinSize {
		t.MinSize = size
	}
	if size > t.MaxSize {
		t.MaxSize = size
	}
	return id, size
}

func nodeID(path string) string {
	sum := sha1.Sum([]byte(path)) //nolint:gosec // node IDs, not security
	return "n" + hex.EncodeToString(sum[:6])
}

// FormatSize renders a byte count with a binary unit, "0 B" for empty dirs.
func FormatSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(size) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%g %s", math.Round(v*100)/100, units[i])
}

// Size-to-color gradient endpoints (green -> yellow -> red).
var (
	minColor = [3]int{0, 128, 0}
	midColor = [3]int{255, 255, 0}
	maxColor = [3]int{200, 0, 0}
)

// colorFor interpolates the node fill color over the size range seen in
// this tree. A degenerate range yields the midpoint color.
func (t *Tree) colorFor(size int64) string {
	if t.MaxSize <= t.MinSize {
		return rgb(midColor)
	}
	normalized := float64(size-t.MinSize) / float64(t.MaxSize-t.MinSize)
	if normalized < 0 {
		normalized = 0
	}

	var from, to [3]int
	if normalized < 0.5 {
		from, to = minColor, midColor
		normalized *= 2
	} else {
		from, to = midColor, maxColor
		normalized = (normalized - 0.5) * 2
	}

	var c [3]int
	for i := range c {
		c[i] = from[i] + int(normalized*float64(to[i]-from[i]))
	}
	return rgb(c)
}

func rgb(c [3]int) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
