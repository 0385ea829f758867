package visual

// ABOUTME: Renders a scanned Tree as a self-contained interactive HTML/SVG
// ABOUTME: document: collapsible nodes, zoom controls, and a size legend.

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Layout constants for the rendered diagram.
const (
	nodeWidth     = 220
	nodeHeight    = 40
	nodeRadius    = 10
	verticalGap   = 45
	horizontalGap = 45

	connectorColor = "#AAAAAA"
	textColor      = "#FFFFFF"
	bgColor        = "#2A2A2A"
)

// WriteHTML renders the tree and writes the document to path.
func WriteHTML(tree *Tree, path string) error {
	doc, err := RenderHTML(tree)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderHTML produces the full interactive document as a string.
func RenderHTML(tree *Tree) (string, error) {
	treeData, err := json.Marshal(tree.Nodes)
	if err != nil {
		return "", fmt.Errorf("encode tree data: %w", err)
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Interactive Directory Structure</title>
<style>
  body { margin: 0; padding: 0; background-color: #1a1a1a; overflow: auto; }
  #svg-container { width: 100%; height: 100vh; overflow: auto; }
  svg { display: block; width: 100%; height: auto; }
  .node { cursor: pointer; }
  .node-text { pointer-events: none; }
  .connector { pointer-events: none; }
  .toggle-icon { cursor: pointer; fill: #ffffff; }
  .controls { position: fixed; top: 10px; right: 20px; background: rgba(0,0,0,0.7); padding: 10px; border-radius: 5px; color: white; }
  .zoom-button { background: #444; color: white; border: none; padding: 5px 10px; margin: 0 5px; cursor: pointer; border-radius: 3px; }
  .legend { margin-top: 10px; }
  .legend-bar { width: 150px; height: 20px; background: linear-gradient(to right, #008000, #FFFF00, #C80000); border-radius: 3px; }
  .legend-labels { display: flex; justify-content: space-between; font-size: 12px; margin-top: 2px; }
</style>
</head>
<body>
<div class="controls">
  <button class="zoom-button" id="zoom-in">Zoom In (+)</button>
  <button class="zoom-button" id="zoom-out">Zoom Out (-)</button>
  <button class="zoom-button" id="zoom-reset">Reset Zoom</button>
  <div class="legend">
    <div class="legend-bar"></div>
`)
	fmt.Fprintf(&b, "    <div class=\"legend-labels\"><span>Small (%s)</span><span>Large (%s)</span></div>\n",
		FormatSize(tree.MinSize), FormatSize(tree.MaxSize))
	b.WriteString(`  </div>
</div>
<div id="svg-container">
<svg id="directory-tree" viewBox="0 0 1600 1200" preserveAspectRatio="xMinYMin meet">
`)
	fmt.Fprintf(&b, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", bgColor)
	b.WriteString(`<g id="diagram">
<g id="connections"></g>
<g id="nodes"></g>
</g>
</svg>
</div>
<script>
`)
	fmt.Fprintf(&b, "const nodeWidth = %d;\nconst nodeHeight = %d;\nconst nodeRadius = %d;\nconst verticalGap = %d;\nconst horizontalGap = %d;\n",
		nodeWidth, nodeHeight, nodeRadius, verticalGap, horizontalGap)
	fmt.Fprintf(&b, "const connectorColor = %q;\nconst textColor = %q;\n", connectorColor, textColor)
	b.WriteString("const treeData = ")
	b.Write(treeData)
	b.WriteString(";\n")
	b.WriteString(renderScript)
	b.WriteString("</script>\n</body>\n</html>\n")
	return b.String(), nil
}

// renderScript lays out visible nodes depth-first, draws connectors, and
// wires up expand/collapse plus zoom handling.
const renderScript = `
const svg = document.getElementById('directory-tree');
const nodesGroup = document.getElementById('nodes');
const connectionsGroup = document.getElementById('connections');
const diagram = document.getElementById('diagram');
const nodeStates = {};
let currentZoom = 0.5;
const rootId = Object.keys(treeData).find(id => !treeData[id].parent);
Object.keys(treeData).forEach(id => {
    nodeStates[id] = { expanded: id === rootId };
});

function layout(id, depth, nextY) {
    const node = treeData[id];
    const pos = { id: id, x: 20 + depth * (nodeWidth + horizontalGap), y: nextY.y };
    nextY.y += nodeHeight + verticalGap;
    let positions = [pos];
    if (nodeStates[id].expanded) {
        node.children.forEach(childId => {
            positions = positions.concat(layout(childId, depth + 1, nextY));
        });
    }
    return positions;
}

function renderTree() {
    nodesGroup.innerHTML = '';
    connectionsGroup.innerHTML = '';
    if (!rootId) return;
    const positions = layout(rootId, 0, { y: 20 });
    const byId = {};
    positions.forEach(p => { byId[p.id] = p; });

    positions.forEach(p => {
        const node = treeData[p.id];
        if (node.parent && byId[node.parent]) {
            const parent = byId[node.parent];
            const path = document.createElementNS('http://www.w3.org/2000/svg', 'path');
            const startX = parent.x + nodeWidth / 2;
            const startY = parent.y + nodeHeight;
            const endX = p.x;
            const endY = p.y + nodeHeight / 2;
            path.setAttribute('d',
                'M ' + startX + ' ' + startY + ' V ' + endY + ' H ' + endX);
            path.setAttribute('stroke', connectorColor);
            path.setAttribute('fill', 'none');
            path.setAttribute('class', 'connector');
            connectionsGroup.appendChild(path);
        }

        const g = document.createElementNS('http://www.w3.org/2000/svg', 'g');
        g.setAttribute('class', 'node');
        g.addEventListener('click', () => {
            nodeStates[p.id].expanded = !nodeStates[p.id].expanded;
            renderTree();
        });

        const rect = document.createElementNS('http://www.w3.org/2000/svg', 'rect');
        rect.setAttribute('x', p.x);
        rect.setAttribute('y', p.y);
        rect.setAttribute('width', nodeWidth);
        rect.setAttribute('height', nodeHeight);
        rect.setAttribute('rx', nodeRadius);
        rect.setAttribute('fill', node.color);
        g.appendChild(rect);

        const label = document.createElementNS('http://www.w3.org/2000/svg', 'text');
        label.setAttribute('x', p.x + 10);
        label.setAttribute('y', p.y + 17);
        label.setAttribute('fill', textColor);
        label.setAttribute('class', 'node-text');
        label.setAttribute('font-size', '13');
        label.textContent = node.name;
        g.appendChild(label);

        const sizeLabel = document.createElementNS('http://www.w3.org/2000/svg', 'text');
        sizeLabel.setAttribute('x', p.x + 10);
        sizeLabel.setAttribute('y', p.y + 33);
        sizeLabel.setAttribute('fill', textColor);
        sizeLabel.setAttribute('class', 'node-text');
        sizeLabel.setAttribute('font-size', '11');
        sizeLabel.textContent = node.formatted_size +
            (node.children.length ? (nodeStates[p.id].expanded ? '  [-]' : '  [+]') : '');
        g.appendChild(sizeLabel);

        nodesGroup.appendChild(g);
    });
}

function updateZoom() {
    diagram.setAttribute('transform', 'scale(' + currentZoom + ')');
}
document.getElementById('zoom-in').addEventListener('click', () => {
    currentZoom += 0.1; updateZoom();
});
document.getElementById('zoom-out').addEventListener('click', () => {
    currentZoom = Math.max(0.1, currentZoom - 0.1); updateZoom();
});
document.getElementById('zoom-reset').addEventListener('click', () => {
    currentZoom = 0.5; updateZoom();
});
svg.addEventListener('wheel', (e) => {
    if (!e.ctrlKey) return;
    e.preventDefault();
    currentZoom = Math.max(0.1, currentZoom + (e.deltaY < 0 ? 0.1 : -0.1));
    updateZoom();
});

renderTree();
updateZoom();
`
