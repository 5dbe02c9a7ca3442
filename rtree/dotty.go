package rtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Inner nodes are drawn as circles, filled by
// depth; leaves are drawn as boxes listing their values. Edges are labeled
// with the stored box of the child.
func (t *Tree[V]) ToDot(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if t.root != nilRef {
		var nodelist, edgelist strings.Builder
		t.dotNode(t.root, 0, &nodelist, &edgelist)
		sb.WriteString(nodelist.String())
		sb.WriteString(edgelist.String())
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *Tree[V]) dotNode(ref nodeRef, depth int, nodelist, edgelist *strings.Builder) {
	switch n := t.nodes.node(ref).(type) {
	case *leafNode[V]:
		labels := make([]string, len(n.values))
		for i, v := range n.values {
			labels[i] = fmt.Sprintf("%v", v)
		}
		label := strings.ReplaceAll(strings.Join(labels, "\\n"), "\"", "'")
		fmt.Fprintf(nodelist, "\"%d\" [label=\"%s\" %s];\n", ref, label, nodeDotStyles(true, depth))
	case *innerNode:
		fmt.Fprintf(nodelist, "\"%d\" [label=%d %s];\n", ref, len(n.children), nodeDotStyles(false, depth))
		for i, child := range n.children {
			fmt.Fprintf(edgelist, "\"%d\" -> \"%d\" [label=\"%s\",fontsize=9];\n", ref, child, n.boxes[i])
			t.dotNode(child, depth+1, nodelist, edgelist)
		}
	}
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=white"
	} else {
		s += fmt.Sprintf(",color=black,fillcolor=\"%s\"", hexcolors[min(depth+1, len(hexcolors)-1)])
		s += ",shape=circle"
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
