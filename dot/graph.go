// Package dot renders multi-valued decision diagrams in the Graphviz DOT
// language.
//
// Terminals are drawn as squares labelled with their value, decision nodes
// as circles labelled x_i. Edges carry the decision value that selects them
// and can be styled and colored per value.
//
// Vertices are numbered in depth-first pre-order from the root, and edges are
// written grouped by source vertex in decision order. An edge without any
// attribute is written without brackets, and the output ends with a newline.
//
//	g, err := dot.New(d, dot.WithEdgeColor(2, "green"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g.WriteTo(os.Stdout)
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/zzenonn/go-mdd"
)

// Vertex is a node of the diagram as drawn in the graph.
type Vertex struct {
	ID       int
	Terminal bool
	Variable int    // decided variable, -1 for terminals
	Label    string // terminal value as printed
}

// Edge links a decision vertex to the vertex selected by Decision.
type Edge struct {
	From, To int
	Decision int
}

// Graph is the vertex and edge list of a diagram, ready to be written out.
// Vertex ids are assigned in depth-first order from the root, starting at 0.
type Graph struct {
	cfg      *Config
	vertices []Vertex
	edges    []Edge
}

// New enumerates the nodes reachable from the root of d, once each, and
// builds the corresponding graph.
func New[V comparable](d *gomdd.Diagram[V], opts ...Option) (*Graph, error) {
	g := &Graph{cfg: newConfig(opts...)}

	ids := make(map[gomdd.NodeID]int)
	var order []gomdd.Node[V]
	err := d.Walk(func(id gomdd.NodeID, n gomdd.Node[V]) error {
		ids[id] = len(order)
		order = append(order, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk diagram: %w", err)
	}

	for from, n := range order {
		v := Vertex{ID: from, Terminal: n.IsTerminal(), Variable: n.Variable}
		if v.Terminal {
			v.Label = n.Label()
		}
		g.vertices = append(g.vertices, v)

		for k, s := range n.Successors() {
			to, ok := ids[s]
			if !ok {
				return nil, fmt.Errorf("%w: successor %d of vertex %d", gomdd.ErrInvalidNode, s, from)
			}
			g.edges = append(g.edges, Edge{From: from, To: to, Decision: k})
		}
	}

	return g, nil
}

// Vertices returns the vertices in id order.
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// Edges returns the edges grouped by source vertex, in decision order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// String returns the DOT text of the graph.
func (g *Graph) String() string {
	var sb strings.Builder
	g.write(&sb)
	return sb.String()
}

// WriteTo writes the DOT text of the graph to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

func (g *Graph) write(sb *strings.Builder) {
	font := quote(g.cfg.Font)
	sb.WriteString("digraph DD {\n")
	fmt.Fprintf(sb, "    graph [fontname = %s, splines = true, overlap = false];\n", font)
	fmt.Fprintf(sb, "    node [fontname = %s, fontsize = 18, fixedsize = true];\n", font)
	fmt.Fprintf(sb, "    edge [fontname = %s, fontsize = 14];\n", font)

	var terminals []string
	for _, v := range g.vertices {
		if v.Terminal {
			terminals = append(terminals, fmt.Sprint(v.ID))
		}
	}
	if len(terminals) > 0 {
		fmt.Fprintf(sb, "    node [shape = square] %s;\n", strings.Join(terminals, " "))
	}
	sb.WriteString("    node [shape = circle];\n")

	for _, v := range g.vertices {
		if v.Terminal {
			fmt.Fprintf(sb, "    %d [label = %s];\n", v.ID, quote(v.Label))
		} else {
			fmt.Fprintf(sb, "    %d [label = <x<sub><font point-size=\"10\">%d</font></sub>>];\n", v.ID, v.Variable)
		}
	}

	for _, e := range g.edges {
		attrs := g.attributes(e.Decision)
		if len(attrs) == 0 {
			fmt.Fprintf(sb, "    %d -> %d;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(sb, "    %d -> %d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	sb.WriteString("}\n")
}

func (g *Graph) attributes(k int) []string {
	var attrs []string
	if g.cfg.Styling {
		attrs = append(attrs, "style="+quote(pick(g.cfg.EdgeStyles, k, "solid")))
	}
	color := pick(g.cfg.EdgeColors, k, "black")
	if g.cfg.Coloring {
		attrs = append(attrs, "color="+quote(color))
	}
	if g.cfg.Labels {
		attrs = append(attrs, fmt.Sprintf("label=\"%d\"", k))
		if g.cfg.LabelColorMatchesEdge && g.cfg.Coloring {
			attrs = append(attrs, "fontcolor="+quote(color))
		}
	}
	return attrs
}

func pick(list []string, k int, fallback string) string {
	if k < len(list) && list[k] != "" {
		return list[k]
	}
	return fallback
}

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}
