package dot

import "slices"

// Config holds the rendering parameters of a Graph.
type Config struct {
	// Font is used for the graph, its vertices and its edges.
	Font string

	// EdgeStyles[k] is the style of edges taken for decision value k.
	// Values without an entry are drawn "solid".
	EdgeStyles []string

	// EdgeColors[k] is the color of edges taken for decision value k.
	// Values without an entry are drawn "black".
	EdgeColors []string

	// Styling enables per-value edge styles.
	Styling bool

	// Coloring enables per-value edge colors.
	Coloring bool

	// Labels prints the decision value on every edge.
	Labels bool

	// LabelColorMatchesEdge paints edge labels with the edge color. It has
	// no effect unless both Labels and Coloring are set.
	LabelColorMatchesEdge bool
}

// Option configures a Graph.
type Option func(*Config)

// WithFont sets the font of the whole graph. An empty name is ignored.
func WithFont(font string) Option {
	return func(c *Config) {
		if font != "" {
			c.Font = font
		}
	}
}

// WithEdgeStyle sets the style of edges for decision value k, growing the
// style list as needed. Gaps are filled with "solid".
func WithEdgeStyle(k int, style string) Option {
	return func(c *Config) {
		c.EdgeStyles = setAt(c.EdgeStyles, k, style, "solid")
	}
}

// WithEdgeColor sets the color of edges for decision value k, growing the
// color list as needed. Gaps are filled with "black".
func WithEdgeColor(k int, color string) Option {
	return func(c *Config) {
		c.EdgeColors = setAt(c.EdgeColors, k, color, "black")
	}
}

// WithEdgeStyling turns per-value edge styles on or off.
func WithEdgeStyling(enabled bool) Option {
	return func(c *Config) {
		c.Styling = enabled
	}
}

// WithEdgeColoring turns per-value edge colors on or off.
func WithEdgeColoring(enabled bool) Option {
	return func(c *Config) {
		c.Coloring = enabled
	}
}

// WithLabels turns edge labels on or off.
func WithLabels(enabled bool) Option {
	return func(c *Config) {
		c.Labels = enabled
	}
}

// WithLabelColorMatchesEdge paints edge labels with their edge color.
func WithLabelColorMatchesEdge(enabled bool) Option {
	return func(c *Config) {
		c.LabelColorMatchesEdge = enabled
	}
}

// newConfig returns the default configuration with opts applied in order.
//
// Default values:
//   - Font: Times-Roman
//   - EdgeStyles: dashed, solid, dotted
//   - EdgeColors: red, black, blue
//   - Styling, Coloring and Labels enabled
func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Font:       "Times-Roman",
		EdgeStyles: []string{"dashed", "solid", "dotted"},
		EdgeColors: []string{"red", "black", "blue"},
		Styling:    true,
		Coloring:   true,
		Labels:     true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func setAt(list []string, k int, v, fill string) []string {
	if k < 0 {
		return list
	}
	list = slices.Clone(list)
	for len(list) <= k {
		list = append(list, fill)
	}
	list[k] = v
	return list
}
