package gomdd

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thesisDiagram(t *testing.T) *Diagram[int] {
	t.Helper()
	d, err := Build(thesisDomains, thesisValues)
	require.NoError(t, err)
	return d
}

func TestDiagramEvaluateErrors(t *testing.T) {
	d := thesisDiagram(t)

	tests := []struct {
		name       string
		assignment []int
		want       error
	}{
		{"too short", []int{1, 1}, ErrArityMismatch},
		{"too long", []int{1, 1, 1, 1}, ErrArityMismatch},
		{"empty", nil, ErrArityMismatch},
		{"out of range root", []int{2, 0, 0}, ErrInvalidDecision},
		{"out of range inner", []int{1, 1, 3}, ErrInvalidDecision},
		{"negative", []int{0, -1, 0}, ErrInvalidDecision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Evaluate(tt.assignment)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDiagramEvaluateSkipsEliminatedVariables(t *testing.T) {
	d := thesisDiagram(t)

	// x0=0, x1=0 reaches the terminal 0 before x2 is tested
	v, err := d.Evaluate([]int{0, 0, 7})
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// the table checks every variable and rejects the same assignment
	tab, err := NewTable(thesisDomains, thesisValues)
	require.NoError(t, err)
	_, err = tab.Evaluate([]int{0, 0, 7})
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = d.Evaluate([]int{0, 1, 7})
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestDiagramTrace(t *testing.T) {
	d := thesisDiagram(t)

	tests := []struct {
		assignment []int
		want       int
		path       []string
	}{
		{[]int{0, 1, 2}, 1, []string{"N0", "N1", "N2", "1"}},
		{[]int{1, 0, 0}, 0, []string{"N0", "N1", "N2", "0"}},
		{[]int{0, 0, 2}, 0, []string{"N0", "N1", "0"}},
		{[]int{1, 1, 2}, 2, []string{"N0", "N1", "N2", "2"}},
	}
	for _, tt := range tests {
		v, path, err := d.Trace(tt.assignment)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v)
		assert.Equal(t, tt.path, path, "assignment %v", tt.assignment)
	}
}

func TestDiagramTraceErrors(t *testing.T) {
	d := thesisDiagram(t)

	_, path, err := d.Trace([]int{0, 5, 0})
	assert.ErrorIs(t, err, ErrInvalidDecision)
	assert.Equal(t, []string{"N0", "N1"}, path)

	_, path, err = d.Trace([]int{-1, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidDecision)
	assert.Equal(t, []string{"N0"}, path)

	_, path, err = d.Trace([]int{0})
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.Empty(t, path)
}

func TestDiagramTraceTerminalRoot(t *testing.T) {
	d, err := Build([]int{2}, []string{"x", "x"})
	require.NoError(t, err)

	v, path, err := d.Trace([]int{1})
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.Equal(t, []string{"x"}, path)
}

func TestDiagramStructure(t *testing.T) {
	d := thesisDiagram(t)

	type entry struct {
		label string
		depth int
	}
	want := []entry{
		{"N0", 0},
		{"N1", 1}, {"0", 2}, {"N2", 2}, {"0", 3}, {"1", 3}, {"1", 3},
		{"N1", 1},
		{"N2", 2}, {"0", 3}, {"1", 3}, {"1", 3},
		{"N2", 2}, {"0", 3}, {"2", 3}, {"2", 3},
	}

	// the sequence restarts from the root on every range
	for range 2 {
		var got []entry
		for label, depth := range d.Structure() {
			got = append(got, entry{label, depth})
		}
		assert.Equal(t, want, got)
	}

	var first []entry
	for label, depth := range d.Structure() {
		first = append(first, entry{label, depth})
		if len(first) == 3 {
			break
		}
	}
	assert.Equal(t, want[:3], first)

	var buf bytes.Buffer
	require.NoError(t, d.WriteStructure(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(want))
	for i, e := range want {
		assert.Equal(t, strings.Repeat("   ", e.depth)+e.label, lines[i])
	}
}

func TestDiagramWriteStructure(t *testing.T) {
	d, err := Build([]int{2, 2}, []int{0, 1, 0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.WriteStructure(&buf))
	assert.Equal(t, "N1\n   0\n   1\n", buf.String())
}

func TestDiagramWalk(t *testing.T) {
	d := thesisDiagram(t)

	seen := make(map[NodeID]int)
	var order []NodeID
	err := d.Walk(func(id NodeID, n Node[int]) error {
		seen[id]++
		order = append(order, id)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 8)
	for id, c := range seen {
		assert.Equal(t, 1, c, "node %d", id)
	}
	assert.Equal(t, d.Root(), order[0])

	stop := errors.New("stop")
	visits := 0
	err = d.Walk(func(NodeID, Node[int]) error {
		visits++
		if visits == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visits)
}

func TestDiagramValues(t *testing.T) {
	d := thesisDiagram(t)
	assert.Equal(t, []int{0, 1, 2}, d.Values())

	c, err := Build([]int{3}, []string{"z", "z", "z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, c.Values())
}

func TestDiagramAssignments(t *testing.T) {
	d := thesisDiagram(t)

	assert.Equal(t, [][]int{{1, 1, 1}, {1, 1, 2}}, slices.Collect(d.Assignments(2)))
	assert.Equal(t, [][]int{{0, 1, 1}, {0, 1, 2}, {1, 0, 1}, {1, 0, 2}}, slices.Collect(d.Assignments(1)))
	assert.Empty(t, slices.Collect(d.Assignments(9)))

	// eliminated variables are expanded over their domain
	zeros := slices.Collect(d.Assignments(0))
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}}, zeros)

	for a := range d.Assignments(0) {
		a[0] = 9
		break
	}
	assert.Equal(t, []int{0, 0, 0}, slices.Collect(d.Assignments(0))[0])
}

func TestDiagramCount(t *testing.T) {
	d := thesisDiagram(t)

	total := int64(0)
	for _, v := range d.Values() {
		c := d.Count(v)
		for a := range d.Assignments(v) {
			got, err := d.Evaluate(a)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		assert.Equal(t, int64(len(slices.Collect(d.Assignments(v)))), c.Int64())
		total += c.Int64()
	}
	assert.Equal(t, int64(12), total)
	assert.Zero(t, d.Count(9).Sign())

	// the root skips x0, which doubles every count
	s, err := Build([]int{2, 2}, []int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.Count(1).Int64())

	c, err := Build([]int{3, 4}, make([]int, 12))
	require.NoError(t, err)
	assert.Equal(t, int64(12), c.Count(0).Int64())
}

func TestDiagramVectorRoundTrip(t *testing.T) {
	d := thesisDiagram(t)
	assert.Equal(t, thesisValues, d.Vector())

	again, err := Build(d.Domains(), d.Vector())
	require.NoError(t, err)
	assert.True(t, d.Equal(again))
}

func TestDiagramStringValues(t *testing.T) {
	// x0 OR x1
	d, err := Build([]int{2, 2}, []string{"lo", "hi", "hi", "hi"})
	require.NoError(t, err)

	for a, want := range map[[2]int]string{{0, 0}: "lo", {0, 1}: "hi", {1, 0}: "hi", {1, 1}: "hi"} {
		got, err := d.Evaluate(a[:])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 4, d.Size())
	assert.Equal(t, 2, d.Variables())
	assert.Equal(t, []int{2, 2}, d.Domains())
}
