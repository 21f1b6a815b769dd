package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spantree/core"
)

// GraphBuildSuite exercises multi-step construction workflows: each test
// gets a fresh graph and drives it through several mutations, checking
// that the arena invariants hold at every stage.
type GraphBuildSuite struct {
	suite.Suite
	g *core.Graph[string]
}

// SetupTest resets the graph before every test method.
func (s *GraphBuildSuite) SetupTest() {
	s.g = core.New[string](core.WithVertexCapacity(8), core.WithEdgeCapacity(16))
}

// TestIncrementalBuild grows the graph in waves and verifies that counts
// and indices stay consistent after each wave.
func (s *GraphBuildSuite) TestIncrementalBuild() {
	t := s.T()

	// Wave 1: a connected pair.
	require.NoError(t, s.g.AddVertex("A"))
	require.NoError(t, s.g.AddVertex("B"))
	require.NoError(t, s.g.AddBidirectionalEdge("A", "B", 1))
	require.Equal(t, 2, s.g.NumVertices())
	require.Equal(t, 2, s.g.NumEdges())

	// Wave 2: extend by a vertex and two more connections.
	require.NoError(t, s.g.AddVertex("C"))
	require.NoError(t, s.g.AddBidirectionalEdge("B", "C", 2))
	require.NoError(t, s.g.AddBidirectionalEdge("A", "C", 3))
	require.Equal(t, 3, s.g.NumVertices())
	require.Equal(t, 6, s.g.NumEdges())

	// Indices assigned in wave 1 must not have moved.
	a, ok := s.g.FindVertex("A")
	require.True(t, ok)
	require.Equal(t, 0, a.Index())
	c, ok := s.g.FindVertex("C")
	require.True(t, ok)
	require.Equal(t, 2, c.Index())
	require.False(t, s.g.HasDirectedEdges())
}

// TestFailuresLeaveNoTrace interleaves failing operations with good ones
// and verifies the final graph looks as if the failures never happened.
func (s *GraphBuildSuite) TestFailuresLeaveNoTrace() {
	t := s.T()

	require.NoError(t, s.g.AddVertex("A"))
	require.ErrorIs(t, s.g.AddVertex("A"), core.ErrDuplicateVertex)
	require.NoError(t, s.g.AddVertex("B"))
	require.ErrorIs(t, s.g.AddEdge("A", "nope", 1), core.ErrVertexNotFound)
	require.NoError(t, s.g.AddBidirectionalEdge("A", "B", 2))
	require.ErrorIs(t, s.g.AddBidirectionalEdge("A", "B", math.NaN()), core.ErrBadWeight)

	require.Equal(t, 2, s.g.NumVertices())
	require.Equal(t, 2, s.g.NumEdges())

	a, _ := s.g.FindVertex("A")
	require.Equal(t, 1, a.Degree())
	require.Equal(t, 2.0, a.Edges()[0].Weight())
}

// TestCloneDiverges clones mid-build and extends both copies in
// different directions.
func (s *GraphBuildSuite) TestCloneDiverges() {
	t := s.T()

	require.NoError(t, s.g.AddVertex("A"))
	require.NoError(t, s.g.AddVertex("B"))
	require.NoError(t, s.g.AddBidirectionalEdge("A", "B", 1))

	fork := s.g.Clone()
	require.NoError(t, fork.AddVertex("C"))
	require.NoError(t, fork.AddBidirectionalEdge("B", "C", 2))
	require.NoError(t, s.g.AddVertex("D"))

	// Each copy sees only its own extension.
	_, ok := s.g.FindVertex("C")
	require.False(t, ok)
	_, ok = fork.FindVertex("D")
	require.False(t, ok)
	require.Equal(t, 4, fork.NumEdges())
	require.Equal(t, 2, s.g.NumEdges())
}

// TestAdjacencyOrder verifies that adjacency lists replay edge insertion
// order no matter how many edges pile up.
func (s *GraphBuildSuite) TestAdjacencyOrder() {
	t := s.T()

	require.NoError(t, s.g.AddVertex("hub"))
	spokes := []string{"s0", "s1", "s2", "s3", "s4"}
	for i, p := range spokes {
		require.NoError(t, s.g.AddVertex(p))
		require.NoError(t, s.g.AddBidirectionalEdge("hub", p, float64(i+1)))
	}

	hub, _ := s.g.FindVertex("hub")
	require.Equal(t, len(spokes), hub.Degree())
	for i, e := range hub.Edges() {
		require.Equal(t, spokes[i], s.g.Vertex(e.To()).Payload())
		require.Equal(t, float64(i+1), e.Weight())
	}
}

func TestGraphBuildSuite(t *testing.T) {
	suite.Run(t, new(GraphBuildSuite))
}
