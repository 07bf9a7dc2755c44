package geometry

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestEdgeNormalization(t *testing.T) {
	is := is.New(t)

	is.Equal(NewEdge(3, 7), NewEdge(7, 3))
	is.Equal(NewEdge(3, 7).Index1(), 3)
	is.Equal(NewEdge(3, 7).Index2(), 7)
	is.Equal(NewEdge(7, 3).Index1(), 3)
}

func TestEdgeLess(t *testing.T) {
	is := is.New(t)

	is.True(NewEdge(1, 2).Less(NewEdge(1, 3)))
	is.True(NewEdge(1, 9).Less(NewEdge(2, 3)))
	is.True(!NewEdge(2, 3).Less(NewEdge(3, 2)))
	is.True(!NewEdge(3, 2).Less(NewEdge(2, 3)))
}

func TestEdges(t *testing.T) {
	is := is.New(t)

	edges := NewEdges()
	is.True(edges.Add(NewEdge(1, 2)))
	is.True(!edges.Add(NewEdge(2, 1)))
	is.True(edges.Contains(NewEdge(1, 2)))
	is.True(edges.Contains(NewEdge(2, 1)))
	is.True(!edges.Contains(NewEdge(1, 3)))
	is.Equal(edges.Len(), 1)

	is.True(edges.Add(NewEdge(1, 3)))
	is.Equal(edges.Len(), 2)
}
