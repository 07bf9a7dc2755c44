package shapetools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cheekybits/is"

	"github.com/fmidev/smartmet-shapetools/geometry"
	"github.com/fmidev/smartmet-shapetools/pslg"
)

// Two small squares near the equator, roughly 3 km apart, with the
// bridging triangles a Delaunay triangulation would put between their
// facing edges. Squares are 0.01 degrees (about 1.1 km) on a side.
const twoSquaresNode = `8 2 1 0
1	0	0	1
2	0.01	0	1
3	0.01	0.01	1
4	0	0.01	1
5	0.037	0	2
6	0.047	0	2
7	0.047	0.01	2
8	0.037	0.01	2
`

const twoSquaresPoly = `0 2 0 0
8 0
1	1	2
2	2	3
3	3	4
4	4	1
5	5	6
6	6	7
7	7	8
8	8	5
0
`

const twoSquaresEle = `6 3 1
1	1	2	3	1
2	1	3	4	1
3	5	6	7	2
4	5	7	8	2
5	2	5	8	0
6	2	8	3	0
`

func writeTwoSquares(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	for suffix, content := range map[string]string{
		".node": twoSquaresNode,
		".poly": twoSquaresPoly,
		".ele":  twoSquaresEle,
	} {
		if err := os.WriteFile(in+suffix, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return in, filepath.Join(dir, "out")
}

func ringTags(t *testing.T, nodeFile string) map[int64]bool {
	t.Helper()
	nodes, err := pslg.ReadNodeFile(nodeFile)
	if err != nil {
		t.Fatal(err)
	}
	tags := make(map[int64]bool)
	for ordinal := int64(1); ordinal <= int64(nodes.Len()); ordinal++ {
		tags[nodes.ID(nodes.Point(ordinal))] = true
	}
	return tags
}

func TestAmalgamateMergesNearbySquares(t *testing.T) {
	is := is.New(t)

	in, out := writeTwoSquares(t)

	// The 3 km gap is bridged by triangles with sides below 4 km
	is.NoErr(Amalgamate(4, 0, in, out))

	nodes, err := pslg.ReadNodeFile(out + ".node")
	is.NoErr(err)
	is.Equal(nodes.Len(), 8)

	// A single merged ring
	is.Equal(len(ringTags(t, out+".node")), 1)

	edges, err := pslg.ReadPolyFile(out + ".poly")
	is.NoErr(err)
	is.Equal(len(edges), 8)
}

func TestAmalgamateKeepsDistantSquaresApart(t *testing.T) {
	is := is.New(t)

	in, out := writeTwoSquares(t)

	// A 1 km limit is shorter than the 3 km gap: no merging
	is.NoErr(Amalgamate(1, 0, in, out))

	nodes, err := pslg.ReadNodeFile(out + ".node")
	is.NoErr(err)
	is.Equal(nodes.Len(), 8)

	// Two disjoint rings
	is.Equal(len(ringTags(t, out+".node")), 2)

	edges, err := pslg.ReadPolyFile(out + ".poly")
	is.NoErr(err)
	is.Equal(len(edges), 8)
}

func TestAmalgamateAreaFilter(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")

	// A 0.01 degree square (about 1.2 km2) and a 0.03 degree square
	// (about 11 km2), no bridging triangles
	files := map[string]string{
		".node": `8 2 1 0
1	0	0	1
2	0.01	0	1
3	0.01	0.01	1
4	0	0.01	1
5	0.1	0	2
6	0.13	0	2
7	0.13	0.03	2
8	0.1	0.03	2
`,
		".poly": twoSquaresPoly,
		".ele": `4 3 1
1	1	2	3	1
2	1	3	4	1
3	5	6	7	2
4	5	7	8	2
`,
	}
	for suffix, content := range files {
		if err := os.WriteFile(in+suffix, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// The small square falls below the 2 km2 area limit
	is.NoErr(Amalgamate(1, 2, in, out))

	nodes, err := pslg.ReadNodeFile(out + ".node")
	is.NoErr(err)
	is.Equal(nodes.Len(), 4)
	is.Equal(len(ringTags(t, out+".node")), 1)

	// The surviving ring is the big square
	is.True(nodes.Number(geometry.Point{X: 0.1, Y: 0}) != 0)
	is.Equal(nodes.Number(geometry.Point{X: 0, Y: 0}), 0)
}

func TestAmalgamateDebugMode(t *testing.T) {
	is := is.New(t)

	in, _ := writeTwoSquares(t)

	// Debug mode rewrites the input .ele with the accepted triangles
	is.NoErr(Amalgamate(1, 0, in, DebugOutput))

	triangles, err := pslg.ReadEleFile(in + ".ele")
	is.NoErr(err)
	is.Equal(len(triangles), 4)
	for _, tri := range triangles {
		is.True(tri.Region != 0)
	}

	// No node or poly output in debug mode
	_, err = os.Stat(DebugOutput + ".node")
	is.NotNil(err)
}

func TestAmalgamateMissingInput(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	err := Amalgamate(1, 0, filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	is.NotNil(err)
}
