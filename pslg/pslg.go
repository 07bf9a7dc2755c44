// Package pslg reads and writes the planar straight line graph file
// formats used by the Delaunay triangulation package by Jonathan R.
// Shewchuk: .node (points), .poly (segments, holes and region points)
// and .ele (triangles).
package pslg

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/fmidev/smartmet-shapetools/geometry"
)

// A Triangle is one element of a triangulation: three node ordinals
// plus the region attribute assigned by the triangulation. Region 0
// means the triangle lies outside every input polygon.
type Triangle struct {
	V1     int64
	V2     int64
	V3     int64
	Region int64
}

type scanner struct {
	name string
	scan *bufio.Scanner
	err  error
}

func newScanner(name string, file *os.File) *scanner {
	s := bufio.NewScanner(file)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &scanner{name: name, scan: s}
}

func (s *scanner) next() string {
	if s.err != nil {
		return ""
	}
	if !s.scan.Scan() {
		if err := s.scan.Err(); err != nil {
			s.err = fmt.Errorf("Error reading %s: %s", s.name, err)
		} else {
			s.err = fmt.Errorf("Error reading %s: unexpected end of file", s.name)
		}
		return ""
	}
	return s.scan.Text()
}

func (s *scanner) Int64() int64 {
	token := s.next()
	if s.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		s.err = fmt.Errorf("Error reading %s: bad integer %q", s.name, token)
		return 0
	}
	return v
}

func (s *scanner) Float64() float64 {
	token := s.next()
	if s.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		s.err = fmt.Errorf("Error reading %s: bad number %q", s.name, token)
		return 0
	}
	return v
}

// ReadNodeFile reads a .node file into a Nodes registry, keeping the
// single attribute of each point as its id. The file must declare
// exactly one attribute per node.
func ReadNodeFile(filename string) (*geometry.Nodes, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not open %s for reading", filename)
	}
	defer in.Close()

	s := newScanner(filename, in)

	count := s.Int64()
	s.Int64() // dimension
	attributes := s.Int64()
	markers := s.Int64()
	if s.err != nil {
		return nil, s.err
	}
	if attributes != 1 {
		return nil, fmt.Errorf("%s must contain exactly one attribute field", filename)
	}

	nodes := geometry.NewNodes()
	for i := int64(1); i <= count; i++ {
		s.Int64() // node ordinal
		x := s.Float64()
		y := s.Float64()
		id := s.Int64()
		for m := int64(0); m < markers; m++ {
			s.Int64()
		}
		if s.err != nil {
			return nil, s.err
		}
		nodes.Add(geometry.Point{X: x, Y: y}, id)
	}
	return nodes, nil
}

// ReadNodePoints reads a .node file into a 1-based point slice,
// ignoring any attributes and boundary markers. Index 0 is unused.
func ReadNodePoints(filename string) ([]geometry.Point, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not open %s for reading", filename)
	}
	defer in.Close()

	s := newScanner(filename, in)

	count := s.Int64()
	s.Int64() // dimension
	attributes := s.Int64()
	markers := s.Int64()
	if s.err != nil {
		return nil, s.err
	}

	points := make([]geometry.Point, count+1)
	for i := int64(1); i <= count; i++ {
		s.Int64() // node ordinal
		x := s.Float64()
		y := s.Float64()
		for a := int64(0); a < attributes+markers; a++ {
			s.Int64()
		}
		if s.err != nil {
			return nil, s.err
		}
		points[i] = geometry.Point{X: x, Y: y}
	}
	return points, nil
}

// ReadPolyFile reads the segment section of a .poly file. Files with
// embedded nodes are not supported and edge ordinals must run
// sequentially from 1.
func ReadPolyFile(filename string) ([]geometry.Edge, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not open %s for reading", filename)
	}
	defer in.Close()

	s := newScanner(filename, in)

	nodes := s.Int64()
	s.Int64() // dimension
	s.Int64() // attributes
	s.Int64() // boundary markers
	if s.err != nil {
		return nil, s.err
	}
	if nodes != 0 {
		return nil, fmt.Errorf("%s: .poly file also containing nodes is not supported", filename)
	}

	count := s.Int64()
	s.Int64() // boundary markers
	if s.err != nil {
		return nil, s.err
	}

	edges := make([]geometry.Edge, 0, count)
	for i := int64(1); i <= count; i++ {
		ordinal := s.Int64()
		idx1 := s.Int64()
		idx2 := s.Int64()
		if s.err != nil {
			return nil, s.err
		}
		if ordinal != i {
			return nil, fmt.Errorf("Edges must be numbered sequentially starting from 1 in file %s", filename)
		}
		edges = append(edges, geometry.NewEdge(idx1, idx2))
	}
	return edges, nil
}

// ReadEleFile reads a .ele triangle file. Each element must have
// exactly 3 points and one region attribute.
func ReadEleFile(filename string) ([]Triangle, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not open %s for reading", filename)
	}
	defer in.Close()

	s := newScanner(filename, in)

	count := s.Int64()
	points := s.Int64()
	s.Int64() // attributes
	if s.err != nil {
		return nil, s.err
	}
	if points != 3 {
		return nil, fmt.Errorf("%s must have 3 points per line only", filename)
	}

	triangles := make([]Triangle, 0, count)
	for i := int64(1); i <= count; i++ {
		s.Int64() // triangle ordinal
		t := Triangle{
			V1:     s.Int64(),
			V2:     s.Int64(),
			V3:     s.Int64(),
			Region: s.Int64(),
		}
		if s.err != nil {
			return nil, s.err
		}
		triangles = append(triangles, t)
	}
	return triangles, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteNodeFile writes the registry as a .node file sorted by ordinal,
// with the id of each point as its single attribute.
func WriteNodeFile(filename string, nodes *geometry.Nodes) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Could not open %s for writing", filename)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d 2 1 0\n", nodes.Len())
	for ordinal := int64(1); ordinal <= int64(nodes.Len()); ordinal++ {
		pt := nodes.Point(ordinal)
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
			ordinal, formatCoord(pt.X), formatCoord(pt.Y), nodes.ID(pt))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("Error writing %s: %s", filename, err)
	}
	return nil
}

// WritePolyFile writes the sequential ring edges of the given polygons
// as a .poly file, numbering nodes through the registry. No holes are
// declared. When regionPoints is not nil, a region section follows
// with one interior point per original polygon, tagged by the polygon
// ordinal.
func WritePolyFile(filename string, polygons []*geometry.Polygon, nodes *geometry.Nodes, regionPoints []geometry.Point) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Could not open %s for writing", filename)
	}
	defer out.Close()

	count := 0
	for _, poly := range polygons {
		if poly.Len() > 0 {
			count += poly.Len() - 1
		}
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "0 2 0 0\n") // no nodes in .poly
	fmt.Fprintf(w, "%d 0\n", count)

	edge := int64(0)
	for _, poly := range polygons {
		points := poly.Points()
		for i := 1; i < len(points); i++ {
			edge++
			fmt.Fprintf(w, "%d\t%d\t%d\n",
				edge, nodes.Number(points[i-1]), nodes.Number(points[i]))
		}
	}

	// No holes
	fmt.Fprintf(w, "0\n")

	if regionPoints != nil {
		fmt.Fprintf(w, "%d\n", len(regionPoints))
		for i, pt := range regionPoints {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
				i+1, formatCoord(pt.X), formatCoord(pt.Y), i+1)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("Error writing %s: %s", filename, err)
	}
	return nil
}

// WriteEleFile writes the triangles as a .ele file, renumbered from 1.
func WriteEleFile(filename string, triangles []Triangle) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Could not open %s for writing", filename)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d 3 1\n", len(triangles))
	for i, t := range triangles {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", i+1, t.V1, t.V2, t.V3, t.Region)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("Error writing %s: %s", filename, err)
	}
	return nil
}
