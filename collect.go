// Package shapetools implements the polygon amalgamation pipeline:
// converting shapefile ring data to planar straight line graph files
// for an external Delaunay triangulizer, merging nearby regions based
// on the resulting triangulation, and converting the merged graphs
// back into shapefiles.
package shapetools

import (
	"github.com/fmidev/smartmet-shapetools/geometry"
)

// CollectPolygons splits a flat movement path into one polygon per
// ring, flushing at every MoveTo. Rings whose cartographic area is
// below areaLimit are dropped; a non-positive limit keeps everything.
func CollectPolygons(path geometry.Path, areaLimit float64) []*geometry.Polygon {
	var polygons []*geometry.Polygon
	poly := &geometry.Polygon{}

	flush := func() {
		if poly.Empty() {
			return
		}
		if areaLimit <= 0 || poly.GeoArea() >= areaLimit {
			polygons = append(polygons, poly)
			poly = &geometry.Polygon{}
		} else {
			poly.Clear()
		}
	}

	for _, el := range path {
		if el.Op == geometry.MoveTo {
			flush()
		}
		poly.Add(el.Point)
	}
	flush()

	return polygons
}

// CollectPolylines splits a flat movement path into one polyline per
// part, flushing at every MoveTo.
func CollectPolylines(path geometry.Path) []*geometry.Polyline {
	var lines []*geometry.Polyline
	line := &geometry.Polyline{}

	flush := func() {
		if !line.Empty() {
			lines = append(lines, line)
			line = &geometry.Polyline{}
		}
	}

	for _, el := range path {
		if el.Op == geometry.MoveTo {
			flush()
		}
		line.Add(el.Point)
	}
	flush()

	return lines
}

// registerNodes deduplicates the vertices of the polygons through a
// fresh registry, tagging each node with the 1-based ordinal of the
// first polygon it appears in.
func registerNodes(polygons []*geometry.Polygon) *geometry.Nodes {
	nodes := geometry.NewNodes()
	for i, poly := range polygons {
		for _, pt := range poly.Points() {
			nodes.Add(pt, int64(i)+1)
		}
	}
	return nodes
}
