package shapetools

import (
	"fmt"
	"io"

	"github.com/fmidev/smartmet-shapetools/shapeio"
)

// ShapeDump prints the contents of a shapefile as movement commands,
// one element at a time, with a vertex count summary at the end.
func ShapeDump(shapeName string, w io.Writer) error {
	path, err := shapeio.ReadPath(shapeName)
	if err != nil {
		return err
	}

	lines := CollectPolylines(path)

	vertices := 0
	for i, line := range lines {
		fmt.Fprintf(w, "# element %d: %d points\n", i+1, line.Len())
		fmt.Fprint(w, line.Path("moveto", "lineto", "closepath"))
		vertices += line.Len()
	}
	fmt.Fprintf(w, "# %d elements, %d points\n", len(lines), vertices)
	return nil
}
