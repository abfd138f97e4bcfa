package formatting

import (
	"fmt"
	"io"

	"github.com/havenmesh/triangulate/types"
)

// VertexString renders a vertex for debugging.
func VertexString(v types.Vertex) string {
	if v.Ghost {
		return "Vertex(ghost)"
	}
	return fmt.Sprintf("Vertex(%s)", PointString(v.Point))
}

// WriteVertex writes a vertex representation to a writer.
func WriteVertex(w io.Writer, v types.Vertex) error {
	_, err := io.WriteString(w, VertexString(v))
	return err
}
