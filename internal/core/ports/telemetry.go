package ports

import (
	"context"
	"io"
)

// Telemetry records per-activity progress during an experiment run.
type Telemetry interface {
	// Record opens a vertex for the named activity.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one activity being recorded.
type Vertex interface {
	// Stdout returns a writer capturing the activity's standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing the activity's error output.
	Stderr() io.Writer
	// Complete marks the vertex as finished, with a nil error on success.
	Complete(err error)
}

type vertexContextKey struct{}

// ContextWithVertex stores the vertex in the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext retrieves the vertex stored by ContextWithVertex.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
