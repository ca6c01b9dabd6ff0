package web

import (
	"context"
	"net/http"
)

type ctxKey int

const writerKey ctxKey = 1

// setWriter stores the response writer in the context so middleware that
// needs to set headers (CORS, caching) can reach it.
func setWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, writerKey, w)
}

// GetWriter returns the underlying response writer, or nil when the handler
// was not invoked through the framework.
func GetWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(writerKey).(http.ResponseWriter)
	if !ok {
		return nil
	}
	return w
}
