package handlers

import (
	"context"
	"net/http"
	"strings"

	"notes-api/internal/services"
	"notes-api/pkg/lambda"
)

// Router dispatches a request to the matching note operation. Routing is
// on method and path only; the first matching rule wins.
type Router struct {
	notes *NoteHandler
}

// NewRouter creates a router over the note service
func NewRouter(noteService services.NoteService) *Router {
	return &Router{
		notes: NewNoteHandler(noteService),
	}
}

// Route handles one request end to end. A non-nil error is an execution
// fault: malformed input or a store failure.
func (r *Router) Route(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	result, err := r.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return Encode(result)
}

// Dispatch selects the operation for req and returns its Result
func (r *Router) Dispatch(ctx context.Context, req *lambda.Request) (Result, error) {
	switch {
	case req.Method == http.MethodOptions:
		return r.notes.HandlePreflight(), nil
	case req.Method == http.MethodGet && req.Path == NotesPath:
		return r.notes.HandleList(ctx, req)
	case req.Method == http.MethodPost && req.Path == NotesPath:
		return r.notes.HandleCreate(ctx, req)
	case req.Method == http.MethodDelete && strings.HasPrefix(req.Path, noteItemPrefix):
		return r.notes.HandleDelete(ctx, req)
	default:
		return NotFound(req.Method, req.Path), nil
	}
}

// Handler exposes the router as a framework-agnostic handler func
func (r *Router) Handler() lambda.HandlerFunc {
	return r.Route
}
