package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"notes-api/internal/services"
	"notes-api/pkg/lambda"
)

// NotesPath is the collection path; item paths extend it with "/<noteId>"
const NotesPath = "/notes"

const noteItemPrefix = NotesPath + "/"

// NoteHandler handles note-related requests
type NoteHandler struct {
	noteService services.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// HandlePreflight answers CORS preflight requests for any path
func (h *NoteHandler) HandlePreflight() Result {
	return OK(http.StatusOK, AckBody{OK: true})
}

// HandleList returns the most recent notes
// @Summary List notes
// @Description Scans up to 25 notes and returns them newest first
// @Tags notes
// @Produce json
// @Success 200 {object} handlers.ListBody
// @Router /notes [get]
func (h *NoteHandler) HandleList(ctx context.Context, req *lambda.Request) (Result, error) {
	items, err := h.noteService.ListNotes(ctx)
	if err != nil {
		return Result{}, err
	}
	return OK(http.StatusOK, ListBody{Items: items}), nil
}

// HandleCreate creates a note from a {"text": "..."} body
// @Summary Create a note
// @Description Creates a note with a server generated id and timestamp
// @Tags notes
// @Accept json
// @Produce json
// @Param note body services.CreateNoteRequest true "Note text"
// @Success 201 {object} models.Note
// @Failure 400 {object} handlers.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) HandleCreate(ctx context.Context, req *lambda.Request) (Result, error) {
	createReq, err := decodeCreateRequest(req)
	if err != nil {
		return Result{}, err
	}

	note, err := h.noteService.CreateNote(ctx, createReq)
	if err != nil {
		if services.IsValidationError(err) {
			return ValidationFailed(err.Error()), nil
		}
		return Result{}, err
	}

	return OK(http.StatusCreated, note), nil
}

// HandleDelete deletes the note named by the path
// @Summary Delete a note
// @Description Deletes a note by id; deleting a missing id still succeeds
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} handlers.DeletedBody
// @Failure 400 {object} handlers.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) HandleDelete(ctx context.Context, req *lambda.Request) (Result, error) {
	noteID := NoteIDFromPath(req.Path)

	if err := h.noteService.DeleteNote(ctx, noteID); err != nil {
		if services.IsValidationError(err) {
			return ValidationFailed(err.Error()), nil
		}
		return Result{}, err
	}

	return OK(http.StatusOK, DeletedBody{Deleted: noteID}), nil
}

// NoteIDFromPath returns everything after the first "/notes/" in path
func NoteIDFromPath(path string) string {
	_, id, found := strings.Cut(path, noteItemPrefix)
	if !found {
		return ""
	}
	return id
}

// decodeCreateRequest reads the create body. Undecodable base64, invalid
// JSON and non-object documents are faults, not validation failures.
func decodeCreateRequest(req *lambda.Request) (*services.CreateNoteRequest, error) {
	raw, err := req.DecodedBody()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrMalformedBody, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", services.ErrMalformedBody)
	}
	// Only a missing plain body defaults to an empty object. An encoded body
	// that decodes to nothing is not JSON.
	if len(raw) == 0 && !req.IsBase64Encoded {
		raw = []byte("{}")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrMalformedBody, err)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", services.ErrMalformedBody)
	}

	createReq := &services.CreateNoteRequest{}
	textRaw, ok := body["text"]
	if !ok {
		return createReq, nil
	}

	var text any
	if err := json.Unmarshal(textRaw, &text); err != nil {
		return nil, fmt.Errorf("%w: text: %v", services.ErrMalformedBody, err)
	}
	switch v := text.(type) {
	case string:
		createReq.Text = v
	default:
		// Empty-ish values (null, false, 0, [], {}) mean no text was given;
		// anything else is not text at all.
		if !isEmptyJSONValue(v) {
			return nil, fmt.Errorf("%w: text must be a string", services.ErrMalformedBody)
		}
	}
	return createReq, nil
}

func isEmptyJSONValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}

// IsFault reports whether err came from a request the handler could not
// interpret at all
func IsFault(err error) bool {
	return errors.Is(err, services.ErrMalformedBody)
}
