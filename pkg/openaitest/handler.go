package openaitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Attach(r chi.Router) {
	r.Get("/v1/models", s.handleModels)
	r.Get("/v1/models/{id}", s.handleModel)
	r.Delete("/v1/models/{id}", s.handleModelDelete)

	r.Post("/v1/completions", s.handleEcho("text_completion"))
	r.Post("/v1/chat/completions", s.handleEcho("chat.completion"))
	r.Post("/v1/edits", s.handleEcho("edit"))
	r.Post("/v1/embeddings", s.handleEcho("list"))
	r.Post("/v1/moderations", s.handleEcho("moderation"))

	r.Post("/v1/images/generations", s.handleEcho("image"))
	r.Post("/v1/images/edits", s.handleForm)
	r.Post("/v1/images/variations", s.handleForm)

	r.Post("/v1/audio/transcriptions", s.handleForm)
	r.Post("/v1/audio/translations", s.handleForm)

	r.Get("/v1/files", s.handleList("file"))
	r.Post("/v1/files", s.handleForm)
	r.Get("/v1/files/{id}", s.handleObject("file"))
	r.Delete("/v1/files/{id}", s.handleDeleted("file"))
	r.Get("/v1/files/{id}/content", s.handleFileContent)

	r.Post("/v1/fine-tunes", s.handleEcho("fine-tune"))
	r.Get("/v1/fine-tunes", s.handleList("fine-tune"))
	r.Get("/v1/fine-tunes/{id}", s.handleObject("fine-tune"))
	r.Post("/v1/fine-tunes/{id}/cancel", s.handleObject("fine-tune"))
	r.Get("/v1/fine-tunes/{id}/events", s.handleList("fine-tune-event"))
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]any{
		"object": "list",
		"data": []map[string]any{
			{"id": "gpt-4o-mini", "object": "model", "owned_by": "openai"},
			{"id": "whisper-1", "object": "model", "owned_by": "openai"},
		},
	})
}

func (s *Server) handleModel(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]any{
		"id":       chi.URLParam(r, "id"),
		"object":   "model",
		"owned_by": "openai",
	})
}

func (s *Server) handleModelDelete(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]any{
		"id":      chi.URLParam(r, "id"),
		"object":  "model",
		"deleted": true,
	})
}

// handleEcho answers JSON calls with the decoded request body so callers can
// verify what was sent.
func (s *Server) handleEcho(object string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input any

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("we could not parse the JSON body of your request"))
			return
		}

		writeJson(w, map[string]any{
			"object":  object,
			"request": input,
		})
	}
}

// handleForm answers multipart calls with the field values and file names
// it received.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fields := map[string]string{}

	for name, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	files := map[string]any{}

	for name, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}

		files[name] = map[string]any{
			"filename":     headers[0].Filename,
			"content_type": headers[0].Header.Get("Content-Type"),
			"bytes":        headers[0].Size,
		}
	}

	var order []string

	for name := range fields {
		order = append(order, name)
	}

	for name := range files {
		order = append(order, name)
	}

	sort.Strings(order)

	writeJson(w, map[string]any{
		"fields": fields,
		"files":  files,
		"parts":  order,
	})
}

func (s *Server) handleList(object string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := map[string]any{
			"object": object,
		}

		if id := chi.URLParam(r, "id"); id != "" {
			item["id"] = id
		}

		writeJson(w, map[string]any{
			"object": "list",
			"data":   []any{item},
		})
	}
}

func (s *Server) handleObject(object string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, map[string]any{
			"id":     chi.URLParam(r, "id"),
			"object": object,
		})
	}
}

func (s *Server) handleDeleted(object string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, map[string]any{
			"id":      chi.URLParam(r, "id"),
			"object":  object,
			"deleted": true,
		})
	}
}

// FileContent is served as the content of every uploaded file.
const FileContent = "{\"prompt\": \"hello\", \"completion\": \"world\"}\n{\"prompt\": \"foo\", \"completion\": \"bar\"}\n"

func (s *Server) handleFileContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write([]byte(FileContent))
}
