package handlers

import (
	"NoteKeeper/internal/middleware"
	"NoteKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NoteHandler обрабатывает CRUD заметок. Все маршруты за Auth-мидлварью.
type NoteHandler struct {
	NoteService *service.NoteService
	Logger      *zap.SugaredLogger
}

// NewNoteHandler создаёт хендлер notes
func NewNoteHandler(noteService *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{NoteService: noteService, Logger: logger}
}

// NoteRequest — тело create/update.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create создаёт заметку текущего пользователя.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.NoteService.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.writeNoteError(w, "Create", userID, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// List отдаёт все заметки пользователя, свежие первыми.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := h.NoteService.List(r.Context(), userID)
	if err != nil {
		h.writeNoteError(w, "List", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// GetOne отдаёт одну заметку по id.
func (h *NoteHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	note, err := h.NoteService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeNoteError(w, "GetOne", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Update перезаписывает title/content заметки.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.NoteService.Update(r.Context(), userID, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		h.writeNoteError(w, "Update", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Delete безвозвратно удаляет заметку.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.NoteService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeNoteError(w, "Delete", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "note deleted"})
}

// writeNoteError маппит ошибки сервиса в HTTP-коды.
// Валидация — 400 с конкретным полем, not found — одинаковый 404
// для отсутствующей и чужой заметки, остальное — обезличенный 500
// с деталями только в лог.
func (h *NoteHandler) writeNoteError(w http.ResponseWriter, op string, userID int64, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrContentRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNoteNotFound):
		http.Error(w, "note not found", http.StatusNotFound)
	default:
		h.Logger.Errorw(op+": service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
