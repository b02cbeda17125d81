package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bangre/mediatheque/internal/flash"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// pendingFlash pops the one-time notice cookie for embedding in a view
func pendingFlash(w http.ResponseWriter, r *http.Request) *flash.Notice {
	if notice, ok := flash.ReadAndClear(w, r); ok {
		return &notice
	}
	return nil
}

// noticeRef adapts a notice for the optional view field
func noticeRef(n flash.Notice) *flash.Notice {
	return &n
}
