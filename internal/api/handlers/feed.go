package handlers

import (
	"net/http"

	"github.com/baharkarakas/minivenmo/internal/api/httpx"
	"github.com/baharkarakas/minivenmo/internal/services"
)

type FeedHandler struct {
	FeedSvc *services.FeedService
}

// Get handles GET /feed?user_id=.
func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	lines, err := h.FeedSvc.Feed(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"feed": lines})
}
