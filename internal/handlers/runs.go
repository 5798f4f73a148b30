package handlers

import (
	"net/http"
	"strconv"

	"github.com/example/primesum/internal/store"
	"github.com/example/primesum/pkg/jsonutil"
)

const defaultRunsLimit = 20

// RunsHandler lists recently recorded runs.
type RunsHandler struct {
	Store store.Recorder
}

func NewRunsHandler(rec store.Recorder) *RunsHandler { return &RunsHandler{Store: rec} }

// ServeHTTP handles GET /api/runs?limit=N
func (h *RunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		jsonutil.Error(w, http.StatusServiceUnavailable, "run history disabled")
		return
	}
	limit := defaultRunsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonutil.Error(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	runs, err := h.Store.Recent(r.Context(), store.ClampLimit(limit))
	if err != nil {
		jsonutil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	jsonutil.JSON(w, http.StatusOK, map[string]any{"runs": runs})
}
