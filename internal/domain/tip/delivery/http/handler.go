package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/tip/deps"
	tiperrors "github.com/voicetips/tips-service/internal/domain/tip/errors"
)

// CreateTipRequest is the body of the tip authoring endpoint
type CreateTipRequest struct {
	Tip      string `json:"tip"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Handler exposes the tip authoring endpoint
type Handler struct {
	usecase deps.TipUseCase
	logger  zerolog.Logger
}

func NewHandler(usecase deps.TipUseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// ServeHTTP implements http.Handler for POST /v1/tips
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateTipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	tip, err := h.usecase.CreateTip(r.Context(), req.Tip, req.URL, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, tiperrors.ErrInvalidTip), errors.Is(err, tiperrors.ErrReservedCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(tip); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode tip response")
	}
}
