package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/dialog/deps"
	"github.com/voicetips/tips-service/internal/domain/dialog/dto"
	dialogerrors "github.com/voicetips/tips-service/internal/domain/dialog/errors"
)

// Handler exposes the fulfillment webhook: one POST per conversational turn
type Handler struct {
	usecase deps.DialogUseCase
	logger  zerolog.Logger
}

func NewHandler(usecase deps.DialogUseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// ServeHTTP implements http.Handler for POST /v1/fulfillment
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	resp, err := h.usecase.HandleTurn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, dialogerrors.ErrUnknownIntent), errors.Is(err, dialogerrors.ErrMissingUserID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error().Err(err).
				Str("intent", req.Intent).
				Msg("turn handling failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode turn response")
	}
}
