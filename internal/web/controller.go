package web

import (
	"net/http"

	"go.uber.org/zap"

	"abcretail/internal/api"
	apperrors "abcretail/internal/errors"

	json "github.com/goccy/go-json"
)

// Controller holds the thin presentation handlers. All state lives behind the
// backend facade; handlers only validate input, delegate and render JSON.
type Controller struct {
	backend        api.FunctionsAPI
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewController(backend api.FunctionsAPI, maxUploadBytes int64, logger *zap.Logger) *Controller {
	return &Controller{
		backend:        backend,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeNotFound(w http.ResponseWriter, message string) {
	c.writeJSON(w, http.StatusNotFound, errorResponse{
		Error:   "NOT_FOUND",
		Message: message,
	})
}

// handleBackendError maps facade errors onto HTTP responses: upstream
// failures become 502, anything else 500. Not-found never reaches here; the
// facade reports it as an absent value.
func (c *Controller) handleBackendError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if re, ok := apperrors.IsRequestError(err); ok {
		logger.Error("backend request failed",
			zap.Int("status", re.StatusCode),
			zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "BACKEND_ERROR",
			Message: "the retail backend could not complete the request",
		})
		return
	}

	if _, ok := apperrors.IsDecodeError(err); ok {
		logger.Error("backend response malformed", zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "MALFORMED_RESPONSE",
			Message: "the retail backend returned an unreadable response",
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}
