package web

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"abcretail/internal/api"
	apperrors "abcretail/internal/errors"
)

func (c *Controller) HandleUploadProofOfPayment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := r.ParseMultipartForm(c.maxUploadBytes); err != nil {
		c.writeValidationError(w, "invalid form body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a multipart form",
		})
		return
	}

	file, header, err := r.FormFile("ProofOfPayment")
	if err != nil || header.Size == 0 {
		c.writeValidationError(w, "no file selected", apperrors.ValidationDetail{
			Field:   "ProofOfPayment",
			Message: "please select a file to upload",
		})
		return
	}

	fileName, err := c.backend.UploadProofOfPayment(r.Context(), api.UploadRequest{
		File:         file,
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		OrderID:      r.FormValue("OrderId"),
		CustomerName: r.FormValue("CustomerName"),
	})
	if err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("proof of payment uploaded", zap.String("fileName", fileName))
	c.writeJSON(w, http.StatusOK, map[string]string{"fileName": fileName})
}
