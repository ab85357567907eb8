package api

import (
	"context"
	"net/http"
	"strings"

	apperrors "abcretail/internal/errors"
)

// UploadProofOfPayment streams the file as the first multipart part, followed
// by the optional correlation fields. It returns the file name the backend
// stored the upload under, falling back to the submitted name when the
// response omits one.
func (c *Client) UploadProofOfPayment(ctx context.Context, upload UploadRequest) (string, error) {
	fb := newFormBuilder()
	fb.file("ProofOfPayment", upload.FileName, upload.ContentType, upload.File)
	if strings.TrimSpace(upload.OrderID) != "" {
		fb.field("OrderId", upload.OrderID)
	}
	if strings.TrimSpace(upload.CustomerName) != "" {
		fb.field("CustomerName", upload.CustomerName)
	}

	body, contentType, err := fb.build()
	if err != nil {
		return "", apperrors.NewRequestError(0, "building upload form", err)
	}

	resp, err := c.send(ctx, http.MethodPost, uploadsRoute, contentType, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return "", err
	}

	var result uploadResponse
	if err := decodeInto(resp, "upload", &result); err != nil {
		return "", err
	}

	if result.FileName == "" {
		return upload.FileName, nil
	}
	return result.FileName, nil
}
