package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgsite-backend/internal/domains/upload"
	"orgsite-backend/internal/shared/response"
)

// multipartOverhead covers form boundaries and the folder field.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	service upload.Service
}

func NewUploadHandler(service upload.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/v1/upload (multipart: file, folder?)
func (h *UploadHandler) Upload(c *gin.Context) {
	limit := h.service.MaxBytes()
	if limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.HandleError(c, upload.ErrFileTooLarge)
			return
		}
		response.HandleError(c, upload.ErrFileRequired)
		return
	}
	if limit > 0 && fh.Size > limit {
		response.HandleError(c, upload.ErrFileTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}

	result, err := h.service.Upload(c.Request.Context(), &upload.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Folder:      c.PostForm("folder"),
		Data:        data,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.OK(c, result)
}
