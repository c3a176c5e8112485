package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/pkg/response"
)

type ImageHandler struct {
	Images *application.ImageStore
	Logger *logrus.Logger
}

func NewImageHandler(images *application.ImageStore, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{Images: images, Logger: logger}
}

// Upload accepts a multipart "file" field and returns its public URL.
func (h *ImageHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, application.MaxImageSize+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", gin.H{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Images.Upload(c.Request.Context(), f)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "image uploaded", nil)
}
