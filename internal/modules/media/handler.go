package media

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"candidateportal/internal/domain"
	"candidateportal/internal/filestore"
)

type Handler struct {
	store ObjectStore
}

func NewHandler(store ObjectStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/file/resume/:fileId", h.DownloadResume)
	rg.GET("/file/video/:fileId", h.StreamVideo)
}

// DownloadResume serves the whole resume as an attachment. Headers come from
// the descriptor, so they are sent before the first chunk is read.
func (h *Handler) DownloadResume(c *gin.Context) {
	fileID := c.Param("fileId")
	if _, err := uuid.Parse(fileID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file id"})
		return
	}

	ctx := c.Request.Context()
	desc, err := h.store.Describe(ctx, domain.ResumeBucket, fileID)
	if err != nil {
		h.lookupError(c, err)
		return
	}

	rc, err := h.store.Open(ctx, domain.ResumeBucket, fileID)
	if err != nil {
		h.lookupError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, desc.Length, desc.ContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", desc.Filename),
	})
}

// StreamVideo serves the video whole, or a single byte range for seekable
// playback. Only "bytes=<start>-<end?>" ranges are honored; anything else is
// answered 416 with the object's length.
func (h *Handler) StreamVideo(c *gin.Context) {
	fileID := c.Param("fileId")
	if _, err := uuid.Parse(fileID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file id"})
		return
	}

	ctx := c.Request.Context()
	desc, err := h.store.Describe(ctx, domain.VideoBucket, fileID)
	if err != nil {
		h.lookupError(c, err)
		return
	}

	rangeHeader := c.GetHeader("Range")
	if rangeHeader == "" {
		rc, err := h.store.Open(ctx, domain.VideoBucket, fileID)
		if err != nil {
			h.lookupError(c, err)
			return
		}
		defer rc.Close()
		c.DataFromReader(http.StatusOK, desc.Length, desc.ContentType, rc, nil)
		return
	}

	start, end, err := filestore.ParseRange(rangeHeader, desc.Length)
	if err != nil {
		c.Header("Content-Range", fmt.Sprintf("bytes */%d", desc.Length))
		c.JSON(http.StatusRequestedRangeNotSatisfiable, gin.H{"message": "Invalid range"})
		return
	}

	rc, err := h.store.OpenRange(ctx, domain.VideoBucket, fileID, start, end)
	if err != nil {
		h.lookupError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusPartialContent, end-start+1, desc.ContentType, rc, map[string]string{
		"Content-Range": fmt.Sprintf("bytes %d-%d/%d", start, end, desc.Length),
		"Accept-Ranges": "bytes",
	})
}

func (h *Handler) lookupError(c *gin.Context, err error) {
	if errors.Is(err, filestore.ErrFileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}
