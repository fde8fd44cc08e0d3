package candidate

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"candidateportal/internal/domain"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidate", h.Create)
	rg.POST("/candidate/:id/video", h.UploadVideo)
	rg.GET("/candidate/:id", h.GetByID)
}

func (h *Handler) Create(c *gin.Context) {
	req := CreateCandidateRequest{
		FirstName:       c.PostForm("firstName"),
		LastName:        c.PostForm("lastName"),
		PositionApplied: c.PostForm("positionApplied"),
		CurrentPosition: c.PostForm("currentPosition"),
		ExperienceYears: c.PostForm("experienceYears"),
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resume (PDF) is required."})
		return
	}
	resume, err := readUploadedFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error reading resume", "error": err.Error()})
		return
	}

	cand, err := h.service.CreateWithResume(c.Request.Context(), req, resume)
	if err != nil {
		switch err {
		case ErrValidation:
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		case ErrInvalidExperience:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Experience in Years must be a non-negative number."})
		case ErrMissingFile:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Resume (PDF) is required."})
		case ErrInvalidFileType:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Resume must be a PDF."})
		case ErrFileTooLarge:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Resume must be 5 MB or smaller."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving candidate/resume", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Candidate saved", "candidateId": cand.ID})
}

func (h *Handler) UploadVideo(c *gin.Context) {
	candidateID := c.Param("id")
	if _, err := uuid.Parse(candidateID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate id"})
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Video is required"})
		return
	}
	video, err := readUploadedFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error reading video", "error": err.Error()})
		return
	}

	fileID, err := h.service.AttachVideo(c.Request.Context(), candidateID, video)
	if err != nil {
		switch err {
		case domain.ErrCandidateNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		case ErrMissingFile:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Video is required"})
		case ErrInvalidFileType:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported video format"})
		case ErrFileTooLarge:
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File too large", "error": "Max size exceeded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving video", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video uploaded", "videoFileId": fileID})
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate id"})
		return
	}

	cand, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch err {
		case domain.ErrCandidateNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, cand)
}

// readUploadedFile buffers the multipart part into the boundary value type.
// Uploads are whole-buffer by contract; resumable/multipart client protocols
// are out of scope.
func readUploadedFile(fh *multipart.FileHeader) (domain.UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.UploadedFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.UploadedFile{}, err
	}

	contentType := fh.Header.Get("Content-Type")
	contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

	return domain.UploadedFile{
		ContentType:  contentType,
		DeclaredName: fh.Filename,
		SizeBytes:    int64(len(data)),
		Data:         data,
	}, nil
}
