package candidate

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidateportal/internal/database"
	"candidateportal/internal/domain"
	"candidateportal/internal/filestore"
	"candidateportal/internal/repository"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Candidate{}, &domain.FileDescriptor{}, &domain.FileChunk{}))

	store := filestore.NewStore(db, 1024)
	repo := repository.NewCandidateRepository(db)
	handler := NewHandler(NewService(repo, store))

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// multipartBody builds a multipart form; CreatePart is used directly because
// CreateFormFile pins the part's Content-Type to application/octet-stream.
func multipartBody(t *testing.T, fields map[string]string, file *filePart) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			`form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func candidateFields() map[string]string {
	return map[string]string{
		"firstName":       "Jane",
		"lastName":        "Doe",
		"positionApplied": "Engineer",
		"currentPosition": "Analyst",
		"experienceYears": "3",
	}
}

func postMultipart(router *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createCandidate(t *testing.T, router *gin.Engine) string {
	t.Helper()
	body, ct := multipartBody(t, candidateFields(), &filePart{
		field: "resume", filename: "jane.pdf", contentType: "application/pdf",
		data: []byte("%PDF-1.4 resume body"),
	})
	w := postMultipart(router, "/api/candidate", body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message     string `json:"message"`
		CandidateID string `json:"candidateId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Candidate saved", resp.Message)

	_, err := uuid.Parse(resp.CandidateID)
	require.NoError(t, err)
	return resp.CandidateID
}

func TestCreateCandidate(t *testing.T) {
	router := setupRouter(t)
	id := createCandidate(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/candidate/"+id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cand domain.Candidate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cand))
	assert.Equal(t, "Jane", cand.FirstName)
	assert.Equal(t, "Doe", cand.LastName)
	assert.Equal(t, 3.0, cand.ExperienceYears)
	assert.NotEmpty(t, cand.ResumeFileID)
	assert.Nil(t, cand.VideoFileID)
}

func TestCreateCandidateMissingResume(t *testing.T) {
	router := setupRouter(t)

	body, ct := multipartBody(t, candidateFields(), nil)
	w := postMultipart(router, "/api/candidate", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Resume (PDF) is required.")
}

func TestCreateCandidateRejectsNonPDF(t *testing.T) {
	router := setupRouter(t)

	body, ct := multipartBody(t, candidateFields(), &filePart{
		field: "resume", filename: "jane.txt", contentType: "text/plain",
		data: []byte("not a pdf"),
	})
	w := postMultipart(router, "/api/candidate", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Resume must be a PDF.")
}

func TestCreateCandidateMissingFields(t *testing.T) {
	router := setupRouter(t)

	fields := candidateFields()
	delete(fields, "firstName")
	body, ct := multipartBody(t, fields, &filePart{
		field: "resume", filename: "jane.pdf", contentType: "application/pdf",
		data: []byte("%PDF-1.4"),
	})
	w := postMultipart(router, "/api/candidate", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required.")
}

func TestCreateCandidateInvalidExperience(t *testing.T) {
	router := setupRouter(t)

	fields := candidateFields()
	fields["experienceYears"] = "-2"
	body, ct := multipartBody(t, fields, &filePart{
		field: "resume", filename: "jane.pdf", contentType: "application/pdf",
		data: []byte("%PDF-1.4"),
	})
	w := postMultipart(router, "/api/candidate", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "non-negative number")
}

func TestUploadVideo(t *testing.T) {
	router := setupRouter(t)
	id := createCandidate(t, router)

	body, ct := multipartBody(t, nil, &filePart{
		field: "video", filename: "intro.webm", contentType: "video/webm",
		data: bytes.Repeat([]byte("v"), 3000),
	})
	w := postMultipart(router, "/api/candidate/"+id+"/video", body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message     string `json:"message"`
		VideoFileID string `json:"videoFileId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Video uploaded", resp.Message)
	require.NotEmpty(t, resp.VideoFileID)

	// the candidate record now links the video
	req := httptest.NewRequest(http.MethodGet, "/api/candidate/"+id, nil)
	get := httptest.NewRecorder()
	router.ServeHTTP(get, req)
	require.Equal(t, http.StatusOK, get.Code)

	var cand domain.Candidate
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &cand))
	require.NotNil(t, cand.VideoFileID)
	assert.Equal(t, resp.VideoFileID, *cand.VideoFileID)
}

func TestUploadVideoUnknownCandidate(t *testing.T) {
	router := setupRouter(t)

	body, ct := multipartBody(t, nil, &filePart{
		field: "video", filename: "intro.webm", contentType: "video/webm",
		data: []byte("webm"),
	})
	w := postMultipart(router, "/api/candidate/"+uuid.New().String()+"/video", body, ct)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Candidate not found")
}

func TestUploadVideoInvalidCandidateID(t *testing.T) {
	router := setupRouter(t)

	body, ct := multipartBody(t, nil, &filePart{
		field: "video", filename: "intro.webm", contentType: "video/webm",
		data: []byte("webm"),
	})
	w := postMultipart(router, "/api/candidate/not-a-uuid/video", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid candidate id")
}

func TestUploadVideoUnsupportedFormat(t *testing.T) {
	router := setupRouter(t)
	id := createCandidate(t, router)

	body, ct := multipartBody(t, nil, &filePart{
		field: "video", filename: "intro.avi", contentType: "video/avi",
		data: []byte("avi"),
	})
	w := postMultipart(router, "/api/candidate/"+id+"/video", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported video format")
}

func TestUploadVideoMissingFile(t *testing.T) {
	router := setupRouter(t)
	id := createCandidate(t, router)

	body, ct := multipartBody(t, map[string]string{"note": "no file"}, nil)
	w := postMultipart(router, "/api/candidate/"+id+"/video", body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Video is required")
}

func TestGetCandidateNotFound(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidate/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCandidateInvalidID(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidate/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
