package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"youact-backend/internal/config"
	"youact-backend/internal/database"
	"youact-backend/internal/models"
	"youact-backend/internal/server"
	"youact-backend/internal/services"
)

const apiSecret = "handler-test-secret-that-is-long-enough"

type memoryImages struct {
	uploaded int
}

func (m *memoryImages) UploadFile(userID, projectID uuid.UUID, filename string, data []byte, contentType string) (string, string, error) {
	m.uploaded++
	path := "users/" + userID.String() + "/projects/" + projectID.String() + "/" + filename
	return path, "https://cdn.example/" + path, nil
}

func (m *memoryImages) DeleteProjectFiles(uuid.UUID, uuid.UUID) error { return nil }

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T, images services.ImageStore) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.JWTSecret = apiSecret
	cfg.MaxImageBytes = 1024

	router := server.NewRouter(server.Deps{
		Config: cfg,
		Store:  database.NewMemoryStore(),
		Images: images,
		Logger: log.New(io.Discard),
	})
	return &apiClient{t: t, router: router}
}

func token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID.String()}).
		SignedString([]byte(apiSecret))
	require.NoError(t, err)
	return signed
}

func (a *apiClient) do(user uuid.UUID, method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+token(a.t, user))
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *apiClient) createProject(user uuid.UUID, link string) models.ProjectResponse {
	a.t.Helper()
	w := a.do(user, "POST", "/api/v1/projects", models.CreateProjectRequest{Title: "Lesson", VideoLink: link})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.ProjectResponse](a.t, w)
}

func (a *apiClient) createAnnotation(user uuid.UUID, projectID string, ts int, content string) models.AnnotationResponse {
	a.t.Helper()
	w := a.do(user, "POST", "/api/v1/annotations", map[string]any{
		"projectId": projectID,
		"timestamp": ts,
		"content":   content,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.AnnotationResponse](a.t, w)
}

func TestAPI_RequiresAuth(t *testing.T) {
	api := newAPI(t, nil)

	w := api.do(uuid.Nil, "GET", "/api/v1/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_ProjectLifecycle(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()

	p := api.createProject(owner, "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10")
	assert.Equal(t, "dQw4w9WgXcQ", p.VideoID)
	require.NotNil(t, p.Thumbnail)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", *p.Thumbnail)
	assert.Equal(t, owner.String(), p.OwnerID)

	w := api.do(owner, "GET", "/api/v1/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(owner, "PUT", "/api/v1/projects/"+p.ID, `{"title":"Renamed","isPublic":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.ProjectResponse](t, w)
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, "dQw4w9WgXcQ", updated.VideoID)

	w = api.do(owner, "GET", "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.ProjectListResponse](t, w)
	assert.Equal(t, 1, list.Count)

	w = api.do(owner, "DELETE", "/api/v1/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(owner, "GET", "/api/v1/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_UnresolvableLinkHasNullThumbnail(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()

	w := api.do(owner, "POST", "/api/v1/projects", models.CreateProjectRequest{
		Title:     "Channel",
		VideoLink: "https://www.youtube.com/channel/UCabc",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"videoId":""`)
	assert.Contains(t, w.Body.String(), `"thumbnail":null`)
}

func TestAPI_ProjectErrors(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")

	w := api.do(owner, "POST", "/api/v1/projects", models.CreateProjectRequest{Title: "x", VideoLink: "https://vimeo.com/1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(owner, "POST", "/api/v1/projects", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(owner, "GET", "/api/v1/projects/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(uuid.New(), "GET", "/api/v1/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(uuid.New(), "DELETE", "/api/v1/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(owner, "GET", "/api/v1/projects/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_AnnotationsAndTimeline(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")

	intro := api.createAnnotation(owner, p.ID, 30, "intro")
	chorus := api.createAnnotation(owner, p.ID, 90, "chorus")
	api.createAnnotation(owner, p.ID, 200, "outro")

	w := api.do(owner, "GET", "/api/v1/projects/"+p.ID+"/annotations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.AnnotationListResponse](t, w)
	require.Equal(t, 3, list.Count)
	assert.Equal(t, intro.ID, list.Annotations[0].ID)

	w = api.do(owner, "GET", "/api/v1/projects/"+p.ID+"/timeline?t=95.7", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view := decode[models.TimelineResponse](t, w)
	assert.Equal(t, 95, view.CurrentTime)
	require.Len(t, view.Visible, 2)
	assert.Equal(t, chorus.ID, view.Visible[0].ID)
	assert.Equal(t, intro.ID, view.Visible[1].ID)
	require.Len(t, view.Overview, 3)
	assert.Equal(t, "0:30", view.Overview[0].Clock)
	assert.Equal(t, "intro", view.Overview[0].Label)
	assert.False(t, view.Overview[2].Active)

	w = api.do(owner, "GET", "/api/v1/projects/"+p.ID+"/timeline", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.TimelineResponse](t, w).Visible)

	for _, bad := range []string{"-1", "abc", "NaN"} {
		w = api.do(owner, "GET", "/api/v1/projects/"+p.ID+"/timeline?t="+bad, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestAPI_AnnotationUpdateAndDelete(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")
	a := api.createAnnotation(owner, p.ID, 10, "note")

	w := api.do(owner, "PUT", "/api/v1/annotations/"+a.ID, `{"contentType":"embed","content":"https://youtu.be/abcdefghijk"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.AnnotationResponse](t, w)
	assert.Equal(t, 10, updated.Timestamp)
	require.NotNil(t, updated.Embed)
	assert.Equal(t, "abcdefghijk", updated.Embed.VideoID)

	w = api.do(uuid.New(), "PUT", "/api/v1/annotations/"+a.ID, `{"content":"hijack"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(owner, "PUT", "/api/v1/annotations/"+a.ID, `{"timestamp":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(owner, "DELETE", "/api/v1/annotations/"+a.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(owner, "DELETE", "/api/v1/annotations/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_CreateAnnotationErrors(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")

	w := api.do(owner, "POST", "/api/v1/annotations", map[string]any{"projectId": p.ID, "content": "no time"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(uuid.New(), "POST", "/api/v1/annotations", map[string]any{"projectId": p.ID, "timestamp": 1, "content": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(owner, "POST", "/api/v1/annotations", map[string]any{"projectId": uuid.New().String(), "timestamp": 1, "content": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_DeleteProjectRemovesAnnotations(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")
	a := api.createAnnotation(owner, p.ID, 10, "note")

	w := api.do(owner, "DELETE", "/api/v1/projects/"+p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(owner, "PUT", "/api/v1/annotations/"+a.ID, `{"content":"still here?"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func uploadRequest(t *testing.T, user uuid.UUID, projectID string, field string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "picture.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", "/api/v1/projects/"+projectID+"/images", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token(t, user))
	return req
}

func TestAPI_ImageUpload(t *testing.T) {
	images := &memoryImages{}
	api := newAPI(t, images)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, owner, p.ID, "image", png))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[models.ImageUploadResponse](t, w)
	assert.Contains(t, resp.URL, resp.StoragePath)
	assert.Equal(t, 1, images.uploaded)

	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, owner, p.ID, "file", png))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, owner, p.ID, "image", bytes.Repeat([]byte("a"), 2048)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, uuid.New(), p.ID, "image", png))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAPI_ImageUploadWithoutStorage(t *testing.T) {
	api := newAPI(t, nil)
	owner := uuid.New()
	p := api.createProject(owner, "https://youtu.be/dQw4w9WgXcQ")

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, uploadRequest(t, owner, p.ID, "image", []byte("\x89PNG\r\n\x1a\n")))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
