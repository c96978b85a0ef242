package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"national-connect-backend/internal/handlers"
	"national-connect-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadPhoto posts a multipart upload with the given file and form fields
func (a *testAPI) uploadPhoto(t *testing.T, filename, contentType string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestUploadPhotoEndpoint(t *testing.T) {
	api := newTestAPI(t)
	alice := api.register(t, "Alice")

	w := api.uploadPhoto(t, "cat.jpg", "image/jpeg", []byte("jpeg-bytes"), map[string]string{
		"userId":  alice.ID,
		"caption": "my cat",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[handlers.PhotoResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Photo uploaded successfully", resp.Message)
	require.NotNil(t, resp.Photo)
	assert.Equal(t, alice.ID, resp.Photo.UserID)
	assert.Equal(t, "Alice", resp.Photo.UserName)
	assert.Equal(t, "my cat", resp.Photo.Caption)
	assert.Equal(t, 0, resp.Photo.Likes)
	assert.True(t, strings.HasPrefix(resp.Photo.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.Photo.Filename, "-cat.jpg"))

	// The bytes really landed on disk.
	data, err := os.ReadFile(filepath.Join(api.uploadDir, resp.Photo.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestUploadPhotoEndpointNoFile(t *testing.T) {
	api := newTestAPI(t)
	alice := api.register(t, "Alice")

	w := api.uploadPhoto(t, "", "", nil, map[string]string{"userId": alice.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[handlers.ErrorResponse](t, w)
	assert.Equal(t, "No photo uploaded", resp.Error)
}

func TestUploadPhotoEndpointNoUserID(t *testing.T) {
	api := newTestAPI(t)

	w := api.uploadPhoto(t, "cat.jpg", "image/jpeg", []byte("x"), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[handlers.ErrorResponse](t, w)
	assert.Equal(t, "userId is required", resp.Error)
}

func TestUploadPhotoEndpointUnknownUser(t *testing.T) {
	api := newTestAPI(t)

	w := api.uploadPhoto(t, "cat.jpg", "image/jpeg", []byte("x"), map[string]string{"userId": "ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, api.photos.Count())
}

func TestUploadPhotoEndpointRejectsNonImage(t *testing.T) {
	api := newTestAPI(t)
	alice := api.register(t, "Alice")

	w := api.uploadPhoto(t, "notes.txt", "text/plain", []byte("x"), map[string]string{"userId": alice.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[handlers.ErrorResponse](t, w)
	assert.Equal(t, "Images only!", resp.Error)
}

func TestListPhotosEndpointNewestFirst(t *testing.T) {
	api := newTestAPI(t)
	api.photos.Create(models.Photo{ID: "p1", UserID: "u1"})
	api.photos.Create(models.Photo{ID: "p2", UserID: "u2"})
	api.photos.Create(models.Photo{ID: "p3", UserID: "u1"})

	w := api.do(t, http.MethodGet, "/api/photos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[handlers.ListPhotosResponse](t, w)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Photos, 3)
	assert.Equal(t, "p3", resp.Photos[0].ID)
	assert.Equal(t, "p2", resp.Photos[1].ID)
	assert.Equal(t, "p1", resp.Photos[2].ID)

	w = api.do(t, http.MethodGet, "/api/photos?userId=u1", nil)
	resp = decodeBody[handlers.ListPhotosResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "p3", resp.Photos[0].ID)
}

func TestLikePhotoEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.photos.Create(models.Photo{ID: "p1", UserID: "u1"})

	for i := 1; i <= 2; i++ {
		w := api.do(t, http.MethodPost, "/api/photos/p1/like", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[handlers.PhotoResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Photo liked", resp.Message)
		assert.Equal(t, i, resp.Photo.Likes)
	}
}

func TestLikePhotoEndpointNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/photos/ghost/like", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeBody[handlers.ErrorResponse](t, w)
	assert.Equal(t, "Photo not found", resp.Error)
}
