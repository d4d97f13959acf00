package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header, enough for content-type sniffing.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func newUploadTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, nil)
	router := gin.New()
	router.POST("/uploads", handler.UploadImage)
	return router
}

func multipartImage(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestUploadImage_InvalidPath(t *testing.T) {
	router := newUploadTestRouter()

	body, contentType := multipartImage(t, "image", "logo.png", pngBytes)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/uploads?path=../../etc", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid path")
}

func TestUploadImage_MissingFile(t *testing.T) {
	router := newUploadTestRouter()

	body, contentType := multipartImage(t, "file", "logo.png", pngBytes)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image")
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	router := newUploadTestRouter()

	body, contentType := multipartImage(t, "image", "notes.png", []byte("just some text pretending to be an image"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")
}

func TestUploadImage_LocalFallback(t *testing.T) {
	chdirTemp(t)
	router := newUploadTestRouter()

	body, contentType := multipartImage(t, "image", "logo.png", pngBytes)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/uploads?path=company-logos", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ImageURL string `json:"image_url"`
		Key      string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Key, "company-logos/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".png"))
	assert.Contains(t, resp.ImageURL, "/uploads/company-logos/")

	// The file must exist on disk under ./uploads
	saved, err := os.ReadFile("./uploads/" + resp.Key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, saved)
}

func TestUploadImage_RootPathAllowed(t *testing.T) {
	chdirTemp(t)
	router := newUploadTestRouter()

	body, contentType := multipartImage(t, "image", "pic.png", pngBytes)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Key, "/")
}
