package api

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedUploadPaths = map[string]bool{
	"":              true,
	"company-logos": true,
	"menus":         true,
	"avatars":       true,
}

const maxUploadSize = 10 * 1024 * 1024

// UploadImage handles POST /uploads?path=. One file per call under the form
// field "image"; the object key is a random name preserving the original
// extension, optionally namespaced under the requested path prefix. The
// response is the public URL the caller stores on its own record. Objects are
// never deleted when a record clears its image URL.
func (h *Handler) UploadImage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	pathPrefix := c.Query("path")
	if !allowedUploadPaths[pathPrefix] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid path",
			Message: "path must be one of company-logos, menus, avatars",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing 'image' form field"})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "File size exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	// Sniff the real content type from the first 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to read file content"})
		return
	}
	contentType := http.DetectContentType(buffer[:n])
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid file type. Only images are allowed"})
		return
	}
	file.Seek(0, 0)

	objectKey := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	if pathPrefix != "" {
		objectKey = pathPrefix + "/" + objectKey
	}

	imageURL, err := h.uploadImage(ctx, objectKey, contentType, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to upload file", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": imageURL, "key": objectKey})
}

// uploadImage tries S3 first and falls back to local disk for development.
func (h *Handler) uploadImage(ctx context.Context, objectKey, contentType string, file multipart.File) (string, error) {
	if h.Uploader.Enabled() {
		url, err := h.Uploader.Upload(ctx, objectKey, contentType, file)
		if err == nil {
			return url, nil
		}
		log.Printf("[UPLOADS] S3 upload failed, falling back to local storage: %v", err)
		file.Seek(0, 0)
	}
	return uploadToLocal(objectKey, file)
}

// uploadToLocal saves the file under ./uploads so development works without
// AWS credentials; the router serves this directory statically.
func uploadToLocal(objectKey string, file multipart.File) (string, error) {
	filePath := filepath.Join("./uploads", filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	baseURL := os.Getenv("SERVICE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/uploads/%s", baseURL, objectKey), nil
}
