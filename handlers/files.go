package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"filegallery/db"
	"filegallery/metrics"
	"filegallery/models"
)

// StorageDir is the blob store root. Overridable for tests.
var StorageDir = "data/uploads"

// MaxUploadBytes caps the size of an upload request body.
var MaxUploadBytes int64 = 100 << 20

// InitStorage creates the blob store directory and records the configured
// upload limits.
func InitStorage(dir string, maxUploadBytes int64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	StorageDir = dir
	MaxUploadBytes = maxUploadBytes
	return nil
}

// UploadFile handles POST /files: a single-file multipart submission with a
// required title, optional description and the file part. The declared
// content type must be on the allow-list; the blob is written first, the
// metadata row second.
func UploadFile(c *gin.Context) {
	// Oversized bodies fail during multipart parsing below.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !models.TypeAllowed(mimeType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	description := c.PostForm("description")

	// Storage name: uuid + original extension, so concurrent uploads never
	// collide and the serve path can infer the content type.
	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(StorageDir, storedName)

	if err := c.SaveUploadedFile(fileHeader, dstPath); err != nil {
		slog.Error("failed to save uploaded file", "path", dstPath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading file"})
		return
	}

	record := models.File{
		Title:        title,
		Description:  description,
		Filename:     storedName,
		OriginalName: fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
	}

	if result := db.DB.Create(&record); result.Error != nil {
		// Best effort: don't leave an orphaned blob behind a failed insert.
		os.Remove(dstPath)
		slog.Error("failed to insert file metadata", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading file"})
		return
	}

	metrics.UploadsTotal.Inc()
	metrics.UploadedBytes.Add(float64(record.Size))
	c.JSON(http.StatusOK, gin.H{"message": "File uploaded successfully"})
}

// ListFiles handles GET /files: every metadata row, newest first.
func ListFiles(c *gin.Context) {
	var files []models.File
	if result := db.DB.Order("created_at desc").Find(&files); result.Error != nil {
		slog.Error("failed to list files", "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching files"})
		return
	}

	if files == nil {
		files = []models.File{}
	}
	c.JSON(http.StatusOK, files)
}

// DeleteFile handles DELETE /files?id=N: removes the blob (if still
// present) and then the metadata row.
func DeleteFile(c *gin.Context) {
	idStr := c.Query("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid id"})
		return
	}

	var record models.File
	if result := db.DB.First(&record, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		slog.Error("failed to look up file", "id", id, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting file"})
		return
	}

	// A missing blob is tolerated; the row is the source of truth.
	blobPath := filepath.Join(StorageDir, record.Filename)
	if err := os.Remove(blobPath); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove blob", "path", blobPath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting file"})
		return
	}

	if result := db.DB.Delete(&record); result.Error != nil {
		slog.Error("failed to delete file metadata", "id", id, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting file"})
		return
	}

	metrics.DeletesTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
