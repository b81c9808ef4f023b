package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Content type table for serving, keyed purely on the filename extension of
// the path being served. The stored mimeType column is deliberately not
// consulted here.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// ServeFile handles GET /uploaded_files/*filepath: streams a blob back with
// a Content-Type inferred from its extension. The resolved path must stay
// inside the blob store root; anything escaping it is rejected before any
// filesystem access.
func ServeFile(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")

	root, err := filepath.Abs(StorageDir)
	if err != nil {
		slog.Error("failed to resolve storage root", "dir", StorageDir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error serving file"})
		return
	}

	fullPath := filepath.Join(root, name)
	if fullPath != root && !strings.HasPrefix(fullPath, root+string(os.PathSeparator)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	stat, err := os.Stat(fullPath)
	if err != nil || stat.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	f, err := os.Open(fullPath)
	if err != nil {
		slog.Error("failed to open blob", "path", fullPath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error serving file"})
		return
	}
	defer f.Close()

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(fullPath))]
	if !ok {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, stat.Size(), contentType, f, nil)
}
