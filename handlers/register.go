package handlers

import "github.com/gin-gonic/gin"

// Register mounts the API routes. The serve route is a catch-all so that
// traversal attempts reach ServeFile and get an explicit 403 instead of a
// router miss.
func Register(r *gin.Engine) {
	r.POST("/files", UploadFile)
	r.GET("/files", ListFiles)
	r.DELETE("/files", DeleteFile)
	r.GET("/uploaded_files/*filepath", ServeFile)
}
