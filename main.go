package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filegallery/config"
	"filegallery/db"
	"filegallery/handlers"
	"filegallery/metrics"
	"filegallery/models"
)

//go:embed frontend/*
var frontendEmbed embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg)
	logger.Info("file gallery starting",
		slog.String("addr", cfg.Addr),
		slog.String("data_dir", cfg.DataDir),
		slog.String("upload_dir", cfg.UploadDir),
		slog.Int64("max_upload_bytes", cfg.MaxUploadBytes),
	)

	if err := db.Init(cfg.DataDir); err != nil {
		logger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := handlers.InitStorage(cfg.UploadDir, cfg.MaxUploadBytes); err != nil {
		logger.Error("failed to initialize blob storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := models.Migrate(db.DB); err != nil {
		logger.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.Default()
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Embedded gallery frontend
	fsys, err := fs.Sub(frontendEmbed, "frontend")
	if err != nil {
		logger.Error("failed to load frontend", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.StaticFileFS("/style.css", "style.css", http.FS(fsys))
	r.StaticFileFS("/app.js", "app.js", http.FS(fsys))

	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(fsys, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to read index: "+err.Error())
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	logger.Info("server listening", slog.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
