package api

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/ai-digest/app/delivery"
)

func NewHandler(path, version string) *Handler {
	return &Handler{
		path:    path,
		version: version,
		now:     time.Now,
	}
}

func (h *Handler) GetEmail(c *gin.Context) {
	markdown, ok := h.readDigest(c)
	if !ok {
		return
	}

	now := h.now()
	html, err := delivery.MarkdownToHTML(markdown, now.Format(delivery.DateLayout), now)
	if err != nil {
		slog.Error("Email rendering error", "file", h.path, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) GetMarkdown(c *gin.Context) {
	markdown, ok := h.readDigest(c)
	if !ok {
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

func (h *Handler) GetItems(c *gin.Context) {
	markdown, ok := h.readDigest(c)
	if !ok {
		return
	}

	records := delivery.Recover(markdown)
	if records == nil {
		records = []delivery.Record{}
	}

	c.Header("X-Digest-Items", strconv.Itoa(len(records)))
	c.JSON(http.StatusOK, gin.H{
		"count": len(records),
		"items": records,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": h.now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
		"file":      h.path,
	}

	if info, err := os.Stat(h.path); err == nil {
		health["file_updated_at"] = info.ModTime().In(time.Local).Format(time.RFC3339)
	} else {
		health["file_error"] = err.Error()
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) readDigest(c *gin.Context) (string, bool) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		slog.Error("Digest file not readable", "file", h.path, "error", err)
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Digest file not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Digest file not readable"})
		}
		return "", false
	}
	return string(data), true
}
