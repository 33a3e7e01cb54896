package transport

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dermassist/backend/internal/entity"
)

// AnalyzeImage accepts a multipart upload and returns the placeholder
// classification. The whole body is buffered in memory; uploads are
// treated as opaque bytes and never persisted.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analyzer.Analyze(fileHeader.Filename, content)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty file uploaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	event := entity.AnalysisEvent{
		Filename:   result.Filename,
		Condition:  result.Condition,
		Confidence: result.Confidence,
		LatencyMS:  result.LatencyMS,
		SizeKB:     result.SizeKB,
	}
	if err := h.producer.SendMessage(h.topic, event); err != nil {
		// publishing is best effort, the analysis response still stands
		logrus.Warnf("failed to publish analysis event: %s", err.Error())
	}

	c.JSON(http.StatusOK, result)
}
