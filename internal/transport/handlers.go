package transport

import (
	"github.com/dermassist/backend/internal/pkg/kafka"
	"github.com/dermassist/backend/internal/service"
)

type Handler struct {
	analyzer    service.AnalyzerService
	diagnostics service.DiagnosticService
	producer    kafka.Producer
	topic       string
}

func NewHandler(analyzer service.AnalyzerService, diagnostics service.DiagnosticService, producer kafka.Producer, topic string) *Handler {
	return &Handler{
		analyzer:    analyzer,
		diagnostics: diagnostics,
		producer:    producer,
		topic:       topic,
	}
}
