package service

import (
	"context"

	"github.com/dermassist/backend/internal/database"
	"github.com/dermassist/backend/internal/entity"
)

type AnalyzerService interface {
	Analyze(filename string, content []byte) (*entity.AnalysisResponse, error)
}

type DiagnosticService interface {
	Report(ctx context.Context) *entity.DiagnosticReport
}

type analyzerService struct{}

func NewAnalyzerService() AnalyzerService {
	return &analyzerService{}
}

type diagnosticService struct {
	db database.Database
}

// NewDiagnosticService accepts a nil db when no database was configured.
func NewDiagnosticService(db database.Database) DiagnosticService {
	return &diagnosticService{db: db}
}
