package service

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dermassist/backend/internal/entity"
)

const maxReportedCollections = 10

// Report probes the optional database capability and describes what it
// found. Every failure mode is absorbed into the report text; the method
// never fails, so /test always answers 200.
func (s *diagnosticService) Report(ctx context.Context) *entity.DiagnosticReport {
	report := &entity.DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch {
	case s.db != nil:
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		collections, err := s.db.ListCollectionNames(ctx)
		if err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			logrus.Warnf("diagnostic: listing collections failed: %s", err.Error())
		} else {
			if len(collections) > maxReportedCollections {
				collections = collections[:maxReportedCollections]
			}
			report.Collections = collections
			report.Database = "✅ Connected & Working"
		}
	case os.Getenv("DATABASE_URL") != "":
		// configured at startup but the connection never came up
		report.Database = "⚠️  Available but not initialized"
	default:
		report.Database = "❌ Database not configured (set DATABASE_URL to enable)"
	}

	// env presence is reported independently of actual connectivity
	report.DatabaseURL = setOrNot(os.Getenv("DATABASE_URL"))
	report.DatabaseName = setOrNot(os.Getenv("DATABASE_NAME"))

	return report
}

func setOrNot(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
