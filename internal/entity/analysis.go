package entity

// Condition is one entry of the read-only catalog the analyzer selects from.
type Condition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}

type AnalysisResponse struct {
	Condition   string   `json:"condition"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
	LatencyMS   int64    `json:"latency_ms"`
	Filename    string   `json:"filename"`
	SizeKB      float64  `json:"size_kb"`
}

// DiagnosticReport is rebuilt on every /test call, never cached.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// AnalysisEvent is published to kafka after a successful analysis
// when the producer is enabled.
type AnalysisEvent struct {
	Filename   string  `json:"filename"`
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
	LatencyMS  int64   `json:"latency_ms"`
	SizeKB     float64 `json:"size_kb"`
}
