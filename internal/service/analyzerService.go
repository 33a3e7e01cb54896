package service

import (
	"math"
	"time"

	"github.com/dermassist/backend/internal/entity"
)

const (
	sumSampleSize      = 4096
	varianceSampleSize = 8192
)

// conditions is the fixed catalog; the selection index is always taken
// modulo its length, so lookups cannot go out of range.
var conditions = []entity.Condition{
	{
		Name:        "Acne Vulgaris",
		Description: "Common inflammatory condition with comedones, papules, or pustules.",
		Suggestions: []string{
			"Use a gentle, non-comedogenic cleanser twice daily",
			"Apply a 2.5%-5% benzoyl peroxide or salicylic acid product",
			"Avoid picking and use clean pillowcases",
		},
	},
	{
		Name:        "Eczema (Atopic Dermatitis)",
		Description: "Itchy, dry, and inflamed patches that may flare periodically.",
		Suggestions: []string{
			"Moisturize with fragrance-free cream after bathing",
			"Use lukewarm showers and gentle cleansers",
			"Consider OTC hydrocortisone for short-term flares",
		},
	},
	{
		Name:        "Psoriasis",
		Description: "Well-demarcated, scaly plaques often on elbows, knees, or scalp.",
		Suggestions: []string{
			"Keep skin moisturized; avoid harsh scrubbing",
			"Sun exposure in moderation may help",
			"Discuss topical steroids or vitamin D analogs with a clinician",
		},
	},
	{
		Name:        "Benign Nevus (Mole)",
		Description: "Uniformly pigmented lesion with symmetric borders.",
		Suggestions: []string{
			"Monitor for ABCDE changes (Asymmetry, Border, Color, Diameter, Evolving)",
			"Use daily SPF 30+",
			"Seek evaluation if rapid change or symptoms occur",
		},
	},
	{
		Name:        "Contact Dermatitis",
		Description: "Localized redness or rash triggered by irritants or allergens.",
		Suggestions: []string{
			"Identify and avoid suspected triggers",
			"Cool compresses; fragrance-free emollients",
			"Short course OTC hydrocortisone for itch",
		},
	},
}

// Analyze runs the deterministic placeholder classification: the condition
// is picked from the byte sum of the upload's head, the confidence score is
// a cosmetic heuristic with no predictive meaning. A real model can replace
// this without changing the response shape.
func (s *analyzerService) Analyze(filename string, content []byte) (*entity.AnalysisResponse, error) {
	start := time.Now()

	if len(content) == 0 {
		return nil, entity.ErrEmptyFile
	}

	head := content
	if len(head) > sumSampleSize {
		head = head[:sumSampleSize]
	}

	total := 0
	for _, b := range head {
		total += int(b)
	}

	selected := conditions[total%len(conditions)]
	sizeKB := float64(len(content)) / 1024.0

	sample := content
	if len(sample) > varianceSampleSize {
		sample = sample[:varianceSampleSize]
	}

	variance := byteVariance(sample)

	confidence := 0.55 + math.Mod(variance, 2000)/5000 + math.Min(sizeKB/2048.0, 0.2)
	if confidence > 0.98 {
		confidence = 0.98
	}

	latency := time.Since(start).Milliseconds()

	return &entity.AnalysisResponse{
		Condition:   selected.Name,
		Confidence:  math.Round(confidence*1000) / 10,
		Description: selected.Description,
		Suggestions: selected.Suggestions,
		LatencyMS:   latency,
		Filename:    filename,
		SizeKB:      math.Round(sizeKB*10) / 10,
	}, nil
}

// byteVariance returns the mean squared deviation of byte values.
func byteVariance(sample []byte) float64 {
	if len(sample) == 0 {
		return 0
	}

	var sum float64
	for _, b := range sample {
		sum += float64(b)
	}
	mean := sum / float64(len(sample))

	var sq float64
	for _, b := range sample {
		d := float64(b) - mean
		sq += d * d
	}

	return sq / float64(len(sample))
}
