// Package domain holds pipeline domain types shared across stages.
//
// The package is deliberately dependency-free: stages, workers, and the
// storage layer all speak these types without importing each other.
package domain

import (
	"strings"
	"time"
)

// SourceType identifies the class of connector that produced an event.
type SourceType string

const (
	SourceRSS     SourceType = "rss"
	SourceCrawler SourceType = "crawler"
	SourceAPI     SourceType = "api"
	SourceManual  SourceType = "manual"
)

// ValidSourceType reports whether s is one of the known connector classes.
func ValidSourceType(s SourceType) bool {
	switch s {
	case SourceRSS, SourceCrawler, SourceAPI, SourceManual:
		return true
	}
	return false
}

// LocationHint is the optional geographic attribution of a raw event.
type LocationHint struct {
	State    string   `json:"state,omitempty"`
	District string   `json:"district,omitempty"`
	City     string   `json:"city,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// Region returns the aggregation region identifier for the hint.
// State wins over district over city; empty when nothing usable is set.
func (l *LocationHint) Region() string {
	if l == nil {
		return ""
	}
	for _, candidate := range []string{l.State, l.District, l.City} {
		if r := strings.TrimSpace(candidate); r != "" {
			return r
		}
	}
	return ""
}

// RawEvent is the inbound record handed to the Ingestion Gate by a
// connector. Connectors themselves live outside the pipeline; they only
// need to produce this shape.
type RawEvent struct {
	SourceID   string        `json:"source_id"`
	SourceType SourceType    `json:"source_type"`
	Content    string        `json:"content"`
	URL        string        `json:"url,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
	Location   *LocationHint `json:"location_hint,omitempty"`
}

// NLPResult is the scoring tuple returned by the external NLP analyzer.
// MisinformationScore is treated as already fused across the analyzer's
// internal model ensemble; the pipeline never re-derives ensemble weights.
type NLPResult struct {
	MisinformationScore float64  `json:"misinformation_score"`
	Confidence          float64  `json:"confidence"`
	Categories          []string `json:"categories,omitempty"`
	Sentiment           string   `json:"sentiment,omitempty"`
}

// SatelliteResult is the cross-validation tuple returned by the satellite
// validator for location-bearing claims.
type SatelliteResult struct {
	Validated  bool    `json:"validated"`
	Confidence float64 `json:"confidence"`
}

// FusedRisk combines the NLP misinformation score with satellite
// validation into the effective risk weight used by aggregation:
// score * (1 + 0.2*validated), capped at 1.0.
func FusedRisk(nlp *NLPResult, sat *SatelliteResult) float64 {
	if nlp == nil {
		return 0
	}
	risk := nlp.MisinformationScore
	if sat != nil && sat.Validated {
		risk *= 1.2
	}
	if risk > 1.0 {
		risk = 1.0
	}
	if risk < 0 {
		risk = 0
	}
	return risk
}

// locationClaimCategories are the NLP categories whose claims assert
// something physically observable, making satellite cross-validation
// worth its cost.
var locationClaimCategories = map[string]bool{
	"infrastructure": true,
	"disaster":       true,
	"environment":    true,
	"conflict":       true,
}

// NeedsSatelliteValidation reports whether an event qualifies for the
// satellite validator: it must carry a usable location and at least one
// location-claim category. This is a cost gate, not a correctness gate.
func NeedsSatelliteValidation(loc *LocationHint, categories []string) bool {
	if loc.Region() == "" {
		return false
	}
	for _, c := range categories {
		if locationClaimCategories[strings.ToLower(strings.TrimSpace(c))] {
			return true
		}
	}
	return false
}
