package claims

import (
	"math"
	"testing"
	"time"
)

func TestSpreadVelocity(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		occurrences int64
		lastSeen    time.Time
		want        float64
	}{
		{
			name:        "two occurrences one hour apart",
			occurrences: 2,
			lastSeen:    base.Add(time.Hour),
			want:        2.0,
		},
		{
			name:        "three occurrences over two hours",
			occurrences: 3,
			lastSeen:    base.Add(2 * time.Hour),
			want:        1.5,
		},
		{
			name:        "near-simultaneous floors denominator at one minute",
			occurrences: 2,
			lastSeen:    base.Add(time.Second),
			want:        120.0, // 2 / (1/60)
		},
		{
			name:        "out-of-order arrival never yields negative hours",
			occurrences: 2,
			lastSeen:    base.Add(-time.Hour),
			want:        120.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spreadVelocity(tt.occurrences, base, tt.lastSeen)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("spreadVelocity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeoSpreadScore(t *testing.T) {
	tests := []struct {
		name        string
		locations   int
		occurrences int64
		want        float64
	}{
		{"one region two occurrences", 1, 2, 0.5},
		{"single occurrence", 1, 1, 1.0},
		{"no location hint", 0, 3, 0.0},
		{"bounded at one", 5, 2, 1.0},
		{"zero occurrences", 1, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := geoSpreadScore(tt.locations, tt.occurrences); got != tt.want {
				t.Errorf("geoSpreadScore(%d, %d) = %v, want %v", tt.locations, tt.occurrences, got, tt.want)
			}
		})
	}
}

func TestEWMA(t *testing.T) {
	got := ewma(0.8, 0.4, 0.3)
	want := 0.7*0.8 + 0.3*0.4
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ewma() = %v, want %v", got, want)
	}

	// Weight 1.0 replaces the average entirely.
	if got := ewma(0.8, 0.4, 1.0); got != 0.4 {
		t.Errorf("ewma(w=1) = %v, want 0.4", got)
	}
}
