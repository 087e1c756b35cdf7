package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"heatwatch.io/heatwatch/internal/domain"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeInvalidEvent, "content too short", http.StatusBadRequest),
			want: "INVALID_EVENT: content too short",
		},
		{
			name: "with wrapped error",
			err:  Wrap(errors.New("boom"), CodeInternal, "something failed", http.StatusInternalServerError),
			want: "INTERNAL_ERROR: something failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("db down")
	wrapped := Wrap(inner, CodeStorageUnavailable, "write failed", http.StatusServiceUnavailable)

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	got, ok := IsAppError(fmt.Errorf("outer: %w", wrapped))
	if !ok {
		t.Fatal("IsAppError should unwrap through fmt wrapping")
	}
	if got.Code != CodeStorageUnavailable {
		t.Errorf("Code = %q, want %q", got.Code, CodeStorageUnavailable)
	}
}

func TestPipelineErrorClassification(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name          string
		err           error
		wantTransient bool
		wantReason    string
	}{
		{"invalid event", InvalidEvent(cause), false, domain.ReasonInvalidEvent},
		{"transient enrichment", TransientEnrichment(cause), true, domain.ReasonTransientEnrichment},
		{"enrichment rejected", EnrichmentRejected(cause), false, domain.ReasonEnrichmentRejected},
		{"claim conflict", ClaimConflict(cause), true, domain.ReasonClaimConflict},
		{"storage unavailable", StorageUnavailable(cause), true, domain.ReasonStorageUnavailable},
		{"unclassified defaults to transient storage", cause, true, domain.ReasonStorageUnavailable},
		{"wrapped keeps classification", fmt.Errorf("stage: %w", EnrichmentRejected(cause)), false, domain.ReasonEnrichmentRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.wantTransient {
				t.Errorf("IsTransient() = %v, want %v", got, tt.wantTransient)
			}
			if got := ReasonOf(tt.err); got != tt.wantReason {
				t.Errorf("ReasonOf() = %q, want %q", got, tt.wantReason)
			}
		})
	}
}
