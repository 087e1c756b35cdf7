package claims

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "lowercases and strips punctuation",
			content: "Bridge COLLAPSED, in Patna!!",
			want:    "bridge collapsed patna",
		},
		{
			name:    "collapses whitespace",
			content: "bridge   collapsed \t in\nPatna",
			want:    "bridge collapsed patna",
		},
		{
			name:    "drops stopwords",
			content: "The bridge has collapsed in the city of Patna",
			want:    "bridge collapsed city patna",
		},
		{
			name:    "keeps digits",
			content: "5 dead after bridge collapse",
			want:    "5 dead after bridge collapse",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "punctuation only",
			content: "?!... ---",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.content); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestFingerprint_NearIdenticalPhrasingsCollide(t *testing.T) {
	a := Fingerprint("Bridge collapsed in Patna")
	b := Fingerprint("bridge COLLAPSED in Patna!!!")
	c := Fingerprint("The bridge collapsed in Patna.")

	if a != b {
		t.Errorf("case/punctuation variants should share a fingerprint: %s vs %s", a, b)
	}
	if a != c {
		t.Errorf("stopword variants should share a fingerprint: %s vs %s", a, c)
	}

	other := Fingerprint("Dam breached in Patna")
	if a == other {
		t.Error("distinct claims must not share a fingerprint")
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	const content = "Power grid failure reported across Bihar"
	if Fingerprint(content) != Fingerprint(content) {
		t.Error("Fingerprint must be deterministic")
	}
}

func TestRawHash_SourceScoped(t *testing.T) {
	content := "identical payload"
	if RawHash("source-a", content) == RawHash("source-b", content) {
		t.Error("raw hash must differ across sources for the same payload")
	}
	if RawHash("source-a", content) != RawHash("source-a", content) {
		t.Error("raw hash must be stable for identical source+payload")
	}
}
