// Package claims implements claim identity and the merge algorithm that
// deduplicates recurring claims across events.
package claims

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// stopwords are dropped during normalization so near-identical phrasings
// of the same claim collide. The list is intentionally small: aggressive
// stopword removal starts merging distinct claims.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "has": true, "have": true, "had": true,
	"in": true, "on": true, "at": true, "of": true, "to": true,
	"for": true, "and": true, "or": true, "by": true, "with": true,
	"that": true, "this": true, "it": true, "its": true,
}

// Normalize lowercases, strips punctuation, drops stopwords, and
// collapses whitespace. Two phrasings normalizing to the same string are
// the same claim.
func Normalize(content string) string {
	lowered := strings.ToLower(content)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if !stopwords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Fingerprint returns the stable dedup key for content: the hex SHA-256
// of its normalized form. Exact-match identity only; paraphrase
// similarity is out of scope here.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(Normalize(content)))
	return hex.EncodeToString(sum[:])
}

// RawHash returns the ingestion-level duplicate-suppression key for a raw
// payload. Unlike Fingerprint it hashes the content verbatim: the gate
// only drops byte-identical resubmissions, not rephrasings.
func RawHash(sourceID, content string) string {
	h := sha256.New()
	h.Write([]byte(sourceID))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}
