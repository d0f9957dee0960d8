package embedder

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// BuildText assembles the embeddable text of a founder: bio, domain, company, tags and
// the most recent signal labels (newest first), joined with " | ".
func BuildText(founder schema.Founder, tags []string, labels []string) string {
	var parts []string
	if s := strings.TrimSpace(founder.Bio); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(founder.Domain); s != "" {
		parts = append(parts, "domain: "+s)
	}
	if s := strings.TrimSpace(founder.Company); s != "" {
		parts = append(parts, "company: "+s)
	}
	if len(tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(tags, ", "))
	}
	if len(labels) > domain.EMBEDDING_SIGNAL_LABELS {
		labels = labels[:domain.EMBEDDING_SIGNAL_LABELS]
	}
	if len(labels) > 0 {
		parts = append(parts, "signals: "+strings.Join(labels, "; "))
	}
	return strings.Join(parts, " | ")
}

// ContentHash returns the first 16 hex characters of the text's SHA-256
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:domain.CONTENT_HASH_LENGTH]
}

// EmbeddingHash keys a stored vector to its text, the model and the provider fingerprint.
// A change to any of them makes the founder pending again.
func EmbeddingHash(text, model, fingerprint string) string {
	return ContentHash(model + "\x00" + fingerprint + "\x00" + text)
}
