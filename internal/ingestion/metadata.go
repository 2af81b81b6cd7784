package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
	"unicode/utf8"
)

// Metadata describes one ingested input.
type Metadata struct {
	Source    string `json:"source,omitempty"` // file path or URL
	Timestamp string `json:"timestamp"`        // RFC3339
	Hash      string `json:"hash"`             // SHA256 hex digest of the cleaned text
	Chars     int    `json:"chars"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(source, content string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ContentHash(content),
		Chars:     utf8.RuneCountInString(content),
	}
}

// ContentHash returns the SHA256 hex digest of parts. Parts are length-prefixed
// so that ("ab", "c") and ("a", "bc") hash differently.
func ContentHash(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = fmt.Fprintf(h, "%d:", len(p))
		_, _ = h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
