package score

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed hashing. The version suffix enables
// future algorithm migration without colliding with old hashes.
const (
	DomainSection = "motive/section/v1"
	DomainPitch   = "motive/pitch/v1"
	DomainMotif   = "motive/motif/v1"
	DomainSeed    = "motive/seed/v1"
)

// PitchHashLen is the hex length motif pitch-pattern hashes are truncated to.
// Pitch patterns are short; a 64-bit prefix is plenty for dedup keys and
// keeps motif ids readable.
const PitchHashLen = 16

// HashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func HashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// HashCanonical canonically serializes v and hashes it under domain.
// Returns an error when v cannot be canonically marshaled.
func HashCanonical(domain string, v any) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", domain, err)
	}
	return HashWithDomain(domain, canonical), nil
}

// PitchPatternHash hashes an ordered pitch sequence, truncated to
// PitchHashLen hex chars. Two bars with identical melodic contours collapse
// to the same key regardless of velocity or timing.
func PitchPatternHash(pitches []int) (string, error) {
	seq := make([]any, len(pitches))
	for i, p := range pitches {
		seq[i] = p
	}
	full, err := HashCanonical(DomainPitch, seq)
	if err != nil {
		return "", err
	}
	return full[:PitchHashLen], nil
}
