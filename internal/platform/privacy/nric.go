// Package privacy keeps identity numbers out of logs, spans and events.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
)

// MaskNric hides the first digits of an identity number, keeping the prefix
// letter and the last four characters (e.g. "S1234567A" -> "S****567A").
//
// Returns "unknown" for empty input and "invalid" for anything too short to
// be an identity number.
func MaskNric(nric string) string {
	if nric == "" {
		return "unknown"
	}
	if len(nric) < 5 {
		return "invalid"
	}
	return nric[:1] + "****" + nric[len(nric)-4:]
}

// HashNric returns a short SHA-256 digest of the identity number. The hash
// lets logs and events be correlated without exposing the number itself.
func HashNric(nric string) string {
	if nric == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(nric))
	return hex.EncodeToString(hash[:8])
}
