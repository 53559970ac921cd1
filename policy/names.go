package policy

import (
	"crypto/sha1"
	"encoding/hex"
)

// defaultSuffixLength bounds generated suffixes so they fit provider name
// limits alongside a human-readable prefix.
const defaultSuffixLength = 32

// UniqueResourceSuffix derives a stable short identifier from a namespace,
// account, and resource identifier. The same inputs always produce the same
// suffix, so repeated template synthesis does not rename resources; changing
// any input produces a different suffix. SHA-1 is used purely for name
// disambiguation, not security.
func UniqueResourceSuffix(namespace, accountID, resourceID string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = defaultSuffixLength
	}

	sum := sha1.Sum([]byte(namespace + accountID + resourceID))
	suffix := hex.EncodeToString(sum[:])
	if len(suffix) > maxLen {
		suffix = suffix[:maxLen]
	}
	return suffix
}
