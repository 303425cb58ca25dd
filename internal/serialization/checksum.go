package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ChecksumKey is the __metadata__ entry holding the hex SHA-256 of the data section.
const ChecksumKey = "sha256"

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ValidateChecksum compares the checksum of data against a stored hex digest.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(data []byte, stored string) error {
	want, err := hex.DecodeString(stored)
	if err != nil || len(want) != sha256.Size {
		return fmt.Errorf("%w: stored value %q is not a SHA-256 digest", ErrChecksumMismatch, stored)
	}
	if got := ComputeChecksum(data); string(got[:]) != string(want) {
		return fmt.Errorf("%w: got %x, want %s", ErrChecksumMismatch, got, stored)
	}
	return nil
}
