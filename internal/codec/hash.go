package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainQuantity prefixes quantity digests. The version suffix allows the
// canonical form to change without colliding with old digests.
const DomainQuantity = "pval/quantity/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Digest returns the hex SHA-256 content address of rec. Records from
// Encode are canonical; pass others through Canonical first.
func Digest(rec Record) (string, error) {
	canonical, err := MarshalCanonical(rec)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return hashWithDomain(DomainQuantity, canonical), nil
}

// MustDigest is like Digest but panics on error.
func MustDigest(rec Record) string {
	d, err := Digest(rec)
	if err != nil {
		panic(err)
	}
	return d
}
