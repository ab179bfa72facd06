package strata

import "lukechampine.com/blake3"

// HashSize is the byte length of a content hash.
const HashSize = 32

// HashedPackage is the result of canonically hashing a value for storage.
type HashedPackage struct {
	// Hash is the BLAKE3-256 digest of the canonical bytes.
	Hash []byte
	// SCB holds the strata canonical bytes the hash was computed over.
	SCB []byte
}

// HashValue computes (hash, canonical bytes) for a value.
//
// The hash is computed over the canonical encoding, so everything that makes
// Encode deterministic makes the hash deterministic too. This is the only
// place that should know which hash function backs package identities.
// Returns *EncodeError if the value cannot be canonically encoded.
func HashValue(v Value) (HashedPackage, error) {
	scb, err := Encode(v)
	if err != nil {
		return HashedPackage{}, err
	}

	sum := blake3.Sum256(scb)
	return HashedPackage{Hash: sum[:], SCB: scb}, nil
}
