package capability

import "github.com/ethereum/go-ethereum/crypto"

// DigestSize is the fixed output width the trie requires of any
// Digest, per spec.md §4.5 ("fixed-output (32 bytes for Ethereum
// compatibility)").
const DigestSize = 32

// Digest is a deterministic, fixed-output cryptographic hash over a
// byte sequence. The trie assumes nothing about the algorithm beyond
// determinism and a 32-byte output.
type Digest interface {
	Sum(data []byte) [DigestSize]byte
}

// Keccak256Digest is the Ethereum-canonical digest: Keccak-256, as
// already depended on by the teacher's ComputeHash.
type Keccak256Digest struct{}

// Sum returns the Keccak-256 digest of data.
func (Keccak256Digest) Sum(data []byte) [DigestSize]byte {
	return crypto.Keccak256Hash(data)
}
