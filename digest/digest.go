// Package digest computes Keccak-256 digests of console input.
package digest

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// Keccak256Hex returns the lowercase hex encoding of the Keccak-256
// digest of data. Uses Geth's crypto.Keccak256 (legacy padding, the
// Ethereum variant). Always 64 characters, even for empty input.
func Keccak256Hex(data []byte) string {
	return hex.EncodeToString(crypto.Keccak256(data))
}

// Record holds one hashed console input for the duration of a run.
type Record struct {
	Text      string // raw text as entered
	Encoded   []byte // UTF-8 bytes of Text
	DigestHex string // 64-char lowercase hex Keccak-256 digest of Encoded
}

// NewRecord hashes text and returns the filled-in record.
func NewRecord(text string) Record {
	encoded := []byte(text)
	return Record{
		Text:      text,
		Encoded:   encoded,
		DigestHex: Keccak256Hex(encoded),
	}
}
