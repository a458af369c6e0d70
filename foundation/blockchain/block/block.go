// Package block implements the hash-linked block and the proof of work
// mining algorithm.
package block

import (
	"context"
	"errors"
	"math"

	"github.com/minichain/minichain/foundation/blockchain/digest"
	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// ErrNonceExhausted is returned from Mine when the entire nonce range has
// been scanned without finding a solution. The configured difficulty must
// be satisfiable inside the nonce space, so callers should treat this as an
// unrecoverable configuration error, not a condition to retry.
var ErrNonceExhausted = errors.New("nonce space exhausted without solution")

// =============================================================================

// Block represents a single link in the chain. The parent reference is nil
// for a genesis block. The nonce is the only field mining mutates.
type Block struct {
	Parent  *Block
	Payload payload.Payload
	Nonce   uint64
}

// New constructs a block wrapping the payload. No validation is performed,
// an unmined block can exist transiently until mining finds its nonce.
func New(parent *Block, pl payload.Payload) *Block {
	return &Block{
		Parent:  parent,
		Payload: pl,
	}
}

// header is the value hashed to produce a block's identity.
type header struct {
	ParentHash string `json:"parent_hash"`
	Payload    string `json:"payload"`
	Nonce      uint64 `json:"nonce"`
}

// Hash returns the unique hash for the block. The hash is recomputed on
// every call since the nonce or payload may have changed since the last one.
func (b *Block) Hash() string {
	parentHash := digest.ZeroHash
	if b.Parent != nil {
		parentHash = b.Parent.Hash()
	}

	return digest.Hash(header{
		ParentHash: parentHash,
		Payload:    b.Payload.HashInput(),
		Nonce:      b.Nonce,
	})
}

// IsValid reports whether the block's hash solves the proof of work puzzle
// for the specified difficulty.
func (b *Block) IsValid(difficulty uint) bool {
	return isHashSolved(difficulty, b.Hash())
}

// Mine scans nonce values until the block's hash satisfies the difficulty,
// mutating the nonce in place. Mining an already valid block is a no-op.
// The scan covers the full nonce range starting at zero; exhausting the
// range returns ErrNonceExhausted.
func (b *Block) Mine(ctx context.Context, difficulty uint) error {
	if b.IsValid(difficulty) {
		return nil
	}

	for nonce := uint64(0); ; nonce++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.Nonce = nonce
		if b.IsValid(difficulty) {
			return nil
		}

		if nonce == math.MaxUint64 {
			return ErrNonceExhausted
		}
	}
}

// =============================================================================

// isHashSolved checks the hash complies with the POW rules. We need to
// match a difficulty number of leading 0's after the 0x prefix.
func isHashSolved(difficulty uint, hash string) bool {
	if len(hash) != len(digest.ZeroHash) {
		return false
	}

	match := 2 + int(difficulty)
	if match > len(digest.ZeroHash) {
		return false
	}

	return hash[:match] == digest.ZeroHash[:match]
}
