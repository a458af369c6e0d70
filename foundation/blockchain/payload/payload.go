// Package payload defines the closed set of contents a block can carry.
// A payload's only obligation is to produce a stable hash input, a string
// that is a pure function of the payload's current value.
package payload

import (
	"encoding/base64"
	"encoding/json"
)

// Payload represents the behavior a block requires from its contents.
type Payload interface {
	HashInput() string
}

// =============================================================================

// AccountID represents an account participating in transactions on
// the blockchain.
type AccountID string

// Entry represents one side of a transfer, an account and an amount.
type Entry struct {
	Account AccountID `json:"account"`
	Amount  uint      `json:"amount"`
}

// Tran represents a single transfer between two parties. The input debits
// the sender, the output credits the recipient.
type Tran struct {
	Input  Entry `json:"input"`
	Output Entry `json:"output"`
}

// NewTran constructs a balanced transfer of the specified amount.
func NewTran(from AccountID, to AccountID, amount uint) Tran {
	return Tran{
		Input:  Entry{Account: from, Amount: amount},
		Output: Entry{Account: to, Amount: amount},
	}
}

// =============================================================================

// Data represents an opaque binary payload.
type Data []byte

// HashInput returns a stable encoding of the raw bytes.
func (d Data) HashInput() string {
	return base64.StdEncoding.EncodeToString(d)
}

// =============================================================================

// Coin represents a transactional payload, the coinbase output minted for
// the miner plus an ordered set of transfers.
type Coin struct {
	Coinbase Entry  `json:"coinbase"`
	Trans    []Tran `json:"trans"`
}

// NewCoin constructs a coin payload crediting the beneficiary with the
// coinbase and carrying the specified transfers.
func NewCoin(beneficiary AccountID, reward uint, trans []Tran) Coin {
	return Coin{
		Coinbase: Entry{Account: beneficiary, Amount: reward},
		Trans:    trans,
	}
}

// HashInput returns a deterministic rendering of the payload. Marshaling
// follows the struct field order, so two equal payloads always produce the
// same input.
func (c Coin) HashInput() string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}

	return string(data)
}
