// Package digest provides the hashing support used across the blockchain.
// Every hash in the system comes from this package so the chain is never
// comparing hashes produced by different algorithms.
package digest

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros. It doubles as the parent
// sentinel for a genesis block and as the template for the leading zero
// proof of work comparison.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns a unique string for the value.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}
