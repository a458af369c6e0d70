// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the genesis file.
type Genesis struct {
	Date          time.Time `json:"date"`
	Difficulty    uint      `json:"difficulty"`    // Number of leading 0's needed to solve the work problem.
	MiningReward  uint      `json:"mining_reward"` // Coinbase amount minted for each mined block.
	BeneficiaryID string    `json:"beneficiary"`   // Account credited with the genesis block's coinbase.
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	err = json.Unmarshal(content, &genesis)
	if err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
