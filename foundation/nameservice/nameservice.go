// Package nameservice reads a names file and provides name resolution
// for account identifiers in API output.
package nameservice

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// NameService maintains a mapping of account ids to display names.
type NameService struct {
	accounts map[payload.AccountID]string
}

// New constructs a name service from the specified JSON file. A missing
// file is not an error, lookups just fall back to the account id.
func New(path string) (*NameService, error) {
	ns := NameService{
		accounts: make(map[payload.AccountID]string),
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ns, nil
		}
		return nil, fmt.Errorf("reading names file: %w", err)
	}

	if err := json.Unmarshal(content, &ns.accounts); err != nil {
		return nil, fmt.Errorf("parsing names file: %w", err)
	}

	return &ns, nil
}

// Lookup returns the display name for the specified account. The account
// id itself is returned when no name is registered.
func (ns *NameService) Lookup(account payload.AccountID) string {
	name, exists := ns.accounts[account]
	if !exists {
		return string(account)
	}
	return name
}

// Copy returns a copy of the registered account names.
func (ns *NameService) Copy() map[payload.AccountID]string {
	cpy := make(map[payload.AccountID]string, len(ns.accounts))
	for account, name := range ns.accounts {
		cpy[account] = name
	}
	return cpy
}
