// Package ledger derives account balances by replaying a chain's
// transactions from genesis to head. Balances are never stored, they are a
// pure function of the chain they were computed from.
package ledger

import (
	"errors"
	"fmt"

	"github.com/minichain/minichain/foundation/blockchain/chain"
	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// Replay failures. Any of these aborts the entire replay, there is no
// partial ledger for a prefix of the chain.
var (
	ErrInvalidBlock    = errors.New("invalid block")
	ErrUnbalancedTran  = errors.New("unbalanced transaction")
	ErrOverspend       = errors.New("overspend")
	ErrInvalidCoinbase = errors.New("invalid coinbase")
)

// Accounts maps an account to its current balance.
type Accounts map[payload.AccountID]uint

// Replay walks the chain genesis first and folds every transaction into a
// balance mapping. Proof of work is re-validated for every block rather
// than trusting the append checks, so a payload mutated after mining is
// caught here.
func Replay(c *chain.Chain) (Accounts, error) {
	accounts := make(Accounts)

	for i, b := range c.Blocks() {
		if !b.IsValid(c.Difficulty()) {
			return nil, fmt.Errorf("block %d hash %s does not meet difficulty %d: %w", i, b.Hash(), c.Difficulty(), ErrInvalidBlock)
		}

		coin, ok := b.Payload.(payload.Coin)
		if !ok {
			return nil, fmt.Errorf("block %d payload carries no transactions: %w", i, ErrInvalidBlock)
		}

		if err := accounts.Apply(coin, c.Reward()); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}

	return accounts, nil
}

// Apply folds a single coin payload into the balances. The transactions are
// processed in listed order before the coinbase is credited. Used by Replay
// for each block and by the node to pre-validate a candidate payload
// against current balances before mining it.
func (a Accounts) Apply(coin payload.Coin, reward uint) error {
	for _, tran := range coin.Trans {
		if tran.Input.Amount != tran.Output.Amount {
			return fmt.Errorf("input %d does not match output %d: %w", tran.Input.Amount, tran.Output.Amount, ErrUnbalancedTran)
		}

		balance, exists := a[tran.Input.Account]
		if !exists || balance < tran.Input.Amount {
			return fmt.Errorf("account %s has %d, needs %d: %w", tran.Input.Account, balance, tran.Input.Amount, ErrOverspend)
		}

		a[tran.Input.Account] -= tran.Input.Amount
		a[tran.Output.Account] += tran.Output.Amount
	}

	if coin.Coinbase.Amount != reward {
		return fmt.Errorf("coinbase %d does not match reward %d: %w", coin.Coinbase.Amount, reward, ErrInvalidCoinbase)
	}
	a[coin.Coinbase.Account] += coin.Coinbase.Amount

	return nil
}

// Copy makes a copy of the balances so a caller can speculate on them
// without changing the original.
func (a Accounts) Copy() Accounts {
	accounts := make(Accounts, len(a))
	for account, balance := range a {
		accounts[account] = balance
	}

	return accounts
}
