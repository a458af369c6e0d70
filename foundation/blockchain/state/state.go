// Package state is the core API for the blockchain node. It glues the
// genesis configuration, the chain, the miner and the ledger together
// behind a single value the application layer can depend on.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/block"
	"github.com/minichain/minichain/foundation/blockchain/chain"
	"github.com/minichain/minichain/foundation/blockchain/genesis"
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// ErrRejected is returned when a mined candidate fails the append checks.
// With a single node this means the block was tampered with between mining
// and appending.
var ErrRejected = errors.New("candidate block rejected by chain")

// EventHandler defines a function that is called when events occur in the
// processing of blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to start the node state.
type Config struct {
	Genesis   genesis.Genesis
	EvHandler EventHandler
}

// State manages the blockchain node.
type State struct {
	mu sync.Mutex

	genesis   genesis.Genesis
	chain     *chain.Chain
	evHandler EventHandler
}

// New constructs the state, mining the genesis coinbase block so the chain
// starts with the beneficiary funded.
func New(ctx context.Context, cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	c := chain.New(cfg.Genesis.Difficulty, cfg.Genesis.MiningReward)

	coin := payload.NewCoin(payload.AccountID(cfg.Genesis.BeneficiaryID), cfg.Genesis.MiningReward, nil)
	gb := block.New(nil, coin)

	ev("state: New: mining genesis block: beneficiary[%s]", cfg.Genesis.BeneficiaryID)
	if err := gb.Mine(ctx, cfg.Genesis.Difficulty); err != nil {
		return nil, err
	}

	if !c.Append(gb) {
		return nil, ErrRejected
	}
	ev("state: New: genesis block[%s] nonce[%d]", gb.Hash(), gb.Nonce)

	state := State{
		genesis:   cfg.Genesis,
		chain:     c,
		evHandler: ev,
	}

	return &state, nil
}

// SubmitTransactions validates the transfers against the current balances,
// mines them into a new block crediting the beneficiary with the coinbase,
// and appends the block to the chain. Submissions are serialized so two
// requests can't mine against the same head.
func (s *State) SubmitTransactions(ctx context.Context, beneficiaryID payload.AccountID, trans []payload.Tran) (*block.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: SubmitTransactions: started: trans[%d]", len(trans))
	defer s.evHandler("state: SubmitTransactions: completed")

	// Replay the chain and speculate the new payload on top of it before
	// spending any mining effort. A payload that fails here would poison
	// the chain for every future replay.
	balances, err := ledger.Replay(s.chain)
	if err != nil {
		return nil, err
	}

	coin := payload.NewCoin(beneficiaryID, s.chain.Reward(), trans)
	if err := balances.Apply(coin, s.chain.Reward()); err != nil {
		return nil, err
	}

	b := block.New(s.chain.Head(), coin)

	s.evHandler("state: SubmitTransactions: mining: difficulty[%d]", s.chain.Difficulty())
	if err := b.Mine(ctx, s.chain.Difficulty()); err != nil {
		return nil, err
	}

	if !s.chain.Append(b) {
		return nil, ErrRejected
	}

	s.evHandler("state: SubmitTransactions: mined block[%s] nonce[%d]", b.Hash(), b.Nonce)

	return b, nil
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveBalances replays the chain into a fresh balance mapping.
func (s *State) RetrieveBalances() (ledger.Accounts, error) {
	return ledger.Replay(s.chain)
}

// RetrieveBlocks returns the chain's blocks ordered genesis first.
func (s *State) RetrieveBlocks() []*block.Block {
	return s.chain.Blocks()
}

// RetrieveLatestBlock returns the current head of the chain.
func (s *State) RetrieveLatestBlock() *block.Block {
	return s.chain.Head()
}

// Chain returns the underlying chain for replay by callers that need
// direct access, such as the ledger handlers.
func (s *State) Chain() *chain.Chain {
	return s.chain
}
