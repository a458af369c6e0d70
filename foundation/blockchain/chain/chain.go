// Package chain maintains the head of the blockchain and the append
// protocol that extends it.
package chain

import (
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/block"
)

// Chain holds the difficulty target and the current head block. Every block
// reachable from the head satisfies the proof of work predicate for the
// chain's difficulty.
type Chain struct {
	mu         sync.RWMutex
	difficulty uint
	reward     uint
	head       *block.Block
}

// New constructs a chain with the specified difficulty and coinbase reward.
// Both are fixed for the lifetime of the chain.
func New(difficulty uint, reward uint) *Chain {
	return &Chain{
		difficulty: difficulty,
		reward:     reward,
	}
}

// Difficulty returns the number of leading zero hash characters a block
// must have to be accepted.
func (c *Chain) Difficulty() uint {
	return c.difficulty
}

// Reward returns the coinbase amount each block must mint.
func (c *Chain) Reward() uint {
	return c.reward
}

// Head returns the current tip of the chain, nil when no block has been
// appended yet.
func (c *Chain) Head() *block.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.head
}

// Append extends the chain with the candidate block. The candidate must
// link to the current head through its parent reference and must solve the
// proof of work for the chain's difficulty. On failure the chain is left
// unchanged. The check and the head swap execute as a single critical
// section so competing appends can't interleave.
func (c *Chain) Append(candidate *block.Block) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.head == nil:
		if candidate.Parent != nil {
			return false
		}

	default:
		if candidate.Parent == nil || candidate.Parent.Hash() != c.head.Hash() {
			return false
		}
	}

	if !candidate.IsValid(c.difficulty) {
		return false
	}

	c.head = candidate
	return true
}

// Blocks returns the head's ancestry ordered genesis first. The slice is a
// snapshot of the block references, not a copy of the blocks.
func (c *Chain) Blocks() []*block.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var blocks []*block.Block
	for b := c.head; b != nil; b = b.Parent {
		blocks = append(blocks, b)
	}

	// The walk collected head first. The callers need genesis first.
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}

	return blocks
}
