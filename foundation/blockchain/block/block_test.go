package block_test

import (
	"context"
	"errors"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/block"
	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Hash(t *testing.T) {
	t.Log("Given the need for a block hash to be a pure function of parent, payload and nonce.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same block repeatedly.")
		{
			b := block.New(nil, payload.NewCoin("thomas", 100, nil))

			if b.Hash() != b.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould get the same hash on repeated calls.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same hash on repeated calls.", success)
		}

		t.Logf("\tTest 1:\tWhen changing the nonce, the payload or the parent.")
		{
			b := block.New(nil, payload.NewCoin("thomas", 100, nil))
			base := b.Hash()

			b.Nonce = 1
			if b.Hash() == base {
				t.Fatalf("\t%s\tTest 1:\tShould get a different hash after a nonce change.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get a different hash after a nonce change.", success)
			b.Nonce = 0

			b.Payload = payload.NewCoin("dave", 100, nil)
			if b.Hash() == base {
				t.Fatalf("\t%s\tTest 1:\tShould get a different hash after a payload change.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get a different hash after a payload change.", success)
			b.Payload = payload.NewCoin("thomas", 100, nil)

			b.Parent = block.New(nil, payload.NewCoin("mary", 100, nil))
			if b.Hash() == base {
				t.Fatalf("\t%s\tTest 1:\tShould get a different hash after a parent change.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get a different hash after a parent change.", success)
		}
	}
}

func Test_Mine(t *testing.T) {
	const difficulty = 2

	t.Log("Given the need to mine blocks that satisfy the difficulty target.")
	{
		t.Logf("\tTest 0:\tWhen mining a fresh block at difficulty %d.", difficulty)
		{
			b := block.New(nil, payload.NewCoin("thomas", 100, nil))

			if err := b.Mine(context.Background(), difficulty); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine the block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine the block.", success)

			if !b.IsValid(difficulty) {
				t.Fatalf("\t%s\tTest 0:\tShould have a hash that meets the difficulty: %s", failed, b.Hash())
			}
			t.Logf("\t%s\tTest 0:\tShould have a hash that meets the difficulty.", success)
		}

		t.Logf("\tTest 1:\tWhen mining an already valid block.")
		{
			b := block.New(nil, payload.NewCoin("thomas", 100, nil))
			if err := b.Mine(context.Background(), difficulty); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine the block: %v", failed, err)
			}

			nonce := b.Nonce
			if err := b.Mine(context.Background(), difficulty); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to re-mine the block: %v", failed, err)
			}

			if b.Nonce != nonce {
				t.Fatalf("\t%s\tTest 1:\tShould leave the nonce untouched: got %d, exp %d", failed, b.Nonce, nonce)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the nonce untouched.", success)
		}

		t.Logf("\tTest 2:\tWhen the context is already cancelled.")
		{
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			b := block.New(nil, payload.NewCoin("thomas", 100, nil))
			err := b.Mine(ctx, 8)

			if !errors.Is(err, context.Canceled) {
				t.Fatalf("\t%s\tTest 2:\tShould stop mining with the context error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould stop mining with the context error.", success)
		}
	}
}
