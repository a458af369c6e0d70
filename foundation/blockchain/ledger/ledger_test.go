package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/block"
	"github.com/minichain/minichain/foundation/blockchain/chain"
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

const (
	difficulty = 2
	reward     = 100
)

// appendMined mines a successor of the chain's head carrying the payload
// and appends it.
func appendMined(t *testing.T, c *chain.Chain, pl payload.Payload) *block.Block {
	t.Helper()

	b := block.New(c.Head(), pl)
	if err := b.Mine(context.Background(), c.Difficulty()); err != nil {
		t.Fatalf("\t%s\tShould be able to mine a block: %v", failed, err)
	}
	if !c.Append(b) {
		t.Fatalf("\t%s\tShould be able to append a mined block.", failed)
	}

	return b
}

// demoChain builds the three block chain used across these tests:
// genesis mints 100 for thomas, block 1 mints 100 for dave and moves 50
// from thomas to mary, block 2 mints 100 for thomas and fans out transfers
// from mary and thomas.
func demoChain(t *testing.T) *chain.Chain {
	t.Helper()

	c := chain.New(difficulty, reward)

	appendMined(t, c, payload.NewCoin("thomas", reward, nil))

	appendMined(t, c, payload.NewCoin("dave", reward, []payload.Tran{
		payload.NewTran("thomas", "mary", 50),
	}))

	appendMined(t, c, payload.NewCoin("thomas", reward, []payload.Tran{
		payload.NewTran("mary", "liz", 20),
		payload.NewTran("thomas", "robert", 10),
		payload.NewTran("thomas", "nancy", 10),
	}))

	return c
}

func Test_Replay(t *testing.T) {
	t.Log("Given the need to fold a chain's transactions into final balances.")
	{
		t.Logf("\tTest 0:\tWhen replaying the three block demo chain.")
		{
			c := demoChain(t)

			accounts, err := ledger.Replay(c)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to replay the chain: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to replay the chain.", success)

			exp := ledger.Accounts{
				"thomas": 130,
				"dave":   100,
				"mary":   30,
				"liz":    20,
				"robert": 10,
				"nancy":  10,
			}

			if len(accounts) != len(exp) {
				t.Fatalf("\t%s\tTest 0:\tShould have %d accounts: got %d.", failed, len(exp), len(accounts))
			}
			for account, balance := range exp {
				if accounts[account] != balance {
					t.Errorf("\t%s\tTest 0:\tShould have %d for %s: got %d.", failed, balance, account, accounts[account])
				}
			}
			t.Logf("\t%s\tTest 0:\tShould have the expected final balances.", success)

			var total uint
			for _, balance := range accounts {
				total += balance
			}
			if total != reward*3 {
				t.Fatalf("\t%s\tTest 0:\tShould conserve value, one reward per block: got %d, exp %d.", failed, total, reward*3)
			}
			t.Logf("\t%s\tTest 0:\tShould conserve value, one reward per block.", success)
		}

		t.Logf("\tTest 1:\tWhen replaying the same chain twice.")
		{
			c := demoChain(t)

			first, err := ledger.Replay(c)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to replay the chain: %v", failed, err)
			}
			second, err := ledger.Replay(c)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to replay the chain again: %v", failed, err)
			}

			for account, balance := range first {
				if second[account] != balance {
					t.Fatalf("\t%s\tTest 1:\tShould get identical balances on every replay.", failed)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould get identical balances on every replay.", success)
		}
	}
}

func Test_ReplayFailures(t *testing.T) {
	t.Log("Given the need to reject chains that violate the ledger rules.")
	{
		t.Logf("\tTest 0:\tWhen a non-head payload is mutated after mining.")
		{
			c := chain.New(difficulty, reward)
			gb := appendMined(t, c, payload.NewCoin("thomas", reward, nil))
			appendMined(t, c, payload.NewCoin("dave", reward, nil))

			gb.Payload = payload.NewCoin("mallory", reward, nil)

			if _, err := ledger.Replay(c); !errors.Is(err, ledger.ErrInvalidBlock) {
				t.Fatalf("\t%s\tTest 0:\tShould fail the replay with ErrInvalidBlock: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould fail the replay with ErrInvalidBlock.", success)
		}

		t.Logf("\tTest 1:\tWhen a sender spends more than their balance.")
		{
			c := chain.New(difficulty, reward)
			appendMined(t, c, payload.NewCoin("thomas", reward, nil))
			appendMined(t, c, payload.NewCoin("dave", reward, []payload.Tran{
				payload.NewTran("thomas", "mary", 150),
			}))

			if _, err := ledger.Replay(c); !errors.Is(err, ledger.ErrOverspend) {
				t.Fatalf("\t%s\tTest 1:\tShould fail the replay with ErrOverspend: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould fail the replay with ErrOverspend.", success)
		}

		t.Logf("\tTest 2:\tWhen a sender has no account at all.")
		{
			c := chain.New(difficulty, reward)
			appendMined(t, c, payload.NewCoin("thomas", reward, []payload.Tran{
				payload.NewTran("ghost", "mary", 1),
			}))

			if _, err := ledger.Replay(c); !errors.Is(err, ledger.ErrOverspend) {
				t.Fatalf("\t%s\tTest 2:\tShould fail the replay with ErrOverspend: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould fail the replay with ErrOverspend.", success)
		}

		t.Logf("\tTest 3:\tWhen a transaction debits and credits different amounts.")
		{
			c := chain.New(difficulty, reward)
			appendMined(t, c, payload.NewCoin("thomas", reward, nil))
			appendMined(t, c, payload.NewCoin("dave", reward, []payload.Tran{
				{
					Input:  payload.Entry{Account: "thomas", Amount: 50},
					Output: payload.Entry{Account: "mary", Amount: 40},
				},
			}))

			if _, err := ledger.Replay(c); !errors.Is(err, ledger.ErrUnbalancedTran) {
				t.Fatalf("\t%s\tTest 3:\tShould fail the replay with ErrUnbalancedTran: %v", failed, err)
			}
			t.Logf("\t%s\tTest 3:\tShould fail the replay with ErrUnbalancedTran.", success)
		}

		t.Logf("\tTest 4:\tWhen a block mints the wrong coinbase amount.")
		{
			c := chain.New(difficulty, reward)
			appendMined(t, c, payload.NewCoin("thomas", 42, nil))

			if _, err := ledger.Replay(c); !errors.Is(err, ledger.ErrInvalidCoinbase) {
				t.Fatalf("\t%s\tTest 4:\tShould fail the replay with ErrInvalidCoinbase: %v", failed, err)
			}
			t.Logf("\t%s\tTest 4:\tShould fail the replay with ErrInvalidCoinbase.", success)
		}

		t.Logf("\tTest 5:\tWhen a block carries an opaque data payload.")
		{
			c := chain.New(difficulty, reward)
			appendMined(t, c, payload.Data("not a transaction set"))

			if _, err := ledger.Replay(c); !errors.Is(err, ledger.ErrInvalidBlock) {
				t.Fatalf("\t%s\tTest 5:\tShould fail the replay with ErrInvalidBlock: %v", failed, err)
			}
			t.Logf("\t%s\tTest 5:\tShould fail the replay with ErrInvalidBlock.", success)
		}
	}
}
