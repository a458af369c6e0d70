// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minichain/minichain/business/web/errs"
	"github.com/minichain/minichain/foundation/blockchain/digest"
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/payload"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/events"
	"github.com/minichain/minichain/foundation/nameservice"
	"github.com/minichain/minichain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of public node endpoints.
type Handlers struct {
	Log         *zap.SugaredLogger
	State       *state.State
	NS          *nameservice.NameService
	WS          websocket.Upgrader
	Evts        *events.Events
	MineTimeout time.Duration
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Subscribe(v.TraceID)
	defer h.Evts.Unsubscribe(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Accounts returns the current balances for all accounts, or for the one
// account specified on the route. Balances come from a fresh replay of the
// chain, they are never cached.
func (h Handlers) Accounts(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	balances, err := h.State.RetrieveBalances()
	if err != nil {
		return fmt.Errorf("unable to replay the chain: %w", err)
	}

	account := payload.AccountID(web.Param(r, "account"))
	if account != "" {
		balance, exists := balances[account]
		if !exists {
			return errs.NewTrusted(fmt.Errorf("account %s not found", account), http.StatusNotFound)
		}
		balances = ledger.Accounts{account: balance}
	}

	acts := make([]info, 0, len(balances))
	for account, balance := range balances {
		acts = append(acts, info{
			Account: account,
			Name:    h.NS.Lookup(account),
			Balance: balance,
		})
	}
	sort.Slice(acts, func(i, j int) bool { return acts[i].Account < acts[j].Account })

	ai := actInfo{
		LatestBlock: h.State.RetrieveLatestBlock().Hash(),
		Accounts:    acts,
	}

	return web.Respond(ctx, w, ai, http.StatusOK)
}

// Blocks returns the chain's blocks ordered genesis first.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chainBlocks := h.State.RetrieveBlocks()

	blocks := make([]blockInfo, len(chainBlocks))
	for i, b := range chainBlocks {
		parentHash := digest.ZeroHash
		if b.Parent != nil {
			parentHash = b.Parent.Hash()
		}

		blocks[i] = blockInfo{
			Hash:       b.Hash(),
			ParentHash: parentHash,
			Nonce:      b.Nonce,
			Payload:    b.Payload,
		}
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// SubmitTransactions mines a batch of transfers into a new block on the
// chain. Mining is bound by the configured timeout.
func (h Handlers) SubmitTransactions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var st submitTrans
	if err := web.Decode(r, &st); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	trans := make([]payload.Tran, len(st.Trans))
	for i, tr := range st.Trans {
		trans[i] = payload.NewTran(tr.From, tr.To, tr.Amount)
	}

	h.Log.Infow("add trans", "traceid", v.TraceID, "beneficiary", st.Beneficiary, "trans", len(trans))

	mineCtx, cancel := context.WithTimeout(ctx, h.MineTimeout)
	defer cancel()

	b, err := h.State.SubmitTransactions(mineCtx, st.Beneficiary, trans)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrOverspend),
			errors.Is(err, ledger.ErrUnbalancedTran),
			errors.Is(err, ledger.ErrInvalidCoinbase):
			return errs.NewTrusted(err, http.StatusBadRequest)
		default:
			return err
		}
	}

	resp := struct {
		Status string    `json:"status"`
		Block  blockInfo `json:"block"`
	}{
		Status: "transactions mined into block",
		Block: blockInfo{
			Hash:       b.Hash(),
			ParentHash: b.Parent.Hash(),
			Nonce:      b.Nonce,
			Payload:    b.Payload,
		},
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
