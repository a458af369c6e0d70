package public

import (
	"github.com/minichain/minichain/foundation/blockchain/payload"
)

// tran represents a single transfer in a submission.
type tran struct {
	From   payload.AccountID `json:"from" validate:"required"`
	To     payload.AccountID `json:"to" validate:"required,nefield=From"`
	Amount uint              `json:"amount" validate:"required,gt=0"`
}

// submitTrans represents the payload of a transaction submission.
type submitTrans struct {
	Beneficiary payload.AccountID `json:"beneficiary" validate:"required"`
	Trans       []tran            `json:"trans" validate:"required,min=1,dive"`
}

// info represents one account and its balance in the API output.
type info struct {
	Account payload.AccountID `json:"account"`
	Name    string            `json:"name"`
	Balance uint              `json:"balance"`
}

// actInfo is the response form for the accounts endpoint.
type actInfo struct {
	LatestBlock string `json:"latest_block"`
	Accounts    []info `json:"accounts"`
}

// blockInfo is the response form for a single block.
type blockInfo struct {
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	Nonce      uint64 `json:"nonce"`
	Payload    any    `json:"payload"`
}
