package models

import "encoding/json"

// WalletAdjustment carries one credit or debit request towards the wallet
// functions. OrderID and Description are optional and passed as NULL when
// empty.
type WalletAdjustment struct {
	UserID          string
	Amount          float64
	TransactionType string
	OrderID         string
	Description     string
}

// WalletState is whatever the wallet function reports back after the
// mutation; surfaced to the client verbatim.
type WalletState struct {
	Wallet json.RawMessage `json:"wallet"`
}
