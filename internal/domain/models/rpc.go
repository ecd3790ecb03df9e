package models

import "encoding/json"

// RPCStatus is the discriminated outcome of the order placement function.
// Anything the backend does not recognize decodes to RPCStatusUnknown and is
// always treated as an error, never passed through.
type RPCStatus int

const (
	RPCStatusUnknown RPCStatus = iota
	RPCStatusSuccess
	RPCStatusPriceChange
	RPCStatusItemDeactivated
	RPCStatusItemNotFound
)

var rpcStatuses = map[string]RPCStatus{
	"success":          RPCStatusSuccess,
	"price_change":     RPCStatusPriceChange,
	"item_deactivated": RPCStatusItemDeactivated,
	"item_not_found":   RPCStatusItemNotFound,
}

func ParseRPCStatus(raw string) RPCStatus {
	status, ok := rpcStatuses[raw]
	if !ok {
		return RPCStatusUnknown
	}
	return status
}

func (s RPCStatus) String() string {
	for raw, status := range rpcStatuses {
		if status == s {
			return raw
		}
	}
	return "unknown"
}

// PlacementResult is the terminal outcome of one finalization attempt. Data
// holds the function's response body verbatim for the caller.
type PlacementResult struct {
	Status RPCStatus
	Data   json.RawMessage
}
