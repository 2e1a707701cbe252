package dto

import (
	"encoding/json"
	"time"
)

// JSON-RPC envelope of the source ledger's read API.

type RpcRequest struct {
	JsonRpc string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	Id      int         `json:"id"`
}

type RpcResponse struct {
	JsonRpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RpcError       `json:"error"`
	Id      int             `json:"id"`
}

type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LedgerEvent is one immutable item from a user's activity feed. Url encodes
// the author and, for content events, the permlink ("@author/permlink").
type LedgerEvent struct {
	Id        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"msg"`
	Url       string    `json:"url"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"-"` // parsed from Date by the ledger client
}

// LedgerPost is the content a notification refers to.
type LedgerPost struct {
	Author   string `json:"author"`
	Permlink string `json:"permlink"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}
