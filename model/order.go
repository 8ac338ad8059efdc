package model

import "encoding/json"

func UnmarshalOrdersResp(data []byte) (OrdersResp, error) {
	var r OrdersResp
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *OrdersResp) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// OrdersResp is the list envelope of the DEX orders endpoint. Both fields
// are optional on the wire; a missing result is an empty page and a missing
// result_count is 0.
type OrdersResp struct {
	Result      []Order `json:"result"`
	ResultCount int     `json:"result_count"`
}

type OrderResp struct {
	Result *Order `json:"result"`
}

type Order struct {
	TxIndex       int64  `json:"tx_index"`
	TxHash        string `json:"tx_hash"`
	BlockIndex    int64  `json:"block_index"`
	BlockTime     int64  `json:"block_time"`
	Source        string `json:"source"`
	GiveAsset     string `json:"give_asset"`
	GiveQuantity  int64  `json:"give_quantity"`
	GiveRemaining int64  `json:"give_remaining"`
	GetAsset      string `json:"get_asset"`
	GetQuantity   int64  `json:"get_quantity"`
	GetRemaining  int64  `json:"get_remaining"`
	Expiration    int64  `json:"expiration"`
	ExpireIndex   int64  `json:"expire_index"`
	FeeRequired   int64  `json:"fee_required"`
	FeeProvided   int64  `json:"fee_provided"`
	// verbose-only, empty when the endpoint does not normalize
	GiveQuantityNormalized string `json:"give_quantity_normalized,omitempty"`
	GetQuantityNormalized  string `json:"get_quantity_normalized,omitempty"`
	Status                 string `json:"status"` // may be composite, e.g. "open:partial"
}
