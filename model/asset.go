package model

import "encoding/json"

func UnmarshalAssetResp(data []byte) (AssetResp, error) {
	var r AssetResp
	err := json.Unmarshal(data, &r)
	return r, err
}

type AssetResp struct {
	Result *AssetInfo `json:"result"`
}

type AssetInfo struct {
	Asset       string `json:"asset"`
	AssetLong   string `json:"asset_longname"`
	Divisible   bool   `json:"divisible"`
	Supply      int64  `json:"supply"`
	Locked      bool   `json:"locked"`
	Description string `json:"description"`
	Issuer      string `json:"issuer"`
}
