package api

import (
	"errors"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xcp/xcpdex.com/model"
	"github.com/xcp/xcpdex.com/store"
)

var ErrGetAsset = errors.New("get asset request failed")

// GetAssetInfo looks up asset metadata (divisibility mostly) and keeps it in
// the in-process cache. Asset facts change rarely; order pages never cache.
func GetAssetInfo(assetEndpoint, asset string) (*model.AssetInfo, error) {
	cacheKey := "asset::" + asset
	if cached, ok := store.CacheStore.Get(cacheKey); ok {
		if info, ok := cached.(*model.AssetInfo); ok {
			return info, nil
		}
	}

	rawURL := assetEndpoint + "/" + url.PathEscape(asset)
	data, err := doGet(rawURL)
	if err != nil {
		log.Error().Err(err).Str("url", rawURL).Send()
		return nil, ErrGetAsset
	}

	resp, err := model.UnmarshalAssetResp(data)
	if err != nil {
		log.Error().Err(err).Str("url", rawURL).Send()
		return nil, ErrGetAsset
	}
	if resp.Result == nil {
		return nil, ErrGetAsset
	}

	store.CacheStore.Set(cacheKey, resp.Result, 12*time.Hour)

	return resp.Result, nil
}
