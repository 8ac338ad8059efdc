package store

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var CacheStore = cache.New(5*time.Minute, 30*time.Minute)

func cacheKey(chatID int64, key string) string {
	return fmt.Sprintf("%d_%s", chatID, key)
}

func Set(chatID int64, key string, value interface{}, duration time.Duration) {
	CacheStore.Set(cacheKey(chatID, key), value, duration)
}

func Get(chatID int64, key string) (interface{}, bool) {
	return CacheStore.Get(cacheKey(chatID, key))
}

func Delete(chatID int64, key string) {
	CacheStore.Delete(cacheKey(chatID, key))
}
