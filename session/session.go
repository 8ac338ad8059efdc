package session

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// keys to session
var ChatFetcherCache string = "order_fetcher"
var ChatLastCallback string = "last_callback"

type SessionManager struct {
	sessions sync.Map
}

var sessionManager *SessionManager
var once sync.Once

func newSessionManager() *SessionManager {
	return &SessionManager{
		sessions: sync.Map{},
	}
}

func GetSessionManager() *SessionManager {
	once.Do(func() {
		sessionManager = newSessionManager()
	})
	return sessionManager
}

func (sm *SessionManager) Set(chatID int64, key string, value any) {
	k := fmt.Sprintf("%d::%s", chatID, key)
	sm.sessions.Store(k, value)
}

func (sm *SessionManager) Get(chatID int64, key string) (value any, ok bool) {
	k := fmt.Sprintf("%d::%s", chatID, key)
	return sm.sessions.Load(k)
}

// GetOrSet returns the existing value or stores the one built by newValue.
func (sm *SessionManager) GetOrSet(chatID int64, key string, newValue func() any) any {
	k := fmt.Sprintf("%d::%s", chatID, key)
	if v, ok := sm.sessions.Load(k); ok {
		return v
	}
	v, loaded := sm.sessions.LoadOrStore(k, newValue())
	if !loaded {
		log.Debug().Int64("chatID", chatID).Str("key", key).Msg("session value created")
	}
	return v
}

func (sm *SessionManager) Delete(chatID int64, key string) {
	k := fmt.Sprintf("%d::%s", chatID, key)
	sm.sessions.Delete(k)
}
