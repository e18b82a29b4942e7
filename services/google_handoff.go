package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// HandoffResult is what the simulated Google sign-in page hands back to the
// app: enough profile to create or update the vendor.
type HandoffResult struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type handoffEntry struct {
	result  HandoffResult
	expires time.Time
}

// GoogleHandoff holds short-lived single-use tokens bridging the simulated
// external sign-in back into the app. A token is deleted the moment it is
// consumed; a second consume fails.
type GoogleHandoff struct {
	mu     sync.Mutex
	tokens map[string]handoffEntry
	ttl    time.Duration
	now    func() time.Time
}

func NewGoogleHandoff() *GoogleHandoff {
	return &GoogleHandoff{
		tokens: make(map[string]handoffEntry),
		ttl:    5 * time.Minute,
		now:    time.Now,
	}
}

func (g *GoogleHandoff) Issue(res HandoffResult) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	token := uuid.NewString()
	g.tokens[token] = handoffEntry{result: res, expires: g.now().Add(g.ttl)}
	return token
}

func (g *GoogleHandoff) Consume(token string) (*HandoffResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	entry, ok := g.tokens[token]
	if !ok {
		return nil, false
	}
	delete(g.tokens, token)
	if g.now().After(entry.expires) {
		return nil, false
	}
	res := entry.result
	return &res, true
}
