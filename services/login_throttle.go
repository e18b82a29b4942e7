package services

import (
	"sync"
	"time"
)

// Exponential login cooldown per email: 1s, 2s, 4s ... capped at 30s.
func CooldownSecondsForFailCount(failCount int) int {
	if failCount < 0 {
		failCount = 0
	}
	if failCount >= 5 {
		return 30
	}
	return 1 << failCount
}

type failState struct {
	count    int
	lastFail time.Time
}

// LoginThrottle tracks failed password attempts in memory. State resets on
// success and does not survive a restart, which is acceptable here.
type LoginThrottle struct {
	mu    sync.Mutex
	fails map[string]failState
	now   func() time.Time
}

func NewLoginThrottle() *LoginThrottle {
	return &LoginThrottle{fails: make(map[string]failState), now: time.Now}
}

// WaitSeconds reports how long the caller still has to wait before the next
// attempt for this email, 0 when the attempt is allowed.
func (t *LoginThrottle) WaitSeconds(email string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.fails[email]
	if !ok || st.count == 0 {
		return 0
	}
	cooldown := time.Duration(CooldownSecondsForFailCount(st.count-1)) * time.Second
	remaining := st.lastFail.Add(cooldown).Sub(t.now())
	if remaining <= 0 {
		return 0
	}
	secs := int(remaining / time.Second)
	if remaining%time.Second != 0 {
		secs++
	}
	return secs
}

func (t *LoginThrottle) RecordFailure(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.fails[email]
	st.count++
	st.lastFail = t.now()
	t.fails[email] = st
}

func (t *LoginThrottle) RecordSuccess(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.fails, email)
}
