package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoogleHandoff_ConsumedExactlyOnce(t *testing.T) {
	g := NewGoogleHandoff()

	token := g.Issue(HandoffResult{
		Email:       "google-user@example.com",
		DisplayName: "Google User",
	})
	assert.NotEmpty(t, token)

	res, ok := g.Consume(token)
	assert.True(t, ok)
	assert.Equal(t, "google-user@example.com", res.Email)
	assert.Equal(t, "Google User", res.DisplayName)

	// the token is gone after the first consume
	res, ok = g.Consume(token)
	assert.False(t, ok)
	assert.Nil(t, res)
}

func TestGoogleHandoff_UnknownToken(t *testing.T) {
	g := NewGoogleHandoff()
	_, ok := g.Consume("no-such-token")
	assert.False(t, ok)
}

func TestGoogleHandoff_Expired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGoogleHandoff()
	g.now = func() time.Time { return now }

	token := g.Issue(HandoffResult{Email: "late@example.com"})

	now = now.Add(10 * time.Minute)
	res, ok := g.Consume(token)
	assert.False(t, ok)
	assert.Nil(t, res)

	// expired consume still burns the token
	_, ok = g.Consume(token)
	assert.False(t, ok)
}
