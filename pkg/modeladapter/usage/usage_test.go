package usage_test

import (
	"sync"
	"testing"

	"github.com/germanamz/humanize/pkg/modeladapter/usage"
	"github.com/stretchr/testify/assert"
)

func TestTokenCount_Total(t *testing.T) {
	assert.Equal(t, 150, usage.TokenCount{InputTokens: 100, OutputTokens: 50}.Total())
	assert.Equal(t, 0, usage.TokenCount{}.Total())
}

func TestTokenCount_Total_Reported(t *testing.T) {
	tc := usage.TokenCount{InputTokens: 100, OutputTokens: 50, TotalTokens: 160}
	assert.Equal(t, 160, tc.Total())
}

func TestTracker_Empty(t *testing.T) {
	var tr usage.Tracker

	assert.Equal(t, 0, tr.Count())
	assert.Equal(t, usage.TokenCount{}, tr.Total())
}

func TestTracker_Total(t *testing.T) {
	var tr usage.Tracker

	tr.Add(usage.TokenCount{InputTokens: 10, OutputTokens: 5, TotalTokens: 15})
	tr.Add(usage.TokenCount{InputTokens: 20, OutputTokens: 10})

	assert.Equal(t, 2, tr.Count())
	assert.Equal(t, usage.TokenCount{InputTokens: 30, OutputTokens: 15, TotalTokens: 45}, tr.Total())
}

func TestTracker_ConcurrentAdd(t *testing.T) {
	var (
		tr usage.Tracker
		wg sync.WaitGroup
	)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Add(usage.TokenCount{InputTokens: 1, OutputTokens: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, tr.Count())
	assert.Equal(t, 100, tr.Total().Total())
}
