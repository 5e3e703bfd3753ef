package services

import (
	"errors"
	"sync"
	"time"
)

// ErrRemoteUnavailable is returned by the breaker instead of touching
// the network while the remote is known to be down. Services treat it
// like any other gateway failure: they go local.
var ErrRemoteUnavailable = errors.New("remote backend unavailable")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

// Breaker tracks remote backend health across all domain services so a
// dead backend stops costing a full network round-trip per operation.
// It adds no retries; it only short-circuits the remote-first attempt.
type Breaker struct {
	mu              sync.Mutex
	state           BreakerState
	failureCount    int
	successCount    int
	lastFailureTime time.Time

	maxFailures      int
	cooldown         time.Duration
	halfOpenMaxCalls int
}

type BreakerConfig struct {
	MaxFailures      int
	Cooldown         time.Duration
	HalfOpenMaxCalls int
}

func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		MaxFailures:      5,
		Cooldown:         30 * time.Second,
		HalfOpenMaxCalls: 2,
	}
}

func NewBreaker(config *BreakerConfig) *Breaker {
	if config == nil {
		config = DefaultBreakerConfig()
	}
	return &Breaker{
		state:            BreakerClosed,
		maxFailures:      config.MaxFailures,
		cooldown:         config.Cooldown,
		halfOpenMaxCalls: config.HalfOpenMaxCalls,
	}
}

// Execute runs fn unless the breaker is open, recording the outcome.
// A nil Breaker always runs fn, so wiring one up stays optional.
func (b *Breaker) Execute(fn func() error) error {
	if b == nil {
		return fn()
	}
	if !b.allow() {
		return ErrRemoteUnavailable
	}

	err := fn()
	if err != nil {
		b.recordFailure()
		return err
	}
	b.recordSuccess()
	return nil
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		return true
	case BreakerOpen:
		if time.Since(b.lastFailureTime) >= b.cooldown {
			b.state = BreakerHalfOpen
			b.successCount = 0
			return true
		}
		return false
	case BreakerHalfOpen:
		return b.successCount < b.halfOpenMaxCalls
	default:
		return false
	}
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	b.lastFailureTime = time.Now()

	switch b.state {
	case BreakerClosed:
		if b.failureCount >= b.maxFailures {
			b.state = BreakerOpen
		}
	case BreakerHalfOpen:
		b.state = BreakerOpen
		b.successCount = 0
	}
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failureCount = 0
	case BreakerHalfOpen:
		b.successCount++
		if b.successCount >= b.halfOpenMaxCalls {
			b.state = BreakerClosed
			b.failureCount = 0
			b.successCount = 0
		}
	}
}

func (b *Breaker) State() BreakerState {
	if b == nil {
		return BreakerClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) StateName() string {
	switch b.State() {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}
