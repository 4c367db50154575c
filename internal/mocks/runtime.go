package mocks

import (
	"context"
	"time"

	"github.com/content-sharing-api/internal/repository"
)

// MockTxRunner runs the transactional closure directly against the mock
// repository set, no database involved.
type MockTxRunner struct {
	Repos   *repository.Repositories
	RunErr  error
	InTxFns int
}

func NewMockTxRunner(repos *repository.Repositories) *MockTxRunner {
	return &MockTxRunner{Repos: repos}
}

func (m *MockTxRunner) InTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	m.InTxFns++
	if m.RunErr != nil {
		return m.RunErr
	}
	return fn(m.Repos)
}

// MockClock returns Current and advances it by Step on every call,
// so consecutive writes get distinct timestamps.
type MockClock struct {
	Current time.Time
	Step    time.Duration
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{Current: start, Step: time.Second}
}

func (m *MockClock) Now() time.Time {
	now := m.Current
	m.Current = m.Current.Add(m.Step)
	return now
}
