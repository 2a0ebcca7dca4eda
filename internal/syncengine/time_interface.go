package syncengine

import "time"

// MockTicker is a mock implementation of Ticker for testing.
type MockTicker struct {
	TickChan chan time.Time
	stopped  chan struct{}
}

// NewMockTicker creates a MockTicker whose ticks are sent by the test.
func NewMockTicker() *MockTicker {
	return &MockTicker{
		TickChan: make(chan time.Time),
		stopped:  make(chan struct{}),
	}
}

// C returns the ticker's channel.
func (m *MockTicker) C() <-chan time.Time {
	return m.TickChan
}

// Stop records that the ticker was stopped. The tick channel stays open so a
// late send from a test cannot panic.
func (m *MockTicker) Stop() {
	select {
	case <-m.stopped:
	default:
		close(m.stopped)
	}
}

// Stopped is closed once Stop has been called.
func (m *MockTicker) Stopped() <-chan struct{} {
	return m.stopped
}

// MockTimeProvider hands out a single MockTicker and a fixed clock.
type MockTimeProvider struct {
	Ticker      *MockTicker
	CurrentTime time.Time
	Interval    time.Duration // interval requested by the engine
}

// NewTicker returns the provider's MockTicker.
func (m *MockTimeProvider) NewTicker(d time.Duration) Ticker {
	m.Interval = d
	return m.Ticker
}

// Now returns CurrentTime.
func (m *MockTimeProvider) Now() time.Time {
	return m.CurrentTime
}

// RealTicker wraps time.Ticker to implement the Ticker interface.
type RealTicker struct {
	ticker *time.Ticker
}

// C returns the ticker's channel.
func (r *RealTicker) C() <-chan time.Time {
	return r.ticker.C
}

// Stop stops the ticker.
func (r *RealTicker) Stop() {
	r.ticker.Stop()
}

// RealTimeProvider implements TimeProvider using real time functions.
type RealTimeProvider struct{}

// NewTicker creates a new ticker.
func (r *RealTimeProvider) NewTicker(d time.Duration) Ticker {
	return &RealTicker{ticker: time.NewTicker(d)}
}

// Now returns the current time.
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Ticker is an interface for time.Ticker to allow mocking.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TimeProvider provides time-related functionality for dependency injection.
type TimeProvider interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}
