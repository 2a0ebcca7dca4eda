//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/proxy-panel/internal/export"
	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/internal/syncengine"
)

// eventCollector collects events for verification.
type eventCollector struct {
	mu     sync.Mutex
	events []syncengine.Event
}

func (c *eventCollector) Emit(event syncengine.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *eventCollector) Events() []syncengine.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]syncengine.Event(nil), c.events...)
}

// scanService is an in-memory stand-in for the remote scanning service.
type scanService struct {
	mu       sync.Mutex
	running  bool
	started  *float64
	logs     []string
	results  []gateway.ResultRow
	payloads []gateway.StartPayload
}

func (s *scanService) router() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()

	r.GET("/status", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		c.JSON(http.StatusOK, gin.H{"running": s.running, "stopping": false, "last_started": s.started, "last_finished": nil})
	})

	r.GET("/logs", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		c.JSON(http.StatusOK, gin.H{"logs": s.logs})
	})

	r.GET("/results", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		c.JSON(http.StatusOK, gin.H{"results": s.results})
	})

	r.POST("/start", func(c *gin.Context) {
		var payload gateway.StartPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.String(http.StatusBadRequest, "bad payload")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.running {
			c.String(http.StatusConflict, "Scan already running")
			return
		}

		now := float64(time.Now().Unix())
		s.running = true
		s.started = &now
		s.payloads = append(s.payloads, payload)
		s.logs = append(s.logs, "scan started")

		c.String(http.StatusOK, "started")
	})

	r.POST("/stop", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.running {
			c.String(http.StatusConflict, "")
			return
		}

		s.running = false
		s.logs = append(s.logs, "scan stopped")

		c.String(http.StatusOK, "stopping")
	})

	return r
}

// Payloads returns the start payloads received so far.
func (s *scanService) Payloads() []gateway.StartPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]gateway.StartPayload(nil), s.payloads...)
}

// find simulates the scanner reporting working proxies.
func (s *scanService) find(rows ...gateway.ResultRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, rows...)
	s.logs = append(s.logs, "found proxies")
}

func newEngine(t *testing.T, service *scanService) (*syncengine.Engine, *eventCollector) {
	t.Helper()

	server := httptest.NewServer(service.router())
	t.Cleanup(server.Close)

	engine := syncengine.NewEngine(gateway.New(server.URL, gateway.WithTimeout(2*time.Second)))
	engine.Interval = 50 * time.Millisecond
	engine.Exporter = export.New()
	t.Cleanup(engine.Close)

	collector := &eventCollector{}
	engine.SetEventEmitter(collector)

	return engine, collector
}

// TestIntegration_ScanLifecycle drives a full start, poll, export and stop
// cycle against the fake service.
func TestIntegration_ScanLifecycle(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	service := &scanService{}
	engine, collector := newEngine(t, service)

	engine.Initialize(ctx)

	g.Eventually(func() *gateway.RunStatus {
		return engine.Snapshot().Status
	}).WithTimeout(2 * time.Second).ShouldNot(BeNil())
	g.Expect(engine.Snapshot().StatusLabel()).To(Equal(syncengine.LabelIdle))

	maxProxies := 5
	accepted := engine.Start(ctx, gateway.StartPayload{Targets: []string{"https://a.example"}, MaxProxies: &maxProxies})

	g.Expect(accepted).To(BeTrue())
	g.Expect(engine.Snapshot().StatusMessage).To(Equal(syncengine.MsgStartAccepted))
	g.Expect(engine.Snapshot().StatusLabel()).To(Equal(syncengine.LabelRunning))
	payloads := service.Payloads()
	g.Expect(payloads).To(HaveLen(1))
	g.Expect(payloads[0].Targets).To(Equal([]string{"https://a.example"}))
	g.Expect(*payloads[0].MaxProxies).To(Equal(5))

	rows := []gateway.ResultRow{
		{Proxy: "1.1.1.1:80", Latency: 12.5, Scheme: "http", Target: "https://a.example"},
		{Proxy: "2.2.2.2:1080", Latency: 230, Scheme: "socks5", Target: "https://a.example"},
	}
	service.find(rows...)

	g.Eventually(func() []gateway.ResultRow {
		return engine.Snapshot().Results
	}).WithTimeout(2 * time.Second).Should(Equal(rows))
	g.Eventually(func() []string {
		return engine.Snapshot().Logs
	}).WithTimeout(2 * time.Second).Should(Equal([]string{"scan started", "found proxies"}))

	// A second start is refused by the service with a reason.
	g.Expect(engine.Start(ctx, gateway.StartPayload{})).To(BeTrue())
	g.Expect(engine.Snapshot().StatusMessage).To(Equal("Scan already running"))

	dest := filepath.Join(t.TempDir(), "out", "working.json")
	g.Expect(engine.ExportResults(dest)).To(Succeed())

	data, err := os.ReadFile(dest)
	g.Expect(err).ShouldNot(HaveOccurred())

	var exported []gateway.ResultRow
	g.Expect(json.Unmarshal(data, &exported)).To(Succeed())
	g.Expect(exported).To(Equal(rows))

	g.Expect(engine.Stop(ctx)).To(BeTrue())
	g.Expect(engine.Snapshot().StatusMessage).To(Equal(syncengine.MsgStopAccepted))
	g.Expect(engine.Snapshot().StatusLabel()).To(Equal(syncengine.LabelIdle))

	// Stopping an idle scan falls back to the default message.
	g.Expect(engine.Stop(ctx)).To(BeTrue())
	g.Expect(engine.Snapshot().StatusMessage).To(Equal(syncengine.MsgNotRunning))

	g.Expect(collector.Events()).To(ContainElement(syncengine.CommandStarted{Kind: syncengine.CommandStart}))
	g.Expect(collector.Events()).To(ContainElement(syncengine.CommandFinished{Kind: syncengine.CommandStop}))

	engine.Close()
	g.Eventually(engine.Done()).WithTimeout(2 * time.Second).Should(BeClosed())
}

// TestIntegration_UnreachableServiceWarns verifies the connectivity warning
// appears when the service is down and clears once it answers.
func TestIntegration_UnreachableServiceWarns(t *testing.T) {
	g := NewWithT(t)

	service := &scanService{}

	var up sync.Mutex
	available := false

	router := service.router()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up.Lock()
		ok := available
		up.Unlock()

		if !ok {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}

		router.ServeHTTP(w, r)
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	engine := syncengine.NewEngine(gateway.New(server.URL))
	engine.Interval = 50 * time.Millisecond
	t.Cleanup(engine.Close)

	engine.Initialize(context.Background())

	g.Eventually(func() string {
		return engine.Snapshot().StatusMessage
	}).WithTimeout(2 * time.Second).Should(Equal(syncengine.MsgStatusUnavailable))

	up.Lock()
	available = true
	up.Unlock()

	g.Eventually(func() string {
		return engine.Snapshot().StatusMessage
	}).WithTimeout(2 * time.Second).Should(BeEmpty())
	g.Expect(engine.Snapshot().Status).ToNot(BeNil())
}
