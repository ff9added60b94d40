// Package observability aggregates runtime counters and process statistics
// for the health endpoint and the debug tooling.
package observability

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Monitor holds atomic counters mutated on the hot path and read by the
// health endpoint. Zero value is not usable; use NewMonitor.
type Monitor struct {
	log *slog.Logger

	messagesIn    uint64
	repliesSent   uint64
	sendFailures  uint64
	droppedEvents uint64
	startedAt     time.Time
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log, startedAt: time.Now().UTC()}
}

func (m *Monitor) IncrMessagesIn()    { atomic.AddUint64(&m.messagesIn, 1) }
func (m *Monitor) IncrRepliesSent()   { atomic.AddUint64(&m.repliesSent, 1) }
func (m *Monitor) IncrSendFailures()  { atomic.AddUint64(&m.sendFailures, 1) }
func (m *Monitor) IncrDroppedEvents() { atomic.AddUint64(&m.droppedEvents, 1) }

// Stats is the health endpoint payload.
type Stats struct {
	UptimeSeconds int64   `json:"uptime_seconds"`
	MessagesIn    uint64  `json:"messages_in"`
	RepliesSent   uint64  `json:"replies_sent"`
	SendFailures  uint64  `json:"send_failures"`
	DroppedEvents uint64  `json:"dropped_events"`
	RSSBytes      uint64  `json:"rss_bytes"`
	CPUPercent    float64 `json:"cpu_percent"`
	PidStatus     string  `json:"pid_status"`
}

// Snapshot collects the counters plus self process metrics. Process metric
// failures are logged, not fatal: the counters alone still answer liveness.
func (m *Monitor) Snapshot() Stats {
	stats := Stats{
		UptimeSeconds: int64(time.Since(m.startedAt).Seconds()),
		MessagesIn:    atomic.LoadUint64(&m.messagesIn),
		RepliesSent:   atomic.LoadUint64(&m.repliesSent),
		SendFailures:  atomic.LoadUint64(&m.sendFailures),
		DroppedEvents: atomic.LoadUint64(&m.droppedEvents),
	}

	rss, cpu, status, err := selfStats()
	if err != nil {
		m.log.Warn("Failed to collect process stats", "err", err)
		return stats
	}
	stats.RSSBytes = rss
	stats.CPUPercent = cpu
	stats.PidStatus = status
	return stats
}

func selfStats() (uint64, float64, string, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, "", err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
