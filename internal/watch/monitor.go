package watch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"spatial/internal/logging"
)

// Event is a sound-subsystem hotplug notification.
type Event struct {
	Action string
	KObj   string
}

// Monitor listens for udev netlink events on the sound subsystem so the
// device listing can refresh when hardware comes and goes.
type Monitor struct {
	logger  *slog.Logger
	handler func(Event)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// New creates a monitor that invokes handler for each sound device event.
func New(logger *slog.Logger, handler func(Event)) *Monitor {
	return &Monitor{
		logger:  logging.NewComponentLogger(logger, "udev-monitor"),
		handler: handler,
	}
}

// Start begins listening for udev netlink events. A connection failure is
// returned rather than logged: without the socket the watch mode has
// nothing to do.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		return err
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, quit)

	m.logger.Debug("udev monitor started")
	return nil
}

// Stop shuts down the monitor. Safe to call before Start or repeatedly.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false
	m.logger.Debug("udev monitor stopped")
}

func (m *Monitor) monitorLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, soundMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			if m.handler != nil {
				m.handler(Event{Action: string(uevent.Action), KObj: uevent.KObj})
			}
		case err := <-errs:
			m.logger.Warn("udev monitor error", logging.Args(logging.Error(err))...)
		}
	}
}

// soundMatcher matches add/remove events on the sound subsystem.
func soundMatcher() netlink.Matcher {
	action := "add|remove"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "sound",
		},
	})
	return rules
}
