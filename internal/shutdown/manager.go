package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"iss-tracker/internal/logger"
)

const componentTimeout = 5 * time.Second

// Shutdownable is implemented by components with background work to stop
// (poller, controller).
type Shutdownable interface {
	Shutdown()
}

// Manager coordinates teardown: window close or a termination signal stops
// registered components in reverse registration order, each bounded by a
// timeout so a stuck fetch cannot hang exit.
type Manager struct {
	mu         sync.Mutex
	components []namedComponent
	log        logger.Logger
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

type namedComponent struct {
	name      string
	component Shutdownable
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		log:    log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a component; later registrations shut down first.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, namedComponent{name: name, component: component})
}

// Listen installs the signal handler for SIGINT/SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			m.log.Info("shutdown", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown runs the teardown sequence once; repeat calls return immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.log.Info("shutdown", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		nc := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			nc.component.Shutdown()
		}()

		select {
		case <-finished:
			m.log.Debug("shutdown", "component stopped", map[string]interface{}{
				"component": nc.name,
			})
		case <-time.After(componentTimeout):
			m.log.Warning("shutdown", "component shutdown timeout", map[string]interface{}{
				"component": nc.name,
			})
		}
	}

	m.log.Info("shutdown", "shutdown sequence completed", nil)
}

// Context is cancelled as soon as shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed when shutdown has been initiated.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
