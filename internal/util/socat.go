package util

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"
)

// SocatManager manages lifecycle of socat-created virtual serial pairs.
// The simulator writes into one end while the viewer opens the other.
type SocatManager struct {
	mu      sync.Mutex
	cmds    []*exec.Cmd
	links   []string
	closed  bool
	command func(name string, args ...string) *exec.Cmd
}

// NewSocatManager initializes an empty manager.
func NewSocatManager() *SocatManager {
	return &SocatManager{command: exec.Command}
}

// CreatePair starts a socat process that links two PTYs (bidirectional) and
// waits until both links exist.
func (m *SocatManager) CreatePair(ctx context.Context, left, right string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("socat manager already cleaned up")
	}

	cmd := m.command(
		"socat", "-d", "-d",
		fmt.Sprintf("pty,raw,echo=0,link=%s", left),
		fmt.Sprintf("pty,raw,echo=0,link=%s", right),
	)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start socat: %w", err)
	}
	m.cmds = append(m.cmds, cmd)
	m.links = append(m.links, left, right)
	slog.Info("started socat", "pid", cmd.Process.Pid, "left", left, "right", right)

	return waitForLinks(ctx, left, right)
}

func waitForLinks(ctx context.Context, paths ...string) error {
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		ready := true
		for _, p := range paths {
			if _, err := os.Lstat(p); err != nil {
				ready = false
				break
			}
		}
		if ready {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for socat links %v: %w", paths, ctx.Err())
		case <-tick.C:
		}
	}
}

// Links returns the PTY link paths created so far.
func (m *SocatManager) Links() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.links...)
}

// Cleanup stops all socat processes and removes created links.
func (m *SocatManager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true

	for _, cmd := range m.cmds {
		if cmd.Process != nil {
			slog.Debug("killing socat", "pid", cmd.Process.Pid)
			_ = cmd.Process.Kill()
			_, _ = cmd.Process.Wait()
		}
	}

	for _, path := range m.links {
		if _, err := os.Lstat(path); err == nil {
			_ = os.Remove(path)
			slog.Debug("removed link", "path", path)
		}
	}

	slog.Info("socat cleanup complete", "pairs", len(m.links)/2)
}
