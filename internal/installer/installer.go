package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gofrs/flock"

	"spatial/internal/fileutil"
	"spatial/internal/logging"
)

// ErrAssetMissing indicates the selected preset's impulse response file
// does not exist.
var ErrAssetMissing = errors.New("impulse response asset missing")

// ErrLocked indicates another invocation holds the install lock.
var ErrLocked = errors.New("another spatial invocation is in progress")

// Executor abstracts command execution for the session reload.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	return cmd.CombinedOutput()
}

// Journal records completed operations. Journal failures are warnings, not
// operation failures.
type Journal interface {
	RecordInstall(ctx context.Context, preset, deviceID, generation string) error
	RecordUninstall(ctx context.Context) error
}

// State is the derived installation state. It is recomputed from the
// filesystem on every query and never cached, so external modification is
// always observed.
type State int

const (
	StateAbsent State = iota
	StatePartial
	StateInstalled
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePartial:
		return "partial"
	case StateInstalled:
		return "installed"
	default:
		return "unknown"
	}
}

// Options configures a Manager.
type Options struct {
	ConfPath  string
	AssetPath string
	LockPath  string
	Exec      Executor
	Journal   Journal
	Logger    *slog.Logger
}

// Manager owns the on-disk artifact pair (conf fragment + asset copy) and
// drives idempotent install/replace/uninstall against the audio session.
type Manager struct {
	confPath  string
	assetPath string
	exec      Executor
	journal   Journal
	logger    *slog.Logger
	lock      *flock.Flock
}

// New constructs a Manager.
func New(opts Options) (*Manager, error) {
	if opts.ConfPath == "" || opts.AssetPath == "" {
		return nil, errors.New("installer requires conf and asset paths")
	}
	ex := opts.Exec
	if ex == nil {
		ex = commandExecutor{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := opts.LockPath
	if lockPath == "" {
		lockPath = opts.ConfPath + ".lock"
	}
	return &Manager{
		confPath:  opts.ConfPath,
		assetPath: opts.AssetPath,
		exec:      ex,
		journal:   opts.Journal,
		logger:    logging.NewComponentLogger(logger, "installer"),
		lock:      flock.New(lockPath),
	}, nil
}

// ConfPath returns the conf artifact location.
func (m *Manager) ConfPath() string { return m.confPath }

// AssetPath returns the asset copy location.
func (m *Manager) AssetPath() string { return m.assetPath }

// State stats both artifacts and derives the installation state.
func (m *Manager) State() (State, error) {
	confExists, err := exists(m.confPath)
	if err != nil {
		return StateAbsent, err
	}
	assetExists, err := exists(m.assetPath)
	if err != nil {
		return StateAbsent, err
	}
	switch {
	case confExists && assetExists:
		return StateInstalled, nil
	case confExists || assetExists:
		return StatePartial, nil
	default:
		return StateAbsent, nil
	}
}

// InstallRequest carries the artifacts plus the metadata journaled with
// them.
type InstallRequest struct {
	ConfText   string
	Asset      []byte
	Preset     string
	DeviceID   string
	Generation string
}

// Install writes the artifact pair, replacing any previous installation.
// Each artifact is written via temp-file+rename so a partially written
// configuration is never visible. The asset lands before the conf so the
// conf never references a missing file.
func (m *Manager) Install(ctx context.Context, req InstallRequest) error {
	unlock, err := m.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	for _, dir := range []string{filepath.Dir(m.confPath), filepath.Dir(m.assetPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if err := fileutil.WriteFileAtomic(m.assetPath, req.Asset, 0o644); err != nil {
		return fmt.Errorf("write impulse response: %w", err)
	}
	if err := fileutil.WriteFileAtomic(m.confPath, []byte(req.ConfText), 0o644); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}

	m.logger.Info("artifacts installed",
		logging.Args(
			logging.String("conf", m.confPath),
			logging.String("asset", m.assetPath),
			logging.String("device", req.DeviceID),
			logging.String("preset", req.Preset),
		)...)

	if m.journal != nil {
		if err := m.journal.RecordInstall(ctx, req.Preset, req.DeviceID, req.Generation); err != nil {
			m.logger.Warn("history journal write failed", logging.Args(logging.Error(err))...)
		}
	}

	m.reloadSession(ctx)
	return nil
}

// Uninstall removes the artifact pair. Removing an absent installation is
// a no-op: it returns success, touches no files, and requests no reload.
func (m *Manager) Uninstall(ctx context.Context) error {
	unlock, err := m.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	state, err := m.State()
	if err != nil {
		return err
	}
	if state == StateAbsent {
		m.logger.Debug("nothing installed, uninstall is a no-op")
		return nil
	}

	// conf first, so a session reload in between never sees a conf
	// referencing a removed asset
	if err := removeIfPresent(m.confPath); err != nil {
		return fmt.Errorf("remove configuration: %w", err)
	}
	if err := removeIfPresent(m.assetPath); err != nil {
		return fmt.Errorf("remove impulse response: %w", err)
	}

	m.logger.Info("artifacts removed",
		logging.Args(logging.String("conf", m.confPath))...)

	if m.journal != nil {
		if err := m.journal.RecordUninstall(ctx); err != nil {
			m.logger.Warn("history journal write failed", logging.Args(logging.Error(err))...)
		}
	}

	m.reloadSession(ctx)
	return nil
}

// reloadSession asks PipeWire to pick up the new configuration. Failure is
// a warning: the on-disk change already succeeded and is not rolled back.
func (m *Manager) reloadSession(ctx context.Context) {
	out, err := m.exec.Run(ctx, "systemctl", []string{"--user", "restart", "pipewire.service"})
	if err != nil {
		m.logger.Warn("session reload failed; restart PipeWire manually with `systemctl --user restart pipewire.service`",
			logging.Args(
				logging.Error(err),
				logging.String("output", string(out)),
			)...)
		return
	}
	m.logger.Info("audio session restarted")
}

func (m *Manager) acquireLock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(m.lock.Path()), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := m.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire install lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() {
		if err := m.lock.Unlock(); err != nil {
			m.logger.Warn("failed to release install lock", logging.Args(logging.Error(err))...)
		}
	}, nil
}

// ReadAsset loads the preset's impulse response bytes, mapping a missing
// file to ErrAssetMissing.
func ReadAsset(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read impulse response: %w", err)
	}
	return data, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func removeIfPresent(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
