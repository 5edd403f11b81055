package config

import "time"

// SandboxConfig contains browser sandbox and streaming configuration.
type SandboxConfig struct {
	// Headed runs Chromium with a visible window on Display (Xvfb in
	// containers). Default is headless; VNC streaming forces headed
	// per run regardless of this flag.
	Headed bool `yaml:"headed"`

	// ChromiumPath is the browser binary. Empty resolves from PATH.
	ChromiumPath string `yaml:"chromium_path"`

	// WalletExtensionPath is the unpacked wallet extension directory
	// loaded into every sandbox profile.
	WalletExtensionPath string `yaml:"wallet_extension_path"`

	// ProfileBaseDir is where per-run isolated profile directories are
	// created (and removed on teardown).
	ProfileBaseDir string `yaml:"profile_base_dir"`

	// Display is the X display exported to sandboxes and child test
	// processes in headed mode.
	Display string `yaml:"display"`

	// Bootstrap retry policy. Residual browser processes are killed
	// before every attempt.
	BootstrapAttempts       int           `yaml:"bootstrap_attempts"`
	BootstrapBackoff        time.Duration `yaml:"bootstrap_backoff"`
	BootstrapAttemptTimeout time.Duration `yaml:"bootstrap_attempt_timeout"`

	// TeardownTimeout bounds sandbox teardown.
	TeardownTimeout time.Duration `yaml:"teardown_timeout"`

	// ActionTimeout bounds a single browser/wallet action.
	ActionTimeout time.Duration `yaml:"action_timeout"`

	// NavigationTimeout bounds page loads, which run longer than input
	// actions.
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`

	// Screencast capture parameters for the trace archive.
	ScreencastQuality   int `yaml:"screencast_quality"`
	ScreencastMaxWidth  int `yaml:"screencast_max_width"`
	ScreencastMaxHeight int `yaml:"screencast_max_height"`
	ScreencastEveryNth  int `yaml:"screencast_every_nth"`

	// Streaming port pools. The control port is paired with the pixel
	// port: control = ControlPortStart + (pixel - PixelPortStart).
	PixelPortStart   int `yaml:"pixel_port_start"`
	PixelPortEnd     int `yaml:"pixel_port_end"`
	ControlPortStart int `yaml:"control_port_start"`
	ControlPortEnd   int `yaml:"control_port_end"`

	// PortMaxAge is how long an allocated port may be held before the
	// reclaim pass frees it when the holder process is gone.
	PortMaxAge time.Duration `yaml:"port_max_age"`
}

// Headless reports whether sandboxes launch without a visible window.
func (c *SandboxConfig) Headless() bool {
	return !c.Headed
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		ProfileBaseDir:          "/tmp/conductor-profiles",
		Display:                 ":99",
		BootstrapAttempts:       3,
		BootstrapBackoff:        5 * time.Second,
		BootstrapAttemptTimeout: 30 * time.Second,
		TeardownTimeout:         30 * time.Second,
		ActionTimeout:           5 * time.Second,
		NavigationTimeout:       30 * time.Second,
		ScreencastQuality:       80,
		ScreencastMaxWidth:      1280,
		ScreencastMaxHeight:     720,
		ScreencastEveryNth:      3,
		PixelPortStart:          5901,
		PixelPortEnd:            5910,
		ControlPortStart:        6081,
		ControlPortEnd:          6090,
		PortMaxAge:              60 * time.Minute,
	}
}
