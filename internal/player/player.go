// Package player wraps libVLC playback for the slider demo. The player owns
// the volume level; the demo's volume slider runs in controlled mode and
// mirrors it.
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	vlc "github.com/adrg/libvlc-go/v3"
)

// ErrNotInitialized is returned by playback calls made before Init succeeded.
var ErrNotInitialized = errors.New("vlc player not initialized")

// Player is a thread-safe wrapper around libVLC that serializes every call.
type Player struct {
	p     *vlc.Player
	media *vlc.Media

	volume    int
	stream    string
	isPlaying bool

	// single lock guarding all C/libVLC invocations
	vlcMu sync.Mutex
	// internal lock for Player fields (not for libVLC)
	mu sync.Mutex

	vlcMajor int
}

// NewPlayer constructs a Player with the given volume but does not initialize
// libVLC. Call Init before attempting playback.
func NewPlayer(volume int) *Player {
	return &Player{volume: clamp(volume, 0, 100)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func parseVlcMajor(ver string) int {
	ver = strings.TrimSpace(ver)
	if ver == "" {
		return 0
	}
	cut := ver
	if i := strings.IndexAny(ver, ". "); i >= 0 {
		cut = ver[:i]
	}
	m, _ := strconv.Atoi(cut)
	return m
}

// Init configures libVLC and applies the stored volume. It must be called
// before Load/Play.
func (pl *Player) Init() error {
	if exe, err := os.Executable(); err == nil {
		plugins := filepath.Join(filepath.Dir(exe), "plugins")
		if st, err := os.Stat(plugins); err == nil && st.IsDir() {
			_ = os.Setenv("VLC_PLUGIN_PATH", plugins)
		}
	}

	args := []string{
		"--no-video",
		"--no-color",
		"--network-caching=1500",
		"--live-caching=1500",
		"--http-reconnect",
	}
	if isTraceLoggingEnabled() {
		args = append(args,
			"--verbose=2",
			"--file-logging",
			"--log-verbose=2",
			"--logfile=vlc.log",
		)
	}
	pl.vlcMu.Lock()
	err := vlc.Init(args...)
	pl.vlcMu.Unlock()
	if err != nil {
		return fmt.Errorf("libvlc init failed: %w", err)
	}
	pl.vlcMajor = parseVlcMajor(vlc.Version().String())
	tracef("libvlc %d initialised", pl.vlcMajor)

	pl.vlcMu.Lock()
	p, err := vlc.NewPlayer()
	if err != nil {
		vlc.Release()
		pl.vlcMu.Unlock()
		return fmt.Errorf("new vlc player failed: %w", err)
	}
	pl.p = p
	pl.vlcMu.Unlock()

	return pl.SetVolume(pl.Volume())
}

// Release frees VLC resources.
func (pl *Player) Release() {
	pl.vlcMu.Lock()
	defer pl.vlcMu.Unlock()
	if pl.p != nil {
		_ = pl.p.Stop()
		pl.p.Release()
		pl.p = nil
	}
	if pl.media != nil {
		pl.media.Release()
		pl.media = nil
	}
	vlc.Release()

	pl.mu.Lock()
	pl.isPlaying = false
	pl.mu.Unlock()
}

// Load prepares media for url without starting playback.
func (pl *Player) Load(url string) error {
	pl.vlcMu.Lock()
	defer pl.vlcMu.Unlock()
	if pl.p == nil {
		return ErrNotInitialized
	}
	if pl.media != nil {
		pl.media.Release()
		pl.media = nil
	}

	u := strings.TrimSpace(url)
	m, err := vlc.NewMediaFromURL(u)
	if err != nil {
		return fmt.Errorf("new media from url failed: %w", err)
	}
	_ = m.AddOptions(
		":network-caching=1500",
		":live-caching=1500",
		":http-reconnect",
	)
	if err := pl.p.SetMedia(m); err != nil {
		m.Release()
		return fmt.Errorf("set media failed: %w", err)
	}
	pl.media = m

	pl.mu.Lock()
	pl.stream = u
	pl.mu.Unlock()
	return nil
}

// Play starts playback of the last loaded media.
func (pl *Player) Play() error {
	pl.vlcMu.Lock()
	if pl.p == nil {
		pl.vlcMu.Unlock()
		return ErrNotInitialized
	}
	err := pl.p.Play()
	pl.vlcMu.Unlock()
	if err != nil {
		return fmt.Errorf("play failed: %w", err)
	}
	pl.mu.Lock()
	pl.isPlaying = true
	u := pl.stream
	pl.mu.Unlock()
	tracef("playing %s", u)
	return nil
}

// Stop halts playback.
func (pl *Player) Stop() {
	pl.vlcMu.Lock()
	if pl.p != nil {
		_ = pl.p.Stop()
	}
	pl.vlcMu.Unlock()

	pl.mu.Lock()
	pl.isPlaying = false
	pl.mu.Unlock()
}

// IsPlaying reports whether libVLC currently plays audio.
func (pl *Player) IsPlaying() bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.isPlaying
}

// Volume returns the current volume level (0-100).
func (pl *Player) Volume() int {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.volume
}

// SetVolume clamps and stores an absolute volume level (0-100) and applies it
// to libVLC. The level is kept even when libVLC is not initialised, in which
// case ErrNotInitialized is returned.
func (pl *Player) SetVolume(v int) error {
	v = clamp(v, 0, 100)
	pl.mu.Lock()
	pl.volume = v
	pl.mu.Unlock()

	pl.vlcMu.Lock()
	defer pl.vlcMu.Unlock()
	if pl.p == nil {
		return ErrNotInitialized
	}
	return pl.p.SetVolume(v)
}
