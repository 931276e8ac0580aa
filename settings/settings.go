// Package settings provides a file-backed thicket.StyleSource.
//
// Values come from, in increasing priority: the built-in defaults, a TOML,
// YAML or JSON config file, and THICKET_ environment variables (dots become
// underscores, so gui.alpha is THICKET_GUI_ALPHA). Colors are hex strings.
package settings

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/phanxgames/thicket"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "THICKET"

// ErrNoFile is returned by Watch and Reload on a store without a config file.
var ErrNoFile = errors.New("settings: no config file")

// Store is a concurrency-safe style source. Reads take a read lock, so a
// reload on the watcher goroutine never races a render tick.
type Store struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
}

// New returns a store holding only defaults and environment overrides.
func New() *Store {
	return &Store{v: newViper()}
}

// Load reads the config file at path. The format follows the extension.
func Load(path string) (*Store, error) {
	v, err := readViper(path)
	if err != nil {
		return nil, err
	}
	return &Store{v: v, path: path}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, c := range thicket.DefaultColors {
		v.SetDefault(k, c.Hex())
	}
	for k, f := range thicket.DefaultFloats {
		v.SetDefault(k, f)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func readViper(path string) (*viper.Viper, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return v, nil
}

// Path returns the config file backing the store, or "".
func (s *Store) Path() string {
	return s.path
}

// Color returns the color stored under name. Unparseable values fall back
// to the built-in default for name, then to white.
func (s *Store) Color(name string) thicket.Color {
	s.mu.RLock()
	raw := s.v.GetString(name)
	s.mu.RUnlock()
	if c, err := thicket.ParseHexColor(raw); err == nil {
		return c
	}
	if c, ok := thicket.DefaultColors[name]; ok {
		return c
	}
	return thicket.ColorWhite
}

// Float returns the float stored under name, or 0 when unset.
func (s *Store) Float(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetFloat64(name)
}

// Set overrides key in memory. Colors are stored as hex strings. Overrides
// are lost on the next reload.
func (s *Store) Set(key string, value any) {
	if c, ok := value.(thicket.Color); ok {
		value = c.Hex()
	}
	s.mu.Lock()
	s.v.Set(key, value)
	s.mu.Unlock()
}

// Keys returns every known key in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := s.v.AllKeys()
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Reload re-reads the config file into a fresh instance and swaps it in.
// On error the previous values stay active.
func (s *Store) Reload() error {
	if s.path == "" {
		return ErrNoFile
	}
	v, err := readViper(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
	return nil
}

// Save writes the current values to path. The format follows the extension.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

var _ thicket.StyleSource = (*Store)(nil)
