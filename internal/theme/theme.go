// Package theme persists the visitor's light/dark preference. Under wasm
// gdata stores it in localStorage; elsewhere it lands in the user data dir.
package theme

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Mode is a colour scheme choice.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// ErrMode is returned for modes other than Light, Dark and System.
var ErrMode = errors.New("theme: unknown mode")

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Light || m == Dark || m == System
}

// Preference is the stored document.
type Preference struct {
	Mode Mode `yaml:"mode"`
}

const (
	prefObject   = "theme"
	prefProperty = "preference"
)

// Store loads and saves the preference. A Store without a gdata manager
// keeps the preference in memory only.
type Store struct {
	gm   *gdata.Manager
	pref Preference
}

// Open creates a gdata manager for app and loads the stored preference.
func Open(app string) (*Store, error) {
	gm, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open theme storage: %w", err)
	}
	return NewStore(gm), nil
}

// NewStore returns a store backed by gm. gm may be nil. A stored preference
// that cannot be read is logged and replaced by System.
func NewStore(gm *gdata.Manager) *Store {
	s := &Store{gm: gm, pref: Preference{Mode: System}}
	if err := s.Load(); err != nil {
		log.Printf("[theme] failed to load preference: %v (using system)", err)
	}
	return s
}

// Load reads the stored preference.
func (s *Store) Load() error {
	s.pref = Preference{Mode: System}
	if s.gm == nil || !s.gm.ObjectPropExists(prefObject, prefProperty) {
		return nil
	}
	data, err := s.gm.LoadObjectProp(prefObject, prefProperty)
	if err != nil {
		return fmt.Errorf("failed to load preference: %w", err)
	}
	var p Preference
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to unmarshal preference: %w", err)
	}
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrMode, p.Mode)
	}
	s.pref = p
	return nil
}

// Save writes the preference. It is a no-op without storage.
func (s *Store) Save() error {
	if s.gm == nil {
		return nil
	}
	data, err := yaml.Marshal(s.pref)
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}
	if err := s.gm.SaveObjectProp(prefObject, prefProperty, data); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

// Mode returns the stored choice, which may be System.
func (s *Store) Mode() Mode { return s.pref.Mode }

// Set stores m and saves it.
func (s *Store) Set(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrMode, m)
	}
	s.pref.Mode = m
	return s.Save()
}

// Resolve turns the choice into Light or Dark given the system scheme.
func (s *Store) Resolve(systemDark bool) Mode {
	switch s.pref.Mode {
	case Light, Dark:
		return s.pref.Mode
	}
	if systemDark {
		return Dark
	}
	return Light
}

// Toggle flips the effective scheme and stores the result explicitly.
func (s *Store) Toggle(systemDark bool) (Mode, error) {
	next := Dark
	if s.Resolve(systemDark) == Dark {
		next = Light
	}
	return next, s.Set(next)
}
