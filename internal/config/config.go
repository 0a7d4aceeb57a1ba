// Package config holds the motion tuning shared by the server and the
// browser client. The server reads it from a YAML file and serves it; the
// client decodes the same document.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/motion/header"
	"github.com/Zachkp/portfolio/internal/motion/orbit"
	"github.com/Zachkp/portfolio/internal/motion/scroll"
	"github.com/Zachkp/portfolio/internal/motion/tween"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid motion config")

// Config is the whole motion document.
type Config struct {
	Tween    TweenConfig        `yaml:"tween"`
	Scroll   ScrollConfig       `yaml:"scroll"`
	Header   HeaderConfig       `yaml:"header"`
	Orbit    OrbitConfig        `yaml:"orbit"`
	Triggers map[string]float64 `yaml:"triggers"`
}

// TweenConfig maps onto tween.Defaults.
type TweenConfig struct {
	Duration     time.Duration `yaml:"duration"`
	Ease         string        `yaml:"ease"`
	Overwrite    bool          `yaml:"overwrite"`
	LagThreshold time.Duration `yaml:"lag_threshold"`
	LagStep      time.Duration `yaml:"lag_step"`
}

// ScrollConfig maps onto scroll.Options.
type ScrollConfig struct {
	Throttle time.Duration `yaml:"throttle"`
	Settle   time.Duration `yaml:"settle"`
	Jitter   float64       `yaml:"jitter"`
}

// HeaderConfig tunes the header machine and its animations.
type HeaderConfig struct {
	HideAfter     float64       `yaml:"hide_after"`
	ScrolledAfter float64       `yaml:"scrolled_after"`
	Offset        float64       `yaml:"offset"`
	Hide          time.Duration `yaml:"hide"`
	Show          time.Duration `yaml:"show"`
	SettleShow    time.Duration `yaml:"settle_show"`
	Indicator     time.Duration `yaml:"indicator"`
	Menu          time.Duration `yaml:"menu"`
	Intro         time.Duration `yaml:"intro"`
	IntroDelay    time.Duration `yaml:"intro_delay"`
	Ease          string        `yaml:"ease"`
}

// OrbitConfig sizes the hero orbit.
type OrbitConfig struct {
	Items         int           `yaml:"items"`
	Breakpoint    float64       `yaml:"breakpoint"`
	HoverMinWidth float64       `yaml:"hover_min_width"`
	Compact       RadiiConfig   `yaml:"compact"`
	Wide          RadiiConfig   `yaml:"wide"`
	Enter         time.Duration `yaml:"enter"`
	Leave         time.Duration `yaml:"leave"`
	LeaveRotation float64       `yaml:"leave_rotation"`
	Ease          string        `yaml:"ease"`
}

type RadiiConfig struct {
	Collapsed float64 `yaml:"collapsed"`
	Expanded  float64 `yaml:"expanded"`
}

// Trigger keys looked up by the page components.
const (
	TriggerSkillsHeader   = "skills.header"
	TriggerSkillsItems    = "skills.items"
	TriggerProjectsHeader = "projects.header"
	TriggerProjectsCards  = "projects.cards"
	TriggerExperienceHead = "experience.header"
	TriggerExperienceLine = "experience.line"
	TriggerExperienceDots = "experience.dots"
	TriggerExperienceCard = "experience.cards"
	TriggerCertsHeader    = "certifications.header"
	TriggerCertsCards     = "certifications.cards"
	TriggerCertsBoxes     = "certifications.boxes"
	TriggerContactHeading = "contact.heading"
	TriggerContactInfo    = "contact.info"
	TriggerFAQHeader      = "faq.header"
	TriggerFAQItems       = "faq.items"
)

// Default returns the production tuning.
func Default() *Config {
	return &Config{
		Tween: TweenConfig{
			Duration:     550 * time.Millisecond,
			Ease:         "power2.out",
			Overwrite:    true,
			LagThreshold: 500 * time.Millisecond,
			LagStep:      33 * time.Millisecond,
		},
		Scroll: ScrollConfig{
			Throttle: 16 * time.Millisecond,
			Settle:   150 * time.Millisecond,
			Jitter:   5,
		},
		Header: HeaderConfig{
			HideAfter:     100,
			ScrolledAfter: 20,
			Offset:        100,
			Hide:          400 * time.Millisecond,
			Show:          300 * time.Millisecond,
			SettleShow:    500 * time.Millisecond,
			Indicator:     300 * time.Millisecond,
			Menu:          300 * time.Millisecond,
			Intro:         800 * time.Millisecond,
			IntroDelay:    200 * time.Millisecond,
			Ease:          "power2.out",
		},
		Orbit: OrbitConfig{
			Items:         8,
			Breakpoint:    1280,
			HoverMinWidth: 1024,
			Compact:       RadiiConfig{Collapsed: 146, Expanded: 178},
			Wide:          RadiiConfig{Collapsed: 168, Expanded: 210},
			Enter:         320 * time.Millisecond,
			Leave:         240 * time.Millisecond,
			LeaveRotation: -90,
			Ease:          "power2.out",
		},
		Triggers: map[string]float64{
			TriggerSkillsHeader:   0.8,
			TriggerSkillsItems:    0.9,
			TriggerProjectsHeader: 0.8,
			TriggerProjectsCards:  0.8,
			TriggerExperienceHead: 0.8,
			TriggerExperienceLine: 0.7,
			TriggerExperienceDots: 0.85,
			TriggerExperienceCard: 0.8,
			TriggerCertsHeader:    0.8,
			TriggerCertsCards:     0.9,
			TriggerCertsBoxes:     0.85,
			TriggerContactHeading: 0.85,
			TriggerContactInfo:    0.95,
			TriggerFAQHeader:      0.75,
			TriggerFAQItems:       0.85,
		},
	}
}

// Load reads a YAML file. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	for _, name := range []string{c.Tween.Ease, c.Header.Ease, c.Orbit.Ease} {
		if _, err := tween.ParseEase(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		}
	}
	if c.Tween.Duration <= 0 {
		bad("tween.duration must be positive")
	}
	if c.Tween.LagStep <= 0 || c.Tween.LagThreshold < c.Tween.LagStep {
		bad("tween.lag_step must be positive and below tween.lag_threshold")
	}
	if c.Scroll.Throttle < 0 || c.Scroll.Settle <= c.Scroll.Throttle {
		bad("scroll.settle must exceed scroll.throttle")
	}
	if c.Scroll.Jitter < 0 {
		bad("scroll.jitter must not be negative")
	}
	if c.Header.HideAfter < 0 || c.Header.Offset < 0 {
		bad("header offsets must not be negative")
	}
	if c.Orbit.Items <= 0 {
		bad("orbit.items must be positive")
	}
	for _, r := range []RadiiConfig{c.Orbit.Compact, c.Orbit.Wide} {
		if r.Collapsed <= 0 || r.Expanded < r.Collapsed {
			bad("orbit radii must be positive with expanded >= collapsed")
			break
		}
	}

	keys := make([]string, 0, len(c.Triggers))
	for k := range c.Triggers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := c.Triggers[k]; v < 0 || v > 1 {
			bad("trigger %q = %v is outside [0, 1]", k, v)
		}
	}
	return errors.Join(errs...)
}

// Trigger returns the fraction for key, falling back to the default table.
func (c *Config) Trigger(key string) float64 {
	if v, ok := c.Triggers[key]; ok {
		return v
	}
	if v, ok := Default().Triggers[key]; ok {
		return v
	}
	return 0.8
}

// TweenDefaults converts the tween section.
func (c *Config) TweenDefaults() tween.Defaults {
	return tween.Defaults{
		Duration:     c.Tween.Duration,
		Ease:         easeOr(c.Tween.Ease),
		Overwrite:    c.Tween.Overwrite,
		LagThreshold: c.Tween.LagThreshold,
		LagStep:      c.Tween.LagStep,
	}
}

// ScrollOptions converts the scroll section.
func (c *Config) ScrollOptions() scroll.Options {
	return scroll.Options{
		Throttle: c.Scroll.Throttle,
		Settle:   c.Scroll.Settle,
		Jitter:   c.Scroll.Jitter,
	}
}

// HeaderMachine converts the header thresholds.
func (c *Config) HeaderMachine() header.Config {
	return header.Config{
		HideAfter:     c.Header.HideAfter,
		Jitter:        c.Scroll.Jitter,
		ScrolledAfter: c.Header.ScrolledAfter,
	}
}

// HeaderEase is the ease of every header animation.
func (c *Config) HeaderEase() tween.Ease { return easeOr(c.Header.Ease) }

// OrbitTiers converts the orbit sizing.
func (c *Config) OrbitTiers() orbit.Tiers {
	return orbit.Tiers{
		Breakpoint:    c.Orbit.Breakpoint,
		Compact:       orbit.Radii{Collapsed: c.Orbit.Compact.Collapsed, Expanded: c.Orbit.Compact.Expanded},
		Wide:          orbit.Radii{Collapsed: c.Orbit.Wide.Collapsed, Expanded: c.Orbit.Wide.Expanded},
		HoverMinWidth: c.Orbit.HoverMinWidth,
	}
}

// OrbitTiming converts the orbit hover timing.
func (c *Config) OrbitTiming() orbit.Timing {
	return orbit.Timing{
		Enter:         c.Orbit.Enter,
		Leave:         c.Orbit.Leave,
		Ease:          easeOr(c.Orbit.Ease),
		LeaveRotation: c.Orbit.LeaveRotation,
	}
}

func easeOr(name string) tween.Ease {
	e, err := tween.ParseEase(name)
	if err != nil {
		return tween.Power2Out
	}
	return e
}
