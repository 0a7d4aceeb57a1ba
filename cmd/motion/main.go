//go:build js && wasm

// Command motion runs the page animations in the browser. Build it with
// GOOS=js GOARCH=wasm into wasm/motion.wasm.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/dom"
	"github.com/Zachkp/portfolio/internal/motion"
	"github.com/Zachkp/portfolio/internal/motion/tween"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/theme"
)

func fetchConfig(url string) (*config.Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("motion config: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return config.Parse(data)
}

func main() {
	motion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
	log := motion.Logger()
	origin := dom.Origin()

	cfg, err := fetchConfig(origin + "/api/motion-config")
	if err != nil {
		log.Warn("using built-in motion config", "error", err)
		cfg = config.Default()
	}
	tween.Init(cfg.TweenDefaults())

	store, err := theme.Open("portfolio")
	if err != nil {
		log.Warn("theme preference not persisted", "error", err)
	}

	env := page.NewEnv(dom.NewDocument(), dom.Viewport{}, dom.Scheduler{}, cfg)
	site := page.Site{
		Email:      dom.RootData("email"),
		Theme:      store,
		SystemDark: dom.SystemDark,
		OnSection: func(id string) {
			if id == "" {
				return
			}
			body, _ := json.Marshal(map[string]string{"section": id})
			dom.Beacon(origin+"/api/section-view", "application/json", string(body))
		},
	}

	p := page.New(env, site.Components()...)
	if err := p.Mount(); err != nil {
		log.Error("page did not mount", "error", err)
		return
	}
	dom.Listen("scroll", func() { env.Scroll(env.Viewport.ScrollY()) })
	dom.Listen("resize", env.Resize)
	dom.Listen("pagehide", func() {
		p.Unmount()
		env.Close()
	})

	select {}
}
