// Package orrery runs the solar system viewer: it opens the window, loads
// the scene and drives the frame loop.
package orrery

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/audio"
	"github.com/Faultbox/orrery/internal/engine/clock"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/gfx"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/scene"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/shader/shaders"
	"github.com/Faultbox/orrery/internal/engine/text"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orrery/frame"
	"github.com/Faultbox/orrery/pkg/math"
)

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	source   clock.Source
	input    *input.State
	mapper   *frame.Mapper

	assets   *assets.Manager
	textures *texture.Loader
	library  shaders.Library
	programs map[string]*shader.Program
	watcher  *shaders.Watcher
	stop     context.CancelFunc

	frame       *frame.Frame
	background  *scene.Background
	credit      *text.Overlay
	soundtrack  *audio.Soundtrack
	screenshots *debug.Screenshots

	running bool
	capture bool
}

// New opens the window and loads everything the scene needs. Only window
// and context creation are fatal; missing textures, shaders, fonts or
// music are logged and the scene draws without them.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      logger.Named("orrery"),
		input:    input.NewState(),
		assets:   assets.NewManager(),
		library:  shaders.Library{Dir: cfg.Shaders.Dir},
		programs: make(map[string]*shader.Program),
	}

	bindings, err := input.ParseBindings(frame.BindingNames(cfg.Controls), window.KeyFromName)
	if err != nil {
		return nil, fmt.Errorf("parsing controls: %w", err)
	}
	a.mapper = frame.NewMapper(bindings)

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: [4]float32{0, 0, 0, 1},
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.source = window.NewClock()

	for _, dir := range cfg.Assets.SearchDirs {
		if err := a.assets.AddDir(dir); err != nil {
			a.log.Warn("skipping asset dir", zap.Error(err))
		}
	}
	a.textures = texture.NewLoader(a.assets, a.renderer, logger.Named("texture"))

	a.loadPrograms()

	a.frame, err = frame.New(cfg, a.source.Now())
	if err != nil {
		a.Close()
		return nil, err
	}
	a.frame.Aspect = a.renderer.Aspect()
	a.loadScene()
	a.loadCredit()
	a.loadSoundtrack()

	a.screenshots = debug.NewScreenshots("screenshots", "orrery")

	if cfg.Shaders.Watch && cfg.Shaders.Dir != "" {
		ctx, cancel := context.WithCancel(context.Background())
		a.watcher, err = shaders.Watch(ctx, cfg.Shaders.Dir, logger.Named("shader"))
		if err != nil {
			cancel()
			a.log.Warn("shader hot reload disabled", zap.Error(err))
		} else {
			a.stop = cancel
			a.log.Info("watching shaders", zap.String("dir", cfg.Shaders.Dir))
		}
	}

	a.log.Info("scene ready", zap.Int("bodies", len(a.frame.Scene.Bodies)))
	return a, nil
}

func (a *App) loadPrograms() {
	for _, name := range shaders.Names {
		p, err := shader.Build(a.library, name)
		if err != nil {
			a.log.Warn("shader program unavailable, pass skipped", zap.String("program", name), zap.Error(err))
		}
		a.programs[name] = p
	}
}

func (a *App) loadScene() {
	bodies := a.frame.Scene.Bodies
	for i, bc := range a.cfg.Scene.Bodies {
		bodies[i].Texture = a.textures.Load(bc.Texture, gfx.SamplingSurface)
	}
	for name, err := range a.frame.Scene.Upload(a.renderer) {
		a.log.Warn("body will not be drawn", zap.String("body", name), zap.Error(err))
	}

	a.background = &scene.Background{
		Texture: a.textures.Load(a.cfg.Scene.Background, gfx.SamplingSurface),
	}
	if err := a.background.Upload(a.renderer); err != nil {
		a.log.Warn("background disabled", zap.Error(err))
	}
}

func (a *App) loadCredit() {
	cc := a.cfg.Scene.Credit
	if cc.Text == "" {
		return
	}

	face := a.creditFace(cc)
	color := math.Vec3{X: cc.Color[0], Y: cc.Color[1], Z: cc.Color[2]}
	credit, err := text.NewOverlay(face, cc.Text, cc.Scale, color)
	if err != nil {
		a.log.Warn("credit text disabled", zap.Error(err))
		return
	}
	if err := credit.Upload(a.renderer); err != nil {
		a.log.Warn("credit text disabled", zap.Error(err))
		return
	}
	a.credit = credit
	a.placeCredit()
}

func (a *App) creditFace(cc config.CreditConfig) font.Face {
	if cc.Font == "" {
		return text.FallbackFace()
	}
	data, err := a.assets.Load(cc.Font)
	if err == nil {
		var face font.Face
		if face, err = text.LoadFace(data, cc.FontSize); err == nil {
			return face
		}
	}
	a.log.Warn("using built-in font", zap.String("font", cc.Font), zap.Error(err))
	return text.FallbackFace()
}

func (a *App) placeCredit() {
	if a.credit == nil {
		return
	}
	width, _ := a.renderer.Size()
	cc := a.cfg.Scene.Credit
	if err := a.credit.Place(float32(width)-cc.OffsetRight, cc.Y); err != nil {
		a.log.Warn("placing credit text", zap.Error(err))
	}
}

func (a *App) loadSoundtrack() {
	ac := a.cfg.Audio
	a.soundtrack = audio.New(float64(ac.Volume), ac.Muted, logger.Named("audio"))
	if ac.Music == "" {
		return
	}
	if err := a.soundtrack.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
		return
	}
	r, err := a.assets.Open(ac.Music)
	if err == nil {
		err = a.soundtrack.Play(r, ac.Music)
	}
	if err != nil {
		a.log.Warn("soundtrack not playing", zap.String("music", ac.Music), zap.Error(err))
		return
	}
	a.soundtrack.SetPaused(a.frame.Clock.Paused())
}

// Run drives the frame loop until the window closes or the quit key is
// pressed.
func (a *App) Run() error {
	a.running = true

	last := a.source.Now()
	fpsTimer := last
	frameCount := 0

	a.log.Info("starting frame loop")

	for a.running {
		now := a.source.Now()
		dt := now - last
		last = now

		a.input.BeginFrame()
		a.window.Poll(a.input)
		if a.input.QuitRequested() || a.input.ActionPressed(a.mapper.Bindings, input.Quit) {
			a.running = false
			break
		}
		if width, height, ok := a.input.Resized(); ok {
			a.resize(width, height)
		}
		a.handleKeys()
		a.reloadShaders()

		wasPaused := a.frame.Clock.Paused()
		state := frame.Update(a.frame, a.mapper.Controls(a.input, float32(dt)), now)
		if state.Paused != wasPaused {
			a.soundtrack.SetPaused(state.Paused)
			a.log.Info("animation "+a.frame.Clock.State().String(), zap.Float64("scene_time", state.SceneTime))
		}

		a.render(state)
		if a.capture {
			a.capture = false
			a.saveScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if now-fpsTimer >= 1 {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

func (a *App) handleKeys() {
	b := a.mapper.Bindings
	if a.input.ActionPressed(b, input.Screenshot) {
		a.capture = true
	}
	if a.input.ActionPressed(b, input.Mute) {
		muted := a.soundtrack.ToggleMute()
		a.log.Info("soundtrack mute toggled", zap.Bool("muted", muted))
	}
}

func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.Resize(width, height)
	a.frame.Aspect = a.renderer.Aspect()
	a.placeCredit()
}

// reloadShaders rebuilds programs whose override files changed. A program
// that no longer compiles keeps running its last good version.
func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Pending() {
		current, ok := a.programs[name]
		if !ok {
			continue
		}
		next, err := shader.Build(a.library, name)
		if err != nil {
			a.log.Warn("shader reload failed", zap.String("program", name), zap.Error(err))
			continue
		}
		current.Replace(next)
		a.log.Info("shader reloaded", zap.String("program", name))
	}
}

// render draws the frame: background without depth, orbits in world
// space, the bodies, then the credit line blended on top.
func (a *App) render(s frame.State) {
	r := a.renderer
	r.Begin()

	r.SetDepthTest(false)
	if p := a.programs[shaders.Background]; p.Valid() {
		p.Use()
		p.SetInt("stars", 0)
		a.background.Draw()
	}
	r.SetDepthTest(true)

	if p := a.programs[shaders.Orbit]; p.Valid() {
		p.Use()
		p.SetMat4("model", math.Identity())
		p.SetMat4("view", s.View)
		p.SetMat4("projection", s.Projection)
		oc := a.cfg.Scene.OrbitColor
		p.SetVec3("orbitColor", math.Vec3{X: oc[0], Y: oc[1], Z: oc[2]})
		a.frame.Scene.DrawOrbits()
	}

	if p := a.programs[shaders.Planet]; p.Valid() {
		p.Use()
		p.SetMat4("view", s.View)
		p.SetMat4("projection", s.Projection)
		p.SetInt("surface", 0)
		for i, b := range a.frame.Scene.Bodies {
			p.SetMat4("model", s.Models[i])
			b.Draw()
		}
	}

	if p := a.programs[shaders.Text]; p.Valid() && a.credit != nil {
		width, height := r.Size()
		r.SetDepthTest(false)
		r.SetBlend(true)
		p.Use()
		p.SetMat4("projection", text.Projection(width, height))
		p.SetVec3("textColor", a.credit.Color)
		p.SetInt("glyphs", 0)
		a.credit.Draw()
		r.SetBlend(false)
		r.SetDepthTest(true)
	}
}

func (a *App) saveScreenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.screenshots.Capture(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources, then the context and window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.stop != nil {
		a.stop()
	}
	if a.soundtrack != nil {
		a.soundtrack.Close()
	}
	if a.credit != nil {
		a.credit.Release()
	}
	if a.background != nil {
		a.background.Release()
	}
	if a.frame != nil {
		a.frame.Scene.Release()
	}
	if a.textures != nil {
		a.textures.Release()
	}
	for _, p := range a.programs {
		p.Delete()
	}
	a.assets.Close()
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
