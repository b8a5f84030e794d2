package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mklev/gridmesh/internal/config"
	"github.com/mklev/gridmesh/internal/geom"
	"github.com/mklev/gridmesh/internal/mesh"
	"github.com/mklev/gridmesh/internal/metrics"
)

// HUD colors
var (
	colText    = rl.NewColor(200, 200, 200, 255)
	colTextDim = rl.NewColor(110, 110, 110, 255)
)

type App struct {
	Anim    *mesh.Animator
	Cfg     *config.Config
	Preset  string
	Seed    int64
	Running bool
	Borders bool
	ShowHUD bool
}

func initWindow(w, h, fps int) {
	rl.InitWindow(int32(w), int32(h), "gridmesh")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyQ)
}

func NewApp(cfg *config.Config, preset string) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &App{
		Anim:    mesh.NewAnimator(cfg.Width, cfg.Height, cfg.MeshOptions(), seed),
		Cfg:     cfg,
		Preset:  preset,
		Seed:    seed,
		Running: true,
		Borders: cfg.Borders,
		ShowHUD: true,
	}
}

// Run opens the window and blocks in the update/draw loop until it closes.
func Run(cfg *config.Config, preset string) {
	initWindow(cfg.Width, cfg.Height, cfg.FPS)
	defer rl.CloseWindow()
	app := NewApp(cfg, preset)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Seed = time.Now().UnixNano()
		a.Anim.Rebuild(a.Seed)
	}
	if rl.IsKeyPressed(rl.KeyB) {
		a.Borders = !a.Borders
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	if !a.Running {
		return
	}

	m := rl.GetMousePosition()
	if rl.IsCursorOnScreen() {
		a.Anim.SetPointer(geom.NewPoint(float64(m.X), float64(m.Y)))
	} else {
		a.Anim.ClearPointer()
	}

	a.Anim.Step()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(10, 10, 10, 255))

	a.drawMesh()
	if a.ShowHUD {
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	y := int32(10)
	line := func(s string, col rl.Color) {
		rl.DrawText(s, 10, y, 18, col)
		y += 22
	}

	line(fmt.Sprintf("fps %d", rl.GetFPS()), colText)
	line(fmt.Sprintf("mean disp %.2f", metrics.FrameMean(a.Anim.Grid())), colText)
	if a.Preset != "" {
		line("preset "+a.Preset, colText)
	}
	if !a.Running {
		line("paused", colText)
	}
	line("space pause  r reseed  b borders  h hud  q quit", colTextDim)
}
