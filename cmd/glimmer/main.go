// Command glimmer runs the animation coordinator against a terminal
// screen: six page sections, one visible at a time, with keyboard-driven
// visibility, accessibility and degradation controls.
//
// Keys:
//
//	j / down   next section
//	k / up     previous section
//	m          toggle reduced motion
//	e          toggle global enable
//	r          clear degraded mode
//	q / esc    quit
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/glimmerfx/glimmer/clock"
	"github.com/glimmerfx/glimmer/config"
	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/core"
	"github.com/glimmerfx/glimmer/events"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/render"
	"github.com/glimmerfx/glimmer/section"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML tuning file")
	logPath := flag.String("log", "", "optional zap log file (stderr is unusable under tcell)")
	mute := flag.Bool("mute", false, "disable audio cues")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, err := buildLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := newApp(screen, cfg, logger, !*mute)
	app.run()

	screen.Fini()
}

// buildLogger writes structured logs to the given file, or nowhere.
// The terminal itself belongs to tcell
func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

type app struct {
	screen tcell.Screen
	log    *zap.Logger

	coord  *controller.Coordinator
	router *events.Router

	targets map[string]*render.TerminalTarget

	// Index into section.Order. Written by the input goroutine in
	// scrollTo, read by the render goroutine every frame
	current atomic.Int32

	enabled       bool
	reducedMotion bool

	done chan struct{}
	wg   sync.WaitGroup
}

func newApp(screen tcell.Screen, cfg config.Config, logger *zap.Logger, audio bool) *app {
	interval := cfg.TickInterval()
	if interval <= 0 {
		interval = parameter.TickInterval
	}

	coord := controller.New(controller.Config{
		Ticks:  clock.NewScheduler(nil, interval),
		Logger: logger,
		Perf:   cfg.PerfSettings(),
	})

	router := events.NewRouter(coord.Events())
	if audio {
		router.Register(newAudioCues())
	}

	a := &app{
		screen:  screen,
		log:     logger,
		coord:   coord,
		router:  router,
		targets: make(map[string]*render.TerminalTarget),
		enabled: true,
		done:    make(chan struct{}),
	}

	region := a.sectionRegion()
	builders := section.Builders()
	for _, id := range section.Order {
		target := render.NewTerminalTarget(screen, region, sectionBg(id))
		anim := builders[id](target, cfg.Overrides(id))
		if _, err := coord.Register(id, anim, target); err != nil {
			logger.Error("section registration failed", zap.String("section", id), zap.Error(err))
			continue
		}
		a.targets[id] = target
	}

	coord.SetVisible(section.Order[0], true)
	return a
}

// sectionRegion is the screen area below the HUD row
func (a *app) sectionRegion() core.Area {
	w, h := a.screen.Size()
	return core.Area{X: 0, Y: 1, Width: w, Height: h - 1}
}

func sectionBg(id string) render.Color {
	hex := "#0b1120"
	if id == section.IDFooter {
		hex = "#020617"
	}
	return render.MustGradientHex(hex, hex).From
}

func (a *app) run() {
	a.coord.Start()

	a.wg.Add(1)
	go a.renderLoop()

	a.eventLoop()

	close(a.done)
	a.wg.Wait()
	a.coord.Destroy()
}

// renderLoop owns the screen: telemetry dispatch, HUD, section flush
func (a *app) renderLoop() {
	defer a.wg.Done()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.router.DispatchAll()
			a.drawHUD()
			if t, ok := a.targets[section.Order[a.current.Load()]]; ok {
				t.Flush()
			}
			a.screen.Show()
		}
	}
}

func (a *app) drawHUD() {
	snap := a.coord.Snapshot()

	flags := ""
	if snap.ReducedMotion {
		flags += " [reduced-motion]"
	}
	if !snap.Enabled {
		flags += " [disabled]"
	}
	if snap.Degraded {
		flags += " [DEGRADED - press r]"
	}

	cur := int(a.current.Load())
	line := fmt.Sprintf(" glimmer  %d/%d %s  fps %.1f  running %d/%d%s  j/k:scroll m:motion e:enable q:quit",
		cur+1, len(section.Order), section.Order[cur],
		snap.FrameRate, snap.RunningCount, snap.AnimationCount, flags)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(30, 41, 59))
	if snap.Degraded {
		style = style.Foreground(tcell.ColorYellow)
	}

	w, _ := a.screen.Size()
	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		a.screen.SetContent(x, 0, r, nil, style)
	}
}

func (a *app) eventLoop() {
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			region := a.sectionRegion()
			for _, t := range a.targets {
				t.SetRegion(region)
			}
			a.screen.Sync()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
				a.scrollTo(int(a.current.Load()) + 1)
			case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
				a.scrollTo(int(a.current.Load()) - 1)
			case ev.Rune() == 'm':
				a.reducedMotion = !a.reducedMotion
				a.coord.SetReducedMotion(a.reducedMotion)
			case ev.Rune() == 'e':
				a.enabled = !a.enabled
				a.coord.SetEnabled(a.enabled)
			case ev.Rune() == 'r':
				a.coord.ResetDegraded()
			case ev.Rune() == 'q':
				return
			}
		}
	}
}

// scrollTo changes which section occupies the viewport, flipping the
// visibility signals the way an intersection observer would
func (a *app) scrollTo(i int) {
	cur := int(a.current.Load())
	if i < 0 || i >= len(section.Order) || i == cur {
		return
	}
	a.coord.SetVisible(section.Order[cur], false)
	a.current.Store(int32(i))
	a.coord.SetVisible(section.Order[i], true)
	a.screen.Clear()
}
