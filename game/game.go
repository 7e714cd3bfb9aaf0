package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gridstorm/audio"
	"github.com/lixenwraith/gridstorm/component"
	"github.com/lixenwraith/gridstorm/config"
	"github.com/lixenwraith/gridstorm/core"
	"github.com/lixenwraith/gridstorm/engine"
	"github.com/lixenwraith/gridstorm/event"
	"github.com/lixenwraith/gridstorm/system"
	"github.com/lixenwraith/gridstorm/terminal"
)

const glyphSet = "abcdefghijklmnopqrstuvwxyz0123456789*+#@%"

// Game is the outer driver. It owns the world, the character surface,
// and the tick loop; it is the single actor that calls World.Update.
// Input lines arrive through the event queue and are translated into
// lifecycle calls between ticks, never during one.
type Game struct {
	cfg  *config.Config
	log  *zap.Logger
	term *terminal.Terminal

	world  *engine.World
	codes  component.Codes
	buffer *core.Buffer
	queue  *event.Queue
	cues   *audio.Cues
	editor terminal.LineEditor
	rng    *rand.Rand

	frame  int64
	inputs []string // lines waiting for their tick, one consumed per tick
	status string
	quit   bool
}

// New wires the world, systems, and presentation surface together
func New(cfg *config.Config, log *zap.Logger, term *terminal.Terminal) (*Game, error) {
	width, height := term.SurfaceSize()
	if cfg.Display.Width > 0 && cfg.Display.Width < width {
		width = cfg.Display.Width
	}
	if cfg.Display.Height > 0 && cfg.Display.Height < height {
		height = cfg.Display.Height
	}

	world := engine.NewWorld()
	codes, err := component.RegisterAll(world, component.Capacities{
		Actor:   cfg.Engine.ActorCapacity,
		Kinetic: cfg.Engine.KineticCapacity,
		Decay:   cfg.Engine.DecayCapacity,
	})
	if err != nil {
		return nil, fmt.Errorf("game: register pools: %w", err)
	}

	buffer := core.NewBuffer(width, height)

	// Registration order is execution order: move, age, then draw
	for _, s := range []engine.System{
		system.NewMotionSystem(world, codes, width, height),
		system.NewDecaySystem(world, codes.Decay),
		system.NewRenderSystem(world, codes.Actor, buffer),
	} {
		if err := world.AddSystem(s); err != nil {
			return nil, fmt.Errorf("game: add system: %w", err)
		}
	}

	cues := audio.NewCues(cfg.Audio.SampleRate)
	if cfg.Audio.Enabled {
		if err := cues.Init(); err != nil {
			log.Warn("audio unavailable, continuing silent", zap.Error(err))
		}
	}

	g := &Game{
		cfg:    cfg,
		log:    log,
		term:   term,
		world:  world,
		codes:  codes,
		buffer: buffer,
		queue:  event.NewQueue(),
		cues:   cues,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		status: "ready - try: spawn 10",
	}

	log.Info("world initialized",
		zap.Int("surface_width", width),
		zap.Int("surface_height", height),
		zap.Int("kinds", world.Registry().Count()),
		zap.Duration("tick_rate", cfg.Engine.TickRate.Std()))

	return g, nil
}

// World exposes the world's read surface for external inspection
func (g *Game) World() *engine.World {
	return g.world
}

// Run drives the tick loop until quit. Terminal events are folded into
// the queue as they arrive; the world only advances on ticker beats.
func (g *Game) Run() {
	ticker := time.NewTicker(g.cfg.Engine.TickRate.Std())
	defer ticker.Stop()

	g.present()

	for !g.quit {
		select {
		case ev := <-g.term.Events():
			g.handleTerminalEvent(ev)
			g.present()
		case <-ticker.C:
			g.tick()
		}
	}

	g.cues.Close()
	g.log.Info("driver stopped", zap.Int64("ticks", g.frame))
}

func (g *Game) handleTerminalEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			g.queue.Push(event.Event{Type: event.TypeQuit, Frame: g.frame})
			return
		}
		if line, done := g.editor.HandleKey(ev); done {
			g.queue.Push(event.Event{Type: event.TypeInput, Text: line, Frame: g.frame})
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		g.queue.Push(event.Event{Type: event.TypeResize, Width: w, Height: h, Frame: g.frame})
	}
}

// tick advances the world by one update: fold queued events in, apply
// at most one input line, run the systems, then reap expired entities.
func (g *Game) tick() {
	g.frame++

	for _, ev := range g.queue.Consume() {
		switch ev.Type {
		case event.TypeQuit:
			g.quit = true
			return
		case event.TypeResize:
			// The surface is fixed for the world's lifetime; the
			// terminal clips or pads on present.
			g.log.Debug("terminal resized",
				zap.Int("width", ev.Width), zap.Int("height", ev.Height))
		case event.TypeInput:
			g.inputs = append(g.inputs, ev.Text)
		}
	}

	if len(g.inputs) > 0 {
		line := g.inputs[0]
		g.inputs = g.inputs[1:]
		g.handleInput(line)
	}
	if g.quit {
		return
	}

	g.world.Update()
	g.reapExpired()
	g.present()
}

func (g *Game) handleInput(line string) {
	cmd, err := ParseCommand(line)
	if err != nil {
		g.status = err.Error()
		g.log.Debug("rejected input", zap.String("line", line), zap.Error(err))
		return
	}

	switch cmd.Verb {
	case VerbNone:
	case VerbQuit:
		g.quit = true
	case VerbSpawn:
		spawned := 0
		for i := 0; i < cmd.Count; i++ {
			if g.spawnGlyph() {
				spawned++
			}
		}
		g.status = fmt.Sprintf("spawned %d/%d", spawned, cmd.Count)
		g.cues.Spawn()
	case VerbKill:
		if _, ok := g.world.Entity(cmd.ID); !ok {
			g.status = fmt.Sprintf("no entity %d", cmd.ID)
			return
		}
		if err := g.world.KillEntity(cmd.ID); err != nil {
			g.status = err.Error()
			return
		}
		g.status = fmt.Sprintf("killed %d", cmd.ID)
		g.cues.Kill()
	case VerbClear:
		n := g.killAll()
		g.status = fmt.Sprintf("cleared %d entities", n)
		g.cues.Kill()
	}
}

// spawnGlyph creates one drifting glyph entity. Reports false when the
// actor pool is exhausted: the entity still exists (weak atomicity)
// but nothing is visible, so it is reaped right away.
func (g *Game) spawnGlyph() bool {
	e, err := g.world.SpawnEntity(g.codes.Actor, g.codes.Kinetic, g.codes.Decay)
	if err != nil {
		g.log.Warn("spawn rejected", zap.Error(err))
		return false
	}

	c, ok := e.GetComponent(g.codes.Actor)
	if !ok {
		g.log.Debug("actor pool exhausted", zap.Uint64("entity", uint64(e.ID())))
		g.world.KillEntity(e.ID())
		return false
	}
	a := c.(*component.ActorComponent)
	a.X = g.rng.Intn(g.buffer.Width())
	a.Y = g.rng.Intn(g.buffer.Height())
	a.Glyph = rune(glyphSet[g.rng.Intn(len(glyphSet))])

	if c, ok := e.GetComponent(g.codes.Kinetic); ok {
		k := c.(*component.KineticComponent)
		k.VX = (g.rng.Float64()*2 - 1) * 0.8
		k.VY = (g.rng.Float64()*2 - 1) * 0.4
	}
	if c, ok := e.GetComponent(g.codes.Decay); ok {
		d := c.(*component.DecayComponent)
		d.Remaining = g.cfg.Engine.SpawnTTL
	}
	return true
}

// reapExpired kills every entity whose decay ran out. Runs strictly
// between world updates.
func (g *Game) reapExpired() {
	var dead []core.Entity
	for _, d := range engine.Components[component.DecayComponent](g.world, g.codes.Decay) {
		if d.Expired() && d.Owner() != 0 {
			dead = append(dead, d.Owner())
		}
	}
	for _, id := range dead {
		g.world.KillEntity(id)
	}
	if len(dead) > 0 {
		g.log.Debug("reaped expired entities", zap.Int("count", len(dead)))
	}
}

func (g *Game) killAll() int {
	ids := g.world.EntityIDs()
	for _, id := range ids {
		g.world.KillEntity(id)
	}
	return len(ids)
}

func (g *Game) present() {
	status := fmt.Sprintf(" tick %d | entities %d | %s", g.frame, g.world.EntityCount(), g.status)
	g.term.Present(g.buffer.Lines(), status, g.editor.Pending())
}
