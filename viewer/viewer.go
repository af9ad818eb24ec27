// Package viewer renders the scene top-down in a terminal and turns mouse clicks into destinations
package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/core"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/parameter"
)

// ErrQuit is returned by Run when the user asks to exit
var ErrQuit = errors.New("viewer quit")

var (
	styleDark   = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 48))
	styleLight  = tcell.StyleDefault.Background(tcell.NewRGBColor(90, 90, 100))
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDest   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Viewer owns the terminal screen
type Viewer struct {
	screen tcell.Screen
	game   *engine.GameContext
	logger zerolog.Logger

	pressed bool
}

// New creates a viewer over an initialized screen
func New(screen tcell.Screen, game *engine.GameContext) *Viewer {
	screen.EnableMouse()
	return &Viewer{
		screen: screen,
		game:   game,
		logger: game.Logger.With().Str("component", "viewer").Logger(),
	}
}

// projection centres the view on the camera's look target
func (v *Viewer) projection() Projection {
	w, h := v.screen.Size()
	p := Projection{Width: w, Height: h}

	world := v.game.World
	if camera, ok := world.Camera(); ok {
		tr, okT := world.Components.Transform.GetComponent(camera)
		cam, okC := world.Components.Camera.GetComponent(camera)
		if okT && okC {
			p.Focus = tr.Translation.Sub(cam.Offset)
			return p
		}
	}
	if player, ok := world.Player(); ok {
		if tr, ok := world.Components.Transform.GetComponent(player); ok {
			p.Focus = tr.Translation
		}
	}
	return p
}

// HandleEvent processes one terminal event; false means quit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		// Destination is chosen on release, like a click
		if ev.Buttons()&tcell.Button1 != 0 {
			v.pressed = true
			return true
		}
		if v.pressed {
			v.pressed = false
			col, row := ev.Position()
			v.Release(col, row)
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Release picks the ground point under a cell and emits a destination when it lies on the player's surface
func (v *Viewer) Release(col, row int) bool {
	world := v.game.World
	player, ok := world.Player()
	if !ok {
		return false
	}
	pc, okP := world.Components.Player.GetComponent(player)
	tr, okT := world.Components.Transform.GetComponent(player)
	if !okP || !okT {
		return false
	}

	hit := v.projection().ToWorld(col, row)
	if !pc.Contains(tr.Translation, hit.X(), hit.Z()) {
		v.logger.Debug().Int("col", col).Int("row", row).Msg("release outside pickable surface")
		return false
	}

	event.EmitPointerRelease(v.game.Events(), player, &hit, v.game.FrameNumber.Load())
	return true
}

// Draw renders floor, destination, player and a status line
// The world is read under its update lock so a frame is never drawn half-applied
func (v *Viewer) Draw() {
	v.game.World.RunSafe(v.draw)
	v.screen.Show()
}

func (v *Viewer) draw() {
	s := v.screen
	s.Clear()
	proj := v.projection()
	world := v.game.World

	for _, e := range world.Components.Floor.AllEntity() {
		tile, ok := world.Components.Floor.GetComponent(e)
		if !ok {
			continue
		}
		tr, ok := world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		v.fillTile(proj, tr.Translation, tile)
	}

	status := "no player"
	if player, ok := world.Player(); ok {
		tr, _ := world.Components.Transform.GetComponent(player)
		path, _ := world.Components.Path.GetComponent(player)

		if dst, ok := path.Target(); ok {
			if col, row := proj.ToCell(dst); proj.InBounds(col, row) {
				s.SetContent(col, row, 'x', nil, styleDest)
			}
			status = fmt.Sprintf("pos %6.2f %6.2f  ->  %6.2f %6.2f", tr.Translation.X(), tr.Translation.Z(), dst.X(), dst.Z())
		} else {
			status = fmt.Sprintf("pos %6.2f %6.2f  idle", tr.Translation.X(), tr.Translation.Z())
		}

		if col, row := proj.ToCell(tr.Translation); proj.InBounds(col, row) {
			s.SetContent(col, row, '@', nil, stylePlayer)
		}
	}

	v.drawText(0, 0, fmt.Sprintf(" frame %d  %s  [click: move, q: quit] ", v.game.FrameNumber.Load(), status), styleStatus)
}

func (v *Viewer) fillTile(proj Projection, center mgl32.Vec3, tile component.FloorTileComponent) {
	style := styleLight
	if tile.Dark {
		style = styleDark
	}
	half := tile.Size / 2
	c0, r0 := proj.ToCell(center.Sub(mgl32.Vec3{half, 0, half}))
	c1, r1 := proj.ToCell(center.Add(mgl32.Vec3{half, 0, half}))

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if proj.InBounds(col, row) {
				v.screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

func (v *Viewer) drawText(col, row int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(col+i, row, r, nil, style)
	}
}

// Run polls terminal input and redraws until ctx ends or the user quits
// A panic in either goroutine restores the terminal through core.HandleCrash
func (v *Viewer) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ticker := time.NewTicker(parameter.RenderInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !v.HandleEvent(ev) {
				return ErrQuit
			}
		case <-ticker.C:
			v.Draw()
		}
	}
}
