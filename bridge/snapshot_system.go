package bridge

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/component"
	"github.com/lixenwraith/arpg/core"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/parameter"
)

// Publisher receives serialized frames
type Publisher interface {
	Publish(data []byte)
	ClientCount() int
}

// SnapshotSystem serializes player, camera and destination after all other systems ran
type SnapshotSystem struct {
	game      *engine.GameContext
	pub       Publisher
	transform *engine.Store[component.TransformComponent]
	path      *engine.Store[component.PlayerPathComponent]
	logger    zerolog.Logger
}

// NewSnapshotSystem creates the frame publisher
func NewSnapshotSystem(game *engine.GameContext, pub Publisher) *SnapshotSystem {
	return &SnapshotSystem{
		game:      game,
		pub:       pub,
		transform: game.World.Components.Transform,
		path:      game.World.Components.Path,
		logger:    game.Logger.With().Str("system", "snapshot").Logger(),
	}
}

func (s *SnapshotSystem) Name() string {
	return "snapshot"
}

func (s *SnapshotSystem) Priority() int {
	return parameter.PrioritySnapshot
}

func (s *SnapshotSystem) Update(dt float32) {
	if s.pub.ClientCount() == 0 {
		return
	}

	data, err := json.Marshal(s.build())
	if err != nil {
		s.logger.Error().Err(err).Msg("frame marshal failed")
		return
	}
	s.pub.Publish(data)
}

func (s *SnapshotSystem) build() frameMessage {
	msg := frameMessage{
		Type:  typeFrame,
		Frame: s.game.FrameNumber.Load(),
	}

	w := s.game.World
	if player, ok := w.Player(); ok {
		msg.Player = s.transformOf(player)
		if path, ok := s.path.GetComponent(player); ok {
			if dst, ok := path.Target(); ok {
				d := [3]float32(dst)
				msg.Destination = &d
			}
		}
	}
	if camera, ok := w.Camera(); ok {
		msg.Camera = s.transformOf(camera)
	}
	return msg
}

func (s *SnapshotSystem) transformOf(e core.Entity) *transformMessage {
	tr, ok := s.transform.GetComponent(e)
	if !ok {
		return nil
	}
	return &transformMessage{
		Entity:   uint64(e),
		Position: [3]float32(tr.Translation),
		Rotation: [4]float32{tr.Rotation.W, tr.Rotation.V.X(), tr.Rotation.V.Y(), tr.Rotation.V.Z()},
		Forward:  [3]float32(tr.Forward()),
	}
}
