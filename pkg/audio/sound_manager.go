// pkg/audio/sound_manager.go
package audio

import (
	"context"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-duel/pkg/event"
	"github.com/opd-ai/go-duel/pkg/logging"
)

// Player plays a finished streamer
type Player interface {
	Play(s beep.Streamer)
}

// speakerPlayer plays through the system speaker
type speakerPlayer struct{}

func (speakerPlayer) Play(s beep.Streamer) {
	speaker.Play(s)
}

// InitSpeaker opens the system audio device
func InitSpeaker() (Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, logging.WrapError(err, "speaker init")
	}
	return speakerPlayer{}, nil
}

// SoundManager turns bus events into cues
type SoundManager struct {
	player Player
	volume float64
	played map[Cue]int
	subs   map[event.Type]event.SubscriptionID

	logger *logging.Logger
	ctx    context.Context
}

// NewSoundManager creates a manager playing through player at volume
func NewSoundManager(ctx context.Context, player Player, volume float64, logger *logging.Logger) *SoundManager {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SoundManager{
		player: player,
		volume: volume,
		played: make(map[Cue]int),
		subs:   make(map[event.Type]event.SubscriptionID),
		logger: logger.With("component", "audio"),
		ctx:    ctx,
	}
}

// Subscribe registers the manager's handlers on bus
func (sm *SoundManager) Subscribe(bus *event.Bus) {
	sm.subs[event.ProjectileFired] = bus.Subscribe(event.ProjectileFired, func(event.Event) {
		sm.Play(CueFire)
	})
	sm.subs[event.ProjectileRejected] = bus.Subscribe(event.ProjectileRejected, func(event.Event) {
		sm.Play(CueRejected)
	})
	sm.subs[event.ShipDestroyed] = bus.Subscribe(event.ShipDestroyed, func(event.Event) {
		sm.Play(CueHit)
	})
	sm.subs[event.RoundOver] = bus.Subscribe(event.RoundOver, func(e event.Event) {
		if over, ok := e.(*event.RoundOverEvent); ok && over.Draw {
			sm.Play(CueDraw)
			return
		}
		sm.Play(CueRoundOver)
	})
}

// Unsubscribe removes the handlers Subscribe registered on bus
func (sm *SoundManager) Unsubscribe(bus *event.Bus) {
	for typ, id := range sm.subs {
		bus.Unsubscribe(typ, id)
		delete(sm.subs, typ)
	}
}

// Play builds and plays cue. Failures are logged and dropped.
func (sm *SoundManager) Play(cue Cue) {
	s, err := NewCue(cue, sm.volume)
	if err != nil {
		sm.logger.Warn(sm.ctx, "cue unavailable", "cue", cue.String(), "error", err.Error())
		return
	}
	sm.player.Play(s)
	sm.played[cue]++
}

// Played returns how many times cue was played
func (sm *SoundManager) Played(cue Cue) int {
	return sm.played[cue]
}
