// pkg/engine/collision.go
package engine

import (
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/event"
)

// processCollisions tests every projectile against both ships. Hits are
// applied independently, so both ships may fall in the same tick. Hit
// projectiles stay in flight.
func (g *Game) processCollisions() {
	hit := false
	projectiles := g.Projectiles.All()
	for i := range projectiles {
		for _, ship := range g.Ships {
			if projectiles[i].Hits(ship) {
				g.handleShipHit(ship, &projectiles[i])
				hit = true
			}
		}
	}

	if hit {
		g.endRound()
	}
}

// handleShipHit destroys ship and reports the transition once.
func (g *Game) handleShipHit(ship *entity.Ship, projectile *entity.Projectile) {
	if !ship.Destroy() {
		return
	}

	g.logger.Info(g.ctx, "ship destroyed",
		"player", g.PlayerName(ship.Player),
		"by", g.PlayerName(projectile.Owner),
		"tick", g.CurrentTick,
	)
	g.EventBus.Publish(event.NewShipEvent(event.ShipDestroyed, g, ship.Player, ship.GetPosition()))
}
