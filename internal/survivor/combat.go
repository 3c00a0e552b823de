package survivor

import (
	"github.com/vkoshelev/tui-survivor/internal/core"
)

// CombatResult reports what a combat tick did to the world.
type CombatResult struct {
	Deaths        []EntityID // enemies that died this tick, in spawn order
	PlayerDamaged bool       // true if the player lost health
	Events        []Event
}

// CombatSimulator resolves collisions. Every tick runs the same fixed
// phase order so outcomes are reproducible:
//
//	(a) player projectiles vs enemies
//	(b) enemy projectiles vs the player
//	(c) enemy contact with the player
//	(d) player picking up drops
//	(e) hazards under the player
//
// Enemies killed in phase (a) are excluded from the later phases of the
// same tick; within (a) all projectile hits land before deaths resolve,
// so two projectiles arriving together both connect.
type CombatSimulator struct {
	store *EntityStore
	inv   *Inventory
	cfg   core.RuntimeConfig
}

// NewCombatSimulator wires the simulator to the store and inventory it
// operates on.
func NewCombatSimulator(store *EntityStore, inv *Inventory, cfg core.RuntimeConfig) *CombatSimulator {
	return &CombatSimulator{store: store, inv: inv, cfg: cfg}
}

// withinContact reports whether two entities overlap, using the sum of
// their radii against center distance.
func withinContact(a, b *Entity) bool {
	r := a.Radius + b.Radius
	return core.DistSq(a.Pos, b.Pos) <= r*r
}

// Tick runs one full collision pass.
func (c *CombatSimulator) Tick(currentTick int) CombatResult {
	res := CombatResult{
		Deaths: make([]EntityID, 0),
		Events: make([]Event, 0),
	}

	player := c.store.Player()
	if player == nil {
		return res
	}

	// (a) player projectiles vs enemies. A projectile is consumed by
	// the first enemy it overlaps in spawn order. Damage lands even on
	// enemies already at zero health this tick; deaths resolve after
	// the whole phase.
	enemies := c.store.Kind(KindEnemy)
	for _, p := range c.store.Kind(KindProjectile) {
		if !p.FromPlayer {
			continue
		}
		for _, e := range enemies {
			if !e.Alive {
				continue
			}
			if withinContact(p, e) {
				e.HP -= p.Damage
				if e.HP < 0 {
					e.HP = 0
				}
				p.Alive = false
				res.Events = append(res.Events, Event{
					Kind:   EventEnemyHit,
					Entity: e.ID,
					Class:  e.Class,
					Amount: p.Damage,
				})
				break
			}
		}
	}
	for _, e := range enemies {
		if e.Alive && e.HP <= 0 {
			e.Alive = false
			res.Deaths = append(res.Deaths, e.ID)
			res.Events = append(res.Events, Event{
				Kind:   EventEnemyDied,
				Entity: e.ID,
				Class:  e.Class,
			})
		}
	}

	// (b) enemy projectiles vs the player
	for _, p := range c.store.Kind(KindProjectile) {
		if p.FromPlayer {
			continue
		}
		if withinContact(p, player) {
			p.Alive = false
			c.damagePlayer(player, p.Damage, &res)
		}
	}

	// (c) enemy contact. Each enemy has its own cooldown so a crowd
	// does not melt the player in a single tick.
	for _, e := range c.store.Kind(KindEnemy) {
		if e.ContactCooldown > 0 {
			continue
		}
		if withinContact(e, player) {
			e.ContactCooldown = c.cfg.Ticks(ContactCooldownSec)
			c.damagePlayer(player, e.ContactDamage, &res)
		}
	}

	// (d) drops under the player
	for _, d := range c.store.Kind(KindDrop) {
		if withinContact(d, player) {
			d.Alive = false
			c.applyDrop(player, d.Payload, currentTick, &res)
		}
	}

	// (e) hazards, on a per-hazard cooldown like contact damage
	for _, h := range c.store.Kind(KindHazard) {
		if h.ContactCooldown > 0 {
			continue
		}
		if withinContact(h, player) {
			h.ContactCooldown = c.cfg.Ticks(HazardCooldownSec)
			c.damagePlayer(player, h.ContactDamage, &res)
		}
	}

	return res
}

// damagePlayer applies damage respecting invincibility and shield
// charges. A shielded or invincible hit does not count as damage.
func (c *CombatSimulator) damagePlayer(player *Entity, amount int, res *CombatResult) {
	if amount <= 0 {
		return
	}
	if c.inv.Invincible() {
		return
	}
	if c.inv.AbsorbHit() {
		return
	}

	player.HP -= amount
	if player.HP < 0 {
		player.HP = 0
	}
	res.PlayerDamaged = true
	res.Events = append(res.Events, Event{
		Kind:   EventPlayerDamaged,
		Entity: player.ID,
		Amount: amount,
	})
}

// applyDrop grants a picked-up payload to the player.
func (c *CombatSimulator) applyDrop(player *Entity, drop Drop, currentTick int, res *CombatResult) {
	switch drop.Kind {
	case DropHeal:
		player.HP += drop.Amount
		if player.HP > player.MaxHP {
			player.HP = player.MaxHP
		}
	case DropCoins:
		c.inv.Coins += drop.Amount
	case DropWeapon:
		c.inv.AddWeapon(drop.Weapon)
	case DropPowerup:
		duration := c.cfg.Ticks(drop.Powerup.DurationSec())
		c.inv.AddPowerup(drop.Powerup, duration, currentTick)
	}

	payload := drop
	res.Events = append(res.Events, Event{
		Kind:   EventItemPickedUp,
		Entity: player.ID,
		Drop:   &payload,
		Amount: drop.Amount,
	})
}
