package survivor

import "math"

// entityWords is the number of words one entity occupies in EntityData.
const entityWords = 13

// Snapshot captures the complete simulation state for determinism
// checks and debugging. Uses primitive types only; float fields are
// stored as IEEE 754 bit patterns so comparisons are exact.
type Snapshot struct {
	Tick  uint64
	State string

	Mode        int // 0=Campaign, 1=Endless
	World       int
	Round       int
	GlobalRound int

	PlayerHP     int
	PlayerMaxHP  int
	Coins        int
	Kills        int
	FireCooldown int

	ActiveSlot int
	Weapons    []int
	ShieldLeft int

	// Effect state (each effect is 2 ints: Kind, UntilTick)
	EffectCount int
	EffectData  []int

	// Upgrade levels (MaxHP, Speed, Damage, FireRate)
	UpgradeData []int

	RoundPhase   int
	RoundQuota   int
	RoundSpawned int
	BreakLeft    int

	// Entity state (each entity is entityWords words: ID, Kind, Class,
	// Pos.X, Pos.Y, Vel.X, Vel.Y bits, HP, ContactCooldown,
	// FireCooldown, TTL, BossStep, PhaseLeft)
	EntityCount int
	EntityData  []uint64

	LootRNGState  uint64
	SpawnRNGState uint64
}

// Snapshot returns the current game state as a Snapshot. Dead entities
// awaiting Sweep are excluded.
func (g *Game) Snapshot() Snapshot {
	var entityData []uint64
	count := 0
	for _, e := range g.store.All() {
		if !e.Alive {
			continue
		}
		count++
		entityData = append(entityData,
			uint64(e.ID),
			uint64(e.Kind),  //#nosec G115 -- enum value is small and positive
			uint64(e.Class), //#nosec G115 -- enum value is small and positive
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			math.Float64bits(e.Vel.X),
			math.Float64bits(e.Vel.Y),
			uint64(e.HP),              //#nosec G115 -- HP is clamped at zero
			uint64(e.ContactCooldown), //#nosec G115 -- tick timers are non-negative
			uint64(e.FireCooldown),    //#nosec G115 -- tick timers are non-negative
			uint64(e.TTL),             //#nosec G115 -- tick timers are non-negative
			uint64(e.BossStep),        //#nosec G115 -- phase index is small and positive
			uint64(e.PhaseLeft),       //#nosec G115 -- tick timers are non-negative
		)
	}

	effectData := make([]int, 0, len(g.inv.Effects)*2)
	for _, eff := range g.inv.Effects {
		effectData = append(effectData, int(eff.Kind), eff.UntilTick)
	}

	weapons := make([]int, 0, len(g.inv.Weapons))
	for _, w := range g.inv.Weapons {
		weapons = append(weapons, int(w))
	}

	player := g.store.Get(g.playerID)

	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State: g.state,

		Mode:        int(g.world.Mode()),
		World:       g.world.World,
		Round:       g.world.Round,
		GlobalRound: g.world.GlobalRound(),

		PlayerHP:     player.HP,
		PlayerMaxHP:  player.MaxHP,
		Coins:        g.inv.Coins,
		Kills:        g.kills,
		FireCooldown: g.fireCooldown,

		ActiveSlot: g.inv.Active,
		Weapons:    weapons,
		ShieldLeft: g.inv.ShieldLeft,

		EffectCount: len(g.inv.Effects),
		EffectData:  effectData,

		UpgradeData: []int{g.upgrades.MaxHP, g.upgrades.Speed, g.upgrades.Damage, g.upgrades.FireRate},

		RoundPhase:   int(g.rounds.Phase()),
		RoundQuota:   g.rounds.Quota(),
		RoundSpawned: g.rounds.Spawned(),
		BreakLeft:    g.rounds.BreakLeft(),

		EntityCount: count,
		EntityData:  entityData,

		LootRNGState:  g.lootRNG.State(),
		SpawnRNGState: g.spawnRNG.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.World)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GlobalRound)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHP)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerMaxHP)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireCooldown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveSlot)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShieldLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundPhase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundQuota)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundSpawned) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BreakLeft)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)  //#nosec G115 -- hash computation

	for _, v := range snap.Weapons {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.UpgradeData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.EntityData {
		h = h*31 + v
	}

	h = h*31 + snap.LootRNGState
	h = h*31 + snap.SpawnRNGState

	return h
}
