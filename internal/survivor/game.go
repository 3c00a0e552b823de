package survivor

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/core"
)

// Game state constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// arenaTop is the first arena row; the rows above hold the HUD.
const arenaTop = 2

// Options carries the optional dependencies of a game.
type Options struct {
	Save   SaveStore   // nil disables persistence
	Logger *log.Logger // nil discards diagnostics
}

// RunSummary describes a finished (or abandoned) run for the leaderboard.
type RunSummary struct {
	Mode            GameMode
	HighestRound    int
	Kills           int
	TimeSurvivedSec int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Events   []Event
	Paused   bool
	GameOver bool
}

// Game ties the simulation modules together and advances them with a
// fixed timestep. All state lives here or below; nothing escapes to
// globals, so several games can run side by side (one per SSH session).
type Game struct {
	catalog config.WorldCatalog
	runtime core.RuntimeConfig
	save    SaveStore
	logger  *log.Logger

	store    *EntityStore
	inv      *Inventory
	upgrades Upgrades
	combat   *CombatSimulator
	rounds   *RoundManager
	world    *WorldState
	drops    *DropResolver

	// Two independent streams so loot rolls never perturb spawn rolls.
	lootRNG  *SimpleRNG
	spawnRNG *SimpleRNG
	seed     int64

	state         string
	tickCount     int
	kills         int
	baseTimeSec   int // time survived before this session (from a resume)
	playerID      EntityID
	fireCooldown  int       // player weapon timer
	aim           core.Vec2 // retained aim direction
	scale         difficultyScale
	savePending   bool // last commit failed; retried at the next boundary
	pendingEvents []Event

	screenTooSmall bool
	minScreenW     int
	minScreenH     int
}

// New creates a game bound to a catalog and runtime config. Call Reset
// or Resume before the first Step.
func New(catalog config.WorldCatalog, runtime core.RuntimeConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		catalog:    catalog,
		runtime:    runtime,
		save:       opts.Save,
		logger:     logger,
		minScreenW: 40,
		minScreenH: 16,
	}
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	return g
}

// Reset starts a fresh run from world 1, round 1.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	g.lootRNG = NewSimpleRNG(seed)
	// Offset decorrelates the spawn stream from the loot stream
	g.spawnRNG = NewSimpleRNG(seed ^ 0x9E3779B9)

	g.store = NewEntityStore()
	g.inv = NewInventory()
	g.upgrades.Reset()
	g.world = NewWorldState(g.catalog)
	g.rounds = NewRoundManager(g.runtime, g.spawnRNG)
	g.combat = NewCombatSimulator(g.store, g.inv, g.runtime)
	g.drops = NewDropResolver()

	g.state = StatePlaying
	g.tickCount = 0
	g.kills = 0
	g.baseTimeSec = 0
	g.fireCooldown = 0
	g.aim = core.Vec2{X: 1}
	g.savePending = false
	g.pendingEvents = g.pendingEvents[:0]

	player := g.store.Spawn(Entity{
		Kind:   KindPlayer,
		Pos:    core.Vec2{X: float64(g.runtime.ScreenW) / 2, Y: float64(arenaTop+g.runtime.ScreenH) / 2},
		Radius: PlayerRadius,
		HP:     PlayerMaxHP,
		MaxHP:  PlayerMaxHP,
	})
	g.playerID = player.ID
	g.inv.AddWeapon(WeaponPistol)

	g.startRound()
}

// Resume starts a run from a save record. An invalid record falls back
// to a fresh run.
func (g *Game) Resume(seed int64, rec *SaveRecord) {
	g.Reset(seed)
	if !rec.Valid(g.catalog) {
		return
	}

	mode, _ := ParseMode(rec.Mode)
	g.world.Restore(rec.World, rec.Round, mode == ModeEndless, rec.HighestRound)
	g.upgrades = rec.Upgrades
	g.kills = rec.Kills
	g.baseTimeSec = rec.TimeSurvivedSec

	g.inv.Reset()
	for _, w := range rec.Weapons {
		g.inv.AddWeapon(WeaponKind(w))
	}
	g.inv.SwitchTo(rec.ActiveSlot)
	g.inv.Coins = rec.Coins

	player := g.store.Get(g.playerID)
	player.MaxHP = rec.PlayerMaxHP
	player.HP = rec.PlayerHP

	g.pendingEvents = g.pendingEvents[:0]
	g.startRound()
}

// startRound arms the round manager for the current world position and
// materializes the round's hazards.
func (g *Game) startRound() {
	// Hazards are per-round; clear the previous set
	for _, h := range g.store.Kind(KindHazard) {
		h.Alive = false
	}
	g.store.Sweep()

	spec := g.world.Spec()
	mult := g.world.DifficultyMultiplier()
	g.scale = scaleFor(mult, g.world.Round, spec.TotalRounds)

	arenaW := float64(g.runtime.ScreenW)
	arenaH := float64(g.runtime.ScreenH - arenaTop)
	hazards := g.rounds.StartRound(spec, g.world.Round, mult, g.world.IsBossRound(), arenaW, arenaH)

	for _, pos := range hazards {
		g.store.Spawn(Entity{
			Kind:          KindHazard,
			Pos:           core.Vec2{X: pos.X, Y: pos.Y + arenaTop},
			Radius:        HazardRadius,
			ContactDamage: HazardDamage,
		})
	}

	g.pendingEvents = append(g.pendingEvents, Event{
		Kind:  EventRoundStarted,
		World: g.world.World,
		Round: g.world.Round,
	})
}

// Step advances the game by one tick. While paused nothing mutates and
// no ticks accumulate.
func (g *Game) Step(in core.InputFrame) StepResult {
	res := StepResult{Events: make([]Event, 0, 8)}
	if len(g.pendingEvents) > 0 {
		res.Events = append(res.Events, g.pendingEvents...)
		g.pendingEvents = g.pendingEvents[:0]
	}

	if g.screenTooSmall {
		return res
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}
	if g.state != StatePlaying {
		res.Paused = g.state == StatePaused
		res.GameOver = g.state == StateGameOver
		return res
	}

	g.tickCount++

	g.inv.Tick(g.tickCount)
	g.updatePlayer(in, &res)
	g.updateEnemies(&res)
	g.updateTimers()

	cres := g.combat.Tick(g.tickCount)
	res.Events = append(res.Events, cres.Events...)
	g.resolveDeaths(cres.Deaths)
	g.store.Sweep()

	player := g.store.Get(g.playerID)
	if player == nil || player.HP <= 0 {
		g.state = StateGameOver
		res.GameOver = true
		res.Events = append(res.Events, Event{Kind: EventGameOver, World: g.world.World, Round: g.world.Round})
		return res
	}

	up := g.rounds.Update(g.store.CountAlive(KindEnemy))
	for _, order := range up.Spawns {
		g.spawnEnemy(order)
	}
	if up.Cleared {
		res.Events = append(res.Events, Event{Kind: EventRoundCleared, World: g.world.World, Round: g.world.Round})
		g.world.AdvanceRound()
		if g.world.IsWorldComplete() {
			res.Events = append(res.Events, Event{Kind: EventWorldCompleted, World: g.world.World})
			g.world.AdvanceWorld()
		}
		g.commitSave()
	}
	if up.BreakOver {
		g.startRound()
	}

	return res
}

// updatePlayer applies movement, aiming, slot switching and firing.
func (g *Game) updatePlayer(in core.InputFrame, res *StepResult) {
	player := g.store.Get(g.playerID)
	dt := g.runtime.Dt()

	var move core.Vec2
	if in.Has(core.ActionMoveUp) {
		move.Y--
	}
	if in.Has(core.ActionMoveDown) {
		move.Y++
	}
	if in.Has(core.ActionMoveLeft) {
		move.X--
	}
	if in.Has(core.ActionMoveRight) {
		move.X++
	}
	move = move.Normalized() // diagonals are not faster

	speed := PlayerSpeed * g.inv.SpeedMult() * g.upgrades.SpeedMult()
	player.Vel = move.Scale(speed)
	player.Pos = player.Pos.Add(player.Vel.Scale(dt))
	g.clampToArena(player)

	var aim core.Vec2
	if in.Has(core.ActionAimUp) {
		aim.Y--
	}
	if in.Has(core.ActionAimDown) {
		aim.Y++
	}
	if in.Has(core.ActionAimLeft) {
		aim.X--
	}
	if in.Has(core.ActionAimRight) {
		aim.X++
	}
	if aim.IsZero() && in.AimSet {
		aim = in.AimAt.Sub(player.Pos)
	}
	if !aim.IsZero() {
		g.aim = aim.Normalized()
	}

	if in.Has(core.ActionSlot1) {
		g.inv.SwitchTo(0)
	}
	if in.Has(core.ActionSlot2) {
		g.inv.SwitchTo(1)
	}
	if in.Has(core.ActionSlot3) {
		g.inv.SwitchTo(2)
	}

	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if in.Has(core.ActionFire) && g.fireCooldown <= 0 {
		spec := g.inv.ActiveWeapon()
		damageMult := g.inv.DamageMult() * g.upgrades.DamageMult()
		ttl := g.runtime.Ticks(ProjectileLifetimeSec)
		if n := fireWeapon(g.store, player.Pos, g.aim, spec, damageMult, ttl); n > 0 {
			g.fireCooldown = g.runtime.Ticks(spec.FireIntervalSec * g.upgrades.FireIntervalMult())
			res.Events = append(res.Events, Event{Kind: EventShotFired, Entity: player.ID, Amount: n})
		}
	}
}

// updateEnemies steers and moves every enemy for one tick.
func (g *Game) updateEnemies(res *StepResult) {
	player := g.store.Get(g.playerID)
	dt := g.runtime.Dt()

	for _, e := range g.store.Kind(KindEnemy) {
		switch e.Class {
		case ClassBoss:
			res.Events = append(res.Events, updateBoss(e, player, g.store, g.runtime, g.scale)...)
		case ClassRanged:
			g.updateRanged(e, player)
		default:
			dir := player.Pos.Sub(e.Pos).Normalized()
			e.Vel = dir.Scale(e.Speed)
		}

		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		g.clampToArena(e)

		if e.ContactCooldown > 0 {
			e.ContactCooldown--
		}
	}
}

// updateRanged keeps a ranged enemy near its preferred distance and
// fires at the player when in range.
func (g *Game) updateRanged(e *Entity, player *Entity) {
	toPlayer := player.Pos.Sub(e.Pos)
	dist := toPlayer.Len()
	dir := toPlayer.Normalized()

	switch {
	case dist > RangedKeepDistance+2:
		e.Vel = dir.Scale(e.Speed)
	case dist < RangedKeepDistance-2:
		e.Vel = dir.Scale(-e.Speed)
	default:
		e.Vel = core.Vec2{}
	}

	if e.FireCooldown > 0 {
		e.FireCooldown--
		return
	}
	if dist > RangedKeepDistance*2 {
		return
	}

	damage := int(math.Round(RangedShotDamage * g.scale.Damage))
	g.store.Spawn(Entity{
		Kind:   KindProjectile,
		Pos:    e.Pos,
		Vel:    dir.Scale(RangedShotSpeed),
		Radius: ProjectileRadius,
		Damage: damage,
		TTL:    g.runtime.Ticks(ProjectileLifetimeSec),
	})
	e.FireCooldown = g.runtime.Ticks(RangedFireIntervalSec)
}

// updateTimers moves projectiles and runs down lifetimes and cooldowns.
func (g *Game) updateTimers() {
	dt := g.runtime.Dt()

	for _, p := range g.store.Kind(KindProjectile) {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.TTL--
		if p.TTL <= 0 || g.outsideArena(p.Pos) {
			p.Alive = false
		}
	}

	for _, d := range g.store.Kind(KindDrop) {
		d.TTL--
		if d.TTL <= 0 {
			d.Alive = false
		}
	}

	for _, h := range g.store.Kind(KindHazard) {
		if h.ContactCooldown > 0 {
			h.ContactCooldown--
		}
	}
}

// resolveDeaths converts combat deaths into kill credit and loot.
func (g *Game) resolveDeaths(deaths []EntityID) {
	for _, id := range deaths {
		e := g.store.Get(id)
		if e == nil {
			continue
		}
		g.kills++

		drop := g.drops.Resolve(e.Class.Tier(), g.lootRNG)
		if drop == nil {
			continue
		}
		g.store.Spawn(Entity{
			Kind:    KindDrop,
			Pos:     e.Pos,
			Radius:  DropRadius,
			Payload: *drop,
			TTL:     g.runtime.Ticks(DropTTLSec),
		})
	}
}

// spawnEnemy materializes a spawn order with the current round scaling.
func (g *Game) spawnEnemy(order SpawnOrder) {
	stats := g.scale.apply(statsFor(order.Class))

	e := g.store.Spawn(Entity{
		Kind:          KindEnemy,
		Class:         order.Class,
		Pos:           core.Vec2{X: order.Pos.X, Y: order.Pos.Y + arenaTop},
		Radius:        stats.Radius,
		HP:            stats.HP,
		MaxHP:         stats.HP,
		Speed:         stats.Speed,
		ContactDamage: stats.ContactDamage,
	})

	switch order.Class {
	case ClassBoss:
		initBoss(e, g.runtime)
	case ClassRanged:
		e.FireCooldown = g.runtime.Ticks(RangedFireIntervalSec)
	}
}

// clampToArena keeps an entity's center inside the playable area.
func (g *Game) clampToArena(e *Entity) {
	e.Pos.X = core.ClampF(e.Pos.X, e.Radius, float64(g.runtime.ScreenW)-e.Radius)
	e.Pos.Y = core.ClampF(e.Pos.Y, float64(arenaTop)+e.Radius, float64(g.runtime.ScreenH)-e.Radius)
}

// outsideArena reports whether a point has left the arena entirely.
func (g *Game) outsideArena(p core.Vec2) bool {
	const margin = 1.0
	return p.X < -margin || p.X > float64(g.runtime.ScreenW)+margin ||
		p.Y < float64(arenaTop)-margin || p.Y > float64(g.runtime.ScreenH)+margin
}

// Buy purchases an upgrade during the round break. Returns whether the
// purchase went through.
func (g *Game) Buy(kind UpgradeKind) bool {
	if g.state != StatePlaying || !g.rounds.InBreak() {
		return false
	}
	cost := kind.Cost()
	if cost <= 0 || g.inv.Coins < cost {
		return false
	}

	g.inv.Coins -= cost
	g.upgrades.Add(kind)

	if kind == UpgradeMaxHP {
		player := g.store.Get(g.playerID)
		player.MaxHP += UpgradeMaxHPAmount
		player.HP += UpgradeMaxHPAmount
	}
	return true
}

// commitSave persists progress at a round boundary. Failures are
// logged and retried at the next boundary; the run keeps going.
func (g *Game) commitSave() {
	if g.save == nil {
		return
	}
	rec := g.buildSaveRecord()
	if err := g.save.Commit(rec); err != nil {
		g.logger.Warn("failed to save progress", "world", rec.World, "round", rec.Round, "err", err)
		g.savePending = true
		return
	}
	g.savePending = false
}

// buildSaveRecord captures the state a resume needs. It is taken after
// round advancement, so the record points at the next round to play.
func (g *Game) buildSaveRecord() SaveRecord {
	player := g.store.Get(g.playerID)

	weapons := make([]int, 0, len(g.inv.Weapons))
	for _, w := range g.inv.Weapons {
		weapons = append(weapons, int(w))
	}

	return SaveRecord{
		Version:         SaveVersion,
		SavedAt:         time.Now(),
		Mode:            g.world.Mode().String(),
		World:           g.world.World,
		Round:           g.world.Round,
		PlayerHP:        player.HP,
		PlayerMaxHP:     player.MaxHP,
		Weapons:         weapons,
		ActiveSlot:      g.inv.Active,
		Coins:           g.inv.Coins,
		Upgrades:        g.upgrades,
		Kills:           g.kills,
		TimeSurvivedSec: g.TimeSurvivedSec(),
		HighestRound:    g.world.HighestRound,
	}
}

// TimeSurvivedSec returns the run's play time, including time from
// before a resume.
func (g *Game) TimeSurvivedSec() int {
	if g.runtime.TickRate <= 0 {
		return g.baseTimeSec
	}
	return g.baseTimeSec + g.tickCount/g.runtime.TickRate
}

// Summary returns the leaderboard-facing totals of the run so far.
func (g *Game) Summary() RunSummary {
	return RunSummary{
		Mode:            g.world.Mode(),
		HighestRound:    g.world.HighestRound,
		Kills:           g.kills,
		TimeSurvivedSec: g.TimeSurvivedSec(),
	}
}

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.state == StateGameOver
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.state == StatePaused
}

// InBreak reports whether the shop break between rounds is running.
func (g *Game) InBreak() bool {
	return g.rounds.InBreak()
}

// Seed returns the seed this run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}
