package survivor

import (
	"fmt"
	"math"

	"github.com/vkoshelev/tui-survivor/internal/core"
)

// hpBarWidth is the width of the player health bar in the HUD.
const hpBarWidth = 12

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	// Hazards go first so everything else draws over them
	g.renderKind(dst, KindHazard)
	g.renderKind(dst, KindDrop)
	g.renderKind(dst, KindEnemy)
	g.renderKind(dst, KindProjectile)
	g.renderKind(dst, KindPlayer)

	g.renderBossBar(dst)
	g.renderOverlay(dst)
}

// renderHUD draws health, money and progression on the two HUD rows.
func (g *Game) renderHUD(dst *core.Screen) {
	player := g.store.Get(g.playerID)

	// Row 0: HP bar, coins and kills on the left, position on the right
	x := 1
	dst.DrawText(x, 0, "HP ")
	x += 3
	filled := 0
	if player.MaxHP > 0 {
		filled = int(math.Round(float64(player.HP) / float64(player.MaxHP) * hpBarWidth))
	}
	if player.HP > 0 && filled == 0 {
		filled = 1
	}
	barColor := core.ColorGreen
	if player.HP*3 <= player.MaxHP {
		barColor = core.ColorRed
	}
	for i := 0; i < hpBarWidth; i++ {
		if i < filled {
			dst.SetCell(x+i, 0, '█', barColor)
		} else {
			dst.SetCell(x+i, 0, '░', core.ColorGray)
		}
	}
	x += hpBarWidth + 1
	hpText := fmt.Sprintf("%d/%d", player.HP, player.MaxHP)
	dst.DrawText(x, 0, hpText)
	x += len(hpText) + 2

	coinsText := fmt.Sprintf("$%d", g.inv.Coins)
	dst.DrawTextColor(x, 0, coinsText, core.ColorYellow)
	x += len(coinsText) + 2

	dst.DrawText(x, 0, fmt.Sprintf("Kills %d", g.kills))

	var posText string
	if g.world.Endless {
		posText = fmt.Sprintf("Endless  Round %d", g.world.Round)
	} else {
		spec := g.world.Spec()
		posText = fmt.Sprintf("%s (%d/%d)  Round %d/%d",
			spec.Name, g.world.World, g.catalog.MaxWorld(), g.world.Round, spec.TotalRounds)
	}
	dst.DrawText(dst.Width()-len(posText)-1, 0, posText)

	// Row 1: weapon slots, then active effects
	x = 1
	for i, w := range g.inv.Weapons {
		label := fmt.Sprintf("%d:%s", i+1, w)
		color := core.ColorGray
		if i == g.inv.Active && w != WeaponNone {
			color = core.ColorWhite
			label += "*"
		}
		dst.DrawTextColor(x, 1, label, color)
		x += len(label) + 2
	}

	if g.inv.ShieldLeft > 0 {
		label := fmt.Sprintf("Shield(%d)", g.inv.ShieldLeft)
		dst.DrawTextColor(x, 1, label, core.ColorBlue)
		x += len(label) + 1
	}
	for _, eff := range g.inv.Effects {
		secs := eff.TicksRemaining(g.tickCount) / core.Max(g.runtime.TickRate, 1)
		label := fmt.Sprintf("%s(%ds)", eff.Kind, secs)
		dst.DrawTextColor(x, 1, label, core.ColorMagenta)
		x += len(label) + 1
	}

	if g.savePending {
		warn := "save failed"
		dst.DrawTextColor(dst.Width()-len(warn)-1, 1, warn, core.ColorRed)
	}
}

// renderKind draws every living entity of one kind.
func (g *Game) renderKind(dst *core.Screen, kind EntityKind) {
	for _, e := range g.store.Kind(kind) {
		x := int(math.Round(e.Pos.X))
		y := int(math.Round(e.Pos.Y))
		dst.SetCell(x, y, e.Glyph(), e.Color())
	}
}

// renderBossBar draws the boss health bar along the bottom row.
func (g *Game) renderBossBar(dst *core.Screen) {
	var boss *Entity
	for _, e := range g.store.Kind(KindEnemy) {
		if e.Class == ClassBoss {
			boss = e
			break
		}
	}
	if boss == nil {
		return
	}

	barW := dst.Width() / 2
	x := (dst.Width() - barW - 5) / 2
	y := dst.Height() - 1
	dst.DrawTextColor(x, y, "BOSS ", core.ColorRed)
	filled := 0
	if boss.MaxHP > 0 {
		filled = int(math.Round(float64(boss.HP) / float64(boss.MaxHP) * float64(barW)))
	}
	for i := 0; i < barW; i++ {
		if i < filled {
			dst.SetCell(x+5+i, y, '█', core.ColorRed)
		} else {
			dst.SetCell(x+5+i, y, '░', core.ColorGray)
		}
	}
}

// renderOverlay draws state messages and the between-round shop.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "P: resume   B: menu")
	case StateGameOver:
		subtitle := fmt.Sprintf("Round %d  |  %d kills", g.world.HighestRound, g.kills)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
		dst.DrawTextCentered(dst.Height()/2+3, "Enter: continue   R: retry")
	default:
		if g.rounds.InBreak() {
			g.drawShop(dst)
		}
	}
}

// drawShop draws the upgrade shop shown during the round break.
func (g *Game) drawShop(dst *core.Screen) {
	lines := make([]string, 0, upgradeCount+2)
	lines = append(lines, fmt.Sprintf("Round cleared!  $%d", g.inv.Coins))
	for k := UpgradeKind(0); k < upgradeCount; k++ {
		kind := UpgradeKind(k)
		lines = append(lines, fmt.Sprintf("%d) %-10s $%-3d Lv %d",
			k+1, kind, kind.Cost(), g.upgrades.Level(kind)))
	}
	secs := float64(g.rounds.BreakLeft()) * g.runtime.Dt()
	lines = append(lines, fmt.Sprintf("Next round in %.1fs", secs))

	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, len(line))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, line := range lines {
		dst.DrawText(boxX+2, boxY+1+i, line)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
