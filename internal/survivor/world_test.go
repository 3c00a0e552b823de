package survivor

import (
	"math"
	"testing"

	"github.com/vkoshelev/tui-survivor/internal/config"
)

func TestWorldAdvanceScenario(t *testing.T) {
	cat := config.DefaultCatalog()
	w := NewWorldState(cat)

	if w.World != 1 || w.Round != 1 {
		t.Fatalf("Fresh run should start at world 1 round 1, got %d/%d", w.World, w.Round)
	}

	w.AdvanceRound()
	if w.Round != 2 || w.GlobalRound() != 2 {
		t.Errorf("After one clear round should be 2 (global 2), got %d (global %d)", w.Round, w.GlobalRound())
	}
	if w.IsWorldComplete() {
		t.Error("World should not be complete mid-way")
	}

	// Clear the final round of world 1
	w.Round = w.Spec().TotalRounds
	w.AdvanceRound()
	if !w.IsWorldComplete() {
		t.Fatal("Passing the final round should complete the world")
	}

	w.AdvanceWorld()
	if w.World != 2 || w.Round != 1 {
		t.Errorf("Next world should start at round 1, got world %d round %d", w.World, w.Round)
	}
	if w.GlobalRound() != 11 {
		t.Errorf("World 2 round 1 should be global round 11, got %d", w.GlobalRound())
	}
	if w.Mode() != ModeCampaign {
		t.Errorf("Mode should stay campaign, got %v", w.Mode())
	}
}

func TestBossRoundsOnlyInBossWorlds(t *testing.T) {
	cat := config.DefaultCatalog()
	w := NewWorldState(cat)

	var bossGlobals []int
	for world := 1; world <= cat.MaxWorld(); world++ {
		spec, ok := cat.World(world)
		if !ok {
			t.Fatalf("World %d missing from catalog", world)
		}
		for round := 1; round <= spec.TotalRounds; round++ {
			w.World = world
			w.Round = round
			if w.IsBossRound() {
				if !spec.BossUnlocked {
					t.Errorf("Boss round in world %d, which has bosses locked", world)
				}
				bossGlobals = append(bossGlobals, w.GlobalRound())
			}
		}
	}

	want := []int{70, 80, 90, 100}
	if len(bossGlobals) != len(want) {
		t.Fatalf("Expected boss rounds at %v, got %v", want, bossGlobals)
	}
	for i, g := range bossGlobals {
		if g != want[i] {
			t.Errorf("Boss round %d should be global %d, got %d", i, want[i], g)
		}
		if g%BossEvery != 0 {
			t.Errorf("Boss round %d is not a multiple of %d", g, BossEvery)
		}
	}
}

func TestEndlessUnlocksAfterFinalWorld(t *testing.T) {
	cat := config.DefaultCatalog()
	w := NewWorldState(cat)

	clears := 0
	for !w.Endless {
		clears++
		if clears > 500 {
			t.Fatal("Endless mode never unlocked")
		}
		w.AdvanceRound()
		if w.IsWorldComplete() {
			w.AdvanceWorld()
		}
	}

	if clears != 100 {
		t.Errorf("Endless should unlock after clearing 100 rounds, took %d", clears)
	}
	if w.World != cat.MaxWorld() {
		t.Errorf("Endless mode should stay in the final world, got %d", w.World)
	}
	if w.Mode() != ModeEndless {
		t.Errorf("Mode should be endless, got %v", w.Mode())
	}
	if w.GlobalRound() != 101 {
		t.Errorf("First endless round should be global 101, got %d", w.GlobalRound())
	}

	// Rounds keep counting with no further world completion
	w.AdvanceRound()
	if w.IsWorldComplete() {
		t.Error("Endless mode should never complete a world")
	}
	if w.GlobalRound() != 102 {
		t.Errorf("Global round should keep climbing, got %d", w.GlobalRound())
	}
	if w.HighestRound != 102 {
		t.Errorf("Highest round should track endless progress, got %d", w.HighestRound)
	}

	// Endless rounds at multiples of ten still host bosses
	w.Round = w.Spec().TotalRounds + 30 // global round 130
	if !w.IsBossRound() {
		t.Error("Endless global round 130 should host a boss")
	}
	w.Round++
	if w.IsBossRound() {
		t.Error("Endless global round 131 should not host a boss")
	}
}

func TestEndlessDifficultyGrowth(t *testing.T) {
	cat := config.DefaultCatalog()
	final, _ := cat.World(cat.MaxWorld())

	w := NewWorldState(cat)
	w.Restore(cat.MaxWorld(), final.TotalRounds+10, true, 100)

	want := final.DifficultyMultiplier * (1 + cat.Endless.GrowthPerRound*10)
	if math.Abs(w.DifficultyMultiplier()-want) > 1e-9 {
		t.Errorf("Endless multiplier should be %v, got %v", want, w.DifficultyMultiplier())
	}

	// Campaign reads the catalog table directly
	w2 := NewWorldState(cat)
	w2.World = 5
	spec5, _ := cat.World(5)
	if w2.DifficultyMultiplier() != spec5.DifficultyMultiplier {
		t.Errorf("Campaign multiplier should be %v, got %v", spec5.DifficultyMultiplier, w2.DifficultyMultiplier())
	}
}

func TestHighestRoundTracking(t *testing.T) {
	cat := config.DefaultCatalog()
	w := NewWorldState(cat)

	// A saved best above the current position is kept
	w.Restore(3, 5, false, 50)
	if w.HighestRound != 50 {
		t.Errorf("Restore should keep the saved best of 50, got %d", w.HighestRound)
	}

	// A stale best is lifted to the current global round
	w.Restore(3, 5, false, 1)
	if w.HighestRound != 25 {
		t.Errorf("Restore should lift the best to global round 25, got %d", w.HighestRound)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   GameMode
		wantOK bool
	}{
		{"campaign", ModeCampaign, true},
		{"endless", ModeEndless, true},
		{"", ModeCampaign, false},
		{"hardcore", ModeCampaign, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMode(%q) = %v, %v, expected %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
