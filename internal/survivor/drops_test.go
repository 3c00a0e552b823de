package survivor

import (
	"math"
	"testing"
)

// scriptedRNG feeds predetermined values into drop rolls.
type scriptedRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRNG) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func TestDropRarityDistribution(t *testing.T) {
	resolver := NewDropResolver()
	rng := NewSimpleRNG(1234)

	const kills = 20000
	drops := 0
	counts := make(map[Rarity]int)
	for i := 0; i < kills; i++ {
		d := resolver.Resolve(TierNormal, rng)
		if d == nil {
			continue
		}
		drops++
		counts[d.Rarity]++
	}

	dropRate := float64(drops) / kills
	if math.Abs(dropRate-DropChanceNormal) > 0.02 {
		t.Errorf("Drop rate should converge to %v, got %v", DropChanceNormal, dropRate)
	}

	checks := []struct {
		rarity    Rarity
		want      float64
		tolerance float64
	}{
		{RarityCommon, 0.60, 0.03},
		{RarityUncommon, 0.30, 0.03},
		{RarityRare, 0.09, 0.02},
		{RarityLegendary, 0.01, 0.01},
	}
	for _, c := range checks {
		frac := float64(counts[c.rarity]) / float64(drops)
		if math.Abs(frac-c.want) > c.tolerance {
			t.Errorf("%v share should converge to %v, got %v over %d drops", c.rarity, c.want, frac, drops)
		}
	}
}

func TestEliteDropsFloorAtUncommon(t *testing.T) {
	resolver := NewDropResolver()
	rng := NewSimpleRNG(99)

	for i := 0; i < 2000; i++ {
		d := resolver.Resolve(TierElite, rng)
		if d == nil {
			t.Fatal("Elite kills should always drop")
		}
		if d.Rarity < RarityUncommon {
			t.Fatalf("Elite drop rarity should be at least Uncommon, got %v", d.Rarity)
		}
	}
}

func TestBossDropsFloorAtRare(t *testing.T) {
	resolver := NewDropResolver()
	rng := NewSimpleRNG(7)

	for i := 0; i < 2000; i++ {
		d := resolver.Resolve(TierBoss, rng)
		if d == nil {
			t.Fatal("Boss kills should always drop")
		}
		if d.Rarity < RarityRare {
			t.Fatalf("Boss drop rarity should be at least Rare, got %v", d.Rarity)
		}
	}
}

func TestMinionsNeverDrop(t *testing.T) {
	resolver := NewDropResolver()
	rng := NewSimpleRNG(5)

	for i := 0; i < 100; i++ {
		if d := resolver.Resolve(TierNone, rng); d != nil {
			t.Fatalf("Minions should never drop, got %v", d)
		}
	}
}

func TestMisconfiguredWeightsFallBackToNoDrop(t *testing.T) {
	// Weights sum to 0.3, so a roll of 0.9 lands past every bucket
	resolver := &DropResolver{Table: DropTable{
		Weights: [rarityCount]float64{0.2, 0.1, 0, 0},
		Pools:   DefaultDropTable().Pools,
	}}
	rng := &scriptedRNG{floats: []float64{0.9}, ints: []int{0}}

	if d := resolver.Resolve(TierElite, rng); d != nil {
		t.Errorf("Unmatched roll should produce no drop, got %v", d)
	}
}

func TestEmptyPoolProducesNoDrop(t *testing.T) {
	resolver := &DropResolver{Table: DropTable{
		Weights: [rarityCount]float64{1, 0, 0, 0},
	}}
	rng := &scriptedRNG{floats: []float64{0}, ints: []int{0}}

	if d := resolver.Resolve(TierElite, rng); d != nil {
		t.Errorf("Empty payload pool should produce no drop, got %v", d)
	}
}

func TestPayloadPickedUniformlyFromPool(t *testing.T) {
	resolver := NewDropResolver()
	pool := resolver.Table.Pools[RarityCommon]

	for i := range pool {
		// First float passes the drop chance, second rolls Common
		rng := &scriptedRNG{floats: []float64{0, 0}, ints: []int{i}}
		d := resolver.Resolve(TierNormal, rng)
		if d == nil {
			t.Fatalf("Pick %d should drop", i)
		}
		if d.Rarity != RarityCommon {
			t.Errorf("Pick %d rarity should be Common, got %v", i, d.Rarity)
		}
		want := pool[i]
		if d.Kind != want.Kind || d.Amount != want.Amount || d.Weapon != want.Weapon || d.Powerup != want.Powerup {
			t.Errorf("Pick %d should match pool entry %+v, got %+v", i, want, *d)
		}
	}
}
