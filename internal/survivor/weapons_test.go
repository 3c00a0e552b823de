package survivor

import (
	"math"
	"testing"

	"github.com/vkoshelev/tui-survivor/internal/core"
)

func TestFireWeaponSinglePellet(t *testing.T) {
	s := NewEntityStore()
	spec := SpecFor(WeaponPistol)

	n := fireWeapon(s, core.Vec2{X: 10, Y: 10}, core.Vec2{X: 1}, spec, 1.0, 60)
	if n != 1 {
		t.Errorf("Pistol should fire 1 pellet, got %d", n)
	}

	shots := s.Kind(KindProjectile)
	if len(shots) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(shots))
	}
	p := shots[0]
	if !p.FromPlayer {
		t.Error("Player shot should be marked FromPlayer")
	}
	if p.Damage != spec.Damage {
		t.Errorf("Damage should be %d, got %d", spec.Damage, p.Damage)
	}
	if math.Abs(p.Vel.X-spec.ProjectileSpeed) > 1e-9 || math.Abs(p.Vel.Y) > 1e-9 {
		t.Errorf("Velocity should be (%v, 0), got (%v, %v)", spec.ProjectileSpeed, p.Vel.X, p.Vel.Y)
	}
	if p.TTL != 60 {
		t.Errorf("TTL should be 60, got %d", p.TTL)
	}
}

func TestFireWeaponSpreadFan(t *testing.T) {
	s := NewEntityStore()
	spec := SpecFor(WeaponShotgun)

	n := fireWeapon(s, core.Vec2{X: 5, Y: 5}, core.Vec2{X: 1}, spec, 1.0, 60)
	if n != spec.Pellets {
		t.Fatalf("Shotgun should fire %d pellets, got %d", spec.Pellets, n)
	}

	shots := s.Kind(KindProjectile)
	for i, p := range shots {
		frac := float64(i)/float64(spec.Pellets-1) - 0.5
		wantAngle := frac * spec.SpreadRad
		if math.Abs(p.Vel.Heading()-wantAngle) > 1e-9 {
			t.Errorf("Pellet %d heading should be %v, got %v", i, wantAngle, p.Vel.Heading())
		}
		if math.Abs(p.Vel.Len()-spec.ProjectileSpeed) > 1e-9 {
			t.Errorf("Pellet %d speed should be %v, got %v", i, spec.ProjectileSpeed, p.Vel.Len())
		}
	}
}

func TestFireWeaponDamageMultiplier(t *testing.T) {
	s := NewEntityStore()
	spec := SpecFor(WeaponShotgun)

	fireWeapon(s, core.Vec2{}, core.Vec2{Y: 1}, spec, 2.0, 60)

	for _, p := range s.Kind(KindProjectile) {
		if p.Damage != spec.Damage*2 {
			t.Errorf("Doubled damage should be %d, got %d", spec.Damage*2, p.Damage)
		}
	}
}

func TestFireWeaponZeroDirection(t *testing.T) {
	s := NewEntityStore()

	n := fireWeapon(s, core.Vec2{X: 5, Y: 5}, core.Vec2{}, SpecFor(WeaponPistol), 1.0, 60)
	if n != 0 {
		t.Errorf("Zero aim direction should fire nothing, got %d pellets", n)
	}
	if s.Len() != 0 {
		t.Errorf("No projectiles should spawn, got %d", s.Len())
	}
}

func TestFireWeaponEmptySlot(t *testing.T) {
	s := NewEntityStore()

	n := fireWeapon(s, core.Vec2{}, core.Vec2{X: 1}, SpecFor(WeaponNone), 1.0, 60)
	if n != 0 {
		t.Errorf("Empty slot should fire nothing, got %d pellets", n)
	}
}
