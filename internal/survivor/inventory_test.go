package survivor

import "testing"

func TestWeaponSlotsFillInOrder(t *testing.T) {
	inv := NewInventory()

	if slot := inv.AddWeapon(WeaponPistol); slot != 0 {
		t.Errorf("First weapon should land in slot 0, got %d", slot)
	}
	if slot := inv.AddWeapon(WeaponShotgun); slot != 1 {
		t.Errorf("Second weapon should land in slot 1, got %d", slot)
	}
	if slot := inv.AddWeapon(WeaponRifle); slot != 2 {
		t.Errorf("Third weapon should land in slot 2, got %d", slot)
	}
	if inv.Active != 0 {
		t.Errorf("Picking up weapons should not change the active slot, got %d", inv.Active)
	}
}

func TestFourthWeaponReplacesActiveSlot(t *testing.T) {
	inv := NewInventory()
	inv.AddWeapon(WeaponPistol)
	inv.AddWeapon(WeaponShotgun)
	inv.AddWeapon(WeaponRifle)

	inv.SwitchTo(1)
	if slot := inv.AddWeapon(WeaponPlasma); slot != 1 {
		t.Errorf("Fourth weapon should replace the active slot 1, got %d", slot)
	}

	if inv.Weapons[0] != WeaponPistol {
		t.Errorf("Slot 0 should keep Pistol, got %v", inv.Weapons[0])
	}
	if inv.Weapons[1] != WeaponPlasma {
		t.Errorf("Slot 1 should now hold Plasma, got %v", inv.Weapons[1])
	}
	if inv.Weapons[2] != WeaponRifle {
		t.Errorf("Slot 2 should keep Rifle, got %v", inv.Weapons[2])
	}
}

func TestSwitchToEmptySlotIsNoOp(t *testing.T) {
	inv := NewInventory()
	inv.AddWeapon(WeaponPistol)

	if inv.SwitchTo(2) {
		t.Error("Switching to an empty slot should fail")
	}
	if inv.Active != 0 {
		t.Errorf("Active slot should stay 0, got %d", inv.Active)
	}

	if inv.SwitchTo(-1) || inv.SwitchTo(3) {
		t.Error("Out-of-range slots should fail")
	}

	inv.AddWeapon(WeaponShotgun)
	if !inv.SwitchTo(1) {
		t.Error("Switching to a filled slot should succeed")
	}
	if inv.ActiveWeapon().Kind != WeaponShotgun {
		t.Errorf("Active weapon should be Shotgun, got %v", inv.ActiveWeapon().Kind)
	}
}

func TestPowerupRefreshesInsteadOfStacking(t *testing.T) {
	inv := NewInventory()

	inv.AddPowerup(PowerupSpeed, 300, 100)
	inv.AddPowerup(PowerupSpeed, 300, 200)

	if len(inv.Effects) != 1 {
		t.Fatalf("Re-picking a powerup should not add a second effect, got %d", len(inv.Effects))
	}
	if inv.Effects[0].UntilTick != 500 {
		t.Errorf("Refresh should restart the countdown at 500, got %d", inv.Effects[0].UntilTick)
	}
}

func TestPowerupExpiresOnExactTick(t *testing.T) {
	inv := NewInventory()
	inv.AddPowerup(PowerupDamage, 10, 100)

	if expired := inv.Tick(109); len(expired) != 0 {
		t.Error("Effect should still be active one tick before its deadline")
	}
	if !inv.Has(PowerupDamage) {
		t.Error("Damage powerup should be active at tick 109")
	}
	if inv.DamageMult() != PowerupDamageMult {
		t.Errorf("Damage multiplier should be %v, got %v", PowerupDamageMult, inv.DamageMult())
	}

	expired := inv.Tick(110)
	if len(expired) != 1 || expired[0] != PowerupDamage {
		t.Errorf("Effect should expire exactly at tick 110, got %v", expired)
	}
	if inv.Has(PowerupDamage) {
		t.Error("Expired powerup should no longer be active")
	}
	if inv.DamageMult() != 1.0 {
		t.Errorf("Damage multiplier should revert to 1.0, got %v", inv.DamageMult())
	}
}

func TestShieldIsAHitCounter(t *testing.T) {
	inv := NewInventory()
	inv.AddPowerup(PowerupShield, 0, 0)

	if inv.ShieldLeft != ShieldCharges {
		t.Fatalf("Shield should start with %d charges, got %d", ShieldCharges, inv.ShieldLeft)
	}

	for i := 0; i < ShieldCharges; i++ {
		if !inv.AbsorbHit() {
			t.Fatalf("Hit %d should be absorbed", i+1)
		}
	}
	if inv.AbsorbHit() {
		t.Error("Shield with no charges should not absorb")
	}

	// Re-pickup refreshes charges to full
	inv.AddPowerup(PowerupShield, 0, 50)
	if inv.ShieldLeft != ShieldCharges {
		t.Errorf("Shield pickup should refill to %d charges, got %d", ShieldCharges, inv.ShieldLeft)
	}

	// Ticking never expires the shield; it is not a timed effect
	inv.Tick(1000000)
	if !inv.Has(PowerupShield) {
		t.Error("Shield should persist regardless of elapsed ticks")
	}
}

func TestEmptyInventoryFiresNothing(t *testing.T) {
	inv := NewInventory()

	if inv.ActiveWeapon().Pellets != 0 {
		t.Error("Empty inventory should yield a weapon spec that fires nothing")
	}
	if inv.SpeedMult() != 1.0 || inv.DamageMult() != 1.0 {
		t.Error("No powerups should mean neutral multipliers")
	}
}
