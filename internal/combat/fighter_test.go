package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFighterDefaults(t *testing.T) {
	f := NewFighter(Fists(), NoArmor(), nil)

	assert.Equal(t, MaxHealth, f.Health())
	assert.True(t, f.IsAlive())
	assert.Equal(t, 2, f.AttackPower())
	assert.Equal(t, 0, f.Protection())
	assert.Len(t, f.Name(), 8, "unnamed fighters get a short id label")
}

func TestFightersAreDistinct(t *testing.T) {
	a := NewFighter(Fists(), NoArmor(), nil)
	b := NewFighter(Fists(), NoArmor(), nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestLeatherArmorProtection(t *testing.T) {
	f := NewFighter(Fists(), Leather(), nil)
	assert.Equal(t, 3, f.Protection())
}

func TestReceiveDamageSubtractsNetDamage(t *testing.T) {
	f := NewFighter(Fists(), Leather(), nil)

	died := f.ReceiveDamage(4)

	assert.False(t, died)
	assert.Equal(t, 19, f.Health())
}

func TestReceiveDamageFullyAbsorbed(t *testing.T) {
	f := NewFighter(Fists(), Leather(), nil)
	f.ReceiveDamage(3)
	f.ReceiveDamage(2)
	assert.Equal(t, MaxHealth, f.Health())
}

func TestReceiveDamageReportsDeathOnce(t *testing.T) {
	f := NewFighter(Fists(), NoArmor(), nil)

	assert.False(t, f.ReceiveDamage(19))
	assert.True(t, f.ReceiveDamage(1))
	assert.False(t, f.IsAlive())
	assert.False(t, f.ReceiveDamage(4), "already dead")
	assert.Equal(t, -4, f.Health())
}

func TestReceiveHealingCapsAtMax(t *testing.T) {
	f := NewFighter(Fists(), NoArmor(), nil)
	f.ReceiveDamage(5)

	f.ReceiveHealing(3)
	assert.Equal(t, 18, f.Health())

	f.ReceiveHealing(100)
	assert.Equal(t, MaxHealth, f.Health())

	f.ReceiveHealing(-7)
	assert.Equal(t, MaxHealth, f.Health())
}

func TestHealthNeverExceedsMax(t *testing.T) {
	f := NewFighter(Dagger(), Leather(), nil)
	ops := []int{3, -10, 8, -1, 25, -40, 2, -2, 1}
	for _, op := range ops {
		if op > 0 {
			f.ReceiveDamage(op)
		} else {
			f.ReceiveHealing(-op)
		}
		require.LessOrEqual(t, f.Health(), MaxHealth)
	}
}

func TestSwapWeapon(t *testing.T) {
	f := NewFighter(Fists(), NoArmor(), nil)
	f.SwapWeapon(Dagger())
	assert.Equal(t, 4, f.AttackPower())
}

func TestWeaponAndArmorByName(t *testing.T) {
	w, err := WeaponByName("Dagger")
	require.NoError(t, err)
	assert.Equal(t, Dagger(), w)

	w, err = WeaponByName("")
	require.NoError(t, err)
	assert.Equal(t, Fists(), w)

	_, err = WeaponByName("halberd")
	assert.ErrorIs(t, err, ErrUnknownWeapon)

	ar, err := ArmorByName("leather")
	require.NoError(t, err)
	assert.Equal(t, Leather(), ar)

	_, err = ArmorByName("plate")
	assert.ErrorIs(t, err, ErrUnknownArmor)
}

func TestSnapshotIsACopy(t *testing.T) {
	f := NewFighter(Fists(), NoArmor(), nil, WithName("ana"))
	s := f.Snapshot()
	f.ReceiveDamage(5)

	assert.Equal(t, "ana", s.Name)
	assert.Equal(t, MaxHealth, s.Health)
	assert.Equal(t, 15, f.Health())
}

func TestFighterGearAccessors(t *testing.T) {
	f := NewFighter(Dagger(), Leather(), nil, WithName("rogue"))

	assert.Equal(t, Dagger(), f.Weapon())
	assert.Equal(t, Leather(), f.Armor())
	assert.Equal(t, "rogue hp=20 atk=4 def=3", f.String())
}
