package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainttx/itemforge/internal/domain"
)

var (
	testSword = domain.Material{Name: "diamond_sword", MaxStack: 1, MaxDurability: 1561}
	testStone = domain.Material{Name: "stone", MaxStack: 64}

	testSharpness = domain.Enchantment{Name: "sharpness", StartLevel: 1, MaxLevel: 5}
	testLooting   = domain.Enchantment{Name: "looting", StartLevel: 1, MaxLevel: 3}
)

func TestNew(t *testing.T) {
	t.Run("defaults to a single air stack", func(t *testing.T) {
		s := New().Build()

		assert.True(t, s.Material.IsAir())
		assert.Equal(t, 1, s.Amount)
		assert.Equal(t, int16(0), s.Durability)
		assert.False(t, s.Meta.HasDisplayName())
		assert.False(t, s.Meta.HasLore())
		assert.Empty(t, s.Meta.Enchantments)
		assert.Empty(t, s.Meta.Flags)
	})

	t.Run("material only defaults amount and durability", func(t *testing.T) {
		b, err := NewWithMaterial(testStone)
		require.NoError(t, err)

		s := b.Build()
		assert.Equal(t, testStone, s.Material)
		assert.Equal(t, 1, s.Amount)
		assert.Equal(t, int16(0), s.Durability)
	})

	t.Run("material and amount default durability", func(t *testing.T) {
		b, err := NewWithAmount(testStone, 32)
		require.NoError(t, err)

		s := b.Build()
		assert.Equal(t, 32, s.Amount)
		assert.Equal(t, int16(0), s.Durability)
	})

	t.Run("full specification is kept verbatim", func(t *testing.T) {
		b, err := NewWithDurability(testSword, 1, 250)
		require.NoError(t, err)

		s := b.Build()
		assert.Equal(t, testSword, s.Material)
		assert.Equal(t, 1, s.Amount)
		assert.Equal(t, int16(250), s.Durability)
	})

	t.Run("every constructor rejects an absent material", func(t *testing.T) {
		_, err := NewWithMaterial(domain.Material{})
		assert.ErrorIs(t, err, domain.ErrInvalidMaterial)

		_, err = NewWithAmount(domain.Material{}, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidMaterial)

		_, err = NewWithDurability(domain.Material{}, 5, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidMaterial)
	})
}

func TestBuilderSetters(t *testing.T) {
	t.Run("SetMaterial replaces the material", func(t *testing.T) {
		b := New()
		b, err := b.SetMaterial(testStone)
		require.NoError(t, err)

		assert.Equal(t, testStone, b.Build().Material)
	})

	t.Run("SetMaterial rejects absent material and keeps state", func(t *testing.T) {
		b, err := NewWithMaterial(testStone)
		require.NoError(t, err)

		_, err = b.SetMaterial(domain.Material{})
		assert.ErrorIs(t, err, domain.ErrInvalidMaterial)
		assert.Equal(t, testStone, b.Build().Material, "failed set must not clear the material")
	})

	t.Run("SetAmount and SetDurability replace values", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetAmount(3).SetDurability(77).Build()
		assert.Equal(t, 3, s.Amount)
		assert.Equal(t, int16(77), s.Durability)
	})

	t.Run("negative and zero amounts pass through untouched", func(t *testing.T) {
		// Bounds are the caller's responsibility.
		b, err := NewWithMaterial(testStone)
		require.NoError(t, err)

		assert.Equal(t, -5, b.SetAmount(-5).Build().Amount)
		assert.Equal(t, 0, b.SetAmount(0).Build().Amount)
	})
}

func TestBuilderDisplayName(t *testing.T) {
	t.Run("name is color translated when set", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetDisplayName("&cHello").Build()
		require.True(t, s.Meta.HasDisplayName())
		assert.Equal(t, "§cHello", *s.Meta.DisplayName)
	})

	t.Run("clearing falls back to the default name", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetDisplayName("&cHello").ClearDisplayName().Build()
		assert.False(t, s.Meta.HasDisplayName())
	})
}

func TestBuilderLore(t *testing.T) {
	t.Run("SetLore translates each line", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetLore([]string{"&aLine1", "Line2"}).Build()
		require.True(t, s.Meta.HasLore())
		assert.Equal(t, []string{"§aLine1", "Line2"}, s.Meta.Lore)
	})

	t.Run("nil clears lore entirely", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetLore([]string{"&aLine1"}).SetLore(nil).Build()
		assert.False(t, s.Meta.HasLore())
		assert.Nil(t, s.Meta.Lore)
	})

	t.Run("explicit empty lore is present but empty", func(t *testing.T) {
		// There is a real difference between "no lore" and "lore set to an
		// empty list": the latter overrides any default the consumer has.
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetLore([]string{}).Build()
		assert.True(t, s.Meta.HasLore())
		assert.NotNil(t, s.Meta.Lore)
		assert.Len(t, s.Meta.Lore, 0)
	})

	t.Run("AppendLore keeps call order", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AppendLore("&bX").AppendLore("&bX").Build()
		assert.Equal(t, []string{"§bX", "§bX"}, s.Meta.Lore)
	})

	t.Run("AppendLore with several lines appends in order", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AppendLore("one", "&ctwo").Build()
		assert.Equal(t, []string{"one", "§ctwo"}, s.Meta.Lore)
	})

	t.Run("AppendLore with no lines never initializes the store", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AppendLore().Build()
		assert.False(t, s.Meta.HasLore())
	})

	t.Run("AppendLore after SetLore extends the existing lines", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.SetLore([]string{"first"}).AppendLore("second").Build()
		assert.Equal(t, []string{"first", "second"}, s.Meta.Lore)
	})
}

func TestBuilderEnchantments(t *testing.T) {
	t.Run("last write wins per enchantment", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AddEnchantment(testSharpness, 5).AddEnchantment(testSharpness, 10).Build()
		require.Len(t, s.Meta.Enchantments, 1)
		assert.Equal(t, 10, s.Meta.EnchantLevel(testSharpness), "level 10 exceeds the normal max and must still apply")
	})

	t.Run("absent enchantment is a no-op", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AddEnchantment(domain.Enchantment{}, 3).Build()
		assert.Empty(t, s.Meta.Enchantments)
	})

	t.Run("different enchantments accumulate", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AddEnchantment(testSharpness, 3).AddEnchantment(testLooting, 2).Build()
		assert.Len(t, s.Meta.Enchantments, 2)
		assert.Equal(t, 3, s.Meta.EnchantLevel(testSharpness))
		assert.Equal(t, 2, s.Meta.EnchantLevel(testLooting))
	})
}

func TestBuilderFlags(t *testing.T) {
	t.Run("duplicate flags collapse to one", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AddItemFlag(domain.FlagHideEnchants).AddItemFlag(domain.FlagHideEnchants).Build()
		assert.Equal(t, []domain.ItemFlag{domain.FlagHideEnchants}, s.Meta.Flags)
	})

	t.Run("absent flag is a no-op", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)

		s := b.AddItemFlag("").Build()
		assert.Empty(t, s.Meta.Flags)
	})
}

func TestBuilderRebuild(t *testing.T) {
	t.Run("building twice yields equivalent stacks", func(t *testing.T) {
		b, err := NewWithDurability(testSword, 1, 100)
		require.NoError(t, err)
		b.SetDisplayName("&6Slayer").
			SetLore([]string{"&7A fine blade"}).
			AddEnchantment(testSharpness, 7).
			AddItemFlag(domain.FlagHideEnchants)

		first := b.Build()
		second := b.Build()

		assert.Equal(t, first, second)
	})

	t.Run("built stacks do not share lore storage with the builder", func(t *testing.T) {
		b, err := NewWithMaterial(testSword)
		require.NoError(t, err)
		b.SetLore([]string{"original"})

		first := b.Build()
		b.AppendLore("added later")
		second := b.Build()

		assert.Equal(t, []string{"original"}, first.Meta.Lore)
		assert.Equal(t, []string{"original", "added later"}, second.Meta.Lore)
	})

	t.Run("state persists across builds and can be mutated", func(t *testing.T) {
		b, err := NewWithMaterial(testStone)
		require.NoError(t, err)

		first := b.Build()
		second := b.SetAmount(12).Build()

		assert.Equal(t, 1, first.Amount)
		assert.Equal(t, 12, second.Amount)
	})
}
