// Package stack provides a fluent builder for item stacks. A builder
// accumulates material, amount, durability and display metadata through
// chained setters and produces a finished domain.Stack on demand.
package stack

import (
	"github.com/sainttx/itemforge/internal/chat"
	"github.com/sainttx/itemforge/internal/domain"
)

type enchant struct {
	def   domain.Enchantment
	level int
}

// Builder accumulates the configuration of a single item stack. Builders
// are cheap, single-caller values: construct one, chain mutators, call
// Build. State survives Build, so a builder can be tweaked and rebuilt.
//
// Display names and lore lines are color-translated when they are set or
// appended, not when the stack is built.
type Builder struct {
	material    domain.Material
	amount      int
	durability  int16
	displayName *string
	lore        []string           // nil means no lore; empty non-nil clears it
	ench        map[string]enchant // keyed by enchantment name, last write wins
	flags       map[domain.ItemFlag]struct{}
}

// New creates a builder for an empty air stack of one.
func New() *Builder {
	b, _ := NewWithMaterial(domain.MaterialAir)
	return b
}

// NewWithMaterial creates a builder for a single item of the given material.
func NewWithMaterial(material domain.Material) (*Builder, error) {
	return NewWithAmount(material, 1)
}

// NewWithAmount creates a builder for a stack of the given material and
// amount with no wear.
func NewWithAmount(material domain.Material, amount int) (*Builder, error) {
	return NewWithDurability(material, amount, 0)
}

// NewWithDurability creates a fully specified builder. The material must be
// present; amount and durability are taken as given, bounds are the
// caller's responsibility.
func NewWithDurability(material domain.Material, amount int, durability int16) (*Builder, error) {
	if material.IsZero() {
		return nil, domain.ErrInvalidMaterial
	}
	return &Builder{
		material:   material,
		amount:     amount,
		durability: durability,
	}, nil
}

// SetMaterial replaces the stack's material. An absent material is rejected
// immediately and leaves the builder unchanged.
func (b *Builder) SetMaterial(material domain.Material) (*Builder, error) {
	if material.IsZero() {
		return b, domain.ErrInvalidMaterial
	}
	b.material = material
	return b, nil
}

// SetAmount replaces the stack size.
func (b *Builder) SetAmount(amount int) *Builder {
	b.amount = amount
	return b
}

// SetDurability replaces the wear value.
func (b *Builder) SetDurability(durability int16) *Builder {
	b.durability = durability
	return b
}

// SetDisplayName sets a custom display name. The name is color-translated
// before it is stored.
func (b *Builder) SetDisplayName(name string) *Builder {
	translated := chat.Translate(chat.AltChar, name)
	b.displayName = &translated
	return b
}

// ClearDisplayName removes any custom display name, so the built stack
// falls back to the material's default name.
func (b *Builder) ClearDisplayName() *Builder {
	b.displayName = nil
	return b
}

// SetLore replaces the lore. A nil slice removes lore entirely; a non-nil
// slice replaces it, so an empty non-nil slice yields a stack with an
// explicitly empty lore list. Each line is color-translated as it is
// stored.
func (b *Builder) SetLore(lines []string) *Builder {
	if lines == nil {
		b.lore = nil
		return b
	}

	b.lore = make([]string, 0, len(lines))
	for _, line := range lines {
		b.lore = append(b.lore, chat.Translate(chat.AltChar, line))
	}
	return b
}

// AppendLore appends color-translated lines to the lore, initializing the
// lore store on the first line. Calling it with no arguments is a no-op
// and never initializes the store.
func (b *Builder) AppendLore(lines ...string) *Builder {
	for _, line := range lines {
		if b.lore == nil {
			b.lore = make([]string, 0, len(lines))
		}
		b.lore = append(b.lore, chat.Translate(chat.AltChar, line))
	}
	return b
}

// AddEnchantment sets the level for an enchantment, overwriting any level
// previously stored for the same enchantment name. An absent enchantment
// is a no-op.
func (b *Builder) AddEnchantment(e domain.Enchantment, level int) *Builder {
	if e.IsZero() {
		return b
	}
	if b.ench == nil {
		b.ench = make(map[string]enchant)
	}
	b.ench[e.Name] = enchant{def: e, level: level}
	return b
}

// AddItemFlag adds a display flag. Absent flags are ignored and adding a
// flag twice has no further effect.
func (b *Builder) AddItemFlag(flag domain.ItemFlag) *Builder {
	if flag == "" {
		return b
	}
	if b.flags == nil {
		b.flags = make(map[domain.ItemFlag]struct{})
	}
	b.flags[flag] = struct{}{}
	return b
}

// Build materializes the accumulated configuration into a Stack. The
// returned value shares no storage with the builder, so further builder
// mutation never reaches an already built stack.
//
// Enchantments are applied with the restriction bypass set: levels outside
// an enchantment's normal range are stored as given.
func (b *Builder) Build() domain.Stack {
	s := domain.Stack{
		Material:   b.material,
		Amount:     b.amount,
		Durability: b.durability,
	}

	if b.displayName != nil {
		name := *b.displayName
		s.Meta.DisplayName = &name
	}

	if b.lore != nil {
		s.Meta.Lore = make([]string, len(b.lore))
		copy(s.Meta.Lore, b.lore)
	}

	for _, e := range b.ench {
		// Unsafe application: the bypass skips the level range check, and
		// absent enchantments never make it into the map.
		_ = s.Meta.AddEnchant(e.def, e.level, true)
	}

	if len(b.flags) > 0 {
		all := make([]domain.ItemFlag, 0, len(b.flags))
		for f := range b.flags {
			all = append(all, f)
		}
		s.Meta.AddItemFlags(all...)
	}

	return s
}
