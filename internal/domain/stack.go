package domain

import (
	"fmt"
	"sort"
)

// Stack is a finished in-game item: a material, a count, a wear value and
// the display metadata attached to it. Stacks are plain values; once built
// they are not mutated by this module.
type Stack struct {
	Material   Material `json:"material"`
	Amount     int      `json:"amount"`
	Durability int16    `json:"durability"`
	Meta       Meta     `json:"meta"`
}

// Meta holds the optional display metadata of a stack.
//
// DisplayName nil means "use the material's default name". Lore nil means
// "no lore"; a non-nil empty slice is an explicitly empty lore list and is
// observably different from nil.
type Meta struct {
	DisplayName  *string             `json:"display_name,omitempty"`
	Lore         []string            `json:"lore,omitempty"`
	Enchantments map[Enchantment]int `json:"-"`
	Flags        []ItemFlag          `json:"flags,omitempty"`
}

// HasDisplayName reports whether a custom display name is set.
func (m *Meta) HasDisplayName() bool {
	return m.DisplayName != nil
}

// HasLore reports whether lore is present, including the explicitly empty
// list.
func (m *Meta) HasLore() bool {
	return m.Lore != nil
}

// AddEnchant applies an enchantment at the given level. With
// ignoreRestrictions false the level must fall inside the enchantment's
// normal range; true bypasses the range check entirely (the "unsafe"
// application path). Later calls for the same enchantment overwrite the
// stored level.
func (m *Meta) AddEnchant(e Enchantment, level int, ignoreRestrictions bool) error {
	if e.IsZero() {
		return ErrUnknownEnchantment
	}
	if !ignoreRestrictions && !e.AllowsLevel(level) {
		return fmt.Errorf("%w: %s level %d not in [%d, %d]",
			ErrLevelRestricted, e.Name, level, e.StartLevel, e.MaxLevel)
	}
	if m.Enchantments == nil {
		m.Enchantments = make(map[Enchantment]int)
	}
	m.Enchantments[e] = level
	return nil
}

// EnchantLevel returns the stored level for an enchantment, or 0 when it is
// not applied.
func (m *Meta) EnchantLevel(e Enchantment) int {
	return m.Enchantments[e]
}

// AddItemFlags adds display flags to the metadata. Empty flags are skipped
// and duplicates collapse; the stored order is sorted so repeated builds
// produce identical metadata.
func (m *Meta) AddItemFlags(flags ...ItemFlag) {
	for _, f := range flags {
		if f == "" || m.HasItemFlag(f) {
			continue
		}
		m.Flags = append(m.Flags, f)
	}
	sort.Slice(m.Flags, func(i, j int) bool { return m.Flags[i] < m.Flags[j] })
}

// HasItemFlag reports whether a flag is present.
func (m *Meta) HasItemFlag(flag ItemFlag) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
