package domain

// Enchantment identifies a named item modifier and its allowed level range.
// The zero value is "no enchantment". Identity for map keys is the full
// value; registries hand out canonical values so equal names compare equal.
type Enchantment struct {
	Name       string `json:"name"`
	StartLevel int    `json:"start_level"`
	MaxLevel   int    `json:"max_level"`
}

// IsZero reports whether the enchantment is the absent value.
func (e Enchantment) IsZero() bool {
	return e.Name == ""
}

// AllowsLevel reports whether level falls inside the enchantment's normal
// range. Unsafe application paths skip this check.
func (e Enchantment) AllowsLevel(level int) bool {
	return level >= e.StartLevel && level <= e.MaxLevel
}
