package domain

// Material identifies an item type together with its stacking and wear
// limits. The zero value is "no material" and is rejected everywhere a
// material is required; MaterialAir is the explicit placeholder type used
// for empty stacks.
type Material struct {
	Name          string `json:"name"`
	MaxStack      int    `json:"max_stack"`
	MaxDurability int16  `json:"max_durability"`
}

// MaterialAir is the placeholder material for an empty stack.
var MaterialAir = Material{Name: "air", MaxStack: 0, MaxDurability: 0}

// IsZero reports whether the material is the absent value.
func (m Material) IsZero() bool {
	return m.Name == ""
}

// IsAir reports whether the material is the empty-stack placeholder.
func (m Material) IsAir() bool {
	return m.Name == MaterialAir.Name
}
