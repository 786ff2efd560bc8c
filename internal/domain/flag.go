package domain

// ItemFlag is a boolean display toggle on an item's metadata. The empty
// string is "no flag" and is ignored wherever a flag is accepted.
type ItemFlag string

// The conventional display flags.
const (
	FlagHideEnchants      ItemFlag = "hide_enchants"
	FlagHideAttributes    ItemFlag = "hide_attributes"
	FlagHideUnbreakable   ItemFlag = "hide_unbreakable"
	FlagHideDestroys      ItemFlag = "hide_destroys"
	FlagHidePlacedOn      ItemFlag = "hide_placed_on"
	FlagHidePotionEffects ItemFlag = "hide_potion_effects"
)

// KnownItemFlags lists every flag the module recognizes.
var KnownItemFlags = []ItemFlag{
	FlagHideEnchants,
	FlagHideAttributes,
	FlagHideUnbreakable,
	FlagHideDestroys,
	FlagHidePlacedOn,
	FlagHidePotionEffects,
}

// ParseItemFlag resolves a flag name to a known flag.
// Returns ("", false) for unknown names.
func ParseItemFlag(name string) (ItemFlag, bool) {
	for _, f := range KnownItemFlags {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}
