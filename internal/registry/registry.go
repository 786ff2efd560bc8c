package registry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sainttx/itemforge/internal/domain"
)

// resolveCacheSize bounds the lookup cache; lookups are keyed by the raw
// caller-supplied name, so the cache also absorbs repeated alias and
// mixed-case hits.
const (
	resolveCacheSize = 256
	resolveCacheTTL  = 10 * time.Minute
)

// Registry holds the loaded material and enchantment definitions and
// resolves caller-supplied names (case-insensitive, aliases included) into
// canonical domain values. A registry is read-only after New and safe for
// concurrent use.
type Registry struct {
	materials map[string]domain.Material
	enchants  map[string]domain.Enchantment

	materialDisplay map[string]string
	enchantDisplay  map[string]string
	materialAliases map[string]string
	enchantAliases  map[string]string

	materialCache *expirable.LRU[string, domain.Material]

	titleCaser cases.Caser
}

// New builds a registry from a validated definition config. The air
// material is always present, whether or not the config defines it.
func New(config *Config) (*Registry, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", domain.ErrInvalidConfig)
	}

	r := &Registry{
		materials:       make(map[string]domain.Material, len(config.Materials)+1),
		enchants:        make(map[string]domain.Enchantment, len(config.Enchantments)),
		materialDisplay: make(map[string]string, len(config.Materials)+1),
		enchantDisplay:  make(map[string]string, len(config.Enchantments)),
		materialAliases: make(map[string]string),
		enchantAliases:  make(map[string]string),
		materialCache:   expirable.NewLRU[string, domain.Material](resolveCacheSize, nil, resolveCacheTTL),
		titleCaser:      cases.Title(language.English),
	}

	r.materials[domain.MaterialAir.Name] = domain.MaterialAir
	r.materialDisplay[domain.MaterialAir.Name] = r.deriveDisplay(domain.MaterialAir.Name)

	for _, def := range config.Materials {
		name := strings.ToLower(def.InternalName)
		r.materials[name] = domain.Material{
			Name:          name,
			MaxStack:      def.MaxStack,
			MaxDurability: def.MaxDurability,
		}
		display := def.DisplayName
		if display == "" {
			display = r.deriveDisplay(name)
		}
		r.materialDisplay[name] = display
		for _, alias := range def.Aliases {
			r.materialAliases[strings.ToLower(alias)] = name
		}
	}

	for _, def := range config.Enchantments {
		name := strings.ToLower(def.InternalName)
		r.enchants[name] = domain.Enchantment{
			Name:       name,
			StartLevel: def.StartLevel,
			MaxLevel:   def.MaxLevel,
		}
		display := def.DisplayName
		if display == "" {
			display = r.deriveDisplay(name)
		}
		r.enchantDisplay[name] = display
		for _, alias := range def.Aliases {
			r.enchantAliases[strings.ToLower(alias)] = name
		}
	}

	return r, nil
}

// Material resolves a material by internal name or alias,
// case-insensitively. Resolutions are served from an LRU cache keyed by the
// raw input.
func (r *Registry) Material(name string) (domain.Material, error) {
	if m, ok := r.materialCache.Get(name); ok {
		return m, nil
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := r.materialAliases[key]; ok {
		key = canonical
	}

	m, ok := r.materials[key]
	if !ok {
		return domain.Material{}, fmt.Errorf("%w: '%s'", domain.ErrUnknownMaterial, name)
	}

	r.materialCache.Add(name, m)
	return m, nil
}

// Enchantment resolves an enchantment by internal name or alias,
// case-insensitively.
func (r *Registry) Enchantment(name string) (domain.Enchantment, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := r.enchantAliases[key]; ok {
		key = canonical
	}

	e, ok := r.enchants[key]
	if !ok {
		return domain.Enchantment{}, fmt.Errorf("%w: '%s'", domain.ErrUnknownEnchantment, name)
	}
	return e, nil
}

// DefaultDisplay returns the default display name for a material: the
// configured display_name, or a title-cased rendering of the internal name
// when none was configured.
func (r *Registry) DefaultDisplay(m domain.Material) string {
	if display, ok := r.materialDisplay[m.Name]; ok {
		return display
	}
	return r.deriveDisplay(m.Name)
}

// EnchantmentDisplay returns the display name for an enchantment, derived
// from the internal name when none was configured.
func (r *Registry) EnchantmentDisplay(e domain.Enchantment) string {
	if display, ok := r.enchantDisplay[e.Name]; ok {
		return display
	}
	return r.deriveDisplay(e.Name)
}

// MaterialNames returns the sorted canonical material names.
func (r *Registry) MaterialNames() []string {
	names := make([]string, 0, len(r.materials))
	for name := range r.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// deriveDisplay turns an internal name like "golden_apple" into "Golden
// Apple".
func (r *Registry) deriveDisplay(internalName string) string {
	return r.titleCaser.String(strings.ReplaceAll(internalName, "_", " "))
}
