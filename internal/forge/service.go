// Package forge turns name-based stack requests into built item stacks. It
// sits between the transport layers and the builder: names are resolved
// through the registry, then the builder assembles the stack.
package forge

import (
	"context"
	"fmt"

	"github.com/sainttx/itemforge/internal/domain"
	"github.com/sainttx/itemforge/internal/logger"
	"github.com/sainttx/itemforge/internal/metrics"
	"github.com/sainttx/itemforge/internal/registry"
	"github.com/sainttx/itemforge/internal/stack"
)

// Spec describes a requested stack by name. DisplayName nil keeps the
// material's default name. Lore nil means no lore; an empty non-nil slice
// requests an explicitly empty lore list.
type Spec struct {
	Material     string
	Amount       int
	Durability   int16
	DisplayName  *string
	Lore         []string
	Enchantments map[string]int
	Flags        []string
}

// Service builds stacks from name-based specs.
type Service interface {
	BuildStack(ctx context.Context, spec Spec) (domain.Stack, error)
	DefaultDisplay(m domain.Material) string
}

type service struct {
	reg *registry.Registry
}

// NewService creates a new Service backed by the given registry.
func NewService(reg *registry.Registry) Service {
	return &service{reg: reg}
}

// BuildStack resolves every name in the spec and runs the result through
// the stack builder. Enchantment levels are applied as given, including
// levels above an enchantment's normal maximum.
func (s *service) BuildStack(ctx context.Context, spec Spec) (domain.Stack, error) {
	log := logger.FromContext(ctx)

	material, err := s.reg.Material(spec.Material)
	if err != nil {
		metrics.UnknownNameLookups.WithLabelValues("material").Inc()
		return domain.Stack{}, err
	}

	b, err := stack.NewWithDurability(material, spec.Amount, spec.Durability)
	if err != nil {
		return domain.Stack{}, err
	}

	if spec.DisplayName != nil {
		b.SetDisplayName(*spec.DisplayName)
	}
	b.SetLore(spec.Lore)

	for name, level := range spec.Enchantments {
		e, err := s.reg.Enchantment(name)
		if err != nil {
			metrics.UnknownNameLookups.WithLabelValues("enchantment").Inc()
			return domain.Stack{}, err
		}
		b.AddEnchantment(e, level)
	}

	for _, name := range spec.Flags {
		flag, ok := domain.ParseItemFlag(name)
		if !ok {
			metrics.UnknownNameLookups.WithLabelValues("flag").Inc()
			return domain.Stack{}, fmt.Errorf("%w: '%s'", domain.ErrUnknownItemFlag, name)
		}
		b.AddItemFlag(flag)
	}

	built := b.Build()
	metrics.StacksBuilt.WithLabelValues(built.Material.Name).Inc()

	log.Debug("Built stack",
		"material", built.Material.Name,
		"amount", built.Amount,
		"enchantments", len(built.Meta.Enchantments),
		"flags", len(built.Meta.Flags))

	return built, nil
}

// DefaultDisplay returns the registry's default display name for a
// material.
func (s *service) DefaultDisplay(m domain.Material) string {
	return s.reg.DefaultDisplay(m)
}
