// Package registry loads the material and enchantment definition files and
// resolves the names and aliases callers use into canonical domain values.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sainttx/itemforge/internal/domain"
	"github.com/sainttx/itemforge/internal/validation"
)

// Definition file names, resolved relative to the config directory.
const (
	MaterialsFileName    = "materials.json"
	EnchantmentsFileName = "enchantments.json"
)

//go:embed schemas/materials.schema.json
var materialsSchema []byte

//go:embed schemas/enchantments.schema.json
var enchantmentsSchema []byte

// MaterialDef is a single material definition in materials.json.
type MaterialDef struct {
	InternalName  string   `json:"internal_name"`
	DisplayName   string   `json:"display_name,omitempty"` // derived from internal_name when empty
	MaxStack      int      `json:"max_stack"`
	MaxDurability int16    `json:"max_durability"`
	Aliases       []string `json:"aliases,omitempty"`
}

// EnchantmentDef is a single enchantment definition in enchantments.json.
type EnchantmentDef struct {
	InternalName string   `json:"internal_name"`
	DisplayName  string   `json:"display_name,omitempty"`
	StartLevel   int      `json:"start_level"`
	MaxLevel     int      `json:"max_level"`
	Aliases      []string `json:"aliases,omitempty"`
}

// Config is the combined parsed content of the definition files.
type Config struct {
	Version      string           `json:"version"`
	Description  string           `json:"description"`
	Materials    []MaterialDef    `json:"materials"`
	Enchantments []EnchantmentDef `json:"enchantments"`
}

// Loader handles loading and validating the definition files.
type Loader interface {
	Load(dir string) (*Config, error)
	Validate(config *Config) error
}

type defLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &defLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses the materials and enchantments files from dir.
// Each file is checked against its schema before it is decoded.
func (l *defLoader) Load(dir string) (*Config, error) {
	config := &Config{}

	matPath := filepath.Join(dir, MaterialsFileName)
	matData, err := os.ReadFile(matPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read materials file: %w", err)
	}
	if err := l.schemaValidator.ValidateBytes(matData, materialsSchema, MaterialsFileName); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", matPath, err)
	}
	var matFile struct {
		Version     string        `json:"version"`
		Description string        `json:"description"`
		Materials   []MaterialDef `json:"materials"`
	}
	if err := json.Unmarshal(matData, &matFile); err != nil {
		return nil, fmt.Errorf("failed to parse materials file: %w", err)
	}
	config.Version = matFile.Version
	config.Description = matFile.Description
	config.Materials = matFile.Materials

	enchPath := filepath.Join(dir, EnchantmentsFileName)
	enchData, err := os.ReadFile(enchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enchantments file: %w", err)
	}
	if err := l.schemaValidator.ValidateBytes(enchData, enchantmentsSchema, EnchantmentsFileName); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", enchPath, err)
	}
	var enchFile struct {
		Enchantments []EnchantmentDef `json:"enchantments"`
	}
	if err := json.Unmarshal(enchData, &enchFile); err != nil {
		return nil, fmt.Errorf("failed to parse enchantments file: %w", err)
	}
	config.Enchantments = enchFile.Enchantments

	return config, nil
}

// Validate checks the definition configuration for errors the schemas
// cannot express: duplicate names, alias collisions and inverted level
// ranges.
func (l *defLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", domain.ErrInvalidConfig)
	}

	if len(config.Materials) == 0 {
		return fmt.Errorf("%w: no materials defined", domain.ErrInvalidConfig)
	}

	// Materials and enchantments are separate namespaces, so each gets its
	// own duplicate tracker.
	seenMaterials := make(map[string]bool, len(config.Materials))
	for i := range config.Materials {
		if err := validateMaterialDef(i, &config.Materials[i], seenMaterials); err != nil {
			return err
		}
	}

	seenEnchantments := make(map[string]bool, len(config.Enchantments))
	for i := range config.Enchantments {
		if err := validateEnchantmentDef(i, &config.Enchantments[i], seenEnchantments); err != nil {
			return err
		}
	}

	return nil
}

func validateMaterialDef(index int, def *MaterialDef, seen map[string]bool) error {
	if def.InternalName == "" {
		return fmt.Errorf("%w: material at index %d has empty internal_name", domain.ErrInvalidConfig, index)
	}
	if seen[def.InternalName] {
		return fmt.Errorf("%w: '%s'", domain.ErrDuplicateInternalName, def.InternalName)
	}
	seen[def.InternalName] = true

	if def.MaxStack < 0 {
		return fmt.Errorf("%w: material '%s' has negative max_stack", domain.ErrInvalidConfig, def.InternalName)
	}
	if def.MaxDurability < 0 {
		return fmt.Errorf("%w: material '%s' has negative max_durability", domain.ErrInvalidConfig, def.InternalName)
	}

	for _, alias := range def.Aliases {
		if alias == "" {
			return fmt.Errorf("%w: material '%s' has empty alias", domain.ErrInvalidConfig, def.InternalName)
		}
		if seen[alias] {
			return fmt.Errorf("%w: alias '%s'", domain.ErrDuplicateInternalName, alias)
		}
		seen[alias] = true
	}

	return nil
}

func validateEnchantmentDef(index int, def *EnchantmentDef, seen map[string]bool) error {
	if def.InternalName == "" {
		return fmt.Errorf("%w: enchantment at index %d has empty internal_name", domain.ErrInvalidConfig, index)
	}
	if seen[def.InternalName] {
		return fmt.Errorf("%w: '%s'", domain.ErrDuplicateInternalName, def.InternalName)
	}
	seen[def.InternalName] = true

	if def.StartLevel < 0 || def.MaxLevel < 0 {
		return fmt.Errorf("%w: enchantment '%s' has negative level bound", domain.ErrInvalidConfig, def.InternalName)
	}
	if def.MaxLevel < def.StartLevel {
		return fmt.Errorf("%w: enchantment '%s' has max_level below start_level", domain.ErrInvalidConfig, def.InternalName)
	}

	for _, alias := range def.Aliases {
		if alias == "" {
			return fmt.Errorf("%w: enchantment '%s' has empty alias", domain.ErrInvalidConfig, def.InternalName)
		}
		if seen[alias] {
			return fmt.Errorf("%w: alias '%s'", domain.ErrDuplicateInternalName, alias)
		}
		seen[alias] = true
	}

	return nil
}
