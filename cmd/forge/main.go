// Command forge is a small CLI for building and inspecting item stacks
// from the command line, using the same registry and builder as the server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sainttx/itemforge/internal/chat"
	"github.com/sainttx/itemforge/internal/domain"
	"github.com/sainttx/itemforge/internal/forge"
	"github.com/sainttx/itemforge/internal/logger"
	"github.com/sainttx/itemforge/internal/registry"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Build item stacks from material and enchantment definitions.",
}

var (
	configDir    string
	materialName string
	amount       int
	durability   int16
	displayName  string
	loreLines    []string
	enchantArgs  []string
	flagNames    []string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a single stack and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		loader := registry.NewLoader()
		defs, err := loader.Load(configDir)
		if err != nil {
			return fmt.Errorf("load definitions: %w", err)
		}
		if err := loader.Validate(defs); err != nil {
			return fmt.Errorf("validate definitions: %w", err)
		}
		reg, err := registry.New(defs)
		if err != nil {
			return err
		}

		spec := forge.Spec{
			Material:   materialName,
			Amount:     amount,
			Durability: durability,
			Flags:      flagNames,
		}
		if cmd.Flags().Changed("name") {
			spec.DisplayName = &displayName
		}
		if cmd.Flags().Changed("lore") {
			spec.Lore = loreLines
		}

		if len(enchantArgs) > 0 {
			spec.Enchantments = make(map[string]int, len(enchantArgs))
			for _, arg := range enchantArgs {
				name, level, err := parseEnchantArg(arg)
				if err != nil {
					return err
				}
				spec.Enchantments[name] = level
			}
		}

		svc := forge.NewService(reg)
		built, err := svc.BuildStack(context.Background(), spec)
		if err != nil {
			return err
		}

		printStack(cmd.OutOrStdout(), built, svc)
		return nil
	},
}

// parseEnchantArg splits a "name=level" argument.
func parseEnchantArg(arg string) (string, int, error) {
	name, levelStr, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid enchantment %q, expected name=level", arg)
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid enchantment level in %q: %w", arg, err)
	}
	return name, level, nil
}

// printStack writes a plain-text rendering of the stack. Formatting codes
// are stripped so the output stays readable in a terminal.
func printStack(w io.Writer, s domain.Stack, svc forge.Service) {
	name := svc.DefaultDisplay(s.Material)
	if s.Meta.HasDisplayName() {
		name = chat.Strip(*s.Meta.DisplayName)
	}

	fmt.Fprintf(w, "%s x%d (%s", name, s.Amount, s.Material.Name)
	if s.Durability != 0 {
		fmt.Fprintf(w, ", durability %d", s.Durability)
	}
	fmt.Fprintln(w, ")")

	if s.Meta.HasLore() {
		for _, line := range s.Meta.Lore {
			fmt.Fprintf(w, "  | %s\n", chat.Strip(line))
		}
	}

	if len(s.Meta.Enchantments) > 0 {
		names := make([]string, 0, len(s.Meta.Enchantments))
		byName := make(map[string]int, len(s.Meta.Enchantments))
		for e, level := range s.Meta.Enchantments {
			names = append(names, e.Name)
			byName[e.Name] = level
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(w, "  + %s %d\n", n, byName[n])
		}
	}

	for _, f := range s.Meta.Flags {
		fmt.Fprintf(w, "  ~ %s\n", f)
	}
}

func init() {
	buildCmd.Flags().StringVar(&configDir, "config", "configs", "directory holding materials.json and enchantments.json")
	buildCmd.Flags().StringVar(&materialName, "material", "", "material name or alias (required)")
	buildCmd.Flags().IntVar(&amount, "amount", 1, "stack size")
	buildCmd.Flags().Int16Var(&durability, "durability", 0, "wear value")
	buildCmd.Flags().StringVar(&displayName, "name", "", "display name, & color codes allowed")
	buildCmd.Flags().StringArrayVar(&loreLines, "lore", nil, "lore line, repeatable")
	buildCmd.Flags().StringArrayVar(&enchantArgs, "enchant", nil, "enchantment as name=level, repeatable")
	buildCmd.Flags().StringArrayVar(&flagNames, "flag", nil, "item flag, repeatable")
	_ = buildCmd.MarkFlagRequired("material")

	rootCmd.AddCommand(buildCmd)
}

func main() {
	logger.Init(logger.DefaultConfig())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
