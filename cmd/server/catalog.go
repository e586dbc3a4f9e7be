package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-abilities/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and check catalog content",
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema [name]",
	Short: "Print the JSON schema for an item or an ability kind",
	Long: `Print the JSON schema catalog authors validate against. Without a name the
available schema names are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogSchema,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Load a catalog file and report every problem",
	Long:  `Load a catalog file the same way the server does. Defaults to catalog.path from config.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogSchemaCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogSchema(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range catalog.SchemaNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	schema, err := catalog.Schema(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := viper.GetString(keyCatalogPath)
	if len(args) == 1 {
		path = args[0]
	}

	c, err := catalog.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d abilities, %d items\n", path, len(c.AbilityIDs()), len(c.ItemIDs()))
	for _, id := range c.ItemIDs() {
		it, err := c.Item(id)
		if err != nil {
			return err
		}
		if !it.IsTool() {
			fmt.Fprintf(out, "  %-20s %s\n", id, it.Kind)
			continue
		}
		names := make([]string, 0, len(it.Tool.Abilities))
		for _, entry := range it.Tool.Abilities {
			names = append(names, entry.Ability.Kind().String())
		}
		fmt.Fprintf(out, "  %-20s %s %v\n", id, it.Kind, names)
	}
	return nil
}
