package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
)

var (
	equipSlot   string
	equipItemID string
)

var equipCmd = &cobra.Command{
	Use:   "equip",
	Short: "Equip or clear one loadout slot",
	Long:  `Equip a catalog item into a loadout slot. Leaving --item-id empty clears the slot.`,
	RunE:  runEquip,
}

func init() {
	equipCmd.Flags().StringVar(&equipSlot, "slot", "", "Loadout slot, e.g. active_item, chest, lantern (required)")
	equipCmd.Flags().StringVar(&equipItemID, "item-id", "", "Catalog item ID (empty unequips)")
	_ = equipCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init
}

func runEquip(_ *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	log.Printf("Equipping %q into %s for %s...", equipItemID, equipSlot, entityID)

	req := &v1alpha1.EquipRequest{
		EntityID: entityID,
		Slot:     equipSlot,
		ItemID:   equipItemID,
	}

	var resp v1alpha1.EquipResponse
	if err := invoke(v1alpha1.MethodEquip, req, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(&resp)
	}

	if resp.Previous != nil {
		fmt.Printf("Replaced %s\n\n", resp.Previous.ID)
	}
	printCombatant(resp.Combatant)
	return nil
}
