package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a combatant",
	RunE:  runGet,
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap the active and second weapons",
	RunE:  runSwap,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a combatant from the runtime",
	Long:  `Remove a combatant from the runtime. Its stored loadout is kept for the next registration.`,
	RunE:  runRemove,
}

func runGet(_ *cobra.Command, _ []string) error {
	return callEnvelope(v1alpha1.MethodGetCombatant)
}

func runSwap(_ *cobra.Command, _ []string) error {
	log.Printf("Swapping weapons for %s...", entityID)
	return callEnvelope(v1alpha1.MethodSwapWeapons)
}

func runRemove(_ *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	var resp map[string]interface{}
	if err := invoke(v1alpha1.MethodRemoveCombatant, &v1alpha1.EntityRequest{EntityID: entityID}, &resp); err != nil {
		return err
	}

	fmt.Printf("Combatant %s removed\n", entityID)
	return nil
}

func callEnvelope(method string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	var resp v1alpha1.CombatantEnvelope
	if err := invoke(method, &v1alpha1.EntityRequest{EntityID: entityID}, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(&resp)
	}
	printCombatant(resp.Combatant)
	return nil
}
