package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
)

var (
	bodyKind     string
	maxEnergy    int32
	activeItemID string
	secondItemID string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a combatant",
	Long:  `Register a combatant with a full energy pool. A stored loadout is restored; otherwise the named weapons are equipped.`,
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&bodyKind, "body", string(physics.BodyHumanoid), "Body kind")
	registerCmd.Flags().Int32Var(&maxEnergy, "max-energy", 0, "Energy pool size (0 uses the server default)")
	registerCmd.Flags().StringVar(&activeItemID, "active-item", "", "Catalog tool for the active weapon slot")
	registerCmd.Flags().StringVar(&secondItemID, "second-item", "", "Catalog tool for the second weapon slot")
}

func runRegister(_ *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	log.Printf("Registering combatant %s with %s...", entityID, serverAddr)

	req := &v1alpha1.RegisterCombatantRequest{
		EntityID:     entityID,
		Body:         physics.Body{Kind: physics.BodyKind(bodyKind)},
		MaxEnergy:    maxEnergy,
		ActiveItemID: activeItemID,
		SecondItemID: secondItemID,
	}

	var resp v1alpha1.RegisterCombatantResponse
	if err := invoke(v1alpha1.MethodRegisterCombatant, req, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(&resp)
	}

	if resp.Restored {
		fmt.Printf("Combatant registered with its stored loadout\n\n")
	} else {
		fmt.Printf("Combatant registered\n\n")
	}
	printCombatant(resp.Combatant)
	return nil
}
