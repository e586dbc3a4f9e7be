package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
)

var (
	abilitySlot string
	airborne    bool
)

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Activate the ability in a slot",
	Long:  `Run the energy gate for the ability bound to a slot (ability1..ability5, block, dodge) and start it.`,
	RunE:  runActivate,
}

func init() {
	activateCmd.Flags().StringVar(&abilitySlot, "slot", "ability1", "Ability slot")
	activateCmd.Flags().BoolVar(&airborne, "airborne", false, "Activate while in the air")
	activateCmd.Flags().StringVar(&bodyKind, "body", string(physics.BodyHumanoid), "Body kind")
}

func runActivate(_ *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	log.Printf("Activating %s for %s...", abilitySlot, entityID)

	req := &v1alpha1.ActivateAbilityRequest{
		EntityID: entityID,
		Slot:     abilitySlot,
		Physics: physics.Snapshot{
			OnGround: !airborne,
			Body:     physics.Body{Kind: physics.BodyKind(bodyKind)},
		},
	}

	var resp v1alpha1.ActivateAbilityResponse
	if err := invoke(v1alpha1.MethodActivateAbility, req, &resp); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(&resp)
	}

	if !resp.Started {
		fmt.Printf("Not started: %s (energy %d)\n", resp.Reason, resp.Energy)
		return nil
	}
	fmt.Printf("Started %s [%s], energy %d\n", resp.Type, resp.ExecutionID, resp.Energy)
	return nil
}
