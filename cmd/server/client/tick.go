package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-abilities/internal/entities/physics"
	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
)

var (
	tickDt       time.Duration
	tickCount    int
	tickHeld     bool
	tickFollowUp bool
)

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Advance a combatant's running ability",
	Long:  `Send one or more ticks for a combatant. Ticking stops early once the ability ends.`,
	RunE:  runTick,
}

func init() {
	tickCmd.Flags().DurationVar(&tickDt, "dt", time.Second/60, "Tick length")
	tickCmd.Flags().IntVar(&tickCount, "count", 1, "Number of ticks to send")
	tickCmd.Flags().BoolVar(&tickHeld, "held", false, "Hold the ability input")
	tickCmd.Flags().BoolVar(&tickFollowUp, "follow-up", false, "Press follow-up on the first tick")
	tickCmd.Flags().BoolVar(&airborne, "airborne", false, "Tick while in the air")
	tickCmd.Flags().StringVar(&bodyKind, "body", string(physics.BodyHumanoid), "Body kind")
}

func runTick(_ *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	for i := 0; i < tickCount; i++ {
		req := &v1alpha1.TickRequest{
			EntityID: entityID,
			DtMs:     float64(tickDt) / float64(time.Millisecond),
			Held:     tickHeld,
			FollowUp: tickFollowUp && i == 0,
			Physics: physics.Snapshot{
				OnGround: !airborne,
				Body:     physics.Body{Kind: physics.BodyKind(bodyKind)},
			},
		}

		var resp v1alpha1.TickResponse
		if err := invoke(v1alpha1.MethodTick, req, &resp); err != nil {
			return err
		}

		if jsonOutput {
			if err := printJSON(&resp); err != nil {
				return err
			}
		} else {
			fmt.Printf("%-4d %-34s energy %-5d", i, resp.Type, resp.Energy)
			if resp.End != "" {
				fmt.Printf(" ended: %s", resp.End)
			}
			fmt.Println()
		}

		if !resp.Running {
			return nil
		}
	}
	return nil
}
