// Package client provides test commands for the ability runtime gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-abilities/internal/errors"
	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	jsonOutput bool
	entityID   string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the ability runtime",
	Long:  `Client commands allow you to drive the ability runtime by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	ClientCmd.PersistentFlags().StringVar(&entityID, "entity-id", "", "Combatant entity ID")

	ClientCmd.AddCommand(registerCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(swapCmd)
	ClientCmd.AddCommand(activateCmd)
	ClientCmd.AddCommand(tickCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(removeCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createAbilityClient creates an ability service client
func createAbilityClient() (v1alpha1.AbilityServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewAbilityServiceClient(conn), cleanup, nil
}

// invoke sends req to method and decodes the reply into resp
func invoke(method string, req, resp interface{}) error {
	client, cleanup, err := createAbilityClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	in, err := v1alpha1.Encode(req)
	if err != nil {
		return err
	}

	out, err := client.Call(ctx, method, in)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, errors.FromGRPCError(err))
	}

	return v1alpha1.Decode(out, resp)
}

func requireEntity() error {
	if entityID == "" {
		return errors.InvalidArgument("--entity-id is required")
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printCombatant(c *v1alpha1.CombatantResponse) {
	if c == nil {
		return
	}

	fmt.Printf("Combatant %s (%s)\n", c.EntityID, c.Body.Kind)
	fmt.Printf("  Energy: %d/%d\n", c.Energy, c.MaxEnergy)
	fmt.Printf("  Damage reduction: %.0f%%\n", c.DamageReduction*100)

	if c.Loadout != nil {
		if c.Loadout.ActiveItem != nil {
			fmt.Printf("  Active weapon: %s\n", c.Loadout.ActiveItem.Item.ID)
		}
		if c.Loadout.SecondItem != nil {
			fmt.Printf("  Second weapon: %s\n", c.Loadout.SecondItem.Item.ID)
		}
		for _, piece := range c.Loadout.Armor() {
			if piece.Item == nil {
				continue
			}
			fmt.Printf("  %s: %s\n", piece.Slot, piece.Item.ID)
		}
	}

	if c.Active != nil {
		fmt.Printf("  Running: %s [%s] %s\n", c.Active.Type, c.Active.ExecutionID, c.Active.Section)
	}
}
