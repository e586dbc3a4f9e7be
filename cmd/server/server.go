package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-abilities/internal/catalog"
	"github.com/KirkDiggler/rpg-abilities/internal/engine"
	"github.com/KirkDiggler/rpg-abilities/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-abilities/internal/handlers/abilities/v1alpha1"
	"github.com/KirkDiggler/rpg-abilities/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-abilities/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-abilities/internal/redis"
	"github.com/KirkDiggler/rpg-abilities/internal/repositories/loadout"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the ability runtime gRPC server with the catalog and loadout storage from config.`,
	RunE:  runServer,
}

func init() {
	flags := serverCmd.Flags()
	flags.Int("port", 50051, "gRPC server port")
	flags.String("redis-addr", "localhost:6379", "Redis address for loadout storage")
	flags.Bool("redis-embedded", false, "Store loadouts in an in-process Redis (data is lost on exit)")
	flags.Int32("default-max-energy", combat.DefaultMaxEnergy, "Energy pool size for combatants that do not set one")

	// nolint:errcheck // flags are defined above
	_ = viper.BindPFlag(keyGRPCPort, flags.Lookup("port"))
	_ = viper.BindPFlag(keyRedisAddr, flags.Lookup("redis-addr"))
	_ = viper.BindPFlag(keyRedisEmbedded, flags.Lookup("redis-embedded"))
	_ = viper.BindPFlag(keyDefaultMaxEnergy, flags.Lookup("default-max-energy"))
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	items, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	slog.Info("Catalog loaded",
		"path", cfg.CatalogPath,
		"abilities", len(items.AbilityIDs()),
		"items", len(items.ItemIDs()))

	redisClient, closeRedis, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedis()

	loadoutRepo, err := loadout.NewRedis(&loadout.RedisConfig{
		Client: redisClient,
		TTL:    time.Duration(cfg.RedisTTLSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create loadout repository: %w", err)
	}

	abilityEngine, err := engine.New(&engine.Config{Tuning: items.Tuning()})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	eventBus := events.NewBus()
	eventBus.SubscribeFunc(rpgtoolkit.EventAbilityEnded, 0, logAbilityEnded)

	publisher, err := rpgtoolkit.NewPublisher(&rpgtoolkit.PublisherConfig{
		EventBus: eventBus,
	})
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		Engine:           abilityEngine,
		Items:            items,
		LoadoutRepo:      loadoutRepo,
		Publisher:        publisher,
		IDGenerator:      idgen.NewUUID("exec"),
		DefaultMaxEnergy: cfg.DefaultMaxEnergy,
	})
	if err != nil {
		return fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	abilityHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService: combatService,
	})
	if err != nil {
		return fmt.Errorf("failed to create ability handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterAbilityServiceServer(srv, abilityHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// connectRedis returns the loadout store client and its cleanup. Embedded
// mode starts an in-process miniredis.
func connectRedis(ctx context.Context, cfg *Config) (redisclient.Client, func(), error) {
	addr := cfg.RedisAddr
	var embedded *miniredis.Miniredis
	if cfg.RedisEmbedded {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start embedded redis: %w", err)
		}
		embedded = mr
		addr = mr.Addr()
		slog.Warn("Using embedded redis; loadouts will not survive a restart", "addr", addr)
	}

	client, err := redisclient.NewClient(addr, &redisclient.Options{
		PoolSize:        10,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
	})
	if err != nil {
		if embedded != nil {
			embedded.Close()
		}
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		if embedded != nil {
			embedded.Close()
		}
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}

	return client, cleanup, nil
}

func logAbilityEnded(_ context.Context, e events.Event) error {
	reason, _ := e.Context().Get(rpgtoolkit.ContextKeyEndReason)
	kind, _ := e.Context().Get(rpgtoolkit.ContextKeyAbilityKind)
	slog.Debug("Ability ended",
		"entity_id", e.Source().GetID(),
		"execution_id", e.Target().GetID(),
		"kind", kind,
		"reason", reason)
	return nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
