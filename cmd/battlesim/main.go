package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-battle/internal/combat"
	"github.com/KirkDiggler/creature-battle/internal/config"
	"github.com/KirkDiggler/creature-battle/internal/dice"
	"github.com/KirkDiggler/creature-battle/internal/domain/events"
	"github.com/KirkDiggler/creature-battle/internal/repositories/battlelogs"
	"github.com/KirkDiggler/creature-battle/internal/services/battle"
	"github.com/KirkDiggler/creature-battle/internal/traitdata"
	"github.com/KirkDiggler/creature-battle/internal/traits"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
)

// creatureLevel is the level every simulated creature fights at
const creatureLevel = 50

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Battle %s: seed %d, max %d turns", cfg.Battle.ID, cfg.Battle.Seed, cfg.Battle.MaxTurns)

	ctx := context.Background()

	repo, redisClient := openBattleLog(ctx, cfg.Redis)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	result, err := simulate(ctx, cfg, repo)
	if err != nil {
		log.Fatalf("Battle failed: %v", err)
	}

	if result.Decided {
		log.Printf("Battle %s won by %s on turn %d", cfg.Battle.ID, result.Winner, result.Turns)
	} else {
		log.Printf("Battle %s ended in a draw after %d turns", cfg.Battle.ID, result.Turns)
	}

	entries, err := repo.ListByBattle(ctx, cfg.Battle.ID)
	if err != nil {
		log.Fatalf("Failed to read battle log: %v", err)
	}
	summarize(entries)
}

// simulate wires the engine together and runs the scripted duel
func simulate(ctx context.Context, cfg *config.Config, repo battlelogs.Repository) (*outcome, error) {
	roller := dice.NewSeededRoller(cfg.Battle.Seed)

	traitSet, err := traitdata.Load(cfg.Battle.TraitsFile)
	if err != nil {
		return nil, err
	}
	actions, err := defaultActions()
	if err != nil {
		return nil, err
	}

	arena, err := buildArena(cfg.Battle.ID, creatureLevel, actions, traitSet, uuid.NewSequentialGenerator(cfg.Battle.ID))
	if err != nil {
		return nil, err
	}

	calculator, err := combat.NewCalculator(roller)
	if err != nil {
		return nil, err
	}
	engine, err := traits.NewEngine(roller)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	bus.Subscribe(engine)
	bus.Subscribe(battlelogs.NewRecorder(&battlelogs.RecorderConfig{
		Repository:    repo,
		UUIDGenerator: uuid.NewSequentialGenerator(cfg.Battle.ID + "-log"),
	}))

	d := &duel{
		service: battle.NewService(&battle.ServiceConfig{
			Battle:     arena,
			Calculator: calculator,
			Bus:        bus,
			Actions:    actions,
		}),
		actions:  actions,
		maxTurns: cfg.Battle.MaxTurns,
	}
	return d.run(ctx)
}

// openBattleLog connects to Redis when configured and falls back to an
// in-memory log otherwise
func openBattleLog(ctx context.Context, cfg config.RedisConfig) (battlelogs.Repository, *redis.Client) {
	if !cfg.Enabled() {
		log.Println("No Redis configured, using in-memory battle log")
		return battlelogs.NewInMemoryRepository(), nil
	}

	opts := &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	if cfg.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.URL)
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory battle log")
			return battlelogs.NewInMemoryRepository(), nil
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory battle log")
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
		return battlelogs.NewInMemoryRepository(), nil
	}

	log.Println("Using Redis for the battle log")
	return battlelogs.NewRedis(client), client
}

func summarize(entries []*battlelogs.Entry) {
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		if entry.Timing != string(events.After) {
			continue
		}
		if _, seen := counts[entry.Kind]; !seen {
			order = append(order, entry.Kind)
		}
		counts[entry.Kind]++
	}

	log.Printf("Battle log: %d entries", len(entries))
	for _, kind := range order {
		log.Printf("  %-18s %d", kind, counts[kind])
	}
}
