package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/habitmon/internal/api"
	"github.com/limbo/habitmon/internal/cache"
	"github.com/limbo/habitmon/internal/repository"
	"github.com/limbo/habitmon/internal/rewards"
	"github.com/limbo/habitmon/internal/service"
	"github.com/limbo/habitmon/pkg/cleanup"
	"github.com/limbo/habitmon/pkg/config"
	jwtservice "github.com/limbo/habitmon/pkg/jwt_service"
	"github.com/redis/go-redis/v9"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.GetString("LOG_LEVEL"))})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	if cfg.GetBool("MIGRATE_ON_START", true) {
		if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			log.Fatal("migrations error: ", err)
		}
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetStringOr("REDIS_ADDRESS", "localhost:6379"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	if err = redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("pinging redis error: ", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    redisClient.Close,
	})

	rewardsCfg := rewards.DefaultConfig()
	autoSync := cfg.GetBool("AUTO_SYNC", true)
	profileService := service.NewProfileService(
		repository.NewProfilesRepo(pool),
		cache.NewProfileCache(redisClient),
		service.ProfileServiceOpts{
			Config:   rewardsCfg,
			Selector: rewards.NewSelector(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())), rewardsCfg),
			AutoSync: autoSync,
		},
	)
	// Registered last so it runs before connections are closed
	cleanup.Register(&cleanup.Job{
		Name: "syncing cached profiles",
		F: func() error {
			flushCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
			defer cancel()
			synced, err := profileService.SyncAll(flushCtx)
			slog.Info("cached profiles synced", slog.Int("count", synced))
			return err
		},
	})
	usersRepo := repository.NewUsersRepo(pool)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo, profileService),
		ProfileService:      profileService,
		SharedHabitsService: service.NewSharedHabitsService(repository.NewSharedHabitsRepo(pool), usersRepo, profileService),
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)),
	})
	slog.Info("starting", slog.Bool("auto_sync", autoSync))
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if failed := cleanup.CleanUp(); failed > 0 {
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
