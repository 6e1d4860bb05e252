package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Temutjin2k/lapla/config"
	repo "github.com/Temutjin2k/lapla/internal/adapter/postgres"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/postgres"
	"github.com/Temutjin2k/lapla/pkg/trm"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()

	ctx := wrap.WithAction(context.Background(), types.ActionMigration)
	log := logger.InitLogger("migrate", logger.LevelInfo)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure migration", err)
		os.Exit(1)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer client.Close()

	// short timeout for migration operations
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var applied int
	// concurrent migrate runs must not interleave their DDL
	ctx = trm.WithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	err = trm.New(client.Pool).Do(ctx, func(ctx context.Context) error {
		applied, err = repo.NewMigrator(client.Pool).Up(ctx)
		return err
	})
	if err != nil {
		log.Error(wrap.ErrorCtx(ctx, err), "migration failed", err)
		cancel()
		client.Close()
		os.Exit(1)
	}

	log.Info(ctx, "migration finished", "statements", applied)
}
