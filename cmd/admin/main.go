package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ecelliitbhu/ecell-backend/config"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
	"github.com/ecelliitbhu/ecell-backend/internal/service"
	"github.com/ecelliitbhu/ecell-backend/pkg/database"
	applogger "github.com/ecelliitbhu/ecell-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("ECELL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to obtain sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// SetAdmin touches neither tokens nor revocations
	repo := repository.NewRepository(db)
	cli := &commandLine{
		db:     sqlDB,
		admins: service.NewAuthService(repo, nil, nil, logger),
		logger: logger,
		out:    os.Stdout,
	}

	if err := cli.run(os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}
