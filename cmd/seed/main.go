// Command seed loads a demo directory, course and discipline into the
// configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"coursecraft/config"
	"coursecraft/internal/domain"
	"coursecraft/internal/repository"
	"coursecraft/internal/service"
	"coursecraft/pkg/database"
	applogger "coursecraft/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	timeout := flag.Duration("timeout", time.Minute, "overall seed timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := applogger.NewLogger(&cfg.Log, cfg.Tracing.ServiceName+"-seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	clock := domain.SystemClock{}
	svc := service.NewService(repository.NewRepository(db), nil, clock, logger)
	res, err := seed(ctx, svc, clock.Now(), logger)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	fmt.Printf("admin=%s professor=%s course=%s discipline=%s created=%t\n",
		res.AdminID, res.ProfessorID, res.CourseID, res.DisciplineID, res.Created)
}
