package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/db"
	orderrepo "storefront/internal/repository/order"
	"storefront/internal/statusimport"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to carrier status CSV (orderId,status)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.String("file", filePath), zap.Error(err))
	}
	defer f.Close()

	imp := statusimport.NewCSVImporter(f, orderrepo.NewPostgres(pool, logger), logger)

	start := time.Now()
	res, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("status import failed", zap.Int("updated", res.Updated), zap.Error(err))
	}

	fmt.Printf("Updated %d orders (%d unknown skipped) in %s\n", res.Updated, res.Skipped, time.Since(start).Truncate(time.Millisecond))
}
