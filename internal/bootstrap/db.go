package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/db"
)

type DBOptions struct {
	Config *config.DatabaseConfig
	PingTO time.Duration
}

// OpenDB creates the pool and checks connectivity once. A failed ping is
// logged but not fatal: the server keeps serving and store-backed endpoints
// answer with 500 until the database is reachable.
func OpenDB(ctx context.Context, opt DBOptions) (*db.DB, error) {
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	conn, err := db.Open(ctx, opt.Config)
	if err != nil {
		return nil, err
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := conn.Ping(pctx); err != nil {
		log.Printf("[warn] database connection failed: %v", err)
	} else {
		log.Println("[info] database connected successfully")
	}

	return conn, nil
}
