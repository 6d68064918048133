package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/juanpgarcia/cine-estructurales/internal/config"
	"github.com/juanpgarcia/cine-estructurales/internal/handler"
	"github.com/juanpgarcia/cine-estructurales/internal/middleware"
	"github.com/juanpgarcia/cine-estructurales/internal/queue"
	"github.com/juanpgarcia/cine-estructurales/internal/router"
	"github.com/juanpgarcia/cine-estructurales/internal/service"
	"github.com/juanpgarcia/cine-estructurales/internal/store"
	"github.com/juanpgarcia/cine-estructurales/internal/ticket"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache disabled, rate limiting runs in-process")
	}

	// The facade owns the seat ledger and combo menu for the process
	// lifetime; the web channel renders every ticket as HTML.
	st := store.New(store.DefaultShowing(), store.DefaultMenu(), ticket.WebChannel{}, cfg.SeatPrice)
	h := handler.NewStoreHandler(st, service.PublishSaleCompleted)

	e := echo.New()
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	router.RegisterRoutes(e, h, cacheMW)

	// The sales log consumer only runs when a broker was configured.
	if queue.BrokerConfigured() {
		go func() {
			if err := queue.StartSalesConsumer(); err != nil {
				log.Printf("sales consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
