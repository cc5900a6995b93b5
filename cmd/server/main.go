package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/config"
	"github.com/okcampus/campus-map-api/internal/database"
	"github.com/okcampus/campus-map-api/internal/handler"
	"github.com/okcampus/campus-map-api/internal/middleware"
	"github.com/okcampus/campus-map-api/internal/queue"
	"github.com/okcampus/campus-map-api/internal/repository"
	"github.com/okcampus/campus-map-api/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	buildings := repository.NewBuildingRepo(db)
	rooms := repository.NewRoomRepo(db)
	washrooms := repository.NewWashroomRepo(db)
	businesses := repository.NewBusinessRepo(db)
	parking := repository.NewParkingRepo(db)
	busStops := repository.NewBusStopRepo(db)
	events := repository.NewEventRepo(db)
	bookings := repository.NewBookingRepo(db)
	search := repository.NewSearchRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterPublic(e, router.PublicHandlers{
		Buildings:  handler.NewBuildingHandler(buildings),
		Rooms:      handler.NewRoomHandler(rooms),
		Facilities: handler.NewFacilityHandler(washrooms, businesses, parking, busStops),
		Search:     handler.NewSearchHandler(search),
		Feed:       handler.NewCampusFeedHandler(cfg.CampusFeedURL),
	}, rateMW, cacheMW)
	// Events get the rate limiter only; caching them would hide a fresh
	// booking until the TTL runs out.
	router.RegisterEvents(e, handler.NewEventHandler(events, bookings), cfg.JWTSecret, rateMW)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAccessHandler(users), cfg.JWTSecret)

	// Booking log consumer runs for the life of the process and reconnects
	// on its own; a missing broker only disables the audit log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
