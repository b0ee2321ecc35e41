package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
	"github.com/ariefcatur/go-storefront-checkout/internal/checkout"
	"github.com/ariefcatur/go-storefront-checkout/internal/config"
	"github.com/ariefcatur/go-storefront-checkout/internal/httpx"
	kafkax "github.com/ariefcatur/go-storefront-checkout/internal/kafka"
	"github.com/ariefcatur/go-storefront-checkout/internal/mailer"
	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
	"github.com/ariefcatur/go-storefront-checkout/internal/postgres"
	"github.com/ariefcatur/go-storefront-checkout/internal/redisx"
	"github.com/ariefcatur/go-storefront-checkout/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := newLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	// Prices and totals are plain JSON numbers, the storefront client does
	// the formatting.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal("ensure schema", zap.Error(err))
	}

	catalogRepo := &catalog.Repo{DB: db}
	if n, err := seed.EnsureSeeded(ctx, catalogRepo); err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	} else if n > 0 {
		log.Info("seeded sample catalog", zap.Int("products", n))
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	catalogStore := catalog.Store(&catalog.Cached{Inner: catalogRepo, Redis: rdb, Log: log})
	orderStore := orders.Store(&orders.Cached{Inner: &orders.Repo{DB: db}, Redis: rdb, Log: log})

	// Kafka producers, one per topic; optional.
	var approved, failed *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		approved = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderApproved, 1024, log)
		approved.Start(ctx)
		failed = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderFailed, 1024, log)
		failed.Start(ctx)
	}

	smtp := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	proc := &checkout.Processor{
		Catalog: catalogStore,
		Orders:  orderStore,
		Mailer:  smtp,
		Service: cfg.ServiceName,
		Log:     log,
	}
	if approved != nil {
		proc.ApprovedEvents = approved
		proc.FailedEvents = failed
	}

	router := httpx.NewRouter(log)
	(&httpx.CheckoutHandler{Processor: proc, Orders: orderStore, Log: log}).Register(router)
	(&httpx.CatalogHandler{Catalog: catalogStore, Log: log}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	if approved != nil {
		approved.Close() // flush & close writer
		failed.Close()
		cancel() // stop producer loops
		approved.WaitClosed()
		failed.WaitClosed()
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		log, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return log
}
