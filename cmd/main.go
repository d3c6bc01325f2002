package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/identity/internal/api"
	"github.com/samandr77/microservices/identity/internal/clients/console"
	"github.com/samandr77/microservices/identity/internal/clients/facebook"
	"github.com/samandr77/microservices/identity/internal/clients/oidc"
	"github.com/samandr77/microservices/identity/internal/clients/picture"
	"github.com/samandr77/microservices/identity/internal/clients/smtp"
	"github.com/samandr77/microservices/identity/internal/clients/twilio"
	"github.com/samandr77/microservices/identity/internal/ratelimit"
	"github.com/samandr77/microservices/identity/internal/repository"
	"github.com/samandr77/microservices/identity/internal/service"
	"github.com/samandr77/microservices/identity/pkg/broker"
	"github.com/samandr77/microservices/identity/pkg/config"
	"github.com/samandr77/microservices/identity/pkg/logger"
	"github.com/samandr77/microservices/identity/pkg/postgres"
	"github.com/samandr77/microservices/identity/pkg/redis"
)

const (
	ReadTimeout       = 5 * time.Second
	WriteTimeout      = 15 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 1 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.ConnectToPostgres(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	redisClient, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	panicOnErr("connect to redis", err)

	defer redisClient.Close()

	limiter, err := ratelimit.NewFromConfig(redisClient, cfg.Throttle)
	panicOnErr("configure rate limits", err)

	var producer *broker.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaNotificationTopic, cfg.KafkaAuthEventsTopic)
		defer producer.Close()
	}

	deps := service.Dependencies{
		Accounts:  repository.NewAccountRepository(pool),
		Profiles:  repository.NewProfileRepository(pool),
		Devices:   repository.NewDeviceRepository(pool),
		Otps:      repository.NewOtpRepository(pool),
		SMSLog:    repository.NewSMSLogRepository(pool),
		Links:     repository.NewSocialLinkRepository(pool),
		Tokens:    repository.NewRefreshTokenRepository(pool),
		SMS:       smsTransport(l, cfg.Delivery),
		Email:     emailTransport(l, cfg.Delivery, producer),
		Providers: socialProviders(cfg.Social),
		Pictures:  picture.NewClient(
			cfg.Social.PictureDownloadTimeout,
			cfg.Social.PictureMaxBytes,
			cfg.Social.PictureAllowedContentTypes,
		),
	}

	if cfg.Delivery.EmailLogEnabled {
		deps.EmailLog = repository.NewEmailLogRepository(pool)
	}

	if producer != nil {
		deps.Events = producer
	}

	s, err := service.NewService(cfg, deps)
	panicOnErr("create service", err)

	h := api.NewHandler(s)
	proxies, err := cfg.TrustedProxyPrefixes()
	panicOnErr("parse trusted proxies", err)

	mw := api.NewMiddleware(s, limiter, proxies)
	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		tlsEnabled := cfg.ServerCert != "" && cfg.ServerKey != ""
		l.Info("http server started", "port", cfg.HTTPPort, "tls", tlsEnabled, "providers", s.Providers())

		var err error
		if tlsEnabled {
			err = server.ListenAndServeTLS(cfg.ServerCert, cfg.ServerKey)
		} else {
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()
		runJob(ctx, l.With("job", "delete_codes"), cfg.OTP.JobDeleteCodeInterval, s.DeleteExpiredCodes)
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()
		runJob(ctx, l.With("job", "delete_refresh_tokens"), cfg.OTP.TokenCleanupInterval, s.DeleteExpiredTokens)
	}()

	waitSignal(l, cancel, server)
	wg.Wait()
}

func smsTransport(l *slog.Logger, cfg config.DeliveryConfig) service.SMSSender {
	switch cfg.SMSTransport {
	case config.TransportTwilio:
		return twilio.NewClient(cfg.Twilio)
	default:
		return console.New(l)
	}
}

func emailTransport(l *slog.Logger, cfg config.DeliveryConfig, producer *broker.Producer) service.EmailSender {
	switch cfg.EmailTransport {
	case config.TransportSMTP:
		return smtp.New(cfg.SMTP)
	case config.TransportKafka:
		return producer
	default:
		return console.New(l)
	}
}

func socialProviders(cfg config.SocialConfig) []service.SocialProvider {
	var providers []service.SocialProvider

	if cfg.Google.Enabled {
		providers = append(providers, oidc.NewProvider("google", cfg.Google))
	}

	if cfg.Apple.Enabled {
		providers = append(providers, oidc.NewProvider("apple", cfg.Apple))
	}

	if cfg.Facebook.Enabled {
		providers = append(providers, facebook.NewClient(cfg.Facebook))
	}

	return providers
}

func runJob(ctx context.Context, l *slog.Logger, interval time.Duration, job func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := job(ctx)
		if err != nil {
			l.Error(fmt.Sprintf("job failed: %s", err))
		} else {
			l.Debug("job finished")
		}

		select {
		case <-ctx.Done():
			l.Debug("job stopped by ctx")
			return
		case <-ticker.C:
		}
	}
}

func waitSignal(l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
