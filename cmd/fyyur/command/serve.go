package command

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"fyyur/database"
	"fyyur/internal/config"
	"fyyur/internal/http-api/handler"
	"fyyur/internal/http-api/repository"
	"fyyur/internal/http-api/service"
	"fyyur/internal/notify"
	"fyyur/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Opens the database, applies migrations and serves the API until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		gin.SetMode(ginMode(cfg))

		db, err := openDatabase(cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		publisher, closePublisher := newPublisher(cfg, log)
		defer closePublisher()

		venueRepo := repository.NewVenueRepository(db)
		artistRepo := repository.NewArtistRepository(db)
		showRepo := repository.NewShowRepository(db)

		venueSvc := service.NewVenueService(venueRepo, publisher, log, nil)
		artistSvc := service.NewArtistService(artistRepo, publisher, log, nil)
		showSvc := service.NewShowService(showRepo, venueRepo, artistRepo, publisher, log, nil)

		router := server.NewRouter(cfg, log, db, server.Handlers{
			Venues:  handler.NewVenueHandler(venueSvc, log, cfg.RequestTimeout),
			Artists: handler.NewArtistHandler(artistSvc, log, cfg.RequestTimeout),
			Shows:   handler.NewShowHandler(showSvc, log, cfg.RequestTimeout),
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, log, cfg.HTTPAddr(), router, cfg.ShutdownTimeout)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// ginMode turns on gin's debug output in development only.
func ginMode(cfg *config.Config) string {
	if cfg.IsDevelopment() {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// newPublisher connects to Redis when REDIS_URL is set. An unreachable Redis
// disables listing events rather than blocking startup.
func newPublisher(cfg *config.Config, log *slog.Logger) (notify.Publisher, func()) {
	if cfg.RedisURL == "" {
		log.Info("listing_events_disabled")
		return notify.NopPublisher{}, func() {}
	}
	client, err := notify.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Warn("listing_events_disabled", "error", err)
		return notify.NopPublisher{}, func() {}
	}
	log.Info("listing_events_enabled", "channel", cfg.NotifyChannel)
	return notify.NewRedisPublisher(client, cfg.NotifyChannel), func() { client.Close() }
}
