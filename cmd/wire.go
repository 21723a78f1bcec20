package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	natschannel "github.com/bnema/serverpacks/internal/adapters/channel/nats"
	wschannel "github.com/bnema/serverpacks/internal/adapters/channel/websocket"
	"github.com/bnema/serverpacks/internal/adapters/metrics/prom"
	filestore "github.com/bnema/serverpacks/internal/adapters/packstore/file"
	tomlregistry "github.com/bnema/serverpacks/internal/adapters/registry/toml"
	packsrender "github.com/bnema/serverpacks/internal/adapters/render/packs"
	"github.com/bnema/serverpacks/internal/adapters/source/httpsource"
	"github.com/bnema/serverpacks/internal/application"
	"github.com/bnema/serverpacks/internal/config"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

const metricsNamespace = "serverpacks"

// sideChannel is a dialed channel that reports when the peer goes away.
type sideChannel interface {
	ports.Channel
	Done() <-chan struct{}
}

type app struct {
	cfg    config.Config
	logger *log.Logger

	store      *filestore.Store
	registry   *tomlregistry.Registry
	notifier   *application.Notifier
	downloader *application.Downloader
	installer  *application.Installer
	controller *application.SyncController

	metrics       *prom.Metrics
	metricsGather prometheus.Gatherer
	packsRenderer func([]application.PackStatus, packsrender.RenderOptions) string
	dial          func(ctx context.Context, handler ports.MessageHandler) (sideChannel, error)
	now           func() time.Time
}

func (a *app) wire(configFile string, logOut io.Writer) error {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewWithOptions(logOut, log.Options{
		Prefix:          "serverpacks",
		ReportTimestamp: true,
		Level:           cfg.LogLevel,
	})

	promRegistry := prometheus.NewRegistry()
	metrics, err := prom.New(metricsNamespace, promRegistry)
	if err != nil {
		return fmt.Errorf("wire metrics: %w", err)
	}

	registry, err := tomlregistry.NewRegistry(cfg.RegistryPath, ports.SystemClock{})
	if err != nil {
		return fmt.Errorf("wire pack registry: %w", err)
	}

	store := filestore.NewStore(cfg.PacksDir)
	source := httpsource.Source{HTTPClient: http.DefaultClient, RequestTimeout: cfg.Downloads.Timeout}
	notifier := application.NewNotifier(logger, metrics)
	downloader := application.NewDownloader(store, source, logger, application.DownloaderOptions{
		MaxConcurrent: cfg.Downloads.MaxConcurrent,
		Timeout:       cfg.Downloads.Timeout,
		Metrics:       metrics,
	})
	installer := application.NewInstaller(store, registry, downloader, notifier, logger, metrics)

	*a = app{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		registry:      registry,
		notifier:      notifier,
		downloader:    downloader,
		installer:     installer,
		controller:    application.NewSyncController(installer, notifier, logger, metrics),
		metrics:       metrics,
		metricsGather: promRegistry,
		packsRenderer: packsrender.Render,
		now:           time.Now,
	}
	a.dial = a.dialChannel

	return nil
}

func (a *app) dialChannel(ctx context.Context, handler ports.MessageHandler) (sideChannel, error) {
	switch a.cfg.Channel.Kind {
	case config.ChannelNATS:
		channel, err := natschannel.Dial(a.cfg.Channel.URL, a.cfg.Channel.Name, handler, a.logger)
		if err != nil {
			return nil, err
		}
		return channel, nil
	default:
		channel, err := wschannel.Dial(ctx, a.cfg.Channel.URL, handler, a.logger)
		if err != nil {
			return nil, err
		}
		return channel, nil
	}
}

func (a *app) catalog(index ports.PackIndex) *application.Catalog {
	return application.NewCatalog(a.store, a.registry, index, a.logger)
}
