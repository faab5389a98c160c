package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"refdeck/internal/mcp"
	browseinadapter "refdeck/internal/modules/browse/adapter/in"
	browseoutadapter "refdeck/internal/modules/browse/adapter/out"
	browseservice "refdeck/internal/modules/browse/service"
	browseusecase "refdeck/internal/modules/browse/usecase"
	cataloginadapter "refdeck/internal/modules/catalog/adapter/in"
	catalogoutadapter "refdeck/internal/modules/catalog/adapter/out"
	catalogin "refdeck/internal/modules/catalog/port/in"
	catalogservice "refdeck/internal/modules/catalog/service"
	catalogusecase "refdeck/internal/modules/catalog/usecase"
	preferenceinadapter "refdeck/internal/modules/preference/adapter/in"
	preferenceoutadapter "refdeck/internal/modules/preference/adapter/out"
	preferencein "refdeck/internal/modules/preference/port/in"
	preferenceservice "refdeck/internal/modules/preference/service"
	preferenceusecase "refdeck/internal/modules/preference/usecase"
	searchinadapter "refdeck/internal/modules/search/adapter/in"
	searchoutadapter "refdeck/internal/modules/search/adapter/out"
	searchservice "refdeck/internal/modules/search/service"
	searchusecase "refdeck/internal/modules/search/usecase"
	"refdeck/internal/platform/clock"
	"refdeck/internal/platform/config"
	uiapp "refdeck/internal/ui/app"
)

type App struct {
	CatalogCLI    cataloginadapter.CLIHandler
	SearchCLI     searchinadapter.CLIHandler
	PreferenceCLI preferenceinadapter.CLIHandler
	BrowseCLI     browseinadapter.CLIHandler

	cfg        *config.Config
	logger     *zap.Logger
	catalog    catalogin.Usecase
	preference preferencein.Usecase
	prefStore  *preferenceoutadapter.SQLiteStore
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}

	source := catalogoutadapter.NewJSONDocumentSource(cfg.Content, &http.Client{Timeout: 30 * time.Second})
	catalogSvc := catalogservice.NewCatalogService(
		clk,
		source,
		catalogoutadapter.NewYAMLCatalogueStore(cfg.Catalogue),
		catalogoutadapter.NewMarkdownAboutStore(cfg.About),
		logger.Named("catalog"),
		cfg.Preview.Chapters,
	)
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	searchUC := searchusecase.NewInteractor(searchservice.NewSearchService(
		searchoutadapter.NewCatalogBridge(catalogUC),
	))

	prefStore, err := preferenceoutadapter.NewSQLiteStore(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("new preference store: %w", err)
	}
	preferenceUC := preferenceusecase.NewInteractor(preferenceservice.NewPreferenceService(prefStore, logger.Named("preference")))

	browseUC := browseusecase.NewInteractor(
		browseoutadapter.NewCatalogBridge(catalogUC),
		logger.Named("browse"),
		cfg.Preview.Chapters,
	)

	return &App{
		CatalogCLI:    cataloginadapter.NewCLIHandler(catalogUC),
		SearchCLI:     searchinadapter.NewCLIHandler(searchUC),
		PreferenceCLI: preferenceinadapter.NewCLIHandler(preferenceUC),
		BrowseCLI:     browseinadapter.NewCLIHandler(browseUC),
		cfg:           cfg,
		logger:        logger,
		catalog:       catalogUC,
		preference:    preferenceUC,
		prefStore:     prefStore,
	}, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Close() error {
	return errors.Join(a.prefStore.Close(), a.logger.Sync())
}

// RunTUI starts the interactive browser on fragment. With watch set and a
// local content file, edits to the file reload the content.
func RunTUI(ctx context.Context, app *App, fragment string, watch bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := browseoutadapter.NewQueueNavigator()
	session := browseservice.NewSynchronizer(
		queue,
		browseoutadapter.NewPreferenceBridge(app.preference),
		app.logger.Named("session"),
		app.cfg.Preview.Chapters,
	)

	opts := uiapp.Options{Fragment: fragment, Debounce: app.cfg.Search.Debounce}
	if watch {
		if catalogoutadapter.IsRemote(app.cfg.Content) {
			app.logger.Warn("watch ignored for remote content", zap.String("content", app.cfg.Content))
		} else {
			watcher, err := catalogoutadapter.NewContentWatcher(ctx, app.cfg.Content, app.logger.Named("watch"))
			if err != nil {
				return fmt.Errorf("watch content: %w", err)
			}
			defer watcher.Close()
			opts.Changes = watcher.Changes()
		}
	}

	model := uiapp.NewModel(app.catalog, session, queue, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// RunMCP serves the read-only tools on stdio until the client disconnects.
func RunMCP(app *App) error {
	srv := mcp.NewServer(app.SearchCLI, app.CatalogCLI, app.BrowseCLI, app.logger.Named("mcp"))
	return srv.Serve()
}
