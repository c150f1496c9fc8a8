// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sunbelt-bank/bank-core/internal/customerdelivery"
	"github.com/sunbelt-bank/bank-core/internal/customerrepo"
	"github.com/sunbelt-bank/bank-core/internal/customerservice"
	"github.com/sunbelt-bank/bank-core/internal/directory"
	"github.com/sunbelt-bank/bank-core/internal/middleware"
	"github.com/sunbelt-bank/bank-core/internal/sessiondelivery"
	"github.com/sunbelt-bank/bank-core/internal/sessionrepo"
	"github.com/sunbelt-bank/bank-core/internal/sessionservice"
	"github.com/sunbelt-bank/bank-core/internal/transactiondelivery"
	"github.com/sunbelt-bank/bank-core/internal/transactionservice"
	"github.com/sunbelt-bank/bank-core/pkg/configpkg"
	"github.com/sunbelt-bank/bank-core/pkg/metricspkg"
)

// sheetPersister saves the directory contents back to the customer
// sheet. The snapshot is taken under the directory read lock.
type sheetPersister struct {
	store *directory.Directory
	repo  *customerrepo.RepoCSV
}

// Persist writes the whole customer sheet.
func (p *sheetPersister) Persist(ctx context.Context) error {
	return p.store.View(func(txn directory.Txn) error {
		return p.repo.Save(ctx, txn.Customers())
	})
}

// Server holds the customer directory, handlers router and
// configuration.
type Server struct {
	Store     *directory.Directory
	Engine    *gin.Engine
	Config    configpkg.Config
	persister *sheetPersister
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Persist flushes the customer sheet to disk.
func (s *Server) Persist(ctx context.Context) error {
	return s.persister.Persist(ctx)
}

// New creates Server type with instantiated domains and routes. The
// customer sheet is loaded eagerly and every loaded customer gets a
// login credential.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ctx := logger.WithContext(context.Background())

	repo := customerrepo.NewRepoCSV(config.DataFile)

	customers, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	store := directory.New()
	credentials := sessionservice.NewCredentials()

	for _, c := range customers {
		if err := store.Add(c); err != nil {
			return nil, err
		}

		if _, err := credentials.Issue(c.FullName()); err != nil {
			return nil, err
		}
	}

	logger.Info().Int("customers", len(customers)).Str("sheet", config.DataFile).Msg("customer sheet loaded")

	persister := &sheetPersister{store: store, repo: repo}

	metrics := metricspkg.New("bank")
	registry := prometheus.NewRegistry()

	if err := metrics.Register(registry); err != nil {
		return nil, err
	}

	sessionService, err := sessionservice.New(credentials, sessionrepo.NewRepoMem(), config)
	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	transactionService := transactionservice.New(store, persister, metrics)
	customerService := customerservice.New(store, persister, credentials, config.StatementDir)

	transactionHandler := transactiondelivery.NewHandler(transactionService)
	customerHandler := customerdelivery.NewHandler(customerService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/sessions", sessionHandler.Login)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.PUT("/secrets", sessionHandler.UpdateSecret)

	authRoutes.POST("/withdrawals", transactionHandler.Withdraw)
	authRoutes.POST("/deposits", transactionHandler.Deposit)
	authRoutes.POST("/transfers", transactionHandler.Transfer)
	authRoutes.POST("/payments", transactionHandler.Pay)
	authRoutes.GET("/balances/:type", transactionHandler.Inquire)
	authRoutes.GET("/history/:type", transactionHandler.History)

	authRoutes.POST("/customers", customerHandler.Create)
	authRoutes.GET("/customers/:name", customerHandler.Get)
	authRoutes.GET("/customers/:name/teller", customerHandler.GetForTeller)
	authRoutes.POST("/customers/:name/statements", customerHandler.Statement)
	authRoutes.POST("/customers/:name/summaries", customerHandler.Summary)

	server := &Server{
		Store:     store,
		Engine:    engine,
		Config:    config,
		persister: persister,
	}

	return server, nil
}
