package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/config"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves spelling over HTTP",
	Long:  `Serves spelling, key and chord lookups as a JSON HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := cfg.Spelling.LoadCatalog()
		if err != nil {
			return err
		}
		return serve(NewServer(cfg, logger, cat))
	},
}

type Server struct {
	cfg     *config.Config
	logger  *logrus.Logger
	catalog chord.Catalog
}

func NewServer(cfg *config.Config, logger *logrus.Logger, catalog chord.Catalog) *Server {
	return &Server{cfg: cfg, logger: logger, catalog: catalog}
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestLogger)

	router.HandleFunc("/health", s.HandleHealth).Methods("GET")
	router.HandleFunc("/spell", s.HandleSpell).Methods("POST")
	router.HandleFunc("/identify", s.HandleIdentify).Methods("POST")
	router.HandleFunc("/catalog", s.HandleCatalog).Methods("GET")
	router.HandleFunc("/keys/{name}", s.HandleKey).Methods("GET")
	router.HandleFunc("/keys/{name}/chords", s.HandleKeyChords).Methods("GET")

	if !s.cfg.Server.EnableCORS {
		return router
	}
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(router)
}

func serve(s *Server) error {
	srv := &http.Server{
		Addr:              s.cfg.GetAddress(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.WithField("address", srv.Addr).Info("Starting server")
		errs <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
