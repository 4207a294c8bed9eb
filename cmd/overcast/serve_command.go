package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Agurato/overcast/internal/business"
	"github.com/Agurato/overcast/internal/model"
	"github.com/Agurato/overcast/internal/service/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web interface and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if listenAddr == "" {
				listenAddr = cfg.ListenAddr
			}
			cm, err := ctx.comparisonManager()
			if err != nil {
				return err
			}

			if cfg.LogLevel > zerolog.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			router := server.NewServer(
				server.NewMainHandler(),
				server.NewComparisonHandler(cm, business.NewPaginater[model.CommonCastEntry](cfg.ItemsPerPage)),
			)
			srv := &http.Server{
				Addr:              listenAddr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", listenAddr).Msg("Listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-runCtx.Done():
			}

			log.Info().Msg("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Address to listen on (overrides "+EnvListenAddr+")")

	return cmd
}
