package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run dao api server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// one ledger for the whole process lifetime
		server := provideServer(provideLedger())

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", server.HandleHealthCheck(rootCmd.Version))
		}

		{
			//restful api
			mux.Mount("/api", server.HandleRestAPI())
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}
		addr := fmt.Sprintf(":%d", port)

		svr := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx = signal.WithContext(ctx)
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := svr.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
				return err
			}

			return nil
		})

		g.Go(func() error {
			logrus.Infoln("serve at", addr)
			if err := svr.ListenAndServe(); err != http.ErrServerClosed {
				logrus.WithError(err).Error("server aborted")
				return err
			}

			return nil
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 0, "server port, default from config")
}
