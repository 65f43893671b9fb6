package hooks

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"github.com/vantrou/memnode/internal/core/corestate"
	"github.com/vantrou/memnode/internal/core/run_manager"
	"github.com/vantrou/memnode/internal/core/utils"
	"github.com/vantrou/memnode/internal/engine/app"
	"github.com/vantrou/memnode/internal/engine/config"
	"github.com/vantrou/memnode/internal/engine/logs"
	"github.com/vantrou/memnode/internal/server/confv1"
	"github.com/vantrou/memnode/internal/server/gateway"
	"github.com/vantrou/memnode/internal/server/session"
	"golang.org/x/net/netutil"
)

var nodeApp = app.New()

func Run(cmd *cobra.Command, args []string) {
	nodeApp.InitialHooks(
		Init0Hook, Init1Hook, Init2Hook,
		Init3Hook, Init4Hook, Init5Hook,
		Init6Hook,
	)

	nodeApp.Run(RunHook)
}

func RunHook(ctx context.Context, cs *corestate.CoreState, x *app.AppX) error {
	ctxMain, cancelMain := context.WithCancel(ctx)

	_, err := run_manager.Watch(ctxMain, "run.lock", func() {
		x.Log.Printf("run.lock was touched")
		cancelMain()
	})
	if err != nil {
		x.Log.Printf("watch error: %s", err)
	}

	configServer := confv1.InitConfigServer(&confv1.ConfigServerInit{
		X: x,
	})

	session_manager := session.New(*x.Config.Conf.HTTPServer.SessionTTL)

	s := gateway.InitGateway(&gateway.GatewayServerInit{
		SM: session_manager,
		CS: cs,
		X:  x,
	}, configServer)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.HandleFunc(config.RPCRoute, s.Handle)
	r.Get(config.HealthRoute, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Route("/favicon.ico", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	srv := &http.Server{
		Addr:        *x.Config.Conf.HTTPServer.Address,
		Handler:     r,
		ReadTimeout: *x.Config.Conf.HTTPServer.Timeout,
		IdleTimeout: *x.Config.Conf.HTTPServer.IdleTimeout,
		ErrorLog: log.New(&logs.SlogWriter{
			Logger: x.SLog,
			Level:  slog.LevelError,
		}, "", 0),
	}

	nodeApp.Fallback(func(ctx context.Context, cs *corestate.CoreState, x *app.AppX) {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			x.Log.Printf("%s: Failed to stop the server gracefully: %s", logs.PrintError(), err.Error())
		} else {
			x.Log.Printf("Server stopped gracefully")
		}

		x.Log.Println("Cleaning up...")

		if err := run_manager.Clean(); err != nil {
			x.Log.Printf("%s: Cleanup error: %s", logs.PrintError(), err.Error())
		}
		x.Log.Println("bye!")
	})

	go func() {
		defer utils.CatchPanicWithCancel(cancelMain)
		listener, err := net.Listen("tcp", *x.Config.Conf.HTTPServer.Address)
		if err != nil {
			x.Log.Printf("%s: Failed to start listener: %s", logs.PrintError(), err.Error())
			cancelMain()
			return
		}
		limitedListener := netutil.LimitListener(listener, *x.Config.Conf.HTTPServer.MaxConns)
		if *x.Config.Conf.TLS.TlsEnabled {
			x.Log.Printf("Serving on %s with TLS... (https://%s%s)", *x.Config.Conf.HTTPServer.Address, *x.Config.Conf.HTTPServer.Address, config.RPCRoute)
			if err := srv.ServeTLS(limitedListener, *x.Config.Conf.TLS.CertFile, *x.Config.Conf.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				x.Log.Printf("%s: Failed to start HTTPS server: %s", logs.PrintError(), err.Error())
				cancelMain()
			}
		} else {
			x.Log.Printf("Serving on %s... (http://%s%s)", *x.Config.Conf.HTTPServer.Address, *x.Config.Conf.HTTPServer.Address, config.RPCRoute)
			if err := srv.Serve(limitedListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				x.Log.Printf("%s: Failed to start HTTP server: %s", logs.PrintError(), err.Error())
				cancelMain()
			}
		}
	}()

	session_manager.StartCleanup(5 * time.Second)

	// The simulated chain clock. Each tick is one block; the RPC surface
	// observes the timestamp through config_getCurrentTimestamp.
	go func() {
		defer utils.CatchPanicWithCancel(cancelMain)
		ticker := time.NewTicker(*x.Config.Conf.Chain.BlockTime)
		defer ticker.Stop()
		for {
			select {
			case <-ctxMain.Done():
				return
			case <-ticker.C:
				ts := x.State.AdvanceTimestamp(1)
				x.SLog.Debug("block sealed", slog.Uint64("timestamp", ts))
			}
		}
	}()

	<-ctxMain.Done()
	nodeApp.CallFallback(ctx)
	return nil
}
