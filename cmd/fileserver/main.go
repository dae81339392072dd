// Command fileserver is a minimal static file server demonstrating the
// threadpool contract: an accept loop that does nothing but hand each
// connection to Pool.Execute.
package main

import (
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ygrebnov/threadpool"
	"github.com/ygrebnov/threadpool/observe"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug("no .env file found, reading from environment")
	}

	cfg := loadConfig()

	pool, err := threadpool.New(cfg.Workers,
		threadpool.WithName("fileserver"),
		threadpool.WithObserver(observe.NewLogObserver(log.StandardLogger())),
	)
	if err != nil {
		log.Fatalf("pool error: %v", err)
	}

	listener, err := bindWithRetry(cfg.Addr, cfg.BindTimeout)
	if err != nil {
		log.Fatalf("failed to bind to %s: %v", cfg.Addr, err)
	}

	log.WithField("addr", cfg.Addr).Info("listening for connections")

	// Close the listener on SIGINT/SIGTERM; the accept loop unblocks and the
	// pool is shut down on the way out of main.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Info("signal received, closing listener")
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			log.WithError(err).Warn("failed to accept connection")
			continue
		}

		if err := pool.Execute(func() { handleConnection(conn, cfg.AssetsDir) }); err != nil {
			log.WithError(err).Error("failed to submit connection")
			conn.Close()
		}
	}

	if err := pool.Shutdown(); err != nil {
		log.WithError(err).Error("pool shut down with worker failures")
	}
}
