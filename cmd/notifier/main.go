package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cardbazaar/order-service/internal/client"
	"github.com/cardbazaar/order-service/internal/config"
	"github.com/cardbazaar/order-service/internal/notify"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// The notifier mirrors the web client's three notification surfaces: a
// banner, a dismissible toast and the nav indicator. One shared poller
// feeds all of them; acknowledging on any surface hides the others at once.
func main() {
	conf := config.NewNotifier()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	api, err := client.New(conf.ServerURL)
	panicIfErr("invalid server url", err)

	store, err := notify.NewFileStore(conf.AckStorePath)
	panicIfErr("failed to open ack store", err)

	bus := notify.NewBus()
	poller := notify.NewPoller(logger, api, conf.Wallet, conf.PollInterval)

	surfaces := map[string]*notify.Surface{}
	for _, name := range []string{"banner", "toast", "nav"} {
		s := notify.NewSurface(name, logger, conf.Wallet, store, bus)
		s.Attach(poller)
		defer s.Detach()
		surfaces[name] = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return poller.Run(ctx)
	})

	g.Go(func() error {
		return commandLoop(ctx, logger, surfaces)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("notifier stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("notifier stopped")
}

// commandLoop reads stdin: "status" prints every surface, "ack <surface>"
// acknowledges on it (any surface works, the rest follow via the bus).
func commandLoop(ctx context.Context, logger *slog.Logger, surfaces map[string]*notify.Surface) error {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			handleCommand(logger, surfaces, strings.Fields(line))
		}
	}
}

func handleCommand(logger *slog.Logger, surfaces map[string]*notify.Surface, args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "status":
		for name, s := range surfaces {
			fmt.Printf("%s: visible=%t pending=%d\n", name, s.Visible(), s.PendingCount())
		}
	case "ack":
		name := "toast"
		if len(args) > 1 {
			name = args[1]
		}
		s, ok := surfaces[name]
		if !ok {
			fmt.Printf("unknown surface %q\n", name)
			return
		}
		if err := s.Acknowledge(); err != nil {
			logger.Error("failed to acknowledge", slog.Any("error", err))
		}
	default:
		fmt.Println("commands: status, ack [banner|toast|nav]")
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
