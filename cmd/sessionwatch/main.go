// sessionwatch tails one user's upcoming published sessions and rings
// reminder/start alarms on the terminal. It is the command-line counterpart
// of the web client's notification panel.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellnesshub/internal/config"
	"wellnesshub/internal/logger"
	"wellnesshub/internal/mongo"
	"wellnesshub/pkg/scheduler"
	"wellnesshub/pkg/session"
)

const pollInterval = 30 * time.Second

type consoleSink struct{}

func (consoleSink) ShowAlert(a scheduler.Alert) {
	fmt.Printf("[%s] %s\n", a.Type, a.Message)
}

func (consoleSink) ClearAlert() {
	fmt.Println("[cleared]")
}

func (consoleSink) UpdateCountdown(c scheduler.Countdown) {
	fmt.Printf("\rNext: %s in %02d:%02d", c.Title, c.Minutes, c.Seconds)
}

func (consoleSink) ClearCountdown() {
	fmt.Print("\r\n")
}

func main() {
	config.Load()

	ownerID := os.Getenv("OWNER_ID")
	if ownerID == "" {
		log.Fatal("OWNER_ID is not set in environment")
	}

	slogger := logger.Load()
	service := session.NewService(session.NewMongoRepo(mongo.LoadDB()))

	sched := scheduler.New(
		scheduler.SystemClock{},
		scheduler.NewStdTimers(),
		consoleSink{},
		scheduler.BellPlayer{Out: os.Stdout},
		slogger,
	)

	feed := &scheduler.Feed{
		Fetch: func(ctx context.Context) ([]*session.Session, error) {
			return service.ListOwned(ownerID)
		},
		Sched:    sched,
		Interval: pollInterval,
		Logger:   slogger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed.Run(ctx)
}
