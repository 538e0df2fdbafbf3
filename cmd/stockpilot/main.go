package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/stockpilot/stockpilot/internal/config"
	"github.com/stockpilot/stockpilot/internal/scheduler"
	"github.com/stockpilot/stockpilot/internal/service/commands"
	"github.com/stockpilot/stockpilot/internal/service/reports"
	"github.com/stockpilot/stockpilot/internal/session"
	"github.com/stockpilot/stockpilot/pkg/clients/inventory"
	"github.com/stockpilot/stockpilot/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	sess, err := session.NewStore(cfg.Session.FilePath)
	if err != nil {
		baseLogger.Fatal("failed to load session", zap.Error(err))
	}

	client := inventory.New(cfg.API, sess, logger.Named(baseLogger, "client.inventory"))
	client.OnSessionInvalidated(func() {
		fmt.Println("Session expired. Please log in again.")
	})

	in := bufio.NewReader(os.Stdin)
	reportSvc := reports.NewService(reports.NewClientSources(client), logger.Named(baseLogger, "svc.reports"))
	dispatcher := commands.NewDispatcher(client, sess, reportSvc, in, os.Stdout, logger.Named(baseLogger, "svc.commands"))

	watch := scheduler.NewScheduler(cfg.Watch.CronSchedule, client.Products, logger.Named(baseLogger, "scheduler"))
	watch.Start()
	defer watch.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repl(ctx, in, dispatcher)
}

// repl runs the interactive shell loop until exit or interrupt.
func repl(ctx context.Context, in *bufio.Reader, dispatcher *commands.Dispatcher) {
	fmt.Println(`stockpilot inventory console. Type "help" for commands.`)

	for {
		fmt.Print("stockpilot> ")
		raw, err := in.ReadString('\n')
		if err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(raw)
		if line == "exit" || line == "quit" {
			return
		}

		if err := dispatcher.Execute(ctx, line); err != nil {
			printError(err)
		}
	}
}

func printError(err error) {
	switch {
	case errors.Is(err, commands.ErrLoginRequired):
		fmt.Println("Please log in first: login <username> <password>")
	case errors.Is(err, commands.ErrUnknownCommand), errors.Is(err, commands.ErrInvalidArguments):
		fmt.Println(err.Error())
	default:
		var apiErr *inventory.APIError
		if errors.As(err, &apiErr) && !apiErr.AuthFailure() {
			fmt.Println("Error:", apiErr.Message)
			return
		}
		fmt.Println("Error:", err.Error())
	}
}
