package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"foodieframe_client/internal/app"
	"foodieframe_client/internal/cli"
	"foodieframe_client/internal/config"
	"foodieframe_client/pkg/configwatcher"
	"foodieframe_client/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	watch := flag.Bool("watch-config", false, "keep running and reload config.yaml on change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	if *watch {
		go func() {
			configFile := *configDir + "/config.yaml"
			if err := configwatcher.WatchConfig(configFile, application.Reload); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	command := cli.New(application)
	runErr := command.Run(ctx, flag.Args())

	application.Shutdown(context.Background())

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", runErr)
		os.Exit(1)
	}
}
