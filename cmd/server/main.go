// Package main - Entry point for the SMS cost estimation server
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"sms-cost/api"
	"sms-cost/core/message"
	"sms-cost/core/pricelist"
	"sms-cost/core/pricing"
	"sms-cost/internal/config"
	"sms-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := pflag.String("addr", ":8080", "server address")
	cfgFile := pflag.String("config", config.DefaultPath(), "config file")
	envFile := pflag.String("env-file", ".env", "dotenv file with SMSCOST_* variables")
	pflag.Parse()

	if err := run(*addr, *cfgFile, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, cfgFile, envFile string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	table, err := loadTable(ctx, cfg.Pricing)
	if err != nil {
		return err
	}

	counter := message.NewCounter(message.WithAstralUnits(cfg.Segmentation.AstralUnits))
	server := api.NewServer(api.NewHandler(table, counter, version, cfg.Pricing.Strict))

	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	fmt.Printf("sms-cost server v%s\n", version)
	fmt.Printf("   API: http://%s\n", ln.Addr())
	fmt.Printf("   Prices: %d countries (%s)\n\n", table.Len(), table.Source())

	return server.Serve(ctx, ln)
}

func loadTable(ctx context.Context, cfg config.PricingConfig) (*pricing.Table, error) {
	table, err := pricelist.FromConfig(cfg).Load(ctx)
	if err != nil {
		return nil, err
	}
	logging.Info("serving prices", zap.String("table", table.ID()), zap.Int("countries", table.Len()))
	return table, nil
}
