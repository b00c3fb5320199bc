package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/mgsolli/hjemmebyggern/internal/logger"
	"github.com/mgsolli/hjemmebyggern/internal/preview"
	"github.com/mgsolli/hjemmebyggern/internal/runner"
)

var CLI struct {
	Config   string `short:"c" help:"Sti til sidekonfigurasjonen" default:"config.yaml"`
	Template string `short:"t" help:"Sti til HTML-malen" default:"templates/index.template.html"`
	Assets   string `short:"a" help:"Katalog med statiske ressurser" default:"src"`
	Output   string `short:"o" help:"Utkatalog for den genererte siden" default:"dist"`
	Verbose  bool   `short:"v" help:"Slå på debug-logging"`

	Build struct{} `cmd:"" default:"1" help:"Bygg hjemmesiden én gang"`

	Preview struct {
		Addr string `help:"Adresse forhåndsvisningen lytter på" default:"localhost:8080"`
	} `cmd:"" help:"Serve siden lokalt og bygg på nytt ved endringer"`
}

func main() {
	// .env er valgfri; GITHUB_TOKEN kan ligge der.
	_ = godotenv.Load()

	kctx := kong.Parse(&CLI)

	logger.SetupLogger()
	logger.SetDebug(CLI.Verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	opts := runner.Options{
		ConfigPath:   CLI.Config,
		TemplatePath: CLI.Template,
		AssetDir:     CLI.Assets,
		OutputDir:    CLI.Output,
	}
	deps := runner.RealDeps{Token: os.Getenv("GITHUB_TOKEN")}

	var err error
	switch kctx.Command() {
	case "build":
		err = runner.RunApp(ctx, opts, deps)
	case "preview":
		err = preview.Run(ctx, opts, deps, CLI.Preview.Addr)
	}
	if err != nil {
		slog.Error("Applikasjonen feilet", "error", err)
		os.Exit(1)
	}
}
