package main

import (
	"fmt"
	"log"
	"os"

	internalcli "github.com/bloglist/e2etest/internal/cli"
	"github.com/bloglist/e2etest/internal/config"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// ResetCommand returns the reset command
func ResetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Clear the blog backend and seed the fixture users",
		Action: func(c *cli.Context) error {
			deps, err := internalcli.BuildDependencies(os.Getenv)
			if err != nil {
				return err
			}

			ctx, cancel := internalcli.SignalContext(deps.Config, true)
			defer cancel()

			return internalcli.RunReset(ctx, deps)
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Reset the backend, open the app and check the login form is shown",
		Action: func(c *cli.Context) error {
			deps, err := internalcli.BuildDependencies(os.Getenv)
			if err != nil {
				return err
			}

			ctx, cancel := internalcli.SignalContext(deps.Config, false)
			defer cancel()

			return internalcli.RunSmoke(ctx, deps)
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the playwright driver and browsers",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "browser",
				Usage: "browser engine to install (chromium, firefox, webkit)",
				Value: cli.NewStringSlice(config.BrowserChromium),
			},
		},
		Action: func(c *cli.Context) error {
			return internalcli.RunInstall(c.StringSlice("browser"))
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "bloglist-e2e",
		Usage:   "End-to-end test tooling for the blog app",
		Version: version,
		Commands: []*cli.Command{
			ResetCommand(),
			SmokeCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
