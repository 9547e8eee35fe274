package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdalmoniem/pidcat/internal/app"
	"github.com/abdalmoniem/pidcat/internal/cli"
	"github.com/abdalmoniem/pidcat/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := cli.NewRootCommand(func(ctx context.Context, opts config.Options) error {
		return app.Run(ctx, opts, app.DefaultEnv())
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		errStyle := lipgloss.NewRenderer(os.Stderr).NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("pidcat:"), err)
		return 1
	}
	return 0
}
