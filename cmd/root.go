// Package cmd provides the CLI commands for the FlowTask application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/adapters/git"
	"github.com/flowtaskapp/flowtask/internal/adapters/notification"
	"github.com/flowtaskapp/flowtask/internal/adapters/storage"
	"github.com/flowtaskapp/flowtask/internal/adapters/term"
	"github.com/flowtaskapp/flowtask/internal/config"
	"github.com/flowtaskapp/flowtask/internal/ports"
	"github.com/flowtaskapp/flowtask/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	jsonOutput bool

	// Global dependencies
	storageAdapter ports.Storage
	taskService    *services.TaskService
	rewardService  *services.RewardService
	focusService   *services.FocusService
	gitDetector    ports.GitDetector
	notifier       *notification.Notifier
	confirmer      ports.Confirmer
	appConfig      *config.Config
	themeName      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flowtask",
	Short: "FlowTask - a task manager with deadlines, streaks, and focus sessions",
	Long: `FlowTask is a command-line task manager that understands deadlines
written in plain English, rewards finished work with XP and streaks,
and runs pomodoro focus sessions against your tasks.

Run "flowtask" with no arguments to see today's tasks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.flowtask/flowtask.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("FlowTask CLI\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(themeCmd)
}

// initializeServices sets up all the required services and adapters.
// Every command runs the same startup sequence: load config, open
// storage, apply the day boundary, then roll yesterday's unfinished
// tasks into today.
func initializeServices(ctx context.Context) error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	notifier = notification.New(appConfig.Notifications.Enabled, appConfig.Notifications.Sound)
	confirmer = term.New(os.Stdin, os.Stdout)

	if dbPath == "" {
		dbPath = config.GetDBPath(appConfig)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	storageAdapter, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	gitDetector = git.NewDetector()
	clock := ports.SystemClock{}

	taskService = services.NewTaskService(storageAdapter.Tasks(), clock)
	rewardService = services.NewRewardService(storageAdapter.UserData(), clock)
	focusService = services.NewFocusService(
		storageAdapter.Settings(),
		storageAdapter.Stats(),
		clock,
		ports.NewSystemTicker,
		gitDetector,
		rewardService,
	)
	taskService.SetRewards(rewardService)
	rewardService.SetOnCelebration(func(message string, xp int) {
		notifier.Notify("FlowTask", fmt.Sprintf("%s +%d XP", message, xp))
	})

	if err := rewardService.StartDay(ctx); err != nil {
		return err
	}
	if err := taskService.Load(ctx); err != nil {
		return err
	}
	if _, err := taskService.Rollover(ctx, clock.Now()); err != nil {
		return err
	}
	if err := focusService.Load(ctx); err != nil {
		return err
	}

	themeName, err = storageAdapter.Theme().Load(ctx)
	if err != nil {
		return err
	}

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if focusService != nil {
		focusService.Close()
	}
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
