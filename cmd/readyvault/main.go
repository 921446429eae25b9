package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rgehrsitz/readyvault/internal/config"
	"github.com/rgehrsitz/readyvault/internal/domain"
	"github.com/rgehrsitz/readyvault/internal/logging"
	"github.com/rgehrsitz/readyvault/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by every subcommand
type app struct {
	settings *config.Settings
	log      zerolog.Logger

	verbose  bool
	debug    bool
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "readyvault",
		Short: "Retirement readiness calculator",
		Long: `Estimate retirement readiness from a household financial profile using
three methods: the 70-80% rule, the 4% safe withdrawal rule and a Monte Carlo
portfolio survival simulation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log intermediate calculation values")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides READYVAULT_LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Rotating log file; overrides READYVAULT_LOG_FILE")

	rootCmd.AddCommand(
		a.analyzeCmd(),
		a.compareCmd(),
		a.simulateCmd(),
		a.validateCmd(),
		a.exampleCmd(),
		a.exportCmd(),
		a.historyCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return rootCmd
}

// init loads settings and configures logging before any subcommand runs
func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.settings = settings

	level := settings.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	if a.verbose || a.debug {
		level = "debug"
	}
	file := settings.LogFile
	if a.logFile != "" {
		file = a.logFile
	}

	l, err := logging.Init(logging.Config{
		Level:   level,
		File:    file,
		Pretty:  true,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = l
	return nil
}

// newEngine returns a calculation engine wired to the process logger when
// --debug is set
func (a *app) newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if a.debug {
		engine.SetLogger(logging.NewAdapter(a.log, "calculation"))
		engine.Debug = true
	}
	return engine
}

// openStore combines the SQLite database with the offline cache. Either may
// be unavailable; both failing is an error.
func (a *app) openStore() (store.Store, error) {
	var primary, cache store.Store

	db, err := store.NewSQLiteStore(a.settings.DatabasePath, a.log)
	if err != nil {
		a.log.Warn().Err(err).Str("path", a.settings.DatabasePath).Msg("Database unavailable, using offline cache only")
	} else {
		primary = db
	}

	c, err := store.NewCacheStore(a.settings.CacheDir)
	if err != nil {
		a.log.Warn().Err(err).Str("dir", a.settings.CacheDir).Msg("Offline cache unavailable")
	} else {
		cache = c
	}

	if primary == nil && cache == nil {
		return nil, fmt.Errorf("no storage available (database %s, cache %s)", a.settings.DatabasePath, a.settings.CacheDir)
	}
	return store.NewFallbackStore(primary, cache, a.log), nil
}

// loadProfile reads and validates a profile file
func loadProfile(path string) (*domain.FinancialProfile, error) {
	parser := config.NewInputParser()
	profile, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := parser.ValidateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// parseMethods accepts "all" or a comma-separated list of method names
func parseMethods(s string) ([]domain.Method, error) {
	if s == "" || strings.EqualFold(s, "all") {
		return domain.AllMethods(), nil
	}
	var methods []domain.Method
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := domain.ParseMethod(part)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("no analysis methods specified")
	}
	return methods, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "readyvault %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
