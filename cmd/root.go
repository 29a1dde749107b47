package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/icetop/nhlapi/config"
	"github.com/icetop/nhlapi/filter"
	"github.com/icetop/nhlapi/nhl"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *nhl.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nhlapi",
	Short: "Query NHL standings, schedules, games and players from the terminal",
	Long: `nhlapi is a CLI for the public NHL statistics services. It can show
standings for any date or season, daily and weekly schedules, boxscores
and play-by-play for individual games, and player profiles, with
expression-based filtering of the output.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build metadata shown by --version.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := nhl.DefaultOptions()
	opts.Timeout = cfg.Client.Timeout
	opts.TLSVerify = cfg.Client.TLSVerify
	opts.FollowRedirects = cfg.Client.FollowRedirects
	opts.Logger = logger

	client = nhl.NewClientWithOptions(opts)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when stderr is a terminal
	color := cfg.Color &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// compileFilter resolves the --filter/--preset pair into a compiled
// filter, or nil when neither was given.
func compileFilter() (*filter.Filter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		var ok bool
		expression, ok = cfg.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
	}
	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// parseDateArg interprets an optional positional date argument. No
// argument means "now".
func parseDateArg(args []string) (nhl.GameDate, error) {
	if len(args) == 0 {
		return nhl.Now(), nil
	}
	return nhl.ParseGameDate(args[0])
}
