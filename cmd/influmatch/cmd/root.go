package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	influmatch "github.com/influmatch/influmatch-go"
	"github.com/influmatch/influmatch-go/pkg/logger"
	"github.com/influmatch/influmatch-go/pkg/session"
	"github.com/influmatch/influmatch-go/pkg/session/boltstore"
)

var (
	apiURL     string
	dataDir    string
	storeKind  string
	jsonOutput bool
	verbose    bool
)

// profile is the optional ~/.influmatch/config.yaml. Environment variables
// and flags win over it. Durations are Go duration strings like "45s".
type profile struct {
	APIURL     string `yaml:"api_url"`
	LoginPath  string `yaml:"login_path"`
	Timeout    string `yaml:"timeout"`
	RetryCount int    `yaml:"retry_count"`
	RetryDelay string `yaml:"retry_delay"`
	Store      string `yaml:"store"`
}

func (p profile) timeout() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(p.Timeout)
}

func (p profile) retryDelay() (time.Duration, error) {
	if p.RetryDelay == "" {
		return 0, nil
	}
	return time.ParseDuration(p.RetryDelay)
}

var rootCmd = &cobra.Command{
	Use:   "influmatch",
	Short: "Command line client for the influmatch marketplace",
	Long: `influmatch talks to the influmatch influencer-marketing backend.
Log in once; credentials are stored under the data directory and attached
to every later call.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides profile and INFLUMATCH_API_URL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for stored credentials (default ~/.influmatch)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "credential store backend: file or bolt (default file)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".influmatch"
	}
	return filepath.Join(home, ".influmatch")
}

func loadProfile(dir string) (profile, error) {
	var p profile
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// newClient assembles the SDK client from profile, environment, and flags,
// in that order of precedence. The returned cleanup closes the credential
// store when one needs closing.
func newClient() (*influmatch.Client, func(), error) {
	dir := dataDir
	if dir == "" {
		dir = defaultDataDir()
	}

	prof, err := loadProfile(dir)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := influmatch.ConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	if os.Getenv("INFLUMATCH_API_URL") == "" && prof.APIURL != "" {
		cfg.BaseURL = prof.APIURL
	}
	if prof.LoginPath != "" && os.Getenv("INFLUMATCH_LOGIN_PATH") == "" {
		cfg.LoginPath = prof.LoginPath
	}
	if timeout, err := prof.timeout(); err != nil {
		return nil, nil, fmt.Errorf("profile timeout: %w", err)
	} else if timeout > 0 && os.Getenv("INFLUMATCH_TIMEOUT") == "" {
		cfg.Timeout = timeout
	}
	if prof.RetryCount > 0 && os.Getenv("INFLUMATCH_RETRY_COUNT") == "" {
		cfg.RetryCount = prof.RetryCount
	}
	if delay, err := prof.retryDelay(); err != nil {
		return nil, nil, fmt.Errorf("profile retry_delay: %w", err)
	} else if delay > 0 && os.Getenv("INFLUMATCH_RETRY_DELAY") == "" {
		cfg.RetryDelay = delay
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}

	kind := storeKind
	if kind == "" {
		kind = prof.Store
	}
	if kind == "" {
		kind = "file"
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data directory: %w", err)
	}

	var storage session.Storage
	cleanup := func() {}
	switch kind {
	case "file":
		storage = session.NewFileStorage(filepath.Join(dir, "credentials.json"))
	case "bolt":
		bolt, err := boltstore.Open(filepath.Join(dir, "credentials.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open credential store: %w", err)
		}
		storage = bolt
		cleanup = func() { _ = bolt.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q (want file or bolt)", kind)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(os.Stderr),
	)

	client := influmatch.New(cfg,
		influmatch.WithStorage(storage),
		influmatch.WithLogger(log),
	)
	return client, cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
