package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"

	"github.com/tonetui/tone/internal/logging"
)

// defaultRefresh is how often the current view re-fetches its pool.
const defaultRefresh = 10 * time.Second

// Config is the application configuration, assembled from flags,
// environment variables, and the config file, in that order of
// precedence.
type Config struct {
	// Endpoint is the XML-RPC endpoint of the OpenNebula frontend.
	Endpoint string
	// Readonly disables every mutating action for the session.
	Readonly bool
	// Refresh is the interval between automatic view refreshes; zero
	// disables them.
	Refresh  time.Duration
	LogLevel string
	LogFile  string
	// Debug dumps terminal messages to messages.log.
	Debug   bool
	Version bool
}

// Parse builds Config from the command line. Flag usage goes to stderr
// when parsing fails or help is requested.
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	fs := ff.NewFlagSet("tone")
	fs.StringVar(&cfg.Endpoint, 'e', "endpoint", "", "XML-RPC endpoint of the OpenNebula frontend. Falls back to ONE_XMLRPC.")
	fs.BoolVar(&cfg.Readonly, 0, "readonly", "Refuse every action; browse only.")
	fs.DurationVar(&cfg.Refresh, 'r', "refresh", defaultRefresh, "Interval between automatic view refreshes. Zero disables them.")
	fs.StringEnumVar(&cfg.LogLevel, 'l', "log-level", "Logging level.", logging.ValidLevels()...)
	fs.StringVar(&cfg.LogFile, 0, "log-file", defaultLogFile(), "Path to the log file.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.StringLong("config", defaultConfigFile(), "Path to config file in YAML format.")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TONE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}
	return cfg, nil
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tone", "tone.yaml")
}

func defaultLogFile() string {
	path, err := logging.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}
