package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/herbiel/QuantDinger/client"
	"github.com/herbiel/QuantDinger/internal/config"
)

const userAgent = "userctl"

// rootOptions holds the persistent flags shared by every sub-command.
type rootOptions struct {
	baseURL string
	token   string
	timeout time.Duration
	debug   bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cfg, err := client.LoadConfig()
	if err != nil {
		cfg = &client.Config{BaseURL: "http://localhost:5000", Timeout: 30 * time.Second}
	}

	rootCmd := &cobra.Command{
		Use:           "userctl",
		Short:         "userctl manages QuantDinger user accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger(cmd.ErrOrStderr())
			if opts.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(config.ParseLogLevel(os.Getenv("LOG_LEVEL")))
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", cfg.BaseURL, "Base URL of the QuantDinger backend (QUANTDINGER_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", cfg.Token, "Session token sent as a bearer credential (QUANTDINGER_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Timeout, "Per-request HTTP timeout")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", cfg.Debug, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newUsersCmd(opts))
	rootCmd.AddCommand(newRolesCmd(opts))
	rootCmd.AddCommand(newProfileCmd(opts))

	return rootCmd
}

// newClient builds an SDK client from the persistent flags.
func (o *rootOptions) newClient() (*client.Client, error) {
	return client.New(o.baseURL, o.token,
		client.WithHTTPTimeout(o.timeout),
		client.WithDebugLogging(o.debug),
		client.WithUserAgent(userAgent),
	)
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// parseID parses a user identifier argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return id, nil
}
