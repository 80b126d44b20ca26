package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/vitae"
)

var (
	verbose    bool
	configFile string
	envFile    string
	authEmail  string
	authPass   string
	baseURL    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vitae",
	Short: "Automation tools for a hosted resume service",
	Long: `Vitae drives a Reactive-Resume-compatible service from the command line.
Each subcommand performs one operation: create, get, list, update, section
update or PDF export, optionally uploading exports to an XBackbone host.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to the .env file")
	rootCmd.PersistentFlags().StringVar(&authEmail, "email", "", "Resume service email")
	rootCmd.PersistentFlags().StringVar(&authPass, "password", "", "Resume service password")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Resume service API base URL")
}

// newToolset builds the toolset from the persistent flags.
func newToolset() *vitae.Toolset {
	opts := []vitae.Option{vitae.WithLogger(slog.Default())}
	if configFile != "" {
		opts = append(opts, vitae.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, vitae.WithEnvFile(envFile))
	}
	return vitae.New(opts...)
}

// authFields returns the nested auth object assembled from the persistent
// credential flags, or nil when none were given.
func authFields() map[string]any {
	auth := map[string]any{}
	if authEmail != "" {
		auth["email"] = authEmail
	}
	if authPass != "" {
		auth["password"] = authPass
	}
	if baseURL != "" {
		auth["base_url"] = baseURL
	}
	if len(auth) == 0 {
		return nil
	}
	return auth
}

// encodeParams serializes a request object for the façades.
func encodeParams(params map[string]any) string {
	b, err := json.Marshal(params)
	if err != nil {
		fatal("Failed to encode parameters", err)
	}
	return string(b)
}

// emit prints a façade result and exits non-zero on an error string.
func emit(result string) {
	fmt.Println(result)
	if strings.HasPrefix(result, "Error: ") {
		os.Exit(1)
	}
}

// parseJSONFlag decodes a flag carrying inline JSON.
func parseJSONFlag(name, value string) any {
	var v any
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		fatal(fmt.Sprintf("Invalid JSON in --%s", name), err)
	}
	return v
}
