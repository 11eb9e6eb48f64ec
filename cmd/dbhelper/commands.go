package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/dbhelper"
	"github.com/neuronlabs/dbhelper/config"
	"github.com/neuronlabs/dbhelper/log"
	"github.com/neuronlabs/dbhelper/orm"
)

const (
	// Version is the command version.
	Version = "0.1.0"
	appName = "dbhelper"
)

type rootOptions struct {
	configPath string
	envPath    string
	envPrefix  string
	logLevel   string
}

func rootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect the database engines defined in the settings",
		Long: `Dbhelper reads the settings file and creates the engines defined in it:

  sqlalchemy.url = postgres://localhost/app
  sqlahelper.<name>.url = mysql+sqlx://localhost/other
  sqlahelper.<name>.echo = yes

The settings might be overridden with the environment variables, i.e. DBHELPER_SQLALCHEMY_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "dbhelper.properties", "Settings file path (properties, ini, yaml, json, toml)")
	flags.StringVar(&o.envPath, "env", "", "Optional .env file loaded before reading the settings")
	flags.StringVar(&o.envPrefix, "env-prefix", config.DefaultEnvPrefix, "Environment variables prefix of the settings overrides")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (debug3, debug2, debug, info, warning, error)")

	cmd.AddCommand(enginesCmd(o), pingCmd(o), healthCmd(o), versionCmd())
	return cmd
}

func (o *rootOptions) setup() error {
	if o.logLevel != "" {
		level, err := log.ParseLevel(o.logLevel)
		if err != nil {
			return err
		}
		log.Default()
		if err = log.SetLevel(level); err != nil {
			return err
		}
	}
	if o.envPath != "" {
		if err := godotenv.Load(o.envPath); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	}
	return nil
}

// helper creates the helper with the engines from the settings file.
func (o *rootOptions) helper() (*dbhelper.Helper, error) {
	h := dbhelper.New()
	if err := h.IncludeFile(o.configPath, config.WithEnvPrefix(o.envPrefix)); err != nil {
		return nil, err
	}
	return h, nil
}

func enginesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List the engines defined in the settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := o.helper()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDRIVER\tECHO\tURL")
			for _, name := range h.Engines().Names() {
				e, err := h.GetEngine(name)
				if err != nil {
					fmt.Fprintf(w, "%s\t-\t-\t-\n", name)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", name, e.DriverName(), e.Echo(), e.URL().Redacted())
			}
			return w.Flush()
		},
	}
}

func pingCmd(o *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "ping [name...]",
		Short: "Connect the engines and check their connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := o.helper()
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				for _, name := range h.Engines().Names() {
					if e, _ := h.Engines().Lookup(name); e != nil {
						names = append(names, name)
					}
				}
			}

			var failed int
			for _, name := range names {
				e, err := h.GetEngine(name)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)
					failed++
					continue
				}
				if err = ping(cmd.Context(), e, timeout); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d engines failed", failed, len(names))
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Timeout of a single engine ping")
	return cmd
}

func ping(ctx context.Context, e orm.Engine, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	defer func() {
		if err := e.Close(); err != nil {
			log.Debugf("Closing engine: '%s' failed: %v", e.URL().Redacted(), err)
		}
	}()
	return e.Ping(ctx)
}

func healthCmd(o *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the health of all the engines concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := o.helper()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := h.HealthCheck(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", resp.Status)
			if resp.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Output)
			}
			for _, note := range resp.Notes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", note)
			}
			if resp.Status == dbhelper.StatusFail {
				return fmt.Errorf("health check failed")
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", dbhelper.DefaultHealthCheckTimeout, "Timeout of the health check")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
