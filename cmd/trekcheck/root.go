package main

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/trekcheck/trekcheck/pkg/config"
	"github.com/trekcheck/trekcheck/pkg/license"
	"github.com/trekcheck/trekcheck/pkg/logger"
	"github.com/trekcheck/trekcheck/pkg/ratelimiter"
	"github.com/trekcheck/trekcheck/svc/combination"
)

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg     appConfig
	log     *slog.Logger
	svc     *combination.Service
	verbose bool
	envFile string
}

// NewRootCmd builds the command tree. configOpts are passed to the
// configuration loader; tests use them to supply an isolated environment.
func NewRootCmd(configOpts ...config.Option) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "trekcheck",
		Short: "Check whether a car may tow a trailer under a driving license",
		Long: `trekcheck compares a car and a trailer against the combination weight of a
driving license class, the brake requirement for trailers above 750 kg and
the towing capacity of the car. Vehicle data uses the field names of the
Dutch RDW open-data set.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, configOpts)
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log service activity to stderr")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file first")

	cmd.AddCommand(
		newCheckCmd(a),
		newLicensesCmd(a),
		newSchemaCmd(),
		newServeCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, configOpts []config.Option) error {
	if a.envFile != "" {
		configOpts = append(slices.Clone(configOpts), config.WithDotEnv(a.envFile))
	}
	cfg, err := loadConfig(configOpts...)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.Discard()
	if a.verbose || cmd.Name() == "serve" {
		a.log = cfg.newLogger(cmd.ErrOrStderr())
	}

	registry, err := a.registry()
	if err != nil {
		return err
	}
	tr, err := combination.NewTranslator(cmd.Context(), cfg.DefaultLang, a.log)
	if err != nil {
		return err
	}
	opts := []combination.Option{
		combination.WithLogger(a.log),
		combination.WithTrustedProxyHeaders(cfg.TrustedProxyHeaders...),
	}
	if cfg.RateLimitEnabled {
		limiter, err := ratelimiter.New(cfg.RateLimit)
		if err != nil {
			return errors.Join(errInvalidConfig, err)
		}
		opts = append(opts, combination.WithRateLimiter(limiter))
	}
	a.svc, err = combination.New(registry, tr, opts...)
	return err
}

func (a *app) registry() (*license.Registry, error) {
	if a.cfg.LicenseTable != "" {
		return license.LoadFile(a.cfg.LicenseTable)
	}
	return license.Default()
}
