package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Yuter777/Which-flag-game/internal/config"
)

const releaseVersion = "0.2.0"

func main() {
	cfg := config.Default()
	cobra.CheckErr(newCmd(&cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WHICHFLAG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "whichflag",
		Short:   "A flag-guessing game for the browser: tap, watch the shuffle, guess before the name drops.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "address to bind to (env: WHICHFLAG_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: WHICHFLAG_PORT)")
	fs.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "externally reachable base URL for the QR code (env: WHICHFLAG_PUBLIC_URL)")
	fs.StringVar(&cfg.SourceV2URL, "source-v2", cfg.SourceV2URL, "restcountries v2 endpoint override (env: WHICHFLAG_SOURCE_V2)")
	fs.StringVar(&cfg.SourceV31URL, "source-v31", cfg.SourceV31URL, "restcountries v3.1 endpoint override (env: WHICHFLAG_SOURCE_V31)")
	fs.StringVar(&cfg.MirrorURL, "source-mirror", cfg.MirrorURL, "apicountries mirror endpoint override (env: WHICHFLAG_SOURCE_MIRROR)")
	fs.StringVar(&cfg.SnapshotURL, "source-snapshot", cfg.SnapshotURL, "static snapshot endpoint override (env: WHICHFLAG_SOURCE_SNAPSHOT)")
	fs.DurationVar(&cfg.SourceTimeout, "source-timeout", cfg.SourceTimeout, "per-source fetch timeout (env: WHICHFLAG_SOURCE_TIMEOUT)")
	fs.IntVar(&cfg.CountdownTicks, "countdown", cfg.CountdownTicks, "guess-time ticks per round (env: WHICHFLAG_COUNTDOWN)")
	fs.DurationVar(&cfg.TickInterval, "tick-interval", cfg.TickInterval, "wall time per countdown tick (env: WHICHFLAG_TICK_INTERVAL)")
	fs.DurationVar(&cfg.RevealHold, "reveal-hold", cfg.RevealHold, "how long the flag stays up before the countdown (env: WHICHFLAG_REVEAL_HOLD)")
	fs.DurationVar(&cfg.RestDelay, "rest-delay", cfg.RestDelay, "how long the name stays up before returning to idle (env: WHICHFLAG_REST_DELAY)")
	fs.BoolVar(&cfg.ExportEnabled, "export", cfg.ExportEnabled, "append round results to the export file (env: WHICHFLAG_EXPORT)")
	fs.StringVar(&cfg.ExportFile, "export-file", cfg.ExportFile, "path of the results export file (env: WHICHFLAG_EXPORT_FILE)")
	fs.BoolVar(&cfg.Profile, "profile", cfg.Profile, "register net/http/pprof handlers (env: WHICHFLAG_PROFILE)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log at debug level (env: WHICHFLAG_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("whichflag v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
