package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	goschemes "github.com/reoring/goschemes"
	"github.com/reoring/goschemes/codec"
	"github.com/reoring/goschemes/i18n"
	"github.com/reoring/goschemes/internal/logger"
)

// Config keys, settable by flag, config file or GOSCHEMES_* environment.
const (
	keyCacheSize = "cache-size"
	keyLang      = "lang"
	keyOutput    = "output"
	keyLogFormat = "log-format"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	noColor     bool
}

var longRootCmdDescription = `goschemes classifies rings and ring homomorphisms in the category of
schemes: it converts them into spectra and scheme morphisms, and describes
the category of schemes over a given base.
`

// NewRootCmd builds the command tree with its own configuration instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "goschemes",
		Short:         "Convert rings into schemes and describe categories of schemes.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, opts); err != nil {
				return err
			}
			if err := logger.Init(logger.LogOptions{
				Verbose:      opts.debugModeOn,
				Format:       v.GetString(keyLogFormat),
				DisableColor: opts.noColor,
				Output:       cmd.ErrOrStderr(),
			}); err != nil {
				return errors.Wrap(err, "failed to init logger")
			}
			i18n.SetLanguage(v.GetString(keyLang))
			reg := goschemes.NewRegistry(
				goschemes.WithCacheSize(v.GetInt(keyCacheSize)),
				goschemes.WithLogger(logrus.StandardLogger()),
			)
			cmd.SetContext(goschemes.WithRegistry(cmd.Context(), reg))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (yaml or json)")
	pf.BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored log output")
	pf.Int(keyCacheSize, 0, "maximum number of cached categories over a base (0 = unbounded)")
	pf.String(keyLang, "en", "message language (en or ja)")
	pf.StringP(keyOutput, "o", string(codec.FormatText), "output format: text, json or yaml")
	pf.String(keyLogFormat, "text", "log format: text or json")
	for _, k := range []string{keyCacheSize, keyLang, keyOutput, keyLogFormat} {
		_ = v.BindPFlag(k, pf.Lookup(k))
	}

	rootCmd.AddCommand(newConvertCmd(v), newCategoryCmd(v), NewVersionCmd())
	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, opts *rootOpts) error {
	v.SetEnvPrefix("GOSCHEMES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if opts.cfgFile == "" {
		return nil
	}
	v.SetConfigFile(opts.cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", opts.cfgFile)
	}
	return nil
}

func outputFormat(v *viper.Viper) (codec.Format, error) {
	return codec.ParseFormat(v.GetString(keyOutput))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("goschemes-%s: %v", Version, err)
		os.Exit(1)
	}
}
