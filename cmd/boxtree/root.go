package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/markup"
	"github.com/npillmayer/boxtree/text"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the application version, set at build time with
// -ldflags "-X main.Version=…".
var Version = "0.1.0"

// config is the configuration of a render run, read from ./boxtree.yaml,
// BOXTREE_* environment variables and flags.
type config struct {
	Scale  float32 `mapstructure:"scale"`
	Origin struct {
		X float32 `mapstructure:"x"`
		Y float32 `mapstructure:"y"`
	} `mapstructure:"origin"`
	Trace string `mapstructure:"trace"`
}

var traceKeys = []string{
	"boxtree.tree", "boxtree.selector", "boxtree.style", "boxtree.layout",
	"boxtree.text", "boxtree.dom", "boxtree.cssom", "boxtree.markup",
}

// app holds the state shared by the sub-commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	conf    config
}

// newRootCmd creates the command tree with a private viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "boxtree",
		Short:         "boxtree styles and lays out trees of boxes read from markup.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initializeConfig(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./boxtree.yaml)")
	flags.Float32("scale", 1, "global scale factor")
	flags.String("trace", "error", "trace level (error, info, debug)")
	root.AddCommand(a.renderCmd(), a.queryCmd(), a.dotCmd())
	return root
}

// initializeConfig reads in config file and ENV variables if set.
func (a *app) initializeConfig(cmd *cobra.Command) error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("boxtree")
		v.SetConfigType("yaml")
	}
	v.SetDefault("scale", 1.0)
	v.SetDefault("origin.x", 0.0)
	v.SetDefault("origin.y", 0.0)
	v.SetDefault("trace", "error")
	v.SetEnvPrefix("BOXTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlag("scale", cmd.Flags().Lookup("scale")); err != nil {
		return err
	}
	if err := v.BindPFlag("trace", cmd.Flags().Lookup("trace")); err != nil {
		return err
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// config file not found; proceed with defaults/env vars
	}
	if err := v.Unmarshal(&a.conf); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	setTraceLevel(a.conf.Trace)
	return nil
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// load reads a markup file and renders it according to the configuration.
func (a *app) load(path string) (*dom.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := markup.Load(f,
		dom.WithScale(a.conf.Scale),
		dom.WithMeasurer(text.NewMeasurer()),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = t.Render(geom.Pt(a.conf.Origin.X, a.conf.Origin.Y)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
