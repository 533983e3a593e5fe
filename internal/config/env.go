// This file implements the environment layer of the configuration: FIBSPIRAL_*
// variables fill in any flag the command line left untouched.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// flagWasSet reports whether any of names was passed explicitly on the
// command line. flag.Visit only walks flags that were set, which is what
// distinguishes an explicit `--quiet=false` from the default.
func flagWasSet(fs *flag.FlagSet, names ...string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				set = true
			}
		}
	})
	return set
}

// envOverride binds one environment key (without the FIBSPIRAL_ prefix) to
// the flag names it yields to and the parse-and-assign step for its value.
type envOverride struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

// envOverrides is the full override table. Parse failures leave the config
// untouched: a garbled environment should degrade to defaults, not abort.
var envOverrides = []envOverride{
	{"N", []string{"n"}, func(c *AppConfig, v string) {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.N = n
			c.NSet = true
		}
	}},
	{"MAX_BAR", []string{"max-bar"}, func(c *AppConfig, v string) {
		if w, err := strconv.Atoi(v); err == nil {
			c.MaxBar = w
		}
	}},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},

	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) { c.Theme = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) { c.MetricsAddr = v }},

	{"CHART", []string{"chart"}, func(c *AppConfig, v string) { c.ShowChart = parseBool(v, c.ShowChart) }},
	{"SPIRAL", []string{"spiral"}, func(c *AppConfig, v string) { c.ShowSpiral = parseBool(v, c.ShowSpiral) }},
	{"SEQ", []string{"seq"}, func(c *AppConfig, v string) { c.ShowSequence = parseBool(v, c.ShowSequence) }},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) { c.Quiet = parseBool(v, c.Quiet) }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) { c.NoColor = parseBool(v, c.NoColor) }},
}

// parseBool reads a boolean environment value: true/1/yes and false/0/no,
// case-insensitive. Anything else keeps the fallback.
func parseBool(val string, fallback bool) bool {
	switch strings.ToLower(val) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}

// applyEnvOverrides fills cfg from the environment for every flag the command
// line did not set, completing the CLI > environment > defaults precedence.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if flagWasSet(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.key); val != "" {
			o.apply(cfg, val)
		}
	}
}
