// Package flags contains enhanced versions of spf13/pflag flag
// routines which will read from the environment also.
package flags

import (
	"fmt"
	"os"

	"github.com/basesgo/bases/lib/config"
	"github.com/basesgo/bases/lib/log"
	"github.com/spf13/pflag"
)

// fatalf is called when the environment holds an unusable value
var fatalf = func(format string, args ...interface{}) {
	log.Errorf(nil, format, args...)
	os.Exit(1)
}

// EnvName returns the environment variable read for flag name
func EnvName(name string) string {
	return config.OptionToEnv(config.EnvPrefix, name)
}

// setValueFromEnv constructs a name from the flag passed in and
// sets the value and default from the environment if possible
// the value may be overridden when the command line is parsed
func setValueFromEnv(flags *pflag.FlagSet, name string) {
	envKey := EnvName(name)
	envValue, found := os.LookupEnv(envKey)
	if !found {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil {
		fatalf("Couldn't find flag --%q", name)
		return
	}
	if err := flags.Set(name, envValue); err != nil {
		fatalf("Invalid value when setting --%s from environment variable %s=%q: %v", name, envKey, envValue, err)
		return
	}
	log.Debugf(nil, "Setting --%s %q from environment variable %s=%q", name, flag.Value, envKey, envValue)
	flag.DefValue = envValue
	// Set marks the flag as changed which it hasn't been on the command line
	flag.Changed = false
}

// StringVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.StringVarP
func StringVarP(flags *pflag.FlagSet, p *string, name, shorthand string, value string, usage string) {
	flags.StringVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// BoolVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.BoolVarP
func BoolVarP(flags *pflag.FlagSet, p *bool, name, shorthand string, value bool, usage string) {
	flags.BoolVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// IntVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.IntVarP
func IntVarP(flags *pflag.FlagSet, p *int, name, shorthand string, value int, usage string) {
	flags.IntVarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// Int64VarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.Int64VarP
func Int64VarP(flags *pflag.FlagSet, p *int64, name, shorthand string, value int64, usage string) {
	flags.Int64VarP(p, name, shorthand, value, usage)
	setValueFromEnv(flags, name)
}

// FVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.VarP
func FVarP(flags *pflag.FlagSet, value pflag.Value, name, shorthand, usage string) {
	flags.VarP(value, name, shorthand, usage)
	setValueFromEnv(flags, name)
}

// CountVarP defines a flag which can be set by an environment variable
//
// It is a thin wrapper around pflag.CountVarP
func CountVarP(flags *pflag.FlagSet, p *int, name, shorthand string, usage string) {
	flags.CountVarP(p, name, shorthand, usage)
	setValueFromEnv(flags, name)
}

// Usage appends the environment variable to a flag's help text
func Usage(name, usage string) string {
	return fmt.Sprintf("%s (env %s)", usage, EnvName(name))
}
