// Package config reads options from unstructured sources such as the
// environment into option structures.
package config

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// EnvPrefix is prepended to option names to make environment variables
const EnvPrefix = "BASES_"

// Getter provides an interface to get config items
type Getter interface {
	// Get should get an item with the key passed in and return
	// the value. If the item is found then it should return true,
	// otherwise false.
	Get(key string) (value string, ok bool)
}

// Simple is a simple map based Getter
type Simple map[string]string

// Get the value with key
func (c Simple) Get(key string) (value string, ok bool) {
	value, ok = c[key]
	return value, ok
}

// Set the value for key
func (c Simple) Set(key, value string) {
	c[key] = value
}

// String the map value the same way the command line would be written
func (c Simple) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out strings.Builder
	for _, k := range keys {
		if out.Len() > 0 {
			out.WriteRune(',')
		}
		fmt.Fprintf(&out, "%s=%q", k, c[k])
	}
	return out.String()
}

// Env reads items from environment variables named Prefix followed by
// the upper cased key.
type Env struct {
	Prefix string
}

// OptionToEnv converts an option name, eg "min_bytes" into an
// environment name "BASES_MIN_BYTES"
func OptionToEnv(prefix, name string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Get the value of the environment variable for key
func (e Env) Get(key string) (value string, ok bool) {
	prefix := e.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	return os.LookupEnv(OptionToEnv(prefix, key))
}

// Map provides a wrapper around multiple Getters. The first Getter
// with a value wins.
type Map struct {
	getters []Getter
}

// New returns an empty Map
func New() *Map {
	return &Map{}
}

// AddGetter appends a getter onto the end of the getters
func (c *Map) AddGetter(getter Getter) *Map {
	c.getters = append(c.getters, getter)
	return c
}

// Get gets an item with the key passed in and return the value from
// the first getter. If the item is found then it returns true,
// otherwise false.
func (c *Map) Get(key string) (value string, ok bool) {
	for _, do := range c.getters {
		value, ok = do.Get(key)
		if ok {
			return value, ok
		}
	}
	return "", false
}

var matchUpper = regexp.MustCompile("([A-Z]+)")

// camelToSnake converts CamelCase to snake_case
func camelToSnake(in string) string {
	out := matchUpper.ReplaceAllString(in, "_$1")
	out = strings.ToLower(out)
	out = strings.Trim(out, "_")
	return out
}

// setter is implemented by flag values such as enums and log levels
type setter interface {
	Set(string) error
}

// StringToInterface turns in into an interface{} the same type as def
func StringToInterface(def interface{}, in string) (newValue interface{}, err error) {
	typ := reflect.TypeOf(def)
	if typ.Kind() == reflect.String {
		// Pass strings unmodified
		return reflect.ValueOf(in).Convert(typ).Interface(), nil
	}
	o := reflect.New(typ)
	if do, ok := o.Interface().(setter); ok {
		if err := do.Set(in); err != nil {
			return newValue, errors.Wrapf(err, "parsing %q as %T failed", in, def)
		}
		return o.Elem().Interface(), nil
	}
	// Otherwise parse with Sscanln
	//
	// This means any types we use here must implement fmt.Scanner
	n, err := fmt.Sscanln(in, o.Interface())
	if err != nil {
		return newValue, errors.Wrapf(err, "parsing %q as %T failed", in, def)
	}
	if n != 1 {
		return newValue, errors.New("no items parsed")
	}
	return o.Elem().Interface(), nil
}

// Item describes a single entry in the options structure
type Item struct {
	Name  string // snake_case
	Field string // CamelCase
	Num   int    // number of the field in the struct
	Value interface{}
}

// Items parses the opt struct and returns a slice of Item objects.
//
// opt must be a pointer to a struct.  The struct should have entirely
// public fields.
//
// The config_name is looked up in a struct tag called "config" or if
// not found is the field name converted from CamelCase to snake_case.
func Items(opt interface{}) (items []Item, err error) {
	def := reflect.ValueOf(opt)
	if def.Kind() != reflect.Ptr {
		return nil, errors.New("argument must be a pointer")
	}
	def = def.Elem() // indirect the pointer
	if def.Kind() != reflect.Struct {
		return nil, errors.New("argument must be a pointer to a struct")
	}
	defType := def.Type()
	for i := 0; i < def.NumField(); i++ {
		field := defType.Field(i)
		fieldName := field.Name
		configName, ok := field.Tag.Lookup("config")
		if !ok {
			configName = camelToSnake(fieldName)
		}
		items = append(items, Item{
			Name:  configName,
			Field: fieldName,
			Num:   i,
			Value: def.Field(i).Interface(),
		})
	}
	return items, nil
}

// Set interprets the field names in opt and looks up config values
// in the config passed in.  Any values found in config will be set in
// the opt structure.
//
// If items are found then they are converted from string to native
// types and set in opt. Fields must be strings, implement Set(string)
// error or be scannable by fmt.Sscanln.
func Set(config Getter, opt interface{}) (err error) {
	defaultItems, err := Items(opt)
	if err != nil {
		return err
	}
	defStruct := reflect.ValueOf(opt).Elem()
	for _, defaultItem := range defaultItems {
		configValue, ok := config.Get(defaultItem.Name)
		if !ok {
			continue
		}
		newValue, err := StringToInterface(defaultItem.Value, configValue)
		if err != nil {
			// Mask errors if setting an empty string as
			// it isn't valid for all types.  This makes
			// empty string be the equivalent of unset.
			if configValue == "" {
				continue
			}
			return errors.Wrapf(err, "couldn't parse config item %q = %q as %T", defaultItem.Name, configValue, defaultItem.Value)
		}
		defStruct.Field(defaultItem.Num).Set(reflect.ValueOf(newValue))
	}
	return nil
}
