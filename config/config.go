package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/colinrgodsey/vecd/vec"
	"github.com/hjson/hjson-go"
)

// ErrBadRegister is returned for register names that can not be
// referenced from a command line.
var ErrBadRegister = errors.New("config: bad register name")

// Config for the vecd evaluator.
type Config struct {
	// Precision rounds printed components, -1 prints the shortest form.
	Precision int `json:"precision"`

	// Quiet disables the "ok" line sent after each command.
	Quiet bool `json:"quiet"`

	// Registers preset on startup. Values are arrays of numbers or
	// numeric strings, or a single number for a 1-d vector.
	Registers map[string]interface{} `json:"registers"`
}

// Default returns the config used when no file is given.
func Default() Config {
	return Config{Precision: -1}
}

func LoadConfig(path string) (conf Config, err error) {
	conf = Default()
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	bytes, err := ioutil.ReadAll(f)
	if err != nil {
		return
	}
	if conf, err = Parse(bytes); err != nil {
		err = fmt.Errorf("config: parse %s: %w", path, err)
	}
	return
}

// Parse reads an HJSON config document.
func Parse(bytes []byte) (conf Config, err error) {
	conf = Default()
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(bytes, &mdat); err != nil {
		return
	}
	if bytes, err = json.Marshal(mdat); err != nil {
		return
	}
	if err = json.Unmarshal(bytes, &conf); err != nil {
		return
	}
	_, err = conf.Presets() // fail early on bad registers
	return
}

// Presets returns the configured registers as vectors.
func (c Config) Presets() (map[string]vec.Vector, error) {
	regs := make(map[string]vec.Vector, len(c.Registers))
	for _, name := range c.RegisterNames() {
		if name == "" || strings.ContainsAny(name, " \t,;*$") {
			return nil, fmt.Errorf("%w %q", ErrBadRegister, name)
		}
		raw := c.Registers[name]
		if _, ok := raw.([]interface{}); !ok {
			// single value, 1-d vector
			raw = []interface{}{raw}
		}
		v, err := vec.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("register %q: %w", name, err)
		}
		regs[name] = v
	}
	return regs, nil
}

// RegisterNames returns the preset register names in order.
func (c Config) RegisterNames() []string {
	names := make([]string, 0, len(c.Registers))
	for name := range c.Registers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
