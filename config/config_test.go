package config

import (
	"errors"
	"testing"

	"github.com/colinrgodsey/vecd/vec"
)

func TestConfig(t *testing.T) {
	conf, err := LoadConfig("../config.hjson")

	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if conf.Precision != 6 || conf.Quiet {
		t.Fatalf("Bad settings %+v", conf)
	}

	regs, err := conf.Presets()
	if err != nil {
		t.Fatal(err)
	}
	if !regs["gravity"].Equals(vec.New(0, 0, -9.80665)) {
		t.Fatalf("Bad gravity %v", regs["gravity"])
	}
	if regs["up"].Magnitude() != 1 || regs["origin"].Dim() != 3 {
		t.Fatalf("Missing registers %v", regs)
	}
	if s := regs["scale"]; s.Dim() != 1 || s.X() != 2 {
		t.Fatalf("Scalar register should be 1-d, got %v", s)
	}
}

func TestDefaults(t *testing.T) {
	conf, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if conf.Precision != -1 || len(conf.RegisterNames()) != 0 {
		t.Fatalf("Bad defaults %+v", conf)
	}

	if _, err := LoadConfig("missing.hjson"); err == nil {
		t.Fatalf("Missing file should fail")
	}
}

func TestCoercion(t *testing.T) {
	conf, err := Parse([]byte(`
		registers: {
			b: ["x", 2, "3.5", null, true]
			a: []
		}
	`))
	if err != nil {
		t.Fatal(err)
	}
	if names := conf.RegisterNames(); len(names) != 2 || names[0] != "a" {
		t.Fatalf("Bad names %v", names)
	}
	regs, _ := conf.Presets()
	if regs["b"].String() != "<0,2,3.5,0,1>" || regs["a"].Dim() != 0 {
		t.Fatalf("Bad coercion %v", regs)
	}
}

func TestBadRegister(t *testing.T) {
	for _, doc := range []string{
		`{registers: {"a b": [1]}}`,
		`{registers: {"": [1]}}`,
		`{registers: {"$a": [1]}}`,
	} {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrBadRegister) {
			t.Errorf("Expected ErrBadRegister for %v, got %v", doc, err)
		}
	}
}
