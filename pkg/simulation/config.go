package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lao-tseu-is-alive/go-barnes-hut/internal/scenario"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"
)

//go:embed config.schema.json
var configSchema string

const embeddedSchemaURL = "config.schema.json"

// Solver names the force solver used by Universe.Step.
const (
	SolverBarnesHut = "barnes-hut"
	SolverDirect    = "direct"
)

type Config struct {
	// Window, in pixels. The BoxSize square fills the shorter side.
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Physics
	Gravity   float64 `json:"gravity"`
	BoxSize   float64 `json:"boxSize"` // half-extent of the root cell
	Theta     float64 `json:"theta"`
	DeltaTime float64 `json:"deltaTime"`
	MaxDepth  int     `json:"maxDepth"`
	Opening   string  `json:"opening"` // "local" or "global"
	Solver    string  `json:"solver"`  // "barnes-hut" or "direct"

	LogLevel string `json:"logLevel"`
	ShowTree bool   `json:"showTree"`

	Scenario scenario.Setup `json:"scenario"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:  1000,
		WorldHeight: 800,
		Gravity:     1e-3,
		BoxSize:     barneshut.DefaultBoxSize,
		Theta:       barneshut.DefaultTheta,
		DeltaTime:   2e-3,
		MaxDepth:    barneshut.DefaultMaxDepth,
		Opening:     barneshut.OpeningLocal.String(),
		Solver:      SolverBarnesHut,
		LogLevel:    "info",
		ShowTree:    false,
		Scenario: scenario.Setup{
			Kind:        scenario.KindDisk,
			Count:       500,
			Seed:        1,
			Radius:      1.5,
			MinMass:     0.5,
			MaxMass:     2,
			CentralMass: 2000,
		},
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema. An empty schemaFile selects the schema built into the binary.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile == "" {
		return jsonschema.CompileString(embeddedSchemaURL, configSchema)
	}
	return jsonschema.Compile(schemaFile)
}

// Validate checks what the schema cannot express: the derived tree
// parameters and the enum-like strings.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Solver {
	case SolverBarnesHut, SolverDirect:
	default:
		return fmt.Errorf("config: unknown solver %q", c.Solver)
	}
	if !(c.DeltaTime > 0) {
		return fmt.Errorf("config: deltaTime must be > 0, got %v", c.DeltaTime)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Params derives the tree parameters.
func (c *Config) Params() (barneshut.Params, error) {
	opening, err := barneshut.ParseOpening(c.Opening)
	if err != nil {
		return barneshut.Params{}, err
	}
	p := barneshut.Params{
		G:        c.Gravity,
		BoxSize:  c.BoxSize,
		Theta:    c.Theta,
		MaxDepth: c.MaxDepth,
		Opening:  opening,
	}
	return p, p.Validate()
}

// ScenarioSetup returns the scenario with the configured gravity filled in.
func (c *Config) ScenarioSetup() scenario.Setup {
	s := c.Scenario
	s.G = c.Gravity
	return s
}

// ParseLogLevel maps debug, info, warn or error to a goakt log level.
func ParseLogLevel(s string) (golog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return golog.DebugLevel, nil
	case "", "info":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	default:
		return golog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
