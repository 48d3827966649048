package identifier

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

// generatorConfig holds configuration for a Generator instance.
type generatorConfig struct {
	random io.Reader
	logger *slog.Logger
}

// WithRandom sets the entropy source ids are drawn from.
// If not provided, crypto/rand is used.
func WithRandom(r io.Reader) GeneratorOption {
	return func(c *generatorConfig) {
		c.random = r
	}
}

// WithLogger sets a custom logger for the generator.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(c *generatorConfig) {
		c.logger = logger
	}
}

// Generator creates identifiers from a configurable entropy source.
// The package-level New and Named use crypto/rand directly; a Generator is
// useful when ids must be reproducible, as in tests.
type Generator struct {
	random io.Reader
	logger *slog.Logger
}

// NewGenerator creates a Generator with the given options.
//
// Example:
//
//	gen := identifier.NewGenerator(identifier.WithLogger(logger))
//	id, err := gen.New("player")
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := &generatorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.random == nil {
		cfg.random = rand.Reader
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Generator{
		random: cfg.random,
		logger: cfg.logger,
	}
}

// New creates an identifier with the given name and a random v4 id read
// from the generator's entropy source.
func (g *Generator) New(name string) (*Identifier, error) {
	u, err := uuid.NewRandomFromReader(g.random)
	if err != nil {
		return nil, fmt.Errorf("failed to generate identifier %q: %w", name, err)
	}
	id := newIdentifier(name, u)
	g.logger.Debug("identifier created", "identifier", id)
	return id, nil
}
