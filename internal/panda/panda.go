// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package panda

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/configuration-panda/internal/logger"
)

// Source records one processed source variable.
type Source struct {
	// Variable is the environment variable name supplied by the caller.
	Variable string
	// Directory is the path Variable resolved to.
	Directory string
	// Configurations lists the configuration names loaded from Directory,
	// in processing order. environment_variables is never listed.
	Configurations []string
}

// Panda holds the configuration namespace built by [New]. It is immutable
// once returned.
type Panda struct {
	id             uuid.UUID
	configurations map[string]Value
	origins        map[string]string
	exported       map[string]string
	sources        []Source
}

// Option configures [New].
type Option func(*options)

type options struct {
	env Environment
	log *logger.Logger
}

// WithEnvironment sets the environment the loader resolves source variables
// from and exports variables into. Defaults to [OSEnvironment].
func WithEnvironment(env Environment) Option {
	return func(o *options) {
		if env != nil {
			o.env = env
		}
	}
}

// WithLogger sets the logger used for debug output. Defaults to
// [logger.Nop].
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// New builds a Panda from the JSON files found in the directories named by
// sourceVariables.
//
// Every name is resolved before any directory is read, so an unset name
// fails with [ErrInvalidParameter] and leaves the environment untouched.
// Each directory is then scanned (non-recursively, in filename order) for
// *.json files:
//   - environment_variables.json must be a flat object of strings; every
//     key is exported into the environment, failing with
//     [ErrExistingEnvironmentVariable] if the key is already set;
//   - any other <name>.json is parsed and stored under <name>, failing with
//     [ErrDuplicateJSONFile] if <name> was already loaded.
//
// Variables exported before a failure are not removed.
func New(sourceVariables []string, opts ...Option) (*Panda, error) {
	o := options{
		env: OSEnvironment(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Panda{
		id:             uuid.New(),
		configurations: make(map[string]Value),
		origins:        make(map[string]string),
		exported:       make(map[string]string),
		sources:        make([]Source, 0, len(sourceVariables)),
	}

	log := o.log.GetChildLogger()
	log.Logger = log.With().Str("load_id", p.id.String()).Logger()

	l := &loader{
		panda: p,
		env:   o.env,
		log:   log,

		processed: make(map[string]string),
	}
	if err := l.load(sourceVariables); err != nil {
		log.Debug().Err(err).Msg("configuration load failed")
		return nil, err
	}

	log.Debug().
		Int("configurations", len(p.configurations)).
		Int("exported", len(p.exported)).
		Msg("configuration load finished")

	return p, nil
}

// ID returns the identifier attached to this load's log entries.
func (p *Panda) ID() uuid.UUID {
	return p.id
}

// Get returns the configuration loaded from <name>.json.
func (p *Panda) Get(name string) (Value, bool) {
	v, ok := p.configurations[name]
	return v, ok
}

// Has reports whether a configuration called name was loaded.
func (p *Panda) Has(name string) bool {
	_, ok := p.configurations[name]
	return ok
}

// Len returns the number of loaded configurations.
func (p *Panda) Len() int {
	return len(p.configurations)
}

// Names returns the sorted configuration names.
func (p *Panda) Names() []string {
	return slices.Sorted(maps.Keys(p.configurations))
}

// All returns a copy of the whole namespace.
func (p *Panda) All() map[string]Value {
	return maps.Clone(p.configurations)
}

// Origin returns the source variable the named configuration was loaded
// through.
func (p *Panda) Origin(name string) (string, bool) {
	variable, ok := p.origins[name]
	return variable, ok
}

// Decode stores the named configuration into target using encoding/json
// rules.
func (p *Panda) Decode(name string, target any) error {
	v, ok := p.configurations[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrConfigurationNotFound, name)
	}

	if err := v.Decode(target); err != nil {
		return fmt.Errorf("error decoding configuration %q: %w", name, err)
	}

	return nil
}

// Exported returns a copy of the variables exported from
// environment_variables.json files during this load.
func (p *Panda) Exported() map[string]string {
	return maps.Clone(p.exported)
}

// Sources returns the processed sources in caller order.
func (p *Panda) Sources() []Source {
	out := make([]Source, len(p.sources))
	for i, src := range p.sources {
		src.Configurations = slices.Clone(src.Configurations)
		out[i] = src
	}
	return out
}
