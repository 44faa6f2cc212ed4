package panda

//go:generate mockgen -source=environment.go -destination=../mock/environment_mock.go -package=mock

import (
	"maps"
	"os"
	"strings"
	"syscall"
)

// Environment is the process-environment capability used by the loader.
//
// The loader only ever reads and adds variables; it never removes or
// overwrites one.
type Environment interface {
	// LookupEnv reports the value of key and whether it is set.
	LookupEnv(key string) (string, bool)
	// Setenv sets key to value.
	Setenv(key, value string) error
	// Environ returns a snapshot of all variables. The map belongs to the
	// caller.
	Environ() map[string]string
}

type osEnvironment struct{}

// OSEnvironment returns an [Environment] backed by the real process
// environment.
func OSEnvironment() Environment {
	return osEnvironment{}
}

func (osEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (osEnvironment) Environ() map[string]string {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		snapshot[key] = value
	}
	return snapshot
}

// MapEnvironment is an in-memory [Environment]. It is not safe for
// concurrent use.
type MapEnvironment struct {
	vars map[string]string
}

// NewMapEnvironment returns a MapEnvironment holding a copy of seed.
func NewMapEnvironment(seed map[string]string) *MapEnvironment {
	vars := make(map[string]string, len(seed))
	maps.Copy(vars, seed)
	return &MapEnvironment{vars: vars}
}

func (e *MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Setenv rejects the same keys and values os.Setenv does.
func (e *MapEnvironment) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") || strings.ContainsRune(value, 0) {
		return os.NewSyscallError("setenv", syscall.EINVAL)
	}
	e.vars[key] = value
	return nil
}

func (e *MapEnvironment) Environ() map[string]string {
	return maps.Clone(e.vars)
}
