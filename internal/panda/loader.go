package panda

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/configuration-panda/internal/logger"
)

const (
	jsonExtension = ".json"

	// EnvironmentVariablesName is the configuration name whose file is
	// exported into the environment instead of being stored.
	EnvironmentVariablesName = "environment_variables"
)

type resolvedSource struct {
	variable  string
	directory string
}

// loader carries the state of a single [New] call.
type loader struct {
	panda *Panda
	env   Environment
	log   *logger.Logger

	// processed maps every configuration name seen so far, including
	// EnvironmentVariablesName, to the source variable it came through.
	processed map[string]string
}

func (l *loader) load(sourceVariables []string) error {
	sources, err := l.resolve(sourceVariables)
	if err != nil {
		return err
	}

	for _, src := range sources {
		if err := l.loadSource(src); err != nil {
			return err
		}
	}

	return nil
}

func (l *loader) resolve(sourceVariables []string) ([]resolvedSource, error) {
	sources := make([]resolvedSource, 0, len(sourceVariables))
	for _, variable := range sourceVariables {
		directory, ok := l.env.LookupEnv(variable)
		if !ok {
			return nil, fmt.Errorf("%w: environment variable %q is not set", ErrInvalidParameter, variable)
		}
		if directory == "" {
			return nil, fmt.Errorf("%w: environment variable %q is empty", ErrInvalidParameter, variable)
		}

		l.log.Debug().
			Str("variable", variable).
			Str("directory", directory).
			Msg("resolved configuration source")

		sources = append(sources, resolvedSource{variable: variable, directory: directory})
	}

	return sources, nil
}

func (l *loader) loadSource(src resolvedSource) error {
	entries, err := os.ReadDir(src.directory)
	if err != nil {
		return fmt.Errorf("%w: %s (from %s): %w", ErrUnreadableSource, src.directory, src.variable, err)
	}

	record := Source{
		Variable:  src.variable,
		Directory: src.directory,
	}

	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		if !isConfigurationFile(src.directory, entry) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), jsonExtension)
		if name == "" {
			continue
		}
		path := filepath.Join(src.directory, entry.Name())

		if origin, ok := l.processed[name]; ok {
			return fmt.Errorf("%w: %q from %s (%s) is already loaded from %s",
				ErrDuplicateJSONFile, name, path, src.variable, origin)
		}
		l.processed[name] = src.variable

		if name == EnvironmentVariablesName {
			if err := l.exportFile(path); err != nil {
				return err
			}
			continue
		}

		if err := l.storeFile(src, name, path); err != nil {
			return err
		}
		record.Configurations = append(record.Configurations, name)
	}

	l.panda.sources = append(l.panda.sources, record)
	return nil
}

func (l *loader) storeFile(src resolvedSource, name, path string) error {
	v, err := readValue(path)
	if err != nil {
		return err
	}

	l.panda.configurations[name] = v
	l.panda.origins[name] = src.variable

	l.log.Debug().
		Str("configuration", name).
		Str("path", path).
		Stringer("kind", v.Kind()).
		Msg("loaded configuration file")

	return nil
}

func (l *loader) exportFile(path string) error {
	v, err := readValue(path)
	if err != nil {
		return err
	}

	if v.Kind() != KindObject {
		return fmt.Errorf("%w: %s: expected an object of strings, got %s", ErrMalformedJSONFile, path, v.Kind())
	}

	keys := v.Keys()
	values := make([]string, len(keys))
	for i, key := range keys {
		field, _ := v.Field(key)
		s, ok := field.AsString()
		if !ok {
			return fmt.Errorf("%w: %s: value of %q is %s, expected string", ErrMalformedJSONFile, path, key, field.Kind())
		}
		values[i] = s
	}

	for i, key := range keys {
		if _, exists := l.env.LookupEnv(key); exists {
			return fmt.Errorf("%w: %q (from %s)", ErrExistingEnvironmentVariable, key, path)
		}

		if err := l.env.Setenv(key, values[i]); err != nil {
			return fmt.Errorf("error exporting %q from %s: %w", key, path, err)
		}
		l.panda.exported[key] = values[i]

		l.log.Debug().
			Str("variable", key).
			Str("path", path).
			Msg("exported environment variable")
	}

	return nil
}

func readValue(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: %w", ErrMalformedJSONFile, path, err)
	}

	v, err := ParseValue(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: %w", ErrMalformedJSONFile, path, err)
	}

	return v, nil
}

// isConfigurationFile reports whether entry is a non-directory *.json entry.
// Symlinks are followed; broken ones are skipped.
func isConfigurationFile(dir string, entry fs.DirEntry) bool {
	if !strings.HasSuffix(entry.Name(), jsonExtension) {
		return false
	}

	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		return err == nil && !info.IsDir()
	}

	return !entry.IsDir()
}
