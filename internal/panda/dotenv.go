package panda

import (
	"fmt"
	"maps"
	"slices"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads the given dotenv files in order and sets every variable
// that is not already present in env. Existing variables, including ones
// set by an earlier file in paths, are left untouched.
//
// It returns the variables it set.
func LoadDotEnv(env Environment, paths ...string) (map[string]string, error) {
	applied := make(map[string]string)

	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %w", ErrDotEnvFile, path, err)
		}

		for _, key := range slices.Sorted(maps.Keys(vars)) {
			if _, exists := env.LookupEnv(key); exists {
				continue
			}
			if err := env.Setenv(key, vars[key]); err != nil {
				return applied, fmt.Errorf("error setting %q from %s: %w", key, path, err)
			}
			applied[key] = vars[key]
		}
	}

	return applied, nil
}
