// Package panda loads JSON configuration files from directories named by
// environment variables into a single namespace.
//
// Given PRIMARY_CONFIGURATION_FILES=/etc/app/primary holding ldap.json and
// environment_variables.json:
//
//	p, err := panda.New([]string{"PRIMARY_CONFIGURATION_FILES"})
//	if err != nil {
//		return err
//	}
//	ldap, _ := p.Get("ldap")
//	host, _ := ldap.Lookup("host")
//
// ldap.json becomes the "ldap" configuration, while the string pairs of
// environment_variables.json are exported into the environment. Names are
// unique across all sources; a collision is an error, never an overwrite.
// The environment is reached through [Environment], so tests can use a
// [MapEnvironment] instead of the process environment.
package panda
