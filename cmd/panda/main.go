package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/configuration-panda/internal/panda"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := newRootCommand(panda.OSEnvironment(), newBuildInfo(buildVersion, buildDate, buildCommit))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
