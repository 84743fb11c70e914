package cli

import (
	"sync"

	"github.com/faizmokh/timelog/internal/files"
)

// Environment supplies configuration and the logbook directory to the
// subcommands that work on monthly logbooks. Processing a single document
// never calls either function.
type Environment struct {
	Config  func() (files.Config, error)
	Manager func() (*files.Manager, error)
}

// LoadEnvironment reads the config file and resolves the logbook directory on
// first use, at most once.
func LoadEnvironment() *Environment {
	config := sync.OnceValues(files.LoadConfig)
	manager := sync.OnceValues(func() (*files.Manager, error) {
		cfg, err := config()
		if err != nil {
			return nil, err
		}
		base, err := files.ResolveBasePath(cfg)
		if err != nil {
			return nil, err
		}
		return files.NewManager(base)
	})
	return &Environment{Config: config, Manager: manager}
}
