package rvconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/rv/configs"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"rv.cue",
	".rv.cue",
}

// ConfigPaths lists existing config files, most specific first.
// Only production reads the user's files.
type ConfigPaths []string

func (Module) ConfigPaths(
	mode modes.Mode,
) ConfigPaths {
	if mode != modes.ModeProduction {
		return nil
	}
	var paths []string

	add := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if workingDir, err := os.Getwd(); err == nil {
		add(workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		add(configDir)
	}
	add("/etc")

	return paths
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
