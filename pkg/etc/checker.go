package etc

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Check checks config values to fail fast in case of any problems
// that we might have due to invalid config.
func Check(config Config) (err error) {
	log.WithFields(log.Fields{
		"pid": os.Getpid(),
	}).Debug("Current process")

	if config.Output == "" {
		err = errors.New("output file must not be blank")
		return
	}

	if dirExists(config.Output) {
		err = fmt.Errorf("output file is a directory: %s", config.Output)
		return
	}

	for _, path := range config.InputFiles {
		if !fileExists(path) {
			err = fmt.Errorf("input file does not exist: %s", path)
			return
		}
	}

	switch config.LogFormat {
	case "", "text", "json":
	default:
		err = errors.New("log format must be either text or json")
		return
	}

	if config.Filter != "" {
		log.WithField("filter", config.Filter).Debug("Filter is not supported and will be ignored")
	}

	return
}

// dirExists checks if a dir exists before we
// try using it to prevent further errors.
func dirExists(name string) bool {
	info, err := os.Stat(name)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}

// fileExists checks if a file exists and is not a directory before we
// try using it to prevent further errors.
func fileExists(name string) bool {
	info, err := os.Stat(name)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
