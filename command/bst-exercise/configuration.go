// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/containers/configuration"
	"github.com/bitmark-inc/containers/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-exercise.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	demoDirectory = "bst-exercise-demo"
)

// logger channel names
const (
	mainLoggerPrefix     = "main"
	workloadLoggerPrefix = "workload"
	watcherLoggerPrefix  = "file-watcher"
)

// to hold log levels
type LoglevelMap map[string]string

// fresh map each time, the configuration file merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "info",
	}
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
	Scenarios     []workload.Scenario  `gluamapper:"scenarios" json:"scenarios"`

	fileName string
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()
	options.fileName = configurationFileName

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)

	if err := finishConfiguration(options); nil != err {
		return nil, err
	}

	if err := workload.Validate(options.Scenarios); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// configuration for demo, logs to a scratch directory
func demoConfiguration() (*Configuration, error) {
	options := defaultConfiguration()
	options.DataDirectory = filepath.Join(os.TempDir(), demoDirectory)
	options.Scenarios = []workload.Scenario{workload.Example()}

	if err := finishConfiguration(options); nil != err {
		return nil, err
	}
	return options, nil
}

// check the data directory and fix up the logging paths
func finishConfiguration(options *Configuration) error {

	// the data directory is created if it does not exist
	if err := os.MkdirAll(options.DataDirectory, 0700); nil != err {
		return err
	}
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}
	return nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
