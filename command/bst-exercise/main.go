// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "bst-exercise"
	app.Usage = "run ordered tree scenarios"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*scenario configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "run all scenarios or only those named",
			ArgsUsage: "[NAME...]",
			Action:    runRun,
		},
		{
			Name:      "list",
			Usage:     "list the configured scenarios",
			ArgsUsage: " ",
			Action:    runList,
		},
		{
			Name:      "watch",
			Usage:     "run scenarios, then run again each time the configuration file changes",
			ArgsUsage: "[NAME...]",
			Action:    runWatch,
		},
		{
			Name:      "demo",
			Usage:     "run the built-in example scenario, no configuration needed",
			ArgsUsage: " ",
			Action:    runDemo,
		},
		{
			Name:      "version",
			Usage:     "display bst-exercise version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version":
			return nil

		case "demo":
			config, err := demoConfiguration()
			if nil != err {
				return err
			}
			c.App.Metadata["config"] = &metadata{
				config:  config,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		default:
			file := c.GlobalString("config-file")
			if "" == file {
				return fmt.Errorf("%s: --config-file is required", command)
			}
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := getConfiguration(file)
			if nil != err {
				return fmt.Errorf("failed to read configuration from: %q  error: %s", file, err)
			}
			c.App.Metadata["config"] = &metadata{
				file:    config.fileName,
				config:  config,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		m := c.App.Metadata["config"].(*metadata)
		if verbose {
			m.config.Logging.Console = true
		}

		// start logging
		if err := logger.Initialise(m.config.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		log := logger.New(mainLoggerPrefix)
		log.Infof("version: %s  command: %s", version, command)
		log.Debugf("configuration: %+v", m.config)
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
