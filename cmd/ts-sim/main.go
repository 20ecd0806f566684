package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rcornwell/ts-sim/i8080"
	"github.com/rcornwell/ts-sim/system"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	var path string

	flag.StringVar(&path, "f", "", "configuration file path")
	flag.StringVar(&path, "config", "", "configuration file path")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s -f <config> [--] [args]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if path == "" {
		flag.Usage()
		return 1
	}

	reg := system.NewRegistry()
	i8080.Register(reg)

	sys, err := system.LoadConfigFile(reg, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			code = 2
		}
	}()

	sys.Reset()
	sys.Start()
	sys.Run()
	sys.Shutdown()
	return 0
}
