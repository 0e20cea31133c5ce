package main

import (
	"fmt"
	"os"

	"github.com/gridsim/params/lib/cli"
	"github.com/gridsim/params/lib/util/logger"
)

var log = logger.GetLogger()

func main() {
	app := cli.NewApp()
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		log.WithError(err).Error("command failed")
		fmt.Fprintln(os.Stderr, "params:", err)
		os.Exit(1)
	}
}
