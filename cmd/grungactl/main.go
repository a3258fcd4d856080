package main

import (
	"fmt"
	"os"

	"github.com/2beens/grunga/internal/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if lvl, err := log.ParseLevel(os.Getenv("GRUNGACTL_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	if err := cli.NewRootCommand(cli.Options{
		APIURL: os.Getenv("GRUNGA_API_URL"),
	}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
