package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abiy5791/RobelStudio-sub001/cmd/robelstudio/cmd"
	"github.com/abiy5791/RobelStudio-sub001/internal/config"
)

func main() {
	c := config.New()
	setupLogging(c)

	if len(os.Args) <= 1 {
		displayAppName(c.GetAppName())
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(c config.Config) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.GetEnv() == "DEV" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func displayAppName(appName string) {
	myFigure := figure.NewFigure(appName, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
