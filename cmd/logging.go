package cmd

import (
	"github.com/joshua-smart/FeO/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("feo")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
