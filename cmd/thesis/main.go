package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/KevinM0ney/thesis/pkg/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
