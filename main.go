package main

import (
	cmd "github.com/edulens/edulens/cmd/edulens"
	"github.com/edulens/edulens/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting edulens")
	cmd.Execute()
}
