package main

import (
	"log"

	"github.com/frankonly/hashtree/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize htcli: %v", err)
	}

	cli.Execute()
}
