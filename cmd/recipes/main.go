package main

import (
	"context"
	"log"
	"os"

	"github.com/mchmarny/recipe-api/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
