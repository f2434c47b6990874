package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRoot().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
