package main

import (
	"context"
	"fmt"
	"log"
	"os"

	booklist "github.com/goliatone/go-booklist"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("booklist: %v", err)
	}
}

func run() error {
	cfg := booklist.DefaultConfig()

	module, err := booklist.New(cfg)
	if err != nil {
		return err
	}

	if err := module.Convert(context.Background()); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Markdown file '%s' has been created.\n", cfg.Destination)
	return nil
}
