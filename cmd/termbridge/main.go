package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kyaoi/termbridge/internal/app"
	"github.com/kyaoi/termbridge/internal/config"
)

var version = "dev"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "Usage: termbridge [flags]\n%s", config.Usage())
		os.Exit(2)
	}

	switch cfg.Program {
	case config.ProgramHelp:
		fmt.Printf("Usage: termbridge [flags]\n%s", config.Usage())
		return
	case config.ProgramVersion:
		fmt.Println("termbridge", version)
		return
	}

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
