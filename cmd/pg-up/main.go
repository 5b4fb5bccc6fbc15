package main

import (
	"fmt"
	"os"

	"github.com/k11v/mortar/internal/apppg"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run() error {
	connectionString, ok := os.LookupEnv("MORTAR_POSTGRES_CONNECTION_STRING")
	if !ok {
		return fmt.Errorf("MORTAR_POSTGRES_CONNECTION_STRING is unset")
	}

	if err := apppg.Setup(connectionString); err != nil {
		return err
	}

	return nil
}
