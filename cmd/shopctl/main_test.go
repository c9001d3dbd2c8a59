package main

import (
	"testing"

	"github.com/ecomdemo/shopctl/internal/cli"
)

func TestVersionIsSet(t *testing.T) {
	if cli.Version == "" {
		t.Fatal("cli.Version must not be empty")
	}
}
