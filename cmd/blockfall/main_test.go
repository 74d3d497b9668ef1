package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReturnsConfigErrors(t *testing.T) {
	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	err := run(fs, []string{"-width", "2"})
	assert.ErrorContains(t, err, "parse config")
	assert.ErrorContains(t, err, "width must be at least 4")
}
