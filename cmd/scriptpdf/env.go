package main

import (
	"io"
	"os"
	"time"

	scriptpdf "github.com/alnah/go-scriptpdf"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string
	// NewPool builds the converter pool for a batch. Tests swap in fakes
	// that never start a browser.
	NewPool func(size int, opts ...scriptpdf.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
		NewPool: newConverterPool,
	}
}
