package main

import (
	"context"
	"fmt"

	scriptpdf "github.com/alnah/go-scriptpdf"
)

// CLIConverter is the part of scriptpdf.Converter the batch uses.
type CLIConverter interface {
	Convert(ctx context.Context, input scriptpdf.Input) (*scriptpdf.Result, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*scriptpdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes a scriptpdf.ConverterPool as a Pool.
type poolAdapter struct {
	pool *scriptpdf.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// newConverterPool is the production Environment.NewPool.
func newConverterPool(size int, opts ...scriptpdf.Option) Pool {
	return &poolAdapter{pool: scriptpdf.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release panics when conv did not come from this pool's Acquire.
func (a *poolAdapter) Release(conv CLIConverter) {
	c, ok := conv.(*scriptpdf.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", conv))
	}
	a.pool.Release(c)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
