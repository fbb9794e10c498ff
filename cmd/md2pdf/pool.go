package main

import (
	"context"

	md2pdf "github.com/alnah/md2pdf-themes"
)

// CLIConverter is the part of md2pdf.Converter the CLI uses.
type CLIConverter interface {
	Convert(ctx context.Context, input md2pdf.Input) (*md2pdf.ConvertResult, error)
	ConvertSections(ctx context.Context, sections []md2pdf.Section, opts md2pdf.MergeOptions, css string) (*md2pdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2pdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts md2pdf.ConverterPool to Pool.
type converterPool struct {
	pool *md2pdf.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

func newConverterPool(p *md2pdf.ConverterPool) *converterPool {
	return &converterPool{pool: p}
}

// Acquire gets a converter, creating one if the pool has room.
// Blocks if all converters are in use.
func (p *converterPool) Acquire() (CLIConverter, error) {
	c, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release returns a converter to the pool.
func (p *converterPool) Release(c CLIConverter) {
	if conv, ok := c.(*md2pdf.Converter); ok {
		p.pool.Release(conv)
	}
}

// Size returns the pool capacity.
func (p *converterPool) Size() int {
	return p.pool.Size()
}

// Close releases all browser resources.
func (p *converterPool) Close() error {
	return p.pool.Close()
}
