// Package host connects the dialog decoders to a byte source such as a hex
// editor buffer, an emulator memory dump or a ROM image.
//
// A host provides byte ranges and, optionally, a selection. Plugin maps the
// methods of the hex-editor plugin onto the decoders in package msdialog.
package host

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'host'
func tracer() tracing.Trace {
	return tracing.Select("host")
}

// Common errors returned by Plugin.Call.
var (
	ErrOutOfBounds      = errors.New("host: range out of bounds")
	ErrNoSelection      = errors.New("host: no selection")
	ErrInvalidArguments = errors.New("host: invalid arguments")
	ErrUnknownMethod    = errors.New("host: unknown method")
)

// Source is the contract a host offers to the decoders.
type Source interface {
	// Bytes returns the half-open range [from, to). ok is false if the range
	// is not available.
	Bytes(from, to int) (data []byte, ok bool)
	// Selection returns the current selection as a half-open range.
	Selection() (from, to int, ok bool)
}

// Memory is a Source over an in-memory buffer.
type Memory struct {
	Data []byte

	selFrom, selTo int
	selected       bool
}

// NewMemory creates a source over data without a selection.
func NewMemory(data []byte) *Memory {
	return &Memory{Data: data}
}

// OpenFile reads a whole dump file into a Memory source.
func OpenFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %s: %d bytes", path, len(data))
	return NewMemory(data), nil
}

// Bytes implements Source. The returned slice aliases Data.
func (m *Memory) Bytes(from, to int) ([]byte, bool) {
	if from < 0 || from > to || to > len(m.Data) {
		return nil, false
	}
	return m.Data[from:to], true
}

// Select sets the selection to [from, to).
func (m *Memory) Select(from, to int) error {
	if from < 0 || from > to || to > len(m.Data) {
		return fmt.Errorf("%w: selection %d..%d of %d bytes", ErrOutOfBounds, from, to, len(m.Data))
	}
	m.selFrom, m.selTo, m.selected = from, to, true
	return nil
}

// ClearSelection removes the selection.
func (m *Memory) ClearSelection() {
	m.selected = false
}

// Selection implements Source.
func (m *Memory) Selection() (int, int, bool) {
	return m.selFrom, m.selTo, m.selected
}
