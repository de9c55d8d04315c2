// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package io

import (
	"errors"
	"io"
)

type (
	// BlockReader breaks a stream into fixed-size blocks, e.g. to feed a
	// digest incrementally without holding the whole stream in memory.
	BlockReader interface {
		// NextBlock returns the next block. Only the final block of a
		// stream may be shorter than the configured size. Returns io.EOF
		// once the stream is exhausted. The returned slice is reused and
		// only valid until the next call.
		NextBlock() ([]byte, error)
	}
)

var InvalidArgErr = errors.New("Invalid argument")

// NewBlockReader returns a BlockReader yielding blocks of exactly
// blockSize bytes, except possibly the last one.
func NewBlockReader(reader io.Reader, blockSize int) (BlockReader, error) {
	if blockSize <= 0 {
		return nil, InvalidArgErr
	}

	if reader == nil {
		return nil, InvalidArgErr
	}

	return &blockReader{
		r:   reader,
		buf: make([]byte, blockSize),
	}, nil
}

type blockReader struct {
	r   io.Reader
	buf []byte
}

func (b *blockReader) NextBlock() ([]byte, error) {
	if b.r == nil {
		return nil, io.EOF
	}

	n, err := io.ReadFull(b.r, b.buf)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		// ReadFull returns ErrUnexpectedEOF if it couldn't fill the
		// buffer. We use this signal as equivalent to EOF, only the last
		// block can be short.
		b.r = nil
		if n == 0 {
			return nil, io.EOF
		}
		return b.buf[:n], nil
	} else if err != nil {
		return nil, err
	}

	return b.buf, nil
}

// ReadAllBlocks consumes the reader and returns copies of all blocks.
//
// Carefully use this function as it holds the entire stream in memory.
// This utility function is used mostly for testing.
func ReadAllBlocks(reader BlockReader) (blocks [][]byte, err error) {
	for {
		block, err := reader.NextBlock()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		blocks = append(blocks, append([]byte(nil), block...))
	}

	return blocks, nil
}
