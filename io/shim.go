// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package io

import (
	"bufio"
	"io"
	"sync"
)

const (
	defaultBufSize = 4096
)

// NewBufferWriteCloserSize wraps an io.Writer in a buffer that is both flushed
// and properly closed. If the writer also implements the io.Closer interface,
// it will be closed as well, after the flush.
func NewBufferWriteCloserSize(w io.Writer, size int) io.WriteCloser {
	if size < 0 {
		size = defaultBufSize
	}

	buf := bufio.NewWriterSize(w, size)

	closers := []io.Closer{CloserFn(buf.Flush)}
	if wc, ok := w.(io.Closer); ok {
		closers = append(closers, wc)
	}

	return &chainedCloser{Writer: buf, cs: closers}
}

// NewBufferWriteCloser wraps an io.Writer in a flushed-then-closed
// buffer of a default size.
func NewBufferWriteCloser(w io.Writer) io.WriteCloser {
	return NewBufferWriteCloserSize(w, defaultBufSize)
}

// chainedCloser closes the closers in order on Close. Required when
// transferring ownership of composed io.Writer hierarchies (buffers,
// files) whose layers need closing in a specific order.
type chainedCloser struct {
	io.Writer
	cs []io.Closer
}

func (w *chainedCloser) Close() error {
	for _, c := range w.cs {
		if err := c.Close(); err != nil {
			return err
		}
	}

	return nil
}

type closeOnce struct {
	closer io.Closer
	err    error
	once   sync.Once
}

func (c *closeOnce) Close() error {
	c.once.Do(func() {
		c.err = c.closer.Close()
	})
	return c.err
}

// SafeCloser returns a closer that is idempotent and safe to call
// concurrently; further calls return the first result.
func SafeCloser(closer io.Closer) io.Closer {
	return &closeOnce{closer: closer}
}

// MaybeClose closes if the passed object implements io.Closer
// and does nothing otherwise.
func MaybeClose(i interface{}) error {
	if closer, ok := i.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// CloserFn implements the io.Closer interface for closures of the same
// signature.
type CloserFn func() error

func (c CloserFn) Close() error {
	return c()
}
