package client

import (
	"errors"
	"io"
	"iter"
	"net/http"
)

// Stream is a forward-only sequence of byte chunks from a non-JSON
// response. It reads straight from the connection; close it when done.
type Stream struct {
	// ContentType is the media type the server declared.
	ContentType string

	body io.ReadCloser
	buf  []byte
	err  error
}

func newStream(resp *http.Response, chunk int) *Stream {
	return &Stream{
		ContentType: resp.Header.Get("Content-Type"),
		body:        resp.Body,
		buf:         make([]byte, chunk),
	}
}

// Next returns the next non-empty chunk, or io.EOF once the body is
// exhausted. The returned slice is owned by the caller.
func (s *Stream) Next() ([]byte, error) {
	for s.err == nil {
		n, err := s.body.Read(s.buf)
		if err != nil {
			s.err = err
		}
		if n > 0 {
			out := make([]byte, n)
			copy(out, s.buf[:n])
			return out, nil
		}
	}
	return nil, s.err
}

// Read implements io.Reader over the chunks.
func (s *Stream) Read(p []byte) (int, error) {
	return s.body.Read(p)
}

// Chunks yields every remaining chunk. Iteration stops at the end of the
// body or at the first read error, which is yielded with a nil chunk.
func (s *Stream) Chunks() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			b, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// Close releases the connection.
func (s *Stream) Close() error {
	return s.body.Close()
}
