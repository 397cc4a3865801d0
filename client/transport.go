package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	kruto "github.com/reoring/kruto"
	"github.com/reoring/kruto/codec"
	"github.com/reoring/kruto/types"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

// request performs one remote call. A JSON result is returned parsed and
// transformed; any other 200 response is returned as a *Stream the caller
// must close.
func (c *Client) request(ctx context.Context, method string, args ...any) (any, error) {
	resp, err := c.do(ctx, method, args)
	if err != nil {
		c.metrics.Requests.WithLabelValues(method, errorClass(err)).Inc()
		return nil, err
	}
	c.metrics.Requests.WithLabelValues(method, "ok").Inc()
	if !isJSON(resp.Header) {
		return newStream(resp, c.chunkSize), nil
	}
	defer resp.Body.Close()
	v, err := codec.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: %s: read result: %w", method, err)
	}
	return kruto.Transform(v), nil
}

// requestJSON is request for calls whose result must be JSON.
func (c *Client) requestJSON(ctx context.Context, method string, args ...any) (any, error) {
	v, err := c.request(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(*Stream); ok {
		ct := s.ContentType
		s.Close()
		return nil, fmt.Errorf("client: %s: expected a JSON result, got %q", method, ct)
	}
	return v, nil
}

// result performs a call and decodes its result as T.
func result[T any](ctx context.Context, c *Client, method string, n kruto.Node, args ...any) (T, error) {
	raw, err := c.requestJSON(ctx, method, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := kruto.DecodeAs[T](ctx, n, raw, kruto.WithRef(c))
	if err != nil {
		return v, fmt.Errorf("client: %s: decode result: %w", method, err)
	}
	return v, nil
}

func (c *Client) do(ctx context.Context, method string, args []any) (*http.Response, error) {
	body, contentType, err := encodeBody(args)
	if err != nil {
		return nil, fmt.Errorf("client: %s: encode arguments: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+url.PathEscape(method), body)
	if err != nil {
		return nil, fmt.Errorf("client: %s: create request: %w", method, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: %s: request failed: %w", method, err)
	}
	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}
	defer resp.Body.Close()
	return nil, classify(method, resp)
}

// classify turns a non-200 response into InputError, RPCError or
// InternalError according to the x-error-type header.
func classify(method string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := errorMessage(raw)
	kind := resp.Header.Get("x-error-type")
	switch {
	case strings.Contains(kind, "input"):
		return &InputError{Method: method, Message: msg}
	case strings.Contains(kind, "rpc"):
		return &RPCError{Method: method, Code: resp.StatusCode, Description: msg}
	default:
		return &InternalError{Method: method, StatusCode: resp.StatusCode, Message: msg}
	}
}

// errorMessage extracts the description carried by an error body: a JSON
// string is unquoted, anything else is kept as text.
func errorMessage(raw []byte) string {
	v, err := codec.Unmarshal(raw)
	if err == nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return strings.TrimSpace(string(raw))
}

func isJSON(h http.Header) bool {
	mt, _, err := mime.ParseMediaType(h.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// encodeBody renders the call arguments. Any binary argument ([]byte or
// io.Reader) switches the body to multipart/form-data with one "_" part per
// argument in order; otherwise the body is the JSON array of the arguments.
func encodeBody(args []any) (io.Reader, string, error) {
	wire := make([]any, len(args))
	binary := false
	for i, a := range args {
		switch t := a.(type) {
		case []byte, io.Reader:
			wire[i] = t
			binary = true
		default:
			v, err := encodeArg(a)
			if err != nil {
				return nil, "", fmt.Errorf("argument %d: %w", i, err)
			}
			wire[i] = v
		}
	}
	if !binary {
		b, err := codec.Marshal(wire)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(b), "application/json", nil
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeParts(mw, wire))
	}()
	return pr, mw.FormDataContentType(), nil
}

func writeParts(mw *multipart.Writer, wire []any) error {
	for _, v := range wire {
		switch t := v.(type) {
		case []byte:
			if err := writeFile(mw, bytes.NewReader(t)); err != nil {
				return err
			}
		case io.Reader:
			if err := writeFile(mw, t); err != nil {
				return err
			}
		default:
			b, err := codec.Marshal(t)
			if err != nil {
				return err
			}
			if err := mw.WriteField("_", string(b)); err != nil {
				return err
			}
		}
	}
	return mw.Close()
}

func writeFile(mw *multipart.Writer, r io.Reader) error {
	w, err := mw.CreateFormFile("_", "blob")
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	return err
}

// encodeArg renders one positional argument in wire form.
func encodeArg(a any) (any, error) {
	switch t := a.(type) {
	case nil:
		return nil, nil
	case types.ID:
		return t.Value(), nil
	case *types.ID:
		if t == nil {
			return nil, nil
		}
		return t.Value(), nil
	case map[string]any:
		return kruto.EncodeArgs(t)
	default:
		return kruto.EncodeValue(a)
	}
}
