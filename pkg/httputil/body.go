package httputil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	// Bodies announcing a length below this are read in one pass.
	directReadLimit = 2048
	readChunkSize   = 1024
)

// readBody returns the body as received and its UTF-8 text.
func (c *Client) readBody(resp *http.Response) ([]byte, string, error) {
	var r io.Reader = resp.Body
	if c.maxBodySize > 0 {
		r = io.LimitReader(r, c.maxBodySize+1)
	}

	var raw []byte
	var err error
	if n := resp.ContentLength; n >= 0 && n < directReadLimit {
		raw, err = io.ReadAll(r)
	} else {
		raw, err = readChunked(r)
	}
	if err != nil {
		return nil, "", err
	}

	if c.maxBodySize > 0 && int64(len(raw)) > c.maxBodySize {
		return nil, "", fmt.Errorf("limit %d bytes: %w", c.maxBodySize, ErrBodyTooLarge)
	}

	decoded, err := decodeCharset(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, "", err
	}
	return raw, string(decoded), nil
}

func readChunked(r io.Reader) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, directReadLimit))
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// decodeCharset transcodes raw to UTF-8 when contentType declares another
// known charset. Unknown or missing charsets leave raw untouched.
func decodeCharset(raw []byte, contentType string) ([]byte, error) {
	if contentType == "" {
		return raw, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return raw, nil
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return raw, nil
	}

	enc, name := charset.Lookup(label)
	if enc == nil {
		return raw, nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", name, err)
	}
	return out, nil
}
