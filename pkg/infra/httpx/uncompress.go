package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fasthttp"
)

// DecodeChain decodes resp's body according to its Content-Encoding header.
// Encodings are undone in reverse order of application. It reports whether
// the body changed.
func DecodeChain(resp *fasthttp.Response, body []byte) ([]byte, bool, error) {
	return DecodeBody(string(resp.Header.Peek("Content-Encoding")), body)
}

// DecodeBody undoes a comma separated Content-Encoding chain (br, gzip, zstd,
// deflate). Deflate accepts zlib-wrapped and raw streams.
func DecodeBody(contentEncoding string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}

	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		enc := strings.TrimSpace(strings.ToLower(encodings[i]))
		var (
			out []byte
			err error
		)
		switch enc {
		case "", "identity", "compress":
			continue
		case "br":
			out, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "gzip":
			out, err = readAndClose(func() (io.ReadCloser, error) {
				return gzip.NewReader(bytes.NewReader(body))
			})
		case "zstd":
			out, err = decodeZstd(body)
		case "deflate":
			out, err = readAndClose(func() (io.ReadCloser, error) {
				return zlib.NewReader(bytes.NewReader(body))
			})
			if err != nil {
				out, err = readAndClose(func() (io.ReadCloser, error) {
					return flate.NewReader(bytes.NewReader(body)), nil
				})
			}
		default:
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", encodings[i])
		}
		if err != nil {
			return nil, false, fmt.Errorf("decode %s: %w", enc, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func readAndClose(open func() (io.ReadCloser, error)) ([]byte, error) {
	r, err := open()
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(r)
	cerr := r.Close()
	if err != nil {
		return nil, err
	}
	return out, cerr
}

func decodeZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
