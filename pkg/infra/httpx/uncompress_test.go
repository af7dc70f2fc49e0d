package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func gzipCompress(data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write(data)
	_ = gz.Close()
	return buf.Bytes()
}

func brCompress(data []byte) []byte {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, _ = br.Write(data)
	_ = br.Close()
	return buf.Bytes()
}

func zstdCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zstd.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func zlibDeflateCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func rawDeflateCompress(data []byte) []byte {
	var buf bytes.Buffer
	dw, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	_, _ = dw.Write(data)
	_ = dw.Close()
	return buf.Bytes()
}

func TestDecodeBody(t *testing.T) {
	plain := []byte(`{"documents":[{"id":"0","entities":[]}]}`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
		changed  bool
	}{
		{name: "no encoding", encoding: "", body: plain, changed: false},
		{name: "identity and compress are no-ops", encoding: "identity, compress", body: plain, changed: false},
		{name: "gzip", encoding: "gzip", body: gzipCompress(plain), changed: true},
		{name: "brotli", encoding: "br", body: brCompress(plain), changed: true},
		{name: "zstd", encoding: "zstd", body: zstdCompress(plain), changed: true},
		{name: "deflate zlib wrapped", encoding: "deflate", body: zlibDeflateCompress(plain), changed: true},
		{name: "deflate raw", encoding: "deflate", body: rawDeflateCompress(plain), changed: true},
		{name: "gzip then br", encoding: "gzip, br", body: brCompress(gzipCompress(plain)), changed: true},
		{name: "case and whitespace", encoding: "  GZip  ", body: gzipCompress(plain), changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeBody(tt.encoding, tt.body)

			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeBody_UnknownEncoding(t *testing.T) {
	_, _, err := DecodeBody("foo", []byte("abc"))
	assert.ErrorContains(t, err, "unsupported content-encoding")
}

func TestDecodeBody_CorruptPayload(t *testing.T) {
	_, _, err := DecodeBody("gzip", []byte("not gzip"))
	assert.ErrorContains(t, err, "decode gzip")
}

func TestDecodeChain_ReadsResponseHeader(t *testing.T) {
	plain := []byte("brotli payload")
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)
	resp.Header.Set("Content-Encoding", "br")

	decoded, changed, err := DecodeChain(resp, brCompress(plain))

	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, bytes.Equal(plain, decoded))
}
