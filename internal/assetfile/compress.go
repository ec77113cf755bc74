// SPDX-License-Identifier: MPL-2.0

package assetfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("assetfile: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("assetfile: zstd decoder initialization failed: " + err.Error())
	}
}

// compress wraps data according to a compression suffix ("" is a no-op).
func compress(data []byte, suffix string) ([]byte, error) {
	switch suffix {
	case "":
		return data, nil
	case ".zst":
		return zstdEncoder.EncodeAll(data, nil), nil
	case ".lz4":
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression suffix %q", suffix)
	}
}

func decompress(data []byte, suffix string) ([]byte, error) {
	switch suffix {
	case "":
		return data, nil
	case ".zst":
		out, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, nil
	case ".lz4":
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown compression suffix %q", suffix)
	}
}
