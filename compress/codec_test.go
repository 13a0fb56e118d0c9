package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/anvilcodec/anvil/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCodec(),
		"Gzip": NewGzipCodec(),
		"Zlib": NewZlibCodec(),
		"Zstd": NewZstdCodec(),
		"S2":   NewS2Codec(),
		"LZ4":  NewLZ4Codec(),
	}
}

func TestCreateCodec(t *testing.T) {
	ids := []format.CodecID{
		format.CodecNone, format.CodecGzip, format.CodecZlib,
		format.CodecZstd, format.CodecS2, format.CodecLZ4,
	}
	for _, id := range ids {
		codec, err := CreateCodec(id, "test")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CodecID(0xFF), "test")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CodecGzip)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CodecID(0xFF))
	require.Error(t, err)
}

func TestForCompression(t *testing.T) {
	codec, err := ForCompression(format.CompressionGzip)
	require.NoError(t, err)
	require.IsType(t, GzipCodec{}, codec)

	codec, err = ForCompression(format.CompressionZlib)
	require.NoError(t, err)
	require.IsType(t, ZlibCodec{}, codec)

	_, err = ForCompression(format.CompressionID(0xFF))
	require.Error(t, err)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"small_text", []byte("Hello, Anvil!")},
		{"repeated_pattern", bytes.Repeat([]byte("ABCD"), 100)},
		{"binary_data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{"single_byte", []byte{0x42}},
		{"medium_chunk", bytes.Repeat([]byte("minecraft:stone\x00\x01\x02"), 256)},
		{"highly_compressible", make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("this is not compressed data"),
		{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp does not validate its input")
			}

			for i, input := range invalidInputs {
				t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
					_, err := codec.Decompress(input)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	data := []byte("concurrent compression exercise with a bit of repeated content content content")

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			errs := make([]error, numGoroutines)

			for i := range numGoroutines {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					if err != nil {
						errs[idx] = err
						return
					}
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						errs[idx] = err
						return
					}
					if !bytes.Equal(data, decompressed) {
						errs[idx] = fmt.Errorf("round trip mismatch at goroutine %d", idx)
					}
				}(i)
			}
			wg.Wait()

			for _, err := range errs {
				require.NoError(t, err)
			}
		})
	}
}
