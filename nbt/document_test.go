package nbt

import (
	"testing"

	"github.com/anvilcodec/anvil/compress"
	"github.com/stretchr/testify/require"
)

func sampleDocument() []Tag {
	return []Tag{NewCompound("root", NewString("greeting", "hello world"), NewInt("answer", 42))}
}

func TestEncodeFile_PlainAndGzipped(t *testing.T) {
	doc := sampleDocument()

	plain, err := EncodeFile(doc, false)
	require.NoError(t, err)
	require.False(t, hasGzipMagic(plain))

	gzipped, err := EncodeFile(doc, true)
	require.NoError(t, err)
	require.True(t, hasGzipMagic(gzipped))

	decodedPlain, err := DecodeFile(plain)
	require.NoError(t, err)
	decodedGzipped, err := DecodeFile(gzipped)
	require.NoError(t, err)

	require.Len(t, decodedPlain, 1)
	require.True(t, doc[0].Equal(decodedPlain[0]))
	require.True(t, doc[0].Equal(decodedGzipped[0]))
}

func TestEncodeDecodeFileWithCodec(t *testing.T) {
	doc := sampleDocument()

	for _, codec := range []compress.Codec{compress.NewS2Codec(), compress.NewLZ4Codec(), compress.NewZstdCodec()} {
		compressed, err := EncodeFileWithCodec(doc, codec)
		require.NoError(t, err)

		decoded, err := DecodeFileWithCodec(compressed, codec)
		require.NoError(t, err)
		require.True(t, doc[0].Equal(decoded[0]))
	}
}
