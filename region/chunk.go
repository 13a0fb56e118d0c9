package region

import (
	"fmt"

	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
)

// SectorSize is the allocation unit for region files: the header occupies
// the first two sectors, and every chunk frame is padded to a whole number
// of sectors.
const SectorSize = 4096

// frameHeaderSize is the length field (4 bytes) plus the compression
// discriminator byte that precede every chunk's compressed payload.
const frameHeaderSize = 5

// sectorSpan returns the number of SectorSize-byte sectors needed to hold
// frameLen bytes, i.e. ceil(frameLen/SectorSize).
func sectorSpan(frameLen int) int {
	return (frameLen + SectorSize - 1) / SectorSize
}

// readChunkFrame reads the chunk frame at file offset 4096*offsetSectors:
// a u32 length N (bytes following the length field, including the
// compression byte), the compression byte, and N-1 compressed bytes.
func readChunkFrame(fileData []byte, offsetSectors uint32) ([]byte, format.CompressionID, error) {
	start := int(offsetSectors) * SectorSize
	if start+4 > len(fileData) {
		return nil, 0, fmt.Errorf("%w: chunk frame offset past end of file", errs.ErrTruncatedInput)
	}

	n, _, err := readU32(fileData[start:])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: chunk frame length", errs.ErrTruncatedInput)
	}
	if n < 1 {
		return nil, 0, fmt.Errorf("%w: chunk frame length below minimum", errs.ErrTruncatedInput)
	}

	frameEnd := start + 4 + int(n)
	if frameEnd > len(fileData) {
		return nil, 0, fmt.Errorf("%w: chunk frame payload past end of file", errs.ErrTruncatedInput)
	}

	compression := format.CompressionID(fileData[start+4])
	if !compression.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", errs.ErrUnknownCompression, uint8(compression))
	}

	compressed := fileData[start+5 : frameEnd]

	return compressed, compression, nil
}

// buildChunkFrame lays out a chunk frame for compressed payload under the
// given compression discriminant, right-padded with zeros to a whole number
// of sectors. It returns the frame bytes and the sector span they occupy.
func buildChunkFrame(compression format.CompressionID, compressed []byte) ([]byte, int, error) {
	n := 1 + len(compressed)
	frameLen := frameHeaderSize + len(compressed)
	span := sectorSpan(frameLen)
	if span > 255 {
		return nil, 0, fmt.Errorf("%w: %d sectors", errs.ErrChunkTooLarge, span)
	}

	frame := make([]byte, span*SectorSize)
	writeU32(frame, uint32(n))
	frame[4] = byte(compression)
	copy(frame[5:], compressed)

	return frame, span, nil
}

func readU32(b []byte) (uint32, int, error) {
	if len(b) < 4 {
		return 0, 0, errs.ErrTruncatedInput
	}

	return bigEndian.Uint32(b), 4, nil
}

func writeU32(dst []byte, v uint32) {
	bigEndian.PutUint32(dst, v)
}
