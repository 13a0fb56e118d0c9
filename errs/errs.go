// Package errs defines the sentinel errors returned by the nbt and region
// packages.
//
// Format and usage failures in those packages return one of these
// sentinels, usually wrapped with additional context via
// fmt.Errorf("%w: ...", errs.ErrX). Errors from the compress package's
// codecs are plain errors and are passed through without a sentinel.
// Callers should use errors.Is against the sentinels below rather than
// comparing error strings.
package errs

import "errors"

var (
	// ErrTruncatedInput indicates the input ended before a declared field,
	// length, or frame could be fully read.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrUnknownTagKind indicates a tag kind byte outside the 0x00-0x0C range.
	ErrUnknownTagKind = errors.New("unknown tag kind")

	// ErrInvalidUTF8 indicates a name or string payload failed UTF-8 decoding.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrUnterminatedCompound indicates input was exhausted before a
	// compound's terminating End tag was found.
	ErrUnterminatedCompound = errors.New("unterminated compound")

	// ErrZeroAdvance indicates the decoder computed a zero-width tag, which
	// would otherwise cause a non-terminating loop. This guards against
	// decoder bugs rather than malformed input.
	ErrZeroAdvance = errors.New("decoder made zero progress")

	// ErrStringTooLong indicates a string's encoded UTF-8 length exceeds the
	// 16-bit unsigned length prefix.
	ErrStringTooLong = errors.New("string exceeds maximum encodable length")

	// ErrChunkTooLarge indicates a region chunk's frame would span more
	// sectors than fit in the one-byte span field (255).
	ErrChunkTooLarge = errors.New("chunk exceeds maximum sector span")

	// ErrUnknownCompression indicates a region chunk frame declared a
	// compression discriminant outside {1 (gzip), 2 (zlib)}.
	ErrUnknownCompression = errors.New("unknown compression discriminant")

	// ErrIntegerOverflow indicates a scalar value doesn't fit the declared
	// tag width.
	ErrIntegerOverflow = errors.New("integer overflows tag width")

	// ErrInvalidFilename indicates a region filename didn't match the
	// r.<x>.<z>.mc[ar] convention. region.ParseFilename reports a mismatch
	// through its ok result and does not return this error.
	ErrInvalidFilename = errors.New("invalid region filename")

	// ErrEncoderFinished indicates an encoder was used after Finish().
	ErrEncoderFinished = errors.New("encoder already finished")

	// ErrCoordOutOfRange indicates a chunk-local coordinate fell outside
	// [0, region.GridSize) on an axis.
	ErrCoordOutOfRange = errors.New("chunk coordinate out of range")
)
