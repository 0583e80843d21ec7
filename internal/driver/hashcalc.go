package driver

import (
	"crypto/sha256"
	"encoding/binary"

	"gqlfront/parser"
)

// cacheKey: H(content || schema || options). Only options that change the
// diagnostics take part.
func cacheKey(content Digest, opts parser.Options) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var buf [2 + 8 + 8 + 1]byte
	binary.LittleEndian.PutUint16(buf[0:], diskCacheSchemaVersion)
	binary.LittleEndian.PutUint64(buf[2:], uint64(max(opts.MaxDepth, 0)))
	binary.LittleEndian.PutUint64(buf[10:], uint64(max(opts.MaxErrors, 0)))
	if opts.SkipNFCCheck {
		buf[18] = 1
	}
	_, _ = h.Write(buf[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
