package imgfs

import (
	"encoding/binary"
)

// On-disk layout, reproduced from the original C structs:
//
//	struct imgfs_header {
//	    char     name[MAX_IMGFS_NAME + 1];
//	    uint32_t version;
//	    uint32_t nb_files;
//	    uint32_t max_files;
//	    uint16_t resized_res[2 * (NB_RES - 1)];
//	    uint32_t unused_32;
//	    uint64_t unused_64;
//	};
//	struct img_metadata {
//	    char          img_id[MAX_IMG_ID + 1];
//	    unsigned char SHA[SHA256_DIGEST_LENGTH];
//	    uint32_t      orig_res[2];
//	    uint64_t      size[NB_RES];
//	    uint64_t      offset[NB_RES];
//	    uint16_t      is_valid;
//	    uint16_t      unused_16;
//	};
//
// Field widths follow spec §3.1/§6.1; all multi-byte integers are encoded in
// host byte order via [binary.NativeEndian], matching the "not portable
// across endianness" requirement — a direct mirror of the C struct's layout
// instead of a stable wire encoding.

const (
	shaSize = 32

	nameFieldSize  = MaxImgFSName + 1
	imgIDFieldSize = MaxImgID + 1

	// headerSize is the fixed byte size of the on-disk header.
	headerSize = nameFieldSize + 4 + 4 + 4 + 2*4 + 4 + 8

	// slotSize is the fixed byte size of one on-disk metadata slot.
	slotSize = imgIDFieldSize + shaSize + 2*4 + int(numResolutions)*8 + int(numResolutions)*8 + 2 + 2
)

// header mirrors struct imgfs_header.
type header struct {
	Name       [nameFieldSize]byte
	Version    uint32
	NbFiles    uint32
	MaxFiles   uint32
	ResizedRes [2 * 2]uint16 // [thumb_w, thumb_h, small_w, small_h]
	Unused32   uint32
	Unused64   uint64
}

// slot mirrors struct img_metadata.
type slot struct {
	ImgID    [imgIDFieldSize]byte
	SHA      [shaSize]byte
	OrigRes  [2]uint32
	Size     [3]uint64
	Offset   [3]uint64
	IsValid  uint16
	Unused16 uint16
}

const (
	slotEmpty    uint16 = 0
	slotNonEmpty uint16 = 1
)

func (s *slot) valid() bool { return s.IsValid == slotNonEmpty }

// imgID returns the slot's identifier as a Go string, trimmed at the first
// NUL byte.
func (s *slot) imgID() string {
	return cstring(s.ImgID[:])
}

// setImgID copies id into the fixed-size field, truncating silently past
// MaxImgID bytes (spec §9 open question 3 — preserved intentionally).
func (s *slot) setImgID(id string) {
	clear(s.ImgID[:])
	n := copy(s.ImgID[:MaxImgID], id)
	s.ImgID[n] = 0
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// encodeHeader serializes h into a headerSize-byte buffer.
func encodeHeader(h *header) []byte {
	buf := make([]byte, headerSize)
	off := 0

	copy(buf[off:], h.Name[:])
	off += nameFieldSize

	binary.NativeEndian.PutUint32(buf[off:], h.Version)
	off += 4
	binary.NativeEndian.PutUint32(buf[off:], h.NbFiles)
	off += 4
	binary.NativeEndian.PutUint32(buf[off:], h.MaxFiles)
	off += 4

	for _, v := range h.ResizedRes {
		binary.NativeEndian.PutUint16(buf[off:], v)
		off += 2
	}

	binary.NativeEndian.PutUint32(buf[off:], h.Unused32)
	off += 4
	binary.NativeEndian.PutUint64(buf[off:], h.Unused64)
	off += 8

	return buf
}

// decodeHeader parses a headerSize-byte buffer into a header.
func decodeHeader(buf []byte) header {
	var h header
	off := 0

	copy(h.Name[:], buf[off:off+nameFieldSize])
	off += nameFieldSize

	h.Version = binary.NativeEndian.Uint32(buf[off:])
	off += 4
	h.NbFiles = binary.NativeEndian.Uint32(buf[off:])
	off += 4
	h.MaxFiles = binary.NativeEndian.Uint32(buf[off:])
	off += 4

	for i := range h.ResizedRes {
		h.ResizedRes[i] = binary.NativeEndian.Uint16(buf[off:])
		off += 2
	}

	h.Unused32 = binary.NativeEndian.Uint32(buf[off:])
	off += 4
	h.Unused64 = binary.NativeEndian.Uint64(buf[off:])
	off += 8

	return h
}

// encodeSlot serializes s into a slotSize-byte buffer.
func encodeSlot(s *slot) []byte {
	buf := make([]byte, slotSize)
	off := 0

	copy(buf[off:], s.ImgID[:])
	off += imgIDFieldSize
	copy(buf[off:], s.SHA[:])
	off += shaSize

	for _, v := range s.OrigRes {
		binary.NativeEndian.PutUint32(buf[off:], v)
		off += 4
	}
	for _, v := range s.Size {
		binary.NativeEndian.PutUint64(buf[off:], v)
		off += 8
	}
	for _, v := range s.Offset {
		binary.NativeEndian.PutUint64(buf[off:], v)
		off += 8
	}

	binary.NativeEndian.PutUint16(buf[off:], s.IsValid)
	off += 2
	binary.NativeEndian.PutUint16(buf[off:], s.Unused16)
	off += 2

	return buf
}

// decodeSlot parses a slotSize-byte buffer into a slot.
func decodeSlot(buf []byte) slot {
	var s slot
	off := 0

	copy(s.ImgID[:], buf[off:off+imgIDFieldSize])
	off += imgIDFieldSize
	copy(s.SHA[:], buf[off:off+shaSize])
	off += shaSize

	for i := range s.OrigRes {
		s.OrigRes[i] = binary.NativeEndian.Uint32(buf[off:])
		off += 4
	}
	for i := range s.Size {
		s.Size[i] = binary.NativeEndian.Uint64(buf[off:])
		off += 8
	}
	for i := range s.Offset {
		s.Offset[i] = binary.NativeEndian.Uint64(buf[off:])
		off += 8
	}

	s.IsValid = binary.NativeEndian.Uint16(buf[off:])
	off += 2
	s.Unused16 = binary.NativeEndian.Uint16(buf[off:])
	off += 2

	return s
}

// slotOffset returns the absolute byte offset of slot i in the container.
func slotOffset(maxFiles uint32, i uint32) int64 {
	return int64(headerSize) + int64(i)*int64(slotSize)
}

// blobRegionStart returns the first byte offset past the slot table —
// spec invariant I5's lower bound for any blob offset.
func blobRegionStart(maxFiles uint32) int64 {
	return int64(headerSize) + int64(maxFiles)*int64(slotSize)
}
