package imgfs

import (
	"io"

	ifs "imgfs/internal/fs"
)

// container is the thin I/O layer over the single backing file: header,
// slot table, and the appended blob region. It never interprets slot
// contents — that is index.go/store.go's job — it only knows how to place
// bytes at the right offsets.
type container struct {
	file     ifs.File
	maxFiles uint32
}

// readHeader reads and decodes the header at offset 0.
func (c *container) readHeader() (header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(io.NewSectionReader(c.file, 0, headerSize), buf); err != nil {
		return header{}, newErr(Io, err, "reading header: %v", err)
	}
	return decodeHeader(buf), nil
}

// writeHeader encodes and writes h at offset 0.
func (c *container) writeHeader(h *header) error {
	buf := encodeHeader(h)
	n, err := c.file.WriteAt(buf, 0)
	if err != nil {
		return newErr(Io, err, "writing header: %v", err)
	}
	if n != len(buf) {
		return newErr(Io, nil, "short write of header: wrote %d of %d bytes", n, len(buf))
	}
	return nil
}

// readSlot reads and decodes slot i.
func (c *container) readSlot(i uint32) (slot, error) {
	off := slotOffset(c.maxFiles, i)
	buf := make([]byte, slotSize)
	if _, err := io.ReadFull(io.NewSectionReader(c.file, off, slotSize), buf); err != nil {
		return slot{}, newErr(Io, err, "reading slot %d: %v", i, err)
	}
	return decodeSlot(buf), nil
}

// writeSlot encodes and writes slot i.
func (c *container) writeSlot(i uint32, s *slot) error {
	off := slotOffset(c.maxFiles, i)
	buf := encodeSlot(s)
	n, err := c.file.WriteAt(buf, off)
	if err != nil {
		return newErr(Io, err, "writing slot %d: %v", i, err)
	}
	if n != len(buf) {
		return newErr(Io, nil, "short write of slot %d: wrote %d of %d bytes", i, n, len(buf))
	}
	return nil
}

// appendBlob writes bytes at end-of-file and returns the offset they were
// written at.
func (c *container) appendBlob(data []byte) (int64, error) {
	info, err := c.file.Stat()
	if err != nil {
		return 0, newErr(Io, err, "stat before append: %v", err)
	}
	off := info.Size()

	n, err := c.file.WriteAt(data, off)
	if err != nil {
		return 0, newErr(Io, err, "appending blob: %v", err)
	}
	if n != len(data) {
		return 0, newErr(Io, nil, "short write appending blob: wrote %d of %d bytes", n, len(data))
	}
	return off, nil
}

// readBlob reads exactly size bytes starting at off.
func (c *container) readBlob(off int64, size uint64) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(c.file, off, int64(size)), buf); err != nil {
		return nil, newErr(Io, err, "reading blob at offset %d: %v", off, err)
	}
	return buf, nil
}
