package imgfs

import (
	"bytes"
	"context"
	"crypto/sha256"

	"github.com/natefinch/atomic"

	ifs "imgfs/internal/fs"
	"imgfs/internal/imgcodec"
)

// Config supplies the parameters fixed at creation time: the slot-table
// size and the two derived resolutions. Both are recorded in the header
// and never mutated afterward.
type Config struct {
	MaxFiles uint32
	ThumbRes [2]uint16
	SmallRes [2]uint16
}

// Create initializes a fresh, empty container file at path: a header plus
// MaxFiles zeroed/empty slots, written atomically so a crash mid-write
// never leaves a half-written file at the target path.
//
// Ported from the source's do_create, with the whole-file write collapsed
// into one atomic.WriteFile call instead of a header-write followed by a
// slot-table write (there is no partially-created container to observe
// either way; atomic.WriteFile is strictly stronger).
func Create(path string, cfg Config) error {
	if cfg.MaxFiles == MaxMaxFiles {
		return newErr(MaxFiles, nil, "max_files must not be %d", MaxMaxFiles)
	}

	h := header{
		Version:  0,
		NbFiles:  0,
		MaxFiles: cfg.MaxFiles,
		ResizedRes: [4]uint16{
			cfg.ThumbRes[0], cfg.ThumbRes[1],
			cfg.SmallRes[0], cfg.SmallRes[1],
		},
	}
	copy(h.Name[:], ContainerName)

	buf := make([]byte, 0, headerSize+int(cfg.MaxFiles)*slotSize)
	buf = append(buf, encodeHeader(&h)...)

	var emptySlot slot
	encodedEmpty := encodeSlot(&emptySlot)
	for i := uint32(0); i < cfg.MaxFiles; i++ {
		buf = append(buf, encodedEmpty...)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(buf)); err != nil {
		return newErr(Io, err, "creating %s: %v", path, err)
	}
	return nil
}

// Store is an opened container: the file handle, the in-memory header and
// slot-table mirror, the image codec, and the single concurrency gate
// guarding all of it.
type Store struct {
	container container
	header    header
	idx       index
	codec     imgcodec.Codec
	gate      gate
}

// Open opens an existing container file, reading its header and full
// slot table into memory (spec §3.3's do_open/do_open).
func Open(fsys ifs.FS, codec imgcodec.Codec, path string) (*Store, error) {
	f, err := fsys.OpenReadWrite(path)
	if err != nil {
		return nil, newErr(Io, err, "opening %s: %v", path, err)
	}

	c := container{file: f}
	h, err := c.readHeader()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	c.maxFiles = h.MaxFiles

	slots := make([]slot, h.MaxFiles)
	for i := uint32(0); i < h.MaxFiles; i++ {
		s, err := c.readSlot(i)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		slots[i] = s
	}

	return &Store{
		container: c,
		header:    h,
		idx:       index{slots: slots},
		codec:     codec,
	}, nil
}

// Close releases the underlying file handle. Idempotent: calling Close on
// an already-closed Store is safe (mirrors do_close's NULL-tolerant
// behavior, adapted to Go's explicit-handle idiom).
func (s *Store) Close() error {
	if s.container.file == nil {
		return nil
	}
	err := s.container.file.Close()
	s.container.file = nil
	if err != nil {
		return newErr(Io, err, "closing store: %v", err)
	}
	return nil
}

// Insert stores a new image under imgID. See spec §4.5 do_insert.
func (s *Store) Insert(ctx context.Context, imgID string, data []byte) error {
	if imgID == "" || len(data) == 0 {
		return newErr(InvalidArgument, nil, "imgID and image bytes are required")
	}
	if len(data) > MaxRequestSize {
		return newErr(InvalidArgument, nil, "image size %d exceeds MAX_REQUEST_SIZE (%d)", len(data), MaxRequestSize)
	}
	if err := ctx.Err(); err != nil {
		return newErr(Runtime, err, "insert canceled before starting: %v", err)
	}

	return s.gate.do(func() error {
		if s.header.NbFiles >= s.header.MaxFiles {
			return newErr(Full, nil, "imgFS is full (%d/%d)", s.header.NbFiles, s.header.MaxFiles)
		}

		k := s.idx.firstEmpty()
		if k == notFound {
			return newErr(Full, nil, "imgFS is full (%d/%d)", s.header.NbFiles, s.header.MaxFiles)
		}

		sl := &s.idx.slots[k]
		sl.SHA = sha256.Sum256(data)
		sl.setImgID(imgID)
		sl.Size[OrigRes] = uint64(len(data))

		width, height, err := s.codec.Dimensions(data)
		if err != nil {
			return newErr(ImgLib, err, "reading image dimensions: %v", err)
		}
		sl.OrigRes[0] = width
		sl.OrigRes[1] = height

		outcome, err := s.idx.dedupCheck(k)
		if err != nil {
			// Per spec §9 open question 1: the slot MUST NOT have been
			// marked NON_EMPTY yet, so no rollback of is_valid is needed —
			// it was never set.
			return err
		}

		if outcome == dedupUnique && sl.Offset[OrigRes] == 0 {
			off, err := s.container.appendBlob(data)
			if err != nil {
				return err
			}
			sl.Offset[OrigRes] = uint64(off)
		}

		sl.IsValid = slotNonEmpty
		if outcome == dedupUnique {
			sl.Offset[ThumbRes] = 0
			sl.Offset[SmallRes] = 0
			sl.Size[ThumbRes] = 0
			sl.Size[SmallRes] = 0
		}

		s.header.NbFiles++
		s.header.Version++

		if err := s.container.writeHeader(&s.header); err != nil {
			return err
		}
		if err := s.container.writeSlot(uint32(k), sl); err != nil {
			return err
		}
		return nil
	})
}

// Delete removes imgID from the store without touching its blobs — other
// slots sharing the same blobs (via dedup) remain fully readable.
func (s *Store) Delete(ctx context.Context, imgID string) error {
	if imgID == "" {
		return newErr(InvalidArgument, nil, "imgID is required")
	}
	if err := ctx.Err(); err != nil {
		return newErr(Runtime, err, "delete canceled before starting: %v", err)
	}

	return s.gate.do(func() error {
		i := s.idx.findByID(imgID)
		if i == notFound {
			return newErr(NotFound, nil, "no image with ID %q", imgID)
		}

		s.idx.slots[i].IsValid = slotEmpty

		if err := s.container.writeSlot(uint32(i), &s.idx.slots[i]); err != nil {
			return err
		}

		s.header.NbFiles--
		s.header.Version++

		return s.container.writeHeader(&s.header)
	})
}

// Read returns the bytes of imgID at resolution r, lazily materializing a
// derived resolution on first read.
func (s *Store) Read(ctx context.Context, imgID string, r Resolution) ([]byte, error) {
	if imgID == "" {
		return nil, newErr(InvalidArgument, nil, "imgID is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, newErr(Runtime, err, "read canceled before starting: %v", err)
	}

	var out []byte
	err := s.gate.do(func() error {
		if s.header.NbFiles == 0 {
			return newErr(NotFound, nil, "imgFS is empty")
		}

		i := s.idx.findByID(imgID)
		if i == notFound {
			return newErr(NotFound, nil, "no image with ID %q", imgID)
		}

		sl := &s.idx.slots[i]
		if sl.Offset[r] == 0 || sl.Size[r] == 0 {
			if r == OrigRes {
				return newErr(NotFound, nil, "original blob missing for %q", imgID)
			}
			if err := s.lazilyResize(r, i); err != nil {
				return err
			}
		}

		data, err := s.container.readBlob(int64(sl.Offset[r]), sl.Size[r])
		if err != nil {
			return err
		}
		out = data
		return nil
	})
	return out, err
}

// List returns the identifiers of every non-empty slot, in ascending slot
// order — the source's JSON list mode, here as a plain []string so the
// HTTP layer owns how it is marshaled.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, newErr(Runtime, err, "list canceled before starting: %v", err)
	}

	var ids []string
	err := s.gate.do(func() error {
		for i := range s.idx.slots {
			if s.idx.slots[i].valid() {
				ids = append(ids, s.idx.slots[i].imgID())
			}
		}
		return nil
	})
	return ids, err
}

// Info is a read-only snapshot of the header, for CLI/server banner
// printing (see print.go).
type Info struct {
	Name     string
	Version  uint32
	NbFiles  uint32
	MaxFiles uint32
	ThumbRes [2]uint16
	SmallRes [2]uint16
}

// Header returns a snapshot of the current header fields.
func (s *Store) Header() Info {
	var info Info
	err := s.gate.do(func() error {
		info = Info{
			Name:     cstring(s.header.Name[:]),
			Version:  s.header.Version,
			NbFiles:  s.header.NbFiles,
			MaxFiles: s.header.MaxFiles,
			ThumbRes: [2]uint16{s.header.ResizedRes[0], s.header.ResizedRes[1]},
			SmallRes: [2]uint16{s.header.ResizedRes[2], s.header.ResizedRes[3]},
		}
		return nil
	})
	_ = err // Header never fails; gate.do's fn always returns nil here.
	return info
}
