package imgfs

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// PrintHeader writes a human-readable rendering of a store's header,
// ported from the source's print_header.
func PrintHeader(w io.Writer, info Info) {
	fmt.Fprint(w, "*****************************************\n")
	fmt.Fprint(w, "********** IMGFS HEADER START ***********\n")
	fmt.Fprintf(w, "TYPE: %31s\n", info.Name)
	fmt.Fprintf(w, "VERSION: %d\n", info.Version)
	fmt.Fprintf(w, "IMAGE COUNT: %d\t\tMAX IMAGES: %d\n", info.NbFiles, info.MaxFiles)
	fmt.Fprintf(w, "THUMBNAIL: %d x %d\tSMALL: %d x %d\n",
		info.ThumbRes[0], info.ThumbRes[1], info.SmallRes[0], info.SmallRes[1])
	fmt.Fprint(w, "*********** IMGFS HEADER END ************\n")
	fmt.Fprint(w, "*****************************************\n")
}

// SlotInfo is a read-only snapshot of one non-empty slot, for CLI listing.
type SlotInfo struct {
	ImgID   string
	SHA     [shaSize]byte
	OrigRes [2]uint32
	Size    [3]uint64
	Offset  [3]uint64
}

// PrintSlot writes a human-readable rendering of one slot's metadata,
// ported from the source's print_metadata.
func PrintSlot(w io.Writer, m SlotInfo) {
	fmt.Fprintf(w, "IMAGE ID: %s\n", m.ImgID)
	fmt.Fprintf(w, "SHA: %s\n", hex.EncodeToString(m.SHA[:]))
	fmt.Fprintf(w, "OFFSET ORIG. : %d\t\tSIZE ORIG. : %d (%s)\n",
		m.Offset[OrigRes], m.Size[OrigRes], humanize.Bytes(m.Size[OrigRes]))
	fmt.Fprintf(w, "OFFSET THUMB.: %d\t\tSIZE THUMB.: %d (%s)\n",
		m.Offset[ThumbRes], m.Size[ThumbRes], humanize.Bytes(m.Size[ThumbRes]))
	fmt.Fprintf(w, "OFFSET SMALL : %d\t\tSIZE SMALL : %d (%s)\n",
		m.Offset[SmallRes], m.Size[SmallRes], humanize.Bytes(m.Size[SmallRes]))
	fmt.Fprintf(w, "ORIGINAL: %d x %d\n", m.OrigRes[0], m.OrigRes[1])
	fmt.Fprint(w, "*****************************************\n")
}

// ListDetailed returns a snapshot of every non-empty slot's metadata, in ascending
// slot order — used by imgfscmd list's human-readable STDOUT mode (spec
// §4.5 do_list, STDOUT branch).
func (s *Store) ListDetailed() ([]SlotInfo, error) {
	var out []SlotInfo
	err := s.gate.do(func() error {
		for i := range s.idx.slots {
			sl := &s.idx.slots[i]
			if !sl.valid() {
				continue
			}
			out = append(out, SlotInfo{
				ImgID:   sl.imgID(),
				SHA:     sl.SHA,
				OrigRes: sl.OrigRes,
				Size:    sl.Size,
				Offset:  sl.Offset,
			})
		}
		return nil
	})
	return out, err
}

// ParseResolution maps the CLI/HTTP resolution spellings
// (thumb|thumbnail|small|orig|original) to a Resolution, ported from the
// source's resolution_atoi. Returns false for anything else.
func ParseResolution(s string) (Resolution, bool) {
	switch s {
	case "thumb", "thumbnail":
		return ThumbRes, true
	case "small":
		return SmallRes, true
	case "orig", "original":
		return OrigRes, true
	default:
		return 0, false
	}
}
