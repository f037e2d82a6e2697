package imgfs

// lazilyResize materializes the derived blob for resolution r on slot i if
// it is missing, appending the new blob and persisting the slot. Ported
// from the source's lazily_resize: a no-op for ORIG_RES or an
// already-present resolution. If another non-empty slot with the same SHA
// already holds resolution r, its blob is reused and slot i is persisted
// without appending anything; otherwise read-decode-resize-encode-append-
// persist.
//
// On any failure after the append step, the appended bytes are orphaned —
// the in-memory slot is left untouched and nothing further is persisted,
// exactly as the source's comment documents ("acceptable: orphan bytes
// only").
func (s *Store) lazilyResize(r Resolution, i int) error {
	sl := &s.idx.slots[i]

	if sl.Size[r] != 0 {
		return nil
	}
	if r == OrigRes {
		return nil
	}

	for j := range s.idx.slots {
		other := &s.idx.slots[j]
		if j == i || !other.valid() || other.SHA != sl.SHA || other.Size[r] == 0 {
			continue
		}
		sl.Offset[r], sl.Size[r] = other.Offset[r], other.Size[r]
		if err := s.container.writeSlot(uint32(i), sl); err != nil {
			sl.Offset[r], sl.Size[r] = 0, 0
			return err
		}
		return nil
	}

	orig, err := s.container.readBlob(int64(sl.Offset[OrigRes]), sl.Size[OrigRes])
	if err != nil {
		return err
	}

	maxEdge := s.header.ResizedRes[2*int(r)]

	resized, err := s.codec.Thumbnail(orig, maxEdge)
	if err != nil {
		return newErr(ImgLib, err, "resizing to %s: %v", r, err)
	}

	off, err := s.container.appendBlob(resized)
	if err != nil {
		return err
	}

	sl.Offset[r] = uint64(off)
	sl.Size[r] = uint64(len(resized))

	if err := s.container.writeSlot(uint32(i), sl); err != nil {
		// The slot in memory must not reflect an unpersisted resize, or a
		// later crash-free re-read of the same slot would mismatch disk.
		sl.Offset[r] = 0
		sl.Size[r] = 0
		return err
	}

	return nil
}
