package imgfs

// dedupOutcome is the result of running the dedup engine against a
// candidate slot.
type dedupOutcome int

const (
	// dedupUnique means no other slot shares this content; the caller must
	// still write the original blob itself.
	dedupUnique dedupOutcome = iota
	// dedupShared means an existing slot's blobs were aliased onto the
	// candidate; the caller must NOT write a new original blob.
	dedupShared
)

// dedupCheck implements the name+content dedup protocol (spec §4.3). It is
// called after slot k's ImgID and SHA have been filled in, and before any
// blob bytes are written for k.
//
// Ported from the source's do_name_and_content_dedup: a matching img_id in
// any non-empty slot is a hard failure (the caller must not have marked k
// valid yet), checked across the whole table before any content match is
// considered; otherwise the first non-empty slot with a matching SHA has all
// three resolution offsets/sizes aliased onto k.
func (idx *index) dedupCheck(k int) (dedupOutcome, error) {
	candidate := &idx.slots[k]

	if i := idx.findByID(candidate.imgID()); i != notFound && i != k {
		return dedupUnique, newErr(DuplicateId, nil, "image ID %q already exists", candidate.imgID())
	}

	if i := idx.findBySHA(candidate.SHA, k); i != notFound {
		candidate.Offset = idx.slots[i].Offset
		candidate.Size = idx.slots[i].Size
		return dedupShared, nil
	}

	candidate.Offset[OrigRes] = 0
	return dedupUnique, nil
}
