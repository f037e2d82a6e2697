package imgfs

// Resolution identifies one of the three blob variants kept per image.
type Resolution int

const (
	ThumbRes Resolution = iota
	SmallRes
	OrigRes
	numResolutions
)

// String implements [fmt.Stringer].
func (r Resolution) String() string {
	switch r {
	case ThumbRes:
		return "thumbnail"
	case SmallRes:
		return "small"
	case OrigRes:
		return "original"
	default:
		return "unknown"
	}
}

const (
	// MaxImgFSName is the maximum length, in bytes, of the header's name tag.
	MaxImgFSName = 31

	// MaxImgID is the maximum length, in bytes, of an image identifier.
	// Longer identifiers are silently truncated on write — see spec §9 open
	// question 3; callers that care should validate length themselves.
	MaxImgID = 127

	// ContainerName is the fixed tag written into every header's name field
	// at creation time.
	ContainerName = "EPFL ImgFS 2024"

	// DefaultMaxFiles is the default slot-table size used by imgfscmd create
	// when -max_files is not given.
	DefaultMaxFiles uint32 = 128

	// MaxMaxFiles is the one value of max_files that is always rejected
	// (all-ones is reserved as a sentinel in the source format).
	MaxMaxFiles uint32 = 1<<32 - 1

	// DefaultThumbRes and MaxThumbRes bound the thumbnail resolution.
	DefaultThumbRes uint16 = 64
	MaxThumbRes     uint16 = 128

	// DefaultSmallRes and MaxSmallRes bound the small resolution.
	DefaultSmallRes uint16 = 256
	MaxSmallRes     uint16 = 512

	// MaxRequestSize is the largest accepted insert body, 2^23 bytes.
	MaxRequestSize = 1 << 23
)
