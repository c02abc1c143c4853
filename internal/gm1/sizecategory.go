package gm1

// SizeCategory enumerates the named tile-atlas dimensions a header's
// sizeCategory field can declare. Values are the raw header field value,
// unchanged from the source archive's ordinal encoding.
type SizeCategory uint32

const (
	SizeUndefined SizeCategory = iota
	Size30x30
	Size55x55
	Size75x75
	SizeUnknown0
	Size100x100
	Size110x110
	Size130x130
	SizeUnknown1
	Size185x185
	Size250x250
	Size180x180
)

// sizeCategoryDims gives the declared (width, height) for every named
// category. Size110x110 maps to (11, 110), not (110, 110): this is a format
// quirk carried verbatim from the source archive, the same kind of
// unexplained discrepancy as the Bitmap height-7 truncation.
var sizeCategoryDims = map[SizeCategory][2]int{
	SizeUndefined: {0, 0},
	Size30x30:     {30, 30},
	Size55x55:     {55, 55},
	Size75x75:     {75, 75},
	SizeUnknown0:  {0, 0},
	Size100x100:   {100, 100},
	Size110x110:   {11, 110},
	Size130x130:   {130, 130},
	SizeUnknown1:  {0, 0},
	Size185x185:   {185, 185},
	Size250x250:   {250, 250},
	Size180x180:   {180, 180},
}

// Opaque reports whether cat is one of the two unnamed slots the format
// reserves with no observed dimensions. Archives declaring one of these
// ingest without error by default; see CheckDims.
func (cat SizeCategory) Opaque() bool {
	return cat == SizeUnknown0 || cat == SizeUnknown1
}

// Known reports whether cat falls within the format's defined ordinal range.
func (cat SizeCategory) Known() bool {
	_, ok := sizeCategoryDims[cat]
	return ok
}

// Dims returns the declared dimensions for cat. Undefined and the two
// Unknown slots report (0, 0).
func (cat SizeCategory) Dims() (width, height int) {
	d, ok := sizeCategoryDims[cat]
	if !ok {
		return 0, 0
	}
	return d[0], d[1]
}

// CheckDims reports whether (width, height) matches cat's declared
// dimensions. Unknown0 and Unknown1 always pass: the format defines no
// dimensions to check against, so a mismatch cannot be detected, only
// asserted. Callers that want strict rejection of Unknown0/Unknown1 should
// test cat.Opaque() themselves (Archive.CheckSizeCategory does, and gmtool's
// --check-size-category goes through it).
func (cat SizeCategory) CheckDims(width, height int) bool {
	if cat.Opaque() {
		return true
	}
	w, h := cat.Dims()
	return w == width && h == height
}
