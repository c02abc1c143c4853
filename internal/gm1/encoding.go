package gm1

// Encoding identifies which TGX-family decoder an entry's payload requires.
type Encoding int

const (
	EncodingTGX16 Encoding = iota
	EncodingTGX8
	EncodingTileObject
	EncodingBitmap
	EncodingFont
	EncodingUnknown
)

func (e Encoding) String() string {
	switch e {
	case EncodingTGX16:
		return "TGX16"
	case EncodingTGX8:
		return "TGX8"
	case EncodingTileObject:
		return "TileObject"
	case EncodingBitmap:
		return "Bitmap"
	case EncodingFont:
		return "Font"
	default:
		return "Unknown"
	}
}

// EncodingFromDataClass derives the dispatch tag from the header's dataClass
// field. The mapping is closed by the format: any value outside {1..7}
// yields Unknown.
func EncodingFromDataClass(dataClass uint32) Encoding {
	switch dataClass {
	case 1:
		return EncodingTGX16
	case 2:
		return EncodingTGX8
	case 3:
		return EncodingTileObject
	case 4:
		return EncodingFont
	case 5:
		return EncodingBitmap
	case 6:
		return EncodingTGX16
	case 7:
		return EncodingBitmap
	default:
		return EncodingUnknown
	}
}

// dataClassName gives the human-readable label used in Open's
// unknown-dataClass error, matching the source archive's own class names.
func dataClassName(dataClass uint32) string {
	switch dataClass {
	case 1:
		return "Compressed 16 bit image"
	case 2:
		return "Compressed animation"
	case 3:
		return "Tile Object"
	case 4:
		return "Compressed font"
	case 5:
		return "Uncompressed bitmap"
	case 6:
		return "Compressed const size image"
	case 7:
		return "Uncompressed bitmap (other)"
	default:
		return "Unknown"
	}
}
