package layout

// Mode is the arrangement of the picture relative to the quote box.
type Mode int

const (
	// ModeCol puts the picture above the quote. It is also the fallback for
	// unknown mode names.
	ModeCol Mode = iota
	ModeColCentered
	ModeRow
	ModeRowCentered
)

// Mode names as written in the configuration file.
const (
	NameRow         = "ROW"
	NameRowCentered = "ROW_CENTERED"
	NameCol         = "COL"
	NameColCentered = "COL_CENTERED"
)

// ParseMode maps a case-sensitive mode name to a Mode.
// Anything unrecognized lands in the column family.
func ParseMode(name string) Mode {
	switch name {
	case NameRow:
		return ModeRow
	case NameRowCentered:
		return ModeRowCentered
	case NameColCentered:
		return ModeColCentered
	default:
		return ModeCol
	}
}

// IsKnownMode reports whether name is one of the four mode names.
func IsKnownMode(name string) bool {
	switch name {
	case NameRow, NameRowCentered, NameCol, NameColCentered:
		return true
	}
	return false
}

func (m Mode) String() string {
	switch m {
	case ModeRow:
		return NameRow
	case ModeRowCentered:
		return NameRowCentered
	case ModeColCentered:
		return NameColCentered
	default:
		return NameCol
	}
}

// IsRow reports whether the picture sits left of the quote.
func (m Mode) IsRow() bool {
	return m == ModeRow || m == ModeRowCentered
}

// IsCol reports whether the picture sits above the quote.
func (m Mode) IsCol() bool {
	return !m.IsRow()
}
