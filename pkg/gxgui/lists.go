package gxgui

// OptionList is a caller owned list of name/value pairs. Entries with an
// empty name are blank: they keep their index but are never shown.
// Browsers only read it.
type OptionList struct {
	Name  []string
	Value []string
}

// Len is the number of logical entries, blank ones included.
func (l *OptionList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Name)
}

// Entry returns the name and value at index. A missing value is empty.
func (l *OptionList) Entry(index int) (name, value string, ok bool) {
	if index < 0 || index >= l.Len() {
		return "", "", false
	}
	if index < len(l.Value) {
		value = l.Value[index]
	}
	return l.Name[index], value, true
}

// SaveType tags what a save file holds.
type SaveType int

const (
	SaveSRAM SaveType = iota
	SaveSnapshot
)

func (t SaveType) String() string {
	if t == SaveSRAM {
		return "sram"
	}
	return "snapshot"
}

// SaveEntry is one already parsed save file record.
type SaveEntry struct {
	Filename string
	Date     string
	Time     string
	Type     SaveType
}

// IsAuto reports whether the file is an automatic save, named like
// "Game Auto.srm".
func (e SaveEntry) IsAuto() bool {
	n := len(e.Filename)
	return n > 10 && e.Filename[n-8:n-4] == "Auto"
}

// SaveList is a caller owned list of save records.
type SaveList struct {
	Files []SaveEntry
}

func (l *SaveList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Files)
}

// SaveLabels are the strings the save browser renders itself.
type SaveLabels struct {
	NewSRAM     string
	NewSnapshot string
	SRAM        string
	Snapshot    string
	Auto        string
}

// DefaultSaveLabels is the English label set.
var DefaultSaveLabels = SaveLabels{
	NewSRAM:     "New SRAM",
	NewSnapshot: "New Snapshot",
	SRAM:        "SRAM",
	Snapshot:    "Snapshot",
	Auto:        "(Auto)",
}

// TypeLabel renders e's type tag, marking automatic saves.
func (l SaveLabels) TypeLabel(e SaveEntry) string {
	label := l.Snapshot
	if e.Type == SaveSRAM {
		label = l.SRAM
	}
	if e.IsAuto() {
		label += " " + l.Auto
	}
	return label
}
