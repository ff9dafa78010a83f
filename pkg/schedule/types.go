package schedule

// RawRow is one program slot as read off a PDF schedule page.
type RawRow struct {
	Date    string // DD/MM/YYYY, empty when the document carried no date token
	Time    string // as extracted; canonicalized to HH:MM by SortChronologically
	RawName string
}

// CleanRow is a RawRow after name standardization and slot keying.
type CleanRow struct {
	Date    string
	Time    string
	Program string // standardized name
	SlotKey string // "{weekday}_{HH:MM}", Monday = 0; set by AttachSlotKeys
}
