package models

// Spreadsheet is the resource returned by spreadsheets.get.
type Spreadsheet struct {
	// SpreadsheetID is the spreadsheet identifier.
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
	// Properties holds spreadsheet-wide settings.
	Properties *SpreadsheetProperties `json:"properties,omitempty"`
	// Sheets lists the sheets in tab order.
	Sheets []Sheet `json:"sheets,omitempty"`
	// NamedRanges lists the named ranges defined in the spreadsheet.
	NamedRanges []NamedRange `json:"namedRanges,omitempty"`
	// SpreadsheetURL is the browser URL of the spreadsheet.
	SpreadsheetURL string `json:"spreadsheetUrl,omitempty"`
}

// SpreadsheetProperties holds spreadsheet-wide settings.
type SpreadsheetProperties struct {
	Title      string `json:"title,omitempty"`
	Locale     string `json:"locale,omitempty"`
	AutoRecalc string `json:"autoRecalc,omitempty"`
	TimeZone   string `json:"timeZone,omitempty"`
}

// SheetByTitle returns the sheet with the given title.
func (s *Spreadsheet) SheetByTitle(title string) (*Sheet, bool) {
	for i := range s.Sheets {
		if p := s.Sheets[i].Properties; p != nil && p.Title == title {
			return &s.Sheets[i], true
		}
	}
	return nil, false
}
