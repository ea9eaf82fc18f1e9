package models

// SheetType is the kind of a sheet.
type SheetType string

const (
	SheetTypeUnspecified SheetType = "SHEET_TYPE_UNSPECIFIED"
	SheetTypeGrid        SheetType = "GRID"
	SheetTypeObject      SheetType = "OBJECT"
	SheetTypeDataSource  SheetType = "DATA_SOURCE"
)

// Sheet is a single sheet of a spreadsheet.
type Sheet struct {
	// Properties holds the sheet id, title and dimensions.
	Properties *SheetProperties `json:"properties,omitempty"`
	// Merges lists merged cell ranges.
	Merges []GridRange `json:"merges,omitempty"`
	// ProtectedRanges lists protected ranges on the sheet.
	ProtectedRanges []ProtectedRange `json:"protectedRanges,omitempty"`
	// Charts lists embedded charts on the sheet.
	Charts []EmbeddedChart `json:"charts,omitempty"`
}

// SheetProperties describes a sheet.
type SheetProperties struct {
	SheetID        int             `json:"sheetId"`
	Title          string          `json:"title,omitempty"`
	Index          int             `json:"index,omitempty"`
	SheetType      SheetType       `json:"sheetType,omitempty"`
	GridProperties *GridProperties `json:"gridProperties,omitempty"`
	Hidden         bool            `json:"hidden,omitempty"`
	RightToLeft    bool            `json:"rightToLeft,omitempty"`
}
