package models

// EmbeddedChart is a chart placed on a sheet.
type EmbeddedChart struct {
	// ChartID is the chart identifier.
	ChartID int `json:"chartId,omitempty"`
	// Spec holds the chart title and source ranges.
	Spec *ChartSpec `json:"spec,omitempty"`
	// Position locates the chart on a sheet.
	Position *EmbeddedObjectPosition `json:"position,omitempty"`
}

// ChartSpec is the subset of a chart specification that carries titles.
type ChartSpec struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	// AltText is the accessibility description.
	AltText string `json:"altText,omitempty"`
}

// EmbeddedObjectPosition locates an embedded object.
type EmbeddedObjectPosition struct {
	SheetID  int  `json:"sheetId,omitempty"`
	NewSheet bool `json:"newSheet,omitempty"`
}
