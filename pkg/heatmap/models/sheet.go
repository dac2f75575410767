package models

// Range is the numeric (min, max) domain of a single row.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CellColor is the color computed for one eligible cell.
type CellColor struct {
	// Col is the column index (0-based) of the cell.
	Col int `json:"c"`
	// Color is the interpolated color, unclamped.
	Color RGB `json:"color"`
	// Valid is false when the value or range produced a non-finite color.
	Valid bool `json:"valid"`
}

// RowColors holds the colors applied to one row.
type RowColors struct {
	// R is the row index as reported by the source.
	R int `json:"r"`
	// Cells maps column index (string) to the applied color hex.
	Cells map[string]string `json:"cells"`
}

// SheetData holds the colors applied to a single sheet or table.
type SheetData struct {
	// Area is the region that was colored, if restricted.
	Area *Area `json:"area,omitempty"`
	// Rows contains the colored rows in source order.
	Rows []RowColors `json:"rows,omitempty"`
}
