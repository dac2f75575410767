// Package models defines data structures shared by the heatmap packages.
package models

// Cell is a single grid cell as read from a row source.
type Cell struct {
	// Col is the column index (0-based) of the cell within its row.
	Col int `json:"c"`
	// Text is the displayed text of the cell.
	Text string `json:"text"`
}

// Row is an ordered sequence of cells.
type Row struct {
	// Index identifies the row within its source (1-based for sheets).
	Index int `json:"r"`
	// Cells holds the row's cells in column order.
	Cells []Cell `json:"cells"`
}
