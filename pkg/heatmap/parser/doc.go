// Package parser provides the row sources a heatmap reads from: xlsx
// worksheets, HTML tables and CSV files, plus region helpers for sheets.
package parser
