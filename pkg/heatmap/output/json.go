// Package output serializes heatmap results.
package output

import (
	json "github.com/goccy/go-json"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// ToJSON serializes the colors applied to a workbook.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes the colors applied to a single sheet or table.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
