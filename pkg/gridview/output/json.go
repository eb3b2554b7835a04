// Package output serialises layouts and snapshots as JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// ToJSON serialises v, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SnapshotToJSON serialises an engine snapshot.
func SnapshotToJSON(s *models.Snapshot, pretty bool) ([]byte, error) {
	return ToJSON(s, pretty)
}

// LayoutToJSON serialises a workbook layout.
func LayoutToJSON(w *models.WorkbookLayout, pretty bool) ([]byte, error) {
	return ToJSON(w, pretty)
}
