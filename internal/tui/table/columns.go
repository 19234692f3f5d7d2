package table

import (
	"github.com/tonetui/tone/internal/resource"
)

// Column defines the table structure.
type Column struct {
	Key   ColumnKey
	Title string
	// Width fixes the column's width. Ignored when FlexFactor is set, in
	// which case the column shares the leftover width in proportion to
	// its factor.
	Width          int
	FlexFactor     int
	TruncationFunc TruncationFunc
}

type ColumnKey string

// ForKind builds the column layout for a resource kind from its
// descriptor.
func ForKind(kind resource.Kind) []Column {
	desc := resource.Describe(kind)
	cols := make([]Column, len(desc.Columns))
	for i, rc := range desc.Columns {
		cols[i] = Column{
			Key:        ColumnKey(rc.Key),
			Title:      rc.Title,
			Width:      rc.Width,
			FlexFactor: rc.FlexFactor,
		}
		if rc.Key == "ENDPOINT" {
			cols[i].TruncationFunc = TruncateLeft
		}
	}
	return cols
}
