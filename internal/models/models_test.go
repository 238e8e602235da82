package models

import (
	"testing"

	"github.com/thenoetrevino/swimlane/internal/types"
)

func TestCard_InColumn(t *testing.T) {
	card := Card{ID: "7", ColumnID: "1", Content: "Task 1"}

	if !card.InColumn("1") {
		t.Error("InColumn(\"1\") = false, want true")
	}
	if card.InColumn("2") {
		t.Error("InColumn(\"2\") = true, want false")
	}
	if card.InColumn(types.ID("")) {
		t.Error("InColumn(\"\") = true, want false")
	}
}
