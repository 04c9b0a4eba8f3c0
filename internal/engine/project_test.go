package engine

import (
	"testing"

	"lifequest/internal/storage"
)

func TestToggleItem(t *testing.T) {
	st := NewState(testTime)
	p := st.Projects[0]
	item := p.Items[0]

	if !ToggleItem(st, p.ID, item.ID) {
		t.Fatalf("toggle existing item returned false")
	}
	if !st.Projects[0].Items[0].Completed {
		t.Fatalf("item not completed after toggle")
	}

	// Toggling is reversible: false → true → false.
	if !ToggleItem(st, p.ID, item.ID) {
		t.Fatalf("second toggle returned false")
	}
	if st.Projects[0].Items[0].Completed {
		t.Fatalf("item still completed after second toggle")
	}
}

func TestToggleItemUnknownIsNoOp(t *testing.T) {
	st := NewState(testTime)

	if ToggleItem(st, "proj_1", "no_such_item") {
		t.Fatalf("unknown item toggled")
	}
	if ToggleItem(st, "no_such_project", "item_1_1") {
		t.Fatalf("unknown project toggled")
	}
	for _, item := range st.Projects[0].Items {
		if item.Completed {
			t.Fatalf("no-op toggle mutated items")
		}
	}
}

func TestProgress(t *testing.T) {
	p := storage.Project{
		ID: "p",
		Items: []storage.ProjectItem{
			{ID: "1", Completed: true},
			{ID: "2", Completed: true},
			{ID: "3"},
			{ID: "4"},
			{ID: "5"},
		},
	}
	if got := Progress(p); got != 40 {
		t.Fatalf("progress = %d%%, want 40%%", got)
	}
}

func TestProgressEmptyProject(t *testing.T) {
	if got := Progress(storage.Project{ID: "empty"}); got != 0 {
		t.Fatalf("empty project progress = %d%%, want 0%%", got)
	}
}

func TestProgressRounding(t *testing.T) {
	p := storage.Project{
		Items: []storage.ProjectItem{
			{ID: "1", Completed: true},
			{ID: "2"},
			{ID: "3"},
		},
	}
	// 1/3 rounds to 33 for display.
	if got := Progress(p); got != 33 {
		t.Fatalf("progress = %d%%, want 33%%", got)
	}
}
