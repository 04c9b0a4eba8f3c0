package engine

import (
	"math"

	"lifequest/internal/storage"
)

// ToggleItem flips the completion flag of one checklist item and nothing
// else. Items toggle freely in both directions. Unknown project or item IDs
// are a no-op; the bool reports whether a flag changed.
func ToggleItem(st *storage.State, projectID, itemID string) bool {
	for i := range st.Projects {
		if st.Projects[i].ID != projectID {
			continue
		}
		items := st.Projects[i].Items
		for j := range items {
			if items[j].ID == itemID {
				items[j].Completed = !items[j].Completed
				return true
			}
		}
		return false
	}
	return false
}

// Progress derives the completion percentage of a project, rounded for
// display. A project with no items is 0%, not an error.
func Progress(p storage.Project) int {
	if len(p.Items) == 0 {
		return 0
	}
	done := 0
	for _, item := range p.Items {
		if item.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(p.Items)) * 100))
}
