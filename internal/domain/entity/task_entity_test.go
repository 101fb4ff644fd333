package entity

import "testing"

func TestTaskStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []TaskStatus{"", "done", "PENDING"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
