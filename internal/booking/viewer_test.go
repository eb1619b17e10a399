package booking

import (
	"testing"

	"college-appointment-server/internal/models"
)

func TestViewerFor(t *testing.T) {
	v, err := ViewerFor("user-1", models.RoleStudent)
	if err != nil {
		t.Fatalf("student viewer: %v", err)
	}
	if _, ok := v.(StudentViewer); !ok {
		t.Errorf("expected StudentViewer, got %T", v)
	}

	v, err = ViewerFor("user-1", models.RoleProfessor)
	if err != nil {
		t.Fatalf("professor viewer: %v", err)
	}
	if _, ok := v.(ProfessorViewer); !ok {
		t.Errorf("expected ProfessorViewer, got %T", v)
	}

	if _, err := ViewerFor("user-1", "admin"); err == nil {
		t.Error("expected an error for an unknown role")
	}
}

func TestViewerCanSee(t *testing.T) {
	appointment := &models.Appointment{
		StudentID:   "student-1",
		ProfessorID: "prof-1",
	}

	tests := []struct {
		name   string
		viewer Viewer
		want   bool
	}{
		{"booking student", StudentViewer{StudentID: "student-1"}, true},
		{"other student", StudentViewer{StudentID: "student-2"}, false},
		{"owning professor", ProfessorViewer{ProfessorID: "prof-1"}, true},
		{"other professor", ProfessorViewer{ProfessorID: "prof-2"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.viewer.CanSee(appointment); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
