package teacher

import "testing"

func TestTeacherSetters(t *testing.T) {
	tch := Teacher{ID: 1, Name: "Asha Mrema", Subject: "Mathematics", Salary: 100}

	if tch.SetSalary(-1) {
		t.Error("SetSalary(-1) should fail")
	}
	if tch.Salary != 100 {
		t.Errorf("failed SetSalary() must keep the prior value, got %v", tch.Salary)
	}
	if !tch.SetSalary(0) {
		t.Error("SetSalary(0) should succeed")
	}

	if tch.SetSubject("") {
		t.Error("SetSubject(\"\") should fail")
	}
	if !tch.SetSubject("  Physics  ") {
		t.Error("SetSubject() should accept a padded subject")
	}
	if tch.Subject != "Physics" {
		t.Errorf("SetSubject() should trim, got %q", tch.Subject)
	}
}

func TestTeacherAssignment(t *testing.T) {
	tch := Teacher{ID: 1, Name: "Asha Mrema"}

	if !tch.AssignTo(3) {
		t.Error("AssignTo() should link a new course")
	}
	if tch.AssignTo(3) {
		t.Error("AssignTo() should reject a duplicate link")
	}
	if !tch.AssignTo(5) || !tch.IsAssignedTo(5) {
		t.Error("a teacher may be linked from several courses")
	}

	if !tch.UnassignFrom(3) {
		t.Error("UnassignFrom() should remove a link")
	}
	if tch.UnassignFrom(3) {
		t.Error("UnassignFrom() should report a missing link")
	}
	if got := len(tch.CourseIDs); got != 1 {
		t.Errorf("want 1 remaining link, got %d", got)
	}
}

func TestNewTeacherValidate(t *testing.T) {
	tests := []struct {
		name    string
		nt      NewTeacher
		wantErr bool
	}{
		{name: "valid", nt: NewTeacher{Name: "Asha Mrema", Subject: "Mathematics"}},
		{name: "missing name", nt: NewTeacher{Subject: "Mathematics"}, wantErr: true},
		{name: "bad name charset", nt: NewTeacher{Name: "Asha|Mrema", Subject: "Mathematics"}, wantErr: true},
		{name: "missing subject", nt: NewTeacher{Name: "Asha Mrema"}, wantErr: true},
		{name: "bad email", nt: NewTeacher{Name: "Asha Mrema", Subject: "Mathematics", Email: "nope"}, wantErr: true},
		{name: "negative salary", nt: NewTeacher{Name: "Asha Mrema", Subject: "Mathematics", Salary: -5}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.nt.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
