package course

import "testing"

func TestCourseEnrollmentCapacity(t *testing.T) {
	crs := Course{ID: 1, Name: "Algebra", MaxStudents: 2, IsActive: true}

	if !crs.EnrollStudent(1) {
		t.Fatal("enrolling student 1 should succeed")
	}
	if got := crs.CurrentEnrollment(); got != 1 {
		t.Fatalf("want enrollment 1, got %d", got)
	}
	if !crs.EnrollStudent(2) {
		t.Fatal("enrolling student 2 should succeed")
	}
	if got := crs.CurrentEnrollment(); got != 2 {
		t.Fatalf("want enrollment 2, got %d", got)
	}
	if !crs.IsFull() {
		t.Error("course at capacity should report full")
	}

	if crs.EnrollStudent(3) {
		t.Error("enrolling into a full course should fail")
	}
	if got := crs.CurrentEnrollment(); got != 2 {
		t.Errorf("failed enrollment must not change the count, got %d", got)
	}

	if !crs.UnenrollStudent(1) {
		t.Fatal("unenrolling an enrolled student should succeed")
	}
	if got := crs.CurrentEnrollment(); got != 1 {
		t.Errorf("want enrollment 1 after unenroll, got %d", got)
	}
	if crs.IsFull() {
		t.Error("course below capacity should not report full")
	}
	if crs.IsStudentEnrolled(1) {
		t.Error("student 1 should no longer be enrolled")
	}
}

func TestCourseEnrollmentPreconditions(t *testing.T) {
	crs := Course{ID: 1, Name: "Algebra", MaxStudents: 10, IsActive: true}
	crs.EnrollStudent(1)

	if crs.EnrollStudent(1) {
		t.Error("double enrollment should fail")
	}

	crs.IsActive = false
	if crs.EnrollStudent(2) {
		t.Error("enrolling into an inactive course should fail")
	}
	if got := crs.CurrentEnrollment(); got != 1 {
		t.Errorf("failed enrollments must not change the count, got %d", got)
	}
}

func TestAttendanceUpsert(t *testing.T) {
	crs := Course{ID: 1, Name: "Algebra", MaxStudents: 10, IsActive: true}

	// present -> absent -> present on the same date: exactly one record,
	// last write wins
	crs.RecordAttendance(1, "2026-03-02", true)
	crs.RecordAttendance(1, "2026-03-02", false)
	crs.RecordAttendance(1, "2026-03-02", true)

	if got := len(crs.Attendance[1]); got != 1 {
		t.Fatalf("want exactly 1 record for the date, got %d", got)
	}
	present, ok := crs.AttendanceOn(1, "2026-03-02")
	if !ok {
		t.Fatal("a record should exist for the date")
	}
	if !present {
		t.Error("last write (present) must win")
	}
}

func TestAttendancePercent(t *testing.T) {
	crs := Course{ID: 1, Name: "Algebra", MaxStudents: 10, IsActive: true}

	if got := crs.AttendancePercent(1); got != 0.0 {
		t.Errorf("no records must yield exactly 0.0, got %v", got)
	}

	crs.RecordAttendance(1, "2026-03-02", true)
	crs.RecordAttendance(1, "2026-03-03", false)
	crs.RecordAttendance(1, "2026-03-04", true)
	crs.RecordAttendance(1, "2026-03-05", true)
	if got := crs.AttendancePercent(1); got != 75.0 {
		t.Errorf("want 75.0, got %v", got)
	}
}

func TestAttendancePercents(t *testing.T) {
	crs := Course{ID: 1, Name: "Algebra", MaxStudents: 10, IsActive: true}
	crs.RecordAttendance(1, "2026-03-02", true)
	crs.RecordAttendance(2, "2026-03-02", false)

	percents := crs.AttendancePercents()
	if len(percents) != 2 {
		t.Fatalf("want 2 entries, got %d", len(percents))
	}
	if percents[1] != 100.0 {
		t.Errorf("want 100.0 for student 1, got %v", percents[1])
	}
	if percents[2] != 0.0 {
		t.Errorf("want 0.0 for student 2, got %v", percents[2])
	}
}

func TestNewCourseValidateRejectsBadName(t *testing.T) {
	nc := NewCourse{Name: "Algebra|I", Credits: 4, MaxStudents: 30}
	if err := nc.Validate(); err == nil {
		t.Error("Validate() should reject a name containing the field delimiter")
	}
}

func TestCourseSetters(t *testing.T) {
	crs := Course{ID: 1, Name: "Algebra", Credits: 3, MaxStudents: 30, IsActive: true}

	if crs.SetCredits(0) || crs.SetCredits(11) {
		t.Error("credits outside 1-10 should be rejected")
	}
	if crs.Credits != 3 {
		t.Errorf("failed SetCredits must keep prior value, got %d", crs.Credits)
	}
	if !crs.SetCredits(10) {
		t.Error("SetCredits(10) should succeed")
	}

	if crs.SetMaxStudents(0) || crs.SetMaxStudents(501) {
		t.Error("capacity outside 1-500 should be rejected")
	}
	if !crs.SetMaxStudents(500) {
		t.Error("SetMaxStudents(500) should succeed")
	}

	if crs.SetFee(-1) {
		t.Error("negative fee should be rejected")
	}
	if !crs.SetFee(0) {
		t.Error("zero fee should be accepted")
	}

	if crs.SetEndDate("03/15/2026") {
		t.Error("non YYYY-MM-DD end date should be rejected")
	}
	if !crs.SetEndDate("2026-03-15") {
		t.Error("SetEndDate with a valid date should succeed")
	}
}
