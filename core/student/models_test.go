package student

import "testing"

func TestStudentSetters(t *testing.T) {
	std := Student{ID: 1, Name: "Neema Juma", Age: 20, Email: "neema@shule.ac.tz"}

	if std.SetName("") {
		t.Error("SetName(\"\") should fail")
	}
	if std.Name != "Neema Juma" {
		t.Errorf("failed SetName must keep prior value, got %q", std.Name)
	}
	if !std.SetName("Amani Hassan") {
		t.Error("SetName with a valid name should succeed")
	}

	if std.SetAge(15) {
		t.Error("SetAge(15) should fail")
	}
	if std.Age != 20 {
		t.Errorf("failed SetAge must keep prior value, got %d", std.Age)
	}
	if !std.SetAge(16) {
		t.Error("SetAge(16) should succeed")
	}

	if std.SetEmail("not-an-email") {
		t.Error("SetEmail with a malformed address should fail")
	}
	if std.Email != "neema@shule.ac.tz" {
		t.Errorf("failed SetEmail must keep prior value, got %q", std.Email)
	}
	if !std.SetEmail("") {
		t.Error("SetEmail(\"\") should succeed; email is optional")
	}

	if std.SetPhone("123") {
		t.Error("SetPhone with a short number should fail")
	}
	if !std.SetPhone("+255 712 345 678") {
		t.Error("SetPhone with a valid number should succeed")
	}
}

func TestStudentEnrollment(t *testing.T) {
	var std Student

	if !std.EnrollIn(7) {
		t.Error("first EnrollIn should succeed")
	}
	if std.EnrollIn(7) {
		t.Error("duplicate EnrollIn should fail")
	}
	if !std.IsEnrolledIn(7) {
		t.Error("IsEnrolledIn(7) should hold after EnrollIn")
	}
	if len(std.CourseIDs) != 1 {
		t.Errorf("want 1 linked course, got %d", len(std.CourseIDs))
	}

	if std.UnenrollFrom(8) {
		t.Error("UnenrollFrom an unlinked course should fail")
	}
	if !std.UnenrollFrom(7) {
		t.Error("UnenrollFrom a linked course should succeed")
	}
	if std.IsEnrolledIn(7) {
		t.Error("IsEnrolledIn(7) should not hold after UnenrollFrom")
	}
	if len(std.CourseIDs) != 0 {
		t.Errorf("want 0 linked courses, got %d", len(std.CourseIDs))
	}
}

func TestNewStudentValidate(t *testing.T) {
	tests := []struct {
		name    string
		ns      NewStudent
		wantErr bool
	}{
		{name: "minimal valid", ns: NewStudent{Name: "Amani Hassan", Age: 20}},
		{name: "full valid", ns: NewStudent{ID: 12, Name: "Amani Hassan", Age: 20, Email: "amani@shule.ac.tz", Phone: "0712345678", Address: "12 Uhuru St"}},
		{name: "missing name", ns: NewStudent{Age: 20}, wantErr: true},
		{name: "bad name charset", ns: NewStudent{Name: "Amani|Hassan", Age: 20}, wantErr: true},
		{name: "age too low", ns: NewStudent{Name: "Amani Hassan", Age: 15}, wantErr: true},
		{name: "age too high", ns: NewStudent{Name: "Amani Hassan", Age: 101}, wantErr: true},
		{name: "bad email", ns: NewStudent{Name: "Amani Hassan", Age: 20, Email: "nope"}, wantErr: true},
		{name: "bad phone", ns: NewStudent{Name: "Amani Hassan", Age: 20, Phone: "123"}, wantErr: true},
		{name: "id out of range", ns: NewStudent{ID: 1000000, Name: "Amani Hassan", Age: 20}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ns.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewStudentValidateNormalizesName(t *testing.T) {
	ns := NewStudent{Name: "  Amani   Hassan ", Age: 20}
	if err := ns.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if ns.Name != "Amani Hassan" {
		t.Errorf("whitespace runs must collapse after validation, got %q", ns.Name)
	}
}

func TestUpdateStudentValidateRejectsBadName(t *testing.T) {
	orig := Student{ID: 1, Name: "Neema Juma", Age: 22}
	us := UpdateStudent{Name: "Neema|Juma"}
	if err := us.Validate(orig); err == nil {
		t.Error("Validate() should reject a name containing the field delimiter")
	}
}

func TestUpdateStudentValidateKeepsOriginal(t *testing.T) {
	orig := Student{ID: 1, Name: "Neema Juma", Age: 22, Email: "neema@shule.ac.tz", Phone: "0712345678", Address: "old"}
	us := UpdateStudent{Email: "neema2@shule.ac.tz"}
	if err := us.Validate(orig); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if us.Name != orig.Name || us.Age != orig.Age || us.Phone != orig.Phone || us.Address != orig.Address {
		t.Error("blank update fields must fall back to the original values")
	}
	if us.Email != "neema2@shule.ac.tz" {
		t.Errorf("provided field must win, got %q", us.Email)
	}
}
