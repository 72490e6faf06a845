package teacher

import (
	"github.com/trezcool/shule/core"
)

// Teacher holds an instructor's profile. Assignment links are stored as
// course ids; a teacher may be linked from several courses.
type Teacher struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Subject    string  `json:"subject"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Department string  `json:"department"`
	HireDate   string  `json:"hire_date"` // YYYY-MM-DD
	IsActive   bool    `json:"is_active"`
	Salary     float64 `json:"salary"`
	CourseIDs  []int   `json:"course_ids"` // insertion order, no semantic meaning
}

func (t *Teacher) SetName(name string) bool {
	if !core.IsValidName(name) {
		return false
	}
	t.Name = core.SanitizeText(name)
	return true
}

func (t *Teacher) SetSubject(subject string) bool {
	if subject == "" || len(subject) > 100 {
		return false
	}
	t.Subject = core.SanitizeText(subject)
	return true
}

func (t *Teacher) SetEmail(email string) bool {
	if !core.IsValidEmail(email) {
		return false
	}
	t.Email = core.CleanString(email, true /* lower */)
	return true
}

func (t *Teacher) SetPhone(phone string) bool {
	if !core.IsValidPhone(phone) {
		return false
	}
	t.Phone = core.CleanString(phone)
	return true
}

func (t *Teacher) SetDepartment(department string) {
	t.Department = core.SanitizeText(department)
}

func (t *Teacher) SetSalary(salary float64) bool {
	if salary < 0 {
		return false
	}
	t.Salary = salary
	return true
}

// AssignTo links a course id; no-op (reports failure) when already linked.
func (t *Teacher) AssignTo(courseID int) bool {
	if t.IsAssignedTo(courseID) {
		return false
	}
	t.CourseIDs = append(t.CourseIDs, courseID)
	return true
}

// UnassignFrom removes a course id link; reports failure when absent.
func (t *Teacher) UnassignFrom(courseID int) bool {
	for i, id := range t.CourseIDs {
		if id == courseID {
			t.CourseIDs = append(t.CourseIDs[:i], t.CourseIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Teacher) IsAssignedTo(courseID int) bool {
	for _, id := range t.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// NewTeacher contains information needed to register a new Teacher.
// A zero ID means "assign the next unused id".
type NewTeacher struct {
	ID         int     `json:"id" validate:"omitempty,min=1,max=999999"`
	Name       string  `json:"name" validate:"required,max=100,person_name"`
	Subject    string  `json:"subject" validate:"required,max=100"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone" validate:"omitempty,phone_"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary" validate:"min=0"`
}

func (nt *NewTeacher) Validate() error {
	// validate the raw name; sanitization must not erase a charset violation
	nt.Name = core.CleanString(nt.Name)
	nt.Subject = core.SanitizeText(nt.Subject)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Phone = core.CleanString(nt.Phone)
	nt.Department = core.SanitizeText(nt.Department)
	if err := core.Validate.Struct(nt); err != nil {
		return err
	}
	nt.Name = core.SanitizeText(nt.Name)
	return nil
}

// UpdateTeacher defines what information may be provided to modify an
// existing Teacher. Empty fields keep the original value.
type UpdateTeacher struct {
	Name       string   `json:"name" validate:"omitempty,max=100,person_name"`
	Subject    string   `json:"subject" validate:"omitempty,max=100"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Phone      string   `json:"phone" validate:"omitempty,phone_"`
	Department string   `json:"department"`
	Salary     *float64 `json:"salary" validate:"omitempty,min=0"`
	IsActive   *bool    `json:"is_active"`
}

func (ut *UpdateTeacher) Validate(orig Teacher) error {
	if name := core.CleanString(ut.Name); name != "" {
		ut.Name = name
	} else {
		ut.Name = orig.Name
	}
	if subject := core.SanitizeText(ut.Subject); subject != "" {
		ut.Subject = subject
	} else {
		ut.Subject = orig.Subject
	}
	if email := core.CleanString(ut.Email, true /* lower */); email != "" {
		ut.Email = email
	} else {
		ut.Email = orig.Email
	}
	if phone := core.CleanString(ut.Phone); phone != "" {
		ut.Phone = phone
	} else {
		ut.Phone = orig.Phone
	}
	if dept := core.SanitizeText(ut.Department); dept != "" {
		ut.Department = dept
	} else {
		ut.Department = orig.Department
	}
	if err := core.Validate.Struct(ut); err != nil {
		return err
	}
	ut.Name = core.SanitizeText(ut.Name)
	return nil
}

// QueryFilter narrows teacher queries.
// Search does a case-insensitive substring match on the name.
type QueryFilter struct {
	Search   string
	IsActive *bool
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
