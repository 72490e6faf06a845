package student

import (
	"github.com/trezcool/shule/core"
)

// Student holds a learner's identity and profile. Enrollment links are
// stored as course ids, never as direct references; resolution goes through
// the course repository and yields an explicit not-found when an id dangles.
type Student struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	EnrollmentDate string   `json:"enrollment_date"` // YYYY-MM-DD
	IsActive       bool     `json:"is_active"`
	CourseIDs      []int    `json:"course_ids"` // insertion order, no semantic meaning
}

// Validating setters. Invalid input leaves the prior value unchanged and
// reports failure; the caller decides how to surface it.

func (s *Student) SetName(name string) bool {
	if !core.IsValidName(name) {
		return false
	}
	s.Name = core.SanitizeText(name)
	return true
}

func (s *Student) SetAge(age int) bool {
	if !core.IsValidAge(age) {
		return false
	}
	s.Age = age
	return true
}

func (s *Student) SetEmail(email string) bool {
	if !core.IsValidEmail(email) {
		return false
	}
	s.Email = core.CleanString(email, true /* lower */)
	return true
}

func (s *Student) SetPhone(phone string) bool {
	if !core.IsValidPhone(phone) {
		return false
	}
	s.Phone = core.CleanString(phone)
	return true
}

func (s *Student) SetAddress(address string) {
	s.Address = core.SanitizeText(address)
}

// EnrollIn links a course id; no-op (reports failure) when already linked.
func (s *Student) EnrollIn(courseID int) bool {
	if s.IsEnrolledIn(courseID) {
		return false
	}
	s.CourseIDs = append(s.CourseIDs, courseID)
	return true
}

// UnenrollFrom removes a course id link; reports failure when absent.
func (s *Student) UnenrollFrom(courseID int) bool {
	for i, id := range s.CourseIDs {
		if id == courseID {
			s.CourseIDs = append(s.CourseIDs[:i], s.CourseIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Student) IsEnrolledIn(courseID int) bool {
	for _, id := range s.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// NewStudent contains information needed to register a new Student.
// A zero ID means "assign the next unused id".
type NewStudent struct {
	ID      int    `json:"id" validate:"omitempty,min=1,max=999999"`
	Name    string `json:"name" validate:"required,max=100,person_name"`
	Age     int    `json:"age" validate:"required,min=16,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone_"`
	Address string `json:"address"`
}

func (ns *NewStudent) Validate() error {
	// the name charset rule must see the raw input; a stray delimiter is a
	// rejection, not something sanitization may quietly erase
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Address = core.SanitizeText(ns.Address)
	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	ns.Name = core.SanitizeText(ns.Name)
	return nil
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Empty fields keep the original value.
type UpdateStudent struct {
	Name     string `json:"name" validate:"omitempty,max=100,person_name"`
	Age      int    `json:"age" validate:"omitempty,min=16,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,phone_"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

func (us *UpdateStudent) Validate(orig Student) error {
	if name := core.CleanString(us.Name); name != "" {
		us.Name = name
	} else {
		us.Name = orig.Name
	}
	if us.Age == 0 {
		us.Age = orig.Age
	}
	if email := core.CleanString(us.Email, true /* lower */); email != "" {
		us.Email = email
	} else {
		us.Email = orig.Email
	}
	if phone := core.CleanString(us.Phone); phone != "" {
		us.Phone = phone
	} else {
		us.Phone = orig.Phone
	}
	if addr := core.SanitizeText(us.Address); addr != "" {
		us.Address = addr
	} else {
		us.Address = orig.Address
	}
	if err := core.Validate.Struct(us); err != nil {
		return err
	}
	us.Name = core.SanitizeText(us.Name)
	return nil
}

// QueryFilter narrows student queries.
// Search does a case-insensitive substring match on the name.
type QueryFilter struct {
	Search   string
	IsActive *bool
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.IsActive == nil
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
