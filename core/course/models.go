package course

import (
	"github.com/trezcool/shule/core"
)

// NoTeacher is the TeacherID of a course with no assigned teacher.
const NoTeacher = -1

// Course holds a course offering, its enrollment set (bounded by
// MaxStudents), at most one assigned teacher and the attendance ledger.
// All links are stored as ids; resolution goes through the repositories.
type Course struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Credits     int     `json:"credits"`
	MaxStudents int     `json:"max_students"`
	TeacherID   int     `json:"teacher_id"` // NoTeacher when unassigned
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // empty while ongoing
	IsActive    bool    `json:"is_active"`
	Fee         float64 `json:"fee"`
	StudentIDs  []int   `json:"student_ids"` // insertion order, no semantic meaning

	// Attendance is keyed studentID -> date -> present. Re-marking a date
	// overwrites the prior value. Not persisted to the course file.
	Attendance map[int]map[string]bool `json:"-"`
}

func (c *Course) SetName(name string) bool {
	if !core.IsValidName(name) {
		return false
	}
	c.Name = core.SanitizeText(name)
	return true
}

func (c *Course) SetDescription(description string) {
	c.Description = core.SanitizeText(description)
}

func (c *Course) SetCredits(credits int) bool {
	if credits < 1 || credits > 10 {
		return false
	}
	c.Credits = credits
	return true
}

func (c *Course) SetMaxStudents(max int) bool {
	if max < 1 || max > 500 {
		return false
	}
	c.MaxStudents = max
	return true
}

func (c *Course) SetFee(fee float64) bool {
	if fee < 0 {
		return false
	}
	c.Fee = fee
	return true
}

func (c *Course) SetEndDate(date string) bool {
	if !core.IsValidDate(date) {
		return false
	}
	c.EndDate = date
	return true
}

func (c *Course) CurrentEnrollment() int { return len(c.StudentIDs) }
func (c *Course) IsFull() bool           { return len(c.StudentIDs) >= c.MaxStudents }
func (c *Course) HasTeacher() bool       { return c.TeacherID != NoTeacher }

// EnrollStudent links a student id. It reports failure when the course is
// inactive, at capacity or the student is already enrolled; state is left
// untouched in every failure case.
func (c *Course) EnrollStudent(studentID int) bool {
	if !c.IsActive || c.IsFull() || c.IsStudentEnrolled(studentID) {
		return false
	}
	c.StudentIDs = append(c.StudentIDs, studentID)
	return true
}

// UnenrollStudent removes a student id link; reports failure when absent.
func (c *Course) UnenrollStudent(studentID int) bool {
	for i, id := range c.StudentIDs {
		if id == studentID {
			c.StudentIDs = append(c.StudentIDs[:i], c.StudentIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Course) IsStudentEnrolled(studentID int) bool {
	for _, id := range c.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// NewCourse contains information needed to open a new Course.
// A zero ID means "assign the next unused id".
type NewCourse struct {
	ID          int     `json:"id" validate:"omitempty,min=1,max=999999"`
	Name        string  `json:"name" validate:"required,max=100,person_name"`
	Description string  `json:"description"`
	Credits     int     `json:"credits" validate:"required,min=1,max=10"`
	MaxStudents int     `json:"max_students" validate:"required,min=1,max=500"`
	Fee         float64 `json:"fee" validate:"min=0"`
}

func (nc *NewCourse) Validate() error {
	// validate the raw name; sanitization must not erase a charset violation
	nc.Name = core.CleanString(nc.Name)
	nc.Description = core.SanitizeText(nc.Description)
	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	nc.Name = core.SanitizeText(nc.Name)
	return nil
}

// UpdateCourse defines what information may be provided to modify an
// existing Course. Empty fields keep the original value.
type UpdateCourse struct {
	Name        string   `json:"name" validate:"omitempty,max=100,person_name"`
	Description string   `json:"description"`
	Credits     int      `json:"credits" validate:"omitempty,min=1,max=10"`
	MaxStudents int      `json:"max_students" validate:"omitempty,min=1,max=500"`
	Fee         *float64 `json:"fee" validate:"omitempty,min=0"`
	EndDate     string   `json:"end_date" validate:"omitempty,datestr"`
	IsActive    *bool    `json:"is_active"`
}

func (uc *UpdateCourse) Validate(orig Course) error {
	if name := core.CleanString(uc.Name); name != "" {
		uc.Name = name
	} else {
		uc.Name = orig.Name
	}
	if desc := core.SanitizeText(uc.Description); desc != "" {
		uc.Description = desc
	} else {
		uc.Description = orig.Description
	}
	if uc.Credits == 0 {
		uc.Credits = orig.Credits
	}
	if uc.MaxStudents == 0 {
		uc.MaxStudents = orig.MaxStudents
	}
	if uc.EndDate == "" {
		uc.EndDate = orig.EndDate
	}
	if err := core.Validate.Struct(uc); err != nil {
		return err
	}
	uc.Name = core.SanitizeText(uc.Name)
	return nil
}

// QueryFilter narrows course queries.
// Search does a case-insensitive substring match on the name.
type QueryFilter struct {
	Search   string
	IsActive *bool
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
