package classroom

import (
	"github.com/trezcool/shule/core"
)

// Classroom holds a physical room and the set of courses scheduled into it,
// bounded by the room's capacity.
type Classroom struct {
	ID          int    `json:"id"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Building    string `json:"building"`
	IsAvailable bool   `json:"is_available"`
	Equipment   string `json:"equipment"`
	CourseIDs   []int  `json:"course_ids"` // insertion order, no semantic meaning
}

func (cr *Classroom) SetLocation(location string) bool {
	if location == "" || len(location) > 100 {
		return false
	}
	cr.Location = core.SanitizeText(location)
	return true
}

func (cr *Classroom) SetCapacity(capacity int) bool {
	if capacity < 1 || capacity > 1000 {
		return false
	}
	cr.Capacity = capacity
	return true
}

func (cr *Classroom) SetBuilding(building string) {
	cr.Building = core.SanitizeText(building)
}

func (cr *Classroom) SetEquipment(equipment string) {
	cr.Equipment = core.SanitizeText(equipment)
}

func (cr *Classroom) IsFull() bool { return len(cr.CourseIDs) >= cr.Capacity }

// ScheduleCourse links a course id. It reports failure when the room is
// unavailable, at capacity or the course is already scheduled here.
func (cr *Classroom) ScheduleCourse(courseID int) bool {
	if !cr.IsAvailable || cr.IsFull() || cr.IsCourseScheduled(courseID) {
		return false
	}
	cr.CourseIDs = append(cr.CourseIDs, courseID)
	return true
}

// UnscheduleCourse removes a course id link; reports failure when absent.
func (cr *Classroom) UnscheduleCourse(courseID int) bool {
	for i, id := range cr.CourseIDs {
		if id == courseID {
			cr.CourseIDs = append(cr.CourseIDs[:i], cr.CourseIDs[i+1:]...)
			return true
		}
	}
	return false
}

func (cr *Classroom) IsCourseScheduled(courseID int) bool {
	for _, id := range cr.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// NewClassroom contains information needed to register a new Classroom.
// A zero ID means "assign the next unused id".
type NewClassroom struct {
	ID        int    `json:"id" validate:"omitempty,min=1,max=999999"`
	Location  string `json:"location" validate:"required,max=100"`
	Capacity  int    `json:"capacity" validate:"required,min=1,max=1000"`
	Building  string `json:"building"`
	Equipment string `json:"equipment"`
}

func (ncr *NewClassroom) Validate() error {
	ncr.Location = core.SanitizeText(ncr.Location)
	ncr.Building = core.SanitizeText(ncr.Building)
	ncr.Equipment = core.SanitizeText(ncr.Equipment)
	return core.Validate.Struct(ncr)
}

// UpdateClassroom defines what information may be provided to modify an
// existing Classroom. Empty fields keep the original value.
type UpdateClassroom struct {
	Location    string `json:"location" validate:"omitempty,max=100"`
	Capacity    int    `json:"capacity" validate:"omitempty,min=1,max=1000"`
	Building    string `json:"building"`
	Equipment   string `json:"equipment"`
	IsAvailable *bool  `json:"is_available"`
}

func (ucr *UpdateClassroom) Validate(orig Classroom) error {
	if loc := core.SanitizeText(ucr.Location); loc != "" {
		ucr.Location = loc
	} else {
		ucr.Location = orig.Location
	}
	if ucr.Capacity == 0 {
		ucr.Capacity = orig.Capacity
	}
	if bld := core.SanitizeText(ucr.Building); bld != "" {
		ucr.Building = bld
	} else {
		ucr.Building = orig.Building
	}
	if eq := core.SanitizeText(ucr.Equipment); eq != "" {
		ucr.Equipment = eq
	} else {
		ucr.Equipment = orig.Equipment
	}
	return core.Validate.Struct(ucr)
}

// QueryFilter narrows classroom queries.
// Search does a case-insensitive substring match on location and building.
type QueryFilter struct {
	Search      string
	IsAvailable *bool
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
