package course

import (
	"errors"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
	ErrIDExists = errors.New("a course with this id already exists")
)

type (
	Repository interface {
		CheckIDUniqueness(id int) error
		// CreateCourse assigns the next unused id when c.ID is zero and
		// returns ErrIDExists on collision otherwise.
		CreateCourse(c Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		FilterCourses(filter QueryFilter) ([]Course, error)
		UpdateCourse(c Course, isActive *bool) (Course, error)
		DeleteCoursesByID(ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(id int) error {
	if err := svc.repo.CheckIDUniqueness(id); err != nil {
		if errors.Is(err, ErrIDExists) {
			return core.NewValidationError(err, core.FieldError{Field: "id", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(nc NewCourse) (Course, error) {
	if err := nc.Validate(); err != nil {
		return Course{}, err
	}
	if nc.ID != 0 {
		if err := svc.checkUniqueness(nc.ID); err != nil {
			return Course{}, err
		}
	}
	crs := Course{
		ID:          nc.ID,
		Name:        nc.Name,
		Description: nc.Description,
		Credits:     nc.Credits,
		MaxStudents: nc.MaxStudents,
		TeacherID:   NoTeacher,
		StartDate:   core.Today(),
		IsActive:    true,
		Fee:         nc.Fee,
	}
	return svc.repo.CreateCourse(crs)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) SearchByName(name string) ([]Course, error) {
	return svc.repo.FilterCourses(QueryFilter{Search: core.CleanString(name)})
}

func (svc *Service) Update(id int, uc UpdateCourse) (Course, error) {
	orig, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, err
	}
	if err := uc.Validate(orig); err != nil {
		return Course{}, err
	}
	orig.Name = uc.Name
	orig.Description = uc.Description
	orig.Credits = uc.Credits
	orig.MaxStudents = uc.MaxStudents
	orig.EndDate = uc.EndDate
	if uc.Fee != nil {
		orig.Fee = *uc.Fee
	}
	return svc.repo.UpdateCourse(orig, uc.IsActive)
}

// Deactivate soft-deletes; enrollment links remain but new enrollments are
// rejected while inactive.
func (svc *Service) Deactivate(id int) (Course, error) {
	return svc.setActive(id, false)
}

func (svc *Service) Reactivate(id int) (Course, error) {
	return svc.setActive(id, true)
}

func (svc *Service) setActive(id int, active bool) (Course, error) {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, err
	}
	return svc.repo.UpdateCourse(crs, &active)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteCoursesByID(ids...)
}

// RecordAttendance upserts a presence mark on the course's ledger.
func (svc *Service) RecordAttendance(courseID, studentID int, date string, present bool) error {
	crs, err := svc.repo.GetCourseByID(courseID)
	if err != nil {
		return err
	}
	if !crs.IsStudentEnrolled(studentID) {
		return core.NewValidationError(errors.New("student is not enrolled in this course"))
	}
	if !core.IsValidDate(date) || date == "" {
		return core.NewValidationError(errors.New("invalid date format, expected YYYY-MM-DD"),
			core.FieldError{Field: "date", Error: "must be a date in YYYY-MM-DD format"})
	}
	crs.RecordAttendance(studentID, date, present)
	_, err = svc.repo.UpdateCourse(crs, nil)
	return err
}
