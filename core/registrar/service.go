package registrar

import (
	"errors"
	"fmt"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/classroom"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/student"
	"github.com/trezcool/shule/core/teacher"
)

var (
	// errors; each names the precondition that failed
	ErrCourseInactive   = errors.New("course is inactive")
	ErrCourseFull       = errors.New("course is at full capacity")
	ErrAlreadyEnrolled  = errors.New("student is already enrolled in this course")
	ErrNotEnrolled      = errors.New("student is not enrolled in this course")
	ErrRoomUnavailable  = errors.New("classroom is unavailable")
	ErrRoomFull         = errors.New("classroom is at full capacity")
	ErrAlreadyScheduled = errors.New("course is already scheduled in this classroom")
	ErrNotScheduled     = errors.New("course is not scheduled in this classroom")
)

// Service manages the links between students, teachers, courses and
// classrooms. Links are kept fully bidirectional: every operation updates
// both sides or neither. All operations are idempotent-safe; repeating a
// no-op call reports failure without corrupting state.
type Service struct {
	students   student.Repository
	teachers   teacher.Repository
	courses    course.Repository
	classrooms classroom.Repository
	log        core.Logger
}

func NewService(
	students student.Repository,
	teachers teacher.Repository,
	courses course.Repository,
	classrooms classroom.Repository,
	log core.Logger,
) *Service {
	return &Service{
		students:   students,
		teachers:   teachers,
		courses:    courses,
		classrooms: classrooms,
		log:        log,
	}
}

// Enroll links a student into a course, bounded by the course's capacity.
func (svc *Service) Enroll(courseID, studentID int) error {
	crs, err := svc.courses.GetCourseByID(courseID)
	if err != nil {
		return err
	}
	std, err := svc.students.GetStudentByID(studentID)
	if err != nil {
		return err
	}

	// already-enrolled must be checked before capacity so a repeat enrollment
	// in a full course reports the precondition that actually failed
	switch {
	case !crs.IsActive:
		return core.NewValidationError(ErrCourseInactive)
	case crs.IsStudentEnrolled(studentID):
		return core.NewValidationError(ErrAlreadyEnrolled)
	case crs.IsFull():
		return core.NewValidationError(ErrCourseFull)
	}

	crs.EnrollStudent(studentID)
	std.EnrollIn(courseID)
	if _, err := svc.courses.UpdateCourse(crs, nil); err != nil {
		return err
	}
	_, err = svc.students.UpdateStudent(std, nil)
	return err
}

// Unenroll removes the student-course link from both sides.
func (svc *Service) Unenroll(courseID, studentID int) error {
	crs, err := svc.courses.GetCourseByID(courseID)
	if err != nil {
		return err
	}
	std, err := svc.students.GetStudentByID(studentID)
	if err != nil {
		return err
	}

	if !crs.UnenrollStudent(studentID) {
		return core.NewValidationError(ErrNotEnrolled)
	}
	// the mirrored link may be absent if loaded from a half-linked file;
	// removal is best effort on that side
	std.UnenrollFrom(courseID)
	if _, err := svc.courses.UpdateCourse(crs, nil); err != nil {
		return err
	}
	_, err = svc.students.UpdateStudent(std, nil)
	return err
}

// AssignTeacher puts a teacher in charge of a course. A course has at most
// one teacher: any prior assignment is replaced and unlinked from the
// previous teacher. A teacher may be assigned to several courses.
func (svc *Service) AssignTeacher(courseID, teacherID int) error {
	crs, err := svc.courses.GetCourseByID(courseID)
	if err != nil {
		return err
	}
	tch, err := svc.teachers.GetTeacherByID(teacherID)
	if err != nil {
		return err
	}
	if crs.TeacherID == teacherID {
		return nil
	}

	if crs.HasTeacher() {
		if err := svc.unlinkTeacher(&crs); err != nil {
			return err
		}
	}
	crs.TeacherID = teacherID
	tch.AssignTo(courseID)
	if _, err := svc.courses.UpdateCourse(crs, nil); err != nil {
		return err
	}
	_, err = svc.teachers.UpdateTeacher(tch, nil)
	return err
}

// UnassignTeacher clears a course's assignment; no-op when none is present.
func (svc *Service) UnassignTeacher(courseID int) error {
	crs, err := svc.courses.GetCourseByID(courseID)
	if err != nil {
		return err
	}
	if !crs.HasTeacher() {
		return nil
	}
	if err := svc.unlinkTeacher(&crs); err != nil {
		return err
	}
	_, err = svc.courses.UpdateCourse(crs, nil)
	return err
}

// unlinkTeacher removes the mirrored link from the currently assigned
// teacher and resets the course side. A dangling teacher id resolves to
// not-found and is dropped with a warning instead of failing the caller.
func (svc *Service) unlinkTeacher(crs *course.Course) error {
	prev, err := svc.teachers.GetTeacherByID(crs.TeacherID)
	if err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			svc.log.Warn(fmt.Sprintf("course %d referenced missing teacher %d; dropping the link", crs.ID, crs.TeacherID))
			crs.TeacherID = course.NoTeacher
			return nil
		}
		return err
	}
	prev.UnassignFrom(crs.ID)
	if _, err := svc.teachers.UpdateTeacher(prev, nil); err != nil {
		return err
	}
	crs.TeacherID = course.NoTeacher
	return nil
}

// ScheduleCourse books a course into a classroom, bounded by the room's
// capacity.
func (svc *Service) ScheduleCourse(classroomID, courseID int) error {
	room, err := svc.classrooms.GetClassroomByID(classroomID)
	if err != nil {
		return err
	}
	if _, err := svc.courses.GetCourseByID(courseID); err != nil {
		return err
	}

	// same ordering rule as Enroll: duplicate link before capacity
	switch {
	case !room.IsAvailable:
		return core.NewValidationError(ErrRoomUnavailable)
	case room.IsCourseScheduled(courseID):
		return core.NewValidationError(ErrAlreadyScheduled)
	case room.IsFull():
		return core.NewValidationError(ErrRoomFull)
	}

	room.ScheduleCourse(courseID)
	_, err = svc.classrooms.UpdateClassroom(room, nil)
	return err
}

// UnscheduleCourse removes a course from a classroom's schedule.
func (svc *Service) UnscheduleCourse(classroomID, courseID int) error {
	room, err := svc.classrooms.GetClassroomByID(classroomID)
	if err != nil {
		return err
	}
	if !room.UnscheduleCourse(courseID) {
		return core.NewValidationError(ErrNotScheduled)
	}
	_, err = svc.classrooms.UpdateClassroom(room, nil)
	return err
}

// RemoveCourse physically deletes a course and cascades: the course id is
// deregistered from every student's enrolled set, every teacher's assigned
// set and every classroom's schedule, so no stale id dangles.
func (svc *Service) RemoveCourse(courseID int) error {
	if _, err := svc.courses.GetCourseByID(courseID); err != nil {
		return err
	}

	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return err
	}
	for _, std := range students {
		if std.UnenrollFrom(courseID) {
			if _, err := svc.students.UpdateStudent(std, nil); err != nil {
				return err
			}
		}
	}

	teachers, err := svc.teachers.QueryAllTeachers()
	if err != nil {
		return err
	}
	for _, tch := range teachers {
		if tch.UnassignFrom(courseID) {
			if _, err := svc.teachers.UpdateTeacher(tch, nil); err != nil {
				return err
			}
		}
	}

	rooms, err := svc.classrooms.QueryAllClassrooms()
	if err != nil {
		return err
	}
	for _, room := range rooms {
		if room.UnscheduleCourse(courseID) {
			if _, err := svc.classrooms.UpdateClassroom(room, nil); err != nil {
				return err
			}
		}
	}

	return svc.courses.DeleteCoursesByID(courseID)
}

// RemoveStudent physically deletes a student and cascades: the student id
// is deregistered from every course's enrollment set and its attendance
// records are dropped.
func (svc *Service) RemoveStudent(studentID int) error {
	if _, err := svc.students.GetStudentByID(studentID); err != nil {
		return err
	}

	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return err
	}
	for _, crs := range courses {
		changed := crs.UnenrollStudent(studentID)
		if _, ok := crs.Attendance[studentID]; ok {
			delete(crs.Attendance, studentID)
			changed = true
		}
		if changed {
			if _, err := svc.courses.UpdateCourse(crs, nil); err != nil {
				return err
			}
		}
	}

	return svc.students.DeleteStudentsByID(studentID)
}
