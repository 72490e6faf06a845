package registrar

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// suggestMinRatio is the minimum similarity for a name to count as a
// plausible "did you mean" candidate.
const suggestMinRatio = .5

type (
	// Summary counts the four collections and their active subsets.
	Summary struct {
		Students            int `json:"students"`
		ActiveStudents      int `json:"active_students"`
		Teachers            int `json:"teachers"`
		ActiveTeachers      int `json:"active_teachers"`
		Courses             int `json:"courses"`
		ActiveCourses       int `json:"active_courses"`
		Classrooms          int `json:"classrooms"`
		AvailableClassrooms int `json:"available_classrooms"`
	}

	// AttendanceEntry is one student's attendance standing in a course.
	AttendanceEntry struct {
		StudentID   int     `json:"student_id"`
		StudentName string  `json:"student_name"`
		Percent     float64 `json:"percent"`
	}

	// AttendanceReport aggregates a course's ledger for display.
	AttendanceReport struct {
		CourseID   int               `json:"course_id"`
		CourseName string            `json:"course_name"`
		Entries    []AttendanceEntry `json:"entries"`
	}

	// CourseLoad is a course's enrollment against its capacity.
	CourseLoad struct {
		CourseID int    `json:"course_id"`
		Name     string `json:"name"`
		Enrolled int    `json:"enrolled"`
		Capacity int    `json:"capacity"`
	}

	// TeacherLoad is the number of courses linked to a teacher.
	TeacherLoad struct {
		TeacherID int    `json:"teacher_id"`
		Name      string `json:"name"`
		Courses   int    `json:"courses"`
	}
)

func (svc *Service) Summary() (Summary, error) {
	var sum Summary

	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return Summary{}, err
	}
	sum.Students = len(students)
	for _, std := range students {
		if std.IsActive {
			sum.ActiveStudents++
		}
	}

	teachers, err := svc.teachers.QueryAllTeachers()
	if err != nil {
		return Summary{}, err
	}
	sum.Teachers = len(teachers)
	for _, tch := range teachers {
		if tch.IsActive {
			sum.ActiveTeachers++
		}
	}

	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return Summary{}, err
	}
	sum.Courses = len(courses)
	for _, crs := range courses {
		if crs.IsActive {
			sum.ActiveCourses++
		}
	}

	rooms, err := svc.classrooms.QueryAllClassrooms()
	if err != nil {
		return Summary{}, err
	}
	sum.Classrooms = len(rooms)
	for _, room := range rooms {
		if room.IsAvailable {
			sum.AvailableClassrooms++
		}
	}
	return sum, nil
}

// CourseAttendance reports every enrolled student's attendance percentage
// for a course, sorted by student id. Students whose id no longer resolves
// are reported with an empty name instead of being dropped.
func (svc *Service) CourseAttendance(courseID int) (AttendanceReport, error) {
	crs, err := svc.courses.GetCourseByID(courseID)
	if err != nil {
		return AttendanceReport{}, err
	}
	rep := AttendanceReport{CourseID: crs.ID, CourseName: crs.Name}
	for studentID, percent := range crs.AttendancePercents() {
		entry := AttendanceEntry{StudentID: studentID, Percent: percent}
		if std, err := svc.students.GetStudentByID(studentID); err == nil {
			entry.StudentName = std.Name
		}
		rep.Entries = append(rep.Entries, entry)
	}
	sort.Slice(rep.Entries, func(i, j int) bool { return rep.Entries[i].StudentID < rep.Entries[j].StudentID })
	return rep, nil
}

// CourseUtilization reports enrollment against capacity for every course.
func (svc *Service) CourseUtilization() ([]CourseLoad, error) {
	courses, err := svc.courses.QueryAllCourses()
	if err != nil {
		return nil, err
	}
	loads := make([]CourseLoad, 0, len(courses))
	for _, crs := range courses {
		loads = append(loads, CourseLoad{
			CourseID: crs.ID,
			Name:     crs.Name,
			Enrolled: crs.CurrentEnrollment(),
			Capacity: crs.MaxStudents,
		})
	}
	return loads, nil
}

// TeacherLoads reports the number of linked courses per teacher.
func (svc *Service) TeacherLoads() ([]TeacherLoad, error) {
	teachers, err := svc.teachers.QueryAllTeachers()
	if err != nil {
		return nil, err
	}
	loads := make([]TeacherLoad, 0, len(teachers))
	for _, tch := range teachers {
		loads = append(loads, TeacherLoad{
			TeacherID: tch.ID,
			Name:      tch.Name,
			Courses:   len(tch.CourseIDs),
		})
	}
	return loads, nil
}

// SuggestStudentNames returns the closest student names to a query that
// matched nothing, ranked by similarity. Helps the caller offer a
// "did you mean" after an empty search.
func (svc *Service) SuggestStudentNames(query string) ([]string, error) {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(students))
	for _, std := range students {
		names = append(names, std.Name)
	}
	return suggest(query, names), nil
}

// suggest ranks candidate names by character-level similarity to the query.
func suggest(query string, names []string) []string {
	type scored struct {
		name  string
		ratio float64
	}
	query = strings.ToLower(query)
	matches := make([]scored, 0, len(names))
	for _, name := range names {
		ratio := difflib.NewMatcher(
			strings.Split(query, ""),
			strings.Split(strings.ToLower(name), ""),
		).QuickRatio()
		if ratio >= suggestMinRatio {
			matches = append(matches, scored{name, ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.name)
	}
	return suggestions
}
