package textdb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/classroom"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/student"
	"github.com/trezcool/shule/core/teacher"
)

// One text line per record. Fields are joined by fieldDelim; list-valued
// fields (linked ids) occupy a single slot as a listDelim-joined sub-list.
// Write-time sanitization guarantees no field contains fieldDelim or a
// line break, which is what makes decode(encode(r)) == r hold.
const (
	fieldDelim = "|"
	listDelim  = ","
)

// fieldCount* is the minimum number of fields a line must split into; the
// trailing id-list slot may be empty but must be present.
const (
	studentFieldCount   = 9
	teacherFieldCount   = 10
	courseFieldCount    = 11
	classroomFieldCount = 7
)

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func encodeIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, listDelim)
}

func decodeIDs(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(s, listDelim) {
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "bad id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func encodeFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// field order: id, name, age, email, phone, address, enrollmentDate, activeFlag, courseIds
func encodeStudent(s student.Student) string {
	return strings.Join([]string{
		strconv.Itoa(s.ID),
		s.Name,
		strconv.Itoa(s.Age),
		s.Email,
		s.Phone,
		s.Address,
		s.EnrollmentDate,
		encodeBool(s.IsActive),
		encodeIDs(s.CourseIDs),
	}, fieldDelim)
}

func decodeStudent(line string) (student.Student, error) {
	parts := strings.Split(line, fieldDelim)
	if len(parts) < studentFieldCount {
		return student.Student{}, errors.Errorf("want %d fields, got %d", studentFieldCount, len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return student.Student{}, errors.Wrap(err, "bad id")
	}
	age, err := strconv.Atoi(parts[2])
	if err != nil {
		return student.Student{}, errors.Wrap(err, "bad age")
	}
	courseIDs, err := decodeIDs(parts[8])
	if err != nil {
		return student.Student{}, errors.Wrap(err, "bad course ids")
	}
	return student.Student{
		ID:             id,
		Name:           parts[1],
		Age:            age,
		Email:          parts[3],
		Phone:          parts[4],
		Address:        parts[5],
		EnrollmentDate: parts[6],
		IsActive:       parts[7] == "1",
		CourseIDs:      courseIDs,
	}, nil
}

// field order: id, name, subject, email, phone, department, hireDate, activeFlag, salary, courseIds
func encodeTeacher(t teacher.Teacher) string {
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		t.Name,
		t.Subject,
		t.Email,
		t.Phone,
		t.Department,
		t.HireDate,
		encodeBool(t.IsActive),
		encodeFloat(t.Salary),
		encodeIDs(t.CourseIDs),
	}, fieldDelim)
}

func decodeTeacher(line string) (teacher.Teacher, error) {
	parts := strings.Split(line, fieldDelim)
	if len(parts) < teacherFieldCount {
		return teacher.Teacher{}, errors.Errorf("want %d fields, got %d", teacherFieldCount, len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "bad id")
	}
	salary, err := strconv.ParseFloat(parts[8], 64)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "bad salary")
	}
	courseIDs, err := decodeIDs(parts[9])
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "bad course ids")
	}
	return teacher.Teacher{
		ID:         id,
		Name:       parts[1],
		Subject:    parts[2],
		Email:      parts[3],
		Phone:      parts[4],
		Department: parts[5],
		HireDate:   parts[6],
		IsActive:   parts[7] == "1",
		Salary:     salary,
		CourseIDs:  courseIDs,
	}, nil
}

// field order: id, name, description, credits, maxStudents, teacherId (-1 if
// none), startDate, endDate, activeFlag, fee, studentIds
func encodeCourse(c course.Course) string {
	return strings.Join([]string{
		strconv.Itoa(c.ID),
		c.Name,
		c.Description,
		strconv.Itoa(c.Credits),
		strconv.Itoa(c.MaxStudents),
		strconv.Itoa(c.TeacherID),
		c.StartDate,
		c.EndDate,
		encodeBool(c.IsActive),
		encodeFloat(c.Fee),
		encodeIDs(c.StudentIDs),
	}, fieldDelim)
}

func decodeCourse(line string) (course.Course, error) {
	parts := strings.Split(line, fieldDelim)
	if len(parts) < courseFieldCount {
		return course.Course{}, errors.Errorf("want %d fields, got %d", courseFieldCount, len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return course.Course{}, errors.Wrap(err, "bad id")
	}
	credits, err := strconv.Atoi(parts[3])
	if err != nil {
		return course.Course{}, errors.Wrap(err, "bad credits")
	}
	maxStudents, err := strconv.Atoi(parts[4])
	if err != nil {
		return course.Course{}, errors.Wrap(err, "bad max students")
	}
	teacherID, err := strconv.Atoi(parts[5])
	if err != nil {
		return course.Course{}, errors.Wrap(err, "bad teacher id")
	}
	fee, err := strconv.ParseFloat(parts[9], 64)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "bad fee")
	}
	studentIDs, err := decodeIDs(parts[10])
	if err != nil {
		return course.Course{}, errors.Wrap(err, "bad student ids")
	}
	return course.Course{
		ID:          id,
		Name:        parts[1],
		Description: parts[2],
		Credits:     credits,
		MaxStudents: maxStudents,
		TeacherID:   teacherID,
		StartDate:   parts[6],
		EndDate:     parts[7],
		IsActive:    parts[8] == "1",
		Fee:         fee,
		StudentIDs:  studentIDs,
	}, nil
}

// field order: id, location, capacity, building, availableFlag, equipment, courseIds
func encodeClassroom(cr classroom.Classroom) string {
	return strings.Join([]string{
		strconv.Itoa(cr.ID),
		cr.Location,
		strconv.Itoa(cr.Capacity),
		cr.Building,
		encodeBool(cr.IsAvailable),
		cr.Equipment,
		encodeIDs(cr.CourseIDs),
	}, fieldDelim)
}

func decodeClassroom(line string) (classroom.Classroom, error) {
	parts := strings.Split(line, fieldDelim)
	if len(parts) < classroomFieldCount {
		return classroom.Classroom{}, errors.Errorf("want %d fields, got %d", classroomFieldCount, len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return classroom.Classroom{}, errors.Wrap(err, "bad id")
	}
	capacity, err := strconv.Atoi(parts[2])
	if err != nil {
		return classroom.Classroom{}, errors.Wrap(err, "bad capacity")
	}
	courseIDs, err := decodeIDs(parts[6])
	if err != nil {
		return classroom.Classroom{}, errors.Wrap(err, "bad course ids")
	}
	return classroom.Classroom{
		ID:          id,
		Location:    parts[1],
		Capacity:    capacity,
		Building:    parts[3],
		IsAvailable: parts[4] == "1",
		Equipment:   parts[5],
		CourseIDs:   courseIDs,
	}, nil
}
