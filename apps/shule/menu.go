package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/classroom"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/registrar"
	"github.com/trezcool/shule/core/student"
	"github.com/trezcool/shule/core/teacher"
	"github.com/trezcool/shule/storage/textdb"
)

// commandLine is the interactive menu boundary. Every operation delegates
// to a service; no business rule lives here.
type commandLine struct {
	in  io.Reader
	out io.Writer

	conf       *core.Config
	log        core.Logger
	db         *textdb.DB
	students   *student.Service
	teachers   *teacher.Service
	courses    *course.Service
	classrooms *classroom.Service
	registrar  *registrar.Service

	reader *bufio.Reader
}

func (cli *commandLine) run() {
	cli.reader = bufio.NewReader(cli.in)
	for {
		cli.printf("\n%s\n", cli.conf.AppName)
		cli.printf("1. Students  2. Teachers  3. Courses  4. Classrooms  5. Reports  0. Exit\n")
		switch cli.readInt("Choice: ", 0, 5) {
		case 1:
			cli.studentMenu()
		case 2:
			cli.teacherMenu()
		case 3:
			cli.courseMenu()
		case 4:
			cli.classroomMenu()
		case 5:
			cli.reportsMenu()
		case 0:
			cli.printf("Saving all data...\n")
			return
		}
	}
}

// input helpers

func (cli *commandLine) printf(format string, args ...interface{}) {
	fmt.Fprintf(cli.out, format, args...)
}

func (cli *commandLine) readLine(prompt string) string {
	cli.printf("%s", prompt)
	line, err := cli.reader.ReadString('\n')
	if err != nil && line == "" {
		return "0" // EOF backs out of the current menu
	}
	return strings.TrimSpace(line)
}

func (cli *commandLine) readInt(prompt string, min, max int) int {
	for {
		n, err := strconv.Atoi(cli.readLine(prompt))
		if err != nil {
			cli.printf("Invalid input. Please enter a valid number.\n")
			continue
		}
		if n < min || n > max {
			cli.printf("Value must be between %d and %d. Try again.\n", min, max)
			continue
		}
		return n
	}
}

func (cli *commandLine) readFloat(prompt string) float64 {
	for {
		f, err := strconv.ParseFloat(cli.readLine(prompt), 64)
		if err != nil || f < 0 {
			cli.printf("Invalid input. Please enter a non-negative number.\n")
			continue
		}
		return f
	}
}

func (cli *commandLine) readYesNo(prompt string) bool {
	for {
		switch strings.ToLower(cli.readLine(prompt + " (y/n): ")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		cli.printf("Please enter 'y' for yes or 'n' for no.\n")
	}
}

// reportErr prints the precondition that failed, per field when known.
func (cli *commandLine) reportErr(err error) {
	switch e := err.(type) {
	case *core.ValidationError:
		cli.printf("Rejected: %s\n", e.Error())
		for _, fe := range e.Fields {
			cli.printf("  %s: %s\n", fe.Field, fe.Error)
		}
	case validator.ValidationErrors:
		cli.printf("Rejected:\n")
		for _, fe := range e {
			cli.printf("  %s: %s\n", fe.Field(), fe.Translate(core.Translator))
		}
	default:
		cli.printf("Error: %s\n", err)
	}
}

// student menu

func (cli *commandLine) studentMenu() {
	for {
		cli.printf("\nSTUDENTS\n")
		cli.printf("1. Add  2. List  3. Search  4. Update  5. Deactivate  6. Reactivate\n")
		cli.printf("7. Enroll  8. Unenroll  9. Attendance  10. Delete (cascades)  0. Back\n")
		switch cli.readInt("Choice: ", 0, 10) {
		case 1:
			cli.addStudent()
		case 2:
			cli.listStudents()
		case 3:
			cli.searchStudents()
		case 4:
			cli.updateStudent()
		case 5:
			cli.setStudentActive(false)
		case 6:
			cli.setStudentActive(true)
		case 7:
			cli.enroll()
		case 8:
			cli.unenroll()
		case 9:
			cli.recordAttendance()
		case 10:
			cli.deleteStudent()
		case 0:
			return
		}
	}
}

func (cli *commandLine) addStudent() {
	ns := student.NewStudent{
		ID:      cli.readInt("ID (0 for next free): ", 0, 999999),
		Name:    cli.readLine("Name: "),
		Age:     cli.readInt("Age (16-100): ", 16, 100),
		Email:   cli.readLine("Email (optional): "),
		Phone:   cli.readLine("Phone (optional): "),
		Address: cli.readLine("Address (optional): "),
	}
	std, err := cli.students.Create(ns)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Added student %d: %s\n", std.ID, std.Name)
}

func (cli *commandLine) listStudents() {
	students, err := cli.students.QueryAll()
	if err != nil {
		cli.reportErr(err)
		return
	}
	for _, std := range students {
		cli.printStudent(std)
	}
	cli.printf("Total: %d\n", len(students))
}

func (cli *commandLine) printStudent(std student.Student) {
	status := "active"
	if !std.IsActive {
		status = "inactive"
	}
	cli.printf("%6d | %-25s | %3d | %-25s | %-8s | %d courses\n",
		std.ID, std.Name, std.Age, std.Email, status, len(std.CourseIDs))
}

func (cli *commandLine) searchStudents() {
	query := cli.readLine("Name contains: ")
	students, err := cli.students.SearchByName(query)
	if err != nil {
		cli.reportErr(err)
		return
	}
	if len(students) == 0 {
		cli.printf("No students found matching %q.\n", query)
		if suggestions, err := cli.registrar.SuggestStudentNames(query); err == nil && len(suggestions) > 0 {
			cli.printf("Did you mean: %s\n", strings.Join(suggestions, ", "))
		}
		return
	}
	for _, std := range students {
		cli.printStudent(std)
	}
}

func (cli *commandLine) updateStudent() {
	id := cli.readInt("Student ID: ", 1, 999999)
	us := student.UpdateStudent{
		Name:    cli.readLine("Name (blank to keep): "),
		Email:   cli.readLine("Email (blank to keep): "),
		Phone:   cli.readLine("Phone (blank to keep): "),
		Address: cli.readLine("Address (blank to keep): "),
	}
	std, err := cli.students.Update(id, us)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Updated student %d\n", std.ID)
}

func (cli *commandLine) setStudentActive(active bool) {
	id := cli.readInt("Student ID: ", 1, 999999)
	var err error
	if active {
		_, err = cli.students.Reactivate(id)
	} else {
		_, err = cli.students.Deactivate(id)
	}
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Done.\n")
}

func (cli *commandLine) deleteStudent() {
	id := cli.readInt("Student ID: ", 1, 999999)
	if !cli.readYesNo("Delete student and drop their enrollments and attendance?") {
		return
	}
	if err := cli.registrar.RemoveStudent(id); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Deleted student %d\n", id)
}

func (cli *commandLine) enroll() {
	courseID := cli.readInt("Course ID: ", 1, 999999)
	studentID := cli.readInt("Student ID: ", 1, 999999)
	if err := cli.registrar.Enroll(courseID, studentID); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Enrolled student %d in course %d\n", studentID, courseID)
}

func (cli *commandLine) unenroll() {
	courseID := cli.readInt("Course ID: ", 1, 999999)
	studentID := cli.readInt("Student ID: ", 1, 999999)
	if err := cli.registrar.Unenroll(courseID, studentID); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Unenrolled student %d from course %d\n", studentID, courseID)
}

func (cli *commandLine) recordAttendance() {
	courseID := cli.readInt("Course ID: ", 1, 999999)
	studentID := cli.readInt("Student ID: ", 1, 999999)
	date := cli.readLine("Date (YYYY-MM-DD, blank for today): ")
	if date == "" {
		date = core.Today()
	}
	present := cli.readYesNo("Present?")
	if err := cli.courses.RecordAttendance(courseID, studentID, date, present); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Recorded.\n")
}

// teacher menu

func (cli *commandLine) teacherMenu() {
	for {
		cli.printf("\nTEACHERS\n")
		cli.printf("1. Add  2. List  3. Search  4. Update  5. Deactivate  6. Reactivate\n")
		cli.printf("7. Assign to course  8. Unassign from course  0. Back\n")
		switch cli.readInt("Choice: ", 0, 8) {
		case 1:
			cli.addTeacher()
		case 2:
			cli.listTeachers()
		case 3:
			cli.searchTeachers()
		case 4:
			cli.updateTeacher()
		case 5:
			cli.setTeacherActive(false)
		case 6:
			cli.setTeacherActive(true)
		case 7:
			cli.assignTeacher()
		case 8:
			cli.unassignTeacher()
		case 0:
			return
		}
	}
}

func (cli *commandLine) addTeacher() {
	nt := teacher.NewTeacher{
		ID:         cli.readInt("ID (0 for next free): ", 0, 999999),
		Name:       cli.readLine("Name: "),
		Subject:    cli.readLine("Subject: "),
		Email:      cli.readLine("Email (optional): "),
		Phone:      cli.readLine("Phone (optional): "),
		Department: cli.readLine("Department (optional): "),
		Salary:     cli.readFloat("Salary: "),
	}
	tch, err := cli.teachers.Create(nt)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Added teacher %d: %s\n", tch.ID, tch.Name)
}

func (cli *commandLine) listTeachers() {
	teachers, err := cli.teachers.QueryAll()
	if err != nil {
		cli.reportErr(err)
		return
	}
	for _, tch := range teachers {
		cli.printTeacher(tch)
	}
	cli.printf("Total: %d\n", len(teachers))
}

func (cli *commandLine) printTeacher(tch teacher.Teacher) {
	status := "active"
	if !tch.IsActive {
		status = "inactive"
	}
	cli.printf("%6d | %-25s | %-15s | %-15s | %-8s | %d courses\n",
		tch.ID, tch.Name, tch.Subject, tch.Department, status, len(tch.CourseIDs))
}

func (cli *commandLine) searchTeachers() {
	teachers, err := cli.teachers.SearchByName(cli.readLine("Name contains: "))
	if err != nil {
		cli.reportErr(err)
		return
	}
	if len(teachers) == 0 {
		cli.printf("No teachers found.\n")
		return
	}
	for _, tch := range teachers {
		cli.printTeacher(tch)
	}
}

func (cli *commandLine) updateTeacher() {
	id := cli.readInt("Teacher ID: ", 1, 999999)
	ut := teacher.UpdateTeacher{
		Name:       cli.readLine("Name (blank to keep): "),
		Subject:    cli.readLine("Subject (blank to keep): "),
		Email:      cli.readLine("Email (blank to keep): "),
		Phone:      cli.readLine("Phone (blank to keep): "),
		Department: cli.readLine("Department (blank to keep): "),
	}
	tch, err := cli.teachers.Update(id, ut)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Updated teacher %d\n", tch.ID)
}

func (cli *commandLine) setTeacherActive(active bool) {
	id := cli.readInt("Teacher ID: ", 1, 999999)
	var err error
	if active {
		_, err = cli.teachers.Reactivate(id)
	} else {
		_, err = cli.teachers.Deactivate(id)
	}
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Done.\n")
}

func (cli *commandLine) assignTeacher() {
	courseID := cli.readInt("Course ID: ", 1, 999999)
	teacherID := cli.readInt("Teacher ID: ", 1, 999999)
	if err := cli.registrar.AssignTeacher(courseID, teacherID); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Assigned teacher %d to course %d\n", teacherID, courseID)
}

func (cli *commandLine) unassignTeacher() {
	courseID := cli.readInt("Course ID: ", 1, 999999)
	if err := cli.registrar.UnassignTeacher(courseID); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Cleared course %d's teacher\n", courseID)
}

// course menu

func (cli *commandLine) courseMenu() {
	for {
		cli.printf("\nCOURSES\n")
		cli.printf("1. Add  2. List  3. Search  4. Update  5. Deactivate  6. Reactivate\n")
		cli.printf("7. Delete (cascades)  0. Back\n")
		switch cli.readInt("Choice: ", 0, 7) {
		case 1:
			cli.addCourse()
		case 2:
			cli.listCourses()
		case 3:
			cli.searchCourses()
		case 4:
			cli.updateCourse()
		case 5:
			cli.setCourseActive(false)
		case 6:
			cli.setCourseActive(true)
		case 7:
			cli.deleteCourse()
		case 0:
			return
		}
	}
}

func (cli *commandLine) addCourse() {
	nc := course.NewCourse{
		ID:          cli.readInt("ID (0 for next free): ", 0, 999999),
		Name:        cli.readLine("Name: "),
		Description: cli.readLine("Description (optional): "),
		Credits:     cli.readInt("Credits (1-10): ", 1, 10),
		MaxStudents: cli.readInt("Max students (1-500): ", 1, 500),
		Fee:         cli.readFloat("Fee: "),
	}
	crs, err := cli.courses.Create(nc)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Added course %d: %s\n", crs.ID, crs.Name)
}

func (cli *commandLine) listCourses() {
	courses, err := cli.courses.QueryAll()
	if err != nil {
		cli.reportErr(err)
		return
	}
	for _, crs := range courses {
		cli.printCourse(crs)
	}
	cli.printf("Total: %d\n", len(courses))
}

func (cli *commandLine) printCourse(crs course.Course) {
	status := "active"
	if !crs.IsActive {
		status = "inactive"
	}
	teacherCol := "unassigned"
	if crs.HasTeacher() {
		teacherCol = fmt.Sprintf("teacher %d", crs.TeacherID)
	}
	cli.printf("%6d | %-25s | %2d cr | %3d/%3d | %-12s | %-8s\n",
		crs.ID, crs.Name, crs.Credits, crs.CurrentEnrollment(), crs.MaxStudents, teacherCol, status)
}

func (cli *commandLine) searchCourses() {
	courses, err := cli.courses.SearchByName(cli.readLine("Name contains: "))
	if err != nil {
		cli.reportErr(err)
		return
	}
	if len(courses) == 0 {
		cli.printf("No courses found.\n")
		return
	}
	for _, crs := range courses {
		cli.printCourse(crs)
	}
}

func (cli *commandLine) updateCourse() {
	id := cli.readInt("Course ID: ", 1, 999999)
	uc := course.UpdateCourse{
		Name:        cli.readLine("Name (blank to keep): "),
		Description: cli.readLine("Description (blank to keep): "),
		EndDate:     cli.readLine("End date YYYY-MM-DD (blank to keep): "),
	}
	crs, err := cli.courses.Update(id, uc)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Updated course %d\n", crs.ID)
}

func (cli *commandLine) setCourseActive(active bool) {
	id := cli.readInt("Course ID: ", 1, 999999)
	var err error
	if active {
		_, err = cli.courses.Reactivate(id)
	} else {
		_, err = cli.courses.Deactivate(id)
	}
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Done.\n")
}

func (cli *commandLine) deleteCourse() {
	id := cli.readInt("Course ID: ", 1, 999999)
	if !cli.readYesNo("Delete course and deregister it everywhere?") {
		return
	}
	if err := cli.registrar.RemoveCourse(id); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Deleted course %d\n", id)
}

// classroom menu

func (cli *commandLine) classroomMenu() {
	for {
		cli.printf("\nCLASSROOMS\n")
		cli.printf("1. Add  2. List  3. Search  4. Update  5. Mark unavailable  6. Mark available\n")
		cli.printf("7. Schedule course  8. Unschedule course  0. Back\n")
		switch cli.readInt("Choice: ", 0, 8) {
		case 1:
			cli.addClassroom()
		case 2:
			cli.listClassrooms()
		case 3:
			cli.searchClassrooms()
		case 4:
			cli.updateClassroom()
		case 5:
			cli.setClassroomAvailable(false)
		case 6:
			cli.setClassroomAvailable(true)
		case 7:
			cli.scheduleCourse()
		case 8:
			cli.unscheduleCourse()
		case 0:
			return
		}
	}
}

func (cli *commandLine) addClassroom() {
	ncr := classroom.NewClassroom{
		ID:        cli.readInt("ID (0 for next free): ", 0, 999999),
		Location:  cli.readLine("Location: "),
		Capacity:  cli.readInt("Capacity (1-1000): ", 1, 1000),
		Building:  cli.readLine("Building (optional): "),
		Equipment: cli.readLine("Equipment (optional): "),
	}
	room, err := cli.classrooms.Create(ncr)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Added classroom %d: %s\n", room.ID, room.Location)
}

func (cli *commandLine) listClassrooms() {
	rooms, err := cli.classrooms.QueryAll()
	if err != nil {
		cli.reportErr(err)
		return
	}
	for _, room := range rooms {
		cli.printClassroom(room)
	}
	cli.printf("Total: %d\n", len(rooms))
}

func (cli *commandLine) printClassroom(room classroom.Classroom) {
	status := "available"
	if !room.IsAvailable {
		status = "unavailable"
	}
	cli.printf("%6d | %-20s | cap %4d | %-15s | %-11s | %d courses\n",
		room.ID, room.Location, room.Capacity, room.Building, status, len(room.CourseIDs))
}

func (cli *commandLine) searchClassrooms() {
	rooms, err := cli.classrooms.SearchByLocation(cli.readLine("Location contains: "))
	if err != nil {
		cli.reportErr(err)
		return
	}
	if len(rooms) == 0 {
		cli.printf("No classrooms found.\n")
		return
	}
	for _, room := range rooms {
		cli.printClassroom(room)
	}
}

func (cli *commandLine) updateClassroom() {
	id := cli.readInt("Classroom ID: ", 1, 999999)
	ucr := classroom.UpdateClassroom{
		Location:  cli.readLine("Location (blank to keep): "),
		Building:  cli.readLine("Building (blank to keep): "),
		Equipment: cli.readLine("Equipment (blank to keep): "),
	}
	room, err := cli.classrooms.Update(id, ucr)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Updated classroom %d\n", room.ID)
}

func (cli *commandLine) setClassroomAvailable(available bool) {
	id := cli.readInt("Classroom ID: ", 1, 999999)
	var err error
	if available {
		_, err = cli.classrooms.MarkAvailable(id)
	} else {
		_, err = cli.classrooms.MarkUnavailable(id)
	}
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Done.\n")
}

func (cli *commandLine) scheduleCourse() {
	classroomID := cli.readInt("Classroom ID: ", 1, 999999)
	courseID := cli.readInt("Course ID: ", 1, 999999)
	if err := cli.registrar.ScheduleCourse(classroomID, courseID); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Scheduled course %d in classroom %d\n", courseID, classroomID)
}

func (cli *commandLine) unscheduleCourse() {
	classroomID := cli.readInt("Classroom ID: ", 1, 999999)
	courseID := cli.readInt("Course ID: ", 1, 999999)
	if err := cli.registrar.UnscheduleCourse(classroomID, courseID); err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Unscheduled course %d from classroom %d\n", courseID, classroomID)
}

// reports menu

func (cli *commandLine) reportsMenu() {
	for {
		cli.printf("\nREPORTS\n")
		cli.printf("1. Summary  2. Course attendance  3. Course utilization  4. Teacher loads  0. Back\n")
		switch cli.readInt("Choice: ", 0, 4) {
		case 1:
			cli.summaryReport()
		case 2:
			cli.attendanceReport()
		case 3:
			cli.utilizationReport()
		case 4:
			cli.teacherLoadReport()
		case 0:
			return
		}
	}
}

func (cli *commandLine) summaryReport() {
	sum, err := cli.registrar.Summary()
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Students:   %d (%d active)\n", sum.Students, sum.ActiveStudents)
	cli.printf("Teachers:   %d (%d active)\n", sum.Teachers, sum.ActiveTeachers)
	cli.printf("Courses:    %d (%d active)\n", sum.Courses, sum.ActiveCourses)
	cli.printf("Classrooms: %d (%d available)\n", sum.Classrooms, sum.AvailableClassrooms)
}

func (cli *commandLine) attendanceReport() {
	courseID := cli.readInt("Course ID: ", 1, 999999)
	rep, err := cli.registrar.CourseAttendance(courseID)
	if err != nil {
		cli.reportErr(err)
		return
	}
	cli.printf("Attendance for %s:\n", rep.CourseName)
	for _, entry := range rep.Entries {
		cli.printf("%6d | %-25s | %5.1f%%\n", entry.StudentID, entry.StudentName, entry.Percent)
	}
}

func (cli *commandLine) utilizationReport() {
	loads, err := cli.registrar.CourseUtilization()
	if err != nil {
		cli.reportErr(err)
		return
	}
	for _, load := range loads {
		cli.printf("%6d | %-25s | %3d/%3d\n", load.CourseID, load.Name, load.Enrolled, load.Capacity)
	}
}

func (cli *commandLine) teacherLoadReport() {
	loads, err := cli.registrar.TeacherLoads()
	if err != nil {
		cli.reportErr(err)
		return
	}
	for _, load := range loads {
		cli.printf("%6d | %-25s | %d courses\n", load.TeacherID, load.Name, load.Courses)
	}
}
