// Package textdb persists the four record collections to delimiter-separated
// text files, one file per record type. Collections live in memory; loads and
// saves each open the file, run to completion and release the handle.
//
// There are two write paths: Create* appends a single line, SaveAll truncates
// every file and rewrites the full in-memory state. A caller must not mix
// single appends with stale in-memory state from a previous session without
// reloading first; SaveAll (full resync) is the only path that guarantees the
// files reflect exactly the in-memory collections.
package textdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/classroom"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/student"
	"github.com/trezcool/shule/core/teacher"
)

// maxRecordID is the upper bound of the record id range. Auto-assignment
// must not mint an id beyond it.
const maxRecordID = 999999

// ErrIDSpaceExhausted is returned by Create* when every id up to
// maxRecordID is taken.
var ErrIDSpaceExhausted = errors.New("no unused record id left in the valid range")

type (
	DB struct {
		conf *core.Config
		log  core.Logger

		student   *studentTable
		teacher   *teacherTable
		course    *courseTable
		classroom *classroomTable
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*student.Student
	}
	teacherTable struct {
		sync.RWMutex
		table map[int]*teacher.Teacher
	}
	courseTable struct {
		sync.RWMutex
		table map[int]*course.Course
	}
	classroomTable struct {
		sync.RWMutex
		table map[int]*classroom.Classroom
	}
)

// Open creates the data directory if needed and loads all four files.
// Missing files are not an error; the matching collection starts empty.
// An unreadable store is an environment failure: Open returns a shutdown
// error (core.IsShutdown) so the caller can exit non-zero.
func Open(conf *core.Config, log core.Logger) (*DB, error) {
	if err := os.MkdirAll(conf.DataDir, 0o755); err != nil {
		return nil, core.NewShutdownError(fmt.Sprintf("textdb: creating data dir %s: %v", conf.DataDir, err))
	}
	db := &DB{
		conf:      conf,
		log:       log,
		student:   &studentTable{table: make(map[int]*student.Student)},
		teacher:   &teacherTable{table: make(map[int]*teacher.Teacher)},
		course:    &courseTable{table: make(map[int]*course.Course)},
		classroom: &classroomTable{table: make(map[int]*classroom.Classroom)},
	}
	if err := db.LoadAll(); err != nil {
		return nil, core.NewShutdownError(err.Error())
	}
	return db, nil
}

// LoadAll replaces the in-memory collections with the file contents.
// Malformed lines are skipped with a warning; loading never aborts because
// of one bad line.
func (db *DB) LoadAll() error {
	db.student.Lock()
	db.student.table = make(map[int]*student.Student)
	err := db.loadFile(db.conf.StudentsPath(), func(line string) error {
		std, err := decodeStudent(line)
		if err != nil {
			return err
		}
		db.student.table[std.ID] = &std
		return nil
	})
	db.student.Unlock()
	if err != nil {
		return err
	}

	db.teacher.Lock()
	db.teacher.table = make(map[int]*teacher.Teacher)
	err = db.loadFile(db.conf.TeachersPath(), func(line string) error {
		tch, err := decodeTeacher(line)
		if err != nil {
			return err
		}
		db.teacher.table[tch.ID] = &tch
		return nil
	})
	db.teacher.Unlock()
	if err != nil {
		return err
	}

	db.course.Lock()
	db.course.table = make(map[int]*course.Course)
	err = db.loadFile(db.conf.CoursesPath(), func(line string) error {
		crs, err := decodeCourse(line)
		if err != nil {
			return err
		}
		db.course.table[crs.ID] = &crs
		return nil
	})
	db.course.Unlock()
	if err != nil {
		return err
	}

	db.classroom.Lock()
	db.classroom.table = make(map[int]*classroom.Classroom)
	err = db.loadFile(db.conf.ClassroomsPath(), func(line string) error {
		room, err := decodeClassroom(line)
		if err != nil {
			return err
		}
		db.classroom.table[room.ID] = &room
		return nil
	})
	db.classroom.Unlock()
	return err
}

// loadFile feeds every non-empty line of path to store. A missing file
// yields an empty collection; a line store rejects is skipped with a warning.
func (db *DB) loadFile(path string, store func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "textdb: opening %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := store(line); err != nil {
			db.log.Warn(fmt.Sprintf("%s: skipping malformed line %d: %v", path, lineNo, err))
		}
	}
	return errors.Wrapf(scanner.Err(), "textdb: reading %s", path)
}

// SaveAll truncates every file and rewrites the full in-memory state
// (full resync). The files reflect exactly the current collections
// afterwards, ordered by id.
func (db *DB) SaveAll() error {
	db.student.RLock()
	lines := make([]string, 0, len(db.student.table))
	for _, std := range sortedStudents(db.student.table) {
		lines = append(lines, encodeStudent(std))
	}
	db.student.RUnlock()
	if err := writeLines(db.conf.StudentsPath(), lines); err != nil {
		return err
	}

	db.teacher.RLock()
	lines = make([]string, 0, len(db.teacher.table))
	for _, tch := range sortedTeachers(db.teacher.table) {
		lines = append(lines, encodeTeacher(tch))
	}
	db.teacher.RUnlock()
	if err := writeLines(db.conf.TeachersPath(), lines); err != nil {
		return err
	}

	db.course.RLock()
	lines = make([]string, 0, len(db.course.table))
	for _, crs := range sortedCourses(db.course.table) {
		lines = append(lines, encodeCourse(crs))
	}
	db.course.RUnlock()
	if err := writeLines(db.conf.CoursesPath(), lines); err != nil {
		return err
	}

	db.classroom.RLock()
	lines = make([]string, 0, len(db.classroom.table))
	for _, room := range sortedClassrooms(db.classroom.table) {
		lines = append(lines, encodeClassroom(room))
	}
	db.classroom.RUnlock()
	return writeLines(db.conf.ClassroomsPath(), lines)
}

// Backup copies the four data files into a timestamped directory under the
// configured backup dir. Missing data files are skipped.
func (db *DB) Backup() error {
	dir := filepath.Join(db.conf.BackupDir, time.Now().Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "textdb: creating backup dir %s", dir)
	}
	paths := []string{
		db.conf.StudentsPath(),
		db.conf.TeachersPath(),
		db.conf.CoursesPath(),
		db.conf.ClassroomsPath(),
	}
	for _, path := range paths {
		if err := copyFile(path, filepath.Join(dir, filepath.Base(path))); err != nil {
			return err
		}
	}
	return nil
}

// appendLine adds one record line to path, creating the file if needed.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "textdb: opening %s for append", path)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return errors.Wrapf(err, "textdb: appending to %s", path)
	}
	return nil
}

// writeLines truncates path and writes every line.
func writeLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "textdb: opening %s for rewrite", path)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return errors.Wrapf(err, "textdb: writing %s", path)
		}
	}
	return errors.Wrapf(w.Flush(), "textdb: writing %s", path)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "textdb: opening %s", src)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "textdb: creating %s", dst)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "textdb: copying %s to %s", src, dst)
	}
	return nil
}
