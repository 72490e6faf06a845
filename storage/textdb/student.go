package textdb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trezcool/shule/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func sortedStudents(table map[int]*student.Student) []student.Student {
	students := make([]student.Student, 0, len(table))
	for _, std := range table {
		students = append(students, *std)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (repo *studentRepository) nextID() int {
	var max int
	for id := range repo.db.student.table {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (repo *studentRepository) CheckIDUniqueness(id int) error {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()

	if _, ok := repo.db.student.table[id]; ok {
		return student.ErrIDExists
	}
	return nil
}

// CreateStudent inserts and appends one line to the students file. A write
// failure is logged, not returned; memory stays the source of truth until
// the next full resync.
func (repo *studentRepository) CreateStudent(std student.Student) (student.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	if std.ID == 0 {
		std.ID = repo.nextID()
		if std.ID > maxRecordID {
			return student.Student{}, ErrIDSpaceExhausted
		}
	} else if _, ok := repo.db.student.table[std.ID]; ok {
		return student.Student{}, student.ErrIDExists
	}
	repo.db.student.table[std.ID] = &std

	if err := appendLine(repo.db.conf.StudentsPath(), encodeStudent(std)); err != nil {
		repo.db.log.Warn(fmt.Sprintf("student %d kept in memory only: %v", std.ID, err))
	}
	return std, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()
	return sortedStudents(repo.db.student.table), nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()

	if std, ok := repo.db.student.table[id]; ok {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()

	filter.Clean()
	students := sortedStudents(repo.db.student.table)

	if filter.Search != "" {
		var filtered []student.Student
		for _, std := range students {
			if strings.Contains(strings.ToLower(std.Name), strings.ToLower(filter.Search)) {
				filtered = append(filtered, std)
			}
		}
		students = filtered
	}
	if filter.IsActive != nil {
		var filtered []student.Student
		for _, std := range students {
			if std.IsActive == *filter.IsActive {
				filtered = append(filtered, std)
			}
		}
		students = filtered
	}
	if students == nil {
		students = []student.Student{}
	}
	return students, nil
}

// UpdateStudent mutates in memory only; the file catches up on the next
// SaveAll (full resync).
func (repo *studentRepository) UpdateStudent(std student.Student, isActive *bool) (student.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	orig, ok := repo.db.student.table[std.ID]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	if isActive != nil {
		std.IsActive = *isActive
	} else {
		std.IsActive = orig.IsActive
	}
	repo.db.student.table[std.ID] = &std
	return std, nil
}

func (repo *studentRepository) DeleteStudentsByID(ids ...int) error {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()

	for _, id := range ids {
		delete(repo.db.student.table, id)
	}
	return nil
}
