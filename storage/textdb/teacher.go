package textdb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trezcool/shule/core/teacher"
)

type teacherRepository struct {
	db *DB
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func sortedTeachers(table map[int]*teacher.Teacher) []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(table))
	for _, tch := range table {
		teachers = append(teachers, *tch)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers
}

func (repo *teacherRepository) nextID() int {
	var max int
	for id := range repo.db.teacher.table {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (repo *teacherRepository) CheckIDUniqueness(id int) error {
	repo.db.teacher.RLock()
	defer repo.db.teacher.RUnlock()

	if _, ok := repo.db.teacher.table[id]; ok {
		return teacher.ErrIDExists
	}
	return nil
}

// CreateTeacher inserts and appends one line to the teachers file. A write
// failure is logged, not returned; memory stays the source of truth until
// the next full resync.
func (repo *teacherRepository) CreateTeacher(tch teacher.Teacher) (teacher.Teacher, error) {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	if tch.ID == 0 {
		tch.ID = repo.nextID()
		if tch.ID > maxRecordID {
			return teacher.Teacher{}, ErrIDSpaceExhausted
		}
	} else if _, ok := repo.db.teacher.table[tch.ID]; ok {
		return teacher.Teacher{}, teacher.ErrIDExists
	}
	repo.db.teacher.table[tch.ID] = &tch

	if err := appendLine(repo.db.conf.TeachersPath(), encodeTeacher(tch)); err != nil {
		repo.db.log.Warn(fmt.Sprintf("teacher %d kept in memory only: %v", tch.ID, err))
	}
	return tch, nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	repo.db.teacher.RLock()
	defer repo.db.teacher.RUnlock()
	return sortedTeachers(repo.db.teacher.table), nil
}

func (repo *teacherRepository) GetTeacherByID(id int) (teacher.Teacher, error) {
	repo.db.teacher.RLock()
	defer repo.db.teacher.RUnlock()

	if tch, ok := repo.db.teacher.table[id]; ok {
		return *tch, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) FilterTeachers(filter teacher.QueryFilter) ([]teacher.Teacher, error) {
	repo.db.teacher.RLock()
	defer repo.db.teacher.RUnlock()

	filter.Clean()
	teachers := sortedTeachers(repo.db.teacher.table)

	if filter.Search != "" {
		var filtered []teacher.Teacher
		for _, tch := range teachers {
			if strings.Contains(strings.ToLower(tch.Name), strings.ToLower(filter.Search)) {
				filtered = append(filtered, tch)
			}
		}
		teachers = filtered
	}
	if filter.IsActive != nil {
		var filtered []teacher.Teacher
		for _, tch := range teachers {
			if tch.IsActive == *filter.IsActive {
				filtered = append(filtered, tch)
			}
		}
		teachers = filtered
	}
	if teachers == nil {
		teachers = []teacher.Teacher{}
	}
	return teachers, nil
}

// UpdateTeacher mutates in memory only; the file catches up on the next
// SaveAll (full resync).
func (repo *teacherRepository) UpdateTeacher(tch teacher.Teacher, isActive *bool) (teacher.Teacher, error) {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	orig, ok := repo.db.teacher.table[tch.ID]
	if !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	if isActive != nil {
		tch.IsActive = *isActive
	} else {
		tch.IsActive = orig.IsActive
	}
	repo.db.teacher.table[tch.ID] = &tch
	return tch, nil
}

func (repo *teacherRepository) DeleteTeachersByID(ids ...int) error {
	repo.db.teacher.Lock()
	defer repo.db.teacher.Unlock()

	for _, id := range ids {
		delete(repo.db.teacher.table, id)
	}
	return nil
}
