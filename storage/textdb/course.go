package textdb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trezcool/shule/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func sortedCourses(table map[int]*course.Course) []course.Course {
	courses := make([]course.Course, 0, len(table))
	for _, crs := range table {
		courses = append(courses, *crs)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (repo *courseRepository) nextID() int {
	var max int
	for id := range repo.db.course.table {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (repo *courseRepository) CheckIDUniqueness(id int) error {
	repo.db.course.RLock()
	defer repo.db.course.RUnlock()

	if _, ok := repo.db.course.table[id]; ok {
		return course.ErrIDExists
	}
	return nil
}

// CreateCourse inserts and appends one line to the courses file. A write
// failure is logged, not returned; memory stays the source of truth until
// the next full resync.
func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.course.Lock()
	defer repo.db.course.Unlock()

	if crs.ID == 0 {
		crs.ID = repo.nextID()
		if crs.ID > maxRecordID {
			return course.Course{}, ErrIDSpaceExhausted
		}
	} else if _, ok := repo.db.course.table[crs.ID]; ok {
		return course.Course{}, course.ErrIDExists
	}
	repo.db.course.table[crs.ID] = &crs

	if err := appendLine(repo.db.conf.CoursesPath(), encodeCourse(crs)); err != nil {
		repo.db.log.Warn(fmt.Sprintf("course %d kept in memory only: %v", crs.ID, err))
	}
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.course.RLock()
	defer repo.db.course.RUnlock()
	return sortedCourses(repo.db.course.table), nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.course.RLock()
	defer repo.db.course.RUnlock()

	if crs, ok := repo.db.course.table[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	repo.db.course.RLock()
	defer repo.db.course.RUnlock()

	filter.Clean()
	courses := sortedCourses(repo.db.course.table)

	if filter.Search != "" {
		var filtered []course.Course
		for _, crs := range courses {
			if strings.Contains(strings.ToLower(crs.Name), strings.ToLower(filter.Search)) {
				filtered = append(filtered, crs)
			}
		}
		courses = filtered
	}
	if filter.IsActive != nil {
		var filtered []course.Course
		for _, crs := range courses {
			if crs.IsActive == *filter.IsActive {
				filtered = append(filtered, crs)
			}
		}
		courses = filtered
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return courses, nil
}

// UpdateCourse mutates in memory only; the file catches up on the next
// SaveAll (full resync).
func (repo *courseRepository) UpdateCourse(crs course.Course, isActive *bool) (course.Course, error) {
	repo.db.course.Lock()
	defer repo.db.course.Unlock()

	orig, ok := repo.db.course.table[crs.ID]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	if isActive != nil {
		crs.IsActive = *isActive
	} else {
		crs.IsActive = orig.IsActive
	}
	repo.db.course.table[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) DeleteCoursesByID(ids ...int) error {
	repo.db.course.Lock()
	defer repo.db.course.Unlock()

	for _, id := range ids {
		delete(repo.db.course.table, id)
	}
	return nil
}
