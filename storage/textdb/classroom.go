package textdb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trezcool/shule/core/classroom"
)

type classroomRepository struct {
	db *DB
}

var _ classroom.Repository = (*classroomRepository)(nil) // interface compliance check

func NewClassroomRepository(db *DB) classroom.Repository {
	return &classroomRepository{db: db}
}

func sortedClassrooms(table map[int]*classroom.Classroom) []classroom.Classroom {
	rooms := make([]classroom.Classroom, 0, len(table))
	for _, room := range table {
		rooms = append(rooms, *room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

func (repo *classroomRepository) nextID() int {
	var max int
	for id := range repo.db.classroom.table {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (repo *classroomRepository) CheckIDUniqueness(id int) error {
	repo.db.classroom.RLock()
	defer repo.db.classroom.RUnlock()

	if _, ok := repo.db.classroom.table[id]; ok {
		return classroom.ErrIDExists
	}
	return nil
}

// CreateClassroom inserts and appends one line to the classrooms file. A
// write failure is logged, not returned; memory stays the source of truth
// until the next full resync.
func (repo *classroomRepository) CreateClassroom(room classroom.Classroom) (classroom.Classroom, error) {
	repo.db.classroom.Lock()
	defer repo.db.classroom.Unlock()

	if room.ID == 0 {
		room.ID = repo.nextID()
		if room.ID > maxRecordID {
			return classroom.Classroom{}, ErrIDSpaceExhausted
		}
	} else if _, ok := repo.db.classroom.table[room.ID]; ok {
		return classroom.Classroom{}, classroom.ErrIDExists
	}
	repo.db.classroom.table[room.ID] = &room

	if err := appendLine(repo.db.conf.ClassroomsPath(), encodeClassroom(room)); err != nil {
		repo.db.log.Warn(fmt.Sprintf("classroom %d kept in memory only: %v", room.ID, err))
	}
	return room, nil
}

func (repo *classroomRepository) QueryAllClassrooms() ([]classroom.Classroom, error) {
	repo.db.classroom.RLock()
	defer repo.db.classroom.RUnlock()
	return sortedClassrooms(repo.db.classroom.table), nil
}

func (repo *classroomRepository) GetClassroomByID(id int) (classroom.Classroom, error) {
	repo.db.classroom.RLock()
	defer repo.db.classroom.RUnlock()

	if room, ok := repo.db.classroom.table[id]; ok {
		return *room, nil
	}
	return classroom.Classroom{}, classroom.ErrNotFound
}

func (repo *classroomRepository) FilterClassrooms(filter classroom.QueryFilter) ([]classroom.Classroom, error) {
	repo.db.classroom.RLock()
	defer repo.db.classroom.RUnlock()

	filter.Clean()
	rooms := sortedClassrooms(repo.db.classroom.table)

	if filter.Search != "" {
		var filtered []classroom.Classroom
		for _, room := range rooms {
			if strings.Contains(strings.ToLower(room.Location), strings.ToLower(filter.Search)) ||
				strings.Contains(strings.ToLower(room.Building), strings.ToLower(filter.Search)) {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}
	if filter.IsAvailable != nil {
		var filtered []classroom.Classroom
		for _, room := range rooms {
			if room.IsAvailable == *filter.IsAvailable {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}
	if rooms == nil {
		rooms = []classroom.Classroom{}
	}
	return rooms, nil
}

// UpdateClassroom mutates in memory only; the file catches up on the next
// SaveAll (full resync).
func (repo *classroomRepository) UpdateClassroom(room classroom.Classroom, isAvailable *bool) (classroom.Classroom, error) {
	repo.db.classroom.Lock()
	defer repo.db.classroom.Unlock()

	orig, ok := repo.db.classroom.table[room.ID]
	if !ok {
		return classroom.Classroom{}, classroom.ErrNotFound
	}
	if isAvailable != nil {
		room.IsAvailable = *isAvailable
	} else {
		room.IsAvailable = orig.IsAvailable
	}
	repo.db.classroom.table[room.ID] = &room
	return room, nil
}

func (repo *classroomRepository) DeleteClassroomsByID(ids ...int) error {
	repo.db.classroom.Lock()
	defer repo.db.classroom.Unlock()

	for _, id := range ids {
		delete(repo.db.classroom.table, id)
	}
	return nil
}
