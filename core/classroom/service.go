package classroom

import (
	"errors"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound = errors.New("classroom not found")
	ErrIDExists = errors.New("a classroom with this id already exists")
)

type (
	Repository interface {
		CheckIDUniqueness(id int) error
		// CreateClassroom assigns the next unused id when cr.ID is zero and
		// returns ErrIDExists on collision otherwise.
		CreateClassroom(cr Classroom) (Classroom, error)
		QueryAllClassrooms() ([]Classroom, error)
		GetClassroomByID(id int) (Classroom, error)
		// FilterClassrooms applies AND operation on available QueryFilter fields.
		FilterClassrooms(filter QueryFilter) ([]Classroom, error)
		UpdateClassroom(cr Classroom, isAvailable *bool) (Classroom, error)
		DeleteClassroomsByID(ids ...int) error
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

func (svc *Service) Create(ncr NewClassroom) (Classroom, error) {
	if err := ncr.Validate(); err != nil {
		return Classroom{}, err
	}
	if ncr.ID != 0 {
		if err := svc.checkUniqueness(ncr.ID); err != nil {
			return Classroom{}, err
		}
	}
	room := Classroom{
		ID:          ncr.ID,
		Location:    ncr.Location,
		Capacity:    ncr.Capacity,
		Building:    ncr.Building,
		IsAvailable: true,
		Equipment:   ncr.Equipment,
	}
	return svc.repo.CreateClassroom(room)
}

func (svc *Service) QueryAll() ([]Classroom, error) {
	return svc.repo.QueryAllClassrooms()
}

func (svc *Service) GetByID(id int) (Classroom, error) {
	return svc.repo.GetClassroomByID(id)
}

func (svc *Service) SearchByLocation(location string) ([]Classroom, error) {
	return svc.repo.FilterClassrooms(QueryFilter{Search: core.CleanString(location)})
}

func (svc *Service) Update(id int, ucr UpdateClassroom) (Classroom, error) {
	orig, err := svc.repo.GetClassroomByID(id)
	if err != nil {
		return Classroom{}, err
	}
	if err := ucr.Validate(orig); err != nil {
		return Classroom{}, err
	}
	orig.Location = ucr.Location
	orig.Capacity = ucr.Capacity
	orig.Building = ucr.Building
	orig.Equipment = ucr.Equipment
	return svc.repo.UpdateClassroom(orig, ucr.IsAvailable)
}

// MarkUnavailable takes the room out of scheduling; existing links remain.
func (svc *Service) MarkUnavailable(id int) (Classroom, error) {
	return svc.setAvailable(id, false)
}

func (svc *Service) MarkAvailable(id int) (Classroom, error) {
	return svc.setAvailable(id, true)
}

func (svc *Service) setAvailable(id int, available bool) (Classroom, error) {
	room, err := svc.repo.GetClassroomByID(id)
	if err != nil {
		return Classroom{}, err
	}
	return svc.repo.UpdateClassroom(room, &available)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteClassroomsByID(ids...)
}
