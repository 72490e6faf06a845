package teacher

import (
	"errors"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")
	ErrIDExists = errors.New("a teacher with this id already exists")
)

type (
	Repository interface {
		CheckIDUniqueness(id int) error
		// CreateTeacher assigns the next unused id when t.ID is zero and
		// returns ErrIDExists on collision otherwise.
		CreateTeacher(t Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id int) (Teacher, error)
		// FilterTeachers applies AND operation on available QueryFilter fields.
		FilterTeachers(filter QueryFilter) ([]Teacher, error)
		UpdateTeacher(t Teacher, isActive *bool) (Teacher, error)
		DeleteTeachersByID(ids ...int) error
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

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(); err != nil {
		return Teacher{}, err
	}
	if nt.ID != 0 {
		if err := svc.checkUniqueness(nt.ID); err != nil {
			return Teacher{}, err
		}
	}
	tch := Teacher{
		ID:         nt.ID,
		Name:       nt.Name,
		Subject:    nt.Subject,
		Email:      nt.Email,
		Phone:      nt.Phone,
		Department: nt.Department,
		HireDate:   core.Today(),
		IsActive:   true,
		Salary:     nt.Salary,
	}
	return svc.repo.CreateTeacher(tch)
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) GetByID(id int) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *Service) SearchByName(name string) ([]Teacher, error) {
	return svc.repo.FilterTeachers(QueryFilter{Search: core.CleanString(name)})
}

func (svc *Service) Update(id int, ut UpdateTeacher) (Teacher, error) {
	orig, err := svc.repo.GetTeacherByID(id)
	if err != nil {
		return Teacher{}, err
	}
	if err := ut.Validate(orig); err != nil {
		return Teacher{}, err
	}
	orig.Name = ut.Name
	orig.Subject = ut.Subject
	orig.Email = ut.Email
	orig.Phone = ut.Phone
	orig.Department = ut.Department
	if ut.Salary != nil {
		orig.Salary = *ut.Salary
	}
	return svc.repo.UpdateTeacher(orig, ut.IsActive)
}

// Deactivate soft-deletes; the record and its links remain.
func (svc *Service) Deactivate(id int) (Teacher, error) {
	return svc.setActive(id, false)
}

func (svc *Service) Reactivate(id int) (Teacher, error) {
	return svc.setActive(id, true)
}

func (svc *Service) setActive(id int, active bool) (Teacher, error) {
	tch, err := svc.repo.GetTeacherByID(id)
	if err != nil {
		return Teacher{}, err
	}
	return svc.repo.UpdateTeacher(tch, &active)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteTeachersByID(ids...)
}
