package student

import (
	"errors"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
	ErrIDExists = errors.New("a student with this id already exists")
)

type (
	Repository interface {
		CheckIDUniqueness(id int) error
		// CreateStudent assigns the next unused id when s.ID is zero and
		// returns ErrIDExists on collision otherwise.
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		FilterStudents(filter QueryFilter) ([]Student, error)
		UpdateStudent(s Student, isActive *bool) (Student, error)
		DeleteStudentsByID(ids ...int) error
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

func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	if ns.ID != 0 {
		if err := svc.checkUniqueness(ns.ID); err != nil {
			return Student{}, err
		}
	}
	std := Student{
		ID:             ns.ID,
		Name:           ns.Name,
		Age:            ns.Age,
		Email:          ns.Email,
		Phone:          ns.Phone,
		Address:        ns.Address,
		EnrollmentDate: core.Today(),
		IsActive:       true,
	}
	return svc.repo.CreateStudent(std)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) SearchByName(name string) ([]Student, error) {
	return svc.repo.FilterStudents(QueryFilter{Search: core.CleanString(name)})
}

func (svc *Service) Update(id int, us UpdateStudent) (Student, error) {
	orig, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	if err := us.Validate(orig); err != nil {
		return Student{}, err
	}
	orig.Name = us.Name
	orig.Age = us.Age
	orig.Email = us.Email
	orig.Phone = us.Phone
	orig.Address = us.Address
	return svc.repo.UpdateStudent(orig, us.IsActive)
}

// Deactivate soft-deletes; the record and its links remain.
func (svc *Service) Deactivate(id int) (Student, error) {
	return svc.setActive(id, false)
}

func (svc *Service) Reactivate(id int) (Student, error) {
	return svc.setActive(id, true)
}

func (svc *Service) setActive(id int, active bool) (Student, error) {
	std, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	return svc.repo.UpdateStudent(std, &active)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteStudentsByID(ids...)
}
