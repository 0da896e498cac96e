package employee

import (
	"context"
	"log/slog"

	internal "github.com/nattawut/office-management/internal"
	employeeDatamodel "github.com/nattawut/office-management/internal/core/datamodel/employee"
	"github.com/nattawut/office-management/internal/core/events"
)

type Repository interface {
	GetAllWithCreator() ([]*employeeDatamodel.EmployeeWithCreator, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	Create(e *employeeDatamodel.Employee) error
	Update(e *employeeDatamodel.Employee) error
	Delete(id int64) error
}

const defaultStatus = "active"

// Service owns the employee registry. The employee_id badge code is unique
// across the registry; the store's constraint is the single source of truth
// for that, surfaced here as a conflict error.
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) List() ([]*Employee, error) {
	rows, err := s.repo.GetAllWithCreator()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}

	employees := make([]*Employee, len(rows))
	for i, row := range rows {
		employees[i] = FromListModel(row)
	}
	return employees, nil
}

func (s *Service) Create(dto CreateEmployeeDTO, actorID int64) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	salary, _ := parseSalary(dto.Salary)
	hireDate, _ := parseHireDate(dto.HireDate)

	status := dto.Status
	if status == "" {
		status = defaultStatus
	}

	record := &employeeDatamodel.Employee{
		EmployeeID: dto.EmployeeID,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Position:   dto.Position,
		Department: dto.Department,
		Salary:     salary,
		HireDate:   hireDate,
		Status:     status,
		CreatedBy:  &actorID,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", record.EmployeeID, "created_by", actorID)
	s.publish(events.TypeRecordCreated, record.ID, actorID)

	return FromDataModel(record), nil
}

func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	salary, _ := parseSalary(dto.Salary)
	hireDate, _ := parseHireDate(dto.HireDate)

	record.EmployeeID = dto.EmployeeID
	record.FirstName = dto.FirstName
	record.LastName = dto.LastName
	record.Email = dto.Email
	record.Phone = dto.Phone
	record.Position = dto.Position
	record.Department = dto.Department
	record.Salary = salary
	record.HireDate = hireDate
	if dto.Status != "" {
		record.Status = dto.Status
	}

	if err := s.repo.Update(record); err != nil {
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", record.EmployeeID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(id int64, actorID int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("employee deleted", "record_id", id)
	s.publish(events.TypeRecordDeleted, id, actorID)
	return nil
}

func (s *Service) publish(eventType string, recordID, actorID int64) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.NewRecordEvent(eventType, "employee", recordID, actorID))
}
