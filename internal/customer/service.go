package customer

import (
	"context"
	"log/slog"

	internal "github.com/nattawut/office-management/internal"
	customerDatamodel "github.com/nattawut/office-management/internal/core/datamodel/customer"
	"github.com/nattawut/office-management/internal/core/events"
)

type Repository interface {
	GetAllWithCreator() ([]*customerDatamodel.CustomerWithCreator, error)
	GetByID(id int64) (*customerDatamodel.Customer, error)
	Create(c *customerDatamodel.Customer) error
	Update(c *customerDatamodel.Customer) error
	Delete(id int64) error
}

const defaultStatus = "active"

// Service owns the customer directory. Records carry the ID of the user who
// created them, stamped from the authenticated actor rather than client input.
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

func (s *Service) List() ([]*Customer, error) {
	rows, err := s.repo.GetAllWithCreator()
	if err != nil {
		s.logger.Error("failed to list customers", "error", err)
		return nil, internal.NewInternalError("failed to list customers", err)
	}

	customers := make([]*Customer, len(rows))
	for i, row := range rows {
		customers[i] = FromListModel(row)
	}
	return customers, nil
}

func (s *Service) Create(dto CreateCustomerDTO, actorID int64) (*Customer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = defaultStatus
	}

	record := &customerDatamodel.Customer{
		CustomerName:  dto.CustomerName,
		CompanyName:   dto.CompanyName,
		Email:         dto.Email,
		Phone:         dto.Phone,
		Address:       dto.Address,
		ContactPerson: dto.ContactPerson,
		Status:        status,
		CreatedBy:     &actorID,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.logger.Info("customer created", "customer_id", record.ID, "created_by", actorID)
	s.publish(events.TypeRecordCreated, record.ID, actorID)

	return FromDataModel(record), nil
}

func (s *Service) Update(id int64, dto UpdateCustomerDTO) (*Customer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	record.CustomerName = dto.CustomerName
	record.CompanyName = dto.CompanyName
	record.Email = dto.Email
	record.Phone = dto.Phone
	record.Address = dto.Address
	record.ContactPerson = dto.ContactPerson
	if dto.Status != "" {
		record.Status = dto.Status
	}

	if err := s.repo.Update(record); err != nil {
		return nil, err
	}

	s.logger.Info("customer updated", "customer_id", record.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(id int64, actorID int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("customer deleted", "customer_id", id)
	s.publish(events.TypeRecordDeleted, id, actorID)
	return nil
}

func (s *Service) publish(eventType string, recordID, actorID int64) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.NewRecordEvent(eventType, "customer", recordID, actorID))
}
