package user

import (
	"context"
	"log/slog"

	internal "github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/auth"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
	"github.com/nattawut/office-management/internal/core/events"
)

type Repository interface {
	GetAll() ([]*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	Create(u *userDatamodel.User) error
	Update(u *userDatamodel.User) error
	Delete(id int64) error
}

// Service owns user management. All operations here sit behind the
// admin-only route gate; the service itself enforces data integrity only.
type Service struct {
	repo   Repository
	hasher *auth.PasswordHasher
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, hasher *auth.PasswordHasher, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) List() ([]*User, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}

	users := make([]*User, len(rows))
	for i, row := range rows {
		users[i] = FromDataModel(row)
	}
	return users, nil
}

func (s *Service) Create(dto CreateUserDTO, actorID int64) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	record := &userDatamodel.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         dto.Role,
		FullName:     dto.FullName,
		Phone:        dto.Phone,
		Department:   dto.Department,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", record.ID, "role", record.Role)
	s.publish(events.TypeRecordCreated, record.ID, actorID)

	return FromDataModel(record), nil
}

func (s *Service) Update(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Username != nil {
		record.Username = *dto.Username
	}
	if dto.Email != nil {
		record.Email = *dto.Email
	}
	if dto.Role != nil {
		record.Role = *dto.Role
	}
	if dto.FullName != nil {
		record.FullName = *dto.FullName
	}
	if dto.Phone != nil {
		record.Phone = dto.Phone
	}
	if dto.Department != nil {
		record.Department = dto.Department
	}
	if dto.Password != nil {
		hash, err := s.hasher.Hash(*dto.Password)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		record.PasswordHash = hash
	}

	if err := s.repo.Update(record); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", record.ID)
	return FromDataModel(record), nil
}

func (s *Service) Delete(id int64, actorID int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	s.publish(events.TypeRecordDeleted, id, actorID)
	return nil
}

func (s *Service) publish(eventType string, recordID, actorID int64) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), events.NewRecordEvent(eventType, "user", recordID, actorID))
}
