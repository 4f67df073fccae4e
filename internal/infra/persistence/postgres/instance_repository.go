package postgres

import (
	"context"

	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// instanceRepository implements the repository.InstanceRepository interface.
type instanceRepository struct {
	db *gorm.DB
}

// NewInstanceRepository is the constructor for instanceRepository.
func NewInstanceRepository(db *gorm.DB) repository.InstanceRepository {
	return &instanceRepository{
		db: db,
	}
}

// CreateInstance persists a newly registered instance.
func (repo *instanceRepository) CreateInstance(ctx context.Context, instance *entity.Instance) error {
	instanceM := fromInstanceDomain(instance)

	if err := repo.db.WithContext(ctx).Create(instanceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInstance
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required instance information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create instance")
	}

	instance.CreatedAt = instanceM.CreatedAt
	instance.UpdatedAt = instanceM.UpdatedAt

	return nil
}

// FindInstanceByID retrieves an instance by its ID.
func (repo *instanceRepository) FindInstanceByID(ctx context.Context, id string) (*entity.Instance, error) {
	var instanceM model.InstanceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&instanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find instance by ID")
	}

	return toInstanceDomain(&instanceM), nil
}

// FindAllInstances retrieves every registered instance.
func (repo *instanceRepository) FindAllInstances(ctx context.Context) ([]*entity.Instance, error) {
	var instanceModels []*model.InstanceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&instanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list instances")
	}

	instances := make([]*entity.Instance, 0, len(instanceModels))
	for _, instanceM := range instanceModels {
		instances = append(instances, toInstanceDomain(instanceM))
	}

	return instances, nil
}

// FindInstancesVisibleTo retrieves the instances a user may see.
func (repo *instanceRepository) FindInstancesVisibleTo(ctx context.Context, userID uuid.UUID) ([]*entity.Instance, error) {
	var instanceModels []*model.InstanceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? OR owner_id IS NULL", userID).
		Order("created_at ASC").
		Find(&instanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find instances for user")
	}

	instances := make([]*entity.Instance, 0, len(instanceModels))
	for _, instanceM := range instanceModels {
		instances = append(instances, toInstanceDomain(instanceM))
	}

	return instances, nil
}

// ListAllocatedPorts returns every host port currently recorded for an instance.
func (repo *instanceRepository) ListAllocatedPorts(ctx context.Context) ([]int, error) {
	var ports []int

	if err := repo.db.WithContext(ctx).
		Model(&model.InstanceModel{}).
		Pluck("port", &ports).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list allocated ports")
	}

	return ports, nil
}

// UpdateInstance persists changed instance fields.
func (repo *instanceRepository) UpdateInstance(ctx context.Context, instance *entity.Instance) error {
	instanceM := fromInstanceDomain(instance)

	result := repo.db.WithContext(ctx).
		Model(&model.InstanceModel{}).
		Where("id = ?", instance.ID).
		Updates(map[string]any{
			"name":     instanceM.Name,
			"host":     instanceM.Host,
			"port":     instanceM.Port,
			"use_tls":  instanceM.UseTLS,
			"owner_id": instanceM.OwnerID,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateInstance
		}

		return errors.Wrap(result.Error, "failed to update instance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInstanceNotFound
	}

	return nil
}

// DeleteInstance removes an instance registration.
func (repo *instanceRepository) DeleteInstance(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InstanceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete instance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInstanceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toInstanceDomain converts a GORM InstanceModel to a domain Instance entity.
func toInstanceDomain(data *model.InstanceModel) *entity.Instance {
	if data == nil {
		return nil
	}

	return &entity.Instance{
		ID:        data.ID,
		Name:      data.Name,
		Host:      data.Host,
		Port:      data.Port,
		UseTLS:    data.UseTLS,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromInstanceDomain converts a domain Instance entity to a GORM InstanceModel.
func fromInstanceDomain(data *entity.Instance) *model.InstanceModel {
	if data == nil {
		return nil
	}

	return &model.InstanceModel{
		ID:        data.ID,
		Name:      data.Name,
		Host:      data.Host,
		Port:      data.Port,
		UseTLS:    data.UseTLS,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
