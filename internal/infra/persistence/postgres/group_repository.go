package postgres

import (
	"context"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupRepository implements the domain.GroupRepository interface using GORM.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// FindAll returns every group ordered by name.
func (repo *groupRepository) FindAll(ctx context.Context) ([]*entity.Group, error) {
	var groupMs []*model.GroupModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&groupMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	groups := make([]*entity.Group, 0, len(groupMs))
	for _, groupM := range groupMs {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups, nil
}

// FindByID retrieves a single group by ID.
func (repo *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupM model.GroupModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by id")
	}

	return toGroupDomain(&groupM), nil
}

// Create persists a new group.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintGroupsNameKey) {
			return domainerrors.ErrGroupNameExists.WrapMessage("group name taken")
		}
		if isForeignKeyConstraintViolation(err, constraintGroupsLocationIDFkey) {
			return domainerrors.ErrUnknownLocation.WrapMessage("group references missing location")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.CreatedAt = groupM.CreatedAt

	return nil
}

func toGroupDomain(data *model.GroupModel) *entity.Group {
	return &entity.Group{
		ID:         data.ID,
		LocationID: data.LocationID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
	}
}

func fromGroupDomain(data *entity.Group) *model.GroupModel {
	return &model.GroupModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
	}
}
