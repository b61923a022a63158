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

// lecturerRepository implements the domain.LecturerRepository interface using GORM.
type lecturerRepository struct {
	db *gorm.DB
}

// NewLecturerRepository is the constructor for lecturerRepository.
func NewLecturerRepository(db *gorm.DB) repository.LecturerRepository {
	return &lecturerRepository{db: db}
}

// FindByID retrieves a single lecturer by their unique ID.
func (repo *lecturerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lecturer, error) {
	var lecturerM model.LecturerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lecturerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLecturerNotFound
		}

		return nil, errors.Wrap(err, "failed to find lecturer by id")
	}

	return toLecturerDomain(&lecturerM), nil
}

// FindByEmail retrieves a single lecturer by email address.
func (repo *lecturerRepository) FindByEmail(ctx context.Context, email string) (*entity.Lecturer, error) {
	var lecturerM model.LecturerModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&lecturerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLecturerNotFound
		}

		return nil, errors.Wrap(err, "failed to find lecturer by email")
	}

	return toLecturerDomain(&lecturerM), nil
}

// Create persists a new lecturer. The unique index on email arbitrates concurrent registrations.
func (repo *lecturerRepository) Create(ctx context.Context, lecturer *entity.Lecturer) error {
	lecturerM := fromLecturerDomain(lecturer)

	if err := repo.db.WithContext(ctx).Create(lecturerM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintLecturersEmailKey) {
			return domainerrors.ErrEmailInUse.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lecturer")
	}

	lecturer.CreatedAt = lecturerM.CreatedAt

	return nil
}

func toLecturerDomain(data *model.LecturerModel) *entity.Lecturer {
	return &entity.Lecturer{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromLecturerDomain(data *entity.Lecturer) *model.LecturerModel {
	return &model.LecturerModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
