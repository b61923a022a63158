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

// studentRepository implements the domain.StudentRepository interface using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindByGroup returns the students of a group ordered by name. Ties are broken by ID
// so that the order is stable between calls.
func (repo *studentRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Student, error) {
	var studentMs []*model.StudentModel
	err := repo.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("name ASC").
		Order("id ASC").
		Find(&studentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students by group")
	}

	students := make([]*entity.Student, 0, len(studentMs))
	for _, studentM := range studentMs {
		students = append(students, toStudentDomain(studentM))
	}

	return students, nil
}

// Create persists a new student.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintStudentsPhoneNumberKey) {
			return domainerrors.ErrPhoneNumberInUse.WrapMessage("phone number taken")
		}
		if isForeignKeyConstraintViolation(err, constraintStudentsGroupIDFkey) {
			return domainerrors.ErrUnknownGroup.WrapMessage("student references missing group")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.CreatedAt = studentM.CreatedAt

	return nil
}

func toStudentDomain(data *model.StudentModel) *entity.Student {
	return &entity.Student{
		ID:          data.ID,
		GroupID:     data.GroupID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		CreatedAt:   data.CreatedAt,
	}
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	return &model.StudentModel{
		ID:          data.ID,
		GroupID:     data.GroupID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		CreatedAt:   data.CreatedAt,
	}
}
