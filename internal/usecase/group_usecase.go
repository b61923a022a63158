package usecase

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput defines the data required to create a study group.
type CreateGroupInput struct {
	LocationID uuid.UUID
	Name       string
}

// EnrollStudentInput defines the data required to add a student to a group.
type EnrollStudentInput struct {
	Name        string
	PhoneNumber string
}

// GroupUsecase defines operations on study groups and their students.
type GroupUsecase interface {
	ListGroups(ctx context.Context) ([]*entity.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*entity.Group, error)

	// ListStudents returns the group's students ordered by name.
	ListStudents(ctx context.Context, groupID uuid.UUID) ([]*entity.Student, error)
	EnrollStudent(ctx context.Context, groupID uuid.UUID, input *EnrollStudentInput) (*entity.Student, error)
}
