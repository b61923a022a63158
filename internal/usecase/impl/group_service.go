package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// groupService implements the GroupUsecase interface.
type groupService struct {
	txManager   repository.TransactionManager
	groupRepo   repository.GroupRepository
	studentRepo repository.StudentRepository
	now         func() time.Time
	logger      *slog.Logger
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	GroupRepo   repository.GroupRepository
	StudentRepo repository.StudentRepository
	Logger      *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager:   params.TxManager,
		groupRepo:   params.GroupRepo,
		studentRepo: params.StudentRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListGroups returns every group ordered by name.
func (srv *groupService) ListGroups(ctx context.Context) ([]*entity.Group, error) {
	groups, err := srv.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}

// GetGroup returns one group.
func (srv *groupService) GetGroup(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	group, err := srv.groupRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrGroupNotFound) {
		return nil, domainerrors.ErrGroupNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get group")
	}

	return group, nil
}

// CreateGroup adds a group at an existing location.
func (srv *groupService) CreateGroup(ctx context.Context, input *usecase.CreateGroupInput) (*entity.Group, error) {
	group := &entity.Group{
		ID:         uuid.New(),
		LocationID: input.LocationID,
		Name:       strings.TrimSpace(input.Name),
		CreatedAt:  srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.LocationRepo().FindByID(ctx, input.LocationID)
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrUnknownLocation
		}
		if err != nil {
			return errors.Wrap(err, "failed to find location")
		}

		return repoFactory.GroupRepo().Create(ctx, group)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Group created",
		slog.String("groupID", group.ID.String()),
		slog.String("locationID", group.LocationID.String()),
	)

	return group, nil
}

// ListStudents returns the students of an existing group ordered by name.
func (srv *groupService) ListStudents(ctx context.Context, groupID uuid.UUID) ([]*entity.Student, error) {
	if _, err := srv.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	students, err := srv.studentRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return students, nil
}

// EnrollStudent adds a student to an existing group. Phone numbers are unique across all groups.
func (srv *groupService) EnrollStudent(ctx context.Context, groupID uuid.UUID, input *usecase.EnrollStudentInput) (*entity.Student, error) {
	student := &entity.Student{
		ID:          uuid.New(),
		GroupID:     groupID,
		Name:        strings.TrimSpace(input.Name),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		CreatedAt:   srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.GroupRepo().FindByID(ctx, groupID)
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.ErrUnknownGroup
		}
		if err != nil {
			return errors.Wrap(err, "failed to find group")
		}

		return repoFactory.StudentRepo().Create(ctx, student)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Student enrolled",
		slog.String("studentID", student.ID.String()),
		slog.String("groupID", groupID.String()),
	)

	return student, nil
}
