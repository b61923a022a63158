package impl

import (
	"context"

	"campus/internal/domain/repository"
	mockRepo "campus/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// runInTx makes the transaction manager mock invoke its callback with factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
