package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/gen/ent"
	enttest "github.com/papertalk/papertalk/gen/ent/test"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/utils"
)

type TestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Test, error)
	// GetPaper returns the question paper attached to the test, or
	// ErrNotFound when the test has none.
	GetPaper(ctx context.Context, testID uuid.UUID) (*entity.TestPaper, error)
}

type testRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTestRepository(client *ent.Client, logger *slog.Logger) TestRepository {
	return &testRepository{
		client: client,
		logger: logger,
	}
}

func (r *testRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Test, error) {
	rec, err := r.client.Test.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, "failed to load test", err)
	}
	return utils.ToTest(rec), nil
}

func (r *testRepository) GetPaper(ctx context.Context, testID uuid.UUID) (*entity.TestPaper, error) {
	rec, err := r.client.Test.Query().
		Where(enttest.ID(testID)).
		QueryTestPaper().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to load test paper", "test_id", testID, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "failed to load test paper", err)
	}
	return utils.ToTestPaper(rec, testID), nil
}
