package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/gen/ent"
	"github.com/papertalk/papertalk/gen/ent/magiclink"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/entity"
	"github.com/papertalk/papertalk/internal/utils"
)

type MagicLinkRepository interface {
	GetByToken(ctx context.Context, token string) (*entity.MagicLink, error)
	// MarkUsed records first use of the link. Advisory only: callers
	// must not treat a used link as invalid.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type magicLinkRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMagicLinkRepository(client *ent.Client, logger *slog.Logger) MagicLinkRepository {
	return &magicLinkRepository{
		client: client,
		logger: logger,
	}
}

func (r *magicLinkRepository) GetByToken(ctx context.Context, token string) (*entity.MagicLink, error) {
	rec, err := r.client.MagicLink.Query().
		Where(magiclink.Token(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrLinkInvalid
		}
		return nil, common.WrapError(common.ErrDatabase, "failed to look up magic link", err)
	}
	return utils.ToMagicLink(rec), nil
}

func (r *magicLinkRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	err := r.client.MagicLink.UpdateOneID(id).
		SetUsed(true).
		SetUsedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		// Best effort. A failure here must never fail the submission.
		r.logger.Warn("failed to mark magic link used", "magic_link_id", id, "error", err)
		return common.WrapError(common.ErrDatabase, "failed to mark magic link used", err)
	}
	return nil
}
