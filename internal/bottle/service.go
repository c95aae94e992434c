package bottle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/common"
	"medlink/internal/config"
	"medlink/internal/dbmysql"
	"medlink/pkg/errors"
)

// Service drives the dream-bottle state machine:
// active -> matched when another fresh bottle turns up at check time,
// active -> expired otherwise. The check happens once, a fixed wait
// after creation. Note the asymmetry carried over from the product
// behavior: the candidate must have been created within the (much
// shorter) recency window measured at check time, so two users only
// match when they throw bottles within a few seconds of each other near
// the end of the wait.
type Service interface {
	Create(ctx context.Context, userID, content string) (*dbmysql.DreamBottle, error)
	FindMatch(ctx context.Context, userID string) (*dbmysql.DreamBottle, error)
	UpdateStatus(ctx context.Context, bottleID string, status common.BottleStatus, matchedWith string) error
	Cancel(ctx context.Context, userID, bottleID string) (bool, error)
	Close()
}

type service struct {
	repo     Repository
	notifier common.Subject
	logger   *zap.Logger
	sched    *scheduler

	wait    time.Duration
	recency time.Duration
	now     func() time.Time
}

func NewService(cfg *config.Config, repo Repository, notifier common.Subject, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		sched:    newScheduler(),
		wait:     cfg.Matching.WaitWindow,
		recency:  cfg.Matching.RecencyWindow,
		now:      time.Now,
	}
}

// Create throws a bottle: inserts it active and arms the delayed match
// check.
func (s *service) Create(ctx context.Context, userID, content string) (*dbmysql.DreamBottle, error) {
	if userID == "" {
		return nil, errors.InvalidArg("user ID is required")
	}
	if content == "" {
		return nil, errors.InvalidArg("a bottle needs a message")
	}

	b := &dbmysql.DreamBottle{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Status:    common.BottleStatusActive,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to create bottle", err)
	}

	s.sched.Schedule(b.ID, s.wait, func() {
		s.resolve(b.ID, userID)
	})

	s.logger.Info("bottle thrown",
		zap.String("bottle_id", b.ID),
		zap.String("user_id", userID),
		zap.Duration("wait", s.wait))

	created, err := s.repo.ByIDWithOwner(ctx, b.ID)
	if err != nil {
		// row exists, the join fetch is a nicety
		return b, nil
	}
	return created, nil
}

// FindMatch returns the newest other-user bottle still inside the
// recency window, NOT_FOUND when nothing fresh is drifting.
func (s *service) FindMatch(ctx context.Context, userID string) (*dbmysql.DreamBottle, error) {
	if userID == "" {
		return nil, errors.InvalidArg("user ID is required")
	}

	cutoff := s.now().Add(-s.recency)
	match, err := s.repo.FindActiveSince(ctx, userID, cutoff)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NotFound("no active bottle within the recency window")
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "match lookup failed", err)
	}
	return match, nil
}

// UpdateStatus is the unconditional transition write.
func (s *service) UpdateStatus(ctx context.Context, bottleID string, status common.BottleStatus, matchedWith string) error {
	if !status.IsValid() {
		return errors.InvalidArg("unknown bottle status")
	}

	var matched *string
	if matchedWith != "" {
		matched = &matchedWith
	}

	err := s.repo.UpdateStatus(ctx, bottleID, status, matched)
	if err == gorm.ErrRecordNotFound {
		return errors.NotFound("bottle not found")
	}
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to update bottle", err)
	}
	return nil
}

// Cancel drops a pending match check, e.g. when the thrower leaves
// before the window ends. Only the thrower may cancel. The bottle row
// stays active until something else transitions it.
func (s *service) Cancel(ctx context.Context, userID, bottleID string) (bool, error) {
	b, err := s.repo.ByID(ctx, bottleID)
	if err == gorm.ErrRecordNotFound {
		return false, errors.NotFound("bottle not found")
	}
	if err != nil {
		return false, errors.Wrap(errors.CodeInternal, "bottle lookup failed", err)
	}
	if b.UserID != userID {
		return false, errors.Forbidden("only the bottle's thrower can cancel it")
	}
	return s.sched.Cancel(bottleID), nil
}

func (s *service) Close() {
	s.sched.Close()
}

// resolve is the delayed check: one FindMatch, then the terminal
// transition. Two resolves running concurrently can race to claim the
// same bottle; the last write wins, matching the absence of any
// server-side arbitration.
func (s *service) resolve(bottleID, userID string) {
	ctx := context.Background()

	match, err := s.FindMatch(ctx, userID)
	if err != nil {
		if errors.CodeOf(err) != errors.CodeNotFound {
			s.logger.Error("match check failed", zap.String("bottle_id", bottleID), zap.Error(err))
			return
		}

		// designed outcome, not an error
		if err := s.UpdateStatus(ctx, bottleID, common.BottleStatusExpired, ""); err != nil {
			s.logger.Error("expire failed", zap.String("bottle_id", bottleID), zap.Error(err))
		}
		s.logger.Info("bottle expired", zap.String("bottle_id", bottleID))
		return
	}

	if err := s.UpdateStatus(ctx, bottleID, common.BottleStatusMatched, match.ID); err != nil {
		s.logger.Error("match write failed", zap.String("bottle_id", bottleID), zap.Error(err))
		return
	}
	if err := s.UpdateStatus(ctx, match.ID, common.BottleStatusMatched, bottleID); err != nil {
		s.logger.Error("match write failed", zap.String("bottle_id", match.ID), zap.Error(err))
		return
	}

	s.logger.Info("bottles matched",
		zap.String("bottle_id", bottleID),
		zap.String("matched_with", match.ID))

	s.notifyMatch(userID, match.UserID, bottleID, match.ID)
	s.notifyMatch(match.UserID, userID, match.ID, bottleID)
}

func (s *service) notifyMatch(userID, otherUserID, bottleID, otherBottleID string) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyAsync(common.NotificationEvent{
		Kind:          common.BottleMatchedKind,
		UserID:        userID,
		TriggerUserID: &otherUserID,
		Header:        "Your bottle found a match",
		Content:       "Someone caught your dream bottle. Say hello!",
		Priority:      3,
		Metadata: common.NotificationMetadata{
			"bottle_id":  bottleID,
			"matched_to": otherBottleID,
		},
	})
}
