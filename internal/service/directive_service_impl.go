package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/directive"
	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/repository"
)

type directiveService struct {
	directives repository.DirectiveRepo
	uow        db.UnitOfWork
	parser     *directive.Parser
	observer   UseCaseObserver
}

func NewDirectiveService(directives repository.DirectiveRepo, uow db.UnitOfWork, observers ...UseCaseObserver) DirectiveService {
	return &directiveService{
		directives: directives,
		uow:        uow,
		parser:     directive.NewParser(),
		observer:   useCaseObserverOrNoop(observers),
	}
}

// DirectiveUpdate is the outcome of Set. Reset and Unlinked are zero unless
// new text replaced a directive that had progress.
type DirectiveUpdate struct {
	Directive *domain.Directive
	// Reset is how many completed items the old text lost.
	Reset int
	// Unlinked counts meals and workouts detached from the old items.
	Unlinked int64
}

func (u *DirectiveUpdate) ProgressLost() bool {
	return u.Reset > 0 || u.Unlinked > 0
}

// Set stores message as the directive for date. Item indices are positional,
// so new text clears the completed set and unlinks records made from the old
// text. Storing identical text keeps both.
func (s *directiveService) Set(ctx context.Context, date, message string) (res *DirectiveUpdate, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date}
	defer observe(ctx, s.observer, "set-directive", startedAt, fields, &err)

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("directive message is required")
	}

	err = withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		txDirectives := repository.NewSQLiteDirectiveRepo(tx)

		prev, err := txDirectives.Get(ctx, date)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		d := &domain.Directive{Date: date, Message: message, UpdatedAt: time.Now().UTC()}
		res = &DirectiveUpdate{Directive: d}
		if prev != nil && prev.Message == message {
			d.Completed = prev.Completed
		} else if prev != nil {
			n, err := unlinkRecords(ctx, tx, date)
			if err != nil {
				return err
			}
			res.Reset = prev.Completed.Len()
			res.Unlinked = n
		}
		return txDirectives.Upsert(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	fields["items"] = len(s.parser.Parse(message))
	fields["reset"] = res.Reset
	fields["unlinked"] = res.Unlinked
	return res, nil
}

func (s *directiveService) Get(ctx context.Context, date string) (*domain.Directive, []domain.ActionItem, error) {
	d, err := s.directives.Get(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", date, ErrNoDirective)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return d, s.parser.Parse(d.Message), nil
}

// Clear removes the directive for date. Records it created stay logged but
// lose their link.
func (s *directiveService) Clear(ctx context.Context, date string) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "clear-directive", startedAt, map[string]any{"date": date}, &err)

	return withTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) error {
		if _, err := unlinkRecords(ctx, tx, date); err != nil {
			return err
		}
		return repository.NewSQLiteDirectiveRepo(tx).Delete(ctx, date)
	})
}

func unlinkRecords(ctx context.Context, tx db.DBTX, date string) (int64, error) {
	meals, err := repository.NewSQLiteMealRepo(tx).UnlinkDirective(ctx, date)
	if err != nil {
		return 0, err
	}
	workouts, err := repository.NewSQLiteWorkoutRepo(tx).UnlinkDirective(ctx, date)
	return meals + workouts, err
}
