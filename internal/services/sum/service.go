package sum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"bigsum/internal/decimal"
	"bigsum/internal/domain"
	"bigsum/internal/log"
)

// Options tunes a Service.
type Options struct {
	// StrictGrouping rejects operands whose separators are not placed every
	// three digits.
	StrictGrouping bool
	// History, when non-nil, receives a record for every successful sum.
	History domain.HistoryStore
	// Remote, when non-nil, performs the addition instead of internal/decimal.
	// Strict grouping and history still apply locally.
	Remote domain.Adder
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service adds operands in-process or through a Remote adder.
type Service struct {
	opts   Options
	logger zerolog.Logger
}

// New returns a Service configured with opts.
func New(opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{opts: opts, logger: log.WithComponent("sum")}
}

// Sum adds a and b, delegating to Options.Remote when set.
func (s *Service) Sum(ctx context.Context, a, b string) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	if s.opts.StrictGrouping {
		if err := checkGrouping("a", a); err != nil {
			return domain.Result{}, err
		}
		if err := checkGrouping("b", b); err != nil {
			return domain.Result{}, err
		}
	}

	res, err := s.add(ctx, a, b)
	if err != nil {
		s.logger.Debug().Err(err).Msg("sum failed")
		return domain.Result{}, err
	}
	sum := res.Sum
	s.logger.Debug().
		Int("len_a", len(a)).
		Int("len_b", len(b)).
		Int("len_sum", len(sum)).
		Bool("grouped", res.Grouped).
		Bool("remote", s.opts.Remote != nil).
		Msg("sum computed")

	if s.opts.History != nil {
		rec := domain.Record{A: a, B: b, Sum: sum, CreatedUTC: s.opts.Now().UTC().Unix()}
		if err := s.opts.History.Append(rec); err != nil {
			// history is best-effort
			s.logger.Warn().Err(err).Msg("append history")
		}
	}
	return res, nil
}

func (s *Service) add(ctx context.Context, a, b string) (domain.Result, error) {
	if s.opts.Remote != nil {
		return s.opts.Remote.Sum(ctx, a, b)
	}
	sum, err := decimal.Add(a, b)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Sum: sum, Grouped: isGrouped(a, b)}, nil
}

func checkGrouping(name, operand string) error {
	if !decimal.ValidGrouping(operand) {
		return fmt.Errorf("operand %s %q: %w", name, operand, decimal.ErrMalformedGrouping)
	}
	return nil
}

func isGrouped(a, b string) bool {
	return strings.ContainsRune(a, decimal.Separator) || strings.ContainsRune(b, decimal.Separator)
}

var _ domain.Adder = (*Service)(nil)
