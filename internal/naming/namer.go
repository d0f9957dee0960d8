// Package naming turns a cluster of founders into a human-readable theme name.
//
// The keyword strategy is always available. A generative strategy, when configured,
// is tried first behind a circuit breaker and a response cache, and any failure
// falls back to the keyword name without surfacing an error.
package naming

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
	"github.com/feral-file/founder-scout/internal/logger"
)

// Member is the part of a founder that naming looks at
type Member struct {
	FounderID uint64
	Domain    string
	Tags      []string
	Bio       string
}

// Result is a theme name plus the optional summaries a generative namer can provide
type Result struct {
	Name     string
	Keywords []string
	// Generated is true when Name came from a generative service
	Generated     bool
	PainSummary   *string
	UnlockSummary *string
}

// Namer names a cluster
type Namer interface {
	// Name never fails; it degrades to the keyword name
	Name(ctx context.Context, members []Member) Result
	// Reset clears cached names
	Reset()
}

type keywordNamer struct {
	tables *heuristics.Tables
}

// NewKeywordNamer creates the deterministic keyword namer
func NewKeywordNamer(tables *heuristics.Tables) Namer {
	return &keywordNamer{tables: tables}
}

func (n *keywordNamer) Name(_ context.Context, members []Member) Result {
	keywords := TopKeywords(n.tables, members, TOP_KEYWORDS)
	return Result{Name: KeywordName(keywords), Keywords: keywords}
}

func (n *keywordNamer) Reset() {}

// Config holds generative namer configuration
type Config struct {
	Timeout                 time.Duration
	BreakerFailureThreshold uint
	BreakerDelay            time.Duration
	CacheTTL                time.Duration
}

type generativeNamer struct {
	config    Config
	generator Generator
	fallback  *keywordNamer
	breaker   circuitbreaker.CircuitBreaker[*Generated]
	cache     *cache.Cache
	log       *zap.Logger
}

// NewGenerativeNamer wraps a generator with a circuit breaker, a response cache and the keyword fallback
func NewGenerativeNamer(cfg Config, generator Generator, tables *heuristics.Tables) Namer {
	if cfg.BreakerFailureThreshold == 0 {
		cfg.BreakerFailureThreshold = 3
	}
	if cfg.BreakerDelay <= 0 {
		cfg.BreakerDelay = time.Minute
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	log := logger.Named("naming")
	breaker := circuitbreaker.NewBuilder[*Generated]().
		WithFailureThreshold(cfg.BreakerFailureThreshold).
		WithDelay(cfg.BreakerDelay).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			log.Warn("Naming circuit breaker state change",
				zap.String("provider", generator.Provider()),
				zap.String("from", e.OldState.String()),
				zap.String("to", e.NewState.String()),
			)
		}).
		Build()

	return &generativeNamer{
		config:    cfg,
		generator: generator,
		fallback:  &keywordNamer{tables: tables},
		breaker:   breaker,
		cache:     cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		log:       log,
	}
}

func (n *generativeNamer) Reset() {
	n.cache.Flush()
}

func (n *generativeNamer) Name(ctx context.Context, members []Member) Result {
	result := n.fallback.Name(ctx, members)

	key := memberKey(members)
	if v, ok := n.cache.Get(key); ok {
		return v.(*Generated).apply(result)
	}

	generated, err := n.generate(ctx, members)
	if err != nil {
		n.log.Debug("Falling back to keyword theme name",
			zap.String("provider", n.generator.Provider()),
			zap.String("name", result.Name),
			zap.Error(err),
		)
		return result
	}

	n.cache.SetDefault(key, generated)
	return generated.apply(result)
}

func (n *generativeNamer) generate(ctx context.Context, members []Member) (*Generated, error) {
	prompt := BuildPrompt(members)
	generated, err := failsafe.With[*Generated](n.breaker).WithContext(ctx).Get(func() (*Generated, error) {
		callCtx := ctx
		if n.config.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, n.config.Timeout)
			defer cancel()
		}
		text, err := n.generator.Generate(callCtx, prompt)
		if err != nil {
			return nil, err
		}
		return ParseGenerated(text)
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return nil, fmt.Errorf("%w: %s circuit open", domain.ErrProviderUnavailable, n.generator.Provider())
	}
	return generated, err
}

// memberKey identifies a member set independently of order
func memberKey(members []Member) string {
	ids := make([]uint64, len(members))
	for i, m := range members {
		ids[i] = m.FounderID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return "theme:" + strings.Join(parts, ",")
}
