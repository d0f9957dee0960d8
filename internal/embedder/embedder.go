// Package embedder keeps one content embedding per founder up to date.
package embedder

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Embedder runs the embedding phase
//
//go:generate mockgen -source=embedder.go -destination=../mocks/embedder.go -package=mocks -mock_names=Embedder=MockEmbedder
type Embedder interface {
	// EmbedAll embeds every founder whose content changed and returns how many were written
	EmbedAll(ctx context.Context, st store.Store) (int, error)
}

// Config holds embedder configuration
type Config struct {
	BatchSize int
	Workers   int
}

type pendingEmbedding struct {
	founderID uint64
	text      string
	hash      string
}

type embedder struct {
	config   Config
	provider Provider
	clock    adapter.Clock
	log      *zap.Logger
}

// NewEmbedder creates an embedder over the given provider
func NewEmbedder(cfg Config, provider Provider, clock adapter.Clock) Embedder {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = domain.DEFAULT_EMBEDDING_BATCH_SIZE
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &embedder{
		config:   cfg,
		provider: provider,
		clock:    clock,
		log:      logger.Named("embedder"),
	}
}

func (e *embedder) EmbedAll(ctx context.Context, st store.Store) (int, error) {
	founders, err := st.ListAllFounders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list founders: %w", err)
	}

	ids := make([]uint64, 0, len(founders))
	for _, f := range founders {
		ids = append(ids, f.ID)
	}
	tags, err := st.ListFounderTags(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to list founder tags: %w", err)
	}
	hashes, err := st.GetEmbeddingHashes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get embedding hashes: %w", err)
	}

	var candidates []pendingEmbedding
	for _, f := range founders {
		signals, err := st.ListRecentSignals(ctx, f.ID, time.Time{})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to list signals: %w", err), zap.Uint64("founder_id", f.ID))
			continue
		}
		labels := make([]string, 0, len(signals))
		for _, s := range signals {
			labels = append(labels, s.Label)
		}

		text := BuildText(f, tags[f.ID], labels)
		if text == "" {
			continue
		}
		candidates = append(candidates, pendingEmbedding{founderID: f.ID, text: text})
	}

	var fingerprint string
	if p, ok := e.provider.(Preparer); ok {
		corpus := make([]string, len(candidates))
		for i, c := range candidates {
			corpus[i] = c.text
		}
		fingerprint = p.Prepare(corpus)
	}

	model := e.provider.Model()
	var pending []pendingEmbedding
	for _, c := range candidates {
		c.hash = EmbeddingHash(c.text, model, fingerprint)
		if hashes[c.founderID] == c.hash {
			continue
		}
		pending = append(pending, c)
	}

	if len(pending) == 0 {
		e.log.Info("All founder embeddings up to date")
		return 0, nil
	}

	e.log.Info("Embedding founders",
		zap.Int("pending", len(pending)),
		zap.Int("batch_size", e.config.BatchSize),
		zap.String("model", model),
	)

	pool := pond.NewResultPool[[][]float32](e.config.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	type batchTask struct {
		items []pendingEmbedding
		task  pond.Result[[][]float32]
	}
	var tasks []batchTask
	for start := 0; start < len(pending); start += e.config.BatchSize {
		end := min(start+e.config.BatchSize, len(pending))
		items := pending[start:end]
		texts := make([]string, len(items))
		for i, it := range items {
			texts[i] = it.text
		}
		tasks = append(tasks, batchTask{
			items: items,
			task: pool.Submit(func() [][]float32 {
				vectors, err := e.provider.Embed(ctx, texts)
				if err != nil {
					logger.ErrorCtx(ctx, fmt.Errorf("failed to embed batch: %w", err), zap.Int("size", len(texts)))
					return nil
				}
				return vectors
			}),
		})
	}

	// Writes stay on this goroutine; the store may be a transaction
	embedded := 0
	for _, bt := range tasks {
		vectors, err := bt.task.Wait()
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("embedding batch aborted: %w", err))
			continue
		}
		if len(vectors) != len(bt.items) {
			continue
		}
		for i, it := range bt.items {
			row := schema.Embedding{
				FounderID:   it.founderID,
				Vector:      schema.NewVector(vectors[i]),
				Model:       model,
				ContentHash: it.hash,
				EmbeddedAt:  e.clock.Now(),
			}
			if err := st.UpsertEmbedding(ctx, &row); err != nil {
				return embedded, fmt.Errorf("failed to store embedding: %w", err)
			}
			embedded++
		}
	}

	e.log.Info("Embedded founders", zap.Int("embedded", embedded))
	return embedded, nil
}
