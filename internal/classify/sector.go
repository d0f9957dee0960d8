package classify

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/floats"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/embedder"
	"github.com/feral-file/founder-scout/internal/heuristics"
)

// SectorClassifier picks the dominant sector of a group of member vectors
//
//go:generate mockgen -source=sector.go -destination=../mocks/sector.go -package=mocks -mock_names=SectorClassifier=MockSectorClassifier
type SectorClassifier interface {
	Classify(ctx context.Context, vectors [][]float32) (string, error)
	// Reset drops cached reference vectors
	Reset()
}

type referenceVectors struct {
	names   []string
	vectors [][]float32
}

// embeddingSectorClassifier compares the members' centroid with embedded sector reference phrases
type embeddingSectorClassifier struct {
	provider embedder.Provider
	sectors  []heuristics.Sector
	cache    *cache.Cache
}

// NewSectorClassifier classifies with the given provider; a nil provider always yields the fallback sector
func NewSectorClassifier(provider embedder.Provider, tables *heuristics.Tables, ttl time.Duration) SectorClassifier {
	if provider == nil || len(tables.Sectors) == 0 {
		return fallbackSectorClassifier{}
	}
	return &embeddingSectorClassifier{
		provider: provider,
		sectors:  tables.Sectors,
		cache:    cache.New(ttl, 2*ttl),
	}
}

func (c *embeddingSectorClassifier) Reset() {
	c.cache.Flush()
}

func (c *embeddingSectorClassifier) references(ctx context.Context) (*referenceVectors, error) {
	key := "sectors:" + c.provider.Model()
	if v, ok := c.cache.Get(key); ok {
		return v.(*referenceVectors), nil
	}

	names := make([]string, len(c.sectors))
	texts := make([]string, len(c.sectors))
	for i, s := range c.sectors {
		names[i] = s.Name
		texts[i] = s.Reference
	}
	vectors, err := c.provider.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed sector references: %w", err)
	}
	refs := &referenceVectors{names: names, vectors: vectors}
	c.cache.SetDefault(key, refs)
	return refs, nil
}

func (c *embeddingSectorClassifier) Classify(ctx context.Context, vectors [][]float32) (string, error) {
	centroid, err := Centroid(vectors)
	if err != nil {
		return domain.FALLBACK_SECTOR, err
	}

	refs, err := c.references(ctx)
	if err != nil {
		return domain.FALLBACK_SECTOR, err
	}

	best, bestSim := domain.FALLBACK_SECTOR, math.Inf(-1)
	for i, ref := range refs.vectors {
		if len(ref) != len(centroid) {
			return domain.FALLBACK_SECTOR, domain.ErrDimensionMismatch
		}
		if sim := Cosine(centroid, ref); sim > bestSim {
			best, bestSim = refs.names[i], sim
		}
	}
	return best, nil
}

type fallbackSectorClassifier struct{}

func (fallbackSectorClassifier) Classify(context.Context, [][]float32) (string, error) {
	return domain.FALLBACK_SECTOR, nil
}

func (fallbackSectorClassifier) Reset() {}

// Centroid averages equally sized vectors
func Centroid(vectors [][]float32) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, domain.ErrNoEmbeddings
	}
	dim := len(vectors[0])
	c := make([]float64, dim)
	for _, v := range vectors {
		if len(v) != dim {
			return nil, domain.ErrDimensionMismatch
		}
		for i, x := range v {
			c[i] += float64(x)
		}
	}
	for i := range c {
		c[i] /= float64(len(vectors))
	}
	return c, nil
}

// Cosine returns the cosine similarity of a and b, 0 when either has zero norm
// or their lengths differ
func Cosine(a []float64, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	bf := make([]float64, len(b))
	for i, x := range b {
		bf[i] = float64(x)
	}
	na, nb := floats.Norm(a, 2), floats.Norm(bf, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, bf) / (na * nb)
}
