// Package clustering groups founders into themes by embedding density and keeps theme
// identity, emergence and history up to date across runs.
package clustering

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/classify"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/naming"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// ThemeClusterer runs the clustering phase
//
//go:generate mockgen -source=clusterer.go -destination=../mocks/clusterer.go -package=mocks -mock_names=ThemeClusterer=MockThemeClusterer
type ThemeClusterer interface {
	// ClusterAll clusters every embedding and returns how many themes were created or updated.
	// Clustering failures degrade to zero themes; only store failures outside a theme are returned.
	ClusterAll(ctx context.Context, st store.Store) (int, error)
}

// Config holds clustering configuration
type Config struct {
	MinClusterSize        int
	MinSamples            int
	ReduceDims            int
	SimilarityPlaceholder float64
}

type cluster struct {
	label   int
	members []uint64
	vectors [][]float32
}

type themeClusterer struct {
	config  Config
	namer   naming.Namer
	sectors classify.SectorClassifier
	tables  *heuristics.Tables
	clock   adapter.Clock
	log     *zap.Logger
}

// NewThemeClusterer creates a clusterer
func NewThemeClusterer(cfg Config, namer naming.Namer, sectors classify.SectorClassifier, tables *heuristics.Tables, clock adapter.Clock) ThemeClusterer {
	if cfg.MinClusterSize <= 0 {
		cfg.MinClusterSize = domain.DEFAULT_MIN_CLUSTER_SIZE
	}
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = domain.DEFAULT_MIN_SAMPLES
	}
	if cfg.SimilarityPlaceholder == 0 {
		cfg.SimilarityPlaceholder = domain.PLACEHOLDER_MEMBER_SIMILARITY
	}
	return &themeClusterer{
		config:  cfg,
		namer:   namer,
		sectors: sectors,
		tables:  tables,
		clock:   clock,
		log:     logger.Named("clustering"),
	}
}

func (c *themeClusterer) ClusterAll(ctx context.Context, st store.Store) (int, error) {
	embeddings, err := st.ListEmbeddings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list embeddings: %w", err)
	}

	ids, vectors := consistentVectors(embeddings)
	if len(ids) < len(embeddings) {
		c.log.Warn("Skipped embeddings with a different dimension",
			zap.Int("skipped", len(embeddings)-len(ids)))
	}
	if len(ids) < c.config.MinClusterSize {
		c.log.Info("Not enough founders to cluster",
			zap.Int("founders", len(ids)),
			zap.Int("min_cluster_size", c.config.MinClusterSize))
		return 0, nil
	}

	clusters := c.findClusters(ctx, ids, vectors)
	if len(clusters) == 0 {
		return 0, c.snapshotHistory(ctx, st)
	}

	founders, err := st.ListAllFounders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list founders: %w", err)
	}
	byID := make(map[uint64]schema.Founder, len(founders))
	for _, f := range founders {
		byID[f.ID] = f
	}
	tags, err := st.ListFounderTags(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to list founder tags: %w", err)
	}

	// Continuity is judged against memberships as they were before this run
	memberships, err := st.ListMembershipsByFounders(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to list memberships: %w", err)
	}
	previous := make(map[uint64][]uint64)
	for _, m := range memberships {
		previous[m.FounderID] = append(previous[m.FounderID], m.ThemeID)
	}

	now := c.clock.Now()
	claimed := make(map[uint64]bool)
	upserted := 0
	for _, cl := range clusters {
		members := make([]naming.Member, 0, len(cl.members))
		for _, id := range cl.members {
			f := byID[id]
			members = append(members, naming.Member{FounderID: id, Domain: f.Domain, Tags: tags[id], Bio: f.Bio})
		}

		matched := matchTheme(cl.members, previous, claimed)
		var theme *schema.Theme
		err := st.WithTx(ctx, func(tx store.Store) error {
			var err error
			theme, err = c.upsertTheme(ctx, tx, cl, members, matched, now)
			return err
		})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to upsert theme: %w", err),
				zap.Int("cluster", cl.label),
				zap.Int("members", len(cl.members)))
			continue
		}

		claimed[theme.ID] = true
		upserted++
		c.log.Info("Theme upserted",
			zap.Uint64("theme_id", theme.ID),
			zap.String("name", theme.Name),
			zap.Int("builders", theme.BuilderCount),
			zap.Int("emergence_score", theme.EmergenceScore),
			zap.Bool("continued", matched != 0 && matched == theme.ID),
		)
	}

	if err := c.snapshotHistory(ctx, st); err != nil {
		return upserted, err
	}
	return upserted, nil
}

// findClusters normalizes, reduces and clusters; any failure yields no clusters
func (c *themeClusterer) findClusters(ctx context.Context, ids []uint64, vectors [][]float32) []cluster {
	points := Normalize(vectors)
	reduced, err := Reduce(points, c.config.ReduceDims)
	if err != nil {
		logger.WarnCtx(ctx, "Dimensionality reduction failed, clustering normalized vectors", zap.Error(err))
		reduced = points
	}

	labels, err := HDBSCAN{MinClusterSize: c.config.MinClusterSize, MinSamples: c.config.MinSamples}.Fit(reduced)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("clustering failed: %w", err), zap.Int("founders", len(ids)))
		return nil
	}

	groups := make(map[int]*cluster)
	noise := 0
	for i, label := range labels {
		if label == NOISE {
			noise++
			continue
		}
		g, ok := groups[label]
		if !ok {
			g = &cluster{label: label}
			groups[label] = g
		}
		g.members = append(g.members, ids[i])
		g.vectors = append(g.vectors, vectors[i])
	}

	out := make([]cluster, 0, len(groups))
	for _, g := range groups {
		if len(g.members) >= c.config.MinClusterSize {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })

	c.log.Info("Detected clusters", zap.Int("clusters", len(out)), zap.Int("noise", noise))
	return out
}

func (c *themeClusterer) upsertTheme(ctx context.Context, tx store.Store, cl cluster, members []naming.Member, matched uint64, now time.Time) (*schema.Theme, error) {
	var theme *schema.Theme
	if matched != 0 {
		existing, err := tx.GetTheme(ctx, matched)
		if err != nil {
			return nil, fmt.Errorf("failed to get theme: %w", err)
		}
		theme = existing
	}
	isNew := theme == nil
	if isNew {
		theme = &schema.Theme{FirstDetected: now}
	}

	named := c.namer.Name(ctx, members)
	bios := make([]string, len(members))
	for i, m := range members {
		bios[i] = m.Bio
	}
	sector, err := c.sectors.Classify(ctx, cl.vectors)
	if err != nil {
		logger.WarnCtx(ctx, "Sector classification failed", zap.Error(err))
		sector = domain.FALLBACK_SECTOR
	}
	keywords, err := json.Marshal(named.Keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	theme.Name = named.Name
	theme.Keywords = datatypes.JSON(keywords)
	theme.BuilderCount = len(cl.members)
	theme.FounderOrigin = classify.FounderOrigin(c.tables, bios)
	theme.Sector = sector
	if named.PainSummary != nil {
		theme.PainSummary = named.PainSummary
	}
	if named.UnlockSummary != nil {
		theme.UnlockSummary = named.UnlockSummary
	}
	theme.UpdatedAt = now

	recent, err := tx.CountSignalsSince(ctx, cl.members, now.Add(-domain.VELOCITY_SIGNAL_LOOKBACK))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent signals: %w", err)
	}

	priorBuilders := 0
	if !isNew {
		prior, err := tx.GetLatestThemeHistoryBefore(ctx, theme.ID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to get prior history: %w", err)
		}
		if prior != nil {
			priorBuilders = prior.BuilderCount
		}
		weekAgo, err := tx.GetLatestThemeHistoryBefore(ctx, theme.ID, now.Add(-domain.WEEK))
		if err != nil {
			return nil, fmt.Errorf("failed to get week-old history: %w", err)
		}
		theme.WeeklyVelocity = WeeklyVelocity(theme.BuilderCount, weekAgo)
	}
	theme.EmergenceScore = EmergenceScore(theme.BuilderCount, recent, priorBuilders)

	if isNew {
		if err := tx.CreateTheme(ctx, theme); err != nil {
			return nil, fmt.Errorf("failed to create theme: %w", err)
		}
	} else if err := tx.UpdateTheme(ctx, theme); err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}

	if err := tx.ReplaceThemeMembers(ctx, theme.ID, cl.members, c.config.SimilarityPlaceholder, now); err != nil {
		return nil, fmt.Errorf("failed to replace members: %w", err)
	}
	return theme, nil
}

func (c *themeClusterer) snapshotHistory(ctx context.Context, st store.Store) error {
	themes, err := st.ListThemes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}
	now := c.clock.Now()
	for _, t := range themes {
		if err := st.AddThemeHistory(ctx, &schema.ThemeHistory{
			ThemeID:        t.ID,
			EmergenceScore: t.EmergenceScore,
			BuilderCount:   t.BuilderCount,
			CapturedAt:     now,
		}); err != nil {
			return fmt.Errorf("failed to add theme history: %w", err)
		}
	}
	c.log.Info("Snapshotted theme history", zap.Int("themes", len(themes)))
	return nil
}

// matchTheme returns the unclaimed prior theme sharing the most members with the cluster,
// or 0 when the best overlap is below half of the cluster. Ties go to the lower theme ID.
func matchTheme(members []uint64, previous map[uint64][]uint64, claimed map[uint64]bool) uint64 {
	overlap := make(map[uint64]int)
	for _, id := range members {
		for _, themeID := range previous[id] {
			if !claimed[themeID] {
				overlap[themeID]++
			}
		}
	}

	var best uint64
	bestCount := 0
	for themeID, count := range overlap {
		if count > bestCount || (count == bestCount && themeID < best) {
			best, bestCount = themeID, count
		}
	}
	if float64(bestCount) < float64(len(members))*domain.CONTINUITY_OVERLAP_RATIO {
		return 0
	}
	return best
}

// consistentVectors keeps embeddings sharing the dimension of the first one
func consistentVectors(embeddings []schema.Embedding) ([]uint64, [][]float32) {
	ids := make([]uint64, 0, len(embeddings))
	vectors := make([][]float32, 0, len(embeddings))
	dims := -1
	for _, e := range embeddings {
		v := e.Vector.Slice()
		if len(v) == 0 {
			continue
		}
		if dims == -1 {
			dims = len(v)
		}
		if len(v) != dims {
			continue
		}
		ids = append(ids, e.FounderID)
		vectors = append(vectors, v)
	}
	return ids, vectors
}
