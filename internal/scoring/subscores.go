package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Blend coefficients and the raw values at which a log or linear term reaches 100
const (
	PEDIGREE_WEIGHT      = 0.6
	YC_ALUMNI_MAX        = 5
	FOLLOWERS_BASELINE   = 1000
	COMMITS_BASELINE     = 300
	STARS_BASELINE       = 1000
	REPOS_MAX            = 20
	KARMA_BASELINE       = 2000
	SUBMISSIONS_MAX      = 20
	PLATFORMS_MAX        = 3
	TRACTION_STARS_BASE  = 500
	TOP_SCORE_BASELINE   = 300
	UPVOTES_BASELINE     = 500
	STRONG_SIGNALS_MAX   = 5
	REVENUE_HITS_MAX     = 3
	PROFILE_SIZE_BASE    = 5000
	SIGNAL_VOLUME_MAX    = 30
	UNKNOWN_STAGE_SCORE  = 50
	EXPERTISE_POINTS     = 25
	NARROW_DOMAIN_POINTS = 34
)

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// Input is everything a founder's score depends on
type Input struct {
	Founder schema.Founder
	// Stats is the latest snapshot; nil scores every counter as zero
	Stats *schema.StatsSnapshot
	// Signals are the founder's recent signals
	Signals []schema.Signal
	Now     time.Time
}

func (in Input) stats() schema.StatsSnapshot {
	if in.Stats == nil {
		return schema.StatsSnapshot{}
	}
	return *in.Stats
}

// pedigreePoints sums the group points for every pedigree group found in the bio plus the tenure bonus
func pedigreePoints(t *heuristics.Tables, founder schema.Founder, now time.Time) float64 {
	points := 0
	for _, g := range t.Pedigree {
		if heuristics.AnyHit(founder.Bio, g.Keywords) {
			points += g.Points
		}
	}
	if year, ok := foundedYear(founder.Founded, now); ok && year <= now.Year()-t.Tenure.MinYears {
		points += t.Tenure.Points
	}
	return Clamp(float64(points), 0, domain.MAX_SUBSCORE)
}

// foundedYear extracts a plausible four-digit year; anything unparseable is "unknown"
func foundedYear(founded string, now time.Time) (int, bool) {
	m := yearPattern.FindString(founded)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil || year < 1900 || year > now.Year() {
		return 0, false
	}
	return year, true
}

func founderQuality(t *heuristics.Tables, in Input) float64 {
	s := in.stats()
	v := PEDIGREE_WEIGHT*pedigreePoints(t, in.Founder, in.Now) +
		0.2*LinearScale(float64(in.Founder.YCAlumniConnections), YC_ALUMNI_MAX, 100) +
		0.2*LogScale(float64(s.Followers), FOLLOWERS_BASELINE, 100)
	return Clamp(v, 0, domain.MAX_SUBSCORE)
}

func executionVelocity(in Input) float64 {
	s := in.stats()
	v := 0.45*LogScale(float64(s.GitHubCommits90d), COMMITS_BASELINE, 100) +
		0.35*LogScale(float64(s.GitHubStars), STARS_BASELINE, 100) +
		0.2*LinearScale(float64(s.GitHubRepos), REPOS_MAX, 100)
	return Clamp(v, 0, domain.MAX_SUBSCORE)
}

func marketConviction(t *heuristics.Tables, in Input) float64 {
	s := in.stats()
	text := in.Founder.Bio + " " + in.Founder.Domain
	v := 0.25*LogScale(float64(s.HNKarma), KARMA_BASELINE, 100) +
		0.15*LinearScale(float64(s.HNSubmissions), SUBMISSIONS_MAX, 100) +
		0.25*KeywordScore(in.Founder.Bio, t.DomainExpertise, EXPERTISE_POINTS, 100) +
		0.15*LinearScale(float64(platformCount(in)), PLATFORMS_MAX, 100) +
		0.2*KeywordScore(text, t.NarrowDomain, NARROW_DOMAIN_POINTS, 100)
	return Clamp(v, 0, domain.MAX_SUBSCORE)
}

func earlyTraction(t *heuristics.Tables, in Input) float64 {
	s := in.stats()
	strong := 0
	for _, sig := range in.Signals {
		if sig.Strong {
			strong++
		}
	}
	revenueHits := heuristics.CountHits(in.Founder.Bio+" "+signalText(in.Signals), t.Revenue)
	v := 0.3*LogScale(float64(s.GitHubStars), TRACTION_STARS_BASE, 100) +
		0.2*LogScale(float64(s.HNTopScore), TOP_SCORE_BASELINE, 100) +
		0.2*LogScale(float64(s.PHUpvotes), UPVOTES_BASELINE, 100) +
		0.15*LinearScale(float64(strong), STRONG_SIGNALS_MAX, 100) +
		0.15*LinearScale(float64(revenueHits), REVENUE_HITS_MAX, 100)
	return Clamp(v, 0, domain.MAX_SUBSCORE)
}

// dealAvailability is an inverse signal: early, unfunded, quiet founders score higher
func dealAvailability(t *heuristics.Tables, in Input) float64 {
	s := in.stats()
	unfunded := 0.0
	if !heuristics.AnyHit(in.Founder.Bio, t.Funding) {
		unfunded = 100
	}
	v := 0.35*t.StageScore(in.Founder.Stage, UNKNOWN_STAGE_SCORE) +
		0.25*unfunded +
		0.2*(100-LogScale(float64(s.Followers), PROFILE_SIZE_BASE, 100)) +
		0.2*(100-LinearScale(float64(len(in.Signals)), SIGNAL_VOLUME_MAX, 100))
	return Clamp(v, 0, domain.MAX_SUBSCORE)
}

// platformCount counts distinct platforms with presence: signal sources plus non-empty stats blocks
func platformCount(in Input) int {
	seen := make(map[domain.SignalSource]struct{})
	for _, sig := range in.Signals {
		seen[sig.Source] = struct{}{}
	}
	s := in.stats()
	if s.GitHubRepos > 0 || s.GitHubStars > 0 || s.GitHubCommits90d > 0 {
		seen[domain.SignalSourceGitHub] = struct{}{}
	}
	if s.HNKarma > 0 || s.HNSubmissions > 0 {
		seen[domain.SignalSourceHN] = struct{}{}
	}
	if s.PHLaunches > 0 || s.PHUpvotes > 0 {
		seen[domain.SignalSourceProductHunt] = struct{}{}
	}
	return len(seen)
}

func signalText(signals []schema.Signal) string {
	labels := make([]string, 0, len(signals))
	for _, s := range signals {
		labels = append(labels, s.Label)
	}
	return strings.Join(labels, " \n ")
}
