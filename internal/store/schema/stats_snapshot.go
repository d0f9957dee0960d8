package schema

import "time"

// StatsSnapshot represents the stats_snapshots table - append-only point-in-time counters
type StatsSnapshot struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	FounderID        uint64    `gorm:"column:founder_id;not null;index:idx_stats_founder_captured"`
	GitHubStars      int       `gorm:"column:github_stars;not null;default:0"`
	GitHubCommits90d int       `gorm:"column:github_commits_90d;not null;default:0"`
	GitHubRepos      int       `gorm:"column:github_repos;not null;default:0"`
	HNKarma          int       `gorm:"column:hn_karma;not null;default:0"`
	HNSubmissions    int       `gorm:"column:hn_submissions;not null;default:0"`
	HNTopScore       int       `gorm:"column:hn_top_score;not null;default:0"`
	PHUpvotes        int       `gorm:"column:ph_upvotes;not null;default:0"`
	PHLaunches       int       `gorm:"column:ph_launches;not null;default:0"`
	Followers        int       `gorm:"column:followers;not null;default:0"`
	CapturedAt       time.Time `gorm:"column:captured_at;not null;index:idx_stats_founder_captured"`
}

// TableName specifies the table name for the StatsSnapshot model
func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}
