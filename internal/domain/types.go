package domain

// FounderStatus is the outreach status of a founder
type FounderStatus string

const (
	FounderStatusToContact FounderStatus = "to_contact"
	FounderStatusWatching  FounderStatus = "watching"
	FounderStatusContacted FounderStatus = "contacted"
	FounderStatusPass      FounderStatus = "pass"
)

// IsValidFounderStatus checks if a status is one of the known values
func IsValidFounderStatus(status FounderStatus) bool {
	switch status {
	case FounderStatusToContact, FounderStatusWatching, FounderStatusContacted, FounderStatusPass:
		return true
	}
	return false
}

// SignalSource is the platform a signal was observed on
type SignalSource string

const (
	SignalSourceGitHub      SignalSource = "github"
	SignalSourceHN          SignalSource = "hn"
	SignalSourceProductHunt SignalSource = "producthunt"
)

// EntityType is the kind of entity an emergence event refers to
type EntityType string

const (
	EntityTypeFounder EntityType = "founder"
	EntityTypeTheme   EntityType = "theme"
)

// EventType tags an emergence event
type EventType string

const (
	EventTypeCommitSpike   EventType = "commit_spike"
	EventTypeStarSpike     EventType = "star_spike"
	EventTypeForumSpike    EventType = "hn_spike"
	EventTypeScoreCrossing EventType = "score_crossing"
	EventTypeCrossPlatform EventType = "cross_platform"
	EventTypeNewTheme      EventType = "new_theme"
	EventTypeThemeSpike    EventType = "theme_spike"
)

// AlertType tags an alert trigger
type AlertType string

const (
	AlertTypeHighScore     AlertType = "High Score Threshold"
	AlertTypeVelocitySpike AlertType = "Execution Velocity Spike"
)

// Channel is a notification delivery channel
type Channel string

const (
	ChannelSlack Channel = "slack"
	ChannelEmail Channel = "email"
)

// Phase names a pipeline phase
type Phase string

const (
	PhaseEmbed   Phase = "embed"
	PhaseCluster Phase = "cluster"
	PhaseScore   Phase = "score"
	PhaseAlert   Phase = "alert"
	PhaseAnomaly Phase = "anomaly"
)

// RunStatus is the outcome of a pipeline run
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusPartial   RunStatus = "partial"
)
