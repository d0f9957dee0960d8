package schema

// Models lists every table in migration order
func Models() []interface{} {
	return []interface{}{
		&Founder{},
		&FounderTag{},
		&Signal{},
		&StatsSnapshot{},
		&Score{},
		&Embedding{},
		&Theme{},
		&ThemeMembership{},
		&ThemeHistory{},
		&EmergenceEvent{},
		&AlertLog{},
		&PipelineRun{},
	}
}
