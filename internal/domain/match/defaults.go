package match

const (
	DefaultRunningText = "WELCOME TO CHAMPS DE PADEL "
	DefaultMotionSrc   = "/intro.mp4"
)

// Defaults returns the state the authoritative store starts with.
func Defaults() MatchState {
	return MatchState{
		ViewMode:    ViewScore,
		RunningText: DefaultRunningText,
		IsAnimating: true,
		ShowClock:   true,
		Motion: MotionConfig{
			Src:          DefaultMotionSrc,
			Active:       true,
			AsBackground: false,
			ShowClock:    true,
		},
		Left: CourtState{
			Template: TemplateAmericano,
			P1Name:   "TEAM A",
			P2Name:   "TEAM B",
		},
		Right: CourtState{
			Template: TemplateTennis,
			P1Name:   "TEAM C",
			P2Name:   "TEAM D",
		},
	}
}
