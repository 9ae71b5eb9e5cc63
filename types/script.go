package types

// Script is the fixed five-section spoken script for one trend.
// Immutable once produced by the script generator.
type Script struct {
	TrendKey          string `json:"trend_key"`
	Score             int    `json:"score"`
	Hook              string `json:"hook"`
	Context           string `json:"context"`
	CoreInfo          string `json:"core_info"`
	Payoff            string `json:"payoff"`
	CTA               string `json:"cta"`
	EstimatedDuration int    `json:"estimated_duration"`
}

// Section pairs a section name with its text, in spoken order.
type Section struct {
	Name string
	Text string
}

// Sections returns the five sections in their fixed spoken order.
func (s *Script) Sections() []Section {
	return []Section{
		{"hook", s.Hook},
		{"context", s.Context},
		{"core_info", s.CoreInfo},
		{"payoff", s.Payoff},
		{"cta", s.CTA},
	}
}

// FullText concatenates the sections for speech synthesis.
func (s *Script) FullText() string {
	return s.Hook + " " + s.Context + " " + s.CoreInfo + " " + s.Payoff + " " + s.CTA
}
