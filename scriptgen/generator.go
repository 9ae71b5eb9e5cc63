// Package scriptgen turns trends into short-form video scripts using
// rule-based templates. No model calls, just deterministic structure:
// hook, context, core info, payoff, CTA sized for a 30-60 second read.
package scriptgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vanzic/Project-Rivo/types"
)

var hookTemplates = []string{
	"Stop scrolling! You need to see this about %s.",
	"Everyone is talking about %s right now.",
	"Is %s the next big thing? Let's dive in.",
	"Breaking news on %s that you can't miss.",
}

var contextTemplates = []string{
	"It's blowing up on %s with a huge surge in activity.",
	"We're seeing massive traction across %s today.",
	"Activity on %s is spiking around this topic.",
}

var payoffTemplates = []string{
	"This could change everything for the industry.",
	"Make sure you're prepared for what's coming next.",
	"This is just the beginning of the %s wave.",
	"Don't get left behind on this trend.",
}

var ctaTemplates = []string{
	"Follow for more updates!",
	"Comment below with your thoughts!",
	"Share this with a friend who needs to know.",
	"Hit that like button if you found this useful.",
}

const (
	wordsPerSecond   = 2.5
	minScriptSeconds = 30
	corePadding      = " This is a rapidly evolving situation, so stay tuned for more critical updates."
)

// Generator produces scripts from trends. The zero value is not usable,
// construct with New.
type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a structured script for the trend. Core info is padded
// until the estimated read time reaches the 30 second floor.
func (g *Generator) Generate(trend *types.TrendOutput) *types.Script {
	key := trend.TrendKey

	sourceList := "the internet"
	if len(trend.Sources) > 0 {
		n := len(trend.Sources)
		if n > 3 {
			n = 3
		}
		sourceList = strings.Join(trend.Sources[:n], ", ")
	}

	hook := fmt.Sprintf(pick(g.rng, hookTemplates), key)
	context := fmt.Sprintf(pick(g.rng, contextTemplates), sourceList)

	var coreInfo string
	if len(trend.SampleTitles) > 0 {
		coreInfo = fmt.Sprintf("Reports are highlighting '%s'. It's gaining significant attention.", trend.SampleTitles[0])
		if len(trend.SampleTitles) > 1 {
			coreInfo += fmt.Sprintf(" Also, '%s' is being discussed.", trend.SampleTitles[1])
		}
	} else {
		coreInfo = fmt.Sprintf("Details are emerging about %s. Sources are buzzing with new updates.", key)
	}

	payoffTmpl := pick(g.rng, payoffTemplates)
	payoff := payoffTmpl
	if strings.Contains(payoffTmpl, "%s") {
		payoff = fmt.Sprintf(payoffTmpl, key)
	}

	cta := pick(g.rng, ctaTemplates)

	script := &types.Script{
		TrendKey: key,
		Score:    trend.Score,
		Hook:     hook,
		Context:  context,
		CoreInfo: coreInfo,
		Payoff:   payoff,
		CTA:      cta,
	}

	// Pad core info until the read time clears the floor.
	for estimate(script) < minScriptSeconds {
		script.CoreInfo += corePadding
	}
	script.EstimatedDuration = estimate(script)

	return script
}

func estimate(s *types.Script) int {
	words := len(strings.Fields(s.FullText()))
	return int(float64(words) / wordsPerSecond)
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}
