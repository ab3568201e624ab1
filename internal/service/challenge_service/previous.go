package challenge_service

import "sync"

const (
	maxPreviousChallenges = 20
	descriptionSnippetLen = 100
)

// previousChallenges is the bounded list of past generations embedded in
// new prompts to bias the model away from repeats. Oldest entries are
// evicted first once the cap is hit.
type previousChallenges struct {
	mu      sync.Mutex
	entries []PreviousChallengeSummary
}

func (p *previousChallenges) add(title, description string) {
	snippet := description
	if len(snippet) > descriptionSnippetLen {
		snippet = snippet[:descriptionSnippetLen]
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, PreviousChallengeSummary{
		Title:              title,
		DescriptionSnippet: snippet,
	})
	if len(p.entries) > maxPreviousChallenges {
		p.entries = p.entries[len(p.entries)-maxPreviousChallenges:]
	}
}

func (p *previousChallenges) snapshot() []PreviousChallengeSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PreviousChallengeSummary(nil), p.entries...)
}
