package challenge_service

import (
	"strings"
	"testing"
)

func TestBuildChallengePromptDifficultyDirective(t *testing.T) {
	prompt := buildChallengePrompt(DifficultyHard, "", "go", nil)
	if !strings.Contains(prompt, "The difficulty level should be hard.") {
		t.Errorf("explicit difficulty directive missing from prompt:\n%s", prompt)
	}

	prompt = buildChallengePrompt("", "", "go", nil)
	if !strings.Contains(prompt, "Choose a random difficulty level (easy, medium, or hard).") {
		t.Errorf("random difficulty directive missing from prompt:\n%s", prompt)
	}
}

func TestBuildChallengePromptTopicAndLanguage(t *testing.T) {
	prompt := buildChallengePrompt(DifficultyEasy, "binary trees", "python", nil)
	if !strings.Contains(prompt, "coding interview challenge in python") {
		t.Errorf("language missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "The challenge should relate to the following context or topic: binary trees.") {
		t.Errorf("topic directive missing from prompt:\n%s", prompt)
	}
}

func TestBuildChallengePromptEnumeratesPreviousChallenges(t *testing.T) {
	previous := []PreviousChallengeSummary{
		{Title: "Two Sum", DescriptionSnippet: "Find two numbers"},
		{Title: "LRU Cache", DescriptionSnippet: "Design a cache"},
	}

	prompt := buildChallengePrompt("", "", "javascript", previous)
	if !strings.Contains(prompt, "Avoid generating challenges similar to these:") {
		t.Errorf("anti repetition block missing from prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "1. Two Sum: Find two numbers...") {
		t.Errorf("first previous challenge not enumerated:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2. LRU Cache: Design a cache...") {
		t.Errorf("second previous challenge not enumerated:\n%s", prompt)
	}

	// without any previous challenges the block is absent
	prompt = buildChallengePrompt("", "", "javascript", nil)
	if strings.Contains(prompt, "Avoid generating challenges") {
		t.Errorf("anti repetition block present without previous challenges:\n%s", prompt)
	}
}

func TestBuildHintPrompt(t *testing.T) {
	challenge := Challenge{
		Title:       "Two Sum",
		Description: "Find two numbers that add up to target.",
		Examples:    []ChallengeExample{{Input: "[1,2], 3", Output: "[0,1]"}},
	}

	prompt := buildHintPrompt(challenge, "")
	if !strings.Contains(prompt, "Challenge: Two Sum") {
		t.Errorf("challenge title missing from hint prompt:\n%s", prompt)
	}
	if strings.Contains(prompt, "written the following code") {
		t.Errorf("code block present without current code:\n%s", prompt)
	}

	prompt = buildHintPrompt(challenge, "function twoSum() {}")
	if !strings.Contains(prompt, "The user has written the following code so far:") {
		t.Errorf("code context missing from hint prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "function twoSum() {}") {
		t.Errorf("current code missing from hint prompt:\n%s", prompt)
	}
}

func TestBuildFeedbackPrompt(t *testing.T) {
	challenge := Challenge{
		Title:       "Two Sum",
		Description: "Find two numbers that add up to target.",
	}

	prompt := buildFeedbackPrompt(challenge, "def solve(): pass", "python")
	if !strings.Contains(prompt, "submitted this python solution") {
		t.Errorf("language missing from feedback prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "def solve(): pass") {
		t.Errorf("submitted code missing from feedback prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Time and space complexity analysis") {
		t.Errorf("structured critique directives missing from feedback prompt:\n%s", prompt)
	}
}
