package challenge_service

import (
	"encoding/json"
	"fmt"
	"strings"
)

const challengeSchemaBlock = `The response should be a valid JSON object with the following structure:
{
  "id": "unique_identifier",
  "title": "Challenge Title",
  "description": "Detailed description of the problem",
  "examples": [
    {"input": "Example input", "output": "Example output", "explanation": "Optional explanation"}
  ],
  "difficulty": "easy|medium|hard",
  "hints": [
    "First hint that guides without giving away the solution",
    "Second hint that provides more direction"
  ]
}

Make sure the challenge:
1. Is clearly defined with unambiguous requirements
2. Has at least two examples with input and expected output
3. Has appropriate difficulty level
4. Includes 2-3 helpful hints that don't give away the solution
5. Is formatted as valid JSON
6. Is novel and different from previous challenges listed above
7. Specifically addresses the provided context or topic if specified

Return ONLY the JSON without any other text.`

// buildChallengePrompt renders the generation prompt. Pure string work,
// it never touches the network.
func buildChallengePrompt(
	difficulty Difficulty,
	topic string,
	language string,
	previous []PreviousChallengeSummary,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a unique, interesting coding interview challenge in %s. ", language)
	if difficulty != "" {
		fmt.Fprintf(&b, "The difficulty level should be %s.", difficulty)
	} else {
		b.WriteString("Choose a random difficulty level (easy, medium, or hard).")
	}
	if topic != "" {
		fmt.Fprintf(&b, " The challenge should relate to the following context or topic: %s.", topic)
	}
	b.WriteString("\n\n")

	if len(previous) > 0 {
		b.WriteString("Avoid generating challenges similar to these:\n")
		for i, prev := range previous {
			fmt.Fprintf(&b, "%d. %s: %s...\n", i+1, prev.Title, prev.DescriptionSnippet)
		}
		b.WriteString("\n")
	}

	b.WriteString(challengeSchemaBlock)
	return b.String()
}

// buildHintPrompt asks for one concise hint that does not reveal the
// solution, optionally grounded on the user's code so far.
func buildHintPrompt(challenge Challenge, currentCode string) string {
	var b strings.Builder

	b.WriteString("You are a helpful coding interview assistant.\n\n")
	fmt.Fprintf(&b, "Challenge: %s\n", challenge.Title)
	fmt.Fprintf(&b, "Description: %s\n\n", challenge.Description)
	fmt.Fprintf(&b, "Examples:\n%s\n", renderExamples(challenge.Examples))

	if currentCode != "" {
		b.WriteString("\nThe user has written the following code so far:\n")
		fmt.Fprintf(&b, "```\n%s\n```\n", currentCode)
	}

	b.WriteString("\nProvide a useful hint that will help the user solve the problem without giving away the complete solution.\n")
	b.WriteString("The hint should be concise and point them in the right direction.")
	return b.String()
}

// buildFeedbackPrompt asks for a structured review of a submitted
// solution plus a reference solution.
func buildFeedbackPrompt(challenge Challenge, code string, language string) string {
	var b strings.Builder

	b.WriteString("You are an expert coding interviewer reviewing a candidate's solution.\n\n")
	fmt.Fprintf(&b, "Challenge: %s\n", challenge.Title)
	fmt.Fprintf(&b, "Description: %s\n\n", challenge.Description)
	fmt.Fprintf(&b, "Examples:\n%s\n", renderExamples(challenge.Examples))

	fmt.Fprintf(&b, "\nThe candidate submitted this %s solution:\n", language)
	fmt.Fprintf(&b, "```%s\n%s\n```\n", language, code)

	b.WriteString(`
Provide structured constructive feedback about the solution. Include:
1. Whether the solution correctly solves the problem
2. Time and space complexity analysis
3. Code quality assessment
4. Possible optimizations or alternative approaches
5. Edge cases that might not be handled

Format your response in clear sections with Markdown formatting. After the feedback, please include
your solution to the problem in the same language for reference.`)
	return b.String()
}

func renderExamples(examples []ChallengeExample) string {
	if len(examples) == 0 {
		return "[]"
	}
	// examples came out of json in the first place, this cannot fail
	rendered, err := json.Marshal(examples)
	if err != nil {
		return "[]"
	}
	return string(rendered)
}
