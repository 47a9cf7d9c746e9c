package ai

import "fmt"

// QuotePrompt asks for a short motivational quote.
func QuotePrompt(topic string) string {
	return fmt.Sprintf("Give me a short motivational quote about %s.", topic)
}

// CareerDetailPrompt is the fallback when a title is not in the catalog.
func CareerDetailPrompt(title string) string {
	return fmt.Sprintf("Explain how to build a career in %s. List the steps, pitfalls, and resources.", title)
}

// CareerSuggestionsPrompt asks for six structured career suggestions.
func CareerSuggestionsPrompt(keyword string) string {
	return fmt.Sprintf(`
Suggest 6 career paths for someone interested in "%s".
Each with:
- title
- short description
- 3 steps to get started
- 2 pitfalls
- 2 free online resources

Respond ONLY as valid JSON array.
`, keyword)
}

// FailureStoriesPrompt asks for long-form comeback stories as a JSON array.
const FailureStoriesPrompt = "Generate 10 inspiring Indian stories of individuals who initially failed in education, UPSC, or business, " +
	"but later achieved significant success. Each story should be written in 3 to 4 paragraphs, not as bullet points. " +
	"Include realistic characters with background, failure, turning point, and final growth. Avoid using real names like 'Narendra Modi' or 'Ambani'. " +
	"Return the stories as a JSON array of objects with the keys: 'title', 'story', and optional 'tags'. " +
	"Each 'story' field should contain a well-written paragraph-style narrative. " +
	"Do not return markdown or code formatting."
