package llm

import "fmt"

const classifyTemplate = `You gate a feed that publishes technology news only. You receive the title and summary of one news item. Reply with exactly one token: TECH or NOT_TECH.
TECH covers software, hardware, AI and machine learning, chips, security, cloud, developer tools, web and mobile, VR/AR, enterprise IT, open source, consumer gadgets, telecom, data infrastructure, and robotics when the story is about products or the industry.
NOT_TECH covers general science, medicine, climate, astronomy, biology and space research unless the story is tied to a shipping technology product or platform.
Title: %s
Summary: %s
Answer:`

const draftTemplate = `Write a 600-850 word technology news article for a professional audience based on the item below. Focus on verified facts, product impact, developer relevance and industry context. Leave out general science angles.
Respond with a JSON object only, with exactly these keys:
- "title": a short, clear headline
- "excerpt": a 1-2 sentence summary
- "html": the article body using only <p>, <h2>, <ul> and <li> elements
Do not include scripts, images, iframes or any other external resources. Use plain ASCII characters only: straight quotes, hyphens instead of dashes, no emoji.

Source title: %s
Source summary: %s
Source link: %s`

func classifyPrompt(title, summary string) string {
	return fmt.Sprintf(classifyTemplate, title, summary)
}

func draftPrompt(title, summary, link string) string {
	return fmt.Sprintf(draftTemplate, title, summary, link)
}
