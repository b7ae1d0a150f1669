// Package content holds the fixed copy shared by the relay service and the
// chat client: the assistant persona, the widget greeting and apology, the
// sample questions and the default FAQ.
package content

import "greyhound-backend/internal/models"

const (
	// Persona is the system instruction prepended to every upstream request.
	Persona = "You are a helpful assistant for a greyhound sanctuary website. " +
		"Provide friendly and accurate information about greyhound breeds, adoption, and care. " +
		"Format your responses using Markdown (including bold, lists, etc.) to make them easy to read, " +
		"but keep your responses concise and to the point. " +
		"Ensure all formatting is valid markdown that can be rendered properly."

	Greeting = "Hello! I'm the Greyhound Assistant. How can I help you today? " +
		"Feel free to ask about greyhound care, adoption, or characteristics."

	Apology = "Sorry, I'm unable to answer your question at the moment. Please try again later."

	AssistantName = "Greyhound Assistant"
)

// SampleQuestions seed a fresh conversation.
var SampleQuestions = []string{
	"How long do greyhounds live?",
	"Are greyhounds good with children?",
	"What makes greyhounds unique as pets?",
	"How much exercise do greyhounds need?",
}

var DefaultFAQ = []models.FAQItem{
	{
		Question: "How long do greyhounds live?",
		Answer:   "Greyhounds typically live 12-14 years with proper care, nutrition, and regular veterinary check-ups. Some even live into their mid-teens!",
	},
	{
		Question: "Are greyhounds good with children?",
		Answer:   "Yes! Greyhounds are known for their gentle, patient nature. They're often called '45-mile-per-hour couch potatoes' and make excellent family dogs. Their calm temperament makes them great companions for children.",
	},
	{
		Question: "What makes greyhounds unique as pets?",
		Answer:   "Greyhounds are surprisingly lazy despite their racing history. They're quiet, clean, and rarely bark. They have short coats that require minimal grooming, and they're often content with a comfortable couch and daily walks.",
	},
	{
		Question: "How much exercise do greyhounds need?",
		Answer:   "Contrary to popular belief, greyhounds are sprinters, not endurance runners. They only need 20-30 minutes of exercise per day. A short walk or a quick sprint in a fenced area is usually sufficient. Most of the time, they're happy lounging around the house!",
	},
	{
		Question: "Do greyhounds get along with other pets?",
		Answer:   "Many greyhounds can live peacefully with other dogs and even cats, especially if they've been properly introduced. Some retired racers may have a high prey drive, so it's important to work with adoption organizations to find the right match for your household.",
	},
	{
		Question: "What special care do greyhounds need?",
		Answer:   "Greyhounds need soft bedding due to their lack of body fat and thin coats. They're sensitive to extreme temperatures, so they need coats in cold weather and air conditioning in hot weather. Regular dental care is also important for their overall health.",
	},
}

// FAQ returns a copy of the default FAQ items.
func FAQ() []models.FAQItem {
	items := make([]models.FAQItem, len(DefaultFAQ))
	copy(items, DefaultFAQ)
	return items
}

// Suggestions returns a copy of the sample questions.
func Suggestions() []string {
	out := make([]string, len(SampleQuestions))
	copy(out, SampleQuestions)
	return out
}
