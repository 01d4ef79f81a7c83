package plantdoctor

import "strings"

type cannedAnswer struct {
	key   string
	reply string
}

// cannedAnswers is also the key set searched by the fuzzy stage.
var cannedAnswers = []cannedAnswer{
	{"greeting", "Hello! 👋 I’m your PlantDoctor 🌿. How can I help your plants today?"},
	{"thanks", "You're welcome! 😊 Keep your plants happy and healthy 🌻"},
	{"who are you", "I'm PlantDoctor, your AI gardening buddy! I help diagnose plant problems and share care tips."},

	{"yellow leaves", "🌿 Yellow leaves usually mean overwatering or lack of nitrogen. Let the soil dry before watering and add a balanced fertilizer."},
	{"brown spots", "🍂 Brown spots often indicate fungal infection. Remove infected leaves and apply a mild fungicide like neem oil."},
	{"wilting", "😞 Wilting might be from underwatering, heat stress, or root rot. Check soil moisture and avoid waterlogging."},
	{"white powder", "🌫️ White powder on leaves is powdery mildew. Increase air circulation and spray neem oil or baking soda solution."},
	{"leaf curling", "🌀 Leaf curling can occur due to pest attacks, over-fertilizing, or temperature stress."},
	{"dropping leaves", "🍃 Leaf drop can be caused by sudden temperature changes or lack of light. Keep the plant in a stable environment."},
	{"holes in leaves", "🐛 Holes usually mean pest activity like caterpillars or beetles. Inspect and remove pests manually or use neem spray."},
	{"sticky leaves", "🌸 Sticky leaves could mean aphids or mealybugs. Wipe them with soapy water and spray neem oil."},
	{"black spots", "⚫ Black spots on leaves may be a fungal disease. Remove affected parts and keep leaves dry."},
	{"brown tips", "🌾 Brown leaf tips often mean low humidity or too much fertilizer. Mist your plants or flush the soil with water."},

	{"fertilizer", "🧪 Use nitrogen-rich fertilizer for leafy plants and phosphorus-rich for flowering plants."},
	{"watering", "💧 Water when the top 2 inches of soil are dry. Avoid letting the plant sit in water."},
	{"sunlight", "☀️ Most indoor plants prefer indirect sunlight. Too much direct sun can scorch the leaves."},
	{"repotting", "🪴 Repot every 6–12 months or when roots start peeking through the bottom holes."},
	{"pruning", "✂️ Regular pruning helps plants grow fuller and removes dead parts."},
	{"temperature", "🌤️ Most houseplants thrive between 18–28°C. Avoid cold drafts or sudden changes."},
	{"humidity", "💦 Many tropical plants love humidity. Mist leaves or use a humidifier if air is dry."},
	{"soil", "🌱 Use well-draining soil. For succulents, use cactus mix; for flowering plants, use loamy soil."},
	{"lighting", "💡 Too little light causes leggy growth. Move your plant near a window with indirect sunlight."},

	{"aphids", "🪲 Aphids are tiny green pests that suck sap. Use neem oil or insecticidal soap weekly until gone."},
	{"mealybugs", "⚪ Mealybugs look like white cottony spots. Dab them with alcohol and spray neem oil."},
	{"spider mites", "🕷️ Spider mites cause yellow specks and fine webbing. Spray water mist daily and use miticide if needed."},
	{"fungus gnats", "🪰 Fungus gnats thrive in moist soil. Let soil dry and use sticky traps."},
	{"snails", "🐌 Snails and slugs eat leaves. Handpick them and keep soil dry."},

	{"winter care", "❄️ In winter, water less and move plants near light. Avoid cold drafts."},
	{"summer care", "☀️ In summer, increase watering and mist leaves more often."},
	{"rainy season", "🌧️ During rains, avoid overwatering and check for fungal growth."},

	{"joke", "😂 Why did the plant go to therapy? It had too many roots in its past!"},
	{"motivation", "💪 Keep going! Every leaf you save makes your plant proud of you 🌿"},
	{"love plants", "💚 Plants are pure magic! They bring peace, beauty, and oxygen."},
	{"bye", "👋 Goodbye! Keep your plants smiling and come back anytime 🌻"},
}

var unsureReplies = []string{
	"🤔 Hmm, I’m not sure about that. Can you describe what your plant looks like?",
	"🪴 Could you tell me more details — color, spots, or any insects?",
	"🌿 That’s interesting! Can you mention which plant it is?",
}

// intentRule fires when the lowered input contains any of anyOf and all of allOf.
type intentRule struct {
	answer string
	anyOf  []string
	allOf  []string
}

var intentRules = []intentRule{
	{answer: "greeting", anyOf: []string{"hi", "hello", "hey"}},
	{answer: "thanks", anyOf: []string{"thank"}},
	{answer: "who are you", anyOf: []string{"who are you", "your name"}},
	{answer: "bye", anyOf: []string{"bye", "goodbye"}},
	{answer: "joke", anyOf: []string{"joke"}},
	{answer: "motivation", anyOf: []string{"motivate", "motivation"}},
	{answer: "love plants", allOf: []string{"love", "plant"}},
}

func (rule intentRule) matches(lowered string) bool {
	for _, fragment := range rule.allOf {
		if !strings.Contains(lowered, fragment) {
			return false
		}
	}
	if len(rule.anyOf) == 0 {
		return true
	}
	for _, fragment := range rule.anyOf {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}

func cannedReply(key string) (string, bool) {
	for _, answer := range cannedAnswers {
		if answer.key == key {
			return answer.reply, true
		}
	}
	return "", false
}

func cannedKeys() []string {
	keys := make([]string, len(cannedAnswers))
	for index, answer := range cannedAnswers {
		keys[index] = answer.key
	}
	return keys
}
