package web

// Feature is a titled blurb on the about section
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Stat is a headline number on the about section
type Stat struct {
	Number string
	Label  string
}

// Experience is a tab of the interactive experience section
type Experience struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Features    []string
}

// ContactInfo is a card of the contact section
type ContactInfo struct {
	Icon    string
	Title   string
	Content string
	Action  string
}

// SocialLink is a footer link
type SocialLink struct {
	Name string
	Icon string
	URL  string
}

var features = []Feature{
	{Icon: "🌱", Title: "Sustainable Sourcing", Description: "We partner with ethical coffee farms that prioritize environmental stewardship and fair labor practices."},
	{Icon: "🔥", Title: "Artisanal Roasting", Description: "Our master roasters carefully craft each batch to bring out the unique characteristics of every bean."},
	{Icon: "🎨", Title: "Latte Artistry", Description: "Every cup is a canvas for our skilled baristas to create beautiful, Instagram-worthy latte art."},
	{Icon: "⚡", Title: "Innovation", Description: "We embrace cutting-edge brewing technology while honoring traditional coffee craftsmanship."},
}

var stats = []Stat{
	{Number: "15+", Label: "Years of Experience"},
	{Number: "50+", Label: "Coffee Varieties"},
	{Number: "10k+", Label: "Happy Customers"},
	{Number: "100%", Label: "Ethically Sourced"},
}

var experiences = []Experience{
	{
		ID: "virtual-tour", Icon: "🏭", Title: "Virtual Coffee Tour",
		Description: "Take an immersive 3D tour of our roastery and learn about our coffee journey from bean to cup.",
		Features:    []string{"360° Roastery View", "Interactive Learning", "Bean Origin Stories", "Roasting Process"},
	},
	{
		ID: "ai-recommendations", Icon: "🤖", Title: "AI Coffee Recommendations",
		Description: "Our intelligent system learns your preferences to suggest the perfect coffee for your mood and taste.",
		Features:    []string{"Personalized Suggestions", "Mood-Based Matching", "Weather Integration", "Taste Profiling"},
	},
	{
		ID: "latte-art-class", Icon: "🎨", Title: "Virtual Latte Art Class",
		Description: "Learn the art of latte decoration with our interactive tutorials and real-time feedback.",
		Features:    []string{"Step-by-Step Tutorials", "Real-time Feedback", "Pattern Library", "Progress Tracking"},
	},
	{
		ID: "coffee-journey", Icon: "🎮", Title: "Coffee Journey Game",
		Description: "Embark on a gamified adventure to discover coffee origins, brewing methods, and earn rewards.",
		Features:    []string{"Interactive Quests", "Achievement System", "Coffee Education", "Loyalty Rewards"},
	},
}

var contactInfo = []ContactInfo{
	{Icon: "📍", Title: "Visit Us", Content: "123 Coffee Street, Brew District, CA 90210", Action: "Get Directions"},
	{Icon: "📞", Title: "Call Us", Content: "+1 (555) 123-4567", Action: "Call Now"},
	{Icon: "✉️", Title: "Email Us", Content: "hello@shinmencoffee.com", Action: "Send Email"},
	{Icon: "🕒", Title: "Hours", Content: "Mon-Fri: 7AM-8PM\nSat-Sun: 8AM-9PM", Action: "View Menu"},
}

var socialLinks = []SocialLink{
	{Name: "Instagram", Icon: "📷", URL: "#"},
	{Name: "Facebook", Icon: "📘", URL: "#"},
	{Name: "Twitter", Icon: "🐦", URL: "#"},
	{Name: "YouTube", Icon: "📺", URL: "#"},
}
