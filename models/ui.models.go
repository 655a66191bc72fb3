package models

// PerformanceMode trades animation richness for speed
type PerformanceMode string

const (
	PerformanceHigh   PerformanceMode = "high"
	PerformanceMedium PerformanceMode = "medium"
	PerformanceLow    PerformanceMode = "low"
)

// Valid reports whether m is a known mode
func (m PerformanceMode) Valid() bool {
	return m == PerformanceHigh || m == PerformanceMedium || m == PerformanceLow
}

// AnimationState tracks the page's animation queue
type AnimationState struct {
	IsAnimating      bool            `bson:"is_animating" json:"is_animating"`
	CurrentAnimation *string         `bson:"current_animation" json:"current_animation"`
	AnimationQueue   []string        `bson:"animation_queue" json:"animation_queue"`
	PerformanceMode  PerformanceMode `bson:"performance_mode" json:"performance_mode"`
}

// AnimationUpdate is a partial update; nil fields are left untouched
type AnimationUpdate struct {
	IsAnimating      *bool            `json:"is_animating"`
	CurrentAnimation *string          `json:"current_animation"`
	AnimationQueue   []string         `json:"animation_queue"`
	PerformanceMode  *PerformanceMode `json:"performance_mode"`
}

// AIRecommendations holds suggested drinks. Nothing fills it server side.
type AIRecommendations struct {
	PersonalizedDrinks          []CoffeeItem `json:"personalized_drinks"`
	SeasonalSuggestions         []CoffeeItem `json:"seasonal_suggestions"`
	WeatherBasedRecommendations []CoffeeItem `json:"weather_based_recommendations"`
	MoodBasedSuggestions        []CoffeeItem `json:"mood_based_suggestions"`
	TimeBasedRecommendations    []CoffeeItem `json:"time_based_recommendations"`
}

// UIState holds the page's open panels and status flags
type UIState struct {
	IsMenuOpen    bool    `json:"is_menu_open"`
	IsCartOpen    bool    `json:"is_cart_open"`
	IsProfileOpen bool    `json:"is_profile_open"`
	IsLoading     bool    `json:"is_loading"`
	Error         *string `json:"error"`
}

// UIUpdate is a partial update; nil fields are left untouched.
// ClearError resets Error to null.
type UIUpdate struct {
	IsMenuOpen    *bool   `json:"is_menu_open"`
	IsCartOpen    *bool   `json:"is_cart_open"`
	IsProfileOpen *bool   `json:"is_profile_open"`
	IsLoading     *bool   `json:"is_loading"`
	Error         *string `json:"error"`
	ClearError    bool    `json:"clear_error"`
}

// Snapshot is the subset of session state that survives restarts
type Snapshot struct {
	Key             string         `bson:"_id" json:"key"`
	User            *UserProfile   `bson:"user" json:"user"`
	IsAuthenticated bool           `bson:"is_authenticated" json:"is_authenticated"`
	OrderHistory    []Order        `bson:"order_history" json:"order_history"`
	Animations      AnimationState `bson:"animations" json:"animations"`
}

// ContactMessage is a submission of the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
