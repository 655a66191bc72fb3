// Package store holds the per-session shop state: cart, user, menu, orders and UI flags.
//
// Every action runs under the store lock and recomputes the derived cart aggregates in the
// same transition. Actions touching the persisted subset mirror a snapshot afterwards.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"shinmen-coffee/catalog"
	"shinmen-coffee/models"
	"shinmen-coffee/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StorageName prefixes every persisted snapshot key
const StorageName = "shinmen-coffee-store"

// maxRecommended caps the recommended drinks list
const maxRecommended = 6

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrItemUnavailable = errors.New("item is not available")
	ErrLineNotFound    = errors.New("item not in cart")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidMode     = errors.New("invalid performance mode")
)

// SnapshotKey is the persisted key for a session
func SnapshotKey(sessionID string) string {
	return StorageName + ":" + sessionID
}

// CartUpdate is a partial update of cart lines; nil fields are left untouched
type CartUpdate struct {
	Quantity            *int                        `json:"quantity"`
	Customizations      *models.CoffeeCustomization `json:"customizations"`
	SpecialInstructions *string                     `json:"special_instructions"`
}

// State is a point-in-time copy of the whole store
type State struct {
	Cart          []models.CartItem `json:"cart"`
	CartTotal     float64           `json:"cart_total"`
	CartItemCount int               `json:"cart_item_count"`

	User            *models.UserProfile `json:"user"`
	IsAuthenticated bool                `json:"is_authenticated"`

	Menu             []models.CoffeeItem `json:"menu"`
	FilteredMenu     []models.CoffeeItem `json:"filtered_menu"`
	SelectedCategory *models.Category    `json:"selected_category"`
	SearchQuery      string              `json:"search_query"`

	CurrentOrder *models.Order         `json:"current_order"`
	OrderHistory []models.Order        `json:"order_history"`
	Animations   models.AnimationState `json:"animations"`

	AIRecommendations models.AIRecommendations `json:"ai_recommendations"`
	UI                models.UIState           `json:"ui"`
}

// Store is the state of one session
type Store struct {
	mu    sync.Mutex
	key   string
	repo  storage.SnapshotRepository
	now   func() time.Time
	state State
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides time.Now for order timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSnapshots mirrors the persisted subset into repo under key
func WithSnapshots(repo storage.SnapshotRepository, key string) Option {
	return func(s *Store) {
		s.repo = repo
		s.key = key
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
		state: State{
			Cart:         []models.CartItem{},
			Menu:         []models.CoffeeItem{},
			FilteredMenu: []models.CoffeeItem{},
			OrderHistory: []models.Order{},
			Animations: models.AnimationState{
				AnimationQueue:  []string{},
				PerformanceMode: models.PerformanceHigh,
			},
			AIRecommendations: emptyRecommendations(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func emptyRecommendations() models.AIRecommendations {
	return models.AIRecommendations{
		PersonalizedDrinks:          []models.CoffeeItem{},
		SeasonalSuggestions:         []models.CoffeeItem{},
		WeatherBasedRecommendations: []models.CoffeeItem{},
		MoodBasedSuggestions:        []models.CoffeeItem{},
		TimeBasedRecommendations:    []models.CoffeeItem{},
	}
}

// Hydrate replaces the persisted subset with snap without mirroring it back
func (s *Store) Hydrate(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = cloneProfile(snap.User)
	s.state.IsAuthenticated = snap.IsAuthenticated
	s.state.OrderHistory = cloneOrders(snap.OrderHistory)
	if s.state.OrderHistory == nil {
		s.state.OrderHistory = []models.Order{}
	}
	s.state.Animations = cloneAnimations(snap.Animations)
	if !s.state.Animations.PerformanceMode.Valid() {
		s.state.Animations.PerformanceMode = models.PerformanceHigh
	}
}

// Snapshot returns the persisted subset of the current state
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		Key:             s.key,
		User:            cloneProfile(s.state.User),
		IsAuthenticated: s.state.IsAuthenticated,
		OrderHistory:    cloneOrders(s.state.OrderHistory),
		Animations:      cloneAnimations(s.state.Animations),
	}
}

// mirrorLocked writes the persisted subset. Failures are logged, never returned.
func (s *Store) mirrorLocked() {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.SaveSnapshot(ctx, s.snapshotLocked()); err != nil {
		log.Printf("store: mirror %s: %v", s.key, err)
	}
}

// recomputeLocked derives total and count from the current lines
func (s *Store) recomputeLocked() {
	s.state.CartTotal = models.CartTotal(s.state.Cart)
	s.state.CartItemCount = models.CartItemCount(s.state.Cart)
}

func (s *Store) clearCartLocked() {
	s.state.Cart = []models.CartItem{}
	s.state.CartTotal = 0
	s.state.CartItemCount = 0
}

// State returns a deep copy of the whole store
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Cart = cloneLines(st.Cart)
	st.User = cloneProfile(st.User)
	st.Menu = cloneItems(st.Menu)
	st.FilteredMenu = cloneItems(st.FilteredMenu)
	if st.SelectedCategory != nil {
		c := *st.SelectedCategory
		st.SelectedCategory = &c
	}
	if st.CurrentOrder != nil {
		o := cloneOrder(*st.CurrentOrder)
		st.CurrentOrder = &o
	}
	st.OrderHistory = cloneOrders(st.OrderHistory)
	st.Animations = cloneAnimations(st.Animations)
	st.AIRecommendations = cloneRecommendations(st.AIRecommendations)
	if st.UI.Error != nil {
		e := *st.UI.Error
		st.UI.Error = &e
	}
	return st
}

// Cart returns the lines with their derived total and count
func (s *Store) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Cart{
		Items:     cloneLines(s.state.Cart),
		Total:     s.state.CartTotal,
		ItemCount: s.state.CartItemCount,
	}
}

// AddToCart merges quantity into the line holding item with exactly customization,
// or appends a new line. A zero quantity adds one.
func (s *Store) AddToCart(item models.CoffeeItem, customization models.CoffeeCustomization, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		quantity = 1
	}
	if !item.Available {
		return fmt.Errorf("%w: %s", ErrItemUnavailable, item.ID)
	}
	if err := customization.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.state.Cart {
		if s.state.Cart[i].SameLine(item.ID, customization) {
			s.state.Cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.state.Cart = append(s.state.Cart, models.CartItem{
			Coffee:         catalog.Clone(item),
			Quantity:       quantity,
			Customizations: customization.Clone(),
		})
	}
	s.recomputeLocked()
	return nil
}

// RemoveFromCart drops every line of itemID
func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cart = slices.DeleteFunc(s.state.Cart, func(ci models.CartItem) bool {
		return ci.Coffee.ID == itemID
	})
	s.recomputeLocked()
}

// UpdateCartItem applies update to every line of itemID. A quantity of zero removes them,
// and lines left with equal customizations merge.
func (s *Store) UpdateCartItem(itemID string, update CartUpdate) error {
	if update.Quantity != nil && *update.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if update.Customizations != nil {
		if err := update.Customizations.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.state.Cart {
		line := &s.state.Cart[i]
		if line.Coffee.ID != itemID {
			continue
		}
		found = true
		if update.Quantity != nil {
			line.Quantity = *update.Quantity
		}
		if update.Customizations != nil {
			line.Customizations = update.Customizations.Clone()
		}
		if update.SpecialInstructions != nil {
			line.SpecialInstructions = *update.SpecialInstructions
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrLineNotFound, itemID)
	}
	s.state.Cart = slices.DeleteFunc(s.state.Cart, func(ci models.CartItem) bool {
		return ci.Quantity == 0
	})
	s.state.Cart = mergeLines(s.state.Cart)
	s.recomputeLocked()
	return nil
}

// mergeLines folds lines with the same item and customization into the first of them.
// The first line keeps its special instructions.
func mergeLines(lines []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, 0, len(lines))
	for _, line := range lines {
		i := slices.IndexFunc(merged, func(m models.CartItem) bool {
			return m.SameLine(line.Coffee.ID, line.Customizations)
		})
		if i < 0 {
			merged = append(merged, line)
			continue
		}
		merged[i].Quantity += line.Quantity
	}
	return merged
}

// ClearCart empties the cart
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

// SetUser signs a profile into the session
func (s *Store) SetUser(user models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = cloneProfile(&user)
	if s.state.User.OrderHistory == nil {
		s.state.User.OrderHistory = []models.Order{}
	}
	if s.state.User.Achievements == nil {
		s.state.User.Achievements = []models.Achievement{}
	}
	s.state.IsAuthenticated = true
	s.mirrorLocked()
}

// UpdatePreferences replaces the signed-in user's preferences. It reports false when no user is set.
func (s *Store) UpdatePreferences(prefs models.Preferences) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return false
	}
	s.state.User.Preferences = clonePreferences(prefs)
	s.mirrorLocked()
	return true
}

// Logout signs the user out and empties the cart
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = nil
	s.state.IsAuthenticated = false
	s.clearCartLocked()
	s.mirrorLocked()
}

// SetMenu replaces the menu and resets the filtered view to all of it
func (s *Store) SetMenu(menu []models.CoffeeItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Menu = cloneItems(menu)
	s.state.FilteredMenu = cloneItems(menu)
}

// FilterMenu recomputes the filtered menu and records the selection.
// An empty or "all" category is stored as no selection.
func (s *Store) FilterMenu(category models.Category, query string) []models.CoffeeItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.FilteredMenu = catalog.Filter(s.state.Menu, category, query)
	if category == "" || category == models.CategoryAll {
		s.state.SelectedCategory = nil
	} else {
		s.state.SelectedCategory = &category
	}
	s.state.SearchQuery = query
	return cloneItems(s.state.FilteredMenu)
}

// MenuItem looks up an item on the session menu
func (s *Store) MenuItem(id string) (models.CoffeeItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := catalog.Find(s.state.Menu, id)
	if !ok {
		return models.CoffeeItem{}, false
	}
	return catalog.Clone(item), true
}

// CreateOrder checks out the current cart as a pending order and empties the cart
func (s *Store) CreateOrder(pickupLocation, specialInstructions string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	now := s.now()
	lines := cloneLines(s.state.Cart)
	order := models.Order{
		ID:                  "order-" + primitive.NewObjectID().Hex(),
		Items:               lines,
		Total:               models.CartTotal(lines),
		Status:              models.StatusPending,
		OrderTime:           now,
		EstimatedReadyTime:  now.Add(models.ReadyAfter),
		PickupLocation:      pickupLocation,
		SpecialInstructions: specialInstructions,
	}

	current := cloneOrder(order)
	s.state.CurrentOrder = &current
	s.state.OrderHistory = append([]models.Order{cloneOrder(order)}, s.state.OrderHistory...)
	if s.state.User != nil {
		s.state.User.OrderHistory = append([]models.Order{cloneOrder(order)}, s.state.User.OrderHistory...)
		s.state.User.LoyaltyPoints += int(order.Total)
		awardAchievements(s.state.User, now)
	}
	s.clearCartLocked()
	s.mirrorLocked()
	return order, nil
}

// UpdateOrderStatus moves an order along its lifecycle wherever it is referenced
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.state.OrderHistory, func(o models.Order) bool { return o.ID == orderID })
	if idx < 0 {
		return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	order := &s.state.OrderHistory[idx]
	if err := order.Transition(status); err != nil {
		return models.Order{}, err
	}

	if s.state.CurrentOrder != nil && s.state.CurrentOrder.ID == orderID {
		s.state.CurrentOrder.Status = status
	}
	if s.state.User != nil {
		for i := range s.state.User.OrderHistory {
			if s.state.User.OrderHistory[i].ID == orderID {
				s.state.User.OrderHistory[i].Status = status
			}
		}
	}
	s.mirrorLocked()
	return cloneOrder(*order), nil
}

// Order looks up an order in the history
func (s *Store) Order(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.state.OrderHistory {
		if o.ID == orderID {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// SetAnimationState applies a partial animation update
func (s *Store) SetAnimationState(update models.AnimationUpdate) error {
	if update.PerformanceMode != nil && !update.PerformanceMode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, *update.PerformanceMode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := &s.state.Animations
	if update.IsAnimating != nil {
		a.IsAnimating = *update.IsAnimating
	}
	if update.CurrentAnimation != nil {
		name := *update.CurrentAnimation
		if name == "" {
			a.CurrentAnimation = nil
		} else {
			a.CurrentAnimation = &name
		}
	}
	if update.AnimationQueue != nil {
		a.AnimationQueue = slices.Clone(update.AnimationQueue)
	}
	if update.PerformanceMode != nil {
		a.PerformanceMode = *update.PerformanceMode
	}
	s.mirrorLocked()
	return nil
}

// QueueAnimation appends an animation to the queue
func (s *Store) QueueAnimation(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Animations.AnimationQueue = append(s.state.Animations.AnimationQueue, name)
	s.mirrorLocked()
}

// SetAIRecommendations replaces the recommendation lists
func (s *Store) SetAIRecommendations(recs models.AIRecommendations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AIRecommendations = cloneRecommendations(recs)
}

// SetUIState applies a partial UI update
func (s *Store) SetUIState(update models.UIUpdate) models.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	ui := &s.state.UI
	if update.IsMenuOpen != nil {
		ui.IsMenuOpen = *update.IsMenuOpen
	}
	if update.IsCartOpen != nil {
		ui.IsCartOpen = *update.IsCartOpen
	}
	if update.IsProfileOpen != nil {
		ui.IsProfileOpen = *update.IsProfileOpen
	}
	if update.IsLoading != nil {
		ui.IsLoading = *update.IsLoading
	}
	if update.ClearError {
		ui.Error = nil
	} else if update.Error != nil {
		e := *update.Error
		ui.Error = &e
	}
	out := *ui
	if out.Error != nil {
		e := *out.Error
		out.Error = &e
	}
	return out
}

// CartTotal re-derives the total from the current lines
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartTotal(s.state.Cart)
}

// CartItemCount re-derives the item count from the current lines
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartItemCount(s.state.Cart)
}

// FavoriteDrinks returns the menu items the signed-in user marked as favorites
func (s *Store) FavoriteDrinks() []models.CoffeeItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := []models.CoffeeItem{}
	if s.state.User == nil {
		return favorites
	}
	for _, item := range s.state.Menu {
		if slices.Contains(s.state.User.Preferences.FavoriteDrinks, item.ID) {
			favorites = append(favorites, catalog.Clone(item))
		}
	}
	return favorites
}

// RecommendedDrinks returns up to six personalized, seasonal and weather suggestions in that order
func (s *Store) RecommendedDrinks() []models.CoffeeItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.state.AIRecommendations
	all := slices.Concat(recs.PersonalizedDrinks, recs.SeasonalSuggestions, recs.WeatherBasedRecommendations)
	if len(all) > maxRecommended {
		all = all[:maxRecommended]
	}
	return cloneItems(all)
}
