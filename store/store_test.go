package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shinmen-coffee/catalog"
	"shinmen-coffee/models"
	"shinmen-coffee/storage"
	"shinmen-coffee/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC)

func newStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s := store.New(append([]store.Option{store.WithClock(func() time.Time { return fixedNow })}, opts...)...)
	s.SetMenu(catalog.Items())
	return s
}

func item(t *testing.T, id string) models.CoffeeItem {
	t.Helper()
	it, ok := catalog.Find(catalog.Items(), id)
	require.True(t, ok, id)
	return it
}

func assertAggregates(t *testing.T, s *store.Store) {
	t.Helper()
	st := s.State()
	assert.InDelta(t, models.CartTotal(st.Cart), st.CartTotal, 1e-9)
	assert.Equal(t, models.CartItemCount(st.Cart), st.CartItemCount)
	assert.InDelta(t, st.CartTotal, s.CartTotal(), 1e-9)
	assert.Equal(t, st.CartItemCount, s.CartItemCount())
}

func TestAddToCartMergesIdenticalLines(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")

	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	require.NoError(t, s.AddToCart(latte, latte.Customization.Clone(), 2))

	cart := s.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount)
	assert.InDelta(t, 16.50, cart.Total, 1e-9)
	assertAggregates(t, s)
}

func TestAddToCartDifferentCustomizationAddsLine(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")

	oat := latte.Customization.Clone()
	oat.Milk = models.MilkOat
	vanilla := latte.Customization.Clone()
	vanilla.Extras = []string{"vanilla"}

	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	require.NoError(t, s.AddToCart(latte, oat, 1))
	require.NoError(t, s.AddToCart(latte, vanilla, 1))

	cart := s.Cart()
	assert.Len(t, cart.Items, 3)
	assert.Equal(t, 3, cart.ItemCount)
	assertAggregates(t, s)
}

func TestAddToCartDefaultsAndRejects(t *testing.T) {
	s := newStore(t)
	espresso := item(t, "espresso-classic")

	require.NoError(t, s.AddToCart(espresso, espresso.Customization, 0))
	assert.Equal(t, 1, s.CartItemCount())

	assert.ErrorIs(t, s.AddToCart(espresso, espresso.Customization, -1), store.ErrInvalidQuantity)

	bad := espresso.Customization.Clone()
	bad.Strength = 11
	assert.ErrorIs(t, s.AddToCart(espresso, bad, 1), models.ErrInvalidCustomization)

	soldOut := espresso
	soldOut.Available = false
	assert.ErrorIs(t, s.AddToCart(soldOut, espresso.Customization, 1), store.ErrItemUnavailable)

	assert.Equal(t, 1, s.CartItemCount())
	assertAggregates(t, s)
}

func TestRemoveFromCartDropsAllLinesOfItem(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")
	mocha := item(t, "mocha-decadent")
	oat := latte.Customization.Clone()
	oat.Milk = models.MilkOat

	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	require.NoError(t, s.AddToCart(latte, oat, 2))
	require.NoError(t, s.AddToCart(mocha, mocha.Customization, 1))

	s.RemoveFromCart("latte-art")
	cart := s.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "mocha-decadent", cart.Items[0].Coffee.ID)
	assert.InDelta(t, 6.50, cart.Total, 1e-9)

	s.RemoveFromCart("unknown")
	assert.Len(t, s.Cart().Items, 1)
	assertAggregates(t, s)
}

func TestUpdateCartItem(t *testing.T) {
	s := newStore(t)
	brew := item(t, "cold-brew-smooth")
	require.NoError(t, s.AddToCart(brew, brew.Customization, 1))

	qty := 4
	note := "extra ice please"
	require.NoError(t, s.UpdateCartItem(brew.ID, store.CartUpdate{Quantity: &qty, SpecialInstructions: &note}))

	cart := s.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, note, cart.Items[0].SpecialInstructions)
	assert.InDelta(t, 24.0, cart.Total, 1e-9)
	assertAggregates(t, s)

	neg := -2
	assert.ErrorIs(t, s.UpdateCartItem(brew.ID, store.CartUpdate{Quantity: &neg}), store.ErrInvalidQuantity)
	assert.ErrorIs(t, s.UpdateCartItem("missing", store.CartUpdate{Quantity: &qty}), store.ErrLineNotFound)

	zero := 0
	require.NoError(t, s.UpdateCartItem(brew.ID, store.CartUpdate{Quantity: &zero}))
	assert.Empty(t, s.Cart().Items)
	assertAggregates(t, s)
}

func TestUpdateCartItemMergesEqualLines(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")
	mocha := item(t, "mocha-decadent")
	oat := latte.Customization.Clone()
	oat.Milk = models.MilkOat

	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	require.NoError(t, s.AddToCart(mocha, mocha.Customization, 1))
	require.NoError(t, s.AddToCart(latte, oat, 2))
	require.Len(t, s.Cart().Items, 3)

	whole := latte.Customization.Clone()
	require.NoError(t, s.UpdateCartItem(latte.ID, store.CartUpdate{Customizations: &whole}))

	cart := s.Cart()
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "latte-art", cart.Items[0].Coffee.ID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].Customizations.Equal(whole))
	assert.Equal(t, "mocha-decadent", cart.Items[1].Coffee.ID)
	assert.Equal(t, 4, cart.ItemCount)
	assert.InDelta(t, 3*5.50+6.50, cart.Total, 1e-9)
	assertAggregates(t, s)
}

func TestClearCartZeroesAggregates(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")
	require.NoError(t, s.AddToCart(latte, latte.Customization, 2))

	s.ClearCart()
	cart := s.Cart()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}

func TestCreateOrderEmptiesCartAndPrependsPendingOrder(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")
	espresso := item(t, "espresso-classic")

	_, err := s.CreateOrder("Main Street", "")
	require.ErrorIs(t, err, store.ErrEmptyCart)

	require.NoError(t, s.AddToCart(espresso, espresso.Customization, 1))
	first, err := s.CreateOrder("Main Street", "")
	require.NoError(t, err)

	require.NoError(t, s.AddToCart(latte, latte.Customization, 2))
	order, err := s.CreateOrder("Brew District", "no lid")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.InDelta(t, 11.0, order.Total, 1e-9)
	assert.Equal(t, fixedNow, order.OrderTime)
	assert.Equal(t, fixedNow.Add(15*time.Minute), order.EstimatedReadyTime)
	assert.Equal(t, "Brew District", order.PickupLocation)
	assert.Equal(t, "no lid", order.SpecialInstructions)
	assert.Contains(t, order.ID, "order-")
	assert.NotEqual(t, first.ID, order.ID)

	st := s.State()
	assert.Empty(t, st.Cart)
	assert.Zero(t, st.CartTotal)
	assert.Zero(t, st.CartItemCount)
	require.Len(t, st.OrderHistory, 2)
	assert.Equal(t, order.ID, st.OrderHistory[0].ID)
	assert.Equal(t, first.ID, st.OrderHistory[1].ID)
	require.NotNil(t, st.CurrentOrder)
	assert.Equal(t, order.ID, st.CurrentOrder.ID)
}

func TestCreateOrderCreditsSignedInUser(t *testing.T) {
	s := newStore(t)
	s.SetUser(models.UserProfile{ID: "u1", Name: "Ada"})

	mocha := item(t, "mocha-decadent")
	require.NoError(t, s.AddToCart(mocha, mocha.Customization, 2))
	_, err := s.CreateOrder("Main Street", "")
	require.NoError(t, err)

	st := s.State()
	require.NotNil(t, st.User)
	require.Len(t, st.User.OrderHistory, 1)
	// 13 for the order total plus 10 for first-sip
	assert.Equal(t, 23, st.User.LoyaltyPoints)

	var firstSip models.Achievement
	for _, a := range st.User.Achievements {
		if a.ID == store.AchievementFirstSip {
			firstSip = a
		}
	}
	assert.True(t, firstSip.Unlocked)
	require.NotNil(t, firstSip.UnlockedAt)
	assert.Equal(t, fixedNow, *firstSip.UnlockedAt)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newStore(t)
	s.SetUser(models.UserProfile{ID: "u1"})
	latte := item(t, "latte-art")
	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	order, err := s.CreateOrder("Main Street", "")
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		updated, err := s.UpdateOrderStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	st := s.State()
	assert.Equal(t, models.StatusCompleted, st.OrderHistory[0].Status)
	assert.Equal(t, models.StatusCompleted, st.CurrentOrder.Status)
	assert.Equal(t, models.StatusCompleted, st.User.OrderHistory[0].Status)

	_, err = s.UpdateOrderStatus(order.ID, models.StatusCancelled)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = s.UpdateOrderStatus("order-missing", models.StatusReady)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestLogoutClearsUserAndCart(t *testing.T) {
	s := newStore(t)
	s.SetUser(models.UserProfile{ID: "u1", Name: "Ada"})
	latte := item(t, "latte-art")
	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))

	s.Logout()
	st := s.State()
	assert.Nil(t, st.User)
	assert.False(t, st.IsAuthenticated)
	assert.Empty(t, st.Cart)
	assert.Zero(t, st.CartTotal)
	assert.Zero(t, st.CartItemCount)
}

func TestFilterMenu(t *testing.T) {
	s := newStore(t)

	got := s.FilterMenu(models.CategoryColdBrew, "")
	require.Len(t, got, 1)
	st := s.State()
	require.NotNil(t, st.SelectedCategory)
	assert.Equal(t, models.CategoryColdBrew, *st.SelectedCategory)

	got = s.FilterMenu(models.CategoryLatte, "espresso shot")
	assert.Empty(t, got)
	assert.NotNil(t, got)
	st = s.State()
	assert.Empty(t, st.FilteredMenu)
	assert.Equal(t, "espresso shot", st.SearchQuery)
	assert.Len(t, st.Menu, 6)

	got = s.FilterMenu(models.CategoryAll, "")
	assert.Len(t, got, 6)
	assert.Nil(t, s.State().SelectedCategory)
}

func TestFavoriteAndRecommendedDrinks(t *testing.T) {
	s := newStore(t)
	assert.Empty(t, s.FavoriteDrinks())
	assert.Empty(t, s.RecommendedDrinks())

	s.SetUser(models.UserProfile{Preferences: models.Preferences{FavoriteDrinks: []string{"americano-bold", "latte-art", "gone"}}})
	favs := s.FavoriteDrinks()
	require.Len(t, favs, 2)
	assert.Equal(t, "latte-art", favs[0].ID)
	assert.Equal(t, "americano-bold", favs[1].ID)

	menu := catalog.Items()
	s.SetAIRecommendations(models.AIRecommendations{
		PersonalizedDrinks:          menu[:3],
		SeasonalSuggestions:         menu[3:5],
		WeatherBasedRecommendations: menu,
		MoodBasedSuggestions:        menu,
	})
	recs := s.RecommendedDrinks()
	require.Len(t, recs, 6)
	assert.Equal(t, menu[4].ID, recs[4].ID)
	assert.Equal(t, menu[0].ID, recs[5].ID)
}

func TestAnimationAndUIState(t *testing.T) {
	s := newStore(t)
	assert.Equal(t, models.PerformanceHigh, s.State().Animations.PerformanceMode)

	s.QueueAnimation("fadeIn")
	s.QueueAnimation("slideUp")

	low := models.PerformanceLow
	on := true
	name := "fadeIn"
	require.NoError(t, s.SetAnimationState(models.AnimationUpdate{IsAnimating: &on, CurrentAnimation: &name, PerformanceMode: &low}))

	a := s.State().Animations
	assert.Equal(t, []string{"fadeIn", "slideUp"}, a.AnimationQueue)
	assert.True(t, a.IsAnimating)
	require.NotNil(t, a.CurrentAnimation)
	assert.Equal(t, "fadeIn", *a.CurrentAnimation)
	assert.Equal(t, models.PerformanceLow, a.PerformanceMode)

	bogus := models.PerformanceMode("ultra")
	assert.ErrorIs(t, s.SetAnimationState(models.AnimationUpdate{PerformanceMode: &bogus}), store.ErrInvalidMode)

	msg := "network hiccup"
	ui := s.SetUIState(models.UIUpdate{IsCartOpen: &on, Error: &msg})
	assert.True(t, ui.IsCartOpen)
	assert.False(t, ui.IsMenuOpen)
	require.NotNil(t, ui.Error)
	assert.Equal(t, msg, *ui.Error)

	ui = s.SetUIState(models.UIUpdate{ClearError: true})
	assert.Nil(t, ui.Error)
	assert.True(t, ui.IsCartOpen)
}

func TestStateIsACopy(t *testing.T) {
	s := newStore(t)
	latte := item(t, "latte-art")
	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))

	st := s.State()
	st.Cart[0].Quantity = 99
	st.Menu[0].Price = 0

	assert.Equal(t, 1, s.Cart().Items[0].Quantity)
	assert.Equal(t, 3.50, s.State().Menu[0].Price)
}

type failingRepo struct{}

func (failingRepo) LoadSnapshot(context.Context, string) (models.Snapshot, error) {
	return models.Snapshot{}, errors.New("boom")
}

func (failingRepo) SaveSnapshot(context.Context, models.Snapshot) error {
	return errors.New("boom")
}

func TestMirrorFailureDoesNotFailActions(t *testing.T) {
	s := newStore(t, store.WithSnapshots(failingRepo{}, "k"))
	s.SetUser(models.UserProfile{ID: "u1"})
	assert.True(t, s.State().IsAuthenticated)
}

func TestMirrorPersistsSubset(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryStore()
	key := store.SnapshotKey("sess-1")
	s := newStore(t, store.WithSnapshots(repo, key))

	s.SetUser(models.UserProfile{ID: "u1", Name: "Ada"})
	latte := item(t, "latte-art")
	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	order, err := s.CreateOrder("Main Street", "")
	require.NoError(t, err)
	s.QueueAnimation("pour")

	snap, err := repo.LoadSnapshot(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "shinmen-coffee-store:sess-1", snap.Key)
	assert.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Ada", snap.User.Name)
	require.Len(t, snap.OrderHistory, 1)
	assert.Equal(t, order.ID, snap.OrderHistory[0].ID)
	assert.Equal(t, []string{"pour"}, snap.Animations.AnimationQueue)
}
