package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shinmen-coffee/models"
	"shinmen-coffee/storage"
	"shinmen-coffee/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReusesSessions(t *testing.T) {
	ctx := context.Background()
	r := store.NewRegistry(nil)

	a, err := r.Session(ctx, "a")
	require.NoError(t, err)
	again, err := r.Session(ctx, "a")
	require.NoError(t, err)
	b, err := r.Session(ctx, "b")
	require.NoError(t, err)

	assert.Same(t, a, again)
	assert.NotSame(t, a, b)
	assert.Len(t, a.State().Menu, 6)
}

func TestRegistryHydratesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryStore()

	first := store.NewRegistry(repo)
	s, err := first.Session(ctx, "sess")
	require.NoError(t, err)
	s.SetUser(models.UserProfile{ID: "u1", Name: "Ada"})
	latte, _ := s.MenuItem("latte-art")
	require.NoError(t, s.AddToCart(latte, latte.Customization, 1))
	order, err := s.CreateOrder("Main Street", "")
	require.NoError(t, err)

	// a fresh registry stands in for a restarted process
	second := store.NewRegistry(repo)
	restored, err := second.Session(ctx, "sess")
	require.NoError(t, err)

	st := restored.State()
	assert.True(t, st.IsAuthenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "Ada", st.User.Name)
	require.Len(t, st.OrderHistory, 1)
	assert.Equal(t, order.ID, st.OrderHistory[0].ID)
	// cart and current order are not persisted
	assert.Empty(t, st.Cart)
	assert.Nil(t, st.CurrentOrder)

	require.NoError(t, second.UpdateOrderStatus(ctx, "sess", order.ID, models.StatusPreparing))
	got, ok := restored.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusPreparing, got.Status)
}

// gatedRepo blocks snapshot loads of one key until release is closed
type gatedRepo struct {
	*storage.MemoryStore
	gated   string
	started chan struct{}
	release chan struct{}
	loads   atomic.Int32
}

func newGatedRepo(gated string) *gatedRepo {
	return &gatedRepo{
		MemoryStore: storage.NewMemoryStore(),
		gated:       gated,
		started:     make(chan struct{}, 16),
		release:     make(chan struct{}),
	}
}

func (g *gatedRepo) LoadSnapshot(ctx context.Context, key string) (models.Snapshot, error) {
	if key == store.SnapshotKey(g.gated) {
		g.loads.Add(1)
		g.started <- struct{}{}
		<-g.release
	}
	return g.MemoryStore.LoadSnapshot(ctx, key)
}

func TestRegistryServesCachedSessionsDuringSlowLoad(t *testing.T) {
	ctx := context.Background()
	repo := newGatedRepo("slow-session")
	r := store.NewRegistry(repo)

	warm, err := r.Session(ctx, "warm-session")
	require.NoError(t, err)

	loaded := make(chan error, 1)
	go func() {
		_, err := r.Session(ctx, "slow-session")
		loaded <- err
	}()
	<-repo.started

	got := make(chan *store.Store, 1)
	go func() {
		s, _ := r.Session(ctx, "warm-session")
		got <- s
	}()
	select {
	case s := <-got:
		assert.Same(t, warm, s)
	case <-time.After(time.Second):
		t.Fatal("cached session blocked behind another session's load")
	}

	close(repo.release)
	require.NoError(t, <-loaded)
}

func TestRegistrySharesConcurrentFirstLoad(t *testing.T) {
	ctx := context.Background()
	repo := newGatedRepo("sess")
	r := store.NewRegistry(repo)

	const callers = 8
	results := make([]*store.Store, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := r.Session(ctx, "sess")
			assert.NoError(t, err)
			results[i] = s
		}()
	}
	<-repo.started
	// let the other callers pile up on the in-flight load
	time.Sleep(50 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	for _, s := range results {
		assert.Same(t, results[0], s)
	}
	assert.Equal(t, int32(1), repo.loads.Load())
	assert.Equal(t, 1, r.Len())
}

func TestRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryStore()
	r := store.NewBoundedRegistry(repo, 2)

	a, err := r.Session(ctx, "sess-a")
	require.NoError(t, err)
	a.SetUser(models.UserProfile{ID: "u1", Name: "Ada"})
	latte, _ := a.MenuItem("latte-art")
	require.NoError(t, a.AddToCart(latte, latte.Customization, 1))
	order, err := a.CreateOrder("Main Street", "")
	require.NoError(t, err)
	require.NoError(t, a.AddToCart(latte, latte.Customization, 2))

	for _, id := range []string{"sess-b", "sess-c", "sess-d"} {
		_, err := r.Session(ctx, id)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, r.Len())

	restored, err := r.Session(ctx, "sess-a")
	require.NoError(t, err)
	assert.NotSame(t, a, restored)

	st := restored.State()
	assert.True(t, st.IsAuthenticated)
	require.NotNil(t, st.User)
	assert.Equal(t, "Ada", st.User.Name)
	require.Len(t, st.OrderHistory, 1)
	assert.Equal(t, order.ID, st.OrderHistory[0].ID)
	// the cart lives only in memory
	assert.Empty(t, st.Cart)
	assert.Zero(t, st.CartItemCount)
}

func TestRegistryOrderStatus(t *testing.T) {
	ctx := context.Background()
	r := store.NewRegistry(nil)
	s, err := r.Session(ctx, "sess")
	require.NoError(t, err)
	mocha, _ := s.MenuItem("mocha-decadent")
	require.NoError(t, s.AddToCart(mocha, mocha.Customization, 1))
	order, err := s.CreateOrder("Main Street", "")
	require.NoError(t, err)

	status, err := r.OrderStatus(ctx, "sess", order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, status)

	_, err = r.OrderStatus(ctx, "sess", "order-missing")
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
