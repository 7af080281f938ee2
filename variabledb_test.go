package variabledb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avitwil/variabledb/internal/testutil"
	"github.com/avitwil/variabledb/storage"
)

// newTestStore builds a store on an in-memory backend so tests never touch
// the filesystem unless they mean to.
func newTestStore(t *testing.T, env Env) *Store {
	t.Helper()
	s, err := New("test_store", env, func(o *Options) {
		o.Backend = storage.NewMemory()
	})
	require.NoError(t, err)
	return s
}

// -------------------- Construction Tests --------------------

func TestNew_RequiresEnv(t *testing.T) {
	s, err := New("vars", nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoEnv)
}

func TestNew_NormalizesFilename(t *testing.T) {
	s, err := New("vars", Env{}, func(o *Options) { o.Backend = storage.NewMemory() })
	require.NoError(t, err)
	assert.Equal(t, "vars.db", s.Path())

	s2, err := New("state.db", Env{}, func(o *Options) { o.Backend = storage.NewMemory() })
	require.NoError(t, err)
	assert.Equal(t, "state.db", s2.Path())
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, "vars.db", NormalizeFilename("vars"))
	assert.Equal(t, "vars.db", NormalizeFilename("vars.db"))
	assert.Equal(t, "dir/vars.db", NormalizeFilename("dir/vars"))
}

func TestNew_InitialSeedsEntries(t *testing.T) {
	seed := map[string]any{"a": 1, "b": "two"}
	s, err := New("seeded", Env{}, func(o *Options) {
		o.Backend = storage.NewMemory()
		o.Initial = seed
	})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Dirty())

	// the seed map was copied at construction
	seed["c"] = 3
	assert.False(t, s.Has("c"))
}

func TestNew_AssignsDistinctIDs(t *testing.T) {
	s1 := newTestStore(t, Env{})
	s2 := newTestStore(t, Env{})
	assert.NotEmpty(t, s1.ID())
	assert.NotEqual(t, s1.ID(), s2.ID())
}

func TestStore_String(t *testing.T) {
	s := newTestStore(t, Env{})
	require.NoError(t, s.Set("x", 1))
	assert.Equal(t, "Store(path=test_store.db, entries=1)", s.String())
}

// -------------------- Scoped Use Tests --------------------

func TestOpen_LoadsExistingSnapshot(t *testing.T) {
	backend := storage.NewMemory()

	first, err := New("shared", Env{}, func(o *Options) { o.Backend = backend })
	require.NoError(t, err)
	require.NoError(t, first.Set("greeting", "hello"))
	require.NoError(t, first.Save())

	env := Env{}
	second, err := Open("shared", env, func(o *Options) { o.Backend = backend })
	require.NoError(t, err)

	got, err := second.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "hello", env["greeting"])
}

func TestClose_SavesAndReleasesBackend(t *testing.T) {
	backend := &testutil.StubBackend{}
	s, err := New("closing", Env{}, func(o *Options) { o.Backend = backend })
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))

	require.NoError(t, s.Close())
	assert.Len(t, backend.Saved, 1)
	assert.Equal(t, 1, backend.Closed)
}

func TestClose_SavesEvenWhenClean(t *testing.T) {
	backend := &testutil.StubBackend{}
	s, err := New("clean", Env{}, func(o *Options) { o.Backend = backend })
	require.NoError(t, err)

	require.False(t, s.Dirty())
	require.NoError(t, s.Close())
	assert.Len(t, backend.Saved, 1)
}

func TestWith_SavesEvenWhenFnFails(t *testing.T) {
	backend := storage.NewMemory()
	boom := errors.New("boom")

	err := With("scoped", Env{}, func(s *Store) error {
		if err := s.Set("kept", true); err != nil {
			return err
		}
		return boom
	}, func(o *Options) { o.Backend = backend })
	assert.ErrorIs(t, err, boom)

	reopened, err := Open("scoped", Env{}, func(o *Options) { o.Backend = backend })
	require.NoError(t, err)
	assert.True(t, reopened.Has("kept"))
}

func TestWith_ReturnsOpenError(t *testing.T) {
	called := false
	err := With("scoped", nil, func(s *Store) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrNoEnv)
	assert.False(t, called)
}

func TestWith_SurfacesSaveError(t *testing.T) {
	boom := errors.New("disk gone")
	backend := &testutil.StubBackend{SaveErr: boom}

	err := With("scoped", Env{}, func(s *Store) error {
		return s.Set("k", 1)
	}, func(o *Options) { o.Backend = backend })
	assert.ErrorIs(t, err, boom)
}
