package prefs

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/fontpref/whitelist"
)

func openMemory(t *testing.T, initial Preferences) (*Store, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage(initial)
	store, err := Open(storage)
	require.NoError(t, err)
	return store, storage
}

func TestUseFont(t *testing.T) {
	store, storage := openMemory(t, Preferences{})

	require.NoError(t, store.UseFont("  Inter  "))
	require.NoError(t, store.UseFont("Fira Code"))
	require.NoError(t, store.UseFont("Inter"))

	assert.Equal(t, "Inter", store.SelectedFont())
	assert.Equal(t, []string{"Inter", "Fira Code"}, store.RecentFonts())
	assert.Equal(t, 3, storage.Saves())

	saved, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "Inter", saved.SelectedFont)
}

func TestUseFont_Blank(t *testing.T) {
	store, storage := openMemory(t, Preferences{SelectedFont: "Inter"})

	assert.ErrorIs(t, store.UseFont("   "), ErrInvalidFontName)
	assert.Equal(t, "Inter", store.SelectedFont())
	assert.Zero(t, storage.Saves())
}

func TestUseFont_HistoryCap(t *testing.T) {
	store, _ := openMemory(t, Preferences{})

	for i := 0; i < 15; i++ {
		require.NoError(t, store.UseFont(fmt.Sprintf("Font %d", i)))
	}

	recent := store.RecentFonts()
	require.Len(t, recent, MaxRecentFonts)
	assert.Equal(t, "Font 14", recent[0])
	assert.Equal(t, "Font 5", recent[MaxRecentFonts-1])

	// Re-using an old entry moves it up without growing the list.
	require.NoError(t, store.UseFont("Font 5"))
	recent = store.RecentFonts()
	assert.Len(t, recent, MaxRecentFonts)
	assert.Equal(t, "Font 5", recent[0])
	assert.Equal(t, "Font 6", recent[MaxRecentFonts-1])
}

func TestRemoveRecentFont(t *testing.T) {
	tests := []struct {
		name         string
		initial      Preferences
		remove       string
		wantSelected string
		wantRecent   []string
	}{
		{
			name:         "selected font picks next",
			initial:      Preferences{SelectedFont: "A", RecentFonts: []string{"A", "B", "C"}},
			remove:       "A",
			wantSelected: "B",
			wantRecent:   []string{"B", "C"},
		},
		{
			name:         "other font keeps selection",
			initial:      Preferences{SelectedFont: "A", RecentFonts: []string{"A", "B"}},
			remove:       "B",
			wantSelected: "A",
			wantRecent:   []string{"A"},
		},
		{
			name:         "last font resets to system",
			initial:      Preferences{SelectedFont: "A", RecentFonts: []string{"A"}},
			remove:       "A",
			wantSelected: "",
			wantRecent:   []string{},
		},
		{
			name:         "empty history resets stale selection",
			initial:      Preferences{SelectedFont: "Z", RecentFonts: []string{"A"}},
			remove:       "A",
			wantSelected: "",
			wantRecent:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := openMemory(t, tt.initial)
			require.NoError(t, store.RemoveRecentFont(tt.remove))
			assert.Equal(t, tt.wantSelected, store.SelectedFont())
			assert.ElementsMatch(t, tt.wantRecent, store.RecentFonts())
		})
	}
}

func TestResetToSystemFont(t *testing.T) {
	store, _ := openMemory(t, Preferences{
		SelectedFont:     "Inter",
		RecentFonts:      []string{"Inter", "Fira Code"},
		WhitelistDomains: []string{"example.com"},
		Language:         "de",
	})

	require.NoError(t, store.ResetToSystemFont())

	snap := store.Snapshot()
	assert.Empty(t, snap.SelectedFont)
	assert.Empty(t, snap.RecentFonts)
	assert.Equal(t, []string{"example.com"}, snap.WhitelistDomains)
	assert.Equal(t, "de", snap.Language)
}

func TestLanguage(t *testing.T) {
	store, _ := openMemory(t, Preferences{})
	assert.Empty(t, store.Language())

	require.NoError(t, store.SetLanguage("zh-HK"))
	assert.Equal(t, "zh-HK", store.Language())
}

func TestDomains(t *testing.T) {
	store, _ := openMemory(t, Preferences{})

	d, err := store.AddDomain("https://www.Example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "example.com", d)

	_, err = store.AddDomain("example.com")
	assert.ErrorIs(t, err, ErrDuplicateDomain)

	_, err = store.AddDomain("nonsense")
	assert.ErrorIs(t, err, whitelist.ErrInvalidDomain)

	_, err = store.AddDomain("github.io")
	require.NoError(t, err)

	assert.Equal(t, []string{"example.com", "github.io"}, store.Domains())

	require.NoError(t, store.RemoveDomain("example.com"))
	require.NoError(t, store.RemoveDomain("not-listed.org"))
	assert.Equal(t, []string{"github.io"}, store.Domains())
}

func TestShouldApplyFont(t *testing.T) {
	store, _ := openMemory(t, Preferences{WhitelistDomains: []string{"example.com"}})

	assert.False(t, store.ShouldApplyFont("news.site.org"), "no font selected")

	require.NoError(t, store.UseFont("Inter"))
	assert.True(t, store.ShouldApplyFont("news.site.org"))
	assert.False(t, store.ShouldApplyFont("example.com"))
	assert.False(t, store.ShouldApplyFont("mail.example.com"))
	assert.True(t, store.ShouldApplyFont("notexample.com"))
}

type failingStorage struct {
	MemoryStorage
	err error
}

func (f *failingStorage) Save(Preferences) error { return f.err }

func TestUpdate_SaveFailureKeepsState(t *testing.T) {
	storage := &failingStorage{err: errors.New("disk full")}
	store, err := Open(storage)
	require.NoError(t, err)

	err = store.UseFont("Inter")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.err)
	assert.Empty(t, store.SelectedFont())
	assert.Empty(t, store.RecentFonts())
}

func TestStore_Concurrent(t *testing.T) {
	store, _ := openMemory(t, Preferences{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.UseFont(fmt.Sprintf("Font %d", i%12))
			_ = store.ShouldApplyFont("example.com")
		}(i)
	}
	wg.Wait()

	recent := store.RecentFonts()
	assert.LessOrEqual(t, len(recent), MaxRecentFonts)
	assert.Equal(t, store.SelectedFont(), recent[0])

	seen := map[string]bool{}
	for _, f := range recent {
		assert.False(t, seen[f], "duplicate %q", f)
		seen[f] = true
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	store, _ := openMemory(t, Preferences{RecentFonts: []string{"A"}})

	snap := store.Snapshot()
	snap.RecentFonts[0] = "mutated"

	assert.Equal(t, []string{"A"}, store.RecentFonts())
}
