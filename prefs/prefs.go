// Package prefs stores the user's font preferences: the selected font, the
// recently used fonts, the interface language and the site whitelist.
//
// A [Store] keeps the preferences in memory and writes every change through
// to a [Storage] backend:
//
//	store, err := prefs.Open(prefs.NewFileStorage(path))
//	if err != nil {
//	    // handle error
//	}
//	err = store.UseFont("Inter")
//	apply := store.ShouldApplyFont("mail.example.com")
package prefs

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/tsawler/fontpref/logging"
	"github.com/tsawler/fontpref/whitelist"
)

// MaxRecentFonts is the length limit of the recent font history.
const MaxRecentFonts = 10

var (
	// ErrInvalidFontName is returned when a blank font name is used.
	ErrInvalidFontName = errors.New("prefs: invalid font name")

	// ErrDuplicateDomain is returned when a domain is already whitelisted.
	ErrDuplicateDomain = errors.New("prefs: domain already in whitelist")
)

// Preferences is the persisted state. An empty SelectedFont means the
// system font is used.
type Preferences struct {
	SelectedFont     string   `yaml:"selected_font,omitempty"`
	RecentFonts      []string `yaml:"recent_fonts,omitempty"`
	Language         string   `yaml:"language,omitempty"`
	WhitelistDomains []string `yaml:"whitelist_domains,omitempty"`
}

// Clone returns a deep copy of p.
func (p Preferences) Clone() Preferences {
	p.RecentFonts = slices.Clone(p.RecentFonts)
	p.WhitelistDomains = slices.Clone(p.WhitelistDomains)
	return p
}

// Storage loads and saves preferences.
type Storage interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// Store gives concurrent-safe access to preferences backed by a Storage.
type Store struct {
	mu      sync.Mutex
	storage Storage
	prefs   Preferences
}

// Open loads the preferences from storage.
func Open(storage Storage) (*Store, error) {
	p, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return &Store{storage: storage, prefs: p}, nil
}

// update applies fn to a copy of the preferences and saves it. The in-memory
// state only changes when the save succeeds.
func (s *Store) update(fn func(p *Preferences) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.prefs.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	if err := s.storage.Save(next); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	s.prefs = next
	return nil
}

// Snapshot returns a copy of the current preferences.
func (s *Store) Snapshot() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Clone()
}

// SelectedFont returns the selected font, or "" for the system font.
func (s *Store) SelectedFont() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.SelectedFont
}

// RecentFonts returns the font history, most recent first.
func (s *Store) RecentFonts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.prefs.RecentFonts)
}

// UseFont selects name and moves it to the front of the recent font history.
func (s *Store) UseFont(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidFontName
	}

	return s.update(func(p *Preferences) error {
		p.SelectedFont = name
		p.RecentFonts = pushRecent(p.RecentFonts, name)
		logging.Logger().Debug("font selected", "font", name, "recent", len(p.RecentFonts))
		return nil
	})
}

// pushRecent puts name first, drops its older occurrence and trims the
// history to MaxRecentFonts.
func pushRecent(recent []string, name string) []string {
	out := make([]string, 0, min(len(recent)+1, MaxRecentFonts))
	out = append(out, name)
	for _, f := range recent {
		if len(out) == MaxRecentFonts {
			break
		}
		if f != name {
			out = append(out, f)
		}
	}
	return out
}

// RemoveRecentFont drops name from the history. If it was the selected font
// the next most recent one is selected. Once the history is empty the
// system font is used.
func (s *Store) RemoveRecentFont(name string) error {
	return s.update(func(p *Preferences) error {
		p.RecentFonts = slices.DeleteFunc(p.RecentFonts, func(f string) bool { return f == name })

		switch {
		case p.SelectedFont == name && len(p.RecentFonts) > 0:
			p.SelectedFont = p.RecentFonts[0]
		case len(p.RecentFonts) == 0:
			p.SelectedFont = ""
		}
		return nil
	})
}

// ResetToSystemFont clears the selected font and the history.
func (s *Store) ResetToSystemFont() error {
	return s.update(func(p *Preferences) error {
		p.SelectedFont = ""
		p.RecentFonts = nil
		return nil
	})
}

// Language returns the stored interface language, or "" if none was saved.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Language
}

// SetLanguage stores the interface language.
func (s *Store) SetLanguage(lang string) error {
	return s.update(func(p *Preferences) error {
		p.Language = lang
		return nil
	})
}

// Domains returns the whitelisted domains in insertion order.
func (s *Store) Domains() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.prefs.WhitelistDomains)
}

// AddDomain normalizes input (a domain or URL) and appends it to the
// whitelist. It returns the stored domain.
func (s *Store) AddDomain(input string) (string, error) {
	domain, err := whitelist.Normalize(input)
	if err != nil {
		return "", err
	}

	err = s.update(func(p *Preferences) error {
		if slices.Contains(p.WhitelistDomains, domain) {
			return fmt.Errorf("%w: %s", ErrDuplicateDomain, domain)
		}
		p.WhitelistDomains = append(p.WhitelistDomains, domain)
		return nil
	})
	if err != nil {
		return "", err
	}
	return domain, nil
}

// RemoveDomain removes domain from the whitelist. Removing a domain that is
// not listed is not an error.
func (s *Store) RemoveDomain(domain string) error {
	return s.update(func(p *Preferences) error {
		p.WhitelistDomains = slices.DeleteFunc(p.WhitelistDomains, func(d string) bool { return d == domain })
		return nil
	})
}

// ShouldApplyFont reports whether the selected font should be applied to a
// page on hostname: a font must be selected and the host not whitelisted.
func (s *Store) ShouldApplyFont(hostname string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prefs.SelectedFont == "" {
		return false
	}
	return !whitelist.Match(s.prefs.WhitelistDomains, hostname)
}
