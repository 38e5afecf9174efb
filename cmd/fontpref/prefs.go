package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/tsawler/fontpref/i18n"
	"github.com/tsawler/fontpref/style"
	"github.com/tsawler/fontpref/whitelist"
)

// UseCmd selects a font by name.
type UseCmd struct {
	Name string `arg:"" help:"Font family name."`
}

func (c *UseCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	if err := store.UseFont(c.Name); err != nil {
		return err
	}
	fmt.Fprintln(out, store.SelectedFont())
	return nil
}

// RecentCmd lists or edits the recent font history.
type RecentCmd struct {
	List   RecentListCmd   `cmd:"" default:"1" help:"List recent fonts, most recent first."`
	Remove RecentRemoveCmd `cmd:"" help:"Remove a font from the history."`
}

type RecentListCmd struct{}

func (c *RecentListCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}

	selected := store.SelectedFont()
	for _, f := range store.RecentFonts() {
		marker := " "
		if f == selected {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, f)
	}
	return nil
}

type RecentRemoveCmd struct {
	Name string `arg:"" help:"Font family name."`
}

func (c *RecentRemoveCmd) Run(g *Globals) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	return store.RemoveRecentFont(c.Name)
}

// ResetCmd restores the system font.
type ResetCmd struct{}

func (c *ResetCmd) Run(g *Globals) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	return store.ResetToSystemFont()
}

// WhitelistCmd manages the site whitelist.
type WhitelistCmd struct {
	List   WhitelistListCmd   `cmd:"" default:"1" help:"List whitelisted domains."`
	Add    WhitelistAddCmd    `cmd:"" help:"Whitelist a domain or URL."`
	Remove WhitelistRemoveCmd `cmd:"" help:"Remove a domain from the whitelist."`
}

type WhitelistListCmd struct{}

func (c *WhitelistListCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	for _, d := range store.Domains() {
		fmt.Fprintln(out, d)
	}
	return nil
}

type WhitelistAddCmd struct {
	Domain string `arg:"" help:"Domain or URL, e.g. example.com or https://www.example.com/page."`
}

func (c *WhitelistAddCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	domain, err := store.AddDomain(c.Domain)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, domain)
	return nil
}

type WhitelistRemoveCmd struct {
	Domain string `arg:"" help:"Whitelisted domain."`
}

func (c *WhitelistRemoveCmd) Run(g *Globals) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	return store.RemoveDomain(c.Domain)
}

// CheckCmd reports whether the selected font applies to a page.
type CheckCmd struct {
	URL string `arg:"" help:"Page URL or host name."`
}

func (c *CheckCmd) Run(g *Globals, out io.Writer) error {
	host, err := hostOf(c.URL)
	if err != nil {
		return err
	}

	store, err := g.openStore()
	if err != nil {
		return err
	}

	switch {
	case store.SelectedFont() == "":
		fmt.Fprintf(out, "%s: system font (no font selected)\n", host)
	case store.ShouldApplyFont(host):
		fmt.Fprintf(out, "%s: %s\n", host, store.SelectedFont())
	default:
		fmt.Fprintf(out, "%s: whitelisted\n", host)
	}

	if site, err := whitelist.RegistrableDomain(host); err == nil && site != host {
		fmt.Fprintf(out, "site: %s\n", site)
	}
	return nil
}

func hostOf(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("no host in %q", raw)
	}
	return strings.ToLower(u.Hostname()), nil
}

// CSSCmd prints the stylesheet for the selected font.
type CSSCmd struct {
	Host   string `help:"Only print when the font applies to this host."`
	Shadow bool   `help:"Print the shadow root rule instead."`
}

var errNoFont = errors.New("no font selected")

func (c *CSSCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}

	family := store.SelectedFont()
	if family == "" {
		return errNoFont
	}
	if c.Host != "" && !store.ShouldApplyFont(c.Host) {
		return nil
	}

	if c.Shadow {
		fmt.Fprintln(out, style.ShadowRootRule(family))
		return nil
	}
	fmt.Fprintf(out, "/* #%s */\n%s", style.ElementID, style.Stylesheet(family))
	return nil
}

// LangCmd shows, detects or sets the interface language.
type LangCmd struct {
	Set    string `help:"Store this language (zh, zh-HK, en, ja, ko, vi, de, fr, ru, th, es, it)."`
	Detect string `help:"Detect from a browser locale such as zh-TW."`
}

func (c *LangCmd) Run(g *Globals, out io.Writer) error {
	if c.Detect != "" {
		fmt.Fprintln(out, i18n.DetectLanguage(c.Detect))
		return nil
	}

	store, err := g.openStore()
	if err != nil {
		return err
	}

	if c.Set != "" {
		if !i18n.IsSupported(c.Set) {
			return fmt.Errorf("unsupported language %q", c.Set)
		}
		if err := store.SetLanguage(c.Set); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, currentLanguage(store.Language()))
	return nil
}

// currentLanguage returns the stored language, or one detected from the
// environment locale when none is stored.
func currentLanguage(stored string) string {
	if stored != "" {
		return stored
	}
	locale := os.Getenv("LANG")
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	return i18n.DetectLanguage(strings.ReplaceAll(locale, "_", "-"))
}

// MsgCmd prints a catalog message.
type MsgCmd struct {
	Key string `arg:"" help:"Message key, e.g. save_success."`
}

func (c *MsgCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}

	catalog, err := i18n.Builtin(currentLanguage(store.Language()))
	if err != nil {
		return err
	}

	msg := catalog.Message(c.Key)
	if msg == "" {
		return fmt.Errorf("unknown message %q", c.Key)
	}
	fmt.Fprintln(out, msg)
	return nil
}
