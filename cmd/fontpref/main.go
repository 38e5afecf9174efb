// Command fontpref reads family names from font files and manages the font
// preferences used to override page fonts.
//
//	fontpref family --use MapleMono-NF-CN-Regular.ttf
//	fontpref whitelist add https://mail.example.com
//	fontpref css --host news.example.org
//	fontpref apply --host news.example.org page.html
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tsawler/fontpref/logging"
	"github.com/tsawler/fontpref/prefs"
)

// Globals are flags shared by every command.
type Globals struct {
	Store string `help:"Preferences file (default: user config dir)." env:"FONTPREF_STORE" type:"path"`
	Debug bool   `help:"Write debug logs to stderr."`
}

func (g *Globals) openStore() (*prefs.Store, error) {
	path := g.Store
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return prefs.Open(prefs.NewFileStorage(path))
}

// CLI is the command tree.
type CLI struct {
	Globals

	Family    FamilyCmd    `cmd:"" help:"Print the family name of font files."`
	Names     NamesCmd     `cmd:"" help:"List the name table records of a font file."`
	Use       UseCmd       `cmd:"" help:"Select a font by family name."`
	Recent    RecentCmd    `cmd:"" help:"Show or edit the recent font history."`
	Reset     ResetCmd     `cmd:"" help:"Go back to the system font and clear the history."`
	Whitelist WhitelistCmd `cmd:"" help:"Manage sites where the font is not applied."`
	Check     CheckCmd     `cmd:"" help:"Report whether the font applies to a URL."`
	CSS       CSSCmd       `cmd:"" name:"css" help:"Print the stylesheet for the selected font."`
	Apply     ApplyCmd     `cmd:"" help:"Apply the selected font to an HTML page."`
	Lang      LangCmd      `cmd:"" help:"Show or set the interface language."`
	Msg       MsgCmd       `cmd:"" help:"Print an interface message in the current language."`
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("fontpref"),
		kong.Description("Font family extraction and font preference management."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Debug {
		logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "fontpref:", err)
		os.Exit(1)
	}
}
