package main

import (
	"io"
	"os"

	"github.com/tsawler/fontpref/htmldoc"
)

// ApplyCmd writes an HTML page with the selected font applied.
type ApplyCmd struct {
	File string `arg:"" type:"existingfile" help:"HTML file."`
	Host string `help:"Host the page was served from; whitelisted hosts are left unchanged."`
}

func (c *ApplyCmd) Run(g *Globals, out io.Writer) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	family := store.SelectedFont()
	if family == "" || (c.Host != "" && !store.ShouldApplyFont(c.Host)) {
		_, err = io.Copy(out, f)
		return err
	}

	return htmldoc.Apply(f, out, family)
}
