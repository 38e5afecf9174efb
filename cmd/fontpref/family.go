package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/fontpref"
	"github.com/tsawler/fontpref/fontname"
)

// FamilyCmd resolves family names for one or more font files.
type FamilyCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Font files (.ttf, .otf, .woff, .woff2)."`
	Strict bool     `help:"Fail instead of deriving the name from the file name."`
	Jobs   int      `short:"j" default:"4" help:"Files read in parallel."`
	Use    bool     `help:"Select the family of the first file."`
}

func (c *FamilyCmd) Run(g *Globals, out io.Writer) error {
	results, err := c.resolve()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Files[i], res.Name, res.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !c.Use {
		return nil
	}

	store, err := g.openStore()
	if err != nil {
		return err
	}
	return store.UseFont(results[0].Name)
}

func (c *FamilyCmd) resolve() ([]fontname.Result, error) {
	results := make([]fontname.Result, len(c.Files))

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(max(c.Jobs, 1))

	for i, file := range c.Files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			insp := fontpref.Open(file)
			if c.Strict {
				insp = insp.WithoutFallback()
			}

			res, err := insp.Family()
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// NamesCmd dumps a font's name table.
type NamesCmd struct {
	File    string `arg:"" type:"existingfile" help:"Font file."`
	Details bool   `help:"Also print subfamily, full name and glyph count."`
}

func (c *NamesCmd) Run(out io.Writer) error {
	insp := fontpref.Open(c.File)

	names, err := insp.Names()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tENCODING\tLANGUAGE\tNAME ID\tVALUE")
	for _, n := range names {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", n.PlatformID, n.EncodingID, n.LanguageID, n.NameID, n.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !c.Details {
		return nil
	}

	d, err := insp.Details()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nformat: %s\nfamily: %s\nsubfamily: %s\nfull name: %s\npostscript: %s\nglyphs: %d\n",
		d.Format, d.Family, d.Subfamily, d.FullName, d.PostScriptName, d.NumGlyphs)
	return nil
}
