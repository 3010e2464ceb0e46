package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/example/stickersketch/internal/theme"
	"github.com/example/stickersketch/internal/tool"
)

type stickersCmd struct {
	*root
	fs *flag.FlagSet
}

func parseStickersCmd(args []string, r *root) (*stickersCmd, error) {
	fs := flag.NewFlagSet("stickers", flag.ExitOnError)
	cmd := &stickersCmd{root: r.subcommand("stickers"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *stickersCmd) Run() error {
	stickers := c.config.Presets().Stickers()
	if len(stickers) == 0 {
		fmt.Fprintln(c.stdout, "no stickers available")
		return nil
	}
	fmt.Fprintln(c.stdout, "available stickers:")
	for i, g := range stickers {
		fmt.Fprintf(c.stdout, "%2d: %s\n", i+1, g)
	}
	return nil
}

func (c *stickersCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type widthsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r.subcommand("widths"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	presets := c.config.Presets()
	fmt.Fprintln(c.stdout, "available brush widths:")
	for _, w := range presets.Widths() {
		label := ""
		switch w {
		case presets.Thin():
			label = " (thin)"
		case presets.Thick():
			label = " (thick)"
		}
		fmt.Fprintf(c.stdout, "%gpx%s\n", w, label)
	}
	fmt.Fprintf(c.stdout, "minimum width: %dpx\n", tool.MinWidth)
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{root: r.subcommand("themes"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	fmt.Fprintln(c.stdout, "built-in themes:")
	for _, name := range theme.Names() {
		fmt.Fprintf(c.stdout, "  %s\n", name)
	}
	if len(c.config.Themes) > 0 {
		names := make([]string, 0, len(c.config.Themes))
		for name := range c.config.Themes {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(c.stdout, "themes from config:")
		for _, name := range names {
			fmt.Fprintf(c.stdout, "  %s\n", name)
		}
	}
	fmt.Fprintf(c.stdout, "active theme: %s\n", c.theme().Name)
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
