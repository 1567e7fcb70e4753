package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/shelfhq/shelf-go/files"
)

// entryEnv is what a -filter expression sees for each entry.
type entryEnv struct {
	Tag  string
	Name string
	Path string
	Size uint64
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	var filter *vm.Program
	if cfg.Filter != "" {
		filter, err = expr.Compile(cfg.Filter, expr.Env(entryEnv{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad filter: %v", cli.ErrUsage, err)
		}
	}
	t, err := cfg.transport()
	if err != nil {
		return err
	}

	ctx := context.Background()
	arg := files.NewListFolderArg(path).
		WithRecursive(cfg.Recursive).
		WithIncludeMediaInfo(cfg.Media)
	res, err := files.ListFolder(ctx, t, arg)
	for {
		if err != nil {
			return err
		}
		for _, entry := range res.Entries {
			if err := printEntry(cfg, cc.Out, entry, filter); err != nil {
				return err
			}
		}
		if !res.HasMore {
			return nil
		}
		res, err = files.ListFolderContinue(ctx, t, files.NewListFolderContinueArg(res.Cursor))
	}
}

func printEntry(cfg *ListConfig, w io.Writer, entry files.Metadata, filter *vm.Program) error {
	base := entry.Base()
	path := base.Name
	if base.PathDisplay != nil {
		path = *base.PathDisplay
	}
	env := entryEnv{Name: base.Name, Path: path}
	switch m := entry.(type) {
	case *files.FileMetadata:
		env.Tag = "file"
		env.Size = m.Size
	case *files.FolderMetadata:
		env.Tag = "folder"
	case *files.DeletedMetadata:
		env.Tag = "deleted"
	case *files.UnknownMetadata:
		env.Tag = m.Tag
	}
	if filter != nil {
		keep, err := expr.Run(filter, env)
		if err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		if !keep.(bool) {
			return nil
		}
	}
	if !cfg.Long {
		fmt.Fprintln(w, colorize(w, entry, path))
		return nil
	}
	switch m := entry.(type) {
	case *files.FileMetadata:
		fmt.Fprintf(w, "%12d  %s  %s\n", m.Size, m.ServerModified.Format("2006-01-02 15:04"), path)
	case *files.DeletedMetadata:
		fmt.Fprintf(w, "%12s  %17s  %s\n", "deleted", "", colorize(w, entry, path))
	default:
		fmt.Fprintf(w, "%12s  %17s  %s\n", "-", "", colorize(w, entry, path))
	}
	return nil
}

func colorize(w io.Writer, entry files.Metadata, s string) string {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return s
	}
	switch entry.(type) {
	case *files.FolderMetadata:
		return color.New(color.FgBlue, color.Bold).Sprint(s)
	case *files.DeletedMetadata:
		return color.New(color.FgRed).Sprint(s)
	default:
		return s
	}
}
