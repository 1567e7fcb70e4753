package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/shelfhq/shelf-go/files"
)

func download(cfg *DownloadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Download.Parse(cc, args)
	if err != nil {
		cfg.Download.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: download takes a path and an optional destination", cli.ErrUsage)
	}
	t, err := cfg.transport()
	if err != nil {
		return err
	}
	arg := files.NewDownloadArg(args[0])
	if cfg.Rev != "" {
		arg = arg.WithRev(cfg.Rev)
	}
	md, content, err := files.Download(context.Background(), t, arg)
	if err != nil {
		return err
	}
	defer content.Body.Close()

	var w io.Writer = cc.Out
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	n, err := io.Copy(w, content.Body)
	if err != nil {
		return err
	}
	if n != int64(md.Size) {
		return fmt.Errorf("short download: %d of %d bytes", n, md.Size)
	}
	return nil
}

func upload(cfg *UploadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Upload.Parse(cc, args)
	if err != nil {
		cfg.Upload.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: upload takes a source and a destination path", cli.ErrUsage)
	}
	t, err := cfg.transport()
	if err != nil {
		return err
	}
	var r io.Reader
	if args[0] == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	arg := files.NewCommitInfo(args[1]).WithAutorename(cfg.Autorename)
	if cfg.Overwrite {
		arg = arg.WithMode(&files.WriteModeOverwrite{})
	}
	md, err := files.Upload(context.Background(), t, arg, r)
	if err != nil {
		return err
	}
	path := md.Name
	if md.PathDisplay != nil {
		path = *md.PathDisplay
	}
	fmt.Fprintf(cc.Out, "uploaded %s (%d bytes, rev %s)\n", path, md.Size, md.Rev)
	return nil
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: rm takes one path", cli.ErrUsage)
	}
	t, err := cfg.transport()
	if err != nil {
		return err
	}
	res, err := files.Delete(context.Background(), t, files.NewDeleteArg(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "deleted %s\n", res.Metadata.Base().Name)
	return nil
}
