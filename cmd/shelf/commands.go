package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "shelf").
		WithSynopsis("shelf [opts] command [opts]").
		WithDescription("shelf is a command line client for the Shelf API.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			cfg.Main.Usage(cc, nil)
			return nil
		}).
		WithSubs(
			ListCommand(cfg),
			DownloadCommand(cfg),
			UploadCommand(cfg),
			RmCommand(cfg),
			AccountCommand(cfg))
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("list").
		WithAliases("ls", "l").
		WithSynopsis("list [opts] [path]").
		WithDescription("list the entries of a folder").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func DownloadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DownloadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("download").
		WithAliases("dl", "get").
		WithSynopsis("download [opts] <path> [dest]").
		WithDescription("download a file; dest \"-\" or absent writes to stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return download(cfg, cc, args)
		})
	cfg.Download = cmd
	return cmd
}

func UploadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UploadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("upload").
		WithAliases("up", "put").
		WithSynopsis("upload [opts] <src> <path>").
		WithDescription("upload a local file; src \"-\" reads from stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return upload(cfg, cc, args)
		})
	cfg.Upload = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rm").
		WithSynopsis("rm <path>").
		WithDescription("delete a file, or a folder and all its contents").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func AccountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AccountConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("account").
		WithAliases("whoami").
		WithSynopsis("account").
		WithDescription("show the current account and its space usage").
		WithRun(func(cc *cli.Context, args []string) error {
			return account(cfg, cc, args)
		})
	cfg.Account = cmd
	return cmd
}
