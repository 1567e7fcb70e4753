package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	shelf "github.com/shelfhq/shelf-go"
)

type MainConfig struct {
	Token   string `cli:"name=token desc='access token, overriding the config file'"`
	Config  string `cli:"name=config desc='config file (default ~/.config/shelf/config.yaml)'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log requests'"`

	Main *cli.Command
}

type ListConfig struct {
	*MainConfig
	Recursive bool   `cli:"name=r aliases=recursive desc='list the whole subtree'"`
	Media     bool   `cli:"name=media desc='include media info'"`
	Long      bool   `cli:"name=l desc='long listing with size and modification time'"`
	Filter    string `cli:"name=filter desc='keep entries matching an expression, e.g. Size > 1024'"`

	List *cli.Command
}

type DownloadConfig struct {
	*MainConfig
	Rev string `cli:"name=rev desc='download a specific revision'"`

	Download *cli.Command
}

type UploadConfig struct {
	*MainConfig
	Overwrite  bool `cli:"name=f aliases=overwrite desc='overwrite an existing file'"`
	Autorename bool `cli:"name=autorename desc='rename on conflict instead of failing'"`

	Upload *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type AccountConfig struct {
	*MainConfig

	Account *cli.Command
}

// fileConfig is the on-disk credentials file.
type fileConfig struct {
	AccessToken string `yaml:"access_token"`
}

func (cfg *MainConfig) configPath() (string, error) {
	if cfg.Config != "" {
		return cfg.Config, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shelf", "config.yaml"), nil
}

func (cfg *MainConfig) accessToken() (string, error) {
	if cfg.Token != "" {
		return cfg.Token, nil
	}
	if tok := os.Getenv("SHELF_TOKEN"); tok != "" {
		return tok, nil
	}
	path, err := cfg.configPath()
	if err != nil {
		return "", err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no access token: pass -token, set SHELF_TOKEN, or write %s", path)
		}
		return "", err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(d, &fc); err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	if fc.AccessToken == "" {
		return "", fmt.Errorf("%s has no access_token", path)
	}
	return fc.AccessToken, nil
}

func (cfg *MainConfig) transport() (shelf.Transport, error) {
	tok, err := cfg.accessToken()
	if err != nil {
		return nil, err
	}
	opts := []shelf.Option{}
	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, shelf.WithLogger(logger))
	}
	return shelf.New(tok, opts...), nil
}
