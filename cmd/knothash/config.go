package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/knotgrid/diskgrid"
	"github.com/katalvlaran/knotgrid/knot"
	"github.com/mitchellh/go-homedir"
)

const defaultConfigFile = "~/.knothash.toml"

type tomlConfig struct {
	RingSize   int `toml:"ring_size"`
	Workers    int `toml:"workers"`
	GridWidth  int `toml:"grid_width"`
	GridHeight int `toml:"grid_height"`
}

// Conf - settings after defaults are applied
type Conf struct {
	RingSize   int
	Workers    int
	GridWidth  int
	GridHeight int
}

func defaultConf() Conf {
	return Conf{
		RingSize:   knot.Size,
		GridWidth:  8,
		GridHeight: 8,
	}
}

// loadConfig reads the TOML file at path. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Conf, error) {
	conf := defaultConf()
	file, err := homedir.Expand(path)
	if err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return conf, nil
	}
	if err != nil {
		return conf, fmt.Errorf("config %s: %w", file, err)
	}
	var tc tomlConfig
	if _, err = toml.Decode(string(data), &tc); err != nil {
		return conf, fmt.Errorf("config %s: %w", file, err)
	}
	if tc.RingSize != 0 {
		conf.RingSize = tc.RingSize
	}
	if tc.Workers != 0 {
		conf.Workers = tc.Workers
	}
	if tc.GridWidth != 0 {
		conf.GridWidth = tc.GridWidth
	}
	if tc.GridHeight != 0 {
		conf.GridHeight = tc.GridHeight
	}

	return conf, nil
}

// gridOptions turns the config into diskgrid options; zero workers keeps the default.
func (c Conf) gridOptions() []diskgrid.Option {
	if c.Workers == 0 {
		return nil
	}

	return []diskgrid.Option{diskgrid.WithWorkers(c.Workers)}
}
