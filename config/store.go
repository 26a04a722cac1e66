package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/milk9111/stagerunner/common"
	"gopkg.in/ini.v1"
)

const (
	optionsSection = "options"
	volumeKey      = "volume"
	DefaultVolume  = 100
)

// Options are the user settings persisted between runs.
type Options struct {
	Volume int
}

func DefaultOptions() Options {
	return Options{Volume: DefaultVolume}
}

// Normalize clamps every field into its valid range.
func (o Options) Normalize() Options {
	o.Volume = common.ClampInt(o.Volume, 0, 100)
	return o
}

// Store persists Options in a single-section INI file.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the options file, writing one with defaults when it is missing.
func (s *Store) Load() (Options, error) {
	if s == nil || s.Path == "" {
		return DefaultOptions(), nil
	}
	if _, err := os.Stat(s.Path); errors.Is(err, fs.ErrNotExist) {
		opts := DefaultOptions()
		if err := s.Save(opts); err != nil {
			return opts, err
		}
		return opts, nil
	}
	f, err := ini.Load(s.Path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("config: load %s: %w", s.Path, err)
	}
	sec := f.Section(optionsSection)
	opts := Options{
		Volume: sec.Key(volumeKey).MustInt(DefaultVolume),
	}
	return opts.Normalize(), nil
}

func (s *Store) Save(opts Options) error {
	if s == nil || s.Path == "" {
		return nil
	}
	opts = opts.Normalize()
	f := ini.Empty()
	f.Section(optionsSection).Key(volumeKey).SetValue(strconv.Itoa(opts.Volume))
	if err := f.SaveTo(s.Path); err != nil {
		return fmt.Errorf("config: save %s: %w", s.Path, err)
	}
	return nil
}
