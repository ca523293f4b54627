// Copyright 2025 PelicanDB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/pelicandb/pelican/pkg/util/logutil"
)

// Config is the top-level configuration of the planner library.
type Config struct {
	Log       Log       `toml:"log"`
	Optimizer Optimizer `toml:"optimizer"`
}

// Log is the logging section.
type Log struct {
	// Level is the log level, one of debug/info/warn/error/fatal.
	Level string `toml:"level"`
	// Format is the log format, one of text/json.
	Format string `toml:"format"`
}

// Optimizer is the optimizer section.
type Optimizer struct {
	// DisabledRules lists the rewrite rule names switched off for every
	// session, e.g. "merge_adjacent_limit".
	DisabledRules []string `toml:"disabled-rules"`
	// EnableTrace turns on per-rule duration tracing for every session.
	EnableTrace bool `toml:"enable-trace"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Log: Log{
			Level:  logutil.DefaultLogLevel,
			Format: logutil.DefaultLogFormat,
		},
	}
}

// Load reads the TOML file at path on top of the defaults. Unknown options
// are rejected so typos do not silently disable anything.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown configuration options: %v", undecoded)
	}
	return cfg, nil
}
