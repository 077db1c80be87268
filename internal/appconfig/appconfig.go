// Copyright 2022  Il Sub Bang
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

// Package appconfig holds the cmd/hexgrid CLI's tunables, loaded from an
// INI-style file rather than a scatter of flag package globals.
package appconfig

import "github.com/retroenv/retrogolib/config"

// Config holds the settings cmd/hexgrid reads at startup. Load starts from
// Defaults, so any field left unset in the config file keeps its default.
type Config struct {
	DefaultResolution int    `config:"hexgrid.default_resolution"`
	LogLevel          string `config:"hexgrid.log_level"`
	Locale            string `config:"hexgrid.locale"`
	BatchWorkers      int    `config:"hexgrid.batch_workers"`
}

// Defaults returns the configuration used when no config file is present
// or a setting is left blank in it.
func Defaults() Config {
	return Config{
		DefaultResolution: 9,
		LogLevel:          "info",
		Locale:            "en",
		BatchWorkers:      4,
	}
}

// Load reads filename and overlays it on top of Defaults. An empty filename
// returns the defaults unchanged; a file that cannot be loaded, including a
// missing one, is an error.
func Load(filename string) (Config, error) {
	cfg := Defaults()
	if filename == "" {
		return cfg, nil
	}

	if err := config.Load(filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
