// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package log

import (
	"github.com/kaleido-io/ethid/internal/confutil"
)

type Config struct {
	Level        *string        `yaml:"level"`
	Format       *string        `yaml:"format"`
	Output       *string        `yaml:"output"`
	DisableColor *bool          `yaml:"disableColor"`
	ForceColor   *bool          `yaml:"forceColor"`
	TimeFormat   *string        `yaml:"timeFormat"`
	UTC          *bool          `yaml:"utc"`
	File         FileConfig     `yaml:"file"`
	JSON         JSONFormatting `yaml:"json"`
}

type FileConfig struct {
	Filename   *string `yaml:"filename"`
	MaxSize    *string `yaml:"maxSize"`
	MaxBackups *int    `yaml:"maxBackups"`
	MaxAge     *string `yaml:"maxAge"`
	Compress   *bool   `yaml:"compress"`
}

type JSONFormatting struct {
	TimestampField *string `yaml:"timestampField"`
	LevelField     *string `yaml:"levelField"`
	MessageField   *string `yaml:"messageField"`
	FuncField      *string `yaml:"funcField"`
	FileField      *string `yaml:"fileField"`
}

var Defaults = &Config{
	Level:        confutil.P("info"),
	Format:       confutil.P("simple"),
	Output:       confutil.P("stderr"),
	DisableColor: confutil.P(false),
	ForceColor:   confutil.P(false),
	TimeFormat:   confutil.P("2006-01-02T15:04:05.000Z07:00"),
	UTC:          confutil.P(false),
	File: FileConfig{
		Filename:   confutil.P("ethid.log"),
		MaxSize:    confutil.P("100Mb"),
		MaxBackups: confutil.P(2),
		MaxAge:     confutil.P("24h"),
		Compress:   confutil.P(true),
	},
	JSON: JSONFormatting{
		TimestampField: confutil.P("@timestamp"),
		LevelField:     confutil.P("level"),
		MessageField:   confutil.P("message"),
		FuncField:      confutil.P("func"),
		FileField:      confutil.P("file"),
	},
}
