// Copyright 2026 Florian Zenker (flo@znkr.io)
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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// htmldiff.Option.
package config

import "regexp"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// AtomicPatterns mark substrings of the inputs that must never be split into multiple
	// tokens, every occurrence moves through the diff as a single token.
	AtomicPatterns []*regexp.Regexp

	// If set, whitespace runs compare equal to each other regardless of their exact text.
	IgnoreWhitespace bool

	// RepeatingWordsAccuracy suppresses matching on token blocks that occur more than
	// len(newRange)*accuracy times in the new input. 1 never suppresses, 0 suppresses every
	// block.
	RepeatingWordsAccuracy float64

	// OrphanMatchThreshold drops interior matches whose rendered length doesn't carry their
	// weight against the surrounding changed regions. 0 keeps every match.
	OrphanMatchThreshold float64

	// Class attributes for rendered <ins> and <del> markers.
	InsertedClass string
	DeletedClass  string
	ModifiedClass string
}

// Default is the default configuration.
var Default = Config{
	AtomicPatterns:         nil,
	IgnoreWhitespace:       true,
	RepeatingWordsAccuracy: 1,
	OrphanMatchThreshold:   0,
	InsertedClass:          "diffins",
	DeletedClass:           "diffdel",
	ModifiedClass:          "diffmod",
}

// Flag describes a single config entry. This is used to detect options being passed to a
// function that doesn't support them.
type Flag int

const (
	AtomicPatterns Flag = 1 << iota
	StrictWhitespace
	RepeatingWordsAccuracy
	OrphanMatchThreshold
	InsertedClass
	DeletedClass
	ModifiedClass

	// MarkerClasses groups the class options, they are only meaningful when rendering.
	MarkerClasses = InsertedClass | DeletedClass | ModifiedClass
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case AtomicPatterns:
		return "htmldiff.Atomic"
	case StrictWhitespace:
		return "htmldiff.StrictWhitespace"
	case RepeatingWordsAccuracy:
		return "htmldiff.RepeatingWordsAccuracy"
	case OrphanMatchThreshold:
		return "htmldiff.OrphanMatchThreshold"
	case InsertedClass:
		return "htmldiff.InsertedClass"
	case DeletedClass:
		return "htmldiff.DeletedClass"
	case ModifiedClass:
		return "htmldiff.ModifiedClass"
	default:
		panic("never reached")
	}
}
