// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import "strings"

// Z2 is the smallest prime field, used mostly for testing.
var Z2 = Config{"Z2", 2}

// Z5 is a tiny prime field, used mostly for testing.
var Z5 = Config{"Z5", 5}

// Z17 is a tiny prime field, used mostly for testing.
var Z17 = Config{"Z17", 17}

// Z19 is a tiny prime field, used mostly for testing.
var Z19 = Config{"Z19", 19}

// GF_251 is a tiny prime field used exclusively for testing.
var GF_251 = Config{"GF_251", 251}

// GF_8209 is a small prime field used exclusively for testing.
var GF_8209 = Config{"GF_8209", 8209}

// MERSENNE31 corresponds to the Mersenne prime 2^31-1.
var MERSENNE31 = Config{"MERSENNE31", 1<<31 - 1}

// BABYBEAR corresponds to the BabyBear field, 2^31-2^27+1.
var BABYBEAR = Config{"BABYBEAR", 1<<31 - 1<<27 + 1}

// KOALABEAR corresponds to the KoalaBear field, 2^31-2^24+1.
var KOALABEAR = Config{"KOALABEAR", 1<<31 - 1<<24 + 1}

// GOLDILOCKS corresponds to the Goldilocks field, 2^64-2^32+1.
var GOLDILOCKS = Config{"GOLDILOCKS", 1<<64 - 1<<32 + 1}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	Z2,
	Z5,
	Z17,
	Z19,
	GF_251,
	GF_8209,
	MERSENNE31,
	BABYBEAR,
	KOALABEAR,
	GOLDILOCKS,
}

// Config provides a simple mechanism for referring to well-known fields by
// name.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Modulus (i.e. order) of the field, which is always prime.
	Modulus uint64
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.  Names are matched case-insensitively.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if strings.EqualFold(FIELD_CONFIGS[i].Name, name) {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
