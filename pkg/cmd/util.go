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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-primefield/pkg/field"
	"github.com/consensys/go-primefield/pkg/field/prime"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected 64-bit unsigned integer, or exits if
// an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the field to work in from the "--field" and "--modulus" flags,
// exiting if neither (or both) are given or if the field is invalid.
func getField(cmd *cobra.Command) prime.Field {
	f, err := selectField(GetString(cmd, "field"), GetUint64(cmd, "modulus"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("working in %s", f)
	//
	return f
}

// selectField determines a field either from the name of a well-known field, or
// from an explicit modulus.
func selectField(name string, modulus uint64) (prime.Field, error) {
	switch {
	case name != "" && modulus != 0:
		return prime.Field{}, errors.New("cannot specify both field name and modulus")
	case name != "":
		config := field.GetConfig(name)
		if config == nil {
			return prime.Field{}, fmt.Errorf("unknown field \"%s\"", name)
		}
		//
		modulus = config.Modulus
	case modulus == 0:
		return prime.Field{}, errors.New("no field specified (use --field or --modulus)")
	}
	//
	return prime.NewField(modulus)
}

// parseElement parses a (possibly negative) integer into an element of the
// given field.  Values too large for an int64 are accepted when unsigned.
func parseElement(f prime.Field, text string) (prime.Element, error) {
	text = strings.TrimSpace(text)
	//
	if v, err := strconv.ParseInt(text, 0, 64); err == nil {
		return f.Element(v), nil
	} else if v, err2 := strconv.ParseUint(text, 0, 64); err2 == nil {
		return f.Uint64(v), nil
	} else {
		return prime.Element{}, fmt.Errorf("invalid field element \"%s\": %w", text, err)
	}
}

// parseElements parses a list of integers into elements of the given field.
func parseElements(f prime.Field, args []string) ([]prime.Element, error) {
	var elements = make([]prime.Element, len(args))
	//
	for i, arg := range args {
		e, err := parseElement(f, arg)
		if err != nil {
			return nil, err
		}
		//
		elements[i] = e
	}
	//
	return elements, nil
}

// Parse command-line arguments as field elements, or exit.
func getElements(f prime.Field, args []string) []prime.Element {
	elements, err := parseElements(f, args)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return elements
}

// Determine the width of the terminal connected to stdout, or return a default
// width if stdout is not a terminal.
func terminalWidth(def int) int {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return def
	} else if width, _, err := term.GetSize(fd); err == nil {
		return width
	}
	//
	return def
}

// Report a computation error and exit.
func exitWith(err error) {
	log.Debugf("computation failed: %v", err)
	fmt.Println(err)
	os.Exit(1)
}
