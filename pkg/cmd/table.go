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
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-primefield/pkg/field/prime"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Largest field for which a table can be printed.
const maxTableOrder = 128

var tableCmd = &cobra.Command{
	Use:   "table [flags]",
	Short: "print the operation table of a small prime field.",
	Long: `Print the table for a given operation ("+", "-", "*" or "/") over a small field,
	where row x and column y holds x op y.  Division by zero is shown as "-".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		f := getField(cmd)
		op := GetString(cmd, "op")
		//
		rows, err := cayleyTable(f, op)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		text := formatTable(rows)
		if width := len(strings.SplitN(text, "\n", 2)[0]); width > terminalWidth(width) {
			log.Warnf("table is %d characters wide, which exceeds the terminal", width)
		}
		//
		fmt.Print(text)
	},
}

// cayleyTable constructs the operation table for a field, where the first row
// and column hold the operands.
func cayleyTable(f prime.Field, op string) ([][]string, error) {
	if f.Modulus() > maxTableOrder {
		return nil, fmt.Errorf("%s is too large to tabulate (at most %d elements)", f, maxTableOrder)
	}
	//
	var header = []string{op}
	//
	for y := range f.All() {
		header = append(header, y.Text(10))
	}
	//
	var rows = [][]string{header}
	//
	for x := range f.All() {
		row := []string{x.Text(10)}
		//
		for y := range f.All() {
			r, err := evaluate(x, op, y)
			//
			switch {
			case err == nil:
				row = append(row, r.Text(10))
			case y.IsZero() && op == "/":
				row = append(row, "-")
			default:
				return nil, err
			}
		}
		//
		rows = append(rows, row)
	}
	//
	return rows, nil
}

// formatTable right-aligns all cells of a table into equally sized columns.
func formatTable(rows [][]string) string {
	var (
		builder strings.Builder
		width   int
	)
	//
	for _, row := range rows {
		for _, cell := range row {
			width = max(width, len(cell))
		}
	}
	//
	for _, row := range rows {
		for i, cell := range row {
			if i != 0 {
				builder.WriteString(" ")
			}
			//
			builder.WriteString(fmt.Sprintf("%*s", width, cell))
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringP("op", "o", "+", "operation to tabulate")
}
