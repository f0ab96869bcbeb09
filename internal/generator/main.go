package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-primefield")

	specs := []fieldSpecs{
		{Name: "P2", Modulus: 2, Alias: "Z2"},
		{Name: "P3", Modulus: 3, Alias: "Z3"},
		{Name: "P5", Modulus: 5, Alias: "Z5"},
		{Name: "P7", Modulus: 7, Alias: "Z7"},
		{Name: "P13", Modulus: 13, Alias: "Z13"},
		{Name: "P17", Modulus: 17, Alias: "Z17"},
		{Name: "P19", Modulus: 19, Alias: "Z19"},
		{Name: "GF251", Modulus: 251},
		{Name: "GF8209", Modulus: 8209},
		{Name: "Mersenne31", Modulus: 1<<31 - 1},
		{Name: "BabyBear", Modulus: 1<<31 - 1<<27 + 1},
		{Name: "KoalaBear", Modulus: 1<<31 - 1<<24 + 1},
		{Name: "Goldilocks", Modulus: 1<<64 - 1<<32 + 1},
	}

	for _, spec := range specs {
		assertNoError(spec.check(), "for field \"%s\"", spec.Name)
	}

	assertNoError(bgen.Generate(specs, "modp", "templates",
		bavard.Entry{
			File:      "../../pkg/field/modp/params.go",
			Templates: []string{"params.go.tmpl"},
		},
	), "generating parameters")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../pkg/field/modp/params.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	// Name of the generated parameter type
	Name string
	// Modulus of the field, which must be prime.
	Modulus uint64
	// Alias is the (optional) name of an Element type alias.
	Alias string
}

func (f fieldSpecs) check() error {
	if f.Modulus < 2 || !new(big.Int).SetUint64(f.Modulus).ProbablyPrime(0) {
		return fmt.Errorf("modulus %d is not prime", f.Modulus)
	}

	return nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
