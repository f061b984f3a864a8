//go:build 386 || amd64

// Command cpufeatures prints the capabilities reported by the processor
// identification instruction.
//
// Usage:
//
//	cpufeatures [-raw] [-all] [-lockfree] [-has feature]
//
// With -has it prints nothing and exits 0 when the feature is present, 1
// when it is absent and 2 when the name is unknown.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	kcpuid "github.com/klauspost/cpuid/v2"

	"github.com/qRoC/Loobee-OldRepository/atom"
	"github.com/qRoC/Loobee-OldRepository/cpuid"
)

func main() {
	os.Exit(run(os.Args[1:], cpuid.Current(), os.Stdout, os.Stderr))
}

func run(args []string, id cpuid.CPUID, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cpufeatures", flag.ContinueOnError)
	fs.SetOutput(stderr)
	raw := fs.Bool("raw", false, "print the raw feature words")
	all := fs.Bool("all", false, "print every known feature with its state")
	lockFree := fs.Bool("lockfree", false, "print which atomic widths are lock free")
	has := fs.String("has", "", "exit 0 if the named feature is present, 1 otherwise")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "unexpected arguments:", strings.Join(fs.Args(), " "))
		return 2
	}

	if *has != "" {
		f, ok := cpuid.ParseFeature(*has)
		if !ok {
			fmt.Fprintln(stderr, "unknown feature:", *has)
			return 2
		}
		if id.Has(f) {
			return 0
		}
		return 1
	}

	switch {
	case *raw:
		for _, w := range []cpuid.Word{cpuid.WordF1C, cpuid.WordF1D, cpuid.WordF7B, cpuid.WordF7C} {
			fmt.Fprintf(stdout, "%s 0x%08x\n", w, id.Word(w))
		}

	case *all:
		for _, f := range cpuid.AllFeatures() {
			state := "-"
			if id.Has(f) {
				state = "+"
			}
			fmt.Fprintf(stdout, "%s %-12s %s.%d\n", state, f, f.Word(), f.Bit())
		}

	case *lockFree:
		printLockFree(stdout)

	default:
		fmt.Fprintf(stdout, "%s %s\n", kcpuid.CPU.VendorString, kcpuid.CPU.BrandName)
		names := make([]string, 0, 32)
		for _, f := range id.Features() {
			names = append(names, f.String())
		}
		fmt.Fprintln(stdout, strings.Join(names, " "))
	}

	return 0
}

func printLockFree(w io.Writer) {
	rows := []struct {
		name string
		ok   bool
	}{
		{"bool", atom.IsLockFree[bool]()},
		{"int8", atom.IsLockFree[int8]()},
		{"int16", atom.IsLockFree[int16]()},
		{"int32", atom.IsLockFree[int32]()},
		{"int64", atom.IsLockFree[int64]()},
		{"int", atom.IsLockFree[int]()},
		{"uintptr", atom.IsLockFree[uintptr]()},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-8s %t\n", r.name, r.ok)
	}
}
