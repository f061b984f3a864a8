//go:build (386 || amd64) && gc

package cpuid

import "sync"

// readProcessorIdentification executes CPUID with EAX=leaf and ECX=subleaf.
// It is implemented in cpuid_x86.s.
func readProcessorIdentification(leaf, subleaf uint32) (a, b, c, d uint32)

// Probe executes the identification instruction and returns fresh feature
// words. Most callers want Current.
func Probe() CPUID {
	return probe(readProcessorIdentification)
}

var current = sync.OnceValue(Probe)

// Current returns the feature words of the processor, probing on the first
// call only. The result is shared by the whole process.
func Current() CPUID {
	return current()
}
