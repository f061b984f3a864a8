//go:build !(386 || amd64) || !gc

package cpuid

// The identification instruction only exists on x86. Reporting zero words
// here would look like a processor without features, so refuse to build.
var _ = cpuid_requires_386_or_amd64_and_the_gc_toolchain
