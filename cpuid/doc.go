// Package cpuid reads the x86 processor feature words once and answers
// capability questions from them.
//
// Only the standard leaves 1 and 7 (sub-leaf 0) are read. A leaf the
// processor does not implement leaves its words zero, so its features read
// as absent. The package does not build for architectures other than 386 and
// amd64.
package cpuid
