package cpuid

import (
	"strconv"
	"strings"
)

// Word names one of the four feature words captured by the probe.
type Word uint8

const (
	WordF1C Word = iota // leaf 1, ECX
	WordF1D             // leaf 1, EDX
	WordF7B             // leaf 7 sub-leaf 0, EBX
	WordF7C             // leaf 7 sub-leaf 0, ECX
)

var wordNames = [...]string{
	WordF1C: "f1c",
	WordF1D: "f1d",
	WordF7B: "f7b",
	WordF7C: "f7c",
}

func (w Word) String() string {
	if int(w) < len(wordNames) {
		return wordNames[w]
	}
	return "Word(" + strconv.Itoa(int(w)) + ")"
}

// Feature is a processor capability reported by a single bit of one of the
// feature words.
type Feature uint8

const (
	// leaf 1, ECX
	SSE3 Feature = iota
	PCLMULQDQ
	DTES64
	MONITOR
	DSCPL
	VMX
	SMX
	EIST
	TM2
	SSSE3
	CNXTID
	FMA
	CX16
	XTPR
	PDCM
	PCID
	DCA
	SSE41
	SSE42
	X2APIC
	MOVBE
	POPCNT
	TSCDEADLINE
	AES
	XSAVE
	OSXSAVE
	AVX
	F16C
	RDRAND

	// leaf 1, EDX
	FPU
	VME
	DE
	PSE
	TSC
	MSR
	PAE
	MCE
	CX8
	APIC
	SEP
	MTRR
	PGE
	MCA
	CMOV
	PAT
	PSE36
	PSN
	CLFSH
	DS
	ACPI
	MMX
	FXSR
	SSE
	SSE2
	SS
	HTT
	TM
	PBE

	// leaf 7 sub-leaf 0, EBX
	BMI1
	HLE
	AVX2
	SMEP
	BMI2
	ERMS
	INVPCID
	RTM
	MPX
	AVX512F
	AVX512DQ
	RDSEED
	ADX
	SMAP
	AVX512IFMA
	PCOMMIT
	CLFLUSHOPT
	CLWB
	AVX512PF
	AVX512ER
	AVX512CD
	SHA
	AVX512BW
	AVX512VL

	// leaf 7 sub-leaf 0, ECX
	PREFETCHWT1
	AVX512VBMI

	featureCount
)

// featureTable maps every feature to the word and bit that report it.
var featureTable = [featureCount]struct {
	name string
	word Word
	bit  uint8
}{
	SSE3:        {"sse3", WordF1C, 0},
	PCLMULQDQ:   {"pclmulqdq", WordF1C, 1},
	DTES64:      {"dtes64", WordF1C, 2},
	MONITOR:     {"monitor", WordF1C, 3},
	DSCPL:       {"dscpl", WordF1C, 4},
	VMX:         {"vmx", WordF1C, 5},
	SMX:         {"smx", WordF1C, 6},
	EIST:        {"eist", WordF1C, 7},
	TM2:         {"tm2", WordF1C, 8},
	SSSE3:       {"ssse3", WordF1C, 9},
	CNXTID:      {"cnxtid", WordF1C, 10},
	FMA:         {"fma", WordF1C, 12},
	CX16:        {"cx16", WordF1C, 13},
	XTPR:        {"xtpr", WordF1C, 14},
	PDCM:        {"pdcm", WordF1C, 15},
	PCID:        {"pcid", WordF1C, 17},
	DCA:         {"dca", WordF1C, 18},
	SSE41:       {"sse41", WordF1C, 19},
	SSE42:       {"sse42", WordF1C, 20},
	X2APIC:      {"x2apic", WordF1C, 21},
	MOVBE:       {"movbe", WordF1C, 22},
	POPCNT:      {"popcnt", WordF1C, 23},
	TSCDEADLINE: {"tscdeadline", WordF1C, 24},
	AES:         {"aes", WordF1C, 25},
	XSAVE:       {"xsave", WordF1C, 26},
	OSXSAVE:     {"osxsave", WordF1C, 27},
	AVX:         {"avx", WordF1C, 28},
	F16C:        {"f16c", WordF1C, 29},
	RDRAND:      {"rdrand", WordF1C, 30},
	FPU:         {"fpu", WordF1D, 0},
	VME:         {"vme", WordF1D, 1},
	DE:          {"de", WordF1D, 2},
	PSE:         {"pse", WordF1D, 3},
	TSC:         {"tsc", WordF1D, 4},
	MSR:         {"msr", WordF1D, 5},
	PAE:         {"pae", WordF1D, 6},
	MCE:         {"mce", WordF1D, 7},
	CX8:         {"cx8", WordF1D, 8},
	APIC:        {"apic", WordF1D, 9},
	SEP:         {"sep", WordF1D, 11},
	MTRR:        {"mtrr", WordF1D, 12},
	PGE:         {"pge", WordF1D, 13},
	MCA:         {"mca", WordF1D, 14},
	CMOV:        {"cmov", WordF1D, 15},
	PAT:         {"pat", WordF1D, 16},
	PSE36:       {"pse36", WordF1D, 17},
	PSN:         {"psn", WordF1D, 18},
	CLFSH:       {"clfsh", WordF1D, 19},
	DS:          {"ds", WordF1D, 21},
	ACPI:        {"acpi", WordF1D, 22},
	MMX:         {"mmx", WordF1D, 23},
	FXSR:        {"fxsr", WordF1D, 24},
	SSE:         {"sse", WordF1D, 25},
	SSE2:        {"sse2", WordF1D, 26},
	SS:          {"ss", WordF1D, 27},
	HTT:         {"htt", WordF1D, 28},
	TM:          {"tm", WordF1D, 29},
	PBE:         {"pbe", WordF1D, 31},
	BMI1:        {"bmi1", WordF7B, 3},
	HLE:         {"hle", WordF7B, 4},
	AVX2:        {"avx2", WordF7B, 5},
	SMEP:        {"smep", WordF7B, 7},
	BMI2:        {"bmi2", WordF7B, 8},
	ERMS:        {"erms", WordF7B, 9},
	INVPCID:     {"invpcid", WordF7B, 10},
	RTM:         {"rtm", WordF7B, 11},
	MPX:         {"mpx", WordF7B, 14},
	AVX512F:     {"avx512f", WordF7B, 16},
	AVX512DQ:    {"avx512dq", WordF7B, 17},
	RDSEED:      {"rdseed", WordF7B, 18},
	ADX:         {"adx", WordF7B, 19},
	SMAP:        {"smap", WordF7B, 20},
	AVX512IFMA:  {"avx512ifma", WordF7B, 21},
	PCOMMIT:     {"pcommit", WordF7B, 22},
	CLFLUSHOPT:  {"clflushopt", WordF7B, 23},
	CLWB:        {"clwb", WordF7B, 24},
	AVX512PF:    {"avx512pf", WordF7B, 26},
	AVX512ER:    {"avx512er", WordF7B, 27},
	AVX512CD:    {"avx512cd", WordF7B, 28},
	SHA:         {"sha", WordF7B, 29},
	AVX512BW:    {"avx512bw", WordF7B, 30},
	AVX512VL:    {"avx512vl", WordF7B, 31},
	PREFETCHWT1: {"prefetchwt1", WordF7C, 0},
	AVX512VBMI:  {"avx512vbmi", WordF7C, 1},
}

func (f Feature) String() string {
	if f < featureCount {
		return featureTable[f].name
	}
	return "Feature(" + strconv.Itoa(int(f)) + ")"
}

// Word returns the feature word that reports f. Unknown features report
// word zero.
func (f Feature) Word() Word {
	if f < featureCount {
		return featureTable[f].word
	}
	return 0
}

// Bit returns the bit position of f inside its word, or zero for an unknown
// feature.
func (f Feature) Bit() uint {
	if f < featureCount {
		return uint(featureTable[f].bit)
	}
	return 0
}

// AllFeatures returns every known feature in table order.
func AllFeatures() []Feature {
	out := make([]Feature, featureCount)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// ParseFeature looks a feature up by name, ignoring case, dots and
// underscores, so "SSE4.2", "sse4_2" and "sse42" all name SSE42.
func ParseFeature(name string) (Feature, bool) {
	name = strings.ToLower(name)
	name = strings.NewReplacer(".", "", "_", "", "-", "").Replace(name)
	for f := Feature(0); f < featureCount; f++ {
		if featureTable[f].name == name {
			return f, true
		}
	}
	return 0, false
}
