package cpuid

// The Has methods are shorthands for Has with a fixed feature.

func (c CPUID) HasSSE3() bool        { return c.Has(SSE3) }
func (c CPUID) HasPCLMULQDQ() bool   { return c.Has(PCLMULQDQ) }
func (c CPUID) HasDTES64() bool      { return c.Has(DTES64) }
func (c CPUID) HasMONITOR() bool     { return c.Has(MONITOR) }
func (c CPUID) HasDSCPL() bool       { return c.Has(DSCPL) }
func (c CPUID) HasVMX() bool         { return c.Has(VMX) }
func (c CPUID) HasSMX() bool         { return c.Has(SMX) }
func (c CPUID) HasEIST() bool        { return c.Has(EIST) }
func (c CPUID) HasTM2() bool         { return c.Has(TM2) }
func (c CPUID) HasSSSE3() bool       { return c.Has(SSSE3) }
func (c CPUID) HasCNXTID() bool      { return c.Has(CNXTID) }
func (c CPUID) HasFMA() bool         { return c.Has(FMA) }
func (c CPUID) HasCX16() bool        { return c.Has(CX16) }
func (c CPUID) HasXTPR() bool        { return c.Has(XTPR) }
func (c CPUID) HasPDCM() bool        { return c.Has(PDCM) }
func (c CPUID) HasPCID() bool        { return c.Has(PCID) }
func (c CPUID) HasDCA() bool         { return c.Has(DCA) }
func (c CPUID) HasSSE41() bool       { return c.Has(SSE41) }
func (c CPUID) HasSSE42() bool       { return c.Has(SSE42) }
func (c CPUID) HasX2APIC() bool      { return c.Has(X2APIC) }
func (c CPUID) HasMOVBE() bool       { return c.Has(MOVBE) }
func (c CPUID) HasPOPCNT() bool      { return c.Has(POPCNT) }
func (c CPUID) HasTSCDEADLINE() bool { return c.Has(TSCDEADLINE) }
func (c CPUID) HasAES() bool         { return c.Has(AES) }
func (c CPUID) HasXSAVE() bool       { return c.Has(XSAVE) }
func (c CPUID) HasOSXSAVE() bool     { return c.Has(OSXSAVE) }
func (c CPUID) HasAVX() bool         { return c.Has(AVX) }
func (c CPUID) HasF16C() bool        { return c.Has(F16C) }
func (c CPUID) HasRDRAND() bool      { return c.Has(RDRAND) }
func (c CPUID) HasFPU() bool         { return c.Has(FPU) }
func (c CPUID) HasVME() bool         { return c.Has(VME) }
func (c CPUID) HasDE() bool          { return c.Has(DE) }
func (c CPUID) HasPSE() bool         { return c.Has(PSE) }
func (c CPUID) HasTSC() bool         { return c.Has(TSC) }
func (c CPUID) HasMSR() bool         { return c.Has(MSR) }
func (c CPUID) HasPAE() bool         { return c.Has(PAE) }
func (c CPUID) HasMCE() bool         { return c.Has(MCE) }
func (c CPUID) HasCX8() bool         { return c.Has(CX8) }
func (c CPUID) HasAPIC() bool        { return c.Has(APIC) }
func (c CPUID) HasSEP() bool         { return c.Has(SEP) }
func (c CPUID) HasMTRR() bool        { return c.Has(MTRR) }
func (c CPUID) HasPGE() bool         { return c.Has(PGE) }
func (c CPUID) HasMCA() bool         { return c.Has(MCA) }
func (c CPUID) HasCMOV() bool        { return c.Has(CMOV) }
func (c CPUID) HasPAT() bool         { return c.Has(PAT) }
func (c CPUID) HasPSE36() bool       { return c.Has(PSE36) }
func (c CPUID) HasPSN() bool         { return c.Has(PSN) }
func (c CPUID) HasCLFSH() bool       { return c.Has(CLFSH) }
func (c CPUID) HasDS() bool          { return c.Has(DS) }
func (c CPUID) HasACPI() bool        { return c.Has(ACPI) }
func (c CPUID) HasMMX() bool         { return c.Has(MMX) }
func (c CPUID) HasFXSR() bool        { return c.Has(FXSR) }
func (c CPUID) HasSSE() bool         { return c.Has(SSE) }
func (c CPUID) HasSSE2() bool        { return c.Has(SSE2) }
func (c CPUID) HasSS() bool          { return c.Has(SS) }
func (c CPUID) HasHTT() bool         { return c.Has(HTT) }
func (c CPUID) HasTM() bool          { return c.Has(TM) }
func (c CPUID) HasPBE() bool         { return c.Has(PBE) }
func (c CPUID) HasBMI1() bool        { return c.Has(BMI1) }
func (c CPUID) HasHLE() bool         { return c.Has(HLE) }
func (c CPUID) HasAVX2() bool        { return c.Has(AVX2) }
func (c CPUID) HasSMEP() bool        { return c.Has(SMEP) }
func (c CPUID) HasBMI2() bool        { return c.Has(BMI2) }
func (c CPUID) HasERMS() bool        { return c.Has(ERMS) }
func (c CPUID) HasINVPCID() bool     { return c.Has(INVPCID) }
func (c CPUID) HasRTM() bool         { return c.Has(RTM) }
func (c CPUID) HasMPX() bool         { return c.Has(MPX) }
func (c CPUID) HasAVX512F() bool     { return c.Has(AVX512F) }
func (c CPUID) HasAVX512DQ() bool    { return c.Has(AVX512DQ) }
func (c CPUID) HasRDSEED() bool      { return c.Has(RDSEED) }
func (c CPUID) HasADX() bool         { return c.Has(ADX) }
func (c CPUID) HasSMAP() bool        { return c.Has(SMAP) }
func (c CPUID) HasAVX512IFMA() bool  { return c.Has(AVX512IFMA) }
func (c CPUID) HasPCOMMIT() bool     { return c.Has(PCOMMIT) }
func (c CPUID) HasCLFLUSHOPT() bool  { return c.Has(CLFLUSHOPT) }
func (c CPUID) HasCLWB() bool        { return c.Has(CLWB) }
func (c CPUID) HasAVX512PF() bool    { return c.Has(AVX512PF) }
func (c CPUID) HasAVX512ER() bool    { return c.Has(AVX512ER) }
func (c CPUID) HasAVX512CD() bool    { return c.Has(AVX512CD) }
func (c CPUID) HasSHA() bool         { return c.Has(SHA) }
func (c CPUID) HasAVX512BW() bool    { return c.Has(AVX512BW) }
func (c CPUID) HasAVX512VL() bool    { return c.Has(AVX512VL) }
func (c CPUID) HasPREFETCHWT1() bool { return c.Has(PREFETCHWT1) }
func (c CPUID) HasAVX512VBMI() bool  { return c.Has(AVX512VBMI) }
