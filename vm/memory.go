package vm

// MemoryDefault is the value a read of an unmapped word returns. The
// reference implementation ships a default-constructed (zero) fallback;
// we fix the same value here rather than exposing it as a build option.
const MemoryDefault uint32 = 0

// Memory is sparse, word-addressed storage: most of the 32-bit address
// space is never written, so only touched words are kept.
type Memory map[uint32]uint32

// Read returns the word at addr, or MemoryDefault if addr was never
// written.
func (m Memory) Read(addr uint32) uint32 {
	if v, ok := m[addr]; ok {
		return v
	}
	return MemoryDefault
}

// Write stores v at addr unconditionally, overwriting any prior value.
func (m Memory) Write(addr, v uint32) {
	m[addr] = v
}

// Clone returns an independent copy, so a caller holding it can never
// observe or cause mutation of the original.
func (m Memory) Clone() Memory {
	c := make(Memory, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
