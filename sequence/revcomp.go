package sequence

// revComp8Table maps 'A'/'a' to 'T', 'C'/'c' to 'G', 'G'/'g' to 'C', 'T'/'t'
// to 'A', and every other byte to 'N'.  Lower case is not preserved.
var revComp8Table [256]byte

func init() {
	for i := range revComp8Table {
		revComp8Table[i] = 'N'
	}
	for _, pair := range [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}} {
		revComp8Table[pair[0]] = pair[1]
		revComp8Table[pair[0]|0x20] = pair[1]
	}
}

// ReverseComplement returns the reverse complement of an ASCII DNA sequence.
// Bases other than ACGT (either case) become 'N'.
func ReverseComplement(seq string) string {
	buf := []byte(seq)
	reverseComplementInplace(buf)
	return string(buf)
}

func reverseComplementInplace(ascii8 []byte) {
	nByte := len(ascii8)
	nByteDiv2 := nByte >> 1
	for idx, invIdx := 0, nByte-1; idx != nByteDiv2; idx, invIdx = idx+1, invIdx-1 {
		ascii8[idx], ascii8[invIdx] = revComp8Table[ascii8[invIdx]], revComp8Table[ascii8[idx]]
	}
	if nByte&1 == 1 {
		ascii8[nByteDiv2] = revComp8Table[ascii8[nByteDiv2]]
	}
}
