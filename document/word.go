package document

// IsIdentChar reports whether b can appear in an identifier.
func IsIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_'
}

// IdentifierLen returns the length of the identifier token starting at
// offset, scanning forward until the first non-identifier byte. Returns 0
// when offset is out of bounds or no identifier starts there.
func IdentifierLen(buf Buffer, offset int) int {
	if offset < 0 {
		return 0
	}
	end := offset
	for end < buf.Len() && IsIdentChar(buf.CharAt(end)) {
		end++
	}
	return end - offset
}
