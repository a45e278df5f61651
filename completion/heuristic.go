package completion

import (
	"github.com/teranos/slate/document"
)

// ArgsAlreadyExist guesses whether the code after offset already carries an
// argument list, so that an overwriting completion should not append a
// duplicate one. offset points just past the identifier being completed.
//
// The scan skips the rest of the identifier, then any spaces and tabs, and
// judges the first character after that. Letters, '_', ';', ')', '}', ',',
// '.' and newline read as the expression being already terminated or
// continued by other code, so no arguments are assumed; anything else, such
// as '(' or an operator, reads as an argument list already sitting there.
// Running off the end of the buffer means no terminator was found and no
// arguments are assumed.
//
// This is a textual heuristic, not a parser.
func ArgsAlreadyExist(buf document.Buffer, offset int) bool {
	i := offset
	for i < buf.Len() && document.IsIdentChar(buf.CharAt(i)) {
		i++
	}
	for i < buf.Len() && (buf.CharAt(i) == ' ' || buf.CharAt(i) == '\t') {
		i++
	}
	if i >= buf.Len() {
		return false
	}
	return !isExpressionTerminator(buf.CharAt(i))
}

func isExpressionTerminator(b byte) bool {
	if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' {
		return true
	}
	switch b {
	case ';', ')', '}', ',', '.', '\n':
		return true
	}
	return false
}
