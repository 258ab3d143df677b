package msdialog

// Control bytes of the stored dialog grammar.
const (
	codeSparkle    byte = 0xD9
	codeLinebreak  byte = 0xF0
	codeBell       byte = 0xF1
	codeDelay      byte = 0xF2 // followed by the delay byte
	codeKana       byte = 0xF3
	codeLatin      byte = 0xF4
	codeKanji      byte = 0xF5
	codeButtons    byte = 0xF6
	codeSpace      byte = 0xF7
	codeNextBubble byte = 0xFB
	codeStyle      byte = 0xFC // followed by the style byte
	codeEnd        byte = 0xFD
	codeExtCmd     byte = 0xFF // followed by a command id and its parameters
)
