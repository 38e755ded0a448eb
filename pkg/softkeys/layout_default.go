package softkeys

func k(width float64, plain, shift string) KeySpec {
	return KeySpec{Width: width, Plain: Glyph(plain), Shift: Glyph(shift)}
}

func special(width float64, state *KeyState) KeySpec {
	return KeySpec{Width: width, Plain: state}
}

var defaultLayout = MustBuildLayout([][]KeySpec{
	// Row 1: numbers + backspace
	{
		k(1, "`", "¬"),
		k(1, "1", "!"),
		k(1, "2", "\""),
		k(1, "3", "£"),
		{Width: 1, Plain: Glyph("4"), Shift: Glyph("$"), Alt: Glyph("€"), ShiftAlt: Glyph("¢")},
		k(1, "5", "%"),
		k(1, "6", "^"),
		k(1, "7", "&"),
		k(1, "8", "*"),
		k(1, "9", "("),
		k(1, "0", ")"),
		k(1, "-", "_"),
		k(1, "=", "+"),
		special(2, Special("⌫", CommandBackspace)),
	},
	// Row 2: tab + qwerty row + snippet
	{
		special(1.5, Emit("↹", "\t")),
		k(1, "q", "Q"),
		k(1, "w", "W"),
		{Width: 1, Plain: Glyph("e"), Shift: Glyph("E"), Alt: Glyph("é"), ShiftAlt: Glyph("É")},
		k(1, "r", "R"),
		k(1, "t", "T"),
		k(1, "y", "Y"),
		{Width: 1, Plain: Glyph("u"), Shift: Glyph("U"), Alt: Glyph("ú"), ShiftAlt: Glyph("Ú")},
		{Width: 1, Plain: Glyph("i"), Shift: Glyph("I"), Alt: Glyph("í"), ShiftAlt: Glyph("Í")},
		{Width: 1, Plain: Glyph("o"), Shift: Glyph("O"), Alt: Glyph("ó"), ShiftAlt: Glyph("Ó")},
		k(1, "p", "P"),
		k(1, "[", "{"),
		k(1, "]", "}"),
		special(1.5, Emit("if err != nil", "if err != nil {\n\treturn nil, err\n}\n")),
	},
	// Row 3: caps lock + asdf row + enter
	{
		special(1.75, Special("⇪", CommandCapsLock)),
		{Width: 1, Plain: Glyph("a"), Shift: Glyph("A"), Alt: Glyph("á"), ShiftAlt: Glyph("Á")},
		k(1, "s", "S"),
		k(1, "d", "D"),
		k(1, "f", "F"),
		k(1, "g", "G"),
		k(1, "h", "H"),
		k(1, "j", "J"),
		k(1, "k", "K"),
		k(1, "l", "L"),
		k(1, ";", ":"),
		k(1, "'", "@"),
		k(1, "#", "~"),
		special(1.25, Emit("↵", "\n")),
	},
	// Row 4: shift + zxcv row + shift
	{
		special(1.25, Special("⇧", CommandShift)),
		k(1, "\\", "|"),
		k(1, "z", "Z"),
		k(1, "x", "X"),
		k(1, "c", "C"),
		k(1, "v", "V"),
		k(1, "b", "B"),
		k(1, "n", "N"),
		k(1, "m", "M"),
		k(1, ",", "<"),
		k(1, ".", ">"),
		k(1, "/", "?"),
		special(2.75, Special("⇧", CommandShift)),
	},
	// Row 5: expressive, emoji, alt, space, alt, close
	{
		special(1.25, Special("✨", CommandBottom)),
		special(1.25, Glyph("😀")),
		special(1.25, Special("⎇", CommandAlt)),
		special(6.25, Glyph(" ")),
		special(1.25, Special("⎇", CommandAlt)),
		special(3.75, Special("↧", CommandClose)),
	},
})

// DefaultLayout is a UK-style QWERTY layout with caps lock, two shift and
// alt keys, a close key and the expressive key.
func DefaultLayout() *Layout {
	return defaultLayout
}
