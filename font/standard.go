package font

// faceMetrics is the built-in metric set of one Standard 14 face.
// Widths and kerning come from the Adobe AFM files; the kerning tables
// carry a subset covering common Latin pairs.
type faceMetrics struct {
	widths    map[rune]float64
	kern      map[kernPair]float64
	ascender  float64
	descender float64
	symbolic  bool
}

// standardFaces maps the Standard 14 names to their metrics. The oblique
// and italic variants share the width tables of their upright faces, the
// usual simplification for the sans and mono families.
var standardFaces map[string]*faceMetrics

func init() {
	helvetica := &faceMetrics{widths: helveticaWidths, kern: helveticaKern, ascender: 718, descender: -207}
	helveticaBold := &faceMetrics{widths: helveticaBoldWidths, kern: helveticaKern, ascender: 718, descender: -207}
	times := &faceMetrics{widths: timesWidths, kern: timesKern, ascender: 683, descender: -217}
	timesBold := &faceMetrics{widths: timesBoldWidths, kern: timesKern, ascender: 676, descender: -205}
	courier := &faceMetrics{widths: courierWidths, ascender: 629, descender: -157}

	standardFaces = map[string]*faceMetrics{
		"Helvetica":             helvetica,
		"Helvetica-Bold":        helveticaBold,
		"Helvetica-Oblique":     helvetica,
		"Helvetica-BoldOblique": helveticaBold,
		"Times-Roman":           times,
		"Times-Bold":            timesBold,
		"Times-Italic":          times,
		"Times-BoldItalic":      timesBold,
		"Courier":               courier,
		"Courier-Bold":          courier,
		"Courier-Oblique":       courier,
		"Courier-BoldOblique":   courier,
		"Symbol":                {widths: symbolWidths, ascender: 692, descender: -216, symbolic: true},
		"ZapfDingbats":          {widths: zapfDingbatsWidths, ascender: 692, descender: -143, symbolic: true},
	}
}

// Helvetica widths (in 1000ths of em)
var helveticaWidths = map[rune]float64{
	' ':  278,
	'!':  278,
	'"':  355,
	'#':  556,
	'$':  556,
	'%':  889,
	'&':  667,
	'\'': 191,
	'(':  333,
	')':  333,
	'*':  389,
	'+':  584,
	',':  278,
	'-':  333,
	'.':  278,
	'/':  278,
	'0':  556,
	'1':  556,
	'2':  556,
	'3':  556,
	'4':  556,
	'5':  556,
	'6':  556,
	'7':  556,
	'8':  556,
	'9':  556,
	':':  278,
	';':  278,
	'<':  584,
	'=':  584,
	'>':  584,
	'?':  556,
	'@':  1015,
	'A':  667,
	'B':  667,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  722,
	'I':  278,
	'J':  500,
	'K':  667,
	'L':  556,
	'M':  833,
	'N':  722,
	'O':  778,
	'P':  667,
	'Q':  778,
	'R':  722,
	'S':  667,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  944,
	'X':  667,
	'Y':  667,
	'Z':  611,
	'[':  278,
	'\\': 278,
	']':  278,
	'^':  469,
	'_':  556,
	'`':  333,
	'a':  556,
	'b':  556,
	'c':  500,
	'd':  556,
	'e':  556,
	'f':  278,
	'g':  556,
	'h':  556,
	'i':  222,
	'j':  222,
	'k':  500,
	'l':  222,
	'm':  833,
	'n':  556,
	'o':  556,
	'p':  556,
	'q':  556,
	'r':  333,
	's':  500,
	't':  278,
	'u':  556,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  500,
	'{':  334,
	'|':  260,
	'}':  334,
	'~':  584,
}

// Helvetica-Bold widths
var helveticaBoldWidths = map[rune]float64{
	' ':  278,
	'!':  333,
	'"':  474,
	'#':  556,
	'$':  556,
	'%':  889,
	'&':  722,
	'\'': 238,
	'(':  333,
	')':  333,
	'*':  389,
	'+':  584,
	',':  278,
	'-':  333,
	'.':  278,
	'/':  278,
	'0':  556,
	'1':  556,
	'2':  556,
	'3':  556,
	'4':  556,
	'5':  556,
	'6':  556,
	'7':  556,
	'8':  556,
	'9':  556,
	':':  333,
	';':  333,
	'<':  584,
	'=':  584,
	'>':  584,
	'?':  611,
	'@':  975,
	'A':  722,
	'B':  722,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  722,
	'I':  278,
	'J':  556,
	'K':  722,
	'L':  611,
	'M':  833,
	'N':  722,
	'O':  778,
	'P':  667,
	'Q':  778,
	'R':  722,
	'S':  667,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  944,
	'X':  667,
	'Y':  667,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  584,
	'_':  556,
	'`':  333,
	'a':  556,
	'b':  611,
	'c':  556,
	'd':  611,
	'e':  556,
	'f':  333,
	'g':  611,
	'h':  611,
	'i':  278,
	'j':  278,
	'k':  556,
	'l':  278,
	'm':  889,
	'n':  611,
	'o':  611,
	'p':  611,
	'q':  611,
	'r':  389,
	's':  556,
	't':  333,
	'u':  611,
	'v':  556,
	'w':  778,
	'x':  556,
	'y':  556,
	'z':  500,
	'{':  389,
	'|':  280,
	'}':  389,
	'~':  584,
}

// Times-Roman widths
var timesWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  408,
	'#':  500,
	'$':  500,
	'%':  833,
	'&':  778,
	'\'': 180,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  564,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  278,
	';':  278,
	'<':  564,
	'=':  564,
	'>':  564,
	'?':  444,
	'@':  921,
	'A':  722,
	'B':  667,
	'C':  667,
	'D':  722,
	'E':  611,
	'F':  556,
	'G':  722,
	'H':  722,
	'I':  333,
	'J':  389,
	'K':  722,
	'L':  611,
	'M':  889,
	'N':  722,
	'O':  722,
	'P':  556,
	'Q':  722,
	'R':  667,
	'S':  556,
	'T':  611,
	'U':  722,
	'V':  722,
	'W':  944,
	'X':  722,
	'Y':  722,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  469,
	'_':  500,
	'`':  333,
	'a':  444,
	'b':  500,
	'c':  444,
	'd':  500,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  500,
	'i':  278,
	'j':  278,
	'k':  500,
	'l':  278,
	'm':  778,
	'n':  500,
	'o':  500,
	'p':  500,
	'q':  500,
	'r':  333,
	's':  389,
	't':  278,
	'u':  500,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  444,
	'{':  480,
	'|':  200,
	'}':  480,
	'~':  541,
}

// Times-Bold widths
var timesBoldWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  555,
	'#':  500,
	'$':  500,
	'%':  1000,
	'&':  833,
	'\'': 278,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  570,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  333,
	';':  333,
	'<':  570,
	'=':  570,
	'>':  570,
	'?':  500,
	'@':  930,
	'A':  722,
	'B':  667,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  778,
	'I':  389,
	'J':  500,
	'K':  778,
	'L':  667,
	'M':  944,
	'N':  722,
	'O':  778,
	'P':  611,
	'Q':  778,
	'R':  722,
	'S':  556,
	'T':  667,
	'U':  722,
	'V':  722,
	'W':  1000,
	'X':  722,
	'Y':  722,
	'Z':  667,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  581,
	'_':  500,
	'`':  333,
	'a':  500,
	'b':  556,
	'c':  444,
	'd':  556,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  556,
	'i':  278,
	'j':  333,
	'k':  556,
	'l':  278,
	'm':  833,
	'n':  556,
	'o':  500,
	'p':  556,
	'q':  556,
	'r':  444,
	's':  389,
	't':  333,
	'u':  556,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  444,
	'{':  394,
	'|':  220,
	'}':  394,
	'~':  520,
}

// Courier widths (monospaced)
var courierWidths = map[rune]float64{}

// Symbol widths
var symbolWidths = map[rune]float64{}

// ZapfDingbats widths
var zapfDingbatsWidths = map[rune]float64{}

func init() {
	// Courier is monospaced - all characters have same width
	for r := rune(32); r <= 126; r++ {
		courierWidths[r] = 600
	}

	// Symbol and ZapfDingbats - use default width
	for r := rune(32); r <= 126; r++ {
		symbolWidths[r] = 500
		zapfDingbatsWidths[r] = 500
	}
}

// Helvetica family kerning pairs, shared by the bold and oblique faces.
// Negative values pull the pair closer together.
var helveticaKern = map[kernPair]float64{
	{'A', 'V'}:  -70,
	{'A', 'W'}:  -50,
	{'A', 'Y'}:  -100,
	{'A', 'v'}:  -40,
	{'A', 'w'}:  -40,
	{'A', 'y'}:  -40,
	{'F', ','}:  -150,
	{'F', '.'}:  -150,
	{'F', 'A'}:  -80,
	{'L', 'T'}:  -110,
	{'L', 'V'}:  -110,
	{'L', 'W'}:  -70,
	{'L', 'Y'}:  -140,
	{'L', 'y'}:  -30,
	{'P', ','}:  -180,
	{'P', '.'}:  -180,
	{'P', 'A'}:  -120,
	{'T', ','}:  -120,
	{'T', '.'}:  -120,
	{'T', 'a'}:  -120,
	{'T', 'e'}:  -120,
	{'T', 'o'}:  -120,
	{'T', 'r'}:  -120,
	{'T', 'u'}:  -120,
	{'T', 'w'}:  -120,
	{'T', 'y'}:  -120,
	{'V', ','}:  -125,
	{'V', '.'}:  -125,
	{'V', 'A'}:  -80,
	{'V', 'a'}:  -70,
	{'V', 'e'}:  -80,
	{'V', 'o'}:  -80,
	{'W', ','}:  -80,
	{'W', '.'}:  -80,
	{'W', 'A'}:  -50,
	{'W', 'a'}:  -40,
	{'W', 'e'}:  -30,
	{'W', 'o'}:  -30,
	{'Y', ','}:  -140,
	{'Y', '.'}:  -140,
	{'Y', 'A'}:  -110,
	{'Y', 'a'}:  -140,
	{'Y', 'e'}:  -140,
	{'Y', 'o'}:  -140,
	{'r', ','}:  -50,
	{'r', '.'}:  -50,
	{'v', ','}:  -80,
	{'v', '.'}:  -80,
	{'w', ','}:  -60,
	{'w', '.'}:  -60,
	{'y', ','}:  -100,
	{'y', '.'}:  -100,
	{'\'', 's'}: -50,
	{'s', '\''}: -50,
}

// Times family kerning pairs, shared by the bold and italic faces.
var timesKern = map[kernPair]float64{
	{'A', 'V'}: -135,
	{'A', 'W'}: -90,
	{'A', 'Y'}: -105,
	{'A', 'v'}: -74,
	{'A', 'w'}: -92,
	{'A', 'y'}: -92,
	{'F', ','}: -80,
	{'F', '.'}: -80,
	{'F', 'A'}: -74,
	{'L', 'T'}: -92,
	{'L', 'V'}: -100,
	{'L', 'W'}: -74,
	{'L', 'Y'}: -100,
	{'P', ','}: -111,
	{'P', '.'}: -111,
	{'P', 'A'}: -92,
	{'T', ','}: -74,
	{'T', '.'}: -74,
	{'T', 'a'}: -80,
	{'T', 'e'}: -70,
	{'T', 'o'}: -80,
	{'T', 'r'}: -35,
	{'T', 'u'}: -45,
	{'T', 'w'}: -80,
	{'T', 'y'}: -80,
	{'V', ','}: -129,
	{'V', '.'}: -129,
	{'V', 'A'}: -135,
	{'V', 'a'}: -111,
	{'V', 'e'}: -111,
	{'V', 'o'}: -129,
	{'W', ','}: -92,
	{'W', '.'}: -92,
	{'W', 'A'}: -120,
	{'W', 'a'}: -92,
	{'W', 'e'}: -92,
	{'W', 'o'}: -92,
	{'Y', ','}: -129,
	{'Y', '.'}: -129,
	{'Y', 'A'}: -120,
	{'Y', 'a'}: -100,
	{'Y', 'e'}: -100,
	{'Y', 'o'}: -110,
	{'r', ','}: -40,
	{'r', '.'}: -55,
	{'w', ','}: -92,
	{'w', '.'}: -92,
	{'y', ','}: -65,
	{'y', '.'}: -65,
}
