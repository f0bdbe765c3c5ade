package message

// gsmBasic is the GSM 03.38 default alphabet as accepted by the vendor API.
// ç and the Greek capitals that double-map onto Latin letters are absent:
// the API treats them as non-GSM and switches the whole message to UCS2.
const gsmBasic = "\x00\n\r !\"#$%&'()*+,-./0123456789:;<=>?@" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz" +
	"\u00a0¡£¤¥§¿ÄÅÆÇÉÑÖØÜßàäåæèéìñòöøùü" +
	"ΓΔΘΛΞΠΣΦΨΩ"

// gsmExtension characters need an escape septet before the symbol
const gsmExtension = "\f^{}\\[~]|€"

var (
	basicSet     = runeSet(gsmBasic)
	extensionSet = runeSet(gsmExtension)
)

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

// IsBasic reports whether r is in the GSM default alphabet
func IsBasic(r rune) bool {
	_, ok := basicSet[r]
	return ok
}

// IsExtension reports whether r is reachable only through the GSM escape
func IsExtension(r rune) bool {
	_, ok := extensionSet[r]
	return ok
}

// IsGSM reports whether r can be sent without switching to UCS2
func IsGSM(r rune) bool {
	return IsBasic(r) || IsExtension(r)
}
