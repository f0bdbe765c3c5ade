package country

// defaultPrefixes is the bundled calling-code table. "1" and "7" are the
// fallbacks for the shared NANP and Russia/Kazakhstan zones; longer entries
// carve individual countries out of them.
var defaultPrefixes = concat(
	[]Prefix{
		{"1", "US"}, {"93", "AF"}, {"355", "AL"}, {"213", "DZ"}, {"376", "AD"}, {"244", "AO"}, {"54", "AR"},
		{"374", "AM"}, {"297", "AW"}, {"61", "AU"}, {"43", "AT"}, {"994", "AZ"}, {"973", "BH"}, {"880", "BD"},
		{"375", "BY"}, {"32", "BE"}, {"501", "BZ"}, {"229", "BJ"}, {"975", "BT"}, {"591", "BO"}, {"387", "BA"},
		{"267", "BW"}, {"55", "BR"}, {"673", "BN"}, {"359", "BG"}, {"226", "BF"}, {"257", "BI"}, {"238", "CV"},
		{"855", "KH"}, {"237", "CM"}, {"236", "CF"}, {"235", "TD"}, {"56", "CL"}, {"86", "CN"}, {"57", "CO"},
		{"269", "KM"}, {"242", "CG"}, {"682", "CK"}, {"506", "CR"}, {"225", "CI"}, {"385", "HR"}, {"53", "CU"},
		{"357", "CY"}, {"420", "CZ"}, {"850", "KP"}, {"243", "CD"}, {"45", "DK"}, {"253", "DJ"}, {"593", "EC"},
		{"20", "EG"}, {"503", "SV"}, {"240", "GQ"}, {"291", "ER"}, {"372", "EE"}, {"268", "SZ"}, {"251", "ET"},
		{"500", "FK"}, {"298", "FO"}, {"679", "FJ"}, {"358", "FI"}, {"33", "FR"}, {"262", "TF"}, {"594", "GF"},
		{"689", "PF"}, {"241", "GA"}, {"220", "GM"}, {"995", "GE"}, {"49", "DE"}, {"233", "GH"}, {"350", "GI"},
		{"30", "GR"}, {"299", "GL"}, {"590", "GP"}, {"502", "GT"}, {"224", "GN"}, {"245", "GW"}, {"592", "GY"},
		{"509", "HT"}, {"504", "HN"}, {"852", "HK"}, {"36", "HU"}, {"354", "IS"}, {"91", "IN"}, {"62", "ID"},
		{"98", "IR"}, {"964", "IQ"}, {"353", "IE"}, {"972", "IL"}, {"39", "IT"}, {"81", "JP"}, {"962", "JO"},
		{"254", "KE"}, {"686", "KI"}, {"82", "KR"}, {"383", "XK"}, {"965", "KW"}, {"996", "KG"}, {"856", "LA"},
		{"371", "LV"}, {"961", "LB"}, {"266", "LS"}, {"231", "LR"}, {"218", "LY"}, {"423", "LI"}, {"370", "LT"},
		{"352", "LU"}, {"853", "MO"}, {"261", "MG"}, {"265", "MW"}, {"60", "MY"}, {"960", "MV"}, {"223", "ML"},
		{"356", "MT"}, {"692", "MH"}, {"596", "MQ"}, {"222", "MR"}, {"230", "MU"}, {"52", "MX"}, {"691", "FM"},
		{"373", "MD"}, {"377", "MC"}, {"976", "MN"}, {"382", "ME"}, {"212", "MA"}, {"258", "MZ"}, {"95", "MM"},
		{"264", "NA"}, {"674", "NR"}, {"977", "NP"}, {"31", "NL"}, {"687", "NC"}, {"64", "NZ"}, {"505", "NI"},
		{"227", "NE"}, {"234", "NG"}, {"683", "NU"}, {"672", "NF"}, {"389", "MK"}, {"47", "NO"}, {"968", "OM"},
		{"92", "PK"}, {"680", "PW"}, {"507", "PA"}, {"675", "PG"}, {"595", "PY"}, {"51", "PE"}, {"63", "PH"},
		{"48", "PL"}, {"351", "PT"}, {"974", "QA"}, {"40", "RO"}, {"250", "RW"}, {"290", "SH"}, {"247", "SH"},
		{"508", "PM"}, {"685", "WS"}, {"378", "SM"}, {"239", "ST"}, {"966", "SA"}, {"221", "SN"}, {"381", "RS"},
		{"248", "SC"}, {"232", "SL"}, {"65", "SG"}, {"421", "SK"}, {"386", "SI"}, {"677", "SB"}, {"252", "SO"},
		{"27", "ZA"}, {"211", "SS"}, {"34", "ES"}, {"94", "LK"}, {"249", "SD"}, {"597", "SR"}, {"46", "SE"},
		{"41", "CH"}, {"963", "SY"}, {"886", "TW"}, {"992", "TJ"}, {"255", "TZ"}, {"66", "TH"}, {"670", "TL"},
		{"228", "TG"}, {"690", "TK"}, {"676", "TO"}, {"216", "TN"}, {"90", "TR"}, {"993", "TM"}, {"688", "TV"},
		{"256", "UG"}, {"380", "UA"}, {"971", "AE"}, {"44", "GB"}, {"598", "UY"}, {"998", "UZ"}, {"678", "VU"},
		{"58", "VE"}, {"84", "VN"}, {"681", "WF"}, {"967", "YE"}, {"260", "ZM"}, {"263", "ZW"}, {"970", "PS"},
		{"7", "RU"}, {"76", "KZ"}, {"77", "KZ"}, {"246", "DG"}, {"5997", "CW"}, {"5994", "CW"}, {"5993", "CW"},
		{"5999", "BQ"}, {"5996", "BQ"},
	},
	nanp("CA",
		"204", "226", "236", "249", "250", "263", "289", "306", "343", "354", "365", "367",
		"368", "382", "403", "416", "418", "428", "431", "437", "438", "450", "456", "468",
		"474", "506", "514", "519", "548", "579", "581", "584", "587", "600", "604", "613",
		"622", "639", "647", "672", "683", "705", "709", "710", "742", "753", "778", "780",
		"782", "807", "819", "825", "867", "873", "879", "902", "905",
	),
	nanp("BS", "242"),
	nanp("BB", "246"),
	nanp("AI", "264"),
	nanp("AG", "268"),
	nanp("VG", "284"),
	nanp("VI", "340"),
	nanp("KY", "345"),
	nanp("BM", "441"),
	nanp("GD", "473"),
	nanp("TC", "649"),
	nanp("MS", "664"),
	nanp("MP", "670"),
	nanp("GU", "671"),
	nanp("AS", "684"),
	nanp("SX", "721"),
	nanp("LC", "758"),
	nanp("PR", "787", "939"),
	nanp("DM", "767"),
	nanp("VC", "784"),
	nanp("DO", "809", "829", "849"),
	nanp("TT", "868"),
	nanp("KN", "869"),
	nanp("JM", "658", "876"),
)

// nanp expands three-digit area codes under the +1 calling code.
func nanp(country string, areaCodes ...string) []Prefix {
	out := make([]Prefix, 0, len(areaCodes))
	for _, ac := range areaCodes {
		out = append(out, Prefix{Digits: "1" + ac, Country: country})
	}
	return out
}

func concat(groups ...[]Prefix) []Prefix {
	var out []Prefix
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
