package country

// vendorNames maps the country names used by the vendor price list to ISO2.
var vendorNames = map[string]string{
	"Belarus":                      "BY",
	"Timor-Leste":                  "TL",
	"Moldova":                      "MD",
	"Philippines":                  "PH",
	"Poland":                       "PL",
	"Germany":                      "DE",
	"Thailand":                     "TH",
	"Gibraltar":                    "GI",
	"Portugal":                     "PT",
	"Singapore":                    "SG",
	"Luxembourg":                   "LU",
	"Ireland":                      "IE",
	"Brunei Darussalam":            "BN",
	"Iceland":                      "IS",
	"New Zealand":                  "NZ",
	"Albania":                      "AL",
	"Malta":                        "MT",
	"Cyprus":                       "CY",
	"Papua New Guinea":             "PG",
	"Georgia":                      "GE",
	"Armenia":                      "AM",
	"Bulgaria":                     "BG",
	"Turkey":                       "TR",
	"American Samoa":               "AS",
	"New Caledonia":                "NC",
	"Slovenia":                     "SI",
	"Macedonia":                    "MK",
	"Liechtenstein":                "LI",
	"Montenegro":                   "ME",
	"Canada":                       "CA",
	"United States":                "US",
	"Puerto Rico":                  "PR",
	"Mexico":                       "MX",
	"Jamaica":                      "JM",
	"French Guiana":                "GF",
	"Egypt":                        "EG",
	"Algeria":                      "DZ",
	"Morocco":                      "MA",
	"Tunisia":                      "TN",
	"Libya":                        "LY",
	"Gambia":                       "GM",
	"Senegal":                      "SN",
	"Mauritania":                   "MR",
	"Mali":                         "ML",
	"Guinea":                       "GN",
	"Saint Kitts and Nevis":        "KN",
	"Ivory Coast":                  "CI",
	"Burkina Faso":                 "BF",
	"Niger":                        "NE",
	"Togo":                         "TG",
	"Benin":                        "BJ",
	"Mauritius":                    "MU",
	"Liberia":                      "LR",
	"Sierra Leone":                 "SL",
	"Ghana":                        "GH",
	"Nigeria":                      "NG",
	"Chad":                         "TD",
	"Dominica":                     "DM",
	"Central African Republic":     "CF",
	"Cameroon":                     "CM",
	"Cuba":                         "CU",
	"Cape Verde":                   "CV",
	"Sao Tome and Principe":        "ST",
	"Dominican Republic":           "DO",
	"Equatorial Guinea":            "GQ",
	"Haiti":                        "HT",
	"Gabon":                        "GA",
	"Republic of Congo":            "CG",
	"Democratic Republic of Congo": "CD",
	"Angola":                       "AO",
	"Guinea-Bissau":                "GW",
	"Seychelles":                   "SC",
	"Rwanda":                       "RW",
	"Ethiopia":                     "ET",
	"Somalia":                      "SO",
	"Djibouti":                     "DJ",
	"Kenya":                        "KE",
	"Tanzania":                     "TZ",
	"Uganda":                       "UG",
	"Burundi":                      "BI",
	"Mozambique":                   "MZ",
	"Zambia":                       "ZM",
	"Madagascar":                   "MG",
	"Zimbabwe":                     "ZW",
	"Namibia":                      "NA",
	"Malawi":                       "MW",
	"Botswana":                     "BW",
	"South Africa":                 "ZA",
	"Azerbaijan":                   "AZ",
	"Eritrea":                      "ER",
	"Kazakhstan":                   "KZ",
	"South Sudan":                  "SS",
	"India":                        "IN",
	"Pakistan":                     "PK",
	"Afghanistan":                  "AF",
	"Sri Lanka":                    "LK",
	"Myanmar":                      "MM",
	"Lebanon":                      "LB",
	"Jordan":                       "JO",
	"Syrian Arab Republic":         "SY",
	"Iraq":                         "IQ",
	"Kuwait":                       "KW",
	"Saudi Arabia":                 "SA",
	"Yemen":                        "YE",
	"Oman":                         "OM",
	"United Arab Emirates":         "AE",
	"State of Palestine":           "PS",
	"Bahrain":                      "BH",
	"Qatar":                        "QA",
	"Mongolia":                     "MN",
	"Nepal":                        "NP",
	"Iran":                         "IR",
	"Uzbekistan":                   "UZ",
	"Tajikistan":                   "TJ",
	"Kyrgyzstan":                   "KG",
	"Turkmenistan":                 "TM",
	"Japan":                        "JP",
	"Belize":                       "BZ",
	"Guatemala":                    "GT",
	"El Salvador":                  "SV",
	"Republic of Korea":            "KR",
	"Vietnam":                      "VN",
	"Honduras":                     "HN",
	"Hong Kong":                    "HK",
	"Nicaragua":                    "NI",
	"Macao":                        "MO",
	"Cambodia":                     "KH",
	"Costa Rica":                   "CR",
	"Panama":                       "PA",
	"Greece":                       "GR",
	"China":                        "CN",
	"Peru":                         "PE",
	"Netherlands":                  "NL",
	"Belgium":                      "BE",
	"France":                       "FR",
	"Argentina":                    "AR",
	"Taiwan":                       "TW",
	"Brazil":                       "BR",
	"Bangladesh":                   "BD",
	"Spain":                        "ES",
	"Hungary":                      "HU",
	"Bosnia and Herzegovina":       "BA",
	"Chile":                        "CL",
	"Croatia":                      "HR",
	"Serbia":                       "RS",
	"Colombia":                     "CO",
	"Italy":                        "IT",
	"Venezuela":                    "VE",
	"Bolivia":                      "BO",
	"Guyana":                       "GY",
	"Romania":                      "RO",
	"Ecuador":                      "EC",
	"Switzerland":                  "CH",
	"Czech Republic":               "CZ",
	"Slovakia":                     "SK",
	"Austria":                      "AT",
	"Paraguay":                     "PY",
	"United Kingdom":               "GB",
	"Suriname":                     "SR",
	"Uruguay":                      "UY",
	"Denmark":                      "DK",
	"Sweden":                       "SE",
	"Norway":                       "NO",
	"Finland":                      "FI",
	"Malaysia":                     "MY",
	"Lithuania":                    "LT",
	"Latvia":                       "LV",
	"Estonia":                      "EE",
	"Australia":                    "AU",
	"Russian Federation":           "RU",
	"Indonesia":                    "ID",
	"Ukraine":                      "UA",
}

// unroutable lists countries the vendor neither prices nor delivers to.
var unroutable = []string{
	"MQ", "FJ", "BM", "KI", "SB", "SD", "LC", "GD", "TC", "TF", "MV", "TV", "PW", "CW", "FM",
	"GP", "SM", "LA", "VC", "LS", "BT", "BB", "TK", "MP", "GL", "TO", "WS", "XK", "PF", "VG",
	"WF", "MC", "AW", "KM", "DG", "TT", "BS", "NF", "SH", "BQ", "AI", "FK", "MS", "NU", "MH",
	"FO", "IL", "VU", "SX", "GU", "AG", "AD", "NR", "KP", "SZ", "CK", "PM", "KY", "VI",
}
