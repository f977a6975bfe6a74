package moneyfmt

// builtinCurrencies seeds the default registry. Decimal places follow ISO
// 4217 (0 for JPY-like currencies, 3 for the dinar family, otherwise 2).
// Unit-name coverage is uneven on purpose: every entry carries "en", and
// currencies whose names differ in the bundled languages (az, de, tr) carry
// those too. Everything else is reachable through the lookup fallback.
var builtinCurrencies = []CurrencyInfo{
	{
		Code:           "AED",
		Symbol:         "د.إ",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dirhams"},
		MinorUnitNames: map[string]string{"en": "fils"},
		Countries:      []string{"AE"},
	},
	{
		Code:           "ARS",
		Symbol:         "$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "pesos"},
		MinorUnitNames: map[string]string{"en": "centavos"},
		Countries:      []string{"AR"},
	},
	{
		Code:           "AUD",
		Symbol:         "A$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"AU", "CC", "CX", "KI", "NF", "NR", "TV"},
	},
	{
		Code:           "AZN",
		Symbol:         "₼",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "manat", "az": "manat", "de": "Manat", "tr": "manat"},
		MinorUnitNames: map[string]string{"en": "qepik", "az": "qəpik"},
		Countries:      []string{"AZ"},
	},
	{
		Code:           "BGN",
		Symbol:         "лв",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "leva"},
		MinorUnitNames: map[string]string{"en": "stotinki"},
		Countries:      []string{"BG"},
	},
	{
		Code:           "BHD",
		Symbol:         ".د.ب",
		DecimalPlaces:  3,
		MajorUnitNames: map[string]string{"en": "dinars"},
		MinorUnitNames: map[string]string{"en": "fils"},
		Countries:      []string{"BH"},
	},
	{
		Code:           "BRL",
		Symbol:         "R$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "reais"},
		MinorUnitNames: map[string]string{"en": "centavos"},
		Countries:      []string{"BR"},
	},
	{
		Code:           "CAD",
		Symbol:         "C$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"CA"},
	},
	{
		Code:           "CHF",
		Symbol:         "Fr",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "francs", "de": "Franken"},
		MinorUnitNames: map[string]string{"en": "rappen", "de": "Rappen"},
		Countries:      []string{"CH", "LI"},
	},
	{
		Code:           "CLP",
		Symbol:         "$",
		DecimalPlaces:  0,
		MajorUnitNames: map[string]string{"en": "pesos"},
		MinorUnitNames: map[string]string{"en": "centavos"},
		Countries:      []string{"CL"},
	},
	{
		Code:           "CNY",
		Symbol:         "¥",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "yuan"},
		MinorUnitNames: map[string]string{"en": "fen"},
		Countries:      []string{"CN"},
	},
	{
		Code:           "CZK",
		Symbol:         "Kč",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "korunas"},
		MinorUnitNames: map[string]string{"en": "hellers"},
		Countries:      []string{"CZ"},
	},
	{
		Code:           "DKK",
		Symbol:         "kr",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "kroner"},
		MinorUnitNames: map[string]string{"en": "øre"},
		Countries:      []string{"DK", "FO", "GL"},
	},
	{
		Code:           "EGP",
		Symbol:         "E£",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "pounds"},
		MinorUnitNames: map[string]string{"en": "piastres"},
		Countries:      []string{"EG"},
	},
	{
		Code:           "EUR",
		Symbol:         "€",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "euros", "az": "avro", "de": "Euro", "tr": "avro"},
		MinorUnitNames: map[string]string{"en": "cents", "az": "sent", "de": "Cent", "tr": "sent"},
		Countries: []string{
			"AT", "BE", "CY", "DE", "EE", "ES", "FI", "FR", "GR", "HR",
			"IE", "IT", "LT", "LU", "LV", "MT", "NL", "PT", "SI", "SK",
		},
	},
	{
		Code:           "GBP",
		Symbol:         "£",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "pounds", "de": "Pfund"},
		MinorUnitNames: map[string]string{"en": "pence", "de": "Pence"},
		Countries:      []string{"GB", "GG", "IM", "JE"},
	},
	{
		Code:           "GEL",
		Symbol:         "₾",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "lari"},
		MinorUnitNames: map[string]string{"en": "tetri"},
		Countries:      []string{"GE"},
	},
	{
		Code:           "HKD",
		Symbol:         "HK$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"HK"},
	},
	{
		Code:           "HUF",
		Symbol:         "Ft",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "forints"},
		MinorUnitNames: map[string]string{"en": "fillér"},
		Countries:      []string{"HU"},
	},
	{
		Code:           "IDR",
		Symbol:         "Rp",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "rupiahs"},
		MinorUnitNames: map[string]string{"en": "sen"},
		Countries:      []string{"ID"},
	},
	{
		Code:           "ILS",
		Symbol:         "₪",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "shekels"},
		MinorUnitNames: map[string]string{"en": "agorot"},
		Countries:      []string{"IL", "PS"},
	},
	{
		Code:           "INR",
		Symbol:         "₹",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "rupees"},
		MinorUnitNames: map[string]string{"en": "paise"},
		Countries:      []string{"BT", "IN"},
	},
	{
		Code:           "ISK",
		Symbol:         "kr",
		DecimalPlaces:  0,
		MajorUnitNames: map[string]string{"en": "kronur"},
		MinorUnitNames: map[string]string{"en": "aurar"},
		Countries:      []string{"IS"},
	},
	{
		Code:           "JPY",
		Symbol:         "¥",
		DecimalPlaces:  0,
		MajorUnitNames: map[string]string{"en": "yen", "de": "Yen"},
		MinorUnitNames: map[string]string{"en": "sen"},
		Countries:      []string{"JP"},
	},
	{
		Code:           "KRW",
		Symbol:         "₩",
		DecimalPlaces:  0,
		MajorUnitNames: map[string]string{"en": "won"},
		MinorUnitNames: map[string]string{"en": "jeon"},
		Countries:      []string{"KR"},
	},
	{
		Code:           "KWD",
		Symbol:         "د.ك",
		DecimalPlaces:  3,
		MajorUnitNames: map[string]string{"en": "dinars"},
		MinorUnitNames: map[string]string{"en": "fils"},
		Countries:      []string{"KW"},
	},
	{
		Code:           "KZT",
		Symbol:         "₸",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "tenge"},
		MinorUnitNames: map[string]string{"en": "tiyn"},
		Countries:      []string{"KZ"},
	},
	{
		Code:           "MXN",
		Symbol:         "Mex$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "pesos"},
		MinorUnitNames: map[string]string{"en": "centavos"},
		Countries:      []string{"MX"},
	},
	{
		Code:           "MYR",
		Symbol:         "RM",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "ringgit"},
		MinorUnitNames: map[string]string{"en": "sen"},
		Countries:      []string{"MY"},
	},
	{
		Code:           "NOK",
		Symbol:         "kr",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "kroner"},
		MinorUnitNames: map[string]string{"en": "øre"},
		Countries:      []string{"NO", "SJ"},
	},
	{
		Code:           "NZD",
		Symbol:         "NZ$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"CK", "NU", "NZ", "PN", "TK"},
	},
	{
		Code:           "OMR",
		Symbol:         "ر.ع.",
		DecimalPlaces:  3,
		MajorUnitNames: map[string]string{"en": "rials"},
		MinorUnitNames: map[string]string{"en": "baisa"},
		Countries:      []string{"OM"},
	},
	{
		Code:           "PLN",
		Symbol:         "zł",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "zlotys"},
		MinorUnitNames: map[string]string{"en": "groszy"},
		Countries:      []string{"PL"},
	},
	{
		Code:           "QAR",
		Symbol:         "ر.ق",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "riyals"},
		MinorUnitNames: map[string]string{"en": "dirhams"},
		Countries:      []string{"QA"},
	},
	{
		Code:           "RON",
		Symbol:         "lei",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "lei"},
		MinorUnitNames: map[string]string{"en": "bani"},
		Countries:      []string{"RO"},
	},
	{
		Code:           "RUB",
		Symbol:         "₽",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "rubles"},
		MinorUnitNames: map[string]string{"en": "kopecks"},
		Countries:      []string{"RU"},
	},
	{
		Code:           "SAR",
		Symbol:         "﷼",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "riyals"},
		MinorUnitNames: map[string]string{"en": "halalas"},
		Countries:      []string{"SA"},
	},
	{
		Code:           "SEK",
		Symbol:         "kr",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "kronor"},
		MinorUnitNames: map[string]string{"en": "öre"},
		Countries:      []string{"SE"},
	},
	{
		Code:           "SGD",
		Symbol:         "S$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"SG"},
	},
	{
		Code:           "THB",
		Symbol:         "฿",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "baht"},
		MinorUnitNames: map[string]string{"en": "satang"},
		Countries:      []string{"TH"},
	},
	{
		Code:           "TRY",
		Symbol:         "₺",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "lira", "az": "lirə", "de": "Lira", "tr": "lira"},
		MinorUnitNames: map[string]string{"en": "kurus", "az": "quruş", "tr": "kuruş"},
		Countries:      []string{"TR"},
	},
	{
		Code:           "TWD",
		Symbol:         "NT$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"TW"},
	},
	{
		Code:           "UAH",
		Symbol:         "₴",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "hryvnias"},
		MinorUnitNames: map[string]string{"en": "kopiykas"},
		Countries:      []string{"UA"},
	},
	{
		Code:           "USD",
		Symbol:         "$",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "dollars", "az": "dollar", "de": "Dollar", "tr": "dolar"},
		MinorUnitNames: map[string]string{"en": "cents", "az": "sent", "de": "Cent", "tr": "sent"},
		Countries: []string{
			"AS", "EC", "FM", "GU", "MH", "MP", "PA", "PR", "PW", "SV",
			"TC", "TL", "US", "VG", "VI",
		},
	},
	{
		Code:           "VND",
		Symbol:         "₫",
		DecimalPlaces:  0,
		MajorUnitNames: map[string]string{"en": "dong"},
		MinorUnitNames: map[string]string{"en": "xu"},
		Countries:      []string{"VN"},
	},
	{
		Code:           "ZAR",
		Symbol:         "R",
		DecimalPlaces:  2,
		MajorUnitNames: map[string]string{"en": "rand"},
		MinorUnitNames: map[string]string{"en": "cents"},
		Countries:      []string{"LS", "NA", "SZ", "ZA"},
	},
}
