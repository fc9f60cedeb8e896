package countries

import "strings"

// airportCountry maps IATA airport codes to ISO country codes. The table
// covers the major international hubs seen in flight confirmations; an
// unknown code resolves to nothing rather than guessing.
var airportCountry = map[string]string{
	// North America
	"JFK": "US", "EWR": "US", "LAX": "US", "SFO": "US", "ORD": "US",
	"MIA": "US", "SEA": "US", "BOS": "US", "ATL": "US", "DFW": "US",
	"HNL": "US", "YYZ": "CA", "YVR": "CA", "YUL": "CA",
	"MEX": "MX", "CUN": "MX", "SJO": "CR", "PTY": "PA",
	// Europe
	"LHR": "GB", "LGW": "GB", "STN": "GB", "MAN": "GB", "EDI": "GB",
	"CDG": "FR", "ORY": "FR", "NCE": "FR",
	"FRA": "DE", "MUC": "DE", "BER": "DE",
	"FCO": "IT", "MXP": "IT", "VCE": "IT",
	"MAD": "ES", "BCN": "ES", "PMI": "ES", "LIS": "PT", "OPO": "PT",
	"AMS": "NL", "BRU": "BE", "ZRH": "CH", "GVA": "CH", "VIE": "AT",
	"DUB": "IE", "KEF": "IS", "OSL": "NO", "ARN": "SE", "CPH": "DK",
	"HEL": "FI", "ATH": "GR", "IST": "TR", "WAW": "PL", "PRG": "CZ",
	"BUD": "HU", "OTP": "RO", "SVO": "RU", "LED": "RU", "ZAG": "HR",
	"DBV": "HR", "MLA": "MT", "LCA": "CY", "LUX": "LU",
	// Middle East & Africa
	"DXB": "AE", "AUH": "AE", "DOH": "QA", "RUH": "SA", "AMM": "JO",
	"TLV": "IL", "CAI": "EG", "CMN": "MA", "RAK": "MA", "TUN": "TN",
	"NBO": "KE", "JRO": "TZ", "ZNZ": "TZ", "JNB": "ZA", "CPT": "ZA",
	"ADD": "ET", "ACC": "GH", "LOS": "NG", "MRU": "MU", "TNR": "MG",
	"WDH": "NA", "GBE": "BW",
	// Asia
	"NRT": "JP", "HND": "JP", "KIX": "JP", "PEK": "CN", "PVG": "CN",
	"ICN": "KR", "TPE": "TW", "HKG": "HK", "SIN": "SG", "KUL": "MY",
	"BKK": "TH", "HKT": "TH", "CNX": "TH", "SGN": "VN", "HAN": "VN",
	"PNH": "KH", "REP": "KH", "VTE": "LA", "RGN": "MM", "MNL": "PH",
	"CGK": "ID", "DPS": "ID", "DEL": "IN", "BOM": "IN", "GOI": "IN",
	"KTM": "NP", "CMB": "LK", "MLE": "MV",
	// Oceania & South America
	"SYD": "AU", "MEL": "AU", "BNE": "AU", "AKL": "NZ", "ZQN": "NZ",
	"NAN": "FJ", "PPT": "PF",
	"GRU": "BR", "GIG": "BR", "EZE": "AR", "SCL": "CL", "LIM": "PE",
	"CUZ": "PE", "BOG": "CO", "UIO": "EC", "GPS": "EC", "LPB": "BO",
	"MVD": "UY", "CCS": "VE",
	// Caribbean & Central America
	"HAV": "CU", "MBJ": "JM", "KIN": "JM", "PUJ": "DO", "SDQ": "DO",
	"NAS": "BS", "GUA": "GT", "BZE": "BZ",
}

// ByAirport resolves an IATA airport code to its country, or nil when the
// code is unknown. Matching is case-insensitive.
func ByAirport(code string) *Country {
	cc, ok := airportCountry[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil
	}
	return ByCode(cc)
}
