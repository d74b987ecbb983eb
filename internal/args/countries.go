package args

// countries is the closed set of two-letter codes the upstream news
// API can filter headlines by. Anything else in a subdomain is treated
// as "no country requested", never as an error.
var countries = map[string]bool{
	"ae": true, "ar": true, "at": true, "au": true, "be": true,
	"bg": true, "br": true, "ca": true, "ch": true, "cn": true,
	"co": true, "cu": true, "cz": true, "de": true, "eg": true,
	"fr": true, "gb": true, "gr": true, "hk": true, "hu": true,
	"id": true, "ie": true, "il": true, "in": true, "it": true,
	"jp": true, "kr": true, "lt": true, "lv": true, "ma": true,
	"mx": true, "my": true, "ng": true, "nl": true, "no": true,
	"nz": true, "ph": true, "pl": true, "pt": true, "ro": true,
	"rs": true, "ru": true, "sa": true, "se": true, "sg": true,
	"si": true, "sk": true, "th": true, "tr": true, "tw": true,
	"ua": true, "us": true, "ve": true, "za": true,
}

// ParseSubdomain picks the country hint out of the request subdomains,
// ordered most-specific last. The last label wins: for the request
// host us.termnews.example the hint is "us". Unsupported or absent
// labels yield ok=false.
func ParseSubdomain(subdomains []string) (code string, ok bool) {
	if len(subdomains) == 0 {
		return "", false
	}
	last := subdomains[len(subdomains)-1]
	if countries[last] {
		return last, true
	}
	return "", false
}
