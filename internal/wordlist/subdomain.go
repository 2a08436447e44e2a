package wordlist

import (
	"fmt"
	"regexp"
	"strings"
)

// DNS label limit.
const subdomainMaxLength = 63

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

var subdomainType = Type{
	Name:            "subdomain",
	Description:     "Subdomain labels for DNS enumeration",
	DefaultFilename: "subdomain_wordlist.txt",
	Normalize:       strings.ToLower,
	Validate:        validateSubdomain,
	Prompt:          subdomainPrompt,
	SeedHints: `For effective subdomain wordlists, provide information about the organization:
- Company: Name, abbreviations, stock ticker, brand names
- Industry: Sector keywords, industry-specific terms
- Technology: Known tech stack, platforms, services used
- Geographic: Office locations, regions served, country codes
- Products: Product names, service names, project codenames
- Structure: Department names, team names, business units
- Partners: Vendor names, client names, integration partners

Example: acmecorp acme fintech aws cloud newyork payment gateway`,
	UsageNotes: `Next steps:
1. Use with subdomain enumeration tools:
   gobuster dns -d target.com -w subdomain_wordlist.txt
   ffuf -u https://FUZZ.target.com -w subdomain_wordlist.txt
   subfinder -d target.com -wL subdomain_wordlist.txt
2. Combine with passive sources (certificate transparency, passive DNS)
3. Verify discovered subdomains: check for wildcard DNS, probe for live hosts

Tip: Many organizations use predictable patterns - the model helps find these.`,
}

// validateSubdomain accepts a single lowercase DNS label. Candidates are
// lowercased by Normalize before this runs.
func validateSubdomain(word string) bool {
	if len(word) == 0 || len(word) > subdomainMaxLength {
		return false
	}
	if strings.Contains(word, "--") {
		return false
	}
	return subdomainPattern.MatchString(word)
}

func subdomainPrompt(seeds []string, length int) string {
	focusAreas := []string{
		"Common subdomain patterns (api, dev, staging, prod, test)",
		"Department names (hr, finance, it, sales)",
		"Geographic indicators (us-east, eu-west, asia)",
		"Service indicators (mail, ftp, vpn, portal)",
		"Version indicators (v1, v2, new, old, legacy)",
		"Environment indicators (uat, qa, demo)",
		"Combinations with seed words",
		"Industry-specific subdomains based on the seed context",
	}

	return fmt.Sprintf(`You are an expert in generating subdomain wordlists for penetration testing.

Given these seed words: %s

Generate exactly %d potential subdomains.

Focus on:
%s

Output ONLY valid subdomain labels (lowercase, alphanumeric, hyphens allowed
but not at start/end).
One subdomain per line, no explanations.`,
		strings.Join(seeds, ", "), length, bulletList(focusAreas))
}
