package wordlist

import (
	"fmt"
	"regexp"
	"strings"
)

// S3 bucket name limits, which are the tightest of the common clouds.
const (
	cloudResourceMinLength = 3
	cloudResourceMaxLength = 63
)

var cloudResourcePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9_-]*[a-z0-9])?$`)

var cloudResourceType = Type{
	Name:            "cloud-resource",
	Description:     "Cloud resource names (buckets, storage accounts, registries)",
	DefaultFilename: "cloud_resource_wordlist.txt",
	Normalize:       strings.ToLower,
	Validate:        validateCloudResource,
	Prompt:          cloudResourcePrompt,
	SeedHints: `For effective cloud resource wordlists, provide diverse context:
- Company: Name, stock ticker, common abbreviations
- Industry: Automotive, finance, healthcare, retail, etc.
- Products: Main products, services, or platforms
- Technology: Cloud provider (AWS/Azure/GCP), tech stack
- Projects: Known project names or internal initiatives
- Geography: Headquarters, major offices, target markets
- Culture: Any known internal terminology or naming patterns

Example: tesla automotive aws s3 autopilot california energy

The more context provided, the more realistic the generated names!`,
	UsageNotes: `Next steps:
1. Use with cloud enumeration tools:
   cloud_enum -k keyword -b cloud_resource_wordlist.txt
   s3scanner scan --buckets-file cloud_resource_wordlist.txt
2. Check multiple providers - naming carries over between AWS, Azure, and GCP
3. Look for both the resource and its common suffixes (-backup, -logs, -dev)

Tip: Engineers reuse names across services - a hit on one provider is a lead on the others.`,
}

// validateCloudResource accepts lowercase names with interior hyphens or
// underscores. Candidates are lowercased by Normalize before this runs.
func validateCloudResource(word string) bool {
	if len(word) < cloudResourceMinLength || len(word) > cloudResourceMaxLength {
		return false
	}
	for _, bad := range []string{"--", "__", "-_", "_-"} {
		if strings.Contains(word, bad) {
			return false
		}
	}
	return cloudResourcePattern.MatchString(word)
}

func cloudResourcePrompt(seeds []string, length int) string {
	focusAreas := []string{
		"Company abbreviations and variations (e.g., tesla -> tsl, tsla)",
		"Realistic project codenames and internal references",
		"Common cloud naming patterns that real engineers use",
		"Mix obvious names with less predictable but plausible ones",
		"Department abbreviations (eng, mktg, ops, fin)",
		"Regional variations beyond standard AWS regions",
		"Internal tool names and platform references",
		"Data classification terms (public, internal, confidential)",
		"Service-specific patterns based on the cloud provider",
		"Version/iteration patterns (alpha, beta, rc, release)",
	}
	namingPatterns := []string{
		"Short abbreviations: tsl-data, auto-ml, vehicle-api",
		"Project names: autopilot-models, battery-analytics, fleet-data",
		"Internal tools: telemetry-processor, ota-staging, diagnostics-cache",
		"Team buckets: mobility-assets, energy-backups, ai-training-data",
		"Time-based: quarterly-reports, daily-exports, snapshot-archive",
		"Purpose-specific: customer-uploads, firmware-releases, map-tiles",
	}

	return fmt.Sprintf(`You are an expert in cloud infrastructure penetration testing who understands
how real companies name their cloud resources in practice.

Given these seed words: %s

Generate exactly %d realistic cloud resource names that a
company might actually use. Think like a developer or DevOps engineer who
needs practical, memorable names.

Key principles:
%s

Example realistic patterns:
%s

Important: Avoid overly generic combinations. Make names that sound like
what you'd find in a real company's cloud infrastructure.

Output ONLY resource names (lowercase, hyphens/underscores allowed).
One name per line, no explanations.`,
		strings.Join(seeds, ", "), length, bulletList(focusAreas), bulletList(namingPatterns))
}
