package wordlist

import (
	"fmt"
	"regexp"
	"strings"
)

const directoryMaxLength = 255

var directoryPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.~/]+$`)

var directoryType = Type{
	Name:            "directory",
	Description:     "Directory and file paths for web fuzzing",
	DefaultFilename: "directory_wordlist.txt",
	Validate:        validateDirectory,
	Prompt:          directoryPrompt,
	SeedHints: `For effective directory/file wordlists, provide information about the target:
- Technology: Framework names (WordPress, Django, Laravel, Spring)
- Company: Name, abbreviations, product names, project codenames
- Platform: Server type (Apache, Nginx, IIS), language (PHP, Python, Java)
- Purpose: Application type (ecommerce, blog, API, admin panel)
- Version: Known version numbers or release names
- Industry: Sector-specific terms that might appear in paths
- Known paths: Any discovered directories or naming patterns

Example: wordpress acmecorp blog php apache ecommerce payment`,
	UsageNotes: `Next steps:
1. Use with web content discovery tools:
   gobuster dir -u https://target.com -w directory_wordlist.txt
   ffuf -u https://target.com/FUZZ -w directory_wordlist.txt
   feroxbuster -u https://target.com -w directory_wordlist.txt
2. Try with and without common extensions (-x php,bak,old)
3. Watch for interesting status codes (403 can be as useful as 200)

Tip: The list mixes directories and files on purpose - fuzz both.`,
}

// validateDirectory accepts a well-formed relative path segment chain:
// no traversal, no leading/trailing slash.
func validateDirectory(word string) bool {
	if len(word) == 0 || len(word) > directoryMaxLength {
		return false
	}
	if strings.Contains(word, "..") {
		return false
	}
	if word == "." {
		return false
	}
	if strings.HasPrefix(word, "/") || strings.HasSuffix(word, "/") {
		return false
	}
	return directoryPattern.MatchString(word)
}

func directoryPrompt(seeds []string, length int) string {
	focusAreas := []string{
		"Common directory patterns (admin, backup, config, logs, temp)",
		"Framework-specific paths (wp-admin, wp-content for WordPress)",
		"File extensions (.bak, .old, .config, .log, .zip)",
		"Environment indicators (dev, test, staging, prod)",
		"API endpoints (api/v1, rest, graphql)",
		"Hidden files and directories (.git, .env, .htaccess)",
		"Backup patterns (backup.zip, site.tar.gz, dump.sql)",
		"Technology-specific paths based on seed context",
	}

	return fmt.Sprintf(`You are an expert in generating directory/file paths for web fuzzing tools.

Given these seed words: %s

Generate exactly %d directory and file paths for web bruteforcing.

IMPORTANT FORMAT RULES:
- NO leading slashes (correct: admin, api/v1, NOT: /admin, /api/v1)
- Include both single-level and multi-level paths
- Mix directories and files with extensions
- Use only: letters, numbers, hyphens, underscores, dots, tildes, forward slashes

Examples of valid paths:
admin
api/v1/users
backup.zip
.git/config
static/js/app.js
wp-content/uploads

Focus on:
%s

Output ONLY the paths, one per line, no explanations.`,
		strings.Join(seeds, ", "), length, bulletList(focusAreas))
}
