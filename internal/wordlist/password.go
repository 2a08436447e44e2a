package wordlist

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	passwordMinLength = 3
	passwordMaxLength = 30
)

var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

var passwordType = Type{
	Name:            "password",
	Description:     "Base words for password cracking (feed into Hashcat rules)",
	DefaultFilename: "password_base_wordlist.txt",
	Validate:        validatePassword,
	Prompt:          passwordPrompt,
	SeedHints: `For effective password wordlists, provide diverse information about the target:
- Personal info: First name, last name, nicknames, usernames
- Important dates: Birthdays (e.g., "May 3 1989"), anniversaries
- Family & pets: Spouse name, children's names, pet names
- Locations: Cities lived in, favorite vacation spots, birthplace
- Interests: Hobbies, favorite sports teams, bands, movies
- Work: Company name, job title, department, projects
- Numbers: Lucky numbers, phone area codes, zip codes

Example: john smith may31989 fluffy chicago bears accounting`,
	UsageNotes: `Next steps:
1. Use with mutation rules in Hashcat:
   hashcat -a 0 -m <hash-type> hashes.txt password_base_wordlist.txt -r rules/best64.rule
2. Combine with masks for hybrid attacks:
   hashcat -a 6 hashes.txt password_base_wordlist.txt ?d?d?d?d
3. Feed into other tools (John the Ripper, CeWL output merging)

Tip: The list contains clean base words on purpose - let the rules add digits and symbols.`,
}

// validatePassword accepts alphanumeric base words of reasonable length.
// Mutation tools add the digits and symbols later.
func validatePassword(word string) bool {
	if len(word) < passwordMinLength || len(word) > passwordMaxLength {
		return false
	}
	return passwordPattern.MatchString(word)
}

func passwordPrompt(seeds []string, length int) string {
	focusAreas := []string{
		"Words semantically related to the seeds (synonyms, associated concepts)",
		"Common variations in spelling (color/colour, center/centre)",
		"Related proper nouns (brands, locations, cultural references)",
		"Compound words using the seeds",
		"Industry or context-specific terminology",
		"Pop culture references related to the seeds",
	}
	doNotInclude := []string{
		"Special characters or numbers (Hashcat will handle mutations)",
		"Explanations or categories",
		"Duplicate words",
		"Very short (less than 3 chars) or very long (over 30 chars) words",
	}

	return fmt.Sprintf(`You are an expert in generating base wordlists for password cracking.

Given these seed words: %s

Generate exactly %d base words that could be used with
mutation rules in tools like Hashcat.

Focus on:
%s

Output ONLY alphanumeric base words, one per line.
Do NOT include:
%s`,
		strings.Join(seeds, ", "), length, bulletList(focusAreas), bulletList(doNotInclude))
}
