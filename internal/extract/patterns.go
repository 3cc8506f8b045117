package extract

import "regexp"

// patternRule is one ordered extraction rule applied to the preprocessed
// text. Group 1 of the regexp is the raw candidate span.
type patternRule struct {
	Name string
	Re   *regexp.Regexp
}

// patternRules run in order; earlier rules capture higher-confidence
// shapes so their candidates seed the pool first.
var patternRules = []patternRule{
	{
		// "Nature Physics Letters", "Chemical Engineering Journal":
		// capitalized phrase ending in a structural journal word.
		Name: "structural-tail",
		Re: regexp.MustCompile(`\b((?:[A-Z][A-Za-z&'-]+\s+){1,6}` +
			`(?:Journal|Letters|Reports|Reviews|Proceedings|Communications|Transactions|Bulletin))\b`),
	},
	{
		// "Journal of Theoretical Biology", "Reviews of Modern Physics".
		Name: "journal-of",
		Re: regexp.MustCompile(`\b((?:The\s+)?(?:Journal|Journals|Reviews|Annals|Archives|Proceedings)\s+` +
			`(?:of|in|on)\s+(?:the\s+)?[A-Z][A-Za-z&'-]*` +
			`(?:\s+(?:and|of|in|on|the|for|[A-Z][A-Za-z&'-]*)){0,7})`),
	},
	{
		// Citation-style lead-ins: "published in Physics Letters B".
		Name: "published-in",
		Re:   regexp.MustCompile(`(?i)published\s+in[:\s]+([A-Z][^,\n\r]{6,80})`),
	},
	{
		// "To cite this article: ... Journal Name 2024".
		Name: "cite-this",
		Re:   regexp.MustCompile(`(?i)cite\s+this\s+article[:\s][^\n]*?([A-Z][A-Za-z&'.\s-]{6,80}?)[,\s]+\(?(?:19|20)\d{2}`),
	},
	{
		// Reference-style abbreviations: "Phys. Rev. Lett.",
		// "J. Theor. Biol." — 2 to 4 dotted fragments.
		Name: "dotted-abbrev",
		Re:   regexp.MustCompile(`\b((?:[A-Z][A-Za-z]{0,9}\.\s*){2,4})`),
	},
	{
		// Capitalized multi-word phrase immediately before a volume,
		// issue, ISSN, or page marker.
		Name: "volume-prefix",
		Re: regexp.MustCompile(`\b((?:[A-Z][A-Za-z&'-]+[\s,]+){1,7})` +
			`(?:Vol\.?|Volume|No\.?|Issue|ISSN|pp\.?|\d+\s*\(\d+\))`),
	},
}

// Candidate-cleaning patterns.
var (
	// Trailing citation plumbing: volume, issue, pages, ISSN, DOI, year.
	reTrailingCitation = regexp.MustCompile(`(?i)[\s,;:]*(?:\b(?:vol|volume|no|issue|pp|pages?|issn|e-issn|doi)\b\.?|\bhttps?://|\b\(?(?:19|20)\d{2}\b)[\s\S]*$`)
	reTrailingParen    = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	reLeadingArticle   = regexp.MustCompile(`(?i)^(?:the|in|a)\s+`)
	reTrailingJunk     = regexp.MustCompile(`[\s,;:.·|()–—-]+$`)
	reLeadingJunk      = regexp.MustCompile(`^[\s,;:.·|–—-]+`)
)

// Validation patterns.
var (
	// A dotted-abbreviation shape counts as multi-word even when it has a
	// single space-free token ("Phys.Rev.Lett.").
	reAbbrevShape = regexp.MustCompile(`^(?:[A-Z][A-Za-z]{0,9}\.\s*){2,}$`)

	// denyList matches non-journal boilerplate that pattern rules keep
	// snagging: section headers, affiliations, contact lines, page marks.
	denyList = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:abstract|keywords?|introduction|conclusions?|references|bibliography|acknowledg|appendix|supplementary)\b`),
		regexp.MustCompile(`(?i)\b(?:received|accepted|revised|available online)\b`),
		regexp.MustCompile(`(?i)^(?:corresponding\s+)?authors?\b`),
		regexp.MustCompile(`(?i)\b(?:university|department|faculty|institute|school|laboratory|college)\s+of\b`),
		regexp.MustCompile(`(?i)\be-?mail\b|@`),
		regexp.MustCompile(`(?i)https?://|www\.|\.com\b|\.org\b|\.edu\b`),
		regexp.MustCompile(`(?i)^page\s+\d+|\bdownloaded\s+from\b`),
		regexp.MustCompile(`(?i)^(?:figure|fig\.|table)\s*\d`),
		regexp.MustCompile(`(?i)^contents\s+lists?\s+available\b`),
		regexp.MustCompile(`(?i)\ball\s+rights\s+reserved\b`),
	}
)

// Section and metadata detection used by the line-based extraction passes.
var (
	reReferencesHead = regexp.MustCompile(`(?i)^\s*(?:\d+\.?\s*)?(?:references|bibliography|literature cited)\s*$`)
	reVolumeMarker   = regexp.MustCompile(`(?i)(?:vol\.?|volume)\s*\d+|\b\d+\s*\(\d+\)|issn|\bpp\.?\s*\d+|\((?:19|20)\d{2}\)|\b(?:19|20)\d{2}\b`)
	reCopyrightLine  = regexp.MustCompile(`(?i)©|\(c\)\s*(?:19|20)\d{2}|\bcopyright\b|\bpublished by\b|\belsevier\b|\bspringer\b|\bwiley\b|\btaylor\s*&\s*francis\b`)
	reRefEntryAbbrev = regexp.MustCompile(`(?:[A-Z][A-Za-z]{0,9}\.\s*){2,4}`)
)
