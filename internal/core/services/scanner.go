package services

import (
	"sort"
	"strings"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// previewLimit caps preview text length before an ellipsis is appended.
const previewLimit = 100

// Stacking bonuses applied on top of the matcher score and type bonus
// when the whole field text relates to the query. Equality implies
// prefix implies containment, so an exact field collects all three.
const (
	fieldEqualsBonus   = 100
	fieldPrefixBonus   = 50
	fieldContainsBonus = 20
)

// scanDocument runs the fuzzy matcher across every searchable field of
// one document and returns the raw match candidates. Filenames are
// visited in sorted order so repeated scans produce identical output.
func scanDocument(doc *domain.Document, query string) []domain.MatchCandidate {
	var out []domain.MatchCandidate

	if score, ok := Match(doc.Name, query); ok {
		out = append(out, fieldCandidate(doc.ID, domain.FieldName, doc.Name, query, score))
	}

	if score, ok := Match(doc.Description, query); ok {
		out = append(out, fieldCandidate(doc.ID, domain.FieldDescription, doc.Description, query, score))
	}

	for _, filename := range sortedFilenames(doc.Files) {
		if score, ok := Match(filename, query); ok {
			c := fieldCandidate(doc.ID, domain.FieldFilename, filename, query, score)
			c.SubKey = filename
			out = append(out, c)
		}
	}

	for _, filename := range sortedFilenames(doc.Files) {
		out = append(out, scanContent(doc.ID, filename, doc.Files[filename].Content, query)...)
	}

	// At most one tag candidate per document: first match wins. This
	// keeps a heavily tagged document from flooding the result list.
	for _, tag := range doc.Tags {
		score, ok := Match(tag, query)
		if !ok {
			continue
		}
		c := domain.MatchCandidate{
			DocumentID: doc.ID,
			FieldKind:  domain.FieldTag,
			SubKey:     tag,
			Score:      score + domain.FieldTag.TypeBonus() + stackingBonus(tag, query),
			Preview:    "#" + tag,
			Context:    tag,
		}
		out = append(out, c)
		break
	}

	return out
}

// scanContent matches each line of a file and builds a three-line
// context window (previous, match, next) around every hit.
func scanContent(docID, filename, content, query string) []domain.MatchCandidate {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	var out []domain.MatchCandidate

	for i, line := range lines {
		score, ok := Match(line, query)
		if !ok {
			continue
		}

		ctx := make([]string, 0, 3)
		if i > 0 {
			ctx = append(ctx, lines[i-1])
		}
		ctx = append(ctx, line)
		if i+1 < len(lines) {
			ctx = append(ctx, lines[i+1])
		}

		out = append(out, domain.MatchCandidate{
			DocumentID: docID,
			FieldKind:  domain.FieldContent,
			SubKey:     filename,
			LineNumber: i + 1,
			Score:      score + domain.FieldContent.TypeBonus() + stackingBonus(line, query),
			Preview:    truncatePreview(line),
			Context:    strings.Join(ctx, "\n"),
		})
	}

	return out
}

// browseCandidate is the zero-score name candidate emitted per document
// when the query is empty (browse-all mode). No matching is computed.
func browseCandidate(doc *domain.Document) domain.MatchCandidate {
	return domain.MatchCandidate{
		DocumentID: doc.ID,
		FieldKind:  domain.FieldName,
		Preview:    truncatePreview(doc.Name),
		Context:    doc.Name,
	}
}

func fieldCandidate(docID string, kind domain.FieldKind, text, query string, score int) domain.MatchCandidate {
	return domain.MatchCandidate{
		DocumentID: docID,
		FieldKind:  kind,
		Score:      score + kind.TypeBonus() + stackingBonus(text, query),
		Preview:    truncatePreview(text),
		Context:    text,
	}
}

// stackingBonus rewards whole-field relationships to the query,
// independent of the matcher's own tiers.
func stackingBonus(field, query string) int {
	f := strings.ToLower(field)
	q := strings.ToLower(query)
	if q == "" {
		return 0
	}

	bonus := 0
	if f == q {
		bonus += fieldEqualsBonus
	}
	if strings.HasPrefix(f, q) {
		bonus += fieldPrefixBonus
	}
	if strings.Contains(f, q) {
		bonus += fieldContainsBonus
	}
	return bonus
}

// truncatePreview limits text to previewLimit runes, appending an
// ellipsis marker when truncated.
func truncatePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}

func sortedFilenames(files map[string]domain.GistFile) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
