// Package naming validates directory names against an ordered set of
// naming-convention rules and provides purpose-based name suggestions.
//
// # Rules
//
// Ten rules are evaluated strictly in priority order (1 is highest). The first
// rule whose check matches wins; lower rules are never consulted:
//
//  1. Prefix rules (_name/, .name/, __name__/)
//  2. Chronological directories (YYYY/, MM/, DD/)
//  3. International standards and abbreviations (en/, i18n/, spec/)
//  4. Industry conventions (lib/, tests/, docs/)
//  5. System reserved (documented only, never matches)
//  6. Lifecycle states (archived/, active/, pending/)
//  7. Frequency (daily/, monthly/)
//  8. Visibility and attributes (public/, internal/)
//  9. Functional categories (generate/, governance/)
//  10. General names (adr/, drafts/)
//
// Names are matched in canonical form, with a trailing slash:
//
//	res := naming.Evaluate(naming.Canonical("archived"))
//	if res.Valid {
//		fmt.Println(res.Rule.Number, res.Message)
//	}
//
// # Suggestions
//
// Suggest returns a static list of bare names for a purpose key:
//
//	for _, s := range naming.Suggest(naming.PurposeTimeline) {
//		fmt.Println(s.Name + "/")
//	}
//
// The suggestion table is maintained separately from the rule table.
package naming
