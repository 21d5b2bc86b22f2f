package clients

import "strings"

// Slugify lowercases a client name and collapses every run of
// non-alphanumeric characters into a single hyphen. The mapping is lossy:
// "A B" and "A-B" both slugify to "a-b", so two differently named clients
// can collide.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			if b.Len() > 0 {
				pendingHyphen = true
			}
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FindBySlug returns the first record whose slug matches. Because slugs are
// not unique, a collision resolves to the earliest record in list order; this
// is a documented limitation, not a guarantee worth relying on.
func FindBySlug(records []Record, slug string) (Record, bool) {
	for _, rec := range records {
		if rec.Slug() == slug {
			return rec, true
		}
	}
	return Record{}, false
}
