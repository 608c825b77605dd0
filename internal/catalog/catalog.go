package catalog

import "strings"

// Catalog holds the deduplicated set of listing records in insertion order.
// It is populated once at startup and shared read-only afterwards, so no
// locking is needed during a query session.
type Catalog struct {
	records []*Record
	keys    map[string]*Record

	byOrganization map[string][]*Record
	bySource       map[string][]*Record
}

func New() *Catalog {
	return &Catalog{
		keys:           make(map[string]*Record),
		byOrganization: make(map[string][]*Record),
		bySource:       make(map[string][]*Record),
	}
}

// Add normalizes the record and appends it unless a record with the same
// title+organization+source identity is already present. Reports whether the
// record was added.
func (c *Catalog) Add(r *Record) bool {
	r.Normalize()

	key := r.Key()
	if _, ok := c.keys[key]; ok {
		return false
	}

	c.keys[key] = r
	c.records = append(c.records, r)
	c.byOrganization[strings.ToLower(r.Organization)] = append(c.byOrganization[strings.ToLower(r.Organization)], r)
	c.bySource[strings.ToLower(r.Source)] = append(c.bySource[strings.ToLower(r.Source)], r)

	return true
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the records in insertion order. Callers must treat the
// slice as read-only.
func (c *Catalog) Records() []*Record {
	return c.records
}

// FindByKey returns the record with the given title+organization+source
// identity, or nil.
func (c *Catalog) FindByKey(title, organization, source string) *Record {
	probe := Record{Title: title, Organization: organization, Source: source}
	return c.keys[probe.Key()]
}

// ByOrganization returns all records for the given organization,
// case-insensitive.
func (c *Catalog) ByOrganization(org string) []*Record {
	return c.byOrganization[strings.ToLower(strings.TrimSpace(org))]
}

// BySource returns all records ingested from the given source,
// case-insensitive.
func (c *Catalog) BySource(source string) []*Record {
	return c.bySource[strings.ToLower(strings.TrimSpace(source))]
}

// Organizations returns the distinct lowercased organization names present
// in the catalog.
func (c *Catalog) Organizations() []string {
	orgs := make([]string, 0, len(c.byOrganization))
	for org := range c.byOrganization {
		orgs = append(orgs, org)
	}
	return orgs
}
