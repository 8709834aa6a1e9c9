package spotify

import (
	"net/url"
	"strconv"
	"strings"
)

// Ref identifies a catalog entity either by Spotify id or by name.
//
// A name is resolved to an id with a search scoped to the entity kind of
// the method it is passed to, and the first result is used.
type Ref struct {
	ID   string
	Name string
}

// ID returns a Ref for a known Spotify id.
func ID(id string) Ref {
	return Ref{ID: id}
}

// Name returns a Ref that is resolved by searching for name.
func Name(name string) Ref {
	return Ref{Name: name}
}

// IDs returns Refs for a list of Spotify ids.
func IDs(ids ...string) []Ref {
	refs := make([]Ref, len(ids))
	for i, id := range ids {
		refs[i] = ID(id)
	}
	return refs
}

// Names returns Refs for a list of names.
func Names(names ...string) []Ref {
	refs := make([]Ref, len(names))
	for i, name := range names {
		refs[i] = Name(name)
	}
	return refs
}

// String returns the id, or the quoted name for unresolved refs.
func (r Ref) String() string {
	if r.ID != "" {
		return r.ID
	}
	return strconv.Quote(r.Name)
}

// Options are the optional query parameters accepted by list and lookup
// endpoints. Zero values are left out of the request, and the endpoint's
// documented default (or the client's market) applies instead.
type Options struct {
	Market        string   // ISO 3166-1 alpha-2 market code
	Country       string   // Country code for browse endpoints
	Locale        string   // e.g. "sv_SE" for browse endpoints
	Limit         int      // Page size
	Offset        int      // Index of the first item
	IncludeGroups []string // Album groups for artist albums
	Timestamp     string   // ISO 8601 timestamp for featured playlists

	// Extra is forwarded to the API unchanged, so parameters this package
	// does not know about can still be sent.
	Extra url.Values
}

// query builds the query string for opt on top of the endpoint defaults.
// Values in opt override defaults; empty values are dropped.
func (opt *Options) query(defaults url.Values) url.Values {
	q := url.Values{}
	for k, vs := range defaults {
		q[k] = append([]string(nil), vs...)
	}

	if opt != nil {
		setParam(q, "market", opt.Market)
		setParam(q, "country", opt.Country)
		setParam(q, "locale", opt.Locale)
		setParam(q, "timestamp", opt.Timestamp)
		if opt.Limit > 0 {
			q.Set("limit", strconv.Itoa(opt.Limit))
		}
		if opt.Offset > 0 {
			q.Set("offset", strconv.Itoa(opt.Offset))
		}
		if len(opt.IncludeGroups) > 0 {
			q.Set("include_groups", strings.Join(opt.IncludeGroups, ","))
		}
		for k, vs := range opt.Extra {
			q[k] = append([]string(nil), vs...)
		}
	}

	for k, vs := range q {
		if len(vs) == 0 || (len(vs) == 1 && vs[0] == "") {
			delete(q, k)
		}
	}

	return q
}

func setParam(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
