package citypop

import (
	"io"
	"log/slog"
	"os"
)

// Policy controls what a search does with a record that fails to decode.
type Policy uint8

const (
	// FailFast aborts the search on the first malformed record and
	// discards any matches collected so far.
	FailFast Policy = iota
	// SkipMalformed logs malformed records and keeps scanning.
	SkipMalformed
)

// searchConfig holds the options for one search.
type searchConfig struct {
	stdin   io.Reader
	logger  *slog.Logger
	policy  Policy
	fuzzy   int
	near    *area
	badNear bool
}

// Option configures a search.
type Option func(*searchConfig)

// WithStdin sets the reader used when no path is given. Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(c *searchConfig) {
		c.stdin = r
	}
}

// WithLogger sets the logger used for debug output. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(c *searchConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolicy sets the malformed record policy. Defaults to FailFast.
func WithPolicy(p Policy) Option {
	return func(c *searchConfig) {
		c.policy = p
	}
}

// WithFuzzy accepts city names within maxDist edits of the query.
// 0 keeps exact matching; values above 3 are capped at 3.
func WithFuzzy(maxDist int) Option {
	return func(c *searchConfig) {
		c.fuzzy = maxDist
	}
}

// WithNear restricts matches to rows within radiusKm of (lat, lng).
// Rows without coordinates never match while this is set. Invalid
// coordinates or a non-positive radius match nothing.
func WithNear(lat, lng, radiusKm float64) Option {
	return func(c *searchConfig) {
		a, ok := newArea(lat, lng, radiusKm)
		c.near, c.badNear = &a, !ok
	}
}

func defaultSearchConfig() *searchConfig {
	return &searchConfig{
		stdin:  os.Stdin,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy: FailFast,
	}
}

func (c *searchConfig) matcher() matcher {
	m := fuzzyMatch(c.fuzzy)
	switch {
	case c.badNear:
		return func(string, Row) bool { return false }
	case c.near != nil:
		return within(*c.near, m)
	}
	return m
}

// Search returns the population of every row in the dataset at path whose
// city equals city, in input order. An empty path reads standard input.
//
// Rows without a population are skipped. Every returned error is an
// *Error: KindIO when the source cannot be opened or read, KindDecode when
// a record is malformed, and KindNotFound when nothing matched.
//
// Example:
//
//	counts, err := citypop.Search("worldcitiespop.csv", "springfield")
//	if citypop.IsKind(err, citypop.KindNotFound) {
//	    // no such city with a known population
//	}
func Search(path, city string, opts ...Option) ([]PopulationCount, error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if path == "" {
		return cfg.scan(cfg.stdin, "", city)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	return cfg.scan(f, path, city)
}

// SearchReader is Search over an already open stream.
func SearchReader(r io.Reader, city string, opts ...Option) ([]PopulationCount, error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.scan(r, "", city)
}

func (c *searchConfig) scan(r io.Reader, path, city string) ([]PopulationCount, error) {
	var (
		dec     = NewDecoder(r)
		match   = c.matcher()
		found   []PopulationCount
		skipped int
	)

	for row, err := range dec.Rows() {
		if err != nil {
			if !IsRowError(err) {
				return nil, ioError("read", path, err)
			}
			if c.policy == FailFast {
				return nil, decodeError(path, dec.Record(), err)
			}
			skipped++
			c.logger.Debug("skipping malformed record",
				slog.Int("record", dec.Record()),
				slog.Any("error", err))
			continue
		}

		pc, ok := countOf(row)
		if !ok || !match(city, row) {
			continue
		}
		found = append(found, pc)
	}

	c.logger.Debug("scan complete",
		slog.String("city", city),
		slog.Int("records", dec.Record()),
		slog.Int("matches", len(found)),
		slog.Int("skipped", skipped))

	if len(found) == 0 {
		return nil, notFound(path)
	}
	return found, nil
}
