package classify

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"taskgen/internal/model"
)

// keywordGroup ties a domain to the substrings that select it.
type keywordGroup struct {
	domain   model.Domain
	keywords []string
}

// groups are tested in fixed priority order and the first hit wins: a
// context mentioning both an exam keyword and a travel keyword classifies
// as exam. Matching is plain substring containment, not whole-word.
var groups = []keywordGroup{
	{model.DomainExam, []string{"exam", "study", "college", "test", "syllabus"}},
	{model.DomainMoving, []string{"move", "relocat", "apartment", "pack", "shifting"}},
	{model.DomainPC, []string{"pc", "build a computer", "components", "parts"}},
	{model.DomainTravel, []string{"travel", "trip", "itinerary", "flight", "hotel"}},
	{model.DomainFitness, []string{"fitness", "workout", "diet", "health", "gym"}},
}

// Classifier assigns a Domain to free-text activity descriptions.
// Classification is pure; the optional LRU cache only memoizes repeated
// contexts.
type Classifier struct {
	cache *lru.Cache[string, model.Domain]
}

// New creates a Classifier. cacheSize <= 0 disables memoization.
func New(cacheSize int) *Classifier {
	c := &Classifier{}
	if cacheSize > 0 {
		// lru.New only errors on non-positive size, which is guarded above.
		c.cache, _ = lru.New[string, model.Domain](cacheSize)
	}
	return c
}

// Classify returns the domain for the given context string. Empty or
// whitespace-only input, or input matching no keyword group, yields
// DomainGeneric.
func (c *Classifier) Classify(context string) model.Domain {
	if c.cache != nil {
		if d, ok := c.cache.Get(context); ok {
			return d
		}
	}

	d := classify(context)

	if c.cache != nil {
		c.cache.Add(context, d)
	}
	return d
}

func classify(context string) model.Domain {
	lowered := strings.ToLower(context)
	if strings.TrimSpace(lowered) == "" {
		return model.DomainGeneric
	}

	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(lowered, kw) {
				return g.domain
			}
		}
	}
	return model.DomainGeneric
}
