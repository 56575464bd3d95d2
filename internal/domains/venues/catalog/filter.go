package catalog

import (
	"strings"

	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
)

// Filter selects venues. Nil Size or Surface means any; nil MaxPrice means no upper bound.
// Price bounds are inclusive.
type Filter struct {
	Text     string
	Size     *entity.Size
	Surface  *entity.Surface
	MinPrice float64
	MaxPrice *float64
}

func (f Filter) Matches(v entity.Venue) bool {
	if text := strings.ToLower(strings.TrimSpace(f.Text)); text != "" {
		if !strings.Contains(strings.ToLower(v.Name), text) && !strings.Contains(strings.ToLower(v.Address), text) {
			return false
		}
	}

	if f.Size != nil && v.Size != *f.Size {
		return false
	}

	if f.Surface != nil && v.Surface != *f.Surface {
		return false
	}

	if v.PricePerHour < f.MinPrice {
		return false
	}

	if f.MaxPrice != nil && v.PricePerHour > *f.MaxPrice {
		return false
	}

	return true
}
