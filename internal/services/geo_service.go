package services

import (
	"cmp"
	_ "embed"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v2"
)

const earthRadiusMiles = 3958.8

//go:embed halls.yaml
var defaultHallsYAML []byte

type GeoPoint struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type DiningHall struct {
	Name     string `yaml:"name"`
	GeoPoint `yaml:",inline"`
}

type RankedHall struct {
	Name          string
	DistanceMiles float64
}

// HallTable is the fixed set of dining halls. It is never mutated after
// construction and is safe for concurrent use.
type HallTable struct {
	halls []DiningHall
}

func NewHallTable(halls []DiningHall) (HallTable, error) {
	seen := make(map[string]struct{}, len(halls))
	for _, h := range halls {
		if h.Name == "" {
			return HallTable{}, fmt.Errorf("dining hall with empty name")
		}
		if _, dup := seen[h.Name]; dup {
			return HallTable{}, fmt.Errorf("duplicate dining hall %q", h.Name)
		}
		seen[h.Name] = struct{}{}
	}
	return HallTable{halls: slices.Clone(halls)}, nil
}

// LoadHallTable reads the table from path, or the embedded campus table when
// path is empty.
func LoadHallTable(path string) (HallTable, error) {
	data := defaultHallsYAML
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return HallTable{}, fmt.Errorf("read halls file: %w", err)
		}
	}
	return ParseHallTable(data)
}

func ParseHallTable(data []byte) (HallTable, error) {
	var doc struct {
		Halls []DiningHall `yaml:"halls"`
	}
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return HallTable{}, fmt.Errorf("parse halls: %w", err)
	}
	if len(doc.Halls) == 0 {
		return HallTable{}, fmt.Errorf("halls table is empty")
	}
	return NewHallTable(doc.Halls)
}

func (t HallTable) Halls() []DiningHall {
	return slices.Clone(t.halls)
}

func (t HallTable) Len() int {
	return len(t.halls)
}

func (t HallTable) Lookup(name string) (DiningHall, bool) {
	for _, h := range t.halls {
		if h.Name == name {
			return h, true
		}
	}
	return DiningHall{}, false
}

// Distance is the haversine great-circle distance in miles. Inputs are
// decimal degrees and are not range checked.
func Distance(a, b GeoPoint) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lon - a.Lon) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RankNearest returns every hall ordered by ascending distance from user.
// Equal distances keep table order.
func RankNearest(user GeoPoint, table HallTable) []RankedHall {
	ranked := make([]RankedHall, 0, table.Len())
	for _, h := range table.halls {
		ranked = append(ranked, RankedHall{Name: h.Name, DistanceMiles: Distance(user, h.GeoPoint)})
	}
	slices.SortStableFunc(ranked, func(a, b RankedHall) int {
		return cmp.Compare(a.DistanceMiles, b.DistanceMiles)
	})
	return ranked
}

// TopN truncates a ranking to at most n entries.
func TopN(ranked []RankedHall, n int) []RankedHall {
	if len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}
