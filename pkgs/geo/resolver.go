// Package geo resolves free-text location strings to normalized city
// and country rows backed by the Geonames reference data.
package geo

import (
	"strings"

	"github.com/chanchavia/acquisitor/pkgs/gazetteer"
	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/chanchavia/acquisitor/pkgs/repos/cityrepo"
	"github.com/chanchavia/acquisitor/pkgs/repos/countryrepo"
	"github.com/jmoiron/sqlx"
)

type Resolver struct {
	countries map[string]struct{}
	cities    map[string]struct{}
	// cityCountry maps every known city name to the country of the most
	// populous city bearing that name, for inputs with no country token.
	cityCountry map[string]string

	countryRepo *countryrepo.Repo
	cityRepo    *cityrepo.Repo
}

// NewResolver builds the lookup sets from a gazetteer index. Ambiguous
// city names collapse into a single set entry; the fallback country is
// decided by strictly larger population, first seen wins ties.
func NewResolver(index *gazetteer.Index) *Resolver {
	r := &Resolver{
		countries:   make(map[string]struct{}, len(index.Countries)),
		cities:      make(map[string]struct{}, len(index.Cities)),
		cityCountry: make(map[string]string, len(index.Cities)),
		countryRepo: countryrepo.New(),
		cityRepo:    cityrepo.New(),
	}

	codeNames := make(map[string]string, len(index.Countries))
	for _, c := range index.Countries {
		r.countries[c.Name] = struct{}{}
		codeNames[c.ISO] = c.Name
	}

	population := make(map[string]int, len(index.Cities))
	for _, c := range index.Cities {
		r.cities[c.Name] = struct{}{}
		known, seen := population[c.Name]
		if !seen || c.Population > known {
			population[c.Name] = c.Population
			r.cityCountry[c.Name] = codeNames[c.CountryCode]
		}
	}
	return r
}

// ResolvePlace returns the best-guess city for a free-text location,
// creating country and city rows as needed. A string with no known
// city token resolves to nil rather than a placeholder row.
func (r *Resolver) ResolvePlace(db *sqlx.DB, textLoc string) (*model.City, error) {
	city, country := "", ""

	normalized := strings.NewReplacer("/", ",", "&", ",").Replace(textLoc)
	for _, token := range strings.Split(normalized, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		// last match wins for either kind
		if _, ok := r.cities[token]; ok {
			city = token
		}
		if _, ok := r.countries[token]; ok {
			country = token
		}
	}

	if city == "" {
		return nil, nil
	}
	if country == "" {
		country = r.cityCountry[city]
	}

	countryRow, err := r.countryRepo.GetOrCreate(db, country)
	if err != nil {
		return nil, err
	}
	return r.cityRepo.GetOrCreate(db, city, countryRow.Id)
}
