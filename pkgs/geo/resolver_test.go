package geo

import (
	"fmt"
	"os"
	"testing"

	"github.com/chanchavia/acquisitor/pkgs/gazetteer"
	"github.com/chanchavia/acquisitor/pkgs/model"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type ResolverSuite struct {
	db       *sqlx.DB
	resolver *Resolver
}

var _ = Suite(&ResolverSuite{})

func (s *ResolverSuite) SetUpTest(c *C) {
	tmpFile, err := os.CreateTemp("", "")
	c.Assert(err, IsNil)

	s.db, err = sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL", tmpFile.Name()))
	c.Assert(err, IsNil)
	model.CreateTables(s.db)

	index := &gazetteer.Index{
		Countries: []gazetteer.CountryRecord{
			{ISO: "FR", Name: "France"},
			{ISO: "US", Name: "United States"},
			{ISO: "AR", Name: "Argentina"},
			{ISO: "ES", Name: "Spain"},
		},
		Cities: []gazetteer.CityRecord{
			{Name: "Paris", CountryCode: "US", Population: 25171},
			{Name: "Paris", CountryCode: "FR", Population: 2138551},
			{Name: "Rosario", CountryCode: "AR", Population: 1173533},
			{Name: "Valencia", CountryCode: "ES", Population: 791413},
		},
	}
	s.resolver = NewResolver(index)
}

func (s *ResolverSuite) TearDownTest(c *C) {
	s.db.Close()
}

func (s *ResolverSuite) countryName(c *C, id int64) string {
	var name string
	err := s.db.Get(&name, `SELECT name FROM countries WHERE id=?`, id)
	c.Assert(err, IsNil)
	return name
}

func (s *ResolverSuite) TestExplicitCountryToken(c *C) {
	city, err := s.resolver.ResolvePlace(s.db, "Paris, France")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(city.Name, Equals, "Paris")
	c.Assert(s.countryName(c, city.CountryId), Equals, "France")
}

func (s *ResolverSuite) TestPopulationWeightedFallback(c *C) {
	// no country token: the most populous Paris decides
	city, err := s.resolver.ResolvePlace(s.db, "Paris")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(s.countryName(c, city.CountryId), Equals, "France")
}

func (s *ResolverSuite) TestExplicitCountryBeatsFallback(c *C) {
	city, err := s.resolver.ResolvePlace(s.db, "Paris, United States")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(s.countryName(c, city.CountryId), Equals, "United States")
}

func (s *ResolverSuite) TestSlashAndAmpersandSeparators(c *C) {
	city, err := s.resolver.ResolvePlace(s.db, "Rosario / Argentina")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(city.Name, Equals, "Rosario")
	c.Assert(s.countryName(c, city.CountryId), Equals, "Argentina")

	city, err = s.resolver.ResolvePlace(s.db, "Valencia&Spain")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(city.Name, Equals, "Valencia")
	c.Assert(s.countryName(c, city.CountryId), Equals, "Spain")
}

func (s *ResolverSuite) TestLastCityTokenWins(c *C) {
	city, err := s.resolver.ResolvePlace(s.db, "Paris, Rosario")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(city.Name, Equals, "Rosario")
	c.Assert(s.countryName(c, city.CountryId), Equals, "Argentina")
}

func (s *ResolverSuite) TestUnresolvedCreatesNoRows(c *C) {
	city, err := s.resolver.ResolvePlace(s.db, "Atlantis")
	c.Assert(err, IsNil)
	c.Assert(city, IsNil)

	var cities int
	c.Assert(s.db.Get(&cities, `SELECT COUNT(*) FROM cities`), IsNil)
	c.Assert(cities, Equals, 0)
	var countries int
	c.Assert(s.db.Get(&countries, `SELECT COUNT(*) FROM countries`), IsNil)
	c.Assert(countries, Equals, 0)
}

func (s *ResolverSuite) TestCountryTokenAloneResolvesNothing(c *C) {
	city, err := s.resolver.ResolvePlace(s.db, "France")
	c.Assert(err, IsNil)
	c.Assert(city, IsNil)
}

func (s *ResolverSuite) TestRepeatedResolutionReusesRows(c *C) {
	first, err := s.resolver.ResolvePlace(s.db, "Paris, France")
	c.Assert(err, IsNil)
	second, err := s.resolver.ResolvePlace(s.db, "Paris")
	c.Assert(err, IsNil)
	c.Assert(second.Id, Equals, first.Id)

	var cities int
	c.Assert(s.db.Get(&cities, `SELECT COUNT(*) FROM cities`), IsNil)
	c.Assert(cities, Equals, 1)
}

func (s *ResolverSuite) TestEqualPopulationKeepsFirstSeen(c *C) {
	index := &gazetteer.Index{
		Countries: []gazetteer.CountryRecord{
			{ISO: "AA", Name: "Firstland"},
			{ISO: "BB", Name: "Secondland"},
		},
		Cities: []gazetteer.CityRecord{
			{Name: "Twin", CountryCode: "AA", Population: 1000},
			{Name: "Twin", CountryCode: "BB", Population: 1000},
		},
	}
	resolver := NewResolver(index)

	city, err := resolver.ResolvePlace(s.db, "Twin")
	c.Assert(err, IsNil)
	c.Assert(city, Not(IsNil))
	c.Assert(s.countryName(c, city.CountryId), Equals, "Firstland")
}
