package merchant

import "github.com/fisworks/fisparse/constants"

// Mapping ties lowercase substring patterns to a canonical chain. Patterns
// are written in the folded space produced by fold (ı -> i, no combining
// marks), and a match scores pattern length times priority so longer,
// higher-priority patterns dominate incidental short matches.
type Mapping struct {
	Patterns []string
	Chain    constants.Chain
	Priority int
}

// mappings is loaded once and never mutated; lookups are read-only and safe
// for concurrent use.
var mappings = []Mapping{
	{Patterns: []string{"migros", "migros jet", "mjet", "5m migros"}, Chain: constants.Migros, Priority: 10},
	{Patterns: []string{"carrefoursa", "carrefour sa"}, Chain: constants.CarrefourSA, Priority: 10},
	{Patterns: []string{"carrefour"}, Chain: constants.CarrefourSA, Priority: 5},
	{Patterns: []string{"bim", "birleşik mağazalar"}, Chain: constants.BIM, Priority: 8},
	{Patterns: []string{"a101", "a 101"}, Chain: constants.A101, Priority: 10},
	{Patterns: []string{"şok market", "sok market"}, Chain: constants.Sok, Priority: 10},
	{Patterns: []string{"şok"}, Chain: constants.Sok, Priority: 8},
	{Patterns: []string{"metro grossmarket", "metro gross", "metro"}, Chain: constants.Metro, Priority: 8},
	{Patterns: []string{"macrocenter", "macro center"}, Chain: constants.Macrocenter, Priority: 10},
	{Patterns: []string{"file market"}, Chain: constants.File, Priority: 10},
	{Patterns: []string{"happy center", "happycenter"}, Chain: constants.HappyCenter, Priority: 10},
	{Patterns: []string{"hakmar", "hakmar ekspres"}, Chain: constants.Hakmar, Priority: 10},
	{Patterns: []string{"bizim toptan"}, Chain: constants.BizimToptan, Priority: 10},
	{Patterns: []string{"onur market"}, Chain: constants.OnurMarket, Priority: 10},
	{Patterns: []string{"tarim kredi", "kooperatif market"}, Chain: constants.TarimKredi, Priority: 10},
	{Patterns: []string{"teknosa"}, Chain: constants.Teknosa, Priority: 10},
	{Patterns: []string{"mediamarkt", "media markt"}, Chain: constants.MediaMarkt, Priority: 10},
	{Patterns: []string{"watsons"}, Chain: constants.Watsons, Priority: 10},
	{Patterns: []string{"gratis"}, Chain: constants.Gratis, Priority: 10},
	{Patterns: []string{"rossmann"}, Chain: constants.Rossmann, Priority: 10},
}
