package domain

import "strings"

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultCoordinate é usada para regiões fora da tabela (Dubai)
var DefaultCoordinate = Coordinate{Lat: 25.2048, Lng: 55.2708}

// regionCoordinates é preenchida uma única vez na inicialização do pacote e
// só é lida através de LookupCoordinate.
var regionCoordinates = buildRegionCoordinates()

func buildRegionCoordinates() map[string]Coordinate {
	table := map[string]Coordinate{
		// Emirados Árabes Unidos
		"dubai":          {Lat: 25.2048, Lng: 55.2708},
		"abu dhabi":      {Lat: 24.4539, Lng: 54.3773},
		"sharjah":        {Lat: 25.3463, Lng: 55.4209},
		"ajman":          {Lat: 25.4052, Lng: 55.5136},
		"ras al khaimah": {Lat: 25.8007, Lng: 55.9762},
		"fujairah":       {Lat: 25.1288, Lng: 56.3265},
		"umm al quwain":  {Lat: 25.5647, Lng: 55.5552},
		"al ain":         {Lat: 24.2075, Lng: 55.7447},
		"khor fakkan":    {Lat: 25.3313, Lng: 56.3420},

		// Golfo
		"riyadh":      {Lat: 24.7136, Lng: 46.6753},
		"jeddah":      {Lat: 21.4858, Lng: 39.1925},
		"dammam":      {Lat: 26.4207, Lng: 50.0888},
		"mecca":       {Lat: 21.3891, Lng: 39.8579},
		"medina":      {Lat: 24.5247, Lng: 39.5692},
		"doha":        {Lat: 25.2854, Lng: 51.5310},
		"kuwait city": {Lat: 29.3759, Lng: 47.9774},
		"manama":      {Lat: 26.2285, Lng: 50.5860},
		"muscat":      {Lat: 23.5880, Lng: 58.3829},
		"salalah":     {Lat: 17.0151, Lng: 54.0924},

		// Internacionais
		"london":    {Lat: 51.5074, Lng: -0.1278},
		"new york":  {Lat: 40.7128, Lng: -74.0060},
		"mumbai":    {Lat: 19.0760, Lng: 72.8777},
		"singapore": {Lat: 1.3521, Lng: 103.8198},
		"cairo":     {Lat: 30.0444, Lng: 31.2357},
		"karachi":   {Lat: 24.8607, Lng: 67.0011},
	}

	// Grafias alternativas comuns nos dados de origem
	table["rak"] = table["ras al khaimah"]
	table["uaq"] = table["umm al quwain"]
	table["kuwait"] = table["kuwait city"]
	table["makkah"] = table["mecca"]

	return table
}

func regionKey(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

// LookupCoordinate busca a coordenada de uma região pelo nome (sem diferenciar maiúsculas)
func LookupCoordinate(region string) (Coordinate, bool) {
	c, ok := regionCoordinates[regionKey(region)]
	return c, ok
}

// ResolveCoordinate sempre retorna uma coordenada, usando DefaultCoordinate
// quando a região não está mapeada
func ResolveCoordinate(region string) Coordinate {
	if c, ok := LookupCoordinate(region); ok {
		return c
	}
	return DefaultCoordinate
}

// KnownRegions retorna a quantidade de nomes mapeados na tabela
func KnownRegions() int {
	return len(regionCoordinates)
}
