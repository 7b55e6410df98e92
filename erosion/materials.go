package erosion

import "sort"

// Properties holds the erosive material constants of RP-O501 Table 3-1.
type Properties struct {
	// K is the material erosion constant [(m/s)^-N].
	K float64
	// N is the velocity exponent [-].
	N float64
	// RhoT is the target material density [kg/m³].
	RhoT float64
}

// materials is the RP-O501 Table 3-1 constant set, keyed by the short names
// used in field practice. Steels first, then coatings and ceramics.
var materials = map[string]Properties{
	"carbon_steel": {K: 2e-9, N: 2.6, RhoT: 7800},
	"duplex":       {K: 2e-9, N: 2.6, RhoT: 7850},
	"ss316":        {K: 2e-9, N: 2.6, RhoT: 8000},
	"inconel":      {K: 2e-9, N: 2.6, RhoT: 8440},
	"grp_epoxy":    {K: 3e-10, N: 3.6, RhoT: 1800},
	"grp_vinyl":    {K: 6e-10, N: 3.6, RhoT: 1800},
	"hdpe":         {K: 3.5e-9, N: 2.9, RhoT: 1150},
	"aluminium":    {K: 5.8e-9, N: 2.3, RhoT: 2700},
	"dc_05":        {K: 1.1e-10, N: 2.3, RhoT: 15250},
	"cs_10":        {K: 3.2e-10, N: 2.2, RhoT: 14800},
	"cr_37":        {K: 8.8e-11, N: 2.5, RhoT: 14600},
	"psz_ceramic":  {K: 4.1e-9, N: 2.5, RhoT: 5700},
	"zro2_y3":      {K: 4e-11, N: 2.7, RhoT: 6070},
	"sic":          {K: 6.5e-9, N: 1.9, RhoT: 3100},
	"si3n4":        {K: 2e-10, N: 2.0, RhoT: 3200},
	"tib2":         {K: 9.3e-9, N: 1.9, RhoT: 4250},
	"b4c":          {K: 3e-8, N: 0.9, RhoT: 2500},
	"sisic":        {K: 7.4e-11, N: 2.7, RhoT: 3100},
}

// Materials returns the sorted names of all materials with published
// erosion constants.
func Materials() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// MaterialProperties returns the erosion constants for the named material
// and whether the material is known.
func MaterialProperties(name string) (Properties, bool) {
	p, ok := materials[name]

	return p, ok
}
