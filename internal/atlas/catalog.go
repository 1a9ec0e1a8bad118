package atlas

import (
	"fmt"

	"goatlas/internal/proj"
)

// Family is the coarse shape classification a descriptor carries. It groups
// the sidebar and tells a reader what outline to expect; fitting keys off
// descriptor fields, not the family name.
type Family string

const (
	FamilyAzimuthal   Family = "azimuthal"
	FamilyConic       Family = "conic"
	FamilyCylindrical Family = "cylindrical"
	FamilyPseudo      Family = "pseudo-cylindrical"
	FamilyInterrupted Family = "interrupted"
)

// DefaultProjectionID is the projection selected at startup.
const DefaultProjectionID = "natural-earth"

// Descriptor describes one selectable projection.
type Descriptor struct {
	ID          string
	DisplayName string
	Family      Family

	// ScaleHint multiplies the fitted scale after extent fitting; zero means
	// no correction. The conformal conic under-fills a naive outline fit.
	ScaleHint float64

	// Gamma is a fixed roll in degrees applied as the third rotation angle.
	// Transverse variants carry 90.
	Gamma float64

	New func() proj.Raw
}

var (
	registry []Descriptor
	byID     = make(map[string]int)
)

// Find resolves a projection id against the catalog.
func Find(id string) (Descriptor, error) {
	i, ok := byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownProjection, id)
	}
	return registry[i], nil
}

// All returns every descriptor in display order.
func All() []Descriptor { return registry }

func register(group []Descriptor) {
	for _, d := range group {
		if d.ID == "" || d.New == nil {
			panic("atlas: incomplete descriptor " + d.ID)
		}
		if _, dup := byID[d.ID]; dup {
			panic("atlas: duplicate projection id " + d.ID)
		}
		byID[d.ID] = len(registry)
		registry = append(registry, d)
	}
}

func init() {
	register(cylindricalGroup)
	register(pseudoGroup)
	register(conicGroup)
	register(azimuthalGroup)
	register(interruptedGroup)
}

// Classic continental interruption layouts, lobe longitudes in degrees.
var (
	continentLobes = []proj.Lobe{{Min: -180, Center: -110, Max: -40}, {Min: -40, Center: 0, Max: 40}, {Min: 40, Center: 110, Max: 180}}
	goodeNorth     = []proj.Lobe{{Min: -180, Center: -100, Max: -40}, {Min: -40, Center: 30, Max: 180}}
	goodeSouth     = []proj.Lobe{{Min: -180, Center: -160, Max: -100}, {Min: -100, Center: -60, Max: -20}, {Min: -20, Center: 20, Max: 80}, {Min: 80, Center: 140, Max: 180}}
	mollweideSouth = []proj.Lobe{{Min: -180, Center: -160, Max: -100}, {Min: -100, Center: -30, Max: 0}, {Min: 0, Center: 100, Max: 180}}
	hemisphereLobe = []proj.Lobe{{Min: -180, Center: -90, Max: 0}, {Min: 0, Center: 90, Max: 180}}
)

var cylindricalGroup = []Descriptor{
	{ID: "equirectangular", DisplayName: "Equirectangular", Family: FamilyCylindrical, New: proj.Equirectangular},
	{ID: "mercator", DisplayName: "Mercator", Family: FamilyCylindrical, New: proj.Mercator},
	{ID: "transverse-mercator", DisplayName: "Transverse Mercator", Family: FamilyCylindrical, Gamma: 90, New: proj.TransverseMercator},
	{ID: "miller", DisplayName: "Miller", Family: FamilyCylindrical, New: proj.Miller},
	{ID: "lambert-cylindrical", DisplayName: "Lambert Cylindrical Equal-Area", Family: FamilyCylindrical, New: func() proj.Raw { return proj.CylindricalEqualArea(0) }},
	{ID: "behrmann", DisplayName: "Behrmann", Family: FamilyCylindrical, New: func() proj.Raw { return proj.CylindricalEqualArea(30) }},
	{ID: "hobo-dyer", DisplayName: "Hobo-Dyer", Family: FamilyCylindrical, New: func() proj.Raw { return proj.CylindricalEqualArea(37.5) }},
	{ID: "gall-peters", DisplayName: "Gall-Peters", Family: FamilyCylindrical, New: func() proj.Raw { return proj.CylindricalEqualArea(45) }},
	{ID: "balthasart", DisplayName: "Balthasart", Family: FamilyCylindrical, New: func() proj.Raw { return proj.CylindricalEqualArea(50) }},
	{ID: "tobler-square", DisplayName: "Tobler World-in-a-Square", Family: FamilyCylindrical, New: func() proj.Raw { return proj.CylindricalEqualArea(55.654) }},
	{ID: "gall-stereographic", DisplayName: "Gall Stereographic", Family: FamilyCylindrical, New: proj.GallStereographic},
	{ID: "central-cylindrical", DisplayName: "Central Cylindrical", Family: FamilyCylindrical, New: proj.CentralCylindrical},
	{ID: "cassini", DisplayName: "Cassini", Family: FamilyCylindrical, New: proj.Cassini},
}

var pseudoGroup = []Descriptor{
	{ID: "natural-earth", DisplayName: "Natural Earth", Family: FamilyPseudo, New: proj.NaturalEarth1},
	{ID: "equal-earth", DisplayName: "Equal Earth", Family: FamilyPseudo, New: proj.EqualEarth},
	{ID: "robinson", DisplayName: "Robinson", Family: FamilyPseudo, New: proj.Robinson},
	{ID: "patterson", DisplayName: "Patterson", Family: FamilyPseudo, New: proj.Patterson},
	{ID: "kavrayskiy7", DisplayName: "Kavrayskiy VII", Family: FamilyPseudo, New: proj.Kavrayskiy7},
	{ID: "sinusoidal", DisplayName: "Sinusoidal", Family: FamilyPseudo, New: proj.Sinusoidal},
	{ID: "mollweide", DisplayName: "Mollweide", Family: FamilyPseudo, New: proj.Mollweide},
	{ID: "bromley", DisplayName: "Bromley", Family: FamilyPseudo, New: proj.Bromley},
	{ID: "homolosine", DisplayName: "Homolosine", Family: FamilyPseudo, New: proj.Homolosine},
	{ID: "sinu-mollweide", DisplayName: "Sinu-Mollweide", Family: FamilyPseudo, New: proj.SinuMollweide},
	{ID: "boggs", DisplayName: "Boggs Eumorphic", Family: FamilyPseudo, New: proj.Boggs},
	{ID: "eckert1", DisplayName: "Eckert I", Family: FamilyPseudo, New: proj.Eckert1},
	{ID: "eckert2", DisplayName: "Eckert II", Family: FamilyPseudo, New: proj.Eckert2},
	{ID: "eckert3", DisplayName: "Eckert III", Family: FamilyPseudo, New: proj.Eckert3},
	{ID: "eckert4", DisplayName: "Eckert IV", Family: FamilyPseudo, New: proj.Eckert4},
	{ID: "eckert5", DisplayName: "Eckert V", Family: FamilyPseudo, New: proj.Eckert5},
	{ID: "eckert6", DisplayName: "Eckert VI", Family: FamilyPseudo, New: proj.Eckert6},
	{ID: "wagner2", DisplayName: "Wagner II", Family: FamilyPseudo, New: proj.Wagner2},
	{ID: "wagner3", DisplayName: "Wagner III", Family: FamilyPseudo, New: proj.Wagner3},
	{ID: "wagner4", DisplayName: "Wagner IV", Family: FamilyPseudo, New: proj.Wagner4},
	{ID: "wagner6", DisplayName: "Wagner VI", Family: FamilyPseudo, New: proj.Wagner6},
	{ID: "winkel1", DisplayName: "Winkel I", Family: FamilyPseudo, New: func() proj.Raw { return proj.Winkel1(45) }},
	{ID: "craster", DisplayName: "Craster Parabolic", Family: FamilyPseudo, New: proj.Craster},
	{ID: "collignon", DisplayName: "Collignon", Family: FamilyPseudo, New: proj.Collignon},
	{ID: "nell-hammer", DisplayName: "Nell-Hammer", Family: FamilyPseudo, New: proj.NellHammer},
	{ID: "flat-polar-parabolic", DisplayName: "McBryde-Thomas Flat-Polar Parabolic", Family: FamilyPseudo, New: proj.McBrydeFPP},
	{ID: "flat-polar-quartic", DisplayName: "McBryde-Thomas Flat-Polar Quartic", Family: FamilyPseudo, New: proj.McBrydeFPQ},
	{ID: "flat-polar-sinusoidal", DisplayName: "McBryde-Thomas Flat-Polar Sinusoidal", Family: FamilyPseudo, New: proj.McBrydeFPS},
	{ID: "quartic-authalic", DisplayName: "Quartic Authalic", Family: FamilyPseudo, New: proj.QuarticAuthalic},
	{ID: "foucaut", DisplayName: "Foucaut", Family: FamilyPseudo, New: proj.Foucaut},
	{ID: "foucaut-sinusoidal", DisplayName: "Foucaut Sinusoidal", Family: FamilyPseudo, New: func() proj.Raw { return proj.FoucautSinusoidal(0.5) }},
	{ID: "fahey", DisplayName: "Fahey", Family: FamilyPseudo, New: proj.Fahey},
	{ID: "hatano", DisplayName: "Hatano", Family: FamilyPseudo, New: proj.Hatano},
	{ID: "loximuthal", DisplayName: "Loximuthal", Family: FamilyPseudo, New: func() proj.Raw { return proj.Loximuthal(40) }},
	{ID: "times", DisplayName: "Times", Family: FamilyPseudo, New: proj.Times},
	{ID: "atlantis", DisplayName: "Atlantis (Transverse Mollweide)", Family: FamilyPseudo, Gamma: 90, New: proj.Mollweide},
}

var conicGroup = []Descriptor{
	{ID: "albers", DisplayName: "Albers", Family: FamilyConic, New: func() proj.Raw { return proj.ConicEqualArea(29.5, 45.5) }},
	{ID: "conic-equal-area", DisplayName: "Conic Equal-Area", Family: FamilyConic, New: func() proj.Raw { return proj.ConicEqualArea(20, 60) }},
	{ID: "conic-conformal", DisplayName: "Lambert Conformal Conic", Family: FamilyConic, ScaleHint: 1.35, New: func() proj.Raw { return proj.ConicConformal(20, 60) }},
	{ID: "conic-equidistant", DisplayName: "Conic Equidistant", Family: FamilyConic, New: func() proj.Raw { return proj.ConicEquidistant(20, 60) }},
	{ID: "bonne", DisplayName: "Bonne", Family: FamilyConic, New: func() proj.Raw { return proj.Bonne(45) }},
	{ID: "werner", DisplayName: "Werner", Family: FamilyConic, New: func() proj.Raw { return proj.Bonne(90) }},
	{ID: "polyconic", DisplayName: "American Polyconic", Family: FamilyConic, New: proj.Polyconic},
	{ID: "rectangular-polyconic", DisplayName: "Rectangular Polyconic", Family: FamilyConic, New: func() proj.Raw { return proj.RectangularPolyconic(0) }},
	{ID: "bottomley", DisplayName: "Bottomley", Family: FamilyConic, New: func() proj.Raw { return proj.Bottomley(30) }},
}

var azimuthalGroup = []Descriptor{
	{ID: "azimuthal-equal-area", DisplayName: "Azimuthal Equal-Area", Family: FamilyAzimuthal, New: proj.AzimuthalEqualArea},
	{ID: "azimuthal-equidistant", DisplayName: "Azimuthal Equidistant", Family: FamilyAzimuthal, New: proj.AzimuthalEquidistant},
	{ID: "orthographic", DisplayName: "Orthographic", Family: FamilyAzimuthal, New: proj.Orthographic},
	{ID: "stereographic", DisplayName: "Stereographic", Family: FamilyAzimuthal, New: proj.Stereographic},
	{ID: "gnomonic", DisplayName: "Gnomonic", Family: FamilyAzimuthal, New: proj.Gnomonic},
	{ID: "airy", DisplayName: "Airy Minimum-Error", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Airy(90) }},
	{ID: "wiechel", DisplayName: "Wiechel", Family: FamilyAzimuthal, New: proj.Wiechel},
	{ID: "vertical-perspective", DisplayName: "Vertical Perspective", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.VerticalPerspective(1.5) }},
	{ID: "satellite", DisplayName: "Satellite", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.VerticalPerspective(2) }},
	{ID: "littrow", DisplayName: "Littrow", Family: FamilyAzimuthal, New: proj.Littrow},
	{ID: "craig", DisplayName: "Craig Retroazimuthal", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Craig(0) }},
	{ID: "craig-mecca", DisplayName: "Craig (Mecca)", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Craig(21.45) }},
	{ID: "aitoff", DisplayName: "Aitoff", Family: FamilyAzimuthal, New: proj.Aitoff},
	{ID: "hammer", DisplayName: "Hammer", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Hammer(2, 2) }},
	{ID: "eckert-greifendorff", DisplayName: "Eckert-Greifendorff", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Hammer(4, 4) }},
	{ID: "wagner7", DisplayName: "Wagner VII", Family: FamilyAzimuthal, New: proj.Wagner7},
	{ID: "winkel-tripel", DisplayName: "Winkel Tripel", Family: FamilyAzimuthal, New: proj.Winkel3},
	{ID: "van-der-grinten", DisplayName: "van der Grinten", Family: FamilyAzimuthal, New: proj.VanDerGrinten},
	{ID: "lagrange", DisplayName: "Lagrange", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Lagrange(0.5) }},
	{ID: "august", DisplayName: "August Epicycloidal", Family: FamilyAzimuthal, New: proj.August},
	{ID: "eisenlohr", DisplayName: "Eisenlohr", Family: FamilyAzimuthal, New: proj.Eisenlohr},
	{ID: "larrivee", DisplayName: "Larrivee", Family: FamilyAzimuthal, New: proj.Larrivee},
	{ID: "laskowski", DisplayName: "Laskowski Tri-Optimal", Family: FamilyAzimuthal, New: proj.Laskowski},
	{ID: "nicolosi", DisplayName: "Nicolosi Globular", Family: FamilyAzimuthal, New: proj.Nicolosi},
	{ID: "armadillo", DisplayName: "Armadillo", Family: FamilyAzimuthal, New: func() proj.Raw { return proj.Armadillo(20) }},
}

var interruptedGroup = []Descriptor{
	{ID: "interrupted-sinusoidal", DisplayName: "Interrupted Sinusoidal", Family: FamilyInterrupted, New: func() proj.Raw {
		return proj.Interrupted(proj.Sinusoidal(), continentLobes, continentLobes)
	}},
	{ID: "interrupted-mollweide", DisplayName: "Interrupted Mollweide", Family: FamilyInterrupted, New: func() proj.Raw {
		return proj.Interrupted(proj.Mollweide(), goodeNorth, mollweideSouth)
	}},
	{ID: "goode-homolosine", DisplayName: "Goode Homolosine", Family: FamilyInterrupted, New: func() proj.Raw {
		return proj.Interrupted(proj.Homolosine(), goodeNorth, goodeSouth)
	}},
	{ID: "interrupted-boggs", DisplayName: "Interrupted Boggs Eumorphic", Family: FamilyInterrupted, New: func() proj.Raw {
		return proj.Interrupted(proj.Boggs(), continentLobes, continentLobes)
	}},
	{ID: "mollweide-hemispheres", DisplayName: "Mollweide Hemispheres", Family: FamilyInterrupted, New: func() proj.Raw {
		return proj.Interrupted(proj.Mollweide(), hemisphereLobe, hemisphereLobe)
	}},
}
