package color

import "encoding/json"

// NamedColor is one of the CSS color keywords accepted by plotly.js.
type NamedColor string

const (
	AliceBlue            NamedColor = "aliceblue"
	AntiqueWhite         NamedColor = "antiquewhite"
	Aqua                 NamedColor = "aqua"
	Aquamarine           NamedColor = "aquamarine"
	Azure                NamedColor = "azure"
	Beige                NamedColor = "beige"
	Bisque               NamedColor = "bisque"
	Black                NamedColor = "black"
	BlanchedAlmond       NamedColor = "blanchedalmond"
	Blue                 NamedColor = "blue"
	BlueViolet           NamedColor = "blueviolet"
	Brown                NamedColor = "brown"
	BurlyWood            NamedColor = "burlywood"
	CadetBlue            NamedColor = "cadetblue"
	Chartreuse           NamedColor = "chartreuse"
	Chocolate            NamedColor = "chocolate"
	Coral                NamedColor = "coral"
	CornflowerBlue       NamedColor = "cornflowerblue"
	CornSilk             NamedColor = "cornsilk"
	Crimson              NamedColor = "crimson"
	Cyan                 NamedColor = "cyan"
	DarkBlue             NamedColor = "darkblue"
	DarkCyan             NamedColor = "darkcyan"
	DarkGoldenrod        NamedColor = "darkgoldenrod"
	DarkGray             NamedColor = "darkgray"
	DarkGreen            NamedColor = "darkgreen"
	DarkGrey             NamedColor = "darkgrey"
	DarkKhaki            NamedColor = "darkkhaki"
	DarkMagenta          NamedColor = "darkmagenta"
	DarkOliveGreen       NamedColor = "darkolivegreen"
	DarkOrange           NamedColor = "darkorange"
	DarkOrchid           NamedColor = "darkorchid"
	DarkRed              NamedColor = "darkred"
	DarkSalmon           NamedColor = "darksalmon"
	DarkSeaGreen         NamedColor = "darkseagreen"
	DarkSlateBlue        NamedColor = "darkslateblue"
	DarkSlateGray        NamedColor = "darkslategray"
	DarkSlateGrey        NamedColor = "darkslategrey"
	DarkTurquoise        NamedColor = "darkturquoise"
	DarkViolet           NamedColor = "darkviolet"
	DeepPink             NamedColor = "deeppink"
	DeepSkyBlue          NamedColor = "deepskyblue"
	DimGray              NamedColor = "dimgray"
	DimGrey              NamedColor = "dimgrey"
	DodgerBlue           NamedColor = "dodgerblue"
	FireBrick            NamedColor = "firebrick"
	FloralWhite          NamedColor = "floralwhite"
	ForestGreen          NamedColor = "forestgreen"
	Fuchsia              NamedColor = "fuchsia"
	Gainsboro            NamedColor = "gainsboro"
	GhostWhite           NamedColor = "ghostwhite"
	Gold                 NamedColor = "gold"
	Goldenrod            NamedColor = "goldenrod"
	Gray                 NamedColor = "gray"
	Green                NamedColor = "green"
	GreenYellow          NamedColor = "greenyellow"
	Grey                 NamedColor = "grey"
	Honeydew             NamedColor = "honeydew"
	HotPink              NamedColor = "hotpink"
	IndianRed            NamedColor = "indianred"
	Indigo               NamedColor = "indigo"
	Ivory                NamedColor = "ivory"
	Khaki                NamedColor = "khaki"
	Lavender             NamedColor = "lavender"
	LavenderBlush        NamedColor = "lavenderblush"
	LawnGreen            NamedColor = "lawngreen"
	LemonChiffon         NamedColor = "lemonchiffon"
	LightBlue            NamedColor = "lightblue"
	LightCoral           NamedColor = "lightcoral"
	LightCyan            NamedColor = "lightcyan"
	LightGoldenrodYellow NamedColor = "lightgoldenrodyellow"
	LightGray            NamedColor = "lightgray"
	LightGreen           NamedColor = "lightgreen"
	LightGrey            NamedColor = "lightgrey"
	LightPink            NamedColor = "lightpink"
	LightSalmon          NamedColor = "lightsalmon"
	LightSeaGreen        NamedColor = "lightseagreen"
	LightSkyBlue         NamedColor = "lightskyblue"
	LightSlateGray       NamedColor = "lightslategray"
	LightSlateGrey       NamedColor = "lightslategrey"
	LightSteelBlue       NamedColor = "lightsteelblue"
	LightYellow          NamedColor = "lightyellow"
	Lime                 NamedColor = "lime"
	LimeGreen            NamedColor = "limegreen"
	Linen                NamedColor = "linen"
	Magenta              NamedColor = "magenta"
	Maroon               NamedColor = "maroon"
	MediumAquamarine     NamedColor = "mediumaquamarine"
	MediumBlue           NamedColor = "mediumblue"
	MediumOrchid         NamedColor = "mediumorchid"
	MediumPurple         NamedColor = "mediumpurple"
	MediumSeaGreen       NamedColor = "mediumseagreen"
	MediumSlateBlue      NamedColor = "mediumslateblue"
	MediumSpringGreen    NamedColor = "mediumspringgreen"
	MediumTurquoise      NamedColor = "mediumturquoise"
	MediumVioletRed      NamedColor = "mediumvioletred"
	MidnightBlue         NamedColor = "midnightblue"
	MintCream            NamedColor = "mintcream"
	MistyRose            NamedColor = "mistyrose"
	Moccasin             NamedColor = "moccasin"
	NavajoWhite          NamedColor = "navajowhite"
	Navy                 NamedColor = "navy"
	OldLace              NamedColor = "oldlace"
	Olive                NamedColor = "olive"
	OliveDrab            NamedColor = "olivedrab"
	Orange               NamedColor = "orange"
	OrangeRed            NamedColor = "orangered"
	Orchid               NamedColor = "orchid"
	PaleGoldenrod        NamedColor = "palegoldenrod"
	PaleGreen            NamedColor = "palegreen"
	PaleTurquoise        NamedColor = "paleturquoise"
	PaleVioletRed        NamedColor = "palevioletred"
	PapayaWhip           NamedColor = "papayawhip"
	PeachPuff            NamedColor = "peachpuff"
	Peru                 NamedColor = "peru"
	Pink                 NamedColor = "pink"
	Plum                 NamedColor = "plum"
	PowderBlue           NamedColor = "powderblue"
	Purple               NamedColor = "purple"
	RebeccaPurple        NamedColor = "rebeccapurple"
	Red                  NamedColor = "red"
	RosyBrown            NamedColor = "rosybrown"
	RoyalBlue            NamedColor = "royalblue"
	SaddleBrown          NamedColor = "saddlebrown"
	Salmon               NamedColor = "salmon"
	SandyBrown           NamedColor = "sandybrown"
	SeaGreen             NamedColor = "seagreen"
	Seashell             NamedColor = "seashell"
	Sienna               NamedColor = "sienna"
	Silver               NamedColor = "silver"
	SkyBlue              NamedColor = "skyblue"
	SlateBlue            NamedColor = "slateblue"
	SlateGray            NamedColor = "slategray"
	SlateGrey            NamedColor = "slategrey"
	Snow                 NamedColor = "snow"
	SpringGreen          NamedColor = "springgreen"
	SteelBlue            NamedColor = "steelblue"
	Tan                  NamedColor = "tan"
	Teal                 NamedColor = "teal"
	Thistle              NamedColor = "thistle"
	Tomato               NamedColor = "tomato"
	Turquoise            NamedColor = "turquoise"
	Violet               NamedColor = "violet"
	Wheat                NamedColor = "wheat"
	White                NamedColor = "white"
	WhiteSmoke           NamedColor = "whitesmoke"
	Yellow               NamedColor = "yellow"
	YellowGreen          NamedColor = "yellowgreen"
	Transparent          NamedColor = "transparent"
)

func (c NamedColor) String() string {
	return string(c)
}

// MarshalJSON implements json.Marshaler.
func (c NamedColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// IsValid reports whether c is one of the known CSS keywords.
func (c NamedColor) IsValid() bool {
	_, ok := namedColors[c]
	return ok
}

var namedColors = map[NamedColor]struct{}{
	AliceBlue:            {},
	AntiqueWhite:         {},
	Aqua:                 {},
	Aquamarine:           {},
	Azure:                {},
	Beige:                {},
	Bisque:               {},
	Black:                {},
	BlanchedAlmond:       {},
	Blue:                 {},
	BlueViolet:           {},
	Brown:                {},
	BurlyWood:            {},
	CadetBlue:            {},
	Chartreuse:           {},
	Chocolate:            {},
	Coral:                {},
	CornflowerBlue:       {},
	CornSilk:             {},
	Crimson:              {},
	Cyan:                 {},
	DarkBlue:             {},
	DarkCyan:             {},
	DarkGoldenrod:        {},
	DarkGray:             {},
	DarkGreen:            {},
	DarkGrey:             {},
	DarkKhaki:            {},
	DarkMagenta:          {},
	DarkOliveGreen:       {},
	DarkOrange:           {},
	DarkOrchid:           {},
	DarkRed:              {},
	DarkSalmon:           {},
	DarkSeaGreen:         {},
	DarkSlateBlue:        {},
	DarkSlateGray:        {},
	DarkSlateGrey:        {},
	DarkTurquoise:        {},
	DarkViolet:           {},
	DeepPink:             {},
	DeepSkyBlue:          {},
	DimGray:              {},
	DimGrey:              {},
	DodgerBlue:           {},
	FireBrick:            {},
	FloralWhite:          {},
	ForestGreen:          {},
	Fuchsia:              {},
	Gainsboro:            {},
	GhostWhite:           {},
	Gold:                 {},
	Goldenrod:            {},
	Gray:                 {},
	Green:                {},
	GreenYellow:          {},
	Grey:                 {},
	Honeydew:             {},
	HotPink:              {},
	IndianRed:            {},
	Indigo:               {},
	Ivory:                {},
	Khaki:                {},
	Lavender:             {},
	LavenderBlush:        {},
	LawnGreen:            {},
	LemonChiffon:         {},
	LightBlue:            {},
	LightCoral:           {},
	LightCyan:            {},
	LightGoldenrodYellow: {},
	LightGray:            {},
	LightGreen:           {},
	LightGrey:            {},
	LightPink:            {},
	LightSalmon:          {},
	LightSeaGreen:        {},
	LightSkyBlue:         {},
	LightSlateGray:       {},
	LightSlateGrey:       {},
	LightSteelBlue:       {},
	LightYellow:          {},
	Lime:                 {},
	LimeGreen:            {},
	Linen:                {},
	Magenta:              {},
	Maroon:               {},
	MediumAquamarine:     {},
	MediumBlue:           {},
	MediumOrchid:         {},
	MediumPurple:         {},
	MediumSeaGreen:       {},
	MediumSlateBlue:      {},
	MediumSpringGreen:    {},
	MediumTurquoise:      {},
	MediumVioletRed:      {},
	MidnightBlue:         {},
	MintCream:            {},
	MistyRose:            {},
	Moccasin:             {},
	NavajoWhite:          {},
	Navy:                 {},
	OldLace:              {},
	Olive:                {},
	OliveDrab:            {},
	Orange:               {},
	OrangeRed:            {},
	Orchid:               {},
	PaleGoldenrod:        {},
	PaleGreen:            {},
	PaleTurquoise:        {},
	PaleVioletRed:        {},
	PapayaWhip:           {},
	PeachPuff:            {},
	Peru:                 {},
	Pink:                 {},
	Plum:                 {},
	PowderBlue:           {},
	Purple:               {},
	RebeccaPurple:        {},
	Red:                  {},
	RosyBrown:            {},
	RoyalBlue:            {},
	SaddleBrown:          {},
	Salmon:               {},
	SandyBrown:           {},
	SeaGreen:             {},
	Seashell:             {},
	Sienna:               {},
	Silver:               {},
	SkyBlue:              {},
	SlateBlue:            {},
	SlateGray:            {},
	SlateGrey:            {},
	Snow:                 {},
	SpringGreen:          {},
	SteelBlue:            {},
	Tan:                  {},
	Teal:                 {},
	Thistle:              {},
	Tomato:               {},
	Turquoise:            {},
	Violet:               {},
	Wheat:                {},
	White:                {},
	WhiteSmoke:           {},
	Yellow:               {},
	YellowGreen:          {},
	Transparent:          {},
}
