package traces

import "github.com/raykavin/goplotly/pkg/common"

// DensityMapbox draws a heat map of point density over a map.
type DensityMapbox[Lat, Lon, Z any] struct {
	Type             common.PlotType          `json:"type" plotly:"-"`
	Name             *string                  `json:"name,omitempty"`
	Visible          *common.Visible          `json:"visible,omitempty"`
	ShowLegend       *bool                    `json:"showlegend,omitempty"`
	LegendRank       *int                     `json:"legendrank,omitempty"`
	LegendGroup      *string                  `json:"legendgroup,omitempty"`
	LegendGroupTitle *common.LegendGroupTitle `json:"legendgrouptitle,omitempty"`
	Line             *common.Line             `json:"line,omitempty"`
	Lat              []Lat                    `json:"lat,omitempty"`
	Lon              []Lon                    `json:"lon,omitempty"`
	Z                []Z                      `json:"z,omitempty"`
	Opacity          *float64                 `json:"opacity,omitempty"`
	Subplot          *string                  `json:"subplot,omitempty"`
	ZAuto            *bool                    `json:"zauto,omitempty"`
	ZMax             *Z                       `json:"zmax,omitempty"`
	ZMid             *Z                       `json:"zmid,omitempty"`
	ZMin             *Z                       `json:"zmin,omitempty"`
	Zoom             *uint8                   `json:"zoom,omitempty"`
	Radius           *uint8                   `json:"radius,omitempty"`
}

func NewDensityMapbox[Lat, Lon, Z any](lat []Lat, lon []Lon, z []Z) *DensityMapbox[Lat, Lon, Z] {
	return &DensityMapbox[Lat, Lon, Z]{
		Type: common.PlotTypeDensityMapbox,
		Lat:  lat,
		Lon:  lon,
		Z:    z,
	}
}

func (d *DensityMapbox[Lat, Lon, Z]) PlotType() common.PlotType { return d.Type }

func (d *DensityMapbox[Lat, Lon, Z]) ToJSON() (string, error) { return toJSON(d) }

func (d *DensityMapbox[Lat, Lon, Z]) Clone() Trace { return cloneTrace(d) }
