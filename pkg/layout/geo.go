package layout

import (
	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

type MapboxStyle string

const (
	MapboxStyleCartoDarkMatter  MapboxStyle = "carto-darkmatter"
	MapboxStyleCartoPositron    MapboxStyle = "carto-positron"
	MapboxStyleOpenStreetMap    MapboxStyle = "open-street-map"
	MapboxStyleStamenTerrain    MapboxStyle = "stamen-terrain"
	MapboxStyleStamenToner      MapboxStyle = "stamen-toner"
	MapboxStyleStamenWatercolor MapboxStyle = "stamen-watercolor"
	MapboxStyleWhiteBg          MapboxStyle = "white-bg"
	MapboxStyleBasic            MapboxStyle = "basic"
	MapboxStyleStreets          MapboxStyle = "streets"
	MapboxStyleOutdoors         MapboxStyle = "outdoors"
	MapboxStyleLight            MapboxStyle = "light"
	MapboxStyleDark             MapboxStyle = "dark"
	MapboxStyleSatellite        MapboxStyle = "satellite"
	MapboxStyleSatelliteStreets MapboxStyle = "satellite-streets"
)

// Center is a geographic point.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCenter(lat, lon float64) *Center {
	return &Center{Lat: lat, Lon: lon}
}

// LayoutGeo configures the base map of geo traces.
type LayoutGeo struct {
	Center         *Center        `json:"center,omitempty"`
	Domain         *common.Domain `json:"domain,omitempty"`
	Zoom           *uint8         `json:"zoom,omitempty"`
	Projection     *Projection    `json:"projection,omitempty"`
	ShowOcean      *bool          `json:"showocean,omitempty"`
	OceanColor     color.Color    `json:"oceancolor,omitempty"`
	ShowLand       *bool          `json:"showland,omitempty"`
	LandColor      color.Color    `json:"landcolor,omitempty"`
	ShowLakes      *bool          `json:"showlakes,omitempty"`
	LakeColor      color.Color    `json:"lakecolor,omitempty"`
	ShowCountries  *bool          `json:"showcountries,omitempty"`
	LonAxis        *Axis          `json:"lonaxis,omitempty"`
	LatAxis        *Axis          `json:"lataxis,omitempty"`
	CoastlineWidth *uint8         `json:"coastlinewidth,omitempty"`
}

func NewLayoutGeo() *LayoutGeo {
	return &LayoutGeo{}
}

// Mapbox configures the tile map of scattermapbox and densitymapbox traces.
type Mapbox struct {
	AccessToken *string        `json:"accesstoken,omitempty"`
	Bearing     *float64       `json:"bearing,omitempty"`
	Center      *Center        `json:"center,omitempty"`
	Domain      *common.Domain `json:"domain,omitempty"`
	Pitch       *float64       `json:"pitch,omitempty"`
	Style       *MapboxStyle   `json:"style,omitempty"`
	Zoom        *uint8         `json:"zoom,omitempty"`
}

func NewMapbox() *Mapbox {
	return &Mapbox{}
}
