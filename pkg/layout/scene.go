package layout

import (
	"github.com/raykavin/goplotly/pkg/color"
)

type AspectMode string

const (
	AspectModeAuto   AspectMode = "auto"
	AspectModeCube   AspectMode = "cube"
	AspectModeData   AspectMode = "data"
	AspectModeManual AspectMode = "manual"
)

type ProjectionType string

const (
	ProjectionTypePerspective          ProjectionType = "perspective"
	ProjectionTypeOrthographic         ProjectionType = "orthographic"
	ProjectionTypeAlbersUsa            ProjectionType = "albers usa"
	ProjectionTypeAzimuthalEqualArea   ProjectionType = "azimuthal equal area"
	ProjectionTypeConicConformal       ProjectionType = "conic conformal"
	ProjectionTypeEqualEarth           ProjectionType = "equal earth"
	ProjectionTypeEquirectangular      ProjectionType = "equirectangular"
	ProjectionTypeGnomonic             ProjectionType = "gnomonic"
	ProjectionTypeMercator             ProjectionType = "mercator"
	ProjectionTypeMiller               ProjectionType = "miller"
	ProjectionTypeMollweide            ProjectionType = "mollweide"
	ProjectionTypeNaturalEarth         ProjectionType = "natural earth"
	ProjectionTypeRobinson             ProjectionType = "robinson"
	ProjectionTypeSinusoidal           ProjectionType = "sinusoidal"
	ProjectionTypeStereographic        ProjectionType = "stereographic"
	ProjectionTypeTransverseMercator   ProjectionType = "transverse mercator"
	ProjectionTypeWinkelTripel         ProjectionType = "winkel tripel"
	ProjectionTypeAzimuthalEquidistant ProjectionType = "azimuthal equidistant"
)

// Vector3 is an {x, y, z} triple used by scene aspect ratios and cameras.
type Vector3 struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

// NewVector3 returns a fully populated triple.
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{X: &x, Y: &y, Z: &z}
}

type Rotation struct {
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
	Roll *float64 `json:"roll,omitempty"`
}

func NewRotation() *Rotation {
	return &Rotation{}
}

// Projection is shared by 3D cameras (perspective, orthographic) and
// geographic maps (every other type).
type Projection struct {
	Type     *ProjectionType `json:"type,omitempty"`
	Rotation *Rotation       `json:"rotation,omitempty"`
}

func NewProjection(projectionType ProjectionType) *Projection {
	return &Projection{Type: &projectionType}
}

type Camera struct {
	Center     *Vector3    `json:"center,omitempty"`
	Eye        *Vector3    `json:"eye,omitempty"`
	Up         *Vector3    `json:"up,omitempty"`
	Projection *Projection `json:"projection,omitempty"`
}

func NewCamera() *Camera {
	return &Camera{}
}

// LayoutScene configures the 3D scene used by surface, mesh3d and scatter3d
// traces.
type LayoutScene struct {
	BackgroundColor color.Color  `json:"bgcolor,omitempty"`
	Camera          *Camera      `json:"camera,omitempty"`
	AspectMode      *AspectMode  `json:"aspectmode,omitempty"`
	AspectRatio     *Vector3     `json:"aspectratio,omitempty"`
	XAxis           *Axis        `json:"xaxis,omitempty"`
	YAxis           *Axis        `json:"yaxis,omitempty"`
	ZAxis           *Axis        `json:"zaxis,omitempty"`
	DragMode        *DragMode3D  `json:"dragmode,omitempty"`
	HoverMode       *HoverMode   `json:"hovermode,omitempty"`
	Annotations     []Annotation `json:"annotations,omitempty"`
}

func NewLayoutScene() *LayoutScene {
	return &LayoutScene{}
}
