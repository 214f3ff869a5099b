package plot

import "errors"

var (
	// ErrSerialization is returned when a plot, one of its traces or its
	// layout cannot be encoded, typically because of NaN or infinite floats.
	ErrSerialization = errors.New("plot serialization failed")

	// ErrDefaultAppNotFound is returned by Show when no application is
	// registered to open HTML files.
	ErrDefaultAppNotFound = errors.New("could not find default application for HTML files")

	// ErrPlotlyJSNotFound is returned when a self-contained page is requested
	// without a plotly.js bundle configured.
	ErrPlotlyJSNotFound = errors.New("no local plotly.js bundle configured")

	// ErrInvalidCell is returned by SubplotsBuilder.AddTrace for a row or
	// column outside of the grid.
	ErrInvalidCell = errors.New("row/col out of range")

	// ErrNotCartesian is returned by SubplotsBuilder.AddTrace for traces that
	// cannot be bound to a pair of x/y axes.
	ErrNotCartesian = errors.New("trace does not support x/y axes")

	// ErrPlotNotFound is returned by Store lookups.
	ErrPlotNotFound = errors.New("plot not found")

	// ErrInvalidUpdate is returned by the preview server when a restyle or
	// relayout pushed to clients is not a JSON object.
	ErrInvalidUpdate = errors.New("update is not a JSON object")
)
