package traces

func (s *Scatter[X, Y]) AssignAxes(x, y string) { s.XAxis, s.YAxis = &x, &y }

func (b *Bar[X, Y]) AssignAxes(x, y string) { b.XAxis, b.YAxis = &x, &y }

func (b *BoxPlot[Y, X]) AssignAxes(x, y string) { b.XAxis, b.YAxis = &x, &y }

func (h *Histogram[H]) AssignAxes(x, y string) { h.XAxis, h.YAxis = &x, &y }

func (c *Contour[Z, X, Y]) AssignAxes(x, y string) { c.XAxis, c.YAxis = &x, &y }

func (h *HeatMap[X, Y, Z]) AssignAxes(x, y string) { h.XAxis, h.YAxis = &x, &y }

func (c *Candlestick[T, O]) AssignAxes(x, y string) { c.XAxis, c.YAxis = &x, &y }

func (o *Ohlc[T, O]) AssignAxes(x, y string) { o.XAxis, o.YAxis = &x, &y }

func (i *Image) AssignAxes(x, y string) { i.XAxis, i.YAxis = &x, &y }

var (
	_ AxisAssigner = (*Scatter[float64, float64])(nil)
	_ AxisAssigner = (*Bar[float64, float64])(nil)
	_ AxisAssigner = (*BoxPlot[float64, float64])(nil)
	_ AxisAssigner = (*Histogram[float64])(nil)
	_ AxisAssigner = (*Contour[float64, float64, float64])(nil)
	_ AxisAssigner = (*HeatMap[float64, float64, float64])(nil)
	_ AxisAssigner = (*Candlestick[string, float64])(nil)
	_ AxisAssigner = (*Ohlc[string, float64])(nil)
	_ AxisAssigner = (*Image)(nil)

	_ Trace = (*Sankey[float64])(nil)
	_ Trace = (*Table[string, float64])(nil)
	_ Trace = (*ScatterMapbox[float64, float64])(nil)
	_ Trace = (*DensityMapbox[float64, float64, float64])(nil)
	_ Trace = (*Scatter3D[float64, float64, float64])(nil)
	_ Trace = (*ScatterPolar[float64, float64])(nil)
	_ Trace = (*Mesh3D[float64, float64, float64])(nil)
	_ Trace = (*Surface[float64, float64, float64])(nil)
	_ Trace = (*RawTrace)(nil)
)
