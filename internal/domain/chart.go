package domain

// ValueFormatter converte um valor numérico no texto exibido em eixos e tooltips
type ValueFormatter func(float64) string

type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartSeries struct {
	Name  string      `json:"name"`
	Data  []DataPoint `json:"data"`
	Color string      `json:"color,omitempty"`
}

// ChartInput descreve um gráfico cartesiano antes do mapeamento para pixels
type ChartInput struct {
	Title  string        `json:"title"`
	Series []ChartSeries `json:"series"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
}

type AxisTick struct {
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

type PlotPoint struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Tooltip string  `json:"tooltip"`
}

type LinePath struct {
	Name   string      `json:"name"`
	Color  string      `json:"color"`
	Path   string      `json:"path"`
	Points []PlotPoint `json:"points"`
}

type Bar struct {
	Series  string  `json:"series"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Color   string  `json:"color"`
	Tooltip string  `json:"tooltip"`
}

type LegendEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ChartGeometry é a descrição pronta para renderização de um gráfico
type ChartGeometry struct {
	Title    string        `json:"title"`
	Kind     ChartKind     `json:"kind"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Padding  float64       `json:"padding"`
	Empty    bool          `json:"empty"`
	Labels   []AxisTick    `json:"labels"`
	XTicks   []AxisTick    `json:"x_ticks"`
	YTicks   []AxisTick    `json:"y_ticks"`
	MinValue float64       `json:"min_value"`
	MaxValue float64       `json:"max_value"`
	Baseline float64       `json:"baseline"`
	Legend   []LegendEntry `json:"legend"`
	Lines    []LinePath    `json:"lines,omitempty"`
	Bars     []Bar         `json:"bars,omitempty"`
}

type HeatPoint struct {
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Value   float64 `json:"value"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Color   string  `json:"color,omitempty"`
}

type HeatInput struct {
	Title  string      `json:"title"`
	Points []HeatPoint `json:"points"`
}

// HeatMarker é a tupla entregue à biblioteca de mapas
type HeatMarker struct {
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	Radius         float64 `json:"radius"`
	Color          string  `json:"color"`
	PopupText      string  `json:"popup_text"`
	TooltipText    string  `json:"tooltip_text"`
}

type HeatGeometry struct {
	Title    string       `json:"title"`
	Empty    bool         `json:"empty"`
	MinValue float64      `json:"min_value"`
	MaxValue float64      `json:"max_value"`
	Markers  []HeatMarker `json:"markers"`
	Table    []HeatMarker `json:"table"`
}
