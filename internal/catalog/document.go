package catalog

// document mirrors the YAML layout of a content file.
type document struct {
	Title     string       `yaml:"title"`
	Assistant assistantDoc `yaml:"assistant"`
	Roles     []roleDoc    `yaml:"roles"`
	Avatars   []string     `yaml:"avatars"`
	Tolerance toleranceDoc `yaml:"tolerance"`
	Missions  []missionDoc `yaml:"missions"`
	Timeline  timelineDoc  `yaml:"timeline"`
}

type assistantDoc struct {
	Name           string         `yaml:"name"`
	Greeting       string         `yaml:"greeting"`
	Fallback       string         `yaml:"fallback"`
	QuickQuestions []string       `yaml:"quick_questions"`
	Knowledge      []knowledgeDoc `yaml:"knowledge"`
}

type knowledgeDoc struct {
	Keyword  string `yaml:"keyword"`
	Response string `yaml:"response"`
}

type roleDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type toleranceDoc struct {
	Default   float64            `yaml:"default"`
	Overrides map[string]float64 `yaml:"overrides"`
}

type missionDoc struct {
	ID          string         `yaml:"id"`
	Role        string         `yaml:"role"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Chart       string         `yaml:"chart"`
	Question    string         `yaml:"question"`
	Answer      *float64       `yaml:"answer"`
	Unit        string         `yaml:"unit"`
	Data        []dataPointDoc `yaml:"data"`
}

type dataPointDoc struct {
	Year  int     `yaml:"year"`
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

type timelineDoc struct {
	DefaultYear int        `yaml:"default_year"`
	Layers      []layerDoc `yaml:"layers"`
	Years       []yearDoc  `yaml:"years"`
}

type layerDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type yearDoc struct {
	Year        int     `yaml:"year"`
	Ice         float64 `yaml:"ice"`
	Temperature float64 `yaml:"temperature"`
	Bears       float64 `yaml:"bears"`
	CO2         float64 `yaml:"co2"`
}
