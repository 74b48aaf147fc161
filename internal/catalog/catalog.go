// Package catalog holds the static content of the simulator: roles, avatars,
// missions with their datasets and reference answers, timeline statistics and
// the assistant's keyword table. A Catalog is built once at startup and is
// read-only afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"arctic-chronicler/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/arctic.yaml
var embeddedContent []byte

// Layer is a toggleable data layer of the timeline map.
type Layer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Timeline layer identifiers.
const (
	LayerIce         = "ice"
	LayerTemperature = "temperature"
	LayerAnimals     = "animals"
	LayerCO2         = "co2"
)

// YearStats are the headline numbers for one timeline year.
type YearStats struct {
	Year        int
	Ice         float64
	Temperature float64
	Bears       float64
	CO2         float64
}

// Value returns the statistic shown by a layer.
func (s YearStats) Value(layer string) (float64, bool) {
	switch layer {
	case LayerIce:
		return s.Ice, true
	case LayerTemperature:
		return s.Temperature, true
	case LayerAnimals:
		return s.Bears, true
	case LayerCO2:
		return s.CO2, true
	default:
		return 0, false
	}
}

// Catalog is the validated, immutable content of the simulator.
type Catalog struct {
	title          string
	assistantName  string
	greeting       string
	fallback       string
	quickQuestions []string
	keywords       domain.KeywordTable

	roles   []domain.RoleInfo
	avatars []string

	tolerance domain.ToleranceTable
	missions  []domain.Mission
	byID      map[string]int
	datasets  map[string]domain.MissionDataset
	answers   map[string]domain.MissionAnswerSpec

	layers      []Layer
	years       []YearStats
	defaultYear int
}

// Load parses the content bundled with the binary.
func Load() (*Catalog, error) {
	return Parse(embeddedContent)
}

// LoadFile parses a content document from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML content document.
func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return build(&doc)
}

func build(doc *document) (*Catalog, error) {
	if strings.TrimSpace(doc.Assistant.Fallback) == "" {
		return nil, fmt.Errorf("catalog: assistant fallback is empty")
	}

	entries := make([]domain.KeywordEntry, 0, len(doc.Assistant.Knowledge))
	seen := make(map[string]bool, len(doc.Assistant.Knowledge))
	for i, k := range doc.Assistant.Knowledge {
		if k.Keyword == "" {
			return nil, fmt.Errorf("catalog: knowledge entry %d has an empty keyword", i)
		}
		if k.Keyword != strings.ToLower(k.Keyword) {
			return nil, fmt.Errorf("catalog: keyword %q must be lowercase", k.Keyword)
		}
		if seen[k.Keyword] {
			return nil, fmt.Errorf("catalog: duplicate keyword %q", k.Keyword)
		}
		seen[k.Keyword] = true
		entries = append(entries, domain.KeywordEntry{Keyword: k.Keyword, Response: k.Response})
	}

	if !validRatio(doc.Tolerance.Default) {
		return nil, fmt.Errorf("catalog: default tolerance %v must be in (0, 1)", doc.Tolerance.Default)
	}
	for id, ratio := range doc.Tolerance.Overrides {
		if !validRatio(ratio) {
			return nil, fmt.Errorf("catalog: tolerance %v for mission %s must be in (0, 1)", ratio, id)
		}
	}
	tolerance := domain.NewToleranceTable(doc.Tolerance.Default, doc.Tolerance.Overrides)

	c := &Catalog{
		title:          doc.Title,
		assistantName:  doc.Assistant.Name,
		greeting:       doc.Assistant.Greeting,
		fallback:       doc.Assistant.Fallback,
		quickQuestions: append([]string(nil), doc.Assistant.QuickQuestions...),
		keywords:       domain.NewKeywordTable(entries),
		avatars:        append([]string(nil), doc.Avatars...),
		tolerance:      tolerance,
		byID:           make(map[string]int, len(doc.Missions)),
		datasets:       make(map[string]domain.MissionDataset, len(doc.Missions)),
		answers:        make(map[string]domain.MissionAnswerSpec, len(doc.Missions)),
		defaultYear:    doc.Timeline.DefaultYear,
	}

	if len(c.avatars) == 0 {
		return nil, fmt.Errorf("catalog: no avatars defined")
	}

	roleSet := make(map[domain.Role]bool, len(doc.Roles))
	for _, r := range doc.Roles {
		role := domain.Role(r.ID)
		if roleSet[role] {
			return nil, fmt.Errorf("catalog: duplicate role %q", r.ID)
		}
		roleSet[role] = true
		c.roles = append(c.roles, domain.RoleInfo{ID: role, Name: r.Name, Description: r.Description, Icon: r.Icon})
	}

	missionsPerRole := make(map[domain.Role]int, len(roleSet))
	for _, m := range doc.Missions {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: mission with empty id")
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate mission %q", m.ID)
		}
		role := domain.Role(m.Role)
		if !roleSet[role] {
			return nil, fmt.Errorf("catalog: mission %s references unknown role %q", m.ID, m.Role)
		}
		chart := domain.ChartType(m.Chart)
		if chart != domain.ChartLine && chart != domain.ChartBar {
			return nil, fmt.Errorf("catalog: mission %s has unknown chart type %q", m.ID, m.Chart)
		}
		if len(m.Data) == 0 {
			return nil, fmt.Errorf("catalog: mission %s has no data points", m.ID)
		}
		if m.Answer == nil {
			return nil, fmt.Errorf("catalog: mission %s has no reference answer", m.ID)
		}
		if ref := *m.Answer; ref < 0 || math.IsNaN(ref) || math.IsInf(ref, 0) {
			return nil, fmt.Errorf("catalog: mission %s reference answer %v must be a finite non-negative number", m.ID, ref)
		}

		points := make([]domain.DataPoint, 0, len(m.Data))
		for _, p := range m.Data {
			points = append(points, domain.DataPoint{Year: p.Year, Value: p.Value, Label: p.Label})
		}

		c.byID[m.ID] = len(c.missions)
		c.missions = append(c.missions, domain.Mission{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Role:        role,
		})
		c.datasets[m.ID] = domain.MissionDataset{
			MissionID: m.ID,
			Points:    points,
			Question:  m.Question,
			ChartType: chart,
		}
		c.answers[m.ID] = domain.MissionAnswerSpec{
			ReferenceAnswer: *m.Answer,
			ToleranceRatio:  tolerance.Lookup(m.ID),
			Unit:            m.Unit,
		}
		missionsPerRole[role]++
	}

	for id := range doc.Tolerance.Overrides {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("catalog: tolerance override for unknown mission %q", id)
		}
	}
	for _, r := range c.roles {
		if missionsPerRole[r.ID] == 0 {
			return nil, fmt.Errorf("catalog: role %s has no missions", r.ID)
		}
	}

	layerSet := make(map[string]bool, len(doc.Timeline.Layers))
	for _, l := range doc.Timeline.Layers {
		if _, ok := (YearStats{}).Value(l.ID); !ok {
			return nil, fmt.Errorf("catalog: unknown timeline layer %q", l.ID)
		}
		layerSet[l.ID] = true
		c.layers = append(c.layers, Layer{ID: l.ID, Name: l.Name, Icon: l.Icon})
	}

	yearSet := make(map[int]bool, len(doc.Timeline.Years))
	for _, y := range doc.Timeline.Years {
		if yearSet[y.Year] {
			return nil, fmt.Errorf("catalog: duplicate timeline year %d", y.Year)
		}
		yearSet[y.Year] = true
		c.years = append(c.years, YearStats{
			Year:        y.Year,
			Ice:         y.Ice,
			Temperature: y.Temperature,
			Bears:       y.Bears,
			CO2:         y.CO2,
		})
	}
	sort.Slice(c.years, func(i, j int) bool { return c.years[i].Year < c.years[j].Year })
	if len(c.years) == 0 {
		return nil, fmt.Errorf("catalog: timeline has no years")
	}
	if !yearSet[c.defaultYear] {
		return nil, fmt.Errorf("catalog: default timeline year %d has no data", c.defaultYear)
	}

	return c, nil
}

func validRatio(r float64) bool {
	return r > 0 && r < 1
}

// Title is the name of the simulator.
func (c *Catalog) Title() string { return c.title }

// AssistantName is the display name of the chat assistant.
func (c *Catalog) AssistantName() string { return c.assistantName }

// Greeting returns the assistant's opening message for a character name.
func (c *Catalog) Greeting(name string) string {
	return strings.ReplaceAll(c.greeting, "{name}", name)
}

// Fallback is the reply used when no keyword matches.
func (c *Catalog) Fallback() string { return c.fallback }

// QuickQuestions returns the suggested first questions.
func (c *Catalog) QuickQuestions() []string {
	return append([]string(nil), c.quickQuestions...)
}

// Keywords returns the assistant's keyword table.
func (c *Catalog) Keywords() domain.KeywordTable { return c.keywords }

// Roles returns all roles in display order.
func (c *Catalog) Roles() []domain.RoleInfo {
	return append([]domain.RoleInfo(nil), c.roles...)
}

// Role looks up a role by identifier.
func (c *Catalog) Role(id domain.Role) (domain.RoleInfo, bool) {
	for _, r := range c.roles {
		if r.ID == id {
			return r, true
		}
	}
	return domain.RoleInfo{}, false
}

// Avatars returns the selectable avatars; the first is the default.
func (c *Catalog) Avatars() []string {
	return append([]string(nil), c.avatars...)
}

// IsAvatar reports whether a is one of the selectable avatars.
func (c *Catalog) IsAvatar(a string) bool {
	for _, v := range c.avatars {
		if v == a {
			return true
		}
	}
	return false
}

// Tolerances returns the mission tolerance table.
func (c *Catalog) Tolerances() domain.ToleranceTable { return c.tolerance }

// Missions returns every mission in catalog order.
func (c *Catalog) Missions() []domain.Mission {
	return append([]domain.Mission(nil), c.missions...)
}

// MissionsForRole returns the missions offered to role, in catalog order.
func (c *Catalog) MissionsForRole(role domain.Role) []domain.Mission {
	var out []domain.Mission
	for _, m := range c.missions {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// Mission looks up a mission by identifier.
func (c *Catalog) Mission(id string) (domain.Mission, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Mission{}, false
	}
	return c.missions[idx], true
}

// Dataset returns the chart and question of a mission.
func (c *Catalog) Dataset(id string) (domain.MissionDataset, bool) {
	ds, ok := c.datasets[id]
	if !ok {
		return domain.MissionDataset{}, false
	}
	ds.Points = append([]domain.DataPoint(nil), ds.Points...)
	return ds, true
}

// AnswerSpec returns the reference answer of a mission.
func (c *Catalog) AnswerSpec(id string) (domain.MissionAnswerSpec, bool) {
	spec, ok := c.answers[id]
	return spec, ok
}

// Layers returns the timeline data layers.
func (c *Catalog) Layers() []Layer {
	return append([]Layer(nil), c.layers...)
}

// HasLayer reports whether id is a known layer.
func (c *Catalog) HasLayer(id string) bool {
	for _, l := range c.layers {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Years returns the timeline years in ascending order.
func (c *Catalog) Years() []int {
	out := make([]int, 0, len(c.years))
	for _, y := range c.years {
		out = append(out, y.Year)
	}
	return out
}

// YearStats returns the statistics of a timeline year.
func (c *Catalog) YearStats(year int) (YearStats, bool) {
	for _, y := range c.years {
		if y.Year == year {
			return y, true
		}
	}
	return YearStats{}, false
}

// DefaultYear is the year the timeline opens on.
func (c *Catalog) DefaultYear() int { return c.defaultYear }
