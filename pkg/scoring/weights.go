package scoring

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// LoadWeights reads weight overrides from a .yaml, .csv or .xlsx file.
// Names missing from the file keep their default. An empty path yields defaults.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if strings.TrimSpace(path) == "" {
		return w, nil
	}

	var (
		vals map[string]float64
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		vals, err = readYAML(path)
	case ".csv":
		vals, err = readCSV(path)
	case ".xlsx":
		vals, err = readXLSX(path)
	default:
		return w, fmt.Errorf("weights file %s: unsupported extension", path)
	}
	if err != nil {
		return w, fmt.Errorf("weights file %s: %w", path, err)
	}
	if err := w.apply(vals); err != nil {
		return DefaultWeights(), fmt.Errorf("weights file %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return DefaultWeights(), fmt.Errorf("weights file %s: %w", path, err)
	}
	return w, nil
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func (w *Weights) apply(vals map[string]float64) error {
	slots := map[string]*float64{
		norm("pain_intensity"):        &w.PainIntensity,
		norm("search_intent"):         &w.SearchIntent,
		norm("trend_leverage"):        &w.TrendLeverage,
		norm("click_potential"):       &w.ClickPotential,
		norm("production_complexity"): &w.ProductionComplexity,
		norm("channel_fit"):           &w.ChannelFit,
	}
	for name, v := range vals {
		p, ok := slots[norm(name)]
		if !ok {
			return fmt.Errorf("unknown weight %q", name)
		}
		*p = v
	}
	return nil
}

func readYAML(path string) (map[string]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Weights map[string]float64 `yaml:"weights"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc.Weights != nil {
		return doc.Weights, nil
	}
	// flat form: "pain_intensity: 1.4"
	flat := map[string]float64{}
	if err := yaml.Unmarshal(b, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}

func readCSV(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cName := findAny("name", "weight_name", "rating", "factor")
	cVal := findAny("weight", "value", "multiplier")
	if cName == -1 || cVal == -1 {
		return nil, fmt.Errorf("missing columns, found headers %v, need name and weight", head)
	}

	out := map[string]float64{}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if cName >= len(rec) || cVal >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[cName])
		if name == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[cVal]), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func readXLSX(path string) (map[string]float64, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	out := map[string]float64{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if name == "" || err != nil {
			// header or note row
			continue
		}
		out[name] = v
	}
	return out, nil
}
