package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	"github.com/riskibarqy/worldcup-shotmap/internal/platform/logging"
)

const (
	columnMatch   = "Match"
	columnTeam    = "team"
	columnX       = "x"
	columnY       = "y"
	columnOutcome = "shot_outcome"
	columnEndY    = "shot_end_location_y"
	columnEndZ    = "shot_end_location_z"
	columnXG      = "shot_statsbomb_xg"
)

var requiredColumns = []string{
	columnMatch,
	columnTeam,
	columnX,
	columnY,
	columnOutcome,
	columnEndY,
	columnEndZ,
	columnXG,
}

// Text cells that read as missing values.
var missingMarkers = map[string]struct{}{
	"":         {},
	"na":       {},
	"n/a":      {},
	"nan":      {},
	"-nan":     {},
	"null":     {},
	"none":     {},
	"<na>":     {},
	"#n/a":     {},
	"#n/a n/a": {},
	"#na":      {},
	"-1.#ind":  {},
	"1.#ind":   {},
	"-1.#qnan": {},
	"1.#qnan":  {},
}

// ShotRepository reads the shot dataset from a CSV file on every List call.
type ShotRepository struct {
	path   string
	logger *logging.Logger
}

func NewShotRepository(path string, logger *logging.Logger) *ShotRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &ShotRepository{path: path, logger: logger}
}

func (r *ShotRepository) Path() string {
	return r.path
}

// Version identifies the current file contents by path, size and modification
// time. It changes whenever the file is replaced or rewritten.
func (r *ShotRepository) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(r.path)
	if err != nil {
		return "", crerr.Mark(crerr.Wrapf(err, "stat shot dataset %q", r.path), shot.ErrDatasetUnavailable)
	}

	return r.path + "|" + strconv.FormatInt(info.Size(), 10) + "|" + strconv.FormatInt(info.ModTime().UnixNano(), 10), nil
}

func (r *ShotRepository) List(ctx context.Context) ([]shot.Shot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "open shot dataset %q", r.path), shot.ErrDatasetUnavailable)
	}
	defer f.Close()

	items, err := parse(ctx, f)
	if err != nil {
		return nil, crerr.Wrapf(err, "read shot dataset %q", r.path)
	}

	r.logger.DebugContext(ctx, "shot dataset loaded", "path", r.path, "rows", len(items))
	return items, nil
}

func parse(ctx context.Context, src io.Reader) ([]shot.Shot, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if crerr.Is(err, io.EOF) {
			return nil, crerr.Mark(crerr.New("empty file"), shot.ErrDatasetMalformed)
		}
		return nil, crerr.Mark(crerr.Wrap(err, "read header"), shot.ErrDatasetMalformed)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	out := make([]shot.Shot, 0, 1024)
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "read line %d", line), shot.ErrDatasetMalformed)
		}

		cell := func(column string) string {
			i := index[column]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		out = append(out, shot.Shot{
			MatchID: parseText(cell(columnMatch)),
			Team:    parseText(cell(columnTeam)),
			X:       parseNumber(cell(columnX)),
			Y:       parseNumber(cell(columnY)),
			Outcome: parseText(cell(columnOutcome)),
			EndY:    parseNumber(cell(columnEndY)),
			EndZ:    parseNumber(cell(columnEndZ)),
			XG:      parseNumber(cell(columnXG)),
		})
	}

	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	missing := make([]string, 0, len(requiredColumns))
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, crerr.Mark(crerr.Newf("missing columns: %s", strings.Join(missing, ", ")), shot.ErrDatasetMalformed)
	}

	return index, nil
}

func parseText(v string) string {
	v = strings.TrimSpace(v)
	if _, ok := missingMarkers[strings.ToLower(v)]; ok {
		return ""
	}
	return v
}

// parseNumber coerces a cell to float64. Anything that is not a finite number
// is treated as missing.
func parseNumber(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
