package utils

import (
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/antarkan/internal/pkg/models"
)

const (
	geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"
	// rangeSuffix sorts after every geohash character
	rangeSuffix = "~"

	maxBoundsPrecision = 10
	maxBoundsCells     = 9
	// boundsPadDegrees absorbs float error at the bounding box edges
	boundsPadDegrees = 1e-9
)

// GeohashRange is an inclusive lexicographic range [Lo, Hi] of geohash strings
type GeohashRange struct {
	Lo string `json:"lo"`
	Hi string `json:"hi"`
}

// Contains reports whether hash falls inside the range
func (r GeohashRange) Contains(hash string) bool {
	return hash >= r.Lo && hash <= r.Hi
}

type lonSpan struct {
	min, max float64
}

// GeohashQueryBounds returns ranges that together cover the geohash of every
// point within radiusMeters of center. Ranges may also cover points outside
// the circle.
func GeohashQueryBounds(center models.Coordinate, radiusMeters float64) []GeohashRange {
	if radiusMeters < 0 {
		radiusMeters = 0
	}

	latMin, latMax, spans := boundingBox(center, radiusMeters)

	precision := maxBoundsPrecision
	for ; precision > 1; precision-- {
		if countCells(precision, latMin, latMax, spans) <= maxBoundsCells {
			break
		}
	}

	return mergeCells(enumerateCells(precision, latMin, latMax, spans))
}

// boundingBox returns the latitude band and longitude spans enclosing the
// spherical cap of the given radius around center.
func boundingBox(center models.Coordinate, radiusMeters float64) (float64, float64, []lonSpan) {
	delta := radiusMeters / EarthRadiusMeters
	deltaDeg := toDegrees(delta)

	latMin := center.Latitude - deltaDeg - boundsPadDegrees
	latMax := center.Latitude + deltaDeg + boundsPadDegrees

	full := []lonSpan{{min: -180, max: 180}}
	if latMin <= -90 || latMax >= 90 {
		return math.Max(latMin, -90), math.Min(latMax, 90), full
	}

	s := math.Sin(delta) / math.Cos(toRadians(center.Latitude))
	if s >= 1 {
		return latMin, latMax, full
	}
	dLon := toDegrees(math.Asin(s)) + boundsPadDegrees

	lonMin := center.Longitude - dLon
	lonMax := center.Longitude + dLon
	switch {
	case lonMax-lonMin >= 360:
		return latMin, latMax, full
	case lonMin < -180:
		return latMin, latMax, []lonSpan{{min: lonMin + 360, max: 180}, {min: -180, max: lonMax}}
	case lonMax > 180:
		return latMin, latMax, []lonSpan{{min: lonMin, max: 180}, {min: -180, max: lonMax - 360}}
	}
	return latMin, latMax, []lonSpan{{min: lonMin, max: lonMax}}
}

// cellGrid returns the cell height and width in degrees for a precision
func cellGrid(precision int) (latBits, lonBits uint, height, width float64) {
	bits := uint(precision) * 5
	lonBits = (bits + 1) / 2
	latBits = bits / 2
	height = 180 / math.Exp2(float64(latBits))
	width = 360 / math.Exp2(float64(lonBits))
	return latBits, lonBits, height, width
}

func cellIndex(value, origin, size float64, bits uint) int {
	idx := int(math.Floor((value - origin) / size))
	last := int(math.Exp2(float64(bits))) - 1
	if idx < 0 {
		return 0
	}
	if idx > last {
		return last
	}
	return idx
}

func countCells(precision int, latMin, latMax float64, spans []lonSpan) int {
	latBits, lonBits, height, width := cellGrid(precision)
	rows := cellIndex(latMax, -90, height, latBits) - cellIndex(latMin, -90, height, latBits) + 1

	cols := 0
	for _, s := range spans {
		cols += cellIndex(s.max, -180, width, lonBits) - cellIndex(s.min, -180, width, lonBits) + 1
	}
	return rows * cols
}

func enumerateCells(precision int, latMin, latMax float64, spans []lonSpan) []string {
	latBits, lonBits, height, width := cellGrid(precision)
	rowMin := cellIndex(latMin, -90, height, latBits)
	rowMax := cellIndex(latMax, -90, height, latBits)

	seen := make(map[string]struct{})
	var cells []string
	for _, s := range spans {
		colMin := cellIndex(s.min, -180, width, lonBits)
		colMax := cellIndex(s.max, -180, width, lonBits)
		for row := rowMin; row <= rowMax; row++ {
			lat := -90 + (float64(row)+0.5)*height
			for col := colMin; col <= colMax; col++ {
				lng := -180 + (float64(col)+0.5)*width
				hash := geohash.EncodeWithPrecision(lat, lng, uint(precision))
				if _, ok := seen[hash]; ok {
					continue
				}
				seen[hash] = struct{}{}
				cells = append(cells, hash)
			}
		}
	}

	sort.Strings(cells)
	return cells
}

// mergeCells turns sorted cells into ranges, joining runs of consecutive cells
func mergeCells(cells []string) []GeohashRange {
	var ranges []GeohashRange
	for i := 0; i < len(cells); {
		j := i
		for j+1 < len(cells) && cells[j+1] == nextGeohash(cells[j]) {
			j++
		}
		ranges = append(ranges, GeohashRange{Lo: cells[i], Hi: cells[j] + rangeSuffix})
		i = j + 1
	}
	return ranges
}

// nextGeohash returns the lexicographic successor of hash at the same length,
// or "" when hash is the last cell.
func nextGeohash(hash string) string {
	b := []byte(hash)
	for i := len(b) - 1; i >= 0; i-- {
		pos := indexOf(b[i])
		if pos < len(geohashAlphabet)-1 {
			b[i] = geohashAlphabet[pos+1]
			return string(b)
		}
		b[i] = geohashAlphabet[0]
	}
	return ""
}

func indexOf(c byte) int {
	for i := 0; i < len(geohashAlphabet); i++ {
		if geohashAlphabet[i] == c {
			return i
		}
	}
	return -1
}
